package domain

import "strings"

// Role is the closed set of principal roles. Stored as text; unrecognized
// values are rejected at the boundary rather than by a database enum.
type Role string

const (
	RoleCandidate Role = "candidate"
	RoleEmployer  Role = "employer"
	RoleAdmin     Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleCandidate, RoleEmployer, RoleAdmin:
		return true
	}
	return false
}

// ParseRole maps an arbitrary input string to a Role.
func ParseRole(s string) (Role, bool) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	return r, r.Valid()
}

// SignupRole resolves the role requested at signup. Only candidate and
// employer can be chosen; anything else (including admin and empty input)
// falls back to candidate. An explicit employer choice sticks.
func SignupRole(s string) Role {
	if r, ok := ParseRole(s); ok && r != RoleAdmin {
		return r
	}
	return RoleCandidate
}
