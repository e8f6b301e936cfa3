package authz

import (
	"errors"
	"testing"

	"jobboard/internal/domain"

	"github.com/google/uuid"
)

func principal(role domain.Role) *domain.Principal {
	return &domain.Principal{ID: uuid.New(), Role: role}
}

func TestAllowListing(t *testing.T) {
	cases := []struct {
		name   string
		p      *domain.Principal
		action Action
		want   error
	}{
		{"anonymous read", nil, ActionRead, domain.ErrUnauthorized},
		{"anonymous list", nil, ActionList, domain.ErrUnauthorized},
		{"candidate read", principal(domain.RoleCandidate), ActionRead, nil},
		{"candidate list", principal(domain.RoleCandidate), ActionList, nil},
		{"candidate create", principal(domain.RoleCandidate), ActionCreate, domain.ErrForbidden},
		{"candidate update", principal(domain.RoleCandidate), ActionUpdate, domain.ErrForbidden},
		{"candidate delete", principal(domain.RoleCandidate), ActionDelete, domain.ErrForbidden},
		{"employer create", principal(domain.RoleEmployer), ActionCreate, nil},
		{"employer update", principal(domain.RoleEmployer), ActionUpdate, nil},
		{"admin create", principal(domain.RoleAdmin), ActionCreate, nil},
		{"admin delete", principal(domain.RoleAdmin), ActionDelete, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Allow(tc.p, tc.action, ResourceListing)
			if !errors.Is(got, tc.want) && got != tc.want {
				t.Fatalf("Allow(%v, %v, listing) = %v, want %v", tc.p, tc.action, got, tc.want)
			}
		})
	}
}

func TestAllowCompany(t *testing.T) {
	cases := []struct {
		name   string
		p      *domain.Principal
		action Action
		want   error
	}{
		{"anonymous read", nil, ActionRead, domain.ErrUnauthorized},
		{"candidate read", principal(domain.RoleCandidate), ActionRead, nil},
		{"candidate create", principal(domain.RoleCandidate), ActionCreate, domain.ErrForbidden},
		{"admin create", principal(domain.RoleAdmin), ActionCreate, domain.ErrForbidden},
		{"employer create", principal(domain.RoleEmployer), ActionCreate, nil},
		{"admin update", principal(domain.RoleAdmin), ActionUpdate, nil},
		{"candidate delete", principal(domain.RoleCandidate), ActionDelete, domain.ErrForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Allow(tc.p, tc.action, ResourceCompany)
			if !errors.Is(got, tc.want) && got != tc.want {
				t.Fatalf("Allow(%v, %v, company) = %v, want %v", tc.p, tc.action, got, tc.want)
			}
		})
	}
}

func TestAllowApplication(t *testing.T) {
	cases := []struct {
		name   string
		p      *domain.Principal
		action Action
		want   error
	}{
		{"anonymous create", nil, ActionCreate, domain.ErrUnauthorized},
		{"candidate create", principal(domain.RoleCandidate), ActionCreate, nil},
		{"employer create", principal(domain.RoleEmployer), ActionCreate, domain.ErrForbidden},
		{"admin create", principal(domain.RoleAdmin), ActionCreate, domain.ErrForbidden},
		{"candidate read", principal(domain.RoleCandidate), ActionRead, domain.ErrForbidden},
		{"employer read", principal(domain.RoleEmployer), ActionRead, nil},
		{"employer update", principal(domain.RoleEmployer), ActionUpdate, nil},
		{"admin update", principal(domain.RoleAdmin), ActionUpdate, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Allow(tc.p, tc.action, ResourceApplication)
			if !errors.Is(got, tc.want) && got != tc.want {
				t.Fatalf("Allow(%v, %v, application) = %v, want %v", tc.p, tc.action, got, tc.want)
			}
		})
	}
}

func TestCanManageCompany(t *testing.T) {
	owner := principal(domain.RoleEmployer)
	other := principal(domain.RoleEmployer)
	admin := principal(domain.RoleAdmin)
	c := &domain.Company{ID: uuid.New(), OwnerID: owner.ID}

	if err := CanManageCompany(nil, c); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("anonymous: got %v", err)
	}
	if err := CanManageCompany(owner, c); err != nil {
		t.Fatalf("owner: got %v", err)
	}
	if err := CanManageCompany(admin, c); err != nil {
		t.Fatalf("admin: got %v", err)
	}
	if err := CanManageCompany(other, c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("other employer: got %v", err)
	}
}

func TestCanManageListing(t *testing.T) {
	owner := principal(domain.RoleEmployer)
	other := principal(domain.RoleEmployer)
	admin := principal(domain.RoleAdmin)
	candidate := principal(domain.RoleCandidate)

	if err := CanManageListing(owner, owner.ID); err != nil {
		t.Fatalf("owning employer: got %v", err)
	}
	if err := CanManageListing(other, owner.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("other employer: got %v", err)
	}
	if err := CanManageListing(admin, owner.ID); err != nil {
		t.Fatalf("admin: got %v", err)
	}
	if err := CanManageListing(candidate, candidate.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("candidate: got %v", err)
	}
}
