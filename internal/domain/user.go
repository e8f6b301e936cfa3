package domain

import "time"

type User struct {
	ID        UserID    `gorm:"type:uuid;primaryKey" db:"id" json:"id"`
	Email     string    `gorm:"type:citext;uniqueIndex:ux_users_email" db:"email" json:"email"`
	Username  string    `gorm:"type:citext;uniqueIndex:ux_users_username" db:"username" json:"username"`
	Role      Role      `gorm:"type:text;not null" db:"role" json:"role"`
	Active    bool      `gorm:"not null;default:false" db:"active" json:"active"`
	CreatedAt time.Time `gorm:"not null" db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" db:"updated_at" json:"updatedAt"`
}

func (User) TableName() string { return "users" }

// ActivationToken is the single-use credential mailed at signup. A token is
// spendable while unconsumed and unexpired, and only for its own user.
type ActivationToken struct {
	UserID    UserID    `gorm:"type:uuid;index" db:"user_id"`
	Token     string    `gorm:"type:text;uniqueIndex" db:"token"`
	ExpiresAt time.Time `gorm:"not null" db:"expires_at"`
	Consumed  bool      `gorm:"not null;default:false" db:"consumed"`
	CreatedAt time.Time `gorm:"not null" db:"created_at"`
}

func (ActivationToken) TableName() string { return "activation_tokens" }

// Principal is the authenticated actor behind a request. A nil *Principal
// means anonymous.
type Principal struct {
	ID       UserID
	Username string
	Email    string
	Role     Role
}

func (p *Principal) IsAdmin() bool    { return p != nil && p.Role == RoleAdmin }
func (p *Principal) IsEmployer() bool { return p != nil && p.Role == RoleEmployer }
func (p *Principal) IsCandidate() bool {
	return p != nil && p.Role == RoleCandidate
}
