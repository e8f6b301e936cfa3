package domain

import "time"

// Company is owned by an employer. Deleting the owner cascades to the
// company and transitively to its listings and their applications.
type Company struct {
	ID           CompanyID `gorm:"type:uuid;primaryKey" db:"id" json:"id"`
	Name         string    `gorm:"type:text;not null" db:"name" json:"name"`
	Location     string    `gorm:"type:text" db:"location" json:"location"`
	Description  string    `gorm:"type:text" db:"description" json:"description"`
	ContactEmail string    `gorm:"type:text;not null" db:"contact_email" json:"contactEmail"`
	OwnerID      UserID    `gorm:"type:uuid;not null;index" db:"owner_id" json:"ownerId"`
	Owner        *User     `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"owner,omitempty"`
	CreatedAt    time.Time `gorm:"not null" db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"not null" db:"updated_at" json:"updatedAt"`
}

func (Company) TableName() string { return "companies" }
