package domain

import "time"

// Listing is a job posting. It belongs to exactly one company and is
// externally visible only while active; the owning employer and admins see
// it regardless. Normal removal deactivates instead of deleting.
type Listing struct {
	ID           ListingID `gorm:"type:uuid;primaryKey" db:"id" json:"id"`
	Title        string    `gorm:"type:text;not null" db:"title" json:"title"`
	Description  string    `gorm:"type:text" db:"description" json:"description"`
	Requirements string    `gorm:"type:text" db:"requirements" json:"requirements"`
	Location     string    `gorm:"type:text" db:"location" json:"location"`
	Salary       int64     `gorm:"not null;default:0" db:"salary" json:"salary"`
	Active       bool      `gorm:"not null;default:true" db:"active" json:"active"`
	CompanyID    CompanyID `gorm:"type:uuid;not null;index" db:"company_id" json:"companyId"`
	Company      *Company  `gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE" json:"company,omitempty"`
	CreatedAt    time.Time `gorm:"not null" db:"created_at" json:"createdAt"`
}

func (Listing) TableName() string { return "listings" }
