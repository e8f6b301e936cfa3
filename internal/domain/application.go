package domain

import "time"

type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationAccepted ApplicationStatus = "accepted"
	ApplicationRejected ApplicationStatus = "rejected"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationPending, ApplicationAccepted, ApplicationRejected:
		return true
	}
	return false
}

// Terminal reports whether no further transition is allowed out of s.
func (s ApplicationStatus) Terminal() bool {
	return s == ApplicationAccepted || s == ApplicationRejected
}

// Application records one candidate's submission against a listing. The
// composite unique index keeps it to one per (listing, candidate).
type Application struct {
	ID          ApplicationID     `gorm:"type:uuid;primaryKey" db:"id" json:"id"`
	ListingID   ListingID         `gorm:"type:uuid;not null;uniqueIndex:ux_applications_listing_candidate" db:"listing_id" json:"listingId"`
	Listing     *Listing          `gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE" json:"listing,omitempty"`
	CandidateID UserID            `gorm:"type:uuid;not null;uniqueIndex:ux_applications_listing_candidate" db:"candidate_id" json:"candidateId"`
	Candidate   *User             `gorm:"foreignKey:CandidateID;constraint:OnDelete:CASCADE" json:"candidate,omitempty"`
	ResumePath  string            `gorm:"type:text;not null" db:"resume_path" json:"resumePath"`
	CoverLetter string            `gorm:"type:text" db:"cover_letter" json:"coverLetter,omitempty"`
	Status      ApplicationStatus `gorm:"type:text;not null;default:pending" db:"status" json:"status"`
	AppliedAt   time.Time         `gorm:"not null" db:"applied_at" json:"appliedAt"`
}

func (Application) TableName() string { return "applications" }
