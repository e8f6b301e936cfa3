package store

import (
	"context"
	"strings"

	"jobboard/internal/authz"
	"jobboard/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ApplicationStore struct{ db *gorm.DB }

func (s *Store) Applications() *ApplicationStore { return &ApplicationStore{db: s.DB} }

// ApplicationFilter narrows application queries by attributes of the target
// listing plus the application status. Search matches listing title or
// candidate username, case-insensitively.
type ApplicationFilter struct {
	Search          string
	ListingLocation *string
	ListingSalary   *int64
	Status          *domain.ApplicationStatus
}

func (as *ApplicationStore) Create(ctx context.Context, a *domain.Application) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return translate(as.db.WithContext(ctx).Create(a).Error)
}

func (as *ApplicationStore) GetByID(ctx context.Context, id domain.ApplicationID) (*domain.Application, error) {
	var a domain.Application
	err := as.db.WithContext(ctx).
		Preload("Listing").
		Preload("Listing.Company").
		Preload("Candidate").
		First(&a, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &a, nil
}

func (as *ApplicationStore) List(ctx context.Context, scope authz.ApplicationScope, f ApplicationFilter, page Page) ([]domain.Application, int64, error) {
	q := as.db.WithContext(ctx).Model(&domain.Application{}).
		Joins("JOIN listings ON listings.id = applications.listing_id").
		Joins("JOIN companies ON companies.id = listings.company_id").
		Joins("JOIN users ON users.id = applications.candidate_id")

	if !scope.All {
		if scope.CompanyOwnerID == nil {
			return nil, 0, nil
		}
		q = q.Where("companies.owner_id = ?", *scope.CompanyOwnerID)
	}

	if s := strings.TrimSpace(f.Search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where("LOWER(listings.title) LIKE ? OR LOWER(users.username) LIKE ?", like, like)
	}
	if f.ListingLocation != nil {
		q = q.Where("listings.location = ?", *f.ListingLocation)
	}
	if f.ListingSalary != nil {
		q = q.Where("listings.salary = ?", *f.ListingSalary)
	}
	if f.Status != nil {
		q = q.Where("applications.status = ?", *f.Status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var out []domain.Application
	err := page.apply(q.Order("applications.applied_at DESC")).
		Preload("Listing").
		Preload("Candidate").
		Find(&out).Error
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

// SetStatus updates the status only when the current one matches, so a
// concurrent decision never overwrites a terminal state.
func (as *ApplicationStore) SetStatus(ctx context.Context, id domain.ApplicationID, from, to domain.ApplicationStatus) error {
	res := as.db.WithContext(ctx).Model(&domain.Application{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}
