package store

import (
	"context"
	"strings"

	"jobboard/internal/authz"
	"jobboard/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListingStore struct{ db *gorm.DB }

func (s *Store) Listings() *ListingStore { return &ListingStore{db: s.DB} }

// ListingFilter narrows listing queries. Search matches title, company name
// and location as case-insensitive substrings; the pointer fields are exact.
type ListingFilter struct {
	Search   string
	Salary   *int64
	Location *string
	Active   *bool
}

func (ls *ListingStore) Create(ctx context.Context, l *domain.Listing) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return translate(ls.db.WithContext(ctx).Create(l).Error)
}

func (ls *ListingStore) GetByID(ctx context.Context, id domain.ListingID) (*domain.Listing, error) {
	var l domain.Listing
	err := ls.db.WithContext(ctx).
		Preload("Company").
		First(&l, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &l, nil
}

func (ls *ListingStore) List(ctx context.Context, scope authz.ListingScope, f ListingFilter, page Page) ([]domain.Listing, int64, error) {
	q := ls.db.WithContext(ctx).Model(&domain.Listing{}).
		Joins("JOIN companies ON companies.id = listings.company_id")

	switch {
	case scope.All:
		// no narrowing
	case scope.OwnerID != nil:
		q = q.Where("companies.owner_id = ?", *scope.OwnerID)
	default:
		q = q.Where("listings.active = ?", true)
	}

	if s := strings.TrimSpace(f.Search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where(
			"LOWER(listings.title) LIKE ? OR LOWER(companies.name) LIKE ? OR LOWER(listings.location) LIKE ?",
			like, like, like,
		)
	}
	if f.Salary != nil {
		q = q.Where("listings.salary = ?", *f.Salary)
	}
	if f.Location != nil {
		q = q.Where("listings.location = ?", *f.Location)
	}
	if f.Active != nil {
		q = q.Where("listings.active = ?", *f.Active)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var out []domain.Listing
	err := page.apply(q.Order("listings.created_at DESC")).
		Preload("Company").
		Find(&out).Error
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (ls *ListingStore) Update(ctx context.Context, l *domain.Listing) error {
	return translate(ls.db.WithContext(ctx).Save(l).Error)
}

func (ls *ListingStore) SetActive(ctx context.Context, id domain.ListingID, active bool) error {
	res := ls.db.WithContext(ctx).Model(&domain.Listing{}).
		Where("id = ?", id).
		Update("active", active)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}
