package store

import (
	"context"

	"jobboard/internal/authz"
	"jobboard/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CompanyStore struct{ db *gorm.DB }

func (s *Store) Companies() *CompanyStore { return &CompanyStore{db: s.DB} }

func (cs *CompanyStore) Create(ctx context.Context, c *domain.Company) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return translate(cs.db.WithContext(ctx).Create(c).Error)
}

func (cs *CompanyStore) GetByID(ctx context.Context, id domain.CompanyID) (*domain.Company, error) {
	var c domain.Company
	if err := cs.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

// FirstOwnedBy returns the employer's oldest company, used when listing
// creation omits an explicit company id.
func (cs *CompanyStore) FirstOwnedBy(ctx context.Context, ownerID domain.UserID) (*domain.Company, error) {
	var c domain.Company
	err := cs.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at ASC").
		First(&c).Error
	if err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (cs *CompanyStore) List(ctx context.Context, scope authz.CompanyScope, page Page) ([]domain.Company, int64, error) {
	if scope.None {
		return nil, 0, nil
	}
	q := cs.db.WithContext(ctx).Model(&domain.Company{})
	if scope.OwnerID != nil {
		q = q.Where("owner_id = ?", *scope.OwnerID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var out []domain.Company
	if err := page.apply(q.Order("created_at ASC")).Find(&out).Error; err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (cs *CompanyStore) Update(ctx context.Context, c *domain.Company) error {
	return translate(cs.db.WithContext(ctx).Save(c).Error)
}

// Delete removes the company and its listings and applications in explicit
// steps so the cascade holds even without database-level FK enforcement.
// Call inside WithTx.
func (cs *CompanyStore) Delete(ctx context.Context, id domain.CompanyID) error {
	db := cs.db.WithContext(ctx)

	listingIDs := db.Model(&domain.Listing{}).Select("id").Where("company_id = ?", id)
	if err := db.Where("listing_id IN (?)", listingIDs).Delete(&domain.Application{}).Error; err != nil {
		return err
	}
	if err := db.Where("company_id = ?", id).Delete(&domain.Listing{}).Error; err != nil {
		return err
	}
	res := db.Where("id = ?", id).Delete(&domain.Company{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}
