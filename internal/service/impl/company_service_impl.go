package impl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"jobboard/internal/authz"
	"jobboard/internal/domain"
	"jobboard/internal/dto"
	"jobboard/internal/service"
	"jobboard/internal/store"

	"github.com/google/uuid"
)

type CompanyServiceImpl struct {
	store *store.Store
}

func NewCompanyServiceImpl(st *store.Store) *CompanyServiceImpl {
	return &CompanyServiceImpl{store: st}
}

var _ service.CompanyService = (*CompanyServiceImpl)(nil)

func (s *CompanyServiceImpl) Create(ctx context.Context, p *domain.Principal, r dto.CompanyRequest) (*domain.Company, error) {
	if err := authz.Allow(p, authz.ActionCreate, authz.ResourceCompany); err != nil {
		return nil, err
	}
	if strings.TrimSpace(r.Name) == "" {
		return nil, fmt.Errorf("%w: company name is required", domain.ErrValidation)
	}
	if strings.TrimSpace(r.ContactEmail) == "" {
		return nil, fmt.Errorf("%w: contact email is required", domain.ErrValidation)
	}

	now := time.Now().UTC()
	c := &domain.Company{
		ID:           uuid.New(),
		Name:         strings.TrimSpace(r.Name),
		Location:     r.Location,
		Description:  r.Description,
		ContactEmail: strings.TrimSpace(r.ContactEmail),
		OwnerID:      p.ID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.store.Companies().Create(ctx, c); err != nil {
		return nil, err
	}
	slog.Info("company created", "company_id", c.ID, "owner_id", p.ID)
	return c, nil
}

func (s *CompanyServiceImpl) Get(ctx context.Context, p *domain.Principal, id domain.CompanyID) (*domain.Company, error) {
	if err := authz.Allow(p, authz.ActionRead, authz.ResourceCompany); err != nil {
		return nil, err
	}
	scope := authz.CompaniesVisibleTo(p)
	if scope.None {
		return nil, domain.ErrForbidden
	}
	c, err := s.store.Companies().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	// Out-of-scope reads look like absence rather than leaking existence.
	if scope.OwnerID != nil && c.OwnerID != *scope.OwnerID {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

func (s *CompanyServiceImpl) List(ctx context.Context, p *domain.Principal, page store.Page) ([]domain.Company, int64, error) {
	if err := authz.Allow(p, authz.ActionList, authz.ResourceCompany); err != nil {
		return nil, 0, err
	}
	return s.store.Companies().List(ctx, authz.CompaniesVisibleTo(p), page)
}

func (s *CompanyServiceImpl) Update(ctx context.Context, p *domain.Principal, id domain.CompanyID, r dto.UpdateCompanyRequest) (*domain.Company, error) {
	if err := authz.Allow(p, authz.ActionUpdate, authz.ResourceCompany); err != nil {
		return nil, err
	}
	c, err := s.store.Companies().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if err := authz.CanManageCompany(p, c); err != nil {
		return nil, err
	}

	if r.Name != nil {
		if strings.TrimSpace(*r.Name) == "" {
			return nil, fmt.Errorf("%w: company name cannot be empty", domain.ErrValidation)
		}
		c.Name = strings.TrimSpace(*r.Name)
	}
	if r.Location != nil {
		c.Location = *r.Location
	}
	if r.Description != nil {
		c.Description = *r.Description
	}
	if r.ContactEmail != nil {
		if strings.TrimSpace(*r.ContactEmail) == "" {
			return nil, fmt.Errorf("%w: contact email cannot be empty", domain.ErrValidation)
		}
		c.ContactEmail = strings.TrimSpace(*r.ContactEmail)
	}
	c.UpdatedAt = time.Now().UTC()

	if err := s.store.Companies().Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Delete removes the company with its listings and their applications, in
// one transaction.
func (s *CompanyServiceImpl) Delete(ctx context.Context, p *domain.Principal, id domain.CompanyID) error {
	if err := authz.Allow(p, authz.ActionDelete, authz.ResourceCompany); err != nil {
		return err
	}
	c, err := s.store.Companies().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		return err
	}
	if err := authz.CanManageCompany(p, c); err != nil {
		return err
	}

	err = s.store.WithTx(ctx, func(tx *store.Store) error {
		return tx.Companies().Delete(ctx, id)
	})
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		return err
	}
	slog.Info("company deleted", "company_id", id, "by", p.ID)
	return nil
}
