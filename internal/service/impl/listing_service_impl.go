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

type ListingServiceImpl struct {
	store *store.Store
}

func NewListingServiceImpl(st *store.Store) *ListingServiceImpl {
	return &ListingServiceImpl{store: st}
}

var _ service.ListingService = (*ListingServiceImpl)(nil)

func (s *ListingServiceImpl) Create(ctx context.Context, p *domain.Principal, r dto.CreateListingRequest) (*domain.Listing, error) {
	if err := authz.Allow(p, authz.ActionCreate, authz.ResourceListing); err != nil {
		return nil, err
	}
	if strings.TrimSpace(r.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if r.Salary < 0 {
		return nil, fmt.Errorf("%w: salary must be non-negative", domain.ErrValidation)
	}

	company, err := s.resolveCompany(ctx, p, r.CompanyID)
	if err != nil {
		return nil, err
	}

	l := &domain.Listing{
		ID:           uuid.New(),
		Title:        strings.TrimSpace(r.Title),
		Description:  r.Description,
		Requirements: r.Requirements,
		Location:     r.Location,
		Salary:       r.Salary,
		Active:       true,
		CompanyID:    company.ID,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.store.Listings().Create(ctx, l); err != nil {
		return nil, err
	}
	l.Company = company
	slog.Info("listing created", "listing_id", l.ID, "company_id", company.ID, "by", p.ID)
	return l, nil
}

// resolveCompany picks the owning company for a new listing: the explicit id
// when supplied (ownership enforced unless admin), otherwise the employer's
// first company.
func (s *ListingServiceImpl) resolveCompany(ctx context.Context, p *domain.Principal, companyID *string) (*domain.Company, error) {
	if companyID != nil {
		id, err := uuid.Parse(*companyID)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid companyId", domain.ErrValidation)
		}
		c, err := s.store.Companies().GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, store.ErrRecordNotFound) {
				return nil, domain.ErrNotFound
			}
			return nil, err
		}
		if !p.IsAdmin() && c.OwnerID != p.ID {
			return nil, domain.ErrForbidden
		}
		return c, nil
	}

	// Admins act on behalf of a company, so they must name one.
	if p.IsAdmin() {
		return nil, fmt.Errorf("%w: companyId is required", domain.ErrValidation)
	}
	c, err := s.store.Companies().FirstOwnedBy(ctx, p.ID)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, domain.ErrNoOwnedCompany
		}
		return nil, err
	}
	return c, nil
}

func (s *ListingServiceImpl) Get(ctx context.Context, p *domain.Principal, id domain.ListingID) (*domain.Listing, error) {
	if err := authz.Allow(p, authz.ActionRead, authz.ResourceListing); err != nil {
		return nil, err
	}
	l, err := s.store.Listings().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if !authz.CanSeeListing(p, l, l.Company.OwnerID) {
		return nil, domain.ErrNotFound
	}
	return l, nil
}

func (s *ListingServiceImpl) List(ctx context.Context, p *domain.Principal, f store.ListingFilter, page store.Page) ([]domain.Listing, int64, error) {
	if err := authz.Allow(p, authz.ActionList, authz.ResourceListing); err != nil {
		return nil, 0, err
	}
	return s.store.Listings().List(ctx, authz.ListingsVisibleTo(p), f, page)
}

func (s *ListingServiceImpl) Update(ctx context.Context, p *domain.Principal, id domain.ListingID, r dto.UpdateListingRequest) (*domain.Listing, error) {
	if err := authz.Allow(p, authz.ActionUpdate, authz.ResourceListing); err != nil {
		return nil, err
	}
	l, err := s.store.Listings().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if err := authz.CanManageListing(p, l.Company.OwnerID); err != nil {
		return nil, err
	}

	if r.Title != nil {
		if strings.TrimSpace(*r.Title) == "" {
			return nil, fmt.Errorf("%w: title cannot be empty", domain.ErrValidation)
		}
		l.Title = strings.TrimSpace(*r.Title)
	}
	if r.Description != nil {
		l.Description = *r.Description
	}
	if r.Requirements != nil {
		l.Requirements = *r.Requirements
	}
	if r.Location != nil {
		l.Location = *r.Location
	}
	if r.Salary != nil {
		if *r.Salary < 0 {
			return nil, fmt.Errorf("%w: salary must be non-negative", domain.ErrValidation)
		}
		l.Salary = *r.Salary
	}
	if r.Active != nil {
		l.Active = *r.Active
	}

	// Save without the association so the company row stays untouched.
	company := l.Company
	l.Company = nil
	if err := s.store.Listings().Update(ctx, l); err != nil {
		return nil, err
	}
	l.Company = company
	return l, nil
}

func (s *ListingServiceImpl) Deactivate(ctx context.Context, p *domain.Principal, id domain.ListingID) error {
	if err := authz.Allow(p, authz.ActionDelete, authz.ResourceListing); err != nil {
		return err
	}
	l, err := s.store.Listings().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		return err
	}
	if err := authz.CanManageListing(p, l.Company.OwnerID); err != nil {
		return err
	}
	if err := s.store.Listings().SetActive(ctx, id, false); err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		return err
	}
	slog.Info("listing deactivated", "listing_id", id, "by", p.ID)
	return nil
}
