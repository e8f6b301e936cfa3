package service

import (
	"context"

	"jobboard/internal/domain"
	"jobboard/internal/dto"
	"jobboard/internal/store"
)

type ListingService interface {
	Create(ctx context.Context, p *domain.Principal, r dto.CreateListingRequest) (*domain.Listing, error)
	Get(ctx context.Context, p *domain.Principal, id domain.ListingID) (*domain.Listing, error)
	List(ctx context.Context, p *domain.Principal, f store.ListingFilter, page store.Page) ([]domain.Listing, int64, error)
	Update(ctx context.Context, p *domain.Principal, id domain.ListingID, r dto.UpdateListingRequest) (*domain.Listing, error)
	// Deactivate is the DELETE semantics for listings: postings are switched
	// off rather than removed.
	Deactivate(ctx context.Context, p *domain.Principal, id domain.ListingID) error
}
