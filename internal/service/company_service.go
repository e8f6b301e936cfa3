package service

import (
	"context"

	"jobboard/internal/domain"
	"jobboard/internal/dto"
	"jobboard/internal/store"
)

type CompanyService interface {
	Create(ctx context.Context, p *domain.Principal, r dto.CompanyRequest) (*domain.Company, error)
	Get(ctx context.Context, p *domain.Principal, id domain.CompanyID) (*domain.Company, error)
	List(ctx context.Context, p *domain.Principal, page store.Page) ([]domain.Company, int64, error)
	Update(ctx context.Context, p *domain.Principal, id domain.CompanyID, r dto.UpdateCompanyRequest) (*domain.Company, error)
	Delete(ctx context.Context, p *domain.Principal, id domain.CompanyID) error
}
