package service

import (
	"context"

	"jobboard/internal/domain"
	"jobboard/internal/dto"
	"jobboard/internal/store"
)

type ApplicationService interface {
	Submit(ctx context.Context, p *domain.Principal, r dto.SubmitApplicationRequest) (*domain.Application, error)
	Get(ctx context.Context, p *domain.Principal, id domain.ApplicationID) (*domain.Application, error)
	List(ctx context.Context, p *domain.Principal, f store.ApplicationFilter, page store.Page) ([]domain.Application, int64, error)
	UpdateStatus(ctx context.Context, p *domain.Principal, id domain.ApplicationID, status domain.ApplicationStatus) (*domain.Application, error)
	// OpenResume returns the stored resume blob and a download filename,
	// under the same visibility rules as Get.
	OpenResume(ctx context.Context, p *domain.Principal, id domain.ApplicationID) ([]byte, string, error)
}
