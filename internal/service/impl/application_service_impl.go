package impl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"jobboard/internal/authz"
	"jobboard/internal/domain"
	"jobboard/internal/dto"
	"jobboard/internal/observability/metrics"
	"jobboard/internal/service"
	"jobboard/internal/store"

	"github.com/google/uuid"
)

// resumeStorage is the slice of the blob store the workflow needs.
type resumeStorage interface {
	Save(data []byte, originalName string) (string, error)
	Open(path string) ([]byte, error)
	Remove(path string) error
}

type ApplicationServiceImpl struct {
	store   *store.Store
	email   service.EmailService
	resumes resumeStorage
}

func NewApplicationServiceImpl(st *store.Store, email service.EmailService, resumes resumeStorage) *ApplicationServiceImpl {
	return &ApplicationServiceImpl{store: st, email: email, resumes: resumes}
}

var _ service.ApplicationService = (*ApplicationServiceImpl)(nil)

func (s *ApplicationServiceImpl) Submit(ctx context.Context, p *domain.Principal, r dto.SubmitApplicationRequest) (*domain.Application, error) {
	result := "success"
	defer func() {
		metrics.ApplicationsSubmittedTotal.WithLabelValues(result).Inc()
	}()

	if err := authz.Allow(p, authz.ActionCreate, authz.ResourceApplication); err != nil {
		result = "failure"
		return nil, err
	}
	if len(r.Resume) == 0 {
		result = "failure"
		return nil, fmt.Errorf("%w: resume is required", domain.ErrValidation)
	}
	listingID, err := uuid.Parse(r.ListingID)
	if err != nil {
		result = "failure"
		return nil, fmt.Errorf("%w: invalid listing id", domain.ErrValidation)
	}

	listing, err := s.store.Listings().GetByID(ctx, listingID)
	if err != nil {
		result = "failure"
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if !listing.Active {
		result = "failure"
		return nil, fmt.Errorf("%w: listing is no longer active", domain.ErrValidation)
	}

	resumePath, err := s.resumes.Save(r.Resume, r.ResumeName)
	if err != nil {
		result = "failure"
		return nil, err
	}

	app := &domain.Application{
		ID:          uuid.New(),
		ListingID:   listing.ID,
		CandidateID: p.ID,
		ResumePath:  resumePath,
		CoverLetter: r.CoverLetter,
		Status:      domain.ApplicationPending,
		AppliedAt:   time.Now().UTC(),
	}
	err = s.store.WithTx(ctx, func(tx *store.Store) error {
		return tx.Applications().Create(ctx, app)
	})
	if err != nil {
		result = "failure"
		// The blob was written before the insert; don't leave it orphaned.
		if rErr := s.resumes.Remove(resumePath); rErr != nil {
			slog.Error("orphaned resume cleanup failed", "path", resumePath, "error", rErr)
		}
		if errors.Is(err, store.ErrDuplicateKey) {
			return nil, fmt.Errorf("%w: you already applied to this listing", domain.ErrDuplicateEntity)
		}
		return nil, err
	}
	app.Listing = listing

	// Record is durable; notifications are best-effort from here on.
	s.notify(ctx, "application_received", func() error {
		return s.email.SendApplicationReceived(ctx, p.Email, listing.Title)
	})
	s.notify(ctx, "new_applicant", func() error {
		return s.email.SendNewApplicant(ctx, listing.Company.ContactEmail, p.Username, listing.Title)
	})

	slog.Info("application submitted", "application_id", app.ID, "listing_id", listing.ID, "candidate_id", p.ID)
	return app, nil
}

func (s *ApplicationServiceImpl) notify(ctx context.Context, kind string, send func() error) {
	if err := send(); err != nil {
		metrics.NotificationsTotal.WithLabelValues(kind, "failure").Inc()
		slog.Error("notification failed", "kind", kind, "error", err)
		return
	}
	metrics.NotificationsTotal.WithLabelValues(kind, "success").Inc()
}

func (s *ApplicationServiceImpl) Get(ctx context.Context, p *domain.Principal, id domain.ApplicationID) (*domain.Application, error) {
	if err := authz.Allow(p, authz.ActionRead, authz.ResourceApplication); err != nil {
		return nil, err
	}
	app, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !p.IsAdmin() && app.Listing.Company.OwnerID != p.ID {
		return nil, domain.ErrNotFound
	}
	return app, nil
}

// OpenResume hands out the stored resume for an application the caller may
// see. The filename keeps the storage extension but not the storage path.
func (s *ApplicationServiceImpl) OpenResume(ctx context.Context, p *domain.Principal, id domain.ApplicationID) ([]byte, string, error) {
	app, err := s.Get(ctx, p, id)
	if err != nil {
		return nil, "", err
	}
	data, err := s.resumes.Open(app.ResumePath)
	if err != nil {
		return nil, "", fmt.Errorf("open resume for %s: %w", id, err)
	}
	name := fmt.Sprintf("resume-%s%s", app.ID, filepath.Ext(app.ResumePath))
	return data, name, nil
}

func (s *ApplicationServiceImpl) List(ctx context.Context, p *domain.Principal, f store.ApplicationFilter, page store.Page) ([]domain.Application, int64, error) {
	if err := authz.Allow(p, authz.ActionList, authz.ResourceApplication); err != nil {
		return nil, 0, err
	}
	return s.store.Applications().List(ctx, authz.ApplicationsVisibleTo(p), f, page)
}

// UpdateStatus drives the pending → accepted|rejected machine. Re-asserting
// the same terminal state is an idempotent no-op; every other move out of a
// terminal state fails.
func (s *ApplicationServiceImpl) UpdateStatus(ctx context.Context, p *domain.Principal, id domain.ApplicationID, status domain.ApplicationStatus) (*domain.Application, error) {
	if err := authz.Allow(p, authz.ActionUpdate, authz.ResourceApplication); err != nil {
		return nil, err
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, status)
	}
	if status == domain.ApplicationPending {
		return nil, domain.ErrInvalidTransition
	}

	app, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authz.CanManageListing(p, app.Listing.Company.OwnerID); err != nil {
		return nil, err
	}

	if app.Status == status {
		return app, nil // already decided the same way
	}
	if app.Status.Terminal() {
		return nil, domain.ErrInvalidTransition
	}

	// Conditional update: a concurrent decision wins and this one fails.
	if err := s.store.Applications().SetStatus(ctx, id, domain.ApplicationPending, status); err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, domain.ErrInvalidTransition
		}
		return nil, err
	}
	app.Status = status
	slog.Info("application status updated", "application_id", id, "status", status, "by", p.ID)
	return app, nil
}

func (s *ApplicationServiceImpl) load(ctx context.Context, id domain.ApplicationID) (*domain.Application, error) {
	app, err := s.store.Applications().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if app.Listing == nil || app.Listing.Company == nil {
		return nil, fmt.Errorf("application %s missing listing association", id)
	}
	return app, nil
}
