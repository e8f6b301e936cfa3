package store

import (
	"context"
	"time"

	"jobboard/internal/domain"

	"gorm.io/gorm"
)

type ActivationStore struct{ db *gorm.DB }

func (s *Store) Activations() *ActivationStore { return &ActivationStore{db: s.DB} }

func (a *ActivationStore) Create(ctx context.Context, t *domain.ActivationToken) error {
	return translate(a.db.WithContext(ctx).Create(t).Error)
}

// Consume atomically spends the token: it must belong to userID, be
// unconsumed and unexpired. Returns ErrRecordNotFound when nothing matched,
// which the caller surfaces as an invalid token.
func (a *ActivationStore) Consume(ctx context.Context, userID domain.UserID, token string, now time.Time) error {
	res := a.db.WithContext(ctx).Model(&domain.ActivationToken{}).
		Where("user_id = ? AND token = ? AND consumed = ? AND expires_at > ?", userID, token, false, now).
		Update("consumed", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}
