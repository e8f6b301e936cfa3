package store

import (
	"context"
	"time"

	"jobboard/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SessionStore struct{ db *gorm.DB }

func (s *Store) Sessions() *SessionStore { return &SessionStore{db: s.DB} }

func (ss *SessionStore) Create(ctx context.Context, sess *domain.Session) error {
	if sess.ID == uuid.Nil {
		sess.ID = uuid.New()
	}
	if sess.RefreshID == uuid.Nil {
		sess.RefreshID = uuid.New()
	}
	return translate(ss.db.WithContext(ctx).Create(sess).Error)
}

func (ss *SessionStore) GetByRefreshID(ctx context.Context, rid uuid.UUID) (*domain.Session, error) {
	var sess domain.Session
	if err := ss.db.WithContext(ctx).First(&sess, "refresh_id = ?", rid).Error; err != nil {
		return nil, translate(err)
	}
	return &sess, nil
}

func (ss *SessionStore) Rotate(ctx context.Context, id domain.SessionID, newRefreshID uuid.UUID, expiresAt time.Time, ip, ua string) error {
	return ss.db.WithContext(ctx).Model(&domain.Session{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"refresh_id": newRefreshID,
			"expires_at": expiresAt,
			"ip":         ip,
			"user_agent": ua,
		}).Error
}

func (ss *SessionStore) Revoke(ctx context.Context, id domain.SessionID, at time.Time) error {
	return ss.db.WithContext(ctx).Model(&domain.Session{}).
		Where("id = ?", id).
		Update("revoked_at", at).Error
}

func (ss *SessionStore) RevokeAllForUser(ctx context.Context, userID domain.UserID, at time.Time) (int64, error) {
	tx := ss.db.WithContext(ctx).Model(&domain.Session{}).
		Where("user_id = ? AND revoked_at IS NULL", userID).
		Update("revoked_at", at)
	return tx.RowsAffected, tx.Error
}
