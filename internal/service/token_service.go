package service

import (
	"context"

	"jobboard/internal/domain"
	"jobboard/internal/dto"
)

type TokenService interface {
	Issue(ctx context.Context, user *domain.User, ip, ua string) (*dto.TokenResponse, error)
	Refresh(ctx context.Context, refreshToken string, ip, ua string) (*dto.TokenResponse, error)
	// Authenticate validates an access token and reconstructs the principal
	// from its claims.
	Authenticate(ctx context.Context, accessToken string) (*domain.Principal, error)
	RevokeSession(ctx context.Context, sessionID domain.SessionID) error
	// RevokeAll revokes every live session of the user, cutting off all
	// refresh tokens at once. Returns the number of sessions revoked.
	RevokeAll(ctx context.Context, userID domain.UserID) (int64, error)
}
