package service

import (
	"context"

	"jobboard/internal/domain"
	"jobboard/internal/dto"
)

type AuthService interface {
	Signup(ctx context.Context, r dto.SignupRequest) (*dto.SignupResponse, error)
	Activate(ctx context.Context, userID domain.UserID, token string) error
	Login(ctx context.Context, r dto.LoginRequest, ip, ua string) (*dto.TokenResponse, error)
	// DeleteUser removes a user and everything the ownership graph hangs off
	// them. Admin only; returns per-table counts of removed rows.
	DeleteUser(ctx context.Context, p *domain.Principal, userID domain.UserID) (map[string]int64, error)
}
