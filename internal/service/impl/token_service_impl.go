package impl

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"jobboard/internal/domain"
	"jobboard/internal/dto"
	"jobboard/internal/netutil"
	"jobboard/internal/observability/metrics"
	"jobboard/internal/observability/middleware"
	"jobboard/internal/store"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type TokenConfig struct {
	Issuer     string
	Audience   string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
	SigningKey []byte // HS256 secret
}

// AccessClaims carries the role flags clients key their UI off, plus the
// session binding. The use claim keeps access and refresh tokens from being
// swapped for each other.
type AccessClaims struct {
	SID         string `json:"sid"`
	Use         string `json:"use"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	IsAdmin     bool   `json:"is_admin"`
	IsEmployer  bool   `json:"is_employer"`
	IsCandidate bool   `json:"is_candidate"`
	jwt.RegisteredClaims
}

type RefreshClaims struct {
	SID                  string `json:"sid"`
	Use                  string `json:"use"`
	jwt.RegisteredClaims        // jti == refresh_id
}

const (
	tokenUseAccess  = "access"
	tokenUseRefresh = "refresh"
)

type TokenServiceImpl struct {
	cfg   TokenConfig
	store *store.Store
}

func NewTokenServiceHS256(cfg TokenConfig, st *store.Store) *TokenServiceImpl {
	return &TokenServiceImpl{cfg: cfg, store: st}
}

// Issue creates a session row (with a fresh refresh id) and returns an
// access+refresh token pair.
func (t *TokenServiceImpl) Issue(ctx context.Context, user *domain.User, ip, ua string) (*dto.TokenResponse, error) {
	result := "success"
	defer func() {
		metrics.TokensIssuedTotal.WithLabelValues("issue", result).Inc()
	}()
	ip = normalizeIP(ip)
	ua = netutil.TruncateUserAgent(ua)
	now := time.Now().UTC()

	sess := &domain.Session{
		ID:        uuid.New(),
		UserID:    user.ID,
		RefreshID: uuid.New(),
		ExpiresAt: now.Add(t.cfg.RefreshTTL),
		CreatedAt: now,
		IP:        ip,
		UserAgent: ua,
	}
	if err := t.store.Sessions().Create(ctx, sess); err != nil {
		result = "failure"
		return nil, err
	}

	access, err := t.signAccess(user, sess, now)
	if err != nil {
		result = "failure"
		return nil, err
	}
	refresh, err := t.signRefresh(user.ID, sess, now)
	if err != nil {
		result = "failure"
		return nil, err
	}

	reqID := middleware.RequestIDFromContext(ctx)
	slog.Info("issued tokens", "session_id", sess.ID, "user_id", user.ID, "role", user.Role, "request_id", reqID)

	return &dto.TokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(t.cfg.AccessTTL.Seconds()),
	}, nil
}

// Refresh validates the refresh JWT, checks session state, rotates the
// refresh id, and returns new tokens.
func (t *TokenServiceImpl) Refresh(ctx context.Context, refreshToken string, ip, ua string) (*dto.TokenResponse, error) {
	result := "success"
	defer func() {
		metrics.TokensIssuedTotal.WithLabelValues("refresh", result).Inc()
	}()
	ip = normalizeIP(ip)
	ua = netutil.TruncateUserAgent(ua)
	now := time.Now().UTC()

	parsed, claims, err := t.parseRefresh(refreshToken)
	if err != nil || !parsed.Valid {
		result = "failure"
		return nil, domain.ErrUnauthorized
	}
	rid, err := uuid.Parse(claims.ID)
	if err != nil {
		result = "failure"
		return nil, domain.ErrUnauthorized
	}

	sess, err := t.store.Sessions().GetByRefreshID(ctx, rid)
	if err != nil {
		result = "failure"
		return nil, domain.ErrUnauthorized
	}
	if sess.RevokedAt != nil || now.After(sess.ExpiresAt) {
		result = "failure"
		return nil, domain.ErrUnauthorized
	}

	// The access token needs current user claims, so reload the user.
	user, err := t.store.Users().GetByID(ctx, sess.UserID)
	if err != nil {
		result = "failure"
		return nil, domain.ErrUnauthorized
	}

	newRID := uuid.New()
	newExp := now.Add(t.cfg.RefreshTTL)
	if err := t.store.Sessions().Rotate(ctx, sess.ID, newRID, newExp, ip, ua); err != nil {
		result = "failure"
		return nil, err
	}
	sess.RefreshID = newRID
	sess.ExpiresAt = newExp

	accessJWT, err := t.signAccess(user, sess, now)
	if err != nil {
		result = "failure"
		return nil, err
	}
	refreshJWT, err := t.signRefresh(sess.UserID, sess, now)
	if err != nil {
		result = "failure"
		return nil, err
	}

	slog.Info("refreshed tokens", "session_id", sess.ID, "user_id", sess.UserID,
		"request_id", middleware.RequestIDFromContext(ctx))

	return &dto.TokenResponse{
		AccessToken:  accessJWT,
		RefreshToken: refreshJWT,
		ExpiresIn:    int64(t.cfg.AccessTTL.Seconds()),
	}, nil
}

// Authenticate validates an access JWT and reconstructs the principal from
// its claims. Stateless: no session lookup on the hot path.
func (t *TokenServiceImpl) Authenticate(ctx context.Context, accessToken string) (*domain.Principal, error) {
	claims := &AccessClaims{}
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	tok, err := parser.ParseWithClaims(accessToken, claims, func(token *jwt.Token) (interface{}, error) {
		return t.cfg.SigningKey, nil
	})
	if err != nil || !tok.Valid {
		return nil, domain.ErrUnauthorized
	}
	if claims.Issuer != t.cfg.Issuer || !containsAudience(claims.Audience, t.cfg.Audience) {
		return nil, domain.ErrUnauthorized
	}
	if claims.Use != tokenUseAccess {
		return nil, domain.ErrUnauthorized
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}

	role := domain.RoleCandidate
	switch {
	case claims.IsAdmin:
		role = domain.RoleAdmin
	case claims.IsEmployer:
		role = domain.RoleEmployer
	}
	return &domain.Principal{
		ID:       userID,
		Username: claims.Name,
		Email:    claims.Email,
		Role:     role,
	}, nil
}

func (t *TokenServiceImpl) RevokeSession(ctx context.Context, sessionID domain.SessionID) error {
	return t.store.Sessions().Revoke(ctx, sessionID, time.Now().UTC())
}

func (t *TokenServiceImpl) RevokeAll(ctx context.Context, userID domain.UserID) (int64, error) {
	n, err := t.store.Sessions().RevokeAllForUser(ctx, userID, time.Now().UTC())
	if err != nil {
		return 0, err
	}
	slog.Info("revoked all sessions", "user_id", userID, "count", n)
	return n, nil
}

func (t *TokenServiceImpl) signAccess(user *domain.User, sess *domain.Session, now time.Time) (string, error) {
	claims := AccessClaims{
		SID:         sess.ID.String(),
		Use:         tokenUseAccess,
		Name:        user.Username,
		Email:       user.Email,
		IsAdmin:     user.Role == domain.RoleAdmin,
		IsEmployer:  user.Role == domain.RoleEmployer,
		IsCandidate: user.Role == domain.RoleCandidate,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    t.cfg.Issuer,
			Subject:   user.ID.String(),
			Audience:  jwt.ClaimStrings{t.cfg.Audience},
			ExpiresAt: jwt.NewNumericDate(now.Add(t.cfg.AccessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.New().String(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.cfg.SigningKey)
}

func (t *TokenServiceImpl) signRefresh(userID domain.UserID, sess *domain.Session, now time.Time) (string, error) {
	claims := RefreshClaims{
		SID: sess.ID.String(),
		Use: tokenUseRefresh,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    t.cfg.Issuer,
			Subject:   userID.String(),
			Audience:  jwt.ClaimStrings{t.cfg.Audience},
			ExpiresAt: jwt.NewNumericDate(sess.ExpiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        sess.RefreshID.String(), // binds the JWT to the session row
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.cfg.SigningKey)
}

func (t *TokenServiceImpl) parseRefresh(tokenStr string) (*jwt.Token, *RefreshClaims, error) {
	claims := &RefreshClaims{}
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	tok, err := parser.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return t.cfg.SigningKey, nil
	})
	if err != nil {
		return nil, nil, err
	}
	if claims.Issuer != t.cfg.Issuer {
		return nil, nil, errors.New("bad issuer")
	}
	if !containsAudience(claims.Audience, t.cfg.Audience) {
		return nil, nil, errors.New("bad audience")
	}
	if claims.Use != tokenUseRefresh {
		return nil, nil, errors.New("not a refresh token")
	}
	return tok, claims, nil
}

func containsAudience(aud jwt.ClaimStrings, expected string) bool {
	for _, a := range aud {
		if a == expected {
			return true
		}
	}
	return false
}

func normalizeIP(ip string) string {
	if normalized, ok := netutil.NormalizeIP(ip); ok {
		return normalized
	}
	return strings.TrimSpace(ip)
}
