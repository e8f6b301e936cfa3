package impl

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"jobboard/internal/domain"
	"jobboard/internal/dto"
	"jobboard/internal/observability/metrics"
	"jobboard/internal/service"
	"jobboard/internal/store"

	"github.com/google/uuid"
)

type AuthConfig struct {
	ActivationTTL     time.Duration
	ActivationBaseURL string
}

type AuthServiceImpl struct {
	store    *store.Store
	password service.PasswordService
	tokens   service.TokenService
	email    service.EmailService
	cfg      AuthConfig
}

func NewAuthServiceImpl(st *store.Store, password service.PasswordService, tokens service.TokenService, email service.EmailService, cfg AuthConfig) *AuthServiceImpl {
	return &AuthServiceImpl{
		store:    st,
		password: password,
		tokens:   tokens,
		email:    email,
		cfg:      cfg,
	}
}

func (a *AuthServiceImpl) Signup(ctx context.Context, r dto.SignupRequest) (*dto.SignupResponse, error) {
	result := "success"
	defer func() {
		metrics.SignupsTotal.WithLabelValues(result).Inc()
	}()

	// 1) basic validation
	if strings.TrimSpace(r.Email) == "" || strings.TrimSpace(r.Username) == "" {
		result = "failure"
		return nil, fmt.Errorf("%w: email and username are required", domain.ErrValidation)
	}
	if r.Password == "" {
		result = "failure"
		return nil, fmt.Errorf("%w: %w", domain.ErrValidation, ErrEmptyPassword)
	}
	if len(r.Password) < minPasswordLength {
		result = "failure"
		return nil, fmt.Errorf("%w: %w", domain.ErrValidation, ErrPasswordLength)
	}

	role := domain.SignupRole(r.Role)

	var (
		user       *domain.User
		rawToken   string
	)

	// 2) single transaction: user + credential + activation token
	err := a.store.WithTx(ctx, func(tx *store.Store) error {
		now := time.Now().UTC()
		user = &domain.User{
			ID:        uuid.New(),
			Email:     strings.TrimSpace(r.Email),
			Username:  strings.TrimSpace(r.Username),
			Role:      role,
			Active:    false, // stays false until Activate succeeds
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := tx.Users().Create(ctx, user); err != nil {
			return err
		}

		hash, salt, paramsJSON, algo, ver, err := a.password.Hash(r.Password)
		if err != nil {
			return err
		}
		cred := &domain.PasswordCredential{
			ID:          uuid.New(),
			UserID:      user.ID,
			Algo:        algo,
			Hash:        hash,
			Salt:        salt,
			ParamsJSON:  paramsJSON,
			PasswordVer: ver,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := tx.Credentials().UpsertPassword(ctx, cred); err != nil {
			return err
		}

		rawToken, err = generateActivationToken()
		if err != nil {
			return err
		}
		return tx.Activations().Create(ctx, &domain.ActivationToken{
			UserID:    user.ID,
			Token:     rawToken,
			ExpiresAt: now.Add(a.cfg.ActivationTTL),
			CreatedAt: now,
		})
	})
	if err != nil {
		result = "failure"
		if errors.Is(err, store.ErrDuplicateKey) {
			return nil, fmt.Errorf("%w: email or username already taken", domain.ErrDuplicateEntity)
		}
		return nil, err
	}

	// 3) best-effort activation mail, after the records are durable
	link := fmt.Sprintf("%s/v1/auth/activate/%s/%s", a.cfg.ActivationBaseURL, user.ID, rawToken)
	if err := a.email.SendActivation(ctx, user.Email, user.Username, link); err != nil {
		metrics.NotificationsTotal.WithLabelValues("activation", "failure").Inc()
		slog.Error("activation mail failed", "user_id", user.ID, "error", err)
	} else {
		metrics.NotificationsTotal.WithLabelValues("activation", "success").Inc()
	}

	return &dto.SignupResponse{
		UserID:             user.ID.String(),
		Username:           user.Username,
		Email:              user.Email,
		Role:               string(user.Role),
		RequiresActivation: true,
	}, nil
}

// Activate consumes the token and flips the account active, atomically. A
// token issued for another user, already spent, or expired leaves the
// account untouched.
func (a *AuthServiceImpl) Activate(ctx context.Context, userID domain.UserID, token string) error {
	result := "success"
	defer func() {
		metrics.ActivationsTotal.WithLabelValues(result).Inc()
	}()

	if token == "" {
		result = "failure"
		return domain.ErrInvalidToken
	}

	err := a.store.WithTx(ctx, func(tx *store.Store) error {
		if err := tx.Activations().Consume(ctx, userID, token, time.Now().UTC()); err != nil {
			return err
		}
		return tx.Users().SetActive(ctx, userID)
	})
	if err != nil {
		result = "failure"
		if errors.Is(err, store.ErrRecordNotFound) {
			return domain.ErrInvalidToken
		}
		return err
	}

	slog.Info("account activated", "user_id", userID)
	return nil
}

func (a *AuthServiceImpl) Login(ctx context.Context, r dto.LoginRequest, ip, ua string) (*dto.TokenResponse, error) {
	result := "success"
	defer func() {
		metrics.LoginsTotal.WithLabelValues(result).Inc()
	}()

	if r.EmailOrUsername == "" || r.Password == "" {
		result = "failure"
		return nil, domain.ErrInvalidCredentials
	}

	var tokens *dto.TokenResponse

	err := a.store.WithTx(ctx, func(tx *store.Store) error {
		var user *domain.User
		var err error
		if strings.ContainsRune(r.EmailOrUsername, '@') {
			user, err = tx.Users().GetByEmail(ctx, r.EmailOrUsername)
		} else {
			user, err = tx.Users().GetByUsername(ctx, r.EmailOrUsername)
		}
		if err != nil {
			return domain.ErrInvalidCredentials // don't leak which field failed
		}

		cred, err := tx.Credentials().GetPasswordByUserID(ctx, user.ID)
		if err != nil {
			return domain.ErrInvalidCredentials
		}

		rehashNeeded, ok := a.password.Verify(r.Password, cred)
		if !ok {
			return domain.ErrInvalidCredentials
		}
		if !user.Active {
			return domain.ErrNotActivated
		}

		// transparent rehash on policy upgrade
		if rehashNeeded {
			hash, salt, paramsJSON, algo, ver, err := a.password.Hash(r.Password)
			if err != nil {
				return err
			}
			cred.Algo = algo
			cred.Hash = hash
			cred.Salt = salt
			cred.ParamsJSON = paramsJSON
			cred.PasswordVer = ver
			if err := tx.Credentials().UpsertPassword(ctx, cred); err != nil {
				return err
			}
		}

		tr, err := a.tokens.Issue(ctx, user, ip, ua)
		if err != nil {
			return err
		}
		tokens = tr
		return nil
	})
	if err != nil {
		result = "failure"
		return nil, err
	}
	return tokens, nil
}

func (a *AuthServiceImpl) DeleteUser(ctx context.Context, p *domain.Principal, userID domain.UserID) (map[string]int64, error) {
	if p == nil {
		return nil, domain.ErrUnauthorized
	}
	if !p.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	deleted, err := a.store.DeleteUserData(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	slog.Info("user deleted", "user_id", userID, "by", p.ID, "counts", deleted)
	return deleted, nil
}

func generateActivationToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
