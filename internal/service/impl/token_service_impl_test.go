package impl

import (
	"context"
	"errors"
	"testing"
	"time"

	"jobboard/internal/domain"
	"jobboard/internal/dto"
)

func TestIssueAndAuthenticate(t *testing.T) {
	st := setupStore(t)
	ts := testTokenService(st)
	ctx := context.Background()

	u := createUser(t, st, domain.RoleEmployer, true)
	pair, err := ts.Issue(ctx, u, "203.0.113.7", "test-agent")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatal("expected both tokens")
	}
	if pair.ExpiresIn != int64((15 * time.Minute).Seconds()) {
		t.Fatalf("expiresIn = %d", pair.ExpiresIn)
	}

	p, err := ts.Authenticate(ctx, pair.AccessToken)
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if p.ID != u.ID || p.Username != u.Username || p.Email != u.Email {
		t.Fatalf("principal mismatch: %+v", p)
	}
	if !p.IsEmployer() {
		t.Fatalf("role = %q, want employer", p.Role)
	}

	// the two token kinds are not interchangeable
	if _, err := ts.Authenticate(ctx, pair.RefreshToken); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("refresh as access: err = %v, want ErrUnauthorized", err)
	}
	if _, err := ts.Refresh(ctx, pair.AccessToken, "127.0.0.1", "test"); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("access as refresh: err = %v, want ErrUnauthorized", err)
	}
	if _, err := ts.Authenticate(ctx, "garbage"); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("garbage: err = %v, want ErrUnauthorized", err)
	}
}

func TestAuthenticateRejectsForeignKey(t *testing.T) {
	st := setupStore(t)
	ts := testTokenService(st)
	ctx := context.Background()

	other := NewTokenServiceHS256(TokenConfig{
		Issuer:     "http://test",
		Audience:   "test-clients",
		AccessTTL:  15 * time.Minute,
		RefreshTTL: 24 * time.Hour,
		SigningKey: []byte("a different signing key"),
	}, st)

	u := createUser(t, st, domain.RoleCandidate, true)
	pair, err := other.Issue(ctx, u, "127.0.0.1", "test")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := ts.Authenticate(ctx, pair.AccessToken); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("foreign signature: err = %v, want ErrUnauthorized", err)
	}
}

func TestRefreshRotates(t *testing.T) {
	st := setupStore(t)
	ts := testTokenService(st)
	ctx := context.Background()

	u := createUser(t, st, domain.RoleCandidate, true)
	pair, err := ts.Issue(ctx, u, "127.0.0.1", "test")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	next, err := ts.Refresh(ctx, pair.RefreshToken, "127.0.0.1", "test")
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if next.RefreshToken == pair.RefreshToken {
		t.Fatal("refresh token must rotate")
	}
	if _, err := ts.Authenticate(ctx, next.AccessToken); err != nil {
		t.Fatalf("new access token: %v", err)
	}

	// the old refresh id died with the rotation
	if _, err := ts.Refresh(ctx, pair.RefreshToken, "127.0.0.1", "test"); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("replayed refresh: err = %v, want ErrUnauthorized", err)
	}
}

func TestRevokeAllCutsOffRefresh(t *testing.T) {
	st := setupStore(t)
	ts := testTokenService(st)
	ctx := context.Background()

	u := createUser(t, st, domain.RoleCandidate, true)
	first, err := ts.Issue(ctx, u, "127.0.0.1", "laptop")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	second, err := ts.Issue(ctx, u, "127.0.0.1", "phone")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	n, err := ts.RevokeAll(ctx, u.ID)
	if err != nil {
		t.Fatalf("revoke all: %v", err)
	}
	if n != 2 {
		t.Fatalf("revoked %d sessions, want 2", n)
	}

	for i, pair := range []*dto.TokenResponse{first, second} {
		if _, err := ts.Refresh(ctx, pair.RefreshToken, "127.0.0.1", "test"); !errors.Is(err, domain.ErrUnauthorized) {
			t.Errorf("session %d refresh after revoke-all: err = %v, want ErrUnauthorized", i, err)
		}
	}

	// sessions of other users stay untouched
	other := createUser(t, st, domain.RoleCandidate, true)
	pair, err := ts.Issue(ctx, other, "127.0.0.1", "test")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if n, err := ts.RevokeAll(ctx, u.ID); err != nil || n != 0 {
		t.Fatalf("second revoke-all: n=%d err=%v, want 0 and nil", n, err)
	}
	if _, err := ts.Refresh(ctx, pair.RefreshToken, "127.0.0.1", "test"); err != nil {
		t.Fatalf("other user's refresh: %v", err)
	}
}

func TestRefreshRevokedSession(t *testing.T) {
	st := setupStore(t)
	ts := testTokenService(st)
	ctx := context.Background()

	u := createUser(t, st, domain.RoleCandidate, true)
	pair, err := ts.Issue(ctx, u, "127.0.0.1", "test")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	var sess domain.Session
	if err := st.DB.First(&sess, "user_id = ?", u.ID).Error; err != nil {
		t.Fatalf("load session: %v", err)
	}
	if err := ts.RevokeSession(ctx, sess.ID); err != nil {
		t.Fatalf("revoke: %v", err)
	}

	if _, err := ts.Refresh(ctx, pair.RefreshToken, "127.0.0.1", "test"); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("revoked session refresh: err = %v, want ErrUnauthorized", err)
	}
}
