package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MroGG1/rpl-backend/internal/auth/credentials"
	"github.com/MroGG1/rpl-backend/internal/session"
)

var (
	// ErrInvalidCredentials covers both unknown usernames and wrong
	// passwords. Callers must not be able to tell the two apart.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnauthenticated means the session token is absent, unknown or
	// past its expiry.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrStoreUnavailable wraps unexpected backend failures so handlers
	// answer 500 instead of leaking a 401.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// SessionTTL is fixed at issue time; expiry never slides on activity.
const SessionTTL = 24 * time.Hour

// Manager owns the session lifecycle: it validates credentials, issues
// sessions and destroys them. Both stores are injected so tests can run
// against in-memory fakes.
type Manager struct {
	credentials credentials.Store
	sessions    session.Store
	now         func() time.Time
}

func NewManager(creds credentials.Store, sessions session.Store) *Manager {
	return &Manager{
		credentials: creds,
		sessions:    sessions,
		now:         time.Now,
	}
}

// Login validates the credentials and creates a fresh session. Earlier
// sessions for the same user stay valid; there is no single-session rule.
func (m *Manager) Login(
	ctx context.Context,
	username string,
	password string,
) (*session.Session, error) {

	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	admin, err := m.credentials.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	if admin == nil {
		return nil, ErrInvalidCredentials
	}

	if err := credentials.VerifyPassword(admin.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	sessionID, err := session.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	now := m.now()
	sess := session.Session{
		SessionID: sessionID,
		UserID:    admin.ID,
		Username:  admin.Username,
		CreatedAt: now,
		ExpiresAt: now.Add(SessionTTL),
	}

	if err := m.sessions.Create(ctx, sess); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return &sess, nil
}

// Profile resolves the token to the bound username. Expired sessions are
// treated exactly like absent ones and are dropped best-effort; the
// expiry is never renewed.
func (m *Manager) Profile(
	ctx context.Context,
	token string,
) (string, error) {

	if token == "" {
		return "", ErrUnauthenticated
	}

	sess, err := m.sessions.Get(ctx, token)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	if sess == nil {
		return "", ErrUnauthenticated
	}

	if sess.Expired(m.now()) {
		_ = m.sessions.Delete(ctx, token)
		return "", ErrUnauthenticated
	}

	return sess.Username, nil
}

// Logout destroys the session if present. Idempotent: an absent or
// already-expired token still reports success.
func (m *Manager) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	if err := m.sessions.Delete(ctx, token); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return nil
}
