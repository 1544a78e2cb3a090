package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MroGG1/rpl-backend/internal/auth/credentials"
	"github.com/MroGG1/rpl-backend/internal/session"
)

type fakeCredentialStore struct {
	admins map[string]credentials.Admin
	err    error
}

func (f *fakeCredentialStore) FindByUsername(
	_ context.Context,
	username string,
) (*credentials.Admin, error) {
	if f.err != nil {
		return nil, f.err
	}
	a, ok := f.admins[username]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func newTestManager(t *testing.T) *Manager {
	t.Helper()

	hash, err := credentials.HashPassword("correct-pw")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	creds := &fakeCredentialStore{
		admins: map[string]credentials.Admin{
			"admin": {ID: 1, Username: "admin", PasswordHash: hash},
		},
	}

	return NewManager(creds, session.NewMemoryStore())
}

func TestLoginIssuesSessionBoundToUsername(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t)

	sess, err := m.Login(ctx, "admin", "correct-pw")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	if sess.Username != "admin" || sess.UserID != 1 {
		t.Errorf("session = %+v, want admin/1", sess)
	}

	ttl := sess.ExpiresAt.Sub(sess.CreatedAt)
	if ttl != SessionTTL {
		t.Errorf("session ttl = %v, want %v", ttl, SessionTTL)
	}

	username, err := m.Profile(ctx, sess.SessionID)
	if err != nil {
		t.Fatalf("Profile: %v", err)
	}
	if username != "admin" {
		t.Errorf("Profile = %q, want admin", username)
	}
}

func TestLoginDoesNotRevealWhetherUsernameExists(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t)

	_, errWrongPassword := m.Login(ctx, "admin", "wrong-pw")
	_, errUnknownUser := m.Login(ctx, "nobody", "whatever")

	if !errors.Is(errWrongPassword, ErrInvalidCredentials) {
		t.Errorf("wrong password error = %v, want ErrInvalidCredentials", errWrongPassword)
	}
	if !errors.Is(errUnknownUser, ErrInvalidCredentials) {
		t.Errorf("unknown user error = %v, want ErrInvalidCredentials", errUnknownUser)
	}
	if errWrongPassword.Error() != errUnknownUser.Error() {
		t.Errorf("error text differs between unknown user and wrong password: %q vs %q",
			errUnknownUser.Error(), errWrongPassword.Error())
	}
}

func TestLoginRejectsEmptyInput(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t)

	if _, err := m.Login(ctx, "", "correct-pw"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("empty username error = %v, want ErrInvalidCredentials", err)
	}
	if _, err := m.Login(ctx, "admin", ""); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("empty password error = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginSurfacesStoreFailureSeparately(t *testing.T) {
	creds := &fakeCredentialStore{err: errors.New("connection refused")}
	m := NewManager(creds, session.NewMemoryStore())

	_, err := m.Login(context.Background(), "admin", "correct-pw")
	if !errors.Is(err, ErrStoreUnavailable) {
		t.Errorf("store failure error = %v, want ErrStoreUnavailable", err)
	}
	if errors.Is(err, ErrInvalidCredentials) {
		t.Error("store failure must not masquerade as bad credentials")
	}
}

func TestLoginDoesNotInvalidatePriorSessions(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t)

	first, err := m.Login(ctx, "admin", "correct-pw")
	if err != nil {
		t.Fatalf("first Login: %v", err)
	}
	second, err := m.Login(ctx, "admin", "correct-pw")
	if err != nil {
		t.Fatalf("second Login: %v", err)
	}

	if first.SessionID == second.SessionID {
		t.Fatal("two logins shared a session id")
	}

	if _, err := m.Profile(ctx, first.SessionID); err != nil {
		t.Errorf("first session died after second login: %v", err)
	}
	if _, err := m.Profile(ctx, second.SessionID); err != nil {
		t.Errorf("second session unusable: %v", err)
	}
}

func TestProfileTreatsExpiredSessionAsAbsent(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t)

	sess, err := m.Login(ctx, "admin", "correct-pw")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	// jump past the fixed expiry
	m.now = func() time.Time {
		return time.Now().Add(SessionTTL + time.Minute)
	}

	if _, err := m.Profile(ctx, sess.SessionID); !errors.Is(err, ErrUnauthenticated) {
		t.Errorf("expired session error = %v, want ErrUnauthenticated", err)
	}

	// expired session was dropped, not renewed: still dead at real time
	m.now = time.Now
	if _, err := m.Profile(ctx, sess.SessionID); !errors.Is(err, ErrUnauthenticated) {
		t.Errorf("session came back after expiry: %v", err)
	}
}

func TestProfileRejectsEmptyToken(t *testing.T) {
	m := newTestManager(t)

	if _, err := m.Profile(context.Background(), ""); !errors.Is(err, ErrUnauthenticated) {
		t.Errorf("empty token error = %v, want ErrUnauthenticated", err)
	}
}

func TestLogoutDestroysSessionAndIsIdempotent(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t)

	sess, err := m.Login(ctx, "admin", "correct-pw")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	if err := m.Logout(ctx, sess.SessionID); err != nil {
		t.Fatalf("Logout: %v", err)
	}

	if _, err := m.Profile(ctx, sess.SessionID); !errors.Is(err, ErrUnauthenticated) {
		t.Errorf("destroyed session still answers Profile: %v", err)
	}

	// second logout with the same token still succeeds
	if err := m.Logout(ctx, sess.SessionID); err != nil {
		t.Errorf("repeated Logout: %v", err)
	}

	// as does logging out a token that never existed
	if err := m.Logout(ctx, "never-issued"); err != nil {
		t.Errorf("Logout of unknown token: %v", err)
	}
}
