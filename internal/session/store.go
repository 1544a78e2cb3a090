package session

import (
	"context"
	"time"
)

// Session binds an opaque token to the admin identity. It is never
// mutated after creation: the expiry is fixed at issue time and does not
// slide on activity.
type Session struct {
	SessionID string    `json:"session_id"`
	UserID    int64     `json:"user_id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session is past its fixed expiry.
func (s Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// Store defines how sessions are stored and retrieved. Get returns
// (nil, nil) for an unknown token; expiry is the caller's concern so the
// check does not depend on any store-side sweeper.
type Store interface {
	Create(ctx context.Context, s Session) error
	Get(ctx context.Context, sessionID string) (*Session, error)
	Delete(ctx context.Context, sessionID string) error
}
