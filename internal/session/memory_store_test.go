package session

import (
	"context"
	"testing"
	"time"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	now := time.Now()
	sess := Session{
		SessionID: "tok-1",
		UserID:    1,
		Username:  "admin",
		CreatedAt: now,
		ExpiresAt: now.Add(time.Hour),
	}

	if err := store.Create(ctx, sess); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := store.Get(ctx, "tok-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got == nil {
		t.Fatal("Get returned nil for stored session")
	}
	if got.Username != "admin" || got.UserID != 1 {
		t.Errorf("Get = %+v, want username admin, user id 1", got)
	}
}

func TestMemoryStoreUnknownTokenIsNilNil(t *testing.T) {
	store := NewMemoryStore()

	got, err := store.Get(context.Background(), "no-such-token")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != nil {
		t.Errorf("Get on unknown token = %+v, want nil", got)
	}
}

func TestMemoryStoreDeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	now := time.Now()
	if err := store.Create(ctx, Session{
		SessionID: "tok-2",
		UserID:    1,
		Username:  "admin",
		CreatedAt: now,
		ExpiresAt: now.Add(time.Hour),
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := store.Delete(ctx, "tok-2"); err != nil {
		t.Fatalf("first Delete: %v", err)
	}
	if err := store.Delete(ctx, "tok-2"); err != nil {
		t.Fatalf("second Delete: %v", err)
	}

	got, err := store.Get(ctx, "tok-2")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != nil {
		t.Errorf("session survived Delete: %+v", got)
	}
}

func TestMemoryStoreRejectsIncompleteSession(t *testing.T) {
	store := NewMemoryStore()

	err := store.Create(context.Background(), Session{SessionID: "tok-3"})
	if err == nil {
		t.Error("Create accepted a session without a username")
	}
}

func TestSessionExpired(t *testing.T) {
	now := time.Now()
	s := Session{ExpiresAt: now}

	if s.Expired(now) {
		t.Error("session expired exactly at its deadline; expiry is strictly after")
	}
	if !s.Expired(now.Add(time.Second)) {
		t.Error("session not expired one second past its deadline")
	}
}
