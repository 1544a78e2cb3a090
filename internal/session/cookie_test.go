package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func issuedCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("got %d cookies, want 1", len(cookies))
	}
	return cookies[0]
}

func TestSetCookieCrossSiteDefaults(t *testing.T) {
	rec := httptest.NewRecorder()

	SetCookie(rec, "tok", time.Now().Add(time.Hour), CookieOptions{})

	c := issuedCookie(t, rec)
	if c.Name != CookieName {
		t.Errorf("cookie name = %q, want %q", c.Name, CookieName)
	}
	if c.Value != "tok" {
		t.Errorf("cookie value = %q, want tok", c.Value)
	}
	if !c.HttpOnly {
		t.Error("cookie is not HttpOnly")
	}
	if !c.Secure {
		t.Error("cookie is not Secure; SameSite=None requires it")
	}
	if c.SameSite != http.SameSiteNoneMode {
		t.Errorf("cookie SameSite = %v, want None for the cross-site client", c.SameSite)
	}
	if c.Path != "/" {
		t.Errorf("cookie path = %q, want / for a __Host- cookie", c.Path)
	}
}

func TestClearCookieExpiresImmediately(t *testing.T) {
	rec := httptest.NewRecorder()

	ClearCookie(rec, CookieOptions{})

	c := issuedCookie(t, rec)
	if c.Value != "" {
		t.Errorf("cleared cookie still carries value %q", c.Value)
	}
	if c.MaxAge >= 0 {
		t.Errorf("cleared cookie MaxAge = %d, want negative", c.MaxAge)
	}
	if c.SameSite != http.SameSiteNoneMode || !c.Secure {
		t.Error("clear cookie attributes differ from the issuing cookie")
	}
}
