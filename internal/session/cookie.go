package session

import (
	"net/http"
	"time"
)

const (
	CookieName = "__Host-session"
)

// CookieOptions defines how session cookies are issued. The admin client
// lives on a different origin, so the defaults produce a cross-site
// cookie: Secure + SameSite=None + HttpOnly.
type CookieOptions struct {
	Path     string
	HttpOnly bool
	Secure   bool
	SameSite http.SameSite
	Domain   string // must stay empty for __Host- cookies
}

// normalize applies safe defaults without breaking callers
func (o CookieOptions) normalize() CookieOptions {
	if o.Path == "" {
		o.Path = "/" // required for __Host-
	}
	if !o.HttpOnly {
		o.HttpOnly = true
	}
	if o.SameSite == 0 {
		o.SameSite = http.SameSiteNoneMode
	}
	if o.SameSite == http.SameSiteNoneMode {
		o.Secure = true // SameSite=None is rejected by browsers otherwise
	}
	return o
}

// SetCookie issues the session cookie to the client.
func SetCookie(
	w http.ResponseWriter,
	sessionID string,
	expiresAt time.Time,
	opts CookieOptions,
) {
	opts = opts.normalize()

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    sessionID,
		Path:     opts.Path,
		Domain:   opts.Domain,
		Expires:  expiresAt,
		HttpOnly: opts.HttpOnly,
		Secure:   opts.Secure,
		SameSite: opts.SameSite,
	})
}

// ClearCookie removes the session cookie from the client. Attributes must
// match the issuing cookie or browsers keep the stale value around.
func ClearCookie(
	w http.ResponseWriter,
	opts CookieOptions,
) {
	opts = opts.normalize()

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     opts.Path,
		Domain:   opts.Domain,
		MaxAge:   -1,
		HttpOnly: opts.HttpOnly,
		Secure:   opts.Secure,
		SameSite: opts.SameSite,
	})
}
