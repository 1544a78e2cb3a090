package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/MroGG1/rpl-backend/internal/session"
)

// unexported, collision-proof context keys
type userIDContextKeyType struct{}
type usernameContextKeyType struct{}

var (
	userIDKey   = userIDContextKeyType{}
	usernameKey = usernameContextKeyType{}
)

// UserIDFromContext extracts the authenticated admin id from context.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

// UsernameFromContext extracts the authenticated username from context.
func UsernameFromContext(ctx context.Context) (string, bool) {
	name, ok := ctx.Value(usernameKey).(string)
	return name, ok
}

type AuthMiddleware struct {
	Store session.Store
}

func NewAuthMiddleware(store session.Store) *AuthMiddleware {
	return &AuthMiddleware{Store: store}
}

func (a *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// 1. Read session cookie
		cookie, err := r.Cookie(session.CookieName)
		if err != nil || cookie.Value == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		sessionID := cookie.Value

		// 2. Load session
		sess, err := a.Store.Get(r.Context(), sessionID)
		if err != nil || sess == nil {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		// 3. Expiry is enforced here, not by a store-side sweeper
		if sess.Expired(time.Now()) {
			_ = a.Store.Delete(r.Context(), sessionID)
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		// 4. Attach identity to context
		ctx := context.WithValue(r.Context(), userIDKey, sess.UserID)
		ctx = context.WithValue(ctx, usernameKey, sess.Username)

		// 5. Continue request
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
