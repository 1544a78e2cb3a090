package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MroGG1/rpl-backend/internal/auth"
	"github.com/MroGG1/rpl-backend/internal/logger"
	"github.com/MroGG1/rpl-backend/internal/session"
)

func (h *Handler) Logout(c *gin.Context) {
	var token string
	if cookie, err := c.Request.Cookie(session.CookieName); err == nil {
		token = cookie.Value
	}

	if err := h.manager.Logout(c.Request.Context(), token); err != nil {
		if errors.Is(err, auth.ErrStoreUnavailable) {
			logger.Error("logout failed against store", map[string]any{
				"error": err.Error(),
			})
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
	}

	// clear the cookie even on success-after-expiry so a stale token
	// cannot be replayed
	session.ClearCookie(c.Writer, session.CookieOptions{})

	c.JSON(http.StatusOK, gin.H{"status": "logged_out"})
}
