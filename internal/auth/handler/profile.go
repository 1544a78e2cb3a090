package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MroGG1/rpl-backend/internal/auth"
	"github.com/MroGG1/rpl-backend/internal/logger"
	"github.com/MroGG1/rpl-backend/internal/session"
)

func (h *Handler) Profile(c *gin.Context) {
	var token string
	if cookie, err := c.Request.Cookie(session.CookieName); err == nil {
		token = cookie.Value
	}

	username, err := h.manager.Profile(c.Request.Context(), token)
	if err != nil {
		if errors.Is(err, auth.ErrStoreUnavailable) {
			logger.Error("profile lookup failed against store", map[string]any{
				"error": err.Error(),
			})
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"username": username})
}
