package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MroGG1/rpl-backend/internal/auth"
	"github.com/MroGG1/rpl-backend/internal/logger"
	"github.com/MroGG1/rpl-backend/internal/session"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	sess, err := h.manager.Login(
		c.Request.Context(),
		req.Username,
		req.Password,
	)

	if err != nil {
		if errors.Is(err, auth.ErrStoreUnavailable) {
			logger.Error("login failed against store", map[string]any{
				"error": err.Error(),
			})
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		// same shape whether the username exists or not
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	session.SetCookie(
		c.Writer,
		sess.SessionID,
		sess.ExpiresAt,
		session.CookieOptions{},
	)

	c.JSON(http.StatusOK, gin.H{"status": "logged_in"})
}
