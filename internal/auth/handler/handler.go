package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/MroGG1/rpl-backend/internal/auth"
)

type Handler struct {
	manager *auth.Manager
}

func NewHandler(manager *auth.Manager) *Handler {
	return &Handler{manager: manager}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/login", h.Login)
	r.GET("/profile", h.Profile)
	r.POST("/logout", h.Logout)
}
