package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/MroGG1/rpl-backend/internal/catalog"
	"github.com/MroGG1/rpl-backend/internal/logger"
	"github.com/MroGG1/rpl-backend/internal/media"
)

type Handler struct {
	service *catalog.Service
	media   media.Handler
}

func NewHandler(service *catalog.Service, media media.Handler) *Handler {
	return &Handler{
		service: service,
		media:   media,
	}
}

// RegisterRoutes splits the surface in two: listing is public, every
// mutating route goes on the guarded group. Whether that group actually
// carries the auth middleware is decided once at startup.
func (h *Handler) RegisterRoutes(public gin.IRoutes, mutating gin.IRoutes) {
	public.GET("/products", h.List)

	mutating.POST("/products", h.Create)
	mutating.PUT("/products/:id", h.Update)
	mutating.PUT("/products/:id/price", h.UpdatePrice)
	mutating.PUT("/products/:id/active", h.SetActive)
	mutating.DELETE("/products/:id", h.Delete)
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return 0, false
	}
	return id, true
}

// writeError maps the catalog error taxonomy onto HTTP. Backend detail
// is logged server-side only.
func writeError(c *gin.Context, err error) {
	var ve *catalog.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Error()})
	case errors.Is(err, catalog.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
	default:
		logger.Error("catalog store failure", map[string]any{
			"error": err.Error(),
			"path":  c.Request.URL.Path,
		})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
