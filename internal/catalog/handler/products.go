package handler

import (
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/MroGG1/rpl-backend/internal/catalog"
)

type createRequest struct {
	Name        string   `json:"name"`
	Price       *float64 `json:"price"`
	Description string   `json:"description"`
}

type updateRequest struct {
	Name        string   `json:"name"`
	Price       *float64 `json:"price"`
	Description string   `json:"description"`
}

type priceRequest struct {
	Price *float64 `json:"price"`
}

type activeRequest struct {
	Active *bool `json:"active"`
}

func (h *Handler) List(c *gin.Context) {
	products, err := h.service.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, products)
}

func (h *Handler) Create(c *gin.Context) {
	in, ok := h.bindCreate(c)
	if !ok {
		return
	}

	product, err := h.service.Create(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, product)
}

// bindCreate accepts either a JSON body or a multipart form with an
// optional "image" file.
func (h *Handler) bindCreate(c *gin.Context) (catalog.CreateInput, bool) {
	contentType := c.ContentType()

	if !strings.HasPrefix(contentType, "multipart/form-data") {
		var req createRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
			return catalog.CreateInput{}, false
		}
		return catalog.CreateInput{
			Name:        req.Name,
			Price:       req.Price,
			Description: req.Description,
		}, true
	}

	in := catalog.CreateInput{
		Name:        c.PostForm("name"),
		Description: c.PostForm("description"),
	}

	if raw := c.PostForm("price"); raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "price: must be a number"})
			return catalog.CreateInput{}, false
		}
		in.Price = &price
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		// no upload attached; image policy is enforced by the service
		return in, true
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image: unreadable upload"})
		return catalog.CreateInput{}, false
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image: unreadable upload"})
		return catalog.CreateInput{}, false
	}

	ref, err := h.media.Save(
		c.Request.Context(),
		data,
		filepath.Ext(fileHeader.Filename),
	)
	if err != nil {
		writeError(c, err)
		return catalog.CreateInput{}, false
	}

	in.ImageRef = ref
	return in, true
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	product, err := h.service.Update(c.Request.Context(), id, catalog.UpdateInput{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

func (h *Handler) UpdatePrice(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req priceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := h.service.UpdatePrice(c.Request.Context(), id, req.Price); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

func (h *Handler) SetActive(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req activeRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Active == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := h.service.SetActive(c.Request.Context(), id, *req.Active); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	product, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}
