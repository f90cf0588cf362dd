package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tapquote_backend/internal/catalog/service"
	"tapquote_backend/internal/catalog/transport"
	"tapquote_backend/platform/apperr"
	"tapquote_backend/platform/httpkit"
	"tapquote_backend/platform/validator"
)

// Handler handles HTTP requests for the materials catalog.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

// New creates a new catalog handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// RegisterRoutes mounts the read-only material routes on rg.
func (h *Handler) RegisterRoutes(rg gin.IRoutes) {
	rg.GET("/materials", h.ListMaterials)
	rg.GET("/materials/search", h.SearchMaterials)
	rg.GET("/materials/:id", h.GetMaterial)
}

// ListMaterials returns the full catalog.
// GET /api/v1/materials
func (h *Handler) ListMaterials(c *gin.Context) {
	materials := h.svc.GetAll()
	httpkit.OK(c, transport.ListMaterialsResponse{
		Materials: materials,
		Count:     len(materials),
	})
}

// SearchMaterials ranks materials against ?q=.
// GET /api/v1/materials/search
func (h *Handler) SearchMaterials(c *gin.Context) {
	var req transport.SearchMaterialsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, validator.Fields(err))
		return
	}

	results := h.svc.Search(req.Query)
	httpkit.OK(c, transport.SearchMaterialsResponse{
		Query:   req.Query,
		Results: results,
		Count:   len(results),
	})
}

// GetMaterial returns one material.
// GET /api/v1/materials/:id
func (h *Handler) GetMaterial(c *gin.Context) {
	material, ok := h.svc.GetByID(c.Param("id"))
	if !ok {
		httpkit.HandleError(c, apperr.NotFound("material not found"))
		return
	}
	httpkit.OK(c, material)
}
