package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/fieldmap/backend/internal/application/importing"
	"github.com/fieldmap/backend/internal/infrastructure/csvimport"
	"github.com/fieldmap/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// maxUploadSize limits the size of uploaded CSV files
const maxUploadSize = 10 << 20 // 10MB

// MappingHandler handles column mapping preview endpoints
type MappingHandler struct {
	BaseHandler
	service *importing.MappingService
}

// NewMappingHandler creates a new MappingHandler
func NewMappingHandler(service *importing.MappingService) *MappingHandler {
	return &MappingHandler{service: service}
}

// RegisterRoutes registers mapping routes on the given group
func (h *MappingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	mappings := rg.Group("/mappings")
	{
		mappings.POST("/preview", h.Preview)
		mappings.POST("/sessions/:id/remap", h.Remap)
		mappings.DELETE("/sessions/:id", h.DeleteSession)
	}
}

// RemapRequest carries options for recomputing a stored session
type RemapRequest struct {
	ResolveDuplicates bool `json:"resolve_duplicates"`
}

// Preview accepts a CSV upload and returns column mapping suggestions
func (h *MappingHandler) Preview(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Error(c, http.StatusBadRequest, dto.ErrCodeTenantRequired, "Tenant ID is required")
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		h.BadRequest(c, "file is required")
		return
	}
	defer file.Close()

	if header.Size > maxUploadSize {
		h.Error(c, http.StatusRequestEntityTooLarge, dto.ErrCodePayloadTooLarge, "file exceeds maximum size of 10MB")
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType != "" && contentType != "text/csv" && contentType != "application/octet-stream" &&
		contentType != "text/plain" && contentType != "application/vnd.ms-excel" {
		h.Error(c, http.StatusUnsupportedMediaType, dto.ErrCodeValidation, "file must be a CSV file")
		return
	}

	opts := importing.PreviewOptions{
		ResolveDuplicates: parseBoolOption(c, "resolve_duplicates", true),
	}

	resp, err := h.service.Preview(c.Request.Context(), tenantID, header.Filename, file, opts)
	if err != nil {
		h.handleSampleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Remap recomputes mappings for a stored session
func (h *MappingHandler) Remap(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Error(c, http.StatusBadRequest, dto.ErrCodeTenantRequired, "Tenant ID is required")
		return
	}

	sessionID := c.Param("id")

	var req RemapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// An empty body means default options
		req = RemapRequest{ResolveDuplicates: true}
	}

	resp, err := h.service.Remap(c.Request.Context(), tenantID, sessionID, importing.PreviewOptions{
		ResolveDuplicates: req.ResolveDuplicates,
	})
	if err != nil {
		if errors.Is(err, importing.ErrSessionNotFound) {
			h.NotFound(c, "Mapping session not found or expired")
			return
		}
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// DeleteSession discards a stored mapping session
func (h *MappingHandler) DeleteSession(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Error(c, http.StatusBadRequest, dto.ErrCodeTenantRequired, "Tenant ID is required")
		return
	}

	if err := h.service.DeleteSession(c.Request.Context(), tenantID, c.Param("id")); err != nil {
		if errors.Is(err, importing.ErrSessionNotFound) {
			h.NotFound(c, "Mapping session not found or expired")
			return
		}
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// handleSampleError maps CSV sampling errors to client error responses
func (h *MappingHandler) handleSampleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, csvimport.ErrEmptyFile),
		errors.Is(err, csvimport.ErrMissingHeader),
		errors.Is(err, csvimport.ErrNoColumns):
		h.Error(c, http.StatusBadRequest, dto.ErrCodeValidation, err.Error())
	case errors.Is(err, csvimport.ErrTooManyColumns):
		h.UnprocessableEntity(c, dto.ErrCodeBusinessRule, err.Error())
	default:
		h.HandleError(c, err)
	}
}

// parseBoolOption reads a boolean request option from the query string or,
// failing that, the form body
func parseBoolOption(c *gin.Context, name string, def bool) bool {
	raw := c.Query(name)
	if raw == "" {
		raw = c.PostForm(name)
	}
	if raw == "" {
		return def
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return def
	}
	return value
}
