package handler

import (
	"net/http"

	"github.com/fieldmap/backend/internal/application/schemafields"
	"github.com/fieldmap/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SchemaFieldHandler handles target field catalog endpoints
type SchemaFieldHandler struct {
	BaseHandler
	service *schemafields.Service
}

// NewSchemaFieldHandler creates a new SchemaFieldHandler
func NewSchemaFieldHandler(service *schemafields.Service) *SchemaFieldHandler {
	return &SchemaFieldHandler{service: service}
}

// RegisterRoutes registers schema field routes on the given group
func (h *SchemaFieldHandler) RegisterRoutes(rg *gin.RouterGroup) {
	fields := rg.Group("/schema-fields")
	{
		fields.GET("", h.List)
		fields.POST("", h.Create)
		fields.DELETE("/:id", h.Delete)
	}
}

// List returns the tenant's field catalog
func (h *SchemaFieldHandler) List(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Error(c, http.StatusBadRequest, dto.ErrCodeTenantRequired, "Tenant ID is required")
		return
	}

	fields, err := h.service.List(c.Request.Context(), tenantID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, fields)
}

// Create adds a custom field to the tenant's catalog
func (h *SchemaFieldHandler) Create(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Error(c, http.StatusBadRequest, dto.ErrCodeTenantRequired, "Tenant ID is required")
		return
	}

	var req schemafields.CreateFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	field, err := h.service.Create(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, field)
}

// Delete removes a custom field
func (h *SchemaFieldHandler) Delete(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Error(c, http.StatusBadRequest, dto.ErrCodeTenantRequired, "Tenant ID is required")
		return
	}

	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, "Invalid field ID")
		return
	}
	fieldID, err := uuid.Parse(req.ID)
	if err != nil {
		h.BadRequest(c, "Invalid field ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), tenantID, fieldID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
