package middleware

import (
	"net/http"

	"github.com/fieldmap/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TenantHeader is the request header carrying the tenant ID
const TenantHeader = "X-Tenant-ID"

// tenantContextKey is the gin context key the tenant ID is stored under
const tenantContextKey = "tenant_id"

// RequireTenant rejects requests without a valid tenant ID header and stores
// the parsed ID in the gin context.
func RequireTenant() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(TenantHeader)
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(
				dto.ErrCodeTenantRequired,
				"X-Tenant-ID header is required",
			))
			return
		}

		tenantID, err := uuid.Parse(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(
				dto.ErrCodeTenantRequired,
				"X-Tenant-ID header must be a valid UUID",
			))
			return
		}

		c.Set(tenantContextKey, tenantID.String())
		c.Next()
	}
}

// GetTenantID returns the tenant ID stored by RequireTenant, or uuid.Nil
// when the middleware did not run.
func GetTenantID(c *gin.Context) uuid.UUID {
	raw := c.GetString(tenantContextKey)
	if raw == "" {
		return uuid.Nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil
	}
	return id
}
