package schema

import (
	"context"

	"github.com/google/uuid"
)

// FieldRepository defines the persistence interface for schema fields
type FieldRepository interface {
	// FindByID finds a schema field by ID within a tenant
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*SchemaField, error)

	// FindByKey finds a schema field by its key within a tenant
	FindByKey(ctx context.Context, tenantID uuid.UUID, key string) (*SchemaField, error)

	// FindByTenant returns the tenant's full field catalog ordered by
	// core-first, then key
	FindByTenant(ctx context.Context, tenantID uuid.UUID) ([]*SchemaField, error)

	// Save persists a schema field (create or update)
	Save(ctx context.Context, field *SchemaField) error

	// Delete removes a schema field by ID within a tenant
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}
