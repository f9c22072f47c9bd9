package persistence

import (
	"context"
	"errors"

	"github.com/fieldmap/backend/internal/domain/schema"
	"github.com/fieldmap/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormSchemaFieldRepository implements schema.FieldRepository using GORM
type GormSchemaFieldRepository struct {
	db *gorm.DB
}

// NewGormSchemaFieldRepository creates a new GormSchemaFieldRepository
func NewGormSchemaFieldRepository(db *gorm.DB) *GormSchemaFieldRepository {
	return &GormSchemaFieldRepository{db: db}
}

// FindByID finds a schema field by ID within a tenant
func (r *GormSchemaFieldRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*schema.SchemaField, error) {
	var field schema.SchemaField
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&field).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &field, nil
}

// FindByKey finds a schema field by key within a tenant
func (r *GormSchemaFieldRepository) FindByKey(ctx context.Context, tenantID uuid.UUID, key string) (*schema.SchemaField, error) {
	if key == "" {
		return nil, shared.NewDomainError("INVALID_KEY", "Field key cannot be empty")
	}
	var field schema.SchemaField
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND key = ?", tenantID, key).
		First(&field).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &field, nil
}

// FindByTenant returns all schema fields for a tenant, core fields first
func (r *GormSchemaFieldRepository) FindByTenant(ctx context.Context, tenantID uuid.UUID) ([]*schema.SchemaField, error) {
	var fields []*schema.SchemaField
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("is_core DESC, key ASC").
		Find(&fields).Error; err != nil {
		return nil, err
	}
	return fields, nil
}

// Save persists a schema field (create or update)
func (r *GormSchemaFieldRepository) Save(ctx context.Context, field *schema.SchemaField) error {
	return r.db.WithContext(ctx).Save(field).Error
}

// Delete removes a schema field within a tenant
func (r *GormSchemaFieldRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		Delete(&schema.SchemaField{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
