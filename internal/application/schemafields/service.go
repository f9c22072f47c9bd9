package schemafields

import (
	"context"
	"errors"

	"github.com/fieldmap/backend/internal/domain/mapping"
	"github.com/fieldmap/backend/internal/domain/schema"
	"github.com/fieldmap/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// FieldResponse is the API shape of a schema field
type FieldResponse struct {
	ID     string            `json:"id"`
	Key    string            `json:"key"`
	Label  string            `json:"label"`
	Type   mapping.FieldType `json:"type"`
	IsCore bool              `json:"is_core"`
}

// CreateFieldRequest carries the data for a new custom field
type CreateFieldRequest struct {
	Key   string `json:"key" binding:"required,max=50"`
	Label string `json:"label" binding:"required,max=200"`
	Type  string `json:"type" binding:"required,fieldtype"`
}

// Service manages the tenant's target field catalog
type Service struct {
	fieldRepo schema.FieldRepository
	logger    *zap.Logger
}

// NewService creates a new schema field Service
func NewService(fieldRepo schema.FieldRepository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{fieldRepo: fieldRepo, logger: logger}
}

// List returns all fields for a tenant. Tenants with an empty catalog get the
// built-in core fields seeded on first access.
func (s *Service) List(ctx context.Context, tenantID uuid.UUID) ([]FieldResponse, error) {
	fields, err := s.fieldRepo.FindByTenant(ctx, tenantID)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	if len(fields) == 0 {
		fields, err = s.seedCoreFields(ctx, tenantID)
		if err != nil {
			return nil, err
		}
	}

	out := make([]FieldResponse, len(fields))
	for i, f := range fields {
		out[i] = toFieldResponse(f)
	}
	return out, nil
}

// Create adds a custom field to the tenant's catalog
func (s *Service) Create(ctx context.Context, tenantID uuid.UUID, req CreateFieldRequest) (*FieldResponse, error) {
	if !mapping.IsValidFieldType(req.Type) {
		return nil, shared.NewDomainError("INVALID_FIELD_TYPE", "Unknown field type: "+req.Type)
	}

	existing, err := s.fieldRepo.FindByKey(ctx, tenantID, req.Key)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Field with this key already exists")
	}

	field, err := schema.NewSchemaField(tenantID, req.Key, req.Label, mapping.FieldType(req.Type))
	if err != nil {
		return nil, err
	}
	if err := s.fieldRepo.Save(ctx, field); err != nil {
		return nil, err
	}

	s.logger.Info("Created schema field",
		zap.String("tenant_id", tenantID.String()),
		zap.String("key", field.Key),
	)

	resp := toFieldResponse(field)
	return &resp, nil
}

// Delete removes a custom field. Core fields cannot be deleted.
func (s *Service) Delete(ctx context.Context, tenantID, fieldID uuid.UUID) error {
	field, err := s.fieldRepo.FindByID(ctx, tenantID, fieldID)
	if err != nil {
		return err
	}
	if field.IsCore {
		return shared.NewDomainError("CORE_FIELD", "Core fields cannot be deleted")
	}
	return s.fieldRepo.Delete(ctx, tenantID, fieldID)
}

// seedCoreFields persists the built-in catalog for a fresh tenant
func (s *Service) seedCoreFields(ctx context.Context, tenantID uuid.UUID) ([]*schema.SchemaField, error) {
	fields, err := schema.SeedCoreFields(tenantID)
	if err != nil {
		return nil, err
	}
	for _, f := range fields {
		if err := s.fieldRepo.Save(ctx, f); err != nil {
			return nil, err
		}
	}
	s.logger.Info("Seeded core schema fields",
		zap.String("tenant_id", tenantID.String()),
		zap.Int("count", len(fields)),
	)
	return fields, nil
}

func toFieldResponse(f *schema.SchemaField) FieldResponse {
	return FieldResponse{
		ID:     f.ID.String(),
		Key:    f.Key,
		Label:  f.Label,
		Type:   f.Type,
		IsCore: f.IsCore,
	}
}
