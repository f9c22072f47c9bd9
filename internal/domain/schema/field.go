package schema

import (
	"github.com/fieldmap/backend/internal/domain/mapping"
	"github.com/fieldmap/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// SchemaField is one entry of a tenant's target field catalog: the schema a
// reviewer maps imported columns onto. Core fields are seeded for every
// tenant; custom fields are created from reviewer decisions on unmatched
// columns.
type SchemaField struct {
	shared.TenantEntity
	Key    string            `gorm:"type:varchar(50);not null;index"`
	Label  string            `gorm:"type:varchar(200);not null"`
	Type   mapping.FieldType `gorm:"type:varchar(20);not null;default:'text'"`
	IsCore bool              `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (SchemaField) TableName() string {
	return "schema_fields"
}

// NewSchemaField creates a new custom schema field with required fields
func NewSchemaField(tenantID uuid.UUID, key, label string, fieldType mapping.FieldType) (*SchemaField, error) {
	if err := validateFieldKey(key); err != nil {
		return nil, err
	}
	if err := validateFieldLabel(label); err != nil {
		return nil, err
	}
	if !mapping.IsValidFieldType(string(fieldType)) {
		return nil, shared.NewDomainError("INVALID_FIELD_TYPE", "Field type must be one of text, number, phone, email, datetime")
	}

	return &SchemaField{
		TenantEntity: shared.NewTenantEntity(tenantID),
		Key:          key,
		Label:        label,
		Type:         fieldType,
		IsCore:       false,
	}, nil
}

// NewCoreField creates a built-in schema field seeded for every tenant
func NewCoreField(tenantID uuid.UUID, key, label string, fieldType mapping.FieldType) (*SchemaField, error) {
	field, err := NewSchemaField(tenantID, key, label, fieldType)
	if err != nil {
		return nil, err
	}
	field.IsCore = true
	return field, nil
}

// Rename updates the field's display label
func (f *SchemaField) Rename(label string) error {
	if err := validateFieldLabel(label); err != nil {
		return err
	}
	f.Label = label
	f.Touch()
	return nil
}

// ToTargetField converts the catalog entry to the matching engine's view
func (f *SchemaField) ToTargetField() mapping.TargetField {
	return mapping.TargetField{
		Key:    f.Key,
		Label:  f.Label,
		Type:   f.Type,
		IsCore: f.IsCore,
	}
}

func validateFieldKey(key string) error {
	if key == "" {
		return shared.NewDomainError("INVALID_FIELD_KEY", "Field key cannot be empty")
	}
	if len(key) > 50 {
		return shared.NewDomainError("INVALID_FIELD_KEY", "Field key cannot exceed 50 characters")
	}
	for _, r := range key {
		if !((r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')) {
			return shared.NewDomainError("INVALID_FIELD_KEY", "Field key can only contain letters and numbers")
		}
	}
	return nil
}

func validateFieldLabel(label string) error {
	if label == "" {
		return shared.NewDomainError("INVALID_FIELD_LABEL", "Field label cannot be empty")
	}
	if len(label) > 200 {
		return shared.NewDomainError("INVALID_FIELD_LABEL", "Field label cannot exceed 200 characters")
	}
	return nil
}
