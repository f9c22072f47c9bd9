package schema

import (
	"github.com/fieldmap/backend/internal/domain/mapping"
	"github.com/google/uuid"
)

// coreFieldDef describes one built-in catalog entry
type coreFieldDef struct {
	key   string
	label string
	typ   mapping.FieldType
}

// coreFields is the built-in contact schema every tenant starts with.
var coreFields = []coreFieldDef{
	{"firstName", "First Name", mapping.FieldTypeText},
	{"lastName", "Last Name", mapping.FieldTypeText},
	{"email", "Email", mapping.FieldTypeEmail},
	{"phone", "Phone", mapping.FieldTypePhone},
	{"company", "Company", mapping.FieldTypeText},
	{"jobTitle", "Job Title", mapping.FieldTypeText},
	{"address", "Address", mapping.FieldTypeText},
	{"city", "City", mapping.FieldTypeText},
	{"state", "State", mapping.FieldTypeText},
	{"zip", "Zip Code", mapping.FieldTypeText},
	{"country", "Country", mapping.FieldTypeText},
	{"website", "Website", mapping.FieldTypeText},
	{"notes", "Notes", mapping.FieldTypeText},
	{"birthday", "Birthday", mapping.FieldTypeDateTime},
}

// DefaultCatalog returns the built-in contact fields as matching-engine
// targets, for tenants that have not customized their schema yet.
func DefaultCatalog() []mapping.TargetField {
	targets := make([]mapping.TargetField, 0, len(coreFields))
	for _, def := range coreFields {
		targets = append(targets, mapping.TargetField{
			Key:    def.key,
			Label:  def.label,
			Type:   def.typ,
			IsCore: true,
		})
	}
	return targets
}

// SeedCoreFields builds the core SchemaField rows for a new tenant
func SeedCoreFields(tenantID uuid.UUID) ([]*SchemaField, error) {
	fields := make([]*SchemaField, 0, len(coreFields))
	for _, def := range coreFields {
		field, err := NewCoreField(tenantID, def.key, def.label, def.typ)
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)
	}
	return fields, nil
}
