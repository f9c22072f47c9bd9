package schema

import (
	"testing"

	"github.com/fieldmap/backend/internal/domain/mapping"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSchemaField(t *testing.T) {
	tenantID := uuid.New()

	t.Run("creates custom field successfully", func(t *testing.T) {
		field, err := NewSchemaField(tenantID, "leadSource", "Lead Source", mapping.FieldTypeText)

		require.NoError(t, err)
		assert.Equal(t, "leadSource", field.Key)
		assert.Equal(t, "Lead Source", field.Label)
		assert.Equal(t, mapping.FieldTypeText, field.Type)
		assert.False(t, field.IsCore)
		assert.Equal(t, tenantID, field.TenantID)
	})

	t.Run("fails with empty key", func(t *testing.T) {
		field, err := NewSchemaField(tenantID, "", "Label", mapping.FieldTypeText)

		assert.Error(t, err)
		assert.Nil(t, field)
		assert.Contains(t, err.Error(), "key cannot be empty")
	})

	t.Run("fails with non-alphanumeric key", func(t *testing.T) {
		field, err := NewSchemaField(tenantID, "lead-source", "Label", mapping.FieldTypeText)

		assert.Error(t, err)
		assert.Nil(t, field)
	})

	t.Run("fails with empty label", func(t *testing.T) {
		_, err := NewSchemaField(tenantID, "leadSource", "", mapping.FieldTypeText)
		assert.Error(t, err)
	})

	t.Run("fails with unknown type", func(t *testing.T) {
		_, err := NewSchemaField(tenantID, "leadSource", "Lead Source", mapping.FieldType("blob"))
		assert.Error(t, err)
	})
}

func TestNewCoreField(t *testing.T) {
	field, err := NewCoreField(uuid.New(), "email", "Email", mapping.FieldTypeEmail)

	require.NoError(t, err)
	assert.True(t, field.IsCore)
}

func TestSchemaFieldRename(t *testing.T) {
	field, err := NewSchemaField(uuid.New(), "notes", "Notes", mapping.FieldTypeText)
	require.NoError(t, err)

	t.Run("updates the label", func(t *testing.T) {
		require.NoError(t, field.Rename("Comments"))
		assert.Equal(t, "Comments", field.Label)
	})

	t.Run("rejects an empty label", func(t *testing.T) {
		assert.Error(t, field.Rename(""))
	})
}

func TestToTargetField(t *testing.T) {
	field, err := NewCoreField(uuid.New(), "phone", "Phone", mapping.FieldTypePhone)
	require.NoError(t, err)

	target := field.ToTargetField()
	assert.Equal(t, mapping.TargetField{
		Key:    "phone",
		Label:  "Phone",
		Type:   mapping.FieldTypePhone,
		IsCore: true,
	}, target)
}

func TestDefaultCatalog(t *testing.T) {
	catalog := DefaultCatalog()

	require.NotEmpty(t, catalog)
	keys := make(map[string]bool)
	for _, f := range catalog {
		assert.True(t, f.IsCore)
		assert.False(t, keys[f.Key], "duplicate key %q", f.Key)
		keys[f.Key] = true
	}
	assert.True(t, keys["firstName"])
	assert.True(t, keys["email"])
}

func TestSeedCoreFields(t *testing.T) {
	tenantID := uuid.New()
	fields, err := SeedCoreFields(tenantID)

	require.NoError(t, err)
	require.Len(t, fields, len(DefaultCatalog()))
	for _, f := range fields {
		assert.True(t, f.IsCore)
		assert.Equal(t, tenantID, f.TenantID)
	}
}
