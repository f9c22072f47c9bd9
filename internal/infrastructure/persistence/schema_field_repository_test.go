package persistence

import (
	"context"
	"testing"

	"github.com/fieldmap/backend/internal/domain/mapping"
	"github.com/fieldmap/backend/internal/domain/schema"
	"github.com/fieldmap/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupSchemaFieldTestDB creates an in-memory SQLite database for testing
func setupSchemaFieldTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&schema.SchemaField{}))
	return db
}

func mustNewField(t *testing.T, tenantID uuid.UUID, key, label string, fieldType mapping.FieldType) *schema.SchemaField {
	t.Helper()
	field, err := schema.NewSchemaField(tenantID, key, label, fieldType)
	require.NoError(t, err)
	return field
}

func TestGormSchemaFieldRepository_SaveAndFind(t *testing.T) {
	db := setupSchemaFieldTestDB(t)
	repo := NewGormSchemaFieldRepository(db)
	ctx := context.Background()
	tenantID := uuid.New()

	field := mustNewField(t, tenantID, "budget", "Budget", mapping.FieldTypeNumber)
	require.NoError(t, repo.Save(ctx, field))

	t.Run("finds by id", func(t *testing.T) {
		found, err := repo.FindByID(ctx, tenantID, field.ID)

		require.NoError(t, err)
		assert.Equal(t, "budget", found.Key)
		assert.Equal(t, "Budget", found.Label)
		assert.Equal(t, mapping.FieldTypeNumber, found.Type)
	})

	t.Run("finds by key", func(t *testing.T) {
		found, err := repo.FindByKey(ctx, tenantID, "budget")

		require.NoError(t, err)
		assert.Equal(t, field.ID, found.ID)
	})

	t.Run("not found for other tenant", func(t *testing.T) {
		_, err := repo.FindByID(ctx, uuid.New(), field.ID)

		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("not found for missing key", func(t *testing.T) {
		_, err := repo.FindByKey(ctx, tenantID, "nonexistent")

		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("rejects empty key", func(t *testing.T) {
		_, err := repo.FindByKey(ctx, tenantID, "")

		assert.Error(t, err)
	})

	t.Run("update via save", func(t *testing.T) {
		require.NoError(t, field.Rename("Deal Budget"))
		require.NoError(t, repo.Save(ctx, field))

		found, err := repo.FindByKey(ctx, tenantID, "budget")
		require.NoError(t, err)
		assert.Equal(t, "Deal Budget", found.Label)
	})
}

func TestGormSchemaFieldRepository_FindByTenant(t *testing.T) {
	db := setupSchemaFieldTestDB(t)
	repo := NewGormSchemaFieldRepository(db)
	ctx := context.Background()
	tenantID := uuid.New()

	custom := mustNewField(t, tenantID, "budget", "Budget", mapping.FieldTypeNumber)
	core, err := schema.NewCoreField(tenantID, "email", "Email", mapping.FieldTypeEmail)
	require.NoError(t, err)
	other := mustNewField(t, uuid.New(), "budget", "Budget", mapping.FieldTypeNumber)

	require.NoError(t, repo.Save(ctx, custom))
	require.NoError(t, repo.Save(ctx, core))
	require.NoError(t, repo.Save(ctx, other))

	fields, err := repo.FindByTenant(ctx, tenantID)

	require.NoError(t, err)
	require.Len(t, fields, 2)
	// Core fields sort first
	assert.Equal(t, "email", fields[0].Key)
	assert.True(t, fields[0].IsCore)
	assert.Equal(t, "budget", fields[1].Key)
}

func TestGormSchemaFieldRepository_Delete(t *testing.T) {
	db := setupSchemaFieldTestDB(t)
	repo := NewGormSchemaFieldRepository(db)
	ctx := context.Background()
	tenantID := uuid.New()

	field := mustNewField(t, tenantID, "budget", "Budget", mapping.FieldTypeNumber)
	require.NoError(t, repo.Save(ctx, field))

	t.Run("deletes existing field", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, tenantID, field.ID))

		_, err := repo.FindByID(ctx, tenantID, field.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("returns not found for missing field", func(t *testing.T) {
		err := repo.Delete(ctx, tenantID, uuid.New())

		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}
