package schemafields

import (
	"context"
	"testing"

	"github.com/fieldmap/backend/internal/domain/mapping"
	"github.com/fieldmap/backend/internal/domain/schema"
	"github.com/fieldmap/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockFieldRepository struct {
	mock.Mock
}

func (m *MockFieldRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*schema.SchemaField, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*schema.SchemaField), args.Error(1)
}

func (m *MockFieldRepository) FindByKey(ctx context.Context, tenantID uuid.UUID, key string) (*schema.SchemaField, error) {
	args := m.Called(ctx, tenantID, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*schema.SchemaField), args.Error(1)
}

func (m *MockFieldRepository) FindByTenant(ctx context.Context, tenantID uuid.UUID) ([]*schema.SchemaField, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*schema.SchemaField), args.Error(1)
}

func (m *MockFieldRepository) Save(ctx context.Context, field *schema.SchemaField) error {
	args := m.Called(ctx, field)
	return args.Error(0)
}

func (m *MockFieldRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

func TestService_List(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()

	t.Run("returns stored catalog", func(t *testing.T) {
		repo := new(MockFieldRepository)
		field, err := schema.NewSchemaField(tenantID, "budget", "Budget", mapping.FieldTypeNumber)
		require.NoError(t, err)
		repo.On("FindByTenant", ctx, tenantID).Return([]*schema.SchemaField{field}, nil)

		fields, err := NewService(repo, nil).List(ctx, tenantID)

		require.NoError(t, err)
		require.Len(t, fields, 1)
		assert.Equal(t, "budget", fields[0].Key)
		assert.False(t, fields[0].IsCore)
	})

	t.Run("seeds core fields for fresh tenant", func(t *testing.T) {
		repo := new(MockFieldRepository)
		repo.On("FindByTenant", ctx, tenantID).Return([]*schema.SchemaField{}, nil)
		repo.On("Save", ctx, mock.AnythingOfType("*schema.SchemaField")).Return(nil)

		fields, err := NewService(repo, nil).List(ctx, tenantID)

		require.NoError(t, err)
		require.NotEmpty(t, fields)
		assert.Equal(t, "firstName", fields[0].Key)
		assert.True(t, fields[0].IsCore)
		repo.AssertCalled(t, "Save", ctx, mock.AnythingOfType("*schema.SchemaField"))
	})
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()

	t.Run("creates custom field", func(t *testing.T) {
		repo := new(MockFieldRepository)
		repo.On("FindByKey", ctx, tenantID, "budget").Return(nil, shared.ErrNotFound)
		repo.On("Save", ctx, mock.AnythingOfType("*schema.SchemaField")).Return(nil)

		resp, err := NewService(repo, nil).Create(ctx, tenantID, CreateFieldRequest{
			Key: "budget", Label: "Budget", Type: "number",
		})

		require.NoError(t, err)
		assert.Equal(t, "budget", resp.Key)
		assert.Equal(t, mapping.FieldTypeNumber, resp.Type)
		assert.False(t, resp.IsCore)
	})

	t.Run("rejects unknown field type", func(t *testing.T) {
		repo := new(MockFieldRepository)

		_, err := NewService(repo, nil).Create(ctx, tenantID, CreateFieldRequest{
			Key: "budget", Label: "Budget", Type: "money",
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_FIELD_TYPE", domainErr.Code)
	})

	t.Run("rejects duplicate key", func(t *testing.T) {
		repo := new(MockFieldRepository)
		existing, err := schema.NewSchemaField(tenantID, "budget", "Budget", mapping.FieldTypeNumber)
		require.NoError(t, err)
		repo.On("FindByKey", ctx, tenantID, "budget").Return(existing, nil)

		_, err = NewService(repo, nil).Create(ctx, tenantID, CreateFieldRequest{
			Key: "budget", Label: "Budget", Type: "number",
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
	})
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()

	t.Run("deletes custom field", func(t *testing.T) {
		repo := new(MockFieldRepository)
		field, err := schema.NewSchemaField(tenantID, "budget", "Budget", mapping.FieldTypeNumber)
		require.NoError(t, err)
		repo.On("FindByID", ctx, tenantID, field.ID).Return(field, nil)
		repo.On("Delete", ctx, tenantID, field.ID).Return(nil)

		require.NoError(t, NewService(repo, nil).Delete(ctx, tenantID, field.ID))
		repo.AssertCalled(t, "Delete", ctx, tenantID, field.ID)
	})

	t.Run("refuses to delete core field", func(t *testing.T) {
		repo := new(MockFieldRepository)
		field, err := schema.NewCoreField(tenantID, "email", "Email", mapping.FieldTypeEmail)
		require.NoError(t, err)
		repo.On("FindByID", ctx, tenantID, field.ID).Return(field, nil)

		err = NewService(repo, nil).Delete(ctx, tenantID, field.ID)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "CORE_FIELD", domainErr.Code)
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing field propagates not found", func(t *testing.T) {
		repo := new(MockFieldRepository)
		id := uuid.New()
		repo.On("FindByID", ctx, tenantID, id).Return(nil, shared.ErrNotFound)

		err := NewService(repo, nil).Delete(ctx, tenantID, id)

		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}
