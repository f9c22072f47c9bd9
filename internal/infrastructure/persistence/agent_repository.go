package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/fieldmap/backend/internal/domain/agent"
	"github.com/fieldmap/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormAgentRepository implements agent.Repository using GORM
type GormAgentRepository struct {
	db *gorm.DB
}

// NewGormAgentRepository creates a new GormAgentRepository
func NewGormAgentRepository(db *gorm.DB) *GormAgentRepository {
	return &GormAgentRepository{db: db}
}

// FindByID finds an agent by ID within a tenant
func (r *GormAgentRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*agent.Agent, error) {
	var a agent.Agent
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

// FindByEmail finds an agent by email within a tenant. The lookup is
// case-insensitive since stored emails are normalized to lowercase.
func (r *GormAgentRepository) FindByEmail(ctx context.Context, tenantID uuid.UUID, email string) (*agent.Agent, error) {
	if email == "" {
		return nil, shared.NewDomainError("INVALID_EMAIL", "Email cannot be empty")
	}
	var a agent.Agent
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND email = ?", tenantID, strings.ToLower(strings.TrimSpace(email))).
		First(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

// FindByTenant returns all agents for a tenant ordered by name
func (r *GormAgentRepository) FindByTenant(ctx context.Context, tenantID uuid.UUID) ([]*agent.Agent, error) {
	var agents []*agent.Agent
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("name ASC").
		Find(&agents).Error; err != nil {
		return nil, err
	}
	return agents, nil
}

// Save persists an agent (create or update)
func (r *GormAgentRepository) Save(ctx context.Context, a *agent.Agent) error {
	return r.db.WithContext(ctx).Save(a).Error
}
