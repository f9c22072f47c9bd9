package agent

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the persistence interface for agents
type Repository interface {
	// FindByID finds an agent by ID within a tenant
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*Agent, error)

	// FindByEmail finds an agent by normalized email within a tenant
	FindByEmail(ctx context.Context, tenantID uuid.UUID, email string) (*Agent, error)

	// FindByTenant returns all agents for a tenant ordered by name
	FindByTenant(ctx context.Context, tenantID uuid.UUID) ([]*Agent, error)

	// Save persists an agent (create or update)
	Save(ctx context.Context, a *Agent) error
}
