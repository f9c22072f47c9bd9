package agent

import (
	"regexp"
	"strings"

	"github.com/fieldmap/backend/internal/domain/shared"
	"github.com/google/uuid"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Agent is an owner record imported rows can be attached to. The owner email
// detector's winning column is resolved against this directory.
type Agent struct {
	shared.TenantEntity
	Name   string `gorm:"type:varchar(200);not null"`
	Email  string `gorm:"type:varchar(200);not null;index"`
	Active bool   `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (Agent) TableName() string {
	return "agents"
}

// NewAgent creates a new agent with required fields
func NewAgent(tenantID uuid.UUID, name, email string) (*Agent, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Agent name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_NAME", "Agent name cannot exceed 200 characters")
	}
	normalized, err := NormalizeEmail(email)
	if err != nil {
		return nil, err
	}

	return &Agent{
		TenantEntity: shared.NewTenantEntity(tenantID),
		Name:         name,
		Email:        normalized,
		Active:       true,
	}, nil
}

// Deactivate marks the agent as inactive
func (a *Agent) Deactivate() {
	a.Active = false
	a.Touch()
}

// Activate marks the agent as active
func (a *Agent) Activate() {
	a.Active = true
	a.Touch()
}

// NormalizeEmail lowercases and validates an agent email address
func NormalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", shared.NewDomainError("INVALID_EMAIL", "Email cannot be empty")
	}
	if len(email) > 200 {
		return "", shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 200 characters")
	}
	if !emailRegex.MatchString(email) {
		return "", shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}
	return email, nil
}
