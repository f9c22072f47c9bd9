package importing

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/fieldmap/backend/internal/domain/agent"
	"github.com/fieldmap/backend/internal/domain/mapping"
	"github.com/fieldmap/backend/internal/domain/schema"
	"github.com/fieldmap/backend/internal/domain/shared"
	"github.com/fieldmap/backend/internal/infrastructure/cache"
	"github.com/fieldmap/backend/internal/infrastructure/csvimport"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrSessionNotFound is returned when a mapping session is missing or expired
var ErrSessionNotFound = cache.ErrSessionNotFound

// MappingService computes column-to-field mapping suggestions for uploaded
// files and keeps the sampled content in short-lived sessions so mappings can
// be recomputed without re-uploading.
type MappingService struct {
	fieldRepo  schema.FieldRepository
	agentRepo  agent.Repository
	sessions   cache.SessionStore
	sampler    *csvimport.Sampler
	sessionTTL time.Duration
	logger     *zap.Logger
}

// NewMappingService creates a new MappingService
func NewMappingService(
	fieldRepo schema.FieldRepository,
	agentRepo agent.Repository,
	sessions cache.SessionStore,
	sampler *csvimport.Sampler,
	sessionTTL time.Duration,
	logger *zap.Logger,
) *MappingService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MappingService{
		fieldRepo:  fieldRepo,
		agentRepo:  agentRepo,
		sessions:   sessions,
		sampler:    sampler,
		sessionTTL: sessionTTL,
		logger:     logger,
	}
}

// Preview samples an uploaded file, maps its columns against the tenant's
// field catalog and stores the sample in a new session.
func (s *MappingService) Preview(ctx context.Context, tenantID uuid.UUID, fileName string, content io.Reader, opts PreviewOptions) (*PreviewResponse, error) {
	sample, err := s.sampler.Sample(content)
	if err != nil {
		return nil, err
	}

	fields, err := s.catalogForTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	mappings, ownerCol := s.computeMappings(ctx, tenantID, fields, sample.Headers, sample.Rows, opts)

	session := &cache.MappingSession{
		ID:        uuid.NewString(),
		TenantID:  tenantID.String(),
		FileName:  fileName,
		Headers:   sample.Headers,
		Rows:      sample.Rows,
		CreatedAt: time.Now(),
	}
	if err := s.sessions.Put(ctx, session, s.sessionTTL); err != nil {
		return nil, err
	}

	s.logger.Info("Computed mapping preview",
		zap.String("tenant_id", tenantID.String()),
		zap.String("session_id", session.ID),
		zap.String("file_name", fileName),
		zap.Int("columns", len(sample.Headers)),
		zap.Int("sampled_rows", sample.SampledRows),
	)

	return &PreviewResponse{
		SessionID:   session.ID,
		FileName:    fileName,
		Headers:     sample.Headers,
		Preview:     sample.Preview,
		SampledRows: sample.SampledRows,
		Mappings:    toMappingResponses(mappings),
		OwnerColumn: ownerCol,
		Fields:      fields,
	}, nil
}

// Remap recomputes mappings for a stored session, typically after the tenant's
// field catalog changed or with different options.
func (s *MappingService) Remap(ctx context.Context, tenantID uuid.UUID, sessionID string, opts PreviewOptions) (*RemapResponse, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.TenantID != tenantID.String() {
		// Sessions are tenant-scoped; a mismatch behaves like a miss
		return nil, ErrSessionNotFound
	}

	fields, err := s.catalogForTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	mappings, ownerCol := s.computeMappings(ctx, tenantID, fields, session.Headers, session.Rows, opts)

	return &RemapResponse{
		SessionID:   sessionID,
		Mappings:    toMappingResponses(mappings),
		OwnerColumn: ownerCol,
	}, nil
}

// DeleteSession discards a stored session
func (s *MappingService) DeleteSession(ctx context.Context, tenantID uuid.UUID, sessionID string) error {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	if session.TenantID != tenantID.String() {
		// Sessions are tenant-scoped; a mismatch behaves like a miss
		return ErrSessionNotFound
	}
	return s.sessions.Delete(ctx, sessionID)
}

// computeMappings runs the matching engine and owner detection over a sample
func (s *MappingService) computeMappings(ctx context.Context, tenantID uuid.UUID, fields []mapping.TargetField, headers []string, rows [][]string, opts PreviewOptions) ([]mapping.ColumnMapping, *OwnerColumnResponse) {
	engine := mapping.NewEngine(fields)
	mappings := engine.MapColumns(headers, rows)
	if opts.ResolveDuplicates {
		mappings = mapping.ResolveDuplicates(mappings)
	}

	var ownerCol *OwnerColumnResponse
	if detected := mapping.DetectOwnerEmailColumn(headers, rows); detected != nil {
		ownerCol = &OwnerColumnResponse{
			Header:        detected.Header,
			Index:         detected.Index,
			Score:         detected.Score,
			MatchedAgents: s.resolveAgents(ctx, tenantID, rows, detected.Index),
		}
	}
	return mappings, ownerCol
}

// catalogForTenant loads the tenant's schema fields, falling back to the
// built-in catalog when the tenant has none configured.
func (s *MappingService) catalogForTenant(ctx context.Context, tenantID uuid.UUID) ([]mapping.TargetField, error) {
	stored, err := s.fieldRepo.FindByTenant(ctx, tenantID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return schema.DefaultCatalog(), nil
		}
		return nil, err
	}
	if len(stored) == 0 {
		return schema.DefaultCatalog(), nil
	}

	fields := make([]mapping.TargetField, len(stored))
	for i, f := range stored {
		fields[i] = f.ToTargetField()
	}
	return fields, nil
}

// resolveAgents looks up the distinct email values of the owner column in the
// tenant's agent directory. Unknown addresses are simply skipped.
func (s *MappingService) resolveAgents(ctx context.Context, tenantID uuid.UUID, rows [][]string, col int) []AgentRef {
	seen := make(map[string]bool)
	var refs []AgentRef

	for _, value := range mapping.ColumnSamples(rows, col, mapping.MaxSampleValues) {
		email, err := agent.NormalizeEmail(value)
		if err != nil || seen[email] {
			continue
		}
		seen[email] = true

		a, err := s.agentRepo.FindByEmail(ctx, tenantID, email)
		if err != nil {
			if !errors.Is(err, shared.ErrNotFound) {
				s.logger.Warn("Agent lookup failed",
					zap.String("tenant_id", tenantID.String()),
					zap.String("email", maskEmail(email)),
					zap.Error(err),
				)
			}
			continue
		}
		refs = append(refs, AgentRef{ID: a.ID.String(), Name: a.Name, Email: a.Email})
	}
	return refs
}

// maskEmail hides the local part of an address in log output
func maskEmail(email string) string {
	at := strings.IndexByte(email, '@')
	if at <= 0 {
		return "***"
	}
	return email[:1] + "***" + email[at:]
}
