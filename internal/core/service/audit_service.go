package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tarefalabs/tarefas-api/internal/core/ports"
)

// AuditService persists security-relevant events delivered by the audit
// dispatcher.
type AuditService struct {
	repo   ports.AuditRepository
	logger zerolog.Logger
}

func NewAuditService(repo ports.AuditRepository, logger zerolog.Logger) *AuditService {
	return &AuditService{repo: repo, logger: logger}
}

// Process writes one event to the audit store. Events with no kind are
// dropped; an event without a timestamp gets one here.
func (s *AuditService) Process(ctx context.Context, event ports.AuditEvent) error {
	if event.Kind == "" {
		s.logger.Warn().Str("username", event.Username).Msg("audit event without kind dropped")
		return nil
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}
	return s.repo.Insert(ctx, event)
}
