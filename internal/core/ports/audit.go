package ports

import (
	"context"
	"time"
)

// Audit event kinds recorded by the auth pipeline.
const (
	AuditRegistered   = "user_registered"
	AuditLoginOK      = "login_succeeded"
	AuditLoginFailed  = "login_failed"
	AuditAccessDenied = "access_denied"
	AuditUserDeleted  = "user_deleted"
)

// AuditEvent is one security-relevant occurrence, keyed by the username it
// concerns. Detail is a short free-form qualifier (failure reason, denied
// operation), never credential material.
type AuditEvent struct {
	Kind       string
	Username   string
	Detail     string
	OccurredAt time.Time
}

// AuditService processes a single audit event through to persistence.
type AuditService interface {
	Process(ctx context.Context, event AuditEvent) error
}

// AuditRepository persists audit events.
type AuditRepository interface {
	Insert(ctx context.Context, event AuditEvent) error
}

// AuditRecorder accepts events for asynchronous persistence. Record is
// non-blocking and best-effort: callers never wait on the audit trail.
type AuditRecorder interface {
	Record(event AuditEvent)
}
