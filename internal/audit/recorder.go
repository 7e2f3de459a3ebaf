// Package audit turns audit logging into an explicit dependency: every
// mutating service receives a [Recorder] instead of reaching for a shared
// global. Recording is best-effort; a failed write is logged and never
// fails the mutation that triggered it.
package audit

import (
	"context"

	"github.com/google/uuid"
	"github.com/tchaikit/ea-dashboard/internal/logger"
	"github.com/tchaikit/ea-dashboard/internal/store"
	"github.com/tchaikit/ea-dashboard/models"
)

// Event describes one action taken against the system.
type Event struct {
	Action     string
	EntityType string
	EntityID   string
	Details    string
}

// Actor is the request-scoped identity attached by HTTP middleware.
// UserID is zero when the request carries no authenticated user.
type Actor struct {
	UserID    uuid.UUID
	IPAddress string
	UserAgent string
}

// Recorder persists audit events.
type Recorder interface {
	Record(ctx context.Context, event Event)
}

type ctxKey string

const actorCtxKey ctxKey = "audit_actor"

// WithActor attaches the acting identity to the context for later recording.
func WithActor(ctx context.Context, actor Actor) context.Context {
	return context.WithValue(ctx, actorCtxKey, actor)
}

// ActorFromContext extracts the actor attached by middleware, or a zero
// Actor when none is present.
func ActorFromContext(ctx context.Context) Actor {
	if actor, ok := ctx.Value(actorCtxKey).(Actor); ok {
		return actor
	}

	return Actor{}
}

// storeRecorder writes events to the audit_logs table.
type storeRecorder struct {
	repository store.AuditLogRepository
	logger     *logger.Logger
}

func NewRecorder(repository store.AuditLogRepository, logger *logger.Logger) Recorder {
	return &storeRecorder{
		repository: repository,
		logger:     logger,
	}
}

// Record persists the event enriched with the request's actor. Failures are
// logged and swallowed: audit logging must never fail the mutation itself.
func (r *storeRecorder) Record(ctx context.Context, event Event) {
	log := logger.FromContext(ctx)
	actor := ActorFromContext(ctx)

	_, err := r.repository.Create(ctx, models.AuditLog{
		UserID:     actor.UserID,
		Action:     event.Action,
		EntityType: event.EntityType,
		EntityID:   event.EntityID,
		Details:    event.Details,
		IPAddress:  actor.IPAddress,
		UserAgent:  actor.UserAgent,
	})
	if err != nil {
		log.Err(err).
			Str("action", event.Action).
			Str("entity_type", event.EntityType).
			Str("entity_id", event.EntityID).
			Msg("failed to record audit event")
	}
}

type nopRecorder struct{}

// Nop returns a Recorder that discards all events. It is intended for tests.
func Nop() Recorder {
	return nopRecorder{}
}

func (nopRecorder) Record(context.Context, Event) {}
