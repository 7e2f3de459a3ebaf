package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/tchaikit/ea-dashboard/models"
)

// ArtefactRepository is the persistence contract for the artefact catalog.
type ArtefactRepository interface {
	Create(ctx context.Context, artefact models.Artefact) (models.Artefact, error)
	GetByID(ctx context.Context, id uuid.UUID) (models.Artefact, error)
	List(ctx context.Context, filter models.ArtefactFilter) ([]models.Artefact, int64, error)
	Update(ctx context.Context, id uuid.UUID, update models.ArtefactUpdate) (models.Artefact, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	Stats(ctx context.Context) (models.ArtefactStats, error)
}

// RelationshipRepository is the persistence contract for artefact edges.
type RelationshipRepository interface {
	Create(ctx context.Context, rel models.Relationship) (models.Relationship, error)
	List(ctx context.Context, filter models.RelationshipFilter) ([]models.ResolvedRelationship, int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// UserRepository is the persistence contract for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user models.User) (models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (models.User, error)
	FindByEmail(ctx context.Context, email string) (models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, id uuid.UUID, update models.UserUpdate, passwordHash *string) (models.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// SettingRepository is the persistence contract for settings.
// Upsert is the canonical write path, keyed by the unique setting key.
type SettingRepository interface {
	Upsert(ctx context.Context, upsert models.SettingUpsert) (models.Setting, error)
	GetByKey(ctx context.Context, key string) (models.Setting, error)
	ListAll(ctx context.Context) ([]models.Setting, error)
	ListByCategory(ctx context.Context, category string) ([]models.Setting, error)
	Update(ctx context.Context, key string, update models.SettingUpdate) (models.Setting, error)
	Delete(ctx context.Context, key string) error
}

// AuditLogRepository is the persistence contract for the append-only audit
// trail. There is deliberately no update or delete method.
type AuditLogRepository interface {
	Create(ctx context.Context, entry models.AuditLog) (models.AuditLog, error)
	List(ctx context.Context, filter models.AuditLogFilter) ([]models.ResolvedAuditLog, int64, error)
}
