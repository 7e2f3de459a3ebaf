package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/tchaikit/ea-dashboard/models"
)

// ArtefactService owns the business rules of the artefact catalog:
// validation, the filtered list contract and the dashboard aggregation.
type ArtefactService interface {
	Create(ctx context.Context, artefact models.Artefact) (models.Artefact, error)
	GetByID(ctx context.Context, id uuid.UUID) (models.Artefact, error)
	List(ctx context.Context, filter models.ArtefactFilter) ([]models.Artefact, models.ListMeta, error)
	Update(ctx context.Context, id uuid.UUID, update models.ArtefactUpdate) (models.Artefact, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Stats(ctx context.Context) (models.ArtefactStats, error)
}

// RelationshipService owns the rules for artefact edges. Creation verifies
// that both endpoints resolve to existing artefacts.
type RelationshipService interface {
	Create(ctx context.Context, rel models.Relationship) (models.Relationship, error)
	List(ctx context.Context, filter models.RelationshipFilter) ([]models.ResolvedRelationship, models.ListMeta, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// UserService owns account management: email uniqueness, password hashing
// and the guarantee that password material never leaves the service layer.
type UserService interface {
	Create(ctx context.Context, create models.UserCreate) (models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (models.User, error)
	FindByEmail(ctx context.Context, email string) (models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, id uuid.UUID, update models.UserUpdate) (models.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// SettingService owns the settings write paths (upsert, bulk upsert,
// update-only) and the grouped read views.
type SettingService interface {
	Upsert(ctx context.Context, upsert models.SettingUpsert) (models.Setting, error)
	BulkUpsert(ctx context.Context, upserts []models.SettingUpsert) ([]models.Setting, error)
	GetByKey(ctx context.Context, key string) (models.Setting, error)
	GroupedByCategory(ctx context.Context) (map[string][]models.Setting, error)
	ListByCategory(ctx context.Context, category string) ([]models.Setting, error)
	Update(ctx context.Context, key string, update models.SettingUpdate) (models.Setting, error)
	Delete(ctx context.Context, key string) error
}

// AuditLogService exposes the append-only audit trail: explicit creation
// for external collaborators and the filtered, paginated read path.
type AuditLogService interface {
	Create(ctx context.Context, entry models.AuditLog) (models.AuditLog, error)
	List(ctx context.Context, filter models.AuditLogFilter) ([]models.ResolvedAuditLog, models.ListMeta, error)
}

// AuthService is the session-token stub at the authentication boundary:
// credentials in, signed token out. Its internals are deliberately minimal.
type AuthService interface {
	Login(ctx context.Context, email, password string) (models.User, models.Token, error)
}
