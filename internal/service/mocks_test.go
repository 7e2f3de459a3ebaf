package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/tchaikit/ea-dashboard/internal/audit"
	"github.com/tchaikit/ea-dashboard/models"
)

// Per-interface mocks with overridable method fields, so each test states
// exactly the repository behaviour it needs.

type mockArtefactRepo struct {
	createFn  func(ctx context.Context, artefact models.Artefact) (models.Artefact, error)
	getByIDFn func(ctx context.Context, id uuid.UUID) (models.Artefact, error)
	listFn    func(ctx context.Context, filter models.ArtefactFilter) ([]models.Artefact, int64, error)
	updateFn  func(ctx context.Context, id uuid.UUID, update models.ArtefactUpdate) (models.Artefact, error)
	deleteFn  func(ctx context.Context, id uuid.UUID) error
	existsFn  func(ctx context.Context, id uuid.UUID) (bool, error)
	statsFn   func(ctx context.Context) (models.ArtefactStats, error)
}

func (m *mockArtefactRepo) Create(ctx context.Context, artefact models.Artefact) (models.Artefact, error) {
	return m.createFn(ctx, artefact)
}

func (m *mockArtefactRepo) GetByID(ctx context.Context, id uuid.UUID) (models.Artefact, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockArtefactRepo) List(ctx context.Context, filter models.ArtefactFilter) ([]models.Artefact, int64, error) {
	return m.listFn(ctx, filter)
}

func (m *mockArtefactRepo) Update(ctx context.Context, id uuid.UUID, update models.ArtefactUpdate) (models.Artefact, error) {
	return m.updateFn(ctx, id, update)
}

func (m *mockArtefactRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.deleteFn(ctx, id)
}

func (m *mockArtefactRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return m.existsFn(ctx, id)
}

func (m *mockArtefactRepo) Stats(ctx context.Context) (models.ArtefactStats, error) {
	return m.statsFn(ctx)
}

type mockRelationshipRepo struct {
	createFn func(ctx context.Context, rel models.Relationship) (models.Relationship, error)
	listFn   func(ctx context.Context, filter models.RelationshipFilter) ([]models.ResolvedRelationship, int64, error)
	deleteFn func(ctx context.Context, id uuid.UUID) error
}

func (m *mockRelationshipRepo) Create(ctx context.Context, rel models.Relationship) (models.Relationship, error) {
	return m.createFn(ctx, rel)
}

func (m *mockRelationshipRepo) List(ctx context.Context, filter models.RelationshipFilter) ([]models.ResolvedRelationship, int64, error) {
	return m.listFn(ctx, filter)
}

func (m *mockRelationshipRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.deleteFn(ctx, id)
}

type mockUserRepo struct {
	createFn      func(ctx context.Context, user models.User) (models.User, error)
	getByIDFn     func(ctx context.Context, id uuid.UUID) (models.User, error)
	findByEmailFn func(ctx context.Context, email string) (models.User, error)
	listFn        func(ctx context.Context) ([]models.User, error)
	updateFn      func(ctx context.Context, id uuid.UUID, update models.UserUpdate, passwordHash *string) (models.User, error)
	deleteFn      func(ctx context.Context, id uuid.UUID) error
}

func (m *mockUserRepo) Create(ctx context.Context, user models.User) (models.User, error) {
	return m.createFn(ctx, user)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id uuid.UUID) (models.User, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (models.User, error) {
	return m.findByEmailFn(ctx, email)
}

func (m *mockUserRepo) List(ctx context.Context) ([]models.User, error) {
	return m.listFn(ctx)
}

func (m *mockUserRepo) Update(ctx context.Context, id uuid.UUID, update models.UserUpdate, passwordHash *string) (models.User, error) {
	return m.updateFn(ctx, id, update, passwordHash)
}

func (m *mockUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.deleteFn(ctx, id)
}

type mockSettingRepo struct {
	upsertFn         func(ctx context.Context, upsert models.SettingUpsert) (models.Setting, error)
	getByKeyFn       func(ctx context.Context, key string) (models.Setting, error)
	listAllFn        func(ctx context.Context) ([]models.Setting, error)
	listByCategoryFn func(ctx context.Context, category string) ([]models.Setting, error)
	updateFn         func(ctx context.Context, key string, update models.SettingUpdate) (models.Setting, error)
	deleteFn         func(ctx context.Context, key string) error
}

func (m *mockSettingRepo) Upsert(ctx context.Context, upsert models.SettingUpsert) (models.Setting, error) {
	return m.upsertFn(ctx, upsert)
}

func (m *mockSettingRepo) GetByKey(ctx context.Context, key string) (models.Setting, error) {
	return m.getByKeyFn(ctx, key)
}

func (m *mockSettingRepo) ListAll(ctx context.Context) ([]models.Setting, error) {
	return m.listAllFn(ctx)
}

func (m *mockSettingRepo) ListByCategory(ctx context.Context, category string) ([]models.Setting, error) {
	return m.listByCategoryFn(ctx, category)
}

func (m *mockSettingRepo) Update(ctx context.Context, key string, update models.SettingUpdate) (models.Setting, error) {
	return m.updateFn(ctx, key, update)
}

func (m *mockSettingRepo) Delete(ctx context.Context, key string) error {
	return m.deleteFn(ctx, key)
}

type mockAuditLogRepo struct {
	createFn func(ctx context.Context, entry models.AuditLog) (models.AuditLog, error)
	listFn   func(ctx context.Context, filter models.AuditLogFilter) ([]models.ResolvedAuditLog, int64, error)
}

func (m *mockAuditLogRepo) Create(ctx context.Context, entry models.AuditLog) (models.AuditLog, error) {
	return m.createFn(ctx, entry)
}

func (m *mockAuditLogRepo) List(ctx context.Context, filter models.AuditLogFilter) ([]models.ResolvedAuditLog, int64, error) {
	return m.listFn(ctx, filter)
}

// recordingRecorder captures recorded events for assertions.
type recordingRecorder struct {
	events []audit.Event
}

func (r *recordingRecorder) Record(_ context.Context, event audit.Event) {
	r.events = append(r.events, event)
}
