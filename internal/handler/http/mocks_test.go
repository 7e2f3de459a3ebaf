package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/tchaikit/ea-dashboard/internal/config"
	"github.com/tchaikit/ea-dashboard/internal/logger"
	"github.com/tchaikit/ea-dashboard/internal/service"
	"github.com/tchaikit/ea-dashboard/models"
)

// Func-field mocks for the service interfaces; each test overrides exactly
// the methods it exercises.

type mockArtefactService struct {
	createFn  func(ctx context.Context, artefact models.Artefact) (models.Artefact, error)
	getByIDFn func(ctx context.Context, id uuid.UUID) (models.Artefact, error)
	listFn    func(ctx context.Context, filter models.ArtefactFilter) ([]models.Artefact, models.ListMeta, error)
	updateFn  func(ctx context.Context, id uuid.UUID, update models.ArtefactUpdate) (models.Artefact, error)
	deleteFn  func(ctx context.Context, id uuid.UUID) error
	statsFn   func(ctx context.Context) (models.ArtefactStats, error)
}

func (m *mockArtefactService) Create(ctx context.Context, artefact models.Artefact) (models.Artefact, error) {
	return m.createFn(ctx, artefact)
}

func (m *mockArtefactService) GetByID(ctx context.Context, id uuid.UUID) (models.Artefact, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockArtefactService) List(ctx context.Context, filter models.ArtefactFilter) ([]models.Artefact, models.ListMeta, error) {
	return m.listFn(ctx, filter)
}

func (m *mockArtefactService) Update(ctx context.Context, id uuid.UUID, update models.ArtefactUpdate) (models.Artefact, error) {
	return m.updateFn(ctx, id, update)
}

func (m *mockArtefactService) Delete(ctx context.Context, id uuid.UUID) error {
	return m.deleteFn(ctx, id)
}

func (m *mockArtefactService) Stats(ctx context.Context) (models.ArtefactStats, error) {
	return m.statsFn(ctx)
}

type mockRelationshipService struct {
	createFn func(ctx context.Context, rel models.Relationship) (models.Relationship, error)
	listFn   func(ctx context.Context, filter models.RelationshipFilter) ([]models.ResolvedRelationship, models.ListMeta, error)
	deleteFn func(ctx context.Context, id uuid.UUID) error
}

func (m *mockRelationshipService) Create(ctx context.Context, rel models.Relationship) (models.Relationship, error) {
	return m.createFn(ctx, rel)
}

func (m *mockRelationshipService) List(ctx context.Context, filter models.RelationshipFilter) ([]models.ResolvedRelationship, models.ListMeta, error) {
	return m.listFn(ctx, filter)
}

func (m *mockRelationshipService) Delete(ctx context.Context, id uuid.UUID) error {
	return m.deleteFn(ctx, id)
}

type mockUserService struct {
	createFn      func(ctx context.Context, create models.UserCreate) (models.User, error)
	getByIDFn     func(ctx context.Context, id uuid.UUID) (models.User, error)
	findByEmailFn func(ctx context.Context, email string) (models.User, error)
	listFn        func(ctx context.Context) ([]models.User, error)
	updateFn      func(ctx context.Context, id uuid.UUID, update models.UserUpdate) (models.User, error)
	deleteFn      func(ctx context.Context, id uuid.UUID) error
}

func (m *mockUserService) Create(ctx context.Context, create models.UserCreate) (models.User, error) {
	return m.createFn(ctx, create)
}

func (m *mockUserService) GetByID(ctx context.Context, id uuid.UUID) (models.User, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockUserService) FindByEmail(ctx context.Context, email string) (models.User, error) {
	return m.findByEmailFn(ctx, email)
}

func (m *mockUserService) List(ctx context.Context) ([]models.User, error) {
	return m.listFn(ctx)
}

func (m *mockUserService) Update(ctx context.Context, id uuid.UUID, update models.UserUpdate) (models.User, error) {
	return m.updateFn(ctx, id, update)
}

func (m *mockUserService) Delete(ctx context.Context, id uuid.UUID) error {
	return m.deleteFn(ctx, id)
}

type mockSettingService struct {
	upsertFn         func(ctx context.Context, upsert models.SettingUpsert) (models.Setting, error)
	bulkUpsertFn     func(ctx context.Context, upserts []models.SettingUpsert) ([]models.Setting, error)
	getByKeyFn       func(ctx context.Context, key string) (models.Setting, error)
	groupedFn        func(ctx context.Context) (map[string][]models.Setting, error)
	listByCategoryFn func(ctx context.Context, category string) ([]models.Setting, error)
	updateFn         func(ctx context.Context, key string, update models.SettingUpdate) (models.Setting, error)
	deleteFn         func(ctx context.Context, key string) error
}

func (m *mockSettingService) Upsert(ctx context.Context, upsert models.SettingUpsert) (models.Setting, error) {
	return m.upsertFn(ctx, upsert)
}

func (m *mockSettingService) BulkUpsert(ctx context.Context, upserts []models.SettingUpsert) ([]models.Setting, error) {
	return m.bulkUpsertFn(ctx, upserts)
}

func (m *mockSettingService) GetByKey(ctx context.Context, key string) (models.Setting, error) {
	return m.getByKeyFn(ctx, key)
}

func (m *mockSettingService) GroupedByCategory(ctx context.Context) (map[string][]models.Setting, error) {
	return m.groupedFn(ctx)
}

func (m *mockSettingService) ListByCategory(ctx context.Context, category string) ([]models.Setting, error) {
	return m.listByCategoryFn(ctx, category)
}

func (m *mockSettingService) Update(ctx context.Context, key string, update models.SettingUpdate) (models.Setting, error) {
	return m.updateFn(ctx, key, update)
}

func (m *mockSettingService) Delete(ctx context.Context, key string) error {
	return m.deleteFn(ctx, key)
}

type mockAuditLogService struct {
	createFn func(ctx context.Context, entry models.AuditLog) (models.AuditLog, error)
	listFn   func(ctx context.Context, filter models.AuditLogFilter) ([]models.ResolvedAuditLog, models.ListMeta, error)
}

func (m *mockAuditLogService) Create(ctx context.Context, entry models.AuditLog) (models.AuditLog, error) {
	return m.createFn(ctx, entry)
}

func (m *mockAuditLogService) List(ctx context.Context, filter models.AuditLogFilter) ([]models.ResolvedAuditLog, models.ListMeta, error) {
	return m.listFn(ctx, filter)
}

type mockAuthService struct {
	loginFn func(ctx context.Context, email, password string) (models.User, models.Token, error)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (models.User, models.Token, error) {
	return m.loginFn(ctx, email, password)
}

// pingerFunc adapts a func to the Pinger interface.
type pingerFunc func(ctx context.Context) error

func (f pingerFunc) PingContext(ctx context.Context) error {
	return f(ctx)
}

// newTestHandler builds a Handler around the given services; nil services
// stay nil, so a test touching an unwired service fails loudly.
func newTestHandler(t *testing.T, services *service.Services) *Handler {
	t.Helper()
	ping := pingerFunc(func(context.Context) error { return nil })
	return NewHandler(services, ping, config.App{Version: "test"}, logger.Nop())
}

// withURLParam injects a chi route parameter into the request context, so
// handler methods can be called without a full router.
func withURLParam(r *http.Request, key, value string) *http.Request {
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, routeCtx))
}
