package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/tchaikit/ea-dashboard/internal/logger"
	"github.com/tchaikit/ea-dashboard/models"
)

func newTestAuditLogRepo(t *testing.T) (*auditLogRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &auditLogRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func auditLogColumns() []string {
	return []string{"id", "user_id", "action", "entity_type", "entity_id", "details", "ip_address", "user_agent", "created_at"}
}

func TestCreateAuditLog_Success(t *testing.T) {
	repo, mock, db := newTestAuditLogRepo(t)
	defer db.Close()

	ctx := context.Background()
	entry := models.AuditLog{
		UserID:     uuid.New(),
		Action:     "create",
		EntityType: "artefact",
		EntityID:   uuid.NewString(),
		Details:    "created artefact Billing API",
		IPAddress:  "10.0.0.7",
		UserAgent:  "curl/8.5.0",
	}

	id := uuid.New()
	now := time.Now()

	rows := sqlmock.
		NewRows(auditLogColumns()).
		AddRow(id.String(), entry.UserID.String(), entry.Action, entry.EntityType,
			entry.EntityID, entry.Details, entry.IPAddress, entry.UserAgent, now)

	mock.ExpectQuery("INSERT INTO audit_logs").
		WillReturnRows(rows)

	created, err := repo.Create(ctx, entry)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != id {
		t.Errorf("expected ID %s, got %s", id, created.ID)
	}
	if created.UserID != entry.UserID {
		t.Errorf("expected user ID %s, got %s", entry.UserID, created.UserID)
	}
}

func TestCreateAuditLog_SystemEvent(t *testing.T) {
	repo, mock, db := newTestAuditLogRepo(t)
	defer db.Close()

	ctx := context.Background()
	entry := models.AuditLog{
		Action:     "login_failed",
		EntityType: "user",
	}

	rows := sqlmock.
		NewRows(auditLogColumns()).
		AddRow(uuid.NewString(), nil, entry.Action, entry.EntityType, "", "", "", "", time.Now())

	mock.ExpectQuery("INSERT INTO audit_logs").
		WillReturnRows(rows)

	created, err := repo.Create(ctx, entry)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.UserID != uuid.Nil {
		t.Errorf("expected nil user ID for system event, got %s", created.UserID)
	}
}

func TestCreateAuditLog_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestAuditLogRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO audit_logs").
		WillReturnError(errors.New("db network error"))

	_, err := repo.Create(ctx, models.AuditLog{Action: "delete"})
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestListAuditLogs_ResolvesActor(t *testing.T) {
	repo, mock, db := newTestAuditLogRepo(t)
	defer db.Close()

	ctx := context.Background()
	var filter models.AuditLogFilter
	filter.Page = 1
	filter.Limit = 50

	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	userID := uuid.New()
	now := time.Now()

	columns := append(auditLogColumns(), "name", "email")
	rows := sqlmock.NewRows(columns).
		AddRow(uuid.NewString(), userID.String(), "update", "artefact", uuid.NewString(),
			"changed status", "10.0.0.7", "curl/8.5.0", now, "Alice", "alice@corp.example").
		AddRow(uuid.NewString(), nil, "delete", "setting", "limits.page_size",
			"", "", "", now, nil, nil)

	mock.ExpectQuery("SELECT (.+) FROM audit_logs").
		WillReturnRows(rows)

	entries, total, err := repo.List(ctx, filter)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 2 {
		t.Errorf("expected total 2, got %d", total)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].User == nil || entries[0].User.Email != "alice@corp.example" {
		t.Errorf("expected resolved actor, got %+v", entries[0].User)
	}
	if entries[1].User != nil {
		t.Errorf("expected nil actor for deleted account, got %+v", entries[1].User)
	}
	if entries[1].UserID != uuid.Nil {
		t.Errorf("expected nil user ID, got %s", entries[1].UserID)
	}
}
