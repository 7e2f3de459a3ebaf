package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/tchaikit/ea-dashboard/internal/logger"
	"github.com/tchaikit/ea-dashboard/models"
)

func newTestArtefactRepo(t *testing.T) (*artefactRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &artefactRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func artefactColumns() []string {
	return []string{
		"id", "name", "name_th", "type", "description", "owner", "department",
		"status", "risk_level", "version", "usage_frequency",
		"dependencies", "dependents", "created_at", "updated_at",
	}
}

func artefactRow(rows *sqlmock.Rows, a models.Artefact) *sqlmock.Rows {
	return rows.AddRow(a.ID.String(), a.Name, a.NameTh, a.Type, a.Description, a.Owner,
		a.Department, a.Status, a.RiskLevel, a.Version, a.UsageFrequency,
		a.Dependencies, a.Dependents, a.CreatedAt, a.UpdatedAt)
}

func sampleArtefact() models.Artefact {
	now := time.Now()
	return models.Artefact{
		ID:             uuid.New(),
		Name:           "Billing API",
		NameTh:         "ระบบเรียกเก็บเงิน",
		Type:           models.ArtefactTypeApplication,
		Description:    "Customer billing service",
		Owner:          "Platform Team",
		Department:     "IT",
		Status:         models.ArtefactStatusActive,
		RiskLevel:      models.RiskLevelMedium,
		Version:        "2.3.1",
		UsageFrequency: models.UsageFrequencyHigh,
		Dependencies:   3,
		Dependents:     5,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func TestCreateArtefact_Success(t *testing.T) {
	repo, mock, db := newTestArtefactRepo(t)
	defer db.Close()

	ctx := context.Background()
	artefact := sampleArtefact()

	rows := artefactRow(sqlmock.NewRows(artefactColumns()), artefact)

	mock.ExpectQuery("INSERT INTO artefacts").
		WillReturnRows(rows)

	created, err := repo.Create(ctx, artefact)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != artefact.ID {
		t.Errorf("expected ID %s, got %s", artefact.ID, created.ID)
	}
	if created.NameTh != artefact.NameTh {
		t.Errorf("expected name_th %q, got %q", artefact.NameTh, created.NameTh)
	}
}

func TestGetArtefactByID_NotFound(t *testing.T) {
	repo, mock, db := newTestArtefactRepo(t)
	defer db.Close()

	ctx := context.Background()
	id := uuid.New()

	mock.ExpectQuery("SELECT (.+) FROM artefacts").
		WithArgs(id).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(ctx, id)
	if !errors.Is(err, ErrArtefactNotFound) {
		t.Fatalf("expected ErrArtefactNotFound, got %v", err)
	}
}

func TestListArtefacts_CountAndPage(t *testing.T) {
	repo, mock, db := newTestArtefactRepo(t)
	defer db.Close()

	ctx := context.Background()
	filter := models.ArtefactFilter{Status: models.ArtefactStatusActive}
	filter.Page = 1
	filter.Limit = 20

	mock.ExpectQuery("SELECT COUNT").
		WithArgs(filter.Status).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))

	rows := sqlmock.NewRows(artefactColumns())
	rows = artefactRow(rows, sampleArtefact())
	rows = artefactRow(rows, sampleArtefact())

	mock.ExpectQuery("SELECT (.+) FROM artefacts").
		WithArgs(filter.Status).
		WillReturnRows(rows)

	artefacts, total, err := repo.List(ctx, filter)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 42 {
		t.Errorf("expected total 42, got %d", total)
	}
	if len(artefacts) != 2 {
		t.Fatalf("expected 2 artefacts, got %d", len(artefacts))
	}
}

func TestListArtefacts_CountError(t *testing.T) {
	repo, mock, db := newTestArtefactRepo(t)
	defer db.Close()

	ctx := context.Background()
	var filter models.ArtefactFilter
	filter.Page = 1
	filter.Limit = 20

	mock.ExpectQuery("SELECT COUNT").
		WillReturnError(errors.New("db network error"))

	_, _, err := repo.List(ctx, filter)
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestUpdateArtefact_NotFound(t *testing.T) {
	repo, mock, db := newTestArtefactRepo(t)
	defer db.Close()

	ctx := context.Background()
	name := "Renamed"

	mock.ExpectQuery("UPDATE artefacts").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Update(ctx, uuid.New(), models.ArtefactUpdate{Name: &name})
	if !errors.Is(err, ErrArtefactNotFound) {
		t.Fatalf("expected ErrArtefactNotFound, got %v", err)
	}
}

func TestDeleteArtefact_NotFound(t *testing.T) {
	repo, mock, db := newTestArtefactRepo(t)
	defer db.Close()

	ctx := context.Background()
	id := uuid.New()

	mock.ExpectExec("DELETE FROM artefacts").
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(ctx, id)
	if !errors.Is(err, ErrArtefactNotFound) {
		t.Fatalf("expected ErrArtefactNotFound, got %v", err)
	}
}

func TestArtefactExists(t *testing.T) {
	repo, mock, db := newTestArtefactRepo(t)
	defer db.Close()

	ctx := context.Background()
	id := uuid.New()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.Exists(ctx, id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !exists {
		t.Error("expected exists=true")
	}
}

func TestArtefactStats(t *testing.T) {
	repo, mock, db := newTestArtefactRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(10))

	mock.ExpectQuery("SELECT type, COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"type", "count"}).
			AddRow("application", 6).
			AddRow("technology", 4))

	mock.ExpectQuery("SELECT risk_level, COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"risk_level", "count"}).
			AddRow("high", 7).
			AddRow("low", 3))

	mock.ExpectQuery("SELECT status, COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"status", "count"}).
			AddRow("active", 10))

	stats, err := repo.Stats(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Total != 10 {
		t.Errorf("expected total 10, got %d", stats.Total)
	}
	if len(stats.ByType) != 2 || stats.ByType[0].Type != models.ArtefactTypeApplication {
		t.Errorf("unexpected ByType breakdown: %+v", stats.ByType)
	}
	if len(stats.ByRisk) != 2 || stats.ByRisk[0].Count != 7 {
		t.Errorf("unexpected ByRisk breakdown: %+v", stats.ByRisk)
	}
	if len(stats.ByStatus) != 1 || stats.ByStatus[0].Status != models.ArtefactStatusActive {
		t.Errorf("unexpected ByStatus breakdown: %+v", stats.ByStatus)
	}
}
