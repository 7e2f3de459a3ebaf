package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tchaikit/ea-dashboard/internal/audit"
	"github.com/tchaikit/ea-dashboard/internal/logger"
	"github.com/tchaikit/ea-dashboard/internal/store"
	"github.com/tchaikit/ea-dashboard/models"
)

func validArtefact() models.Artefact {
	return models.Artefact{
		Name:           "Billing API",
		Type:           models.ArtefactTypeApplication,
		Status:         models.ArtefactStatusActive,
		RiskLevel:      models.RiskLevelMedium,
		UsageFrequency: models.UsageFrequencyHigh,
	}
}

func TestArtefactService_Create_Success(t *testing.T) {
	// Arrange
	id := uuid.New()
	repo := &mockArtefactRepo{
		createFn: func(_ context.Context, artefact models.Artefact) (models.Artefact, error) {
			artefact.ID = id
			return artefact, nil
		},
	}
	recorder := &recordingRecorder{}
	svc := NewArtefactService(repo, recorder, logger.Nop())

	// Act
	created, err := svc.Create(context.Background(), validArtefact())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, id, created.ID)
	require.Len(t, recorder.events, 1)
	assert.Equal(t, "create", recorder.events[0].Action)
	assert.Equal(t, "artefact", recorder.events[0].EntityType)
	assert.Equal(t, id.String(), recorder.events[0].EntityID)
}

func TestArtefactService_Create_Validation(t *testing.T) {
	svc := NewArtefactService(&mockArtefactRepo{}, audit.Nop(), logger.Nop())

	tests := []struct {
		name   string
		mutate func(a *models.Artefact)
	}{
		{"missing name", func(a *models.Artefact) { a.Name = "" }},
		{"invalid type", func(a *models.Artefact) { a.Type = "network" }},
		{"invalid status", func(a *models.Artefact) { a.Status = "archived" }},
		{"invalid risk level", func(a *models.Artefact) { a.RiskLevel = "critical" }},
		{"invalid usage frequency", func(a *models.Artefact) { a.UsageFrequency = "never" }},
		{"negative dependencies", func(a *models.Artefact) { a.Dependencies = -1 }},
		{"negative dependents", func(a *models.Artefact) { a.Dependents = -2 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			artefact := validArtefact()
			tt.mutate(&artefact)

			_, err := svc.Create(context.Background(), artefact)

			require.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestArtefactService_Create_RepoError(t *testing.T) {
	repo := &mockArtefactRepo{
		createFn: func(context.Context, models.Artefact) (models.Artefact, error) {
			return models.Artefact{}, errors.New("db down")
		},
	}
	recorder := &recordingRecorder{}
	svc := NewArtefactService(repo, recorder, logger.Nop())

	_, err := svc.Create(context.Background(), validArtefact())

	require.Error(t, err)
	assert.Empty(t, recorder.events, "failed creation must not be audited")
}

func TestArtefactService_List_NormalizesAndWrapsMeta(t *testing.T) {
	// Arrange
	var seen models.ArtefactFilter
	repo := &mockArtefactRepo{
		listFn: func(_ context.Context, filter models.ArtefactFilter) ([]models.Artefact, int64, error) {
			seen = filter
			return []models.Artefact{validArtefact()}, 41, nil
		},
	}
	svc := NewArtefactService(repo, audit.Nop(), logger.Nop())

	// Act
	artefacts, meta, err := svc.List(context.Background(), models.ArtefactFilter{})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 1, seen.Page)
	assert.Equal(t, defaultArtefactPageSize, seen.Limit)
	assert.Len(t, artefacts, 1)
	assert.Equal(t, int64(41), meta.Total)
	assert.Equal(t, 3, meta.TotalPages)
}

func TestArtefactService_Update_EmptyUpdateRejected(t *testing.T) {
	svc := NewArtefactService(&mockArtefactRepo{}, audit.Nop(), logger.Nop())

	_, err := svc.Update(context.Background(), uuid.New(), models.ArtefactUpdate{})

	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestArtefactService_Update_NotFoundPassesThrough(t *testing.T) {
	repo := &mockArtefactRepo{
		updateFn: func(context.Context, uuid.UUID, models.ArtefactUpdate) (models.Artefact, error) {
			return models.Artefact{}, store.ErrArtefactNotFound
		},
	}
	svc := NewArtefactService(repo, audit.Nop(), logger.Nop())

	name := "Renamed"
	_, err := svc.Update(context.Background(), uuid.New(), models.ArtefactUpdate{Name: &name})

	require.ErrorIs(t, err, store.ErrArtefactNotFound)
}

func TestArtefactService_Delete_Audited(t *testing.T) {
	id := uuid.New()
	repo := &mockArtefactRepo{
		deleteFn: func(context.Context, uuid.UUID) error { return nil },
	}
	recorder := &recordingRecorder{}
	svc := NewArtefactService(repo, recorder, logger.Nop())

	err := svc.Delete(context.Background(), id)

	require.NoError(t, err)
	require.Len(t, recorder.events, 1)
	assert.Equal(t, "delete", recorder.events[0].Action)
	assert.Equal(t, id.String(), recorder.events[0].EntityID)
}

func TestArtefactService_Stats_PassesThrough(t *testing.T) {
	repo := &mockArtefactRepo{
		statsFn: func(context.Context) (models.ArtefactStats, error) {
			return models.ArtefactStats{Total: 7}, nil
		},
	}
	svc := NewArtefactService(repo, audit.Nop(), logger.Nop())

	stats, err := svc.Stats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(7), stats.Total)
}
