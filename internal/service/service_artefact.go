package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/tchaikit/ea-dashboard/internal/audit"
	"github.com/tchaikit/ea-dashboard/internal/logger"
	"github.com/tchaikit/ea-dashboard/internal/store"
	"github.com/tchaikit/ea-dashboard/models"
)

// defaultArtefactPageSize is the list page size when the caller omits limit.
const defaultArtefactPageSize = 20

// artefactService is the concrete implementation of [ArtefactService].
type artefactService struct {
	repository store.ArtefactRepository
	recorder   audit.Recorder
	logger     *logger.Logger
}

func NewArtefactService(repository store.ArtefactRepository, recorder audit.Recorder, logger *logger.Logger) ArtefactService {
	return &artefactService{
		repository: repository,
		recorder:   recorder,
		logger:     logger,
	}
}

// Create validates and persists a new artefact. The dependencies/dependents
// counters are stored as given and default to zero when absent; they are
// advisory and not reconciled against the relationship graph.
func (s *artefactService) Create(ctx context.Context, artefact models.Artefact) (models.Artefact, error) {
	log := logger.FromContext(ctx)

	if err := validateArtefact(artefact); err != nil {
		log.Err(err).Str("func", "*artefactService.Create").Msg("artefact validation failed")
		return models.Artefact{}, err
	}

	created, err := s.repository.Create(ctx, artefact)
	if err != nil {
		log.Err(err).Str("func", "*artefactService.Create").Msg("artefact creation ended with error")
		return models.Artefact{}, fmt.Errorf("artefact creation ended with error: %w", err)
	}

	s.recorder.Record(ctx, audit.Event{
		Action:     "create",
		EntityType: "artefact",
		EntityID:   created.ID.String(),
		Details:    created.Name,
	})

	return created, nil
}

func (s *artefactService) GetByID(ctx context.Context, id uuid.UUID) (models.Artefact, error) {
	return s.repository.GetByID(ctx, id)
}

// List applies the shared filter/pagination contract and returns the page
// plus its meta envelope.
func (s *artefactService) List(ctx context.Context, filter models.ArtefactFilter) ([]models.Artefact, models.ListMeta, error) {
	filter.Normalize(defaultArtefactPageSize)

	artefacts, total, err := s.repository.List(ctx, filter)
	if err != nil {
		return nil, models.ListMeta{}, fmt.Errorf("artefact listing ended with error: %w", err)
	}

	return artefacts, models.NewListMeta(total, filter.Pagination), nil
}

// Update applies a partial merge. Fields absent from the payload are left
// untouched; provided enum values are validated first.
func (s *artefactService) Update(ctx context.Context, id uuid.UUID, update models.ArtefactUpdate) (models.Artefact, error) {
	log := logger.FromContext(ctx)

	if err := validateArtefactUpdate(update); err != nil {
		log.Err(err).Str("func", "*artefactService.Update").Msg("artefact update validation failed")
		return models.Artefact{}, err
	}

	updated, err := s.repository.Update(ctx, id, update)
	if err != nil {
		log.Err(err).Str("func", "*artefactService.Update").Msg("artefact update ended with error")
		return models.Artefact{}, fmt.Errorf("artefact update ended with error: %w", err)
	}

	s.recorder.Record(ctx, audit.Event{
		Action:     "update",
		EntityType: "artefact",
		EntityID:   updated.ID.String(),
		Details:    updated.Name,
	})

	return updated, nil
}

// Delete removes an artefact by id. No cascade: relationships referencing
// the artefact stay behind as dangling references.
func (s *artefactService) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContext(ctx)

	if err := s.repository.Delete(ctx, id); err != nil {
		log.Err(err).Str("func", "*artefactService.Delete").Msg("artefact deletion ended with error")
		return fmt.Errorf("artefact deletion ended with error: %w", err)
	}

	s.recorder.Record(ctx, audit.Event{
		Action:     "delete",
		EntityType: "artefact",
		EntityID:   id.String(),
	})

	return nil
}

// Stats reflects the persisted state at call time; no caching.
func (s *artefactService) Stats(ctx context.Context) (models.ArtefactStats, error) {
	return s.repository.Stats(ctx)
}

func validateArtefact(artefact models.Artefact) error {
	if artefact.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidDataProvided)
	}
	if !artefact.Type.Valid() {
		return fmt.Errorf("%w: invalid artefact type %q", ErrInvalidDataProvided, artefact.Type)
	}
	if !artefact.Status.Valid() {
		return fmt.Errorf("%w: invalid artefact status %q", ErrInvalidDataProvided, artefact.Status)
	}
	if !artefact.RiskLevel.Valid() {
		return fmt.Errorf("%w: invalid risk level %q", ErrInvalidDataProvided, artefact.RiskLevel)
	}
	if !artefact.UsageFrequency.Valid() {
		return fmt.Errorf("%w: invalid usage frequency %q", ErrInvalidDataProvided, artefact.UsageFrequency)
	}
	if artefact.Dependencies < 0 {
		return fmt.Errorf("%w: dependencies must not be negative", ErrInvalidDataProvided)
	}
	if artefact.Dependents < 0 {
		return fmt.Errorf("%w: dependents must not be negative", ErrInvalidDataProvided)
	}

	return nil
}

func validateArtefactUpdate(update models.ArtefactUpdate) error {
	if update.Empty() {
		return fmt.Errorf("%w: update carries no fields", ErrInvalidDataProvided)
	}
	if update.Name != nil && *update.Name == "" {
		return fmt.Errorf("%w: name must not be empty", ErrInvalidDataProvided)
	}
	if update.Type != nil && !update.Type.Valid() {
		return fmt.Errorf("%w: invalid artefact type %q", ErrInvalidDataProvided, *update.Type)
	}
	if update.Status != nil && !update.Status.Valid() {
		return fmt.Errorf("%w: invalid artefact status %q", ErrInvalidDataProvided, *update.Status)
	}
	if update.RiskLevel != nil && !update.RiskLevel.Valid() {
		return fmt.Errorf("%w: invalid risk level %q", ErrInvalidDataProvided, *update.RiskLevel)
	}
	if update.UsageFrequency != nil && !update.UsageFrequency.Valid() {
		return fmt.Errorf("%w: invalid usage frequency %q", ErrInvalidDataProvided, *update.UsageFrequency)
	}
	if update.Dependencies != nil && *update.Dependencies < 0 {
		return fmt.Errorf("%w: dependencies must not be negative", ErrInvalidDataProvided)
	}
	if update.Dependents != nil && *update.Dependents < 0 {
		return fmt.Errorf("%w: dependents must not be negative", ErrInvalidDataProvided)
	}

	return nil
}
