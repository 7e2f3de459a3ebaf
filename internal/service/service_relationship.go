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

const defaultRelationshipPageSize = 50

// relationshipService is the concrete implementation of
// [RelationshipService]. It enforces referential integrity at write time:
// a relationship is only created when both endpoints resolve to existing
// artefacts. Reads stay tolerant of references that dangle later.
type relationshipService struct {
	repository store.RelationshipRepository
	artefacts  store.ArtefactRepository
	recorder   audit.Recorder
	logger     *logger.Logger
}

func NewRelationshipService(repository store.RelationshipRepository, artefacts store.ArtefactRepository, recorder audit.Recorder, logger *logger.Logger) RelationshipService {
	return &relationshipService{
		repository: repository,
		artefacts:  artefacts,
		recorder:   recorder,
		logger:     logger,
	}
}

// Create validates the edge and verifies both endpoints exist before
// persisting. A missing endpoint is reported as a not-found error naming
// the unresolvable id.
func (s *relationshipService) Create(ctx context.Context, rel models.Relationship) (models.Relationship, error) {
	log := logger.FromContext(ctx)

	if rel.SourceID == uuid.Nil {
		return models.Relationship{}, fmt.Errorf("%w: sourceId is required", ErrInvalidDataProvided)
	}
	if rel.TargetID == uuid.Nil {
		return models.Relationship{}, fmt.Errorf("%w: targetId is required", ErrInvalidDataProvided)
	}
	if !rel.Type.Valid() {
		return models.Relationship{}, fmt.Errorf("%w: invalid relationship type %q", ErrInvalidDataProvided, rel.Type)
	}

	if err := s.checkEndpoint(ctx, "source", rel.SourceID); err != nil {
		return models.Relationship{}, err
	}
	if err := s.checkEndpoint(ctx, "target", rel.TargetID); err != nil {
		return models.Relationship{}, err
	}

	created, err := s.repository.Create(ctx, rel)
	if err != nil {
		log.Err(err).Str("func", "*relationshipService.Create").Msg("relationship creation ended with error")
		return models.Relationship{}, fmt.Errorf("relationship creation ended with error: %w", err)
	}

	s.recorder.Record(ctx, audit.Event{
		Action:     "create",
		EntityType: "relationship",
		EntityID:   created.ID.String(),
		Details:    created.Label,
	})

	return created, nil
}

func (s *relationshipService) checkEndpoint(ctx context.Context, side string, id uuid.UUID) error {
	exists, err := s.artefacts.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("checking %s artefact: %w", side, err)
	}
	if !exists {
		return fmt.Errorf("%s artefact %s: %w", side, id, store.ErrArtefactNotFound)
	}

	return nil
}

func (s *relationshipService) List(ctx context.Context, filter models.RelationshipFilter) ([]models.ResolvedRelationship, models.ListMeta, error) {
	filter.Normalize(defaultRelationshipPageSize)

	relationships, total, err := s.repository.List(ctx, filter)
	if err != nil {
		return nil, models.ListMeta{}, fmt.Errorf("relationship listing ended with error: %w", err)
	}

	return relationships, models.NewListMeta(total, filter.Pagination), nil
}

func (s *relationshipService) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContext(ctx)

	if err := s.repository.Delete(ctx, id); err != nil {
		log.Err(err).Str("func", "*relationshipService.Delete").Msg("relationship deletion ended with error")
		return fmt.Errorf("relationship deletion ended with error: %w", err)
	}

	s.recorder.Record(ctx, audit.Event{
		Action:     "delete",
		EntityType: "relationship",
		EntityID:   id.String(),
	})

	return nil
}
