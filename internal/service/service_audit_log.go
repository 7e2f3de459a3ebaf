package service

import (
	"context"
	"fmt"

	"github.com/tchaikit/ea-dashboard/internal/logger"
	"github.com/tchaikit/ea-dashboard/internal/store"
	"github.com/tchaikit/ea-dashboard/models"
)

const defaultAuditLogPageSize = 50

// auditLogService is the concrete implementation of [AuditLogService].
// It deliberately exposes no update or delete path: the trail is
// append-only.
type auditLogService struct {
	repository store.AuditLogRepository
	logger     *logger.Logger
}

func NewAuditLogService(repository store.AuditLogRepository, logger *logger.Logger) AuditLogService {
	return &auditLogService{
		repository: repository,
		logger:     logger,
	}
}

// Create appends an audit entry supplied by an external collaborator
// through the REST surface. Internal mutations go through audit.Recorder,
// which forwards to the same repository path.
func (s *auditLogService) Create(ctx context.Context, entry models.AuditLog) (models.AuditLog, error) {
	log := logger.FromContext(ctx)

	if entry.Action == "" {
		return models.AuditLog{}, fmt.Errorf("%w: action is required", ErrInvalidDataProvided)
	}
	if entry.EntityType == "" {
		return models.AuditLog{}, fmt.Errorf("%w: entityType is required", ErrInvalidDataProvided)
	}
	if entry.EntityID == "" {
		return models.AuditLog{}, fmt.Errorf("%w: entityId is required", ErrInvalidDataProvided)
	}

	created, err := s.repository.Create(ctx, entry)
	if err != nil {
		log.Err(err).Str("func", "*auditLogService.Create").Msg("audit log creation ended with error")
		return models.AuditLog{}, fmt.Errorf("audit log creation ended with error: %w", err)
	}

	return created, nil
}

// List applies the shared filter/pagination contract; entries come back
// newest first with the acting user resolved where it still exists.
func (s *auditLogService) List(ctx context.Context, filter models.AuditLogFilter) ([]models.ResolvedAuditLog, models.ListMeta, error) {
	filter.Normalize(defaultAuditLogPageSize)

	entries, total, err := s.repository.List(ctx, filter)
	if err != nil {
		return nil, models.ListMeta{}, fmt.Errorf("audit log listing ended with error: %w", err)
	}

	return entries, models.NewListMeta(total, filter.Pagination), nil
}
