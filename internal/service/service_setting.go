package service

import (
	"context"
	"fmt"

	"github.com/tchaikit/ea-dashboard/internal/audit"
	"github.com/tchaikit/ea-dashboard/internal/logger"
	"github.com/tchaikit/ea-dashboard/internal/store"
	"github.com/tchaikit/ea-dashboard/models"
)

// settingService is the concrete implementation of [SettingService].
// Upsert is the canonical write path; Update touches existing keys only.
type settingService struct {
	repository store.SettingRepository
	recorder   audit.Recorder
	logger     *logger.Logger
}

func NewSettingService(repository store.SettingRepository, recorder audit.Recorder, logger *logger.Logger) SettingService {
	return &settingService{
		repository: repository,
		recorder:   recorder,
		logger:     logger,
	}
}

func (s *settingService) Upsert(ctx context.Context, upsert models.SettingUpsert) (models.Setting, error) {
	log := logger.FromContext(ctx)

	if upsert.Key == "" {
		return models.Setting{}, fmt.Errorf("%w: key is required", ErrInvalidDataProvided)
	}

	setting, err := s.repository.Upsert(ctx, upsert)
	if err != nil {
		log.Err(err).Str("func", "*settingService.Upsert").Str("key", upsert.Key).Msg("setting upsert ended with error")
		return models.Setting{}, fmt.Errorf("setting upsert ended with error: %w", err)
	}

	s.recorder.Record(ctx, audit.Event{
		Action:     "upsert",
		EntityType: "setting",
		EntityID:   setting.Key,
		Details:    setting.Value.WireString(),
	})

	return setting, nil
}

// BulkUpsert performs N independent upserts. There is no transaction across
// the batch: earlier upserts stay applied when a later one fails, and the
// batch as a whole reports the first failure.
func (s *settingService) BulkUpsert(ctx context.Context, upserts []models.SettingUpsert) ([]models.Setting, error) {
	if len(upserts) == 0 {
		return nil, fmt.Errorf("%w: empty settings batch", ErrInvalidDataProvided)
	}

	settings := make([]models.Setting, 0, len(upserts))
	for _, upsert := range upserts {
		setting, err := s.Upsert(ctx, upsert)
		if err != nil {
			return nil, err
		}
		settings = append(settings, setting)
	}

	return settings, nil
}

func (s *settingService) GetByKey(ctx context.Context, key string) (models.Setting, error) {
	return s.repository.GetByKey(ctx, key)
}

// GroupedByCategory returns every setting grouped into a category → settings
// map, each group sorted by key.
func (s *settingService) GroupedByCategory(ctx context.Context) (map[string][]models.Setting, error) {
	settings, err := s.repository.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting listing ended with error: %w", err)
	}

	grouped := make(map[string][]models.Setting)
	for _, setting := range settings {
		grouped[setting.Category] = append(grouped[setting.Category], setting)
	}

	return grouped, nil
}

func (s *settingService) ListByCategory(ctx context.Context, category string) ([]models.Setting, error) {
	return s.repository.ListByCategory(ctx, category)
}

func (s *settingService) Update(ctx context.Context, key string, update models.SettingUpdate) (models.Setting, error) {
	log := logger.FromContext(ctx)

	if update.Value == nil && update.Category == nil {
		return models.Setting{}, fmt.Errorf("%w: update carries no fields", ErrInvalidDataProvided)
	}

	updated, err := s.repository.Update(ctx, key, update)
	if err != nil {
		log.Err(err).Str("func", "*settingService.Update").Str("key", key).Msg("setting update ended with error")
		return models.Setting{}, fmt.Errorf("setting update ended with error: %w", err)
	}

	s.recorder.Record(ctx, audit.Event{
		Action:     "update",
		EntityType: "setting",
		EntityID:   updated.Key,
		Details:    updated.Value.WireString(),
	})

	return updated, nil
}

func (s *settingService) Delete(ctx context.Context, key string) error {
	log := logger.FromContext(ctx)

	if err := s.repository.Delete(ctx, key); err != nil {
		log.Err(err).Str("func", "*settingService.Delete").Str("key", key).Msg("setting deletion ended with error")
		return fmt.Errorf("setting deletion ended with error: %w", err)
	}

	s.recorder.Record(ctx, audit.Event{
		Action:     "delete",
		EntityType: "setting",
		EntityID:   key,
	})

	return nil
}
