package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/tchaikit/ea-dashboard/internal/logger"
	"github.com/tchaikit/ea-dashboard/models"
)

// settingRepository is the PostgreSQL-backed implementation of
// [SettingRepository]. Upsert relies on ON CONFLICT over the unique key
// index, which keeps the create-or-replace path atomic at the row level.
type settingRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewSettingRepository(db *DB, logger *logger.Logger) SettingRepository {
	logger.Debug().Msg("creating setting repository")
	return &settingRepository{
		db:     db,
		logger: logger,
	}
}

func scanSetting(row interface{ Scan(...any) error }, s *models.Setting) error {
	return row.Scan(&s.ID, &s.Key, &s.Value, &s.Category, &s.CreatedAt, &s.UpdatedAt)
}

// Upsert creates the key if absent, otherwise replaces its value and
// category in place. Exactly one row exists per key afterwards.
func (r *settingRepository) Upsert(ctx context.Context, upsert models.SettingUpsert) (models.Setting, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, upsertSetting, uuid.New(), upsert.Key, upsert.Value, upsert.Category)

	var setting models.Setting
	if err := scanSetting(row, &setting); err != nil {
		log.Err(err).Str("func", "*settingRepository.Upsert").Str("key", upsert.Key).Msg("error upserting setting")
		return models.Setting{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return setting, nil
}

func (r *settingRepository) GetByKey(ctx context.Context, key string) (models.Setting, error) {
	log := logger.FromContext(ctx)

	var found models.Setting
	row := r.db.QueryRowContext(ctx, findSettingByKey, key)
	if err := scanSetting(row, &found); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Setting{}, ErrSettingNotFound
		}

		log.Err(err).Str("func", "*settingRepository.GetByKey").Str("key", key).Msg("error: scanning setting")
		return models.Setting{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// ListAll returns every setting sorted by category then key, the order the
// dashboard settings page groups them in.
func (r *settingRepository) ListAll(ctx context.Context) ([]models.Setting, error) {
	return r.list(ctx, listSettings)
}

func (r *settingRepository) ListByCategory(ctx context.Context, category string) ([]models.Setting, error) {
	return r.list(ctx, listSettingsByCategory, category)
}

func (r *settingRepository) list(ctx context.Context, query string, args ...any) ([]models.Setting, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*settingRepository.list").Msg("error listing settings")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	settings := make([]models.Setting, 0)
	for rows.Next() {
		var setting models.Setting
		if err = scanSetting(rows, &setting); err != nil {
			log.Err(err).Str("func", "*settingRepository.list").Msg("error scanning setting row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		settings = append(settings, setting)
	}

	return settings, rows.Err()
}

// Update modifies an existing key only; [ErrSettingNotFound] when absent.
func (r *settingRepository) Update(ctx context.Context, key string, update models.SettingUpdate) (models.Setting, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSettingUpdateQuery(key, update)
	if err != nil {
		return models.Setting{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated models.Setting
	row := r.db.QueryRowContext(ctx, query, args...)
	if err = scanSetting(row, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Setting{}, ErrSettingNotFound
		}

		log.Err(err).Str("func", "*settingRepository.Update").Str("key", key).Msg("error updating setting")
		return models.Setting{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

// Delete removes a setting by key; deleting an absent key is reported as
// [ErrSettingNotFound], never as silent success.
func (r *settingRepository) Delete(ctx context.Context, key string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteSetting, key)
	if err != nil {
		log.Err(err).Str("func", "*settingRepository.Delete").Str("key", key).Msg("error deleting setting")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return ErrSettingNotFound
	}

	return nil
}
