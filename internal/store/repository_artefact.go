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

// artefactRepository is the PostgreSQL-backed implementation of
// [ArtefactRepository]. It covers catalog CRUD, the filtered/paginated list
// queries and the dashboard aggregation.
type artefactRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewArtefactRepository(db *DB, logger *logger.Logger) ArtefactRepository {
	logger.Debug().Msg("creating artefact repository")
	return &artefactRepository{
		db:     db,
		logger: logger,
	}
}

func scanArtefact(row interface{ Scan(...any) error }, a *models.Artefact) error {
	return row.Scan(&a.ID, &a.Name, &a.NameTh, &a.Type, &a.Description, &a.Owner,
		&a.Department, &a.Status, &a.RiskLevel, &a.Version, &a.UsageFrequency,
		&a.Dependencies, &a.Dependents, &a.CreatedAt, &a.UpdatedAt)
}

// Create persists a new artefact and returns the canonical database
// representation with server-assigned fields (ID, CreatedAt, UpdatedAt).
func (r *artefactRepository) Create(ctx context.Context, artefact models.Artefact) (models.Artefact, error) {
	log := logger.FromContext(ctx)

	if artefact.ID == uuid.Nil {
		artefact.ID = uuid.New()
	}

	row := r.db.QueryRowContext(ctx, createArtefact,
		artefact.ID, artefact.Name, artefact.NameTh, artefact.Type, artefact.Description,
		artefact.Owner, artefact.Department, artefact.Status, artefact.RiskLevel,
		artefact.Version, artefact.UsageFrequency, artefact.Dependencies, artefact.Dependents)

	var created models.Artefact
	if err := scanArtefact(row, &created); err != nil {
		log.Err(err).Str("func", "*artefactRepository.Create").Msg("error: scanning created artefact")
		return models.Artefact{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

func (r *artefactRepository) GetByID(ctx context.Context, id uuid.UUID) (models.Artefact, error) {
	log := logger.FromContext(ctx)

	var found models.Artefact
	row := r.db.QueryRowContext(ctx, findArtefactByID, id)
	if err := scanArtefact(row, &found); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Artefact{}, ErrArtefactNotFound
		}

		log.Err(err).Str("func", "*artefactRepository.GetByID").Msg("error: scanning artefact")
		return models.Artefact{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// List returns the requested page of artefacts matching the filter plus the
// full filtered count. An out-of-range page yields an empty slice, not an
// error.
func (r *artefactRepository) List(ctx context.Context, filter models.ArtefactFilter) ([]models.Artefact, int64, error) {
	log := logger.FromContext(ctx)

	countQuery, countArgs, err := buildArtefactCountQuery(filter)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int64
	if err = r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		log.Err(err).Str("func", "*artefactRepository.List").Msg("error counting artefacts")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	listQuery, listArgs, err := buildArtefactListQuery(filter)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, listQuery, listArgs...)
	if err != nil {
		log.Err(err).Str("func", "*artefactRepository.List").Msg("error listing artefacts")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	artefacts := make([]models.Artefact, 0, filter.Limit)
	for rows.Next() {
		var artefact models.Artefact
		if err = scanArtefact(rows, &artefact); err != nil {
			log.Err(err).Str("func", "*artefactRepository.List").Msg("error scanning artefact row")
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		artefacts = append(artefacts, artefact)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return artefacts, total, nil
}

// Update applies a partial merge: only the fields present in update are
// written. Returns [ErrArtefactNotFound] when the id does not exist.
func (r *artefactRepository) Update(ctx context.Context, id uuid.UUID, update models.ArtefactUpdate) (models.Artefact, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildArtefactUpdateQuery(id, update)
	if err != nil {
		return models.Artefact{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated models.Artefact
	row := r.db.QueryRowContext(ctx, query, args...)
	if err = scanArtefact(row, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Artefact{}, ErrArtefactNotFound
		}

		log.Err(err).Str("func", "*artefactRepository.Update").Msg("error scanning updated artefact")
		return models.Artefact{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

// Delete removes an artefact by id. Relationships referencing it are left
// in place; their read path tolerates the dangling reference.
func (r *artefactRepository) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteArtefact, id)
	if err != nil {
		log.Err(err).Str("func", "*artefactRepository.Delete").Msg("error deleting artefact")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return ErrArtefactNotFound
	}

	return nil
}

func (r *artefactRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	if err := r.db.QueryRowContext(ctx, artefactExists, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return exists, nil
}

// Stats computes the dashboard aggregation: the total count plus per-type,
// per-risk and per-status breakdowns. Groups with zero artefacts are absent
// from the result because GROUP BY only yields populated groups.
func (r *artefactRepository) Stats(ctx context.Context) (models.ArtefactStats, error) {
	log := logger.FromContext(ctx)

	var stats models.ArtefactStats
	if err := r.db.QueryRowContext(ctx, countArtefacts).Scan(&stats.Total); err != nil {
		log.Err(err).Str("func", "*artefactRepository.Stats").Msg("error counting artefacts")
		return models.ArtefactStats{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err := r.groupCount(ctx, "type", func(key string, count int64) {
		stats.ByType = append(stats.ByType, models.TypeCount{Type: models.ArtefactType(key), Count: count})
	}); err != nil {
		return models.ArtefactStats{}, err
	}

	if err := r.groupCount(ctx, "risk_level", func(key string, count int64) {
		stats.ByRisk = append(stats.ByRisk, models.RiskCount{RiskLevel: models.RiskLevel(key), Count: count})
	}); err != nil {
		return models.ArtefactStats{}, err
	}

	if err := r.groupCount(ctx, "status", func(key string, count int64) {
		stats.ByStatus = append(stats.ByStatus, models.StatusCount{Status: models.ArtefactStatus(key), Count: count})
	}); err != nil {
		return models.ArtefactStats{}, err
	}

	return stats, nil
}

func (r *artefactRepository) groupCount(ctx context.Context, column string, collect func(key string, count int64)) error {
	log := logger.FromContext(ctx)

	query, args, err := buildArtefactGroupCountQuery(column)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*artefactRepository.groupCount").Str("column", column).Msg("error querying group counts")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var key string
		var count int64
		if err = rows.Scan(&key, &count); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		collect(key, count)
	}

	return rows.Err()
}
