package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/tchaikit/ea-dashboard/internal/logger"
	"github.com/tchaikit/ea-dashboard/models"
)

// relationshipRepository is the PostgreSQL-backed implementation of
// [RelationshipRepository]. Endpoints are weak references: list queries
// resolve them with LEFT JOINs and keep rows whose artefacts are gone.
type relationshipRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewRelationshipRepository(db *DB, logger *logger.Logger) RelationshipRepository {
	logger.Debug().Msg("creating relationship repository")
	return &relationshipRepository{
		db:     db,
		logger: logger,
	}
}

func (r *relationshipRepository) Create(ctx context.Context, rel models.Relationship) (models.Relationship, error) {
	log := logger.FromContext(ctx)

	if rel.ID == uuid.Nil {
		rel.ID = uuid.New()
	}

	row := r.db.QueryRowContext(ctx, createRelationship, rel.ID, rel.SourceID, rel.TargetID, rel.Type, rel.Label)

	var created models.Relationship
	if err := row.Scan(&created.ID, &created.SourceID, &created.TargetID, &created.Type, &created.Label, &created.CreatedAt); err != nil {
		log.Err(err).Str("func", "*relationshipRepository.Create").Msg("error: scanning created relationship")
		return models.Relationship{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// List returns the requested page of relationships newest first, with both
// endpoints resolved to their current artefact field values. A nil Source
// or Target marks a dangling reference.
func (r *relationshipRepository) List(ctx context.Context, filter models.RelationshipFilter) ([]models.ResolvedRelationship, int64, error) {
	log := logger.FromContext(ctx)

	countQuery, countArgs, err := buildRelationshipCountQuery(filter)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int64
	if err = r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		log.Err(err).Str("func", "*relationshipRepository.List").Msg("error counting relationships")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	listQuery, listArgs, err := buildRelationshipListQuery(filter)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, listQuery, listArgs...)
	if err != nil {
		log.Err(err).Str("func", "*relationshipRepository.List").Msg("error listing relationships")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	relationships := make([]models.ResolvedRelationship, 0, filter.Limit)
	for rows.Next() {
		resolved, scanErr := scanResolvedRelationship(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*relationshipRepository.List").Msg("error scanning relationship row")
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		relationships = append(relationships, resolved)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return relationships, total, nil
}

func (r *relationshipRepository) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteRelationship, id)
	if err != nil {
		log.Err(err).Str("func", "*relationshipRepository.Delete").Msg("error deleting relationship")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return ErrRelationshipNotFound
	}

	return nil
}

// nullableArtefact holds one LEFT JOINed artefact side of a relationship
// row. Every column is nullable because the join may not match.
type nullableArtefact struct {
	id             uuid.NullUUID
	name           sql.NullString
	nameTh         sql.NullString
	artefactType   sql.NullString
	description    sql.NullString
	owner          sql.NullString
	department     sql.NullString
	status         sql.NullString
	riskLevel      sql.NullString
	version        sql.NullString
	usageFrequency sql.NullString
	dependencies   sql.NullInt64
	dependents     sql.NullInt64
	createdAt      sql.NullTime
	updatedAt      sql.NullTime
}

func (n nullableArtefact) toArtefact() *models.Artefact {
	if !n.id.Valid {
		return nil
	}

	return &models.Artefact{
		ID:             n.id.UUID,
		Name:           n.name.String,
		NameTh:         n.nameTh.String,
		Type:           models.ArtefactType(n.artefactType.String),
		Description:    n.description.String,
		Owner:          n.owner.String,
		Department:     n.department.String,
		Status:         models.ArtefactStatus(n.status.String),
		RiskLevel:      models.RiskLevel(n.riskLevel.String),
		Version:        n.version.String,
		UsageFrequency: models.UsageFrequency(n.usageFrequency.String),
		Dependencies:   int(n.dependencies.Int64),
		Dependents:     int(n.dependents.Int64),
		CreatedAt:      n.createdAt.Time,
		UpdatedAt:      n.updatedAt.Time,
	}
}

func scanResolvedRelationship(rows *sql.Rows) (models.ResolvedRelationship, error) {
	var resolved models.ResolvedRelationship
	var source, target nullableArtefact

	err := rows.Scan(
		&resolved.ID, &resolved.SourceID, &resolved.TargetID, &resolved.Type, &resolved.Label, &resolved.CreatedAt,
		&source.id, &source.name, &source.nameTh, &source.artefactType, &source.description,
		&source.owner, &source.department, &source.status, &source.riskLevel, &source.version,
		&source.usageFrequency, &source.dependencies, &source.dependents, &source.createdAt, &source.updatedAt,
		&target.id, &target.name, &target.nameTh, &target.artefactType, &target.description,
		&target.owner, &target.department, &target.status, &target.riskLevel, &target.version,
		&target.usageFrequency, &target.dependencies, &target.dependents, &target.createdAt, &target.updatedAt,
	)
	if err != nil {
		return models.ResolvedRelationship{}, err
	}

	resolved.Source = source.toArtefact()
	resolved.Target = target.toArtefact()

	return resolved, nil
}
