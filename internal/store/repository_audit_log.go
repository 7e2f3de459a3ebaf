package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/tchaikit/ea-dashboard/internal/logger"
	"github.com/tchaikit/ea-dashboard/models"
)

// auditLogRepository is the PostgreSQL-backed implementation of
// [AuditLogRepository]. The table is append-only: no update or delete
// statement exists anywhere in this package.
type auditLogRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewAuditLogRepository(db *DB, logger *logger.Logger) AuditLogRepository {
	logger.Debug().Msg("creating audit log repository")
	return &auditLogRepository{
		db:     db,
		logger: logger,
	}
}

func (r *auditLogRepository) Create(ctx context.Context, entry models.AuditLog) (models.AuditLog, error) {
	log := logger.FromContext(ctx)

	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}

	// user_id is nullable: system-initiated events carry no user.
	userID := uuid.NullUUID{UUID: entry.UserID, Valid: entry.UserID != uuid.Nil}

	row := r.db.QueryRowContext(ctx, createAuditLog,
		entry.ID, userID, entry.Action, entry.EntityType, entry.EntityID,
		entry.Details, entry.IPAddress, entry.UserAgent)

	var created models.AuditLog
	var createdUserID uuid.NullUUID
	err := row.Scan(&created.ID, &createdUserID, &created.Action, &created.EntityType,
		&created.EntityID, &created.Details, &created.IPAddress, &created.UserAgent, &created.CreatedAt)
	created.UserID = createdUserID.UUID
	if err != nil {
		log.Err(err).Str("func", "*auditLogRepository.Create").Msg("error: scanning created audit log")
		return models.AuditLog{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// List returns the requested page of audit entries, newest first, with the
// acting user resolved to name and email where the account still exists.
func (r *auditLogRepository) List(ctx context.Context, filter models.AuditLogFilter) ([]models.ResolvedAuditLog, int64, error) {
	log := logger.FromContext(ctx)

	countQuery, countArgs, err := buildAuditLogCountQuery(filter)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int64
	if err = r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		log.Err(err).Str("func", "*auditLogRepository.List").Msg("error counting audit logs")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	listQuery, listArgs, err := buildAuditLogListQuery(filter)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, listQuery, listArgs...)
	if err != nil {
		log.Err(err).Str("func", "*auditLogRepository.List").Msg("error listing audit logs")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.ResolvedAuditLog, 0, filter.Limit)
	for rows.Next() {
		var entry models.ResolvedAuditLog
		var entryUserID uuid.NullUUID
		var userName, userEmail sql.NullString

		err = rows.Scan(&entry.ID, &entryUserID, &entry.Action, &entry.EntityType,
			&entry.EntityID, &entry.Details, &entry.IPAddress, &entry.UserAgent,
			&entry.CreatedAt, &userName, &userEmail)
		if err != nil {
			log.Err(err).Str("func", "*auditLogRepository.List").Msg("error scanning audit log row")
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		entry.UserID = entryUserID.UUID
		if userName.Valid || userEmail.Valid {
			entry.User = &models.AuditActor{Name: userName.String, Email: userEmail.String}
		}

		entries = append(entries, entry)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, total, nil
}
