package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/tchaikit/ea-dashboard/models"
)

// psql builds parameterised queries with PostgreSQL-style $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	createArtefact = `INSERT INTO artefacts (id, name, name_th, type, description, owner, department, status, risk_level, version, usage_frequency, dependencies, dependents)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	RETURNING id, name, name_th, type, description, owner, department, status, risk_level, version, usage_frequency, dependencies, dependents, created_at, updated_at;`

	findArtefactByID = `SELECT id, name, name_th, type, description, owner, department, status, risk_level, version, usage_frequency, dependencies, dependents, created_at, updated_at
	FROM artefacts
	WHERE id = $1;`

	deleteArtefact = `DELETE FROM artefacts WHERE id = $1;`

	artefactExists = `SELECT EXISTS (SELECT 1 FROM artefacts WHERE id = $1);`

	countArtefacts = `SELECT COUNT(*) FROM artefacts;`

	createRelationship = `INSERT INTO relationships (id, source_id, target_id, type, label)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING id, source_id, target_id, type, label, created_at;`

	deleteRelationship = `DELETE FROM relationships WHERE id = $1;`

	createUser = `INSERT INTO users (id, email, password_hash, name, role, avatar, is_active)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING id, email, password_hash, name, role, avatar, is_active, created_at, updated_at;`

	findUserByID = `SELECT id, email, password_hash, name, role, avatar, is_active, created_at, updated_at
	FROM users
	WHERE id = $1;`

	findUserByEmail = `SELECT id, email, password_hash, name, role, avatar, is_active, created_at, updated_at
	FROM users
	WHERE email = $1;`

	listUsers = `SELECT id, email, password_hash, name, role, avatar, is_active, created_at, updated_at
	FROM users
	ORDER BY created_at DESC;`

	deleteUser = `DELETE FROM users WHERE id = $1;`

	upsertSetting = `INSERT INTO settings (id, key, value, category)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, category = EXCLUDED.category, updated_at = NOW()
	RETURNING id, key, value, category, created_at, updated_at;`

	findSettingByKey = `SELECT id, key, value, category, created_at, updated_at
	FROM settings
	WHERE key = $1;`

	listSettings = `SELECT id, key, value, category, created_at, updated_at
	FROM settings
	ORDER BY category, key;`

	listSettingsByCategory = `SELECT id, key, value, category, created_at, updated_at
	FROM settings
	WHERE category = $1
	ORDER BY key;`

	deleteSetting = `DELETE FROM settings WHERE key = $1;`

	createAuditLog = `INSERT INTO audit_logs (id, user_id, action, entity_type, entity_id, details, ip_address, user_agent)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	RETURNING id, user_id, action, entity_type, entity_id, details, ip_address, user_agent, created_at;`
)

// artefactConditions translates the provided filter fields into ANDed
// predicates. Absent fields impose no constraint; Search matches name,
// name_th, description and owner as a case-insensitive substring.
func artefactConditions(filter models.ArtefactFilter) []sq.Sqlizer {
	conditions := make([]sq.Sqlizer, 0, 5)

	if filter.Type != "" {
		conditions = append(conditions, sq.Eq{"type": filter.Type})
	}
	if filter.Status != "" {
		conditions = append(conditions, sq.Eq{"status": filter.Status})
	}
	if filter.RiskLevel != "" {
		conditions = append(conditions, sq.Eq{"risk_level": filter.RiskLevel})
	}
	if filter.Department != "" {
		conditions = append(conditions, sq.Eq{"department": filter.Department})
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		conditions = append(conditions, sq.Or{
			sq.ILike{"name": pattern},
			sq.ILike{"name_th": pattern},
			sq.ILike{"description": pattern},
			sq.ILike{"owner": pattern},
		})
	}

	return conditions
}

// buildArtefactListQuery builds the paginated list query for artefacts,
// sorted by most recent update first.
func buildArtefactListQuery(filter models.ArtefactFilter) (string, []any, error) {
	builder := psql.
		Select("id", "name", "name_th", "type", "description", "owner", "department",
			"status", "risk_level", "version", "usage_frequency",
			"dependencies", "dependents", "created_at", "updated_at").
		From("artefacts")

	for _, condition := range artefactConditions(filter) {
		builder = builder.Where(condition)
	}

	return builder.
		OrderBy("updated_at DESC").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset())).
		ToSql()
}

// buildArtefactCountQuery builds the companion COUNT(*) query carrying the
// same predicates but no pagination.
func buildArtefactCountQuery(filter models.ArtefactFilter) (string, []any, error) {
	builder := psql.Select("COUNT(*)").From("artefacts")

	for _, condition := range artefactConditions(filter) {
		builder = builder.Where(condition)
	}

	return builder.ToSql()
}

// buildArtefactGroupCountQuery builds a GROUP BY breakdown over the given
// column, ordered by count descending then key for a deterministic result.
func buildArtefactGroupCountQuery(column string) (string, []any, error) {
	return psql.
		Select(column, "COUNT(*) AS count").
		From("artefacts").
		GroupBy(column).
		OrderBy("count DESC", column).
		ToSql()
}

func relationshipConditions(filter models.RelationshipFilter) []sq.Sqlizer {
	conditions := make([]sq.Sqlizer, 0, 3)

	if filter.SourceID != uuid.Nil {
		conditions = append(conditions, sq.Eq{"r.source_id": filter.SourceID})
	}
	if filter.TargetID != uuid.Nil {
		conditions = append(conditions, sq.Eq{"r.target_id": filter.TargetID})
	}
	if filter.Type != "" {
		conditions = append(conditions, sq.Eq{"r.type": filter.Type})
	}

	return conditions
}

// buildRelationshipListQuery lists relationships newest first with both
// endpoints resolved through LEFT JOINs so dangling references do not fault
// the read path.
func buildRelationshipListQuery(filter models.RelationshipFilter) (string, []any, error) {
	builder := psql.
		Select("r.id", "r.source_id", "r.target_id", "r.type", "r.label", "r.created_at",
			"s.id", "s.name", "s.name_th", "s.type", "s.description", "s.owner", "s.department",
			"s.status", "s.risk_level", "s.version", "s.usage_frequency",
			"s.dependencies", "s.dependents", "s.created_at", "s.updated_at",
			"t.id", "t.name", "t.name_th", "t.type", "t.description", "t.owner", "t.department",
			"t.status", "t.risk_level", "t.version", "t.usage_frequency",
			"t.dependencies", "t.dependents", "t.created_at", "t.updated_at").
		From("relationships r").
		LeftJoin("artefacts s ON s.id = r.source_id").
		LeftJoin("artefacts t ON t.id = r.target_id")

	for _, condition := range relationshipConditions(filter) {
		builder = builder.Where(condition)
	}

	return builder.
		OrderBy("r.created_at DESC").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset())).
		ToSql()
}

func buildRelationshipCountQuery(filter models.RelationshipFilter) (string, []any, error) {
	builder := psql.Select("COUNT(*)").From("relationships r")

	for _, condition := range relationshipConditions(filter) {
		builder = builder.Where(condition)
	}

	return builder.ToSql()
}

// auditLogConditions translates the audit log filter: exact user/entity-type
// matches, case-insensitive substring on action, and an inclusive creation
// date range that is open-ended when only one bound is present.
func auditLogConditions(filter models.AuditLogFilter) []sq.Sqlizer {
	conditions := make([]sq.Sqlizer, 0, 5)

	if filter.UserID != uuid.Nil {
		conditions = append(conditions, sq.Eq{"l.user_id": filter.UserID})
	}
	if filter.Action != "" {
		conditions = append(conditions, sq.ILike{"l.action": "%" + filter.Action + "%"})
	}
	if filter.EntityType != "" {
		conditions = append(conditions, sq.Eq{"l.entity_type": filter.EntityType})
	}
	if filter.StartDate != nil {
		conditions = append(conditions, sq.GtOrEq{"l.created_at": *filter.StartDate})
	}
	if filter.EndDate != nil {
		conditions = append(conditions, sq.LtOrEq{"l.created_at": *filter.EndDate})
	}

	return conditions
}

// buildAuditLogListQuery lists audit entries newest first with the acting
// user resolved to name and email when the account still exists.
func buildAuditLogListQuery(filter models.AuditLogFilter) (string, []any, error) {
	builder := psql.
		Select("l.id", "l.user_id", "l.action", "l.entity_type", "l.entity_id",
			"l.details", "l.ip_address", "l.user_agent", "l.created_at",
			"u.name", "u.email").
		From("audit_logs l").
		LeftJoin("users u ON u.id = l.user_id")

	for _, condition := range auditLogConditions(filter) {
		builder = builder.Where(condition)
	}

	return builder.
		OrderBy("l.created_at DESC").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset())).
		ToSql()
}

func buildAuditLogCountQuery(filter models.AuditLogFilter) (string, []any, error) {
	builder := psql.Select("COUNT(*)").From("audit_logs l")

	for _, condition := range auditLogConditions(filter) {
		builder = builder.Where(condition)
	}

	return builder.ToSql()
}

// buildArtefactUpdateQuery dynamically builds the partial UPDATE for an
// artefact: only non-nil fields are written, updated_at always advances.
func buildArtefactUpdateQuery(id any, update models.ArtefactUpdate) (string, []any, error) {
	builder := psql.
		Update("artefacts").
		Set("updated_at", sq.Expr("NOW()"))

	if update.Name != nil {
		builder = builder.Set("name", *update.Name)
	}
	if update.NameTh != nil {
		builder = builder.Set("name_th", *update.NameTh)
	}
	if update.Type != nil {
		builder = builder.Set("type", *update.Type)
	}
	if update.Description != nil {
		builder = builder.Set("description", *update.Description)
	}
	if update.Owner != nil {
		builder = builder.Set("owner", *update.Owner)
	}
	if update.Department != nil {
		builder = builder.Set("department", *update.Department)
	}
	if update.Status != nil {
		builder = builder.Set("status", *update.Status)
	}
	if update.RiskLevel != nil {
		builder = builder.Set("risk_level", *update.RiskLevel)
	}
	if update.Version != nil {
		builder = builder.Set("version", *update.Version)
	}
	if update.UsageFrequency != nil {
		builder = builder.Set("usage_frequency", *update.UsageFrequency)
	}
	if update.Dependencies != nil {
		builder = builder.Set("dependencies", *update.Dependencies)
	}
	if update.Dependents != nil {
		builder = builder.Set("dependents", *update.Dependents)
	}

	return builder.
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, name, name_th, type, description, owner, department, status, risk_level, version, usage_frequency, dependencies, dependents, created_at, updated_at").
		ToSql()
}

// buildUserUpdateQuery dynamically builds the partial UPDATE for a user.
// The password hash is passed separately because the service layer hashes
// the plaintext before it ever reaches the store.
func buildUserUpdateQuery(id any, update models.UserUpdate, passwordHash *string) (string, []any, error) {
	builder := psql.
		Update("users").
		Set("updated_at", sq.Expr("NOW()"))

	if update.Email != nil {
		builder = builder.Set("email", *update.Email)
	}
	if passwordHash != nil {
		builder = builder.Set("password_hash", *passwordHash)
	}
	if update.Name != nil {
		builder = builder.Set("name", *update.Name)
	}
	if update.Role != nil {
		builder = builder.Set("role", *update.Role)
	}
	if update.Avatar != nil {
		builder = builder.Set("avatar", *update.Avatar)
	}
	if update.IsActive != nil {
		builder = builder.Set("is_active", *update.IsActive)
	}

	return builder.
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, email, password_hash, name, role, avatar, is_active, created_at, updated_at").
		ToSql()
}

// buildSettingUpdateQuery dynamically builds the partial UPDATE for a
// setting, keyed by the unique setting key. Unlike upsert it never inserts.
func buildSettingUpdateQuery(key string, update models.SettingUpdate) (string, []any, error) {
	builder := psql.
		Update("settings").
		Set("updated_at", sq.Expr("NOW()"))

	if update.Value != nil {
		builder = builder.Set("value", *update.Value)
	}
	if update.Category != nil {
		builder = builder.Set("category", *update.Category)
	}

	return builder.
		Where(sq.Eq{"key": key}).
		Suffix("RETURNING id, key, value, category, created_at, updated_at").
		ToSql()
}
