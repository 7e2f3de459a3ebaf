package store

import (
	"github.com/tchaikit/ea-dashboard/internal/logger"
)

// Storages bundles every repository behind one constructor so the
// application wires a single value.
type Storages struct {
	ArtefactRepository     ArtefactRepository
	RelationshipRepository RelationshipRepository
	UserRepository         UserRepository
	SettingRepository      SettingRepository
	AuditLogRepository     AuditLogRepository
}

func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		ArtefactRepository:     NewArtefactRepository(db, log),
		RelationshipRepository: NewRelationshipRepository(db, log),
		UserRepository:         NewUserRepository(db, log),
		SettingRepository:      NewSettingRepository(db, log),
		AuditLogRepository:     NewAuditLogRepository(db, log),
	}
}
