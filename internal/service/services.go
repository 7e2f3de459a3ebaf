package service

import (
	"github.com/tchaikit/ea-dashboard/internal/audit"
	"github.com/tchaikit/ea-dashboard/internal/config"
	"github.com/tchaikit/ea-dashboard/internal/logger"
	"github.com/tchaikit/ea-dashboard/internal/store"
)

// Services bundles every service behind one constructor so the transport
// layer wires a single value.
type Services struct {
	ArtefactService     ArtefactService
	RelationshipService RelationshipService
	UserService         UserService
	SettingService      SettingService
	AuditLogService     AuditLogService
	AuthService         AuthService
}

func NewServices(storages *store.Storages, recorder audit.Recorder, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		ArtefactService:     NewArtefactService(storages.ArtefactRepository, recorder, logger),
		RelationshipService: NewRelationshipService(storages.RelationshipRepository, storages.ArtefactRepository, recorder, logger),
		UserService:         NewUserService(storages.UserRepository, recorder, logger),
		SettingService:      NewSettingService(storages.SettingRepository, recorder, logger),
		AuditLogService:     NewAuditLogService(storages.AuditLogRepository, logger),
		AuthService:         NewAuthService(storages.UserRepository, cfg, logger),
	}
}
