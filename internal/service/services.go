package service

import (
	"github.com/Art-of-Technology/collab-sub012/internal/audit"
	"github.com/Art-of-Technology/collab-sub012/internal/config"
	"github.com/Art-of-Technology/collab-sub012/internal/logger"
	"github.com/Art-of-Technology/collab-sub012/internal/metrics"
	"github.com/Art-of-Technology/collab-sub012/internal/store"
	"github.com/Art-of-Technology/collab-sub012/internal/vault"
	"github.com/Art-of-Technology/collab-sub012/models"
)

// Dependencies are the collaborators shared by the services.
type Dependencies struct {
	Storages *store.Storages
	Decider  AccessDecider
	Vault    SecretVault
	Auditor  AuditLogger
	IDs      audit.IDGenerator
	Metrics  *metrics.Metrics
	Build    models.AppBuildInfo
}

type Services struct {
	AuthService       AuthService
	AppInfoService    AppInfoService
	SecretNoteService SecretNoteService
}

func NewServices(deps Dependencies, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, deps.Build, logger)
	if err != nil {
		return nil, err
	}

	noteTypes := vault.NewNoteTypes(cfg.App.SecretNoteTypes)
	secretNoteService := NewSecretNoteValidationService().Wrap(NewSecretNoteService(deps, noteTypes, logger))

	return &Services{
		AuthService:       NewAuthService(cfg.App, logger),
		AppInfoService:    appInfoService,
		SecretNoteService: secretNoteService,
	}, nil
}
