package main

import (
	"context"
	"fmt"

	"github.com/Art-of-Technology/collab-sub012/internal/access"
	"github.com/Art-of-Technology/collab-sub012/internal/adapter"
	"github.com/Art-of-Technology/collab-sub012/internal/audit"
	"github.com/Art-of-Technology/collab-sub012/internal/config"
	"github.com/Art-of-Technology/collab-sub012/internal/crypto"
	"github.com/Art-of-Technology/collab-sub012/internal/handler"
	"github.com/Art-of-Technology/collab-sub012/internal/logger"
	"github.com/Art-of-Technology/collab-sub012/internal/metrics"
	"github.com/Art-of-Technology/collab-sub012/internal/server"
	"github.com/Art-of-Technology/collab-sub012/internal/service"
	"github.com/Art-of-Technology/collab-sub012/internal/store"
	"github.com/Art-of-Technology/collab-sub012/internal/utils"
	"github.com/Art-of-Technology/collab-sub012/internal/vault"
	"github.com/Art-of-Technology/collab-sub012/internal/workers"
	"github.com/Art-of-Technology/collab-sub012/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(build.Banner())

	log := logger.NewLogger("vault-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	log = log.WithLevel(cfg.App.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)

	secretVault := vault.NewVault(crypto.NewEngine(crypto.StaticSecretProvider(cfg.App.MasterSecret)))
	if !secretVault.Healthy() {
		log.Warn().Msg("master secret is missing or too short, secret notes are disabled")
	}

	var members access.MembershipLookup = storages.Members
	if cfg.Adapter.MembershipURL != "" {
		membershipAdapter, err := adapter.NewHTTPMembershipAdapter(cfg.Adapter, log)
		if err != nil {
			log.Fatal().Err(err).Msg("error creating membership adapter")
		}
		members = membershipAdapter
	}

	m := metrics.New()
	services, err := service.NewServices(service.Dependencies{
		Storages: storages,
		Decider:  access.NewEngine(members, log.WithComponent("access")),
		Vault:    secretVault,
		Auditor:  audit.NewLogger(storages.Audit, utils.NewUUIDGenerator(), log.WithComponent("audit")),
		IDs:      utils.NewUUIDGenerator(),
		Metrics:  m,
		Build:    build,
	}, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, m, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	bgWorkers := workers.NewWorkers(workers.NewAuditPruner(storages.Audit, cfg.Workers, log.WithComponent("audit-pruner")))
	bgWorkers.Run(ctx)

	srv.RunServer()

	cancel()
	bgWorkers.Wait()
}

