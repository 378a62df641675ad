package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	walletsession "hemotrace/contexts/identity-access/wallet-session"
	walletjwt "hemotrace/contexts/identity-access/wallet-session/adapters/jwt"
	walletmemory "hemotrace/contexts/identity-access/wallet-session/adapters/memory"
	walletmirror "hemotrace/contexts/identity-access/wallet-session/adapters/mirror"
	mosaicdashboard "hemotrace/contexts/supply-chain/mosaic-dashboard"
	mosaiccache "hemotrace/contexts/supply-chain/mosaic-dashboard/adapters/cache"
	mosaicmirror "hemotrace/contexts/supply-chain/mosaic-dashboard/adapters/mirror"
	mosaicports "hemotrace/contexts/supply-chain/mosaic-dashboard/ports"
	provenanceservice "hemotrace/contexts/supply-chain/provenance-service"
	"hemotrace/contexts/supply-chain/provenance-service/adapters/ledger"
	provenancemirror "hemotrace/contexts/supply-chain/provenance-service/adapters/mirror"
	postgresadapter "hemotrace/contexts/supply-chain/provenance-service/adapters/postgres"
	workerapp "hemotrace/contexts/supply-chain/provenance-service/application/workers"
	"hemotrace/internal/platform/config"
	"hemotrace/internal/platform/db"
	"hemotrace/internal/platform/httpserver"
	"hemotrace/internal/platform/messaging"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	logger   *slog.Logger
}

type WorkerApp struct {
	postgres     *db.Postgres
	kafka        *messaging.Kafka
	syncer       workerapp.MirrorSyncer
	relay        workerapp.EventRelay
	expiry       workerapp.ExpiryScanner
	pollInterval time.Duration
	logger       *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")
	if strings.TrimSpace(cfg.TopicID) == "" {
		return nil, errors.New("TOPIC_ID is required")
	}
	if strings.TrimSpace(cfg.LedgerSubmitURL) == "" {
		return nil, errors.New("LEDGER_SUBMIT_URL is required")
	}
	if strings.TrimSpace(cfg.SessionSecret) == "" {
		return nil, errors.New("SESSION_SECRET is required")
	}

	walletModule := walletsession.NewModule(walletsession.Dependencies{
		Directory: walletmirror.NewDirectory(cfg.MirrorBaseURL),
		Issuer:    walletjwt.NewIssuer(cfg.SessionSecret, cfg.SessionTTL),
		Clock:     walletmemory.SystemClock{},
		Logger:    logger,
	})

	provenanceModule := provenanceservice.NewModule(provenanceservice.Dependencies{
		Reader: provenancemirror.NewClient(cfg.MirrorBaseURL, cfg.TopicID, logger),
		Writer: ledger.NewClient(cfg.LedgerSubmitURL, cfg.TopicID, logger),
		Clock:  postgresadapter.SystemClock{},

		RequireAssignedHospital: cfg.RequireAssignedHospital,
		RejectDuplicateCreation: cfg.RejectDuplicateCreation,
		BatchLimit:              cfg.BatchLimit,
		Logger:                  logger,
	})

	// The dashboard reads from the Postgres cache when one is configured and
	// falls back to the live mirror otherwise.
	var pg *db.Postgres
	var mosaicSource mosaicports.EventSource
	if strings.TrimSpace(cfg.PostgresDSN) != "" {
		pg, err = db.Connect(cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		mosaicSource = mosaiccache.NewSource(pg.DB, logger)
	} else {
		mosaicSource = mosaicmirror.NewClient(cfg.MirrorBaseURL, cfg.TopicID, logger)
	}

	mosaicModule := mosaicdashboard.NewModule(mosaicdashboard.Dependencies{
		Source:   mosaicSource,
		GridRows: cfg.GridRows,
		GridCols: cfg.GridCols,
		Logger:   logger,
	})

	server := httpserver.New(walletModule, provenanceModule, mosaicModule, logger, normalizeAddr(cfg.HTTPPort))
	return &APIApp{
		server:   server,
		postgres: pg,
		logger:   logger,
	}, nil
}

func BuildWorker() (*WorkerApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "worker")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}
	if strings.TrimSpace(cfg.TopicID) == "" {
		return nil, errors.New("TOPIC_ID is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	repo := postgresadapter.NewRepository(pg.DB, logger)
	if err := repo.Migrate(context.Background()); err != nil {
		_ = pg.Close()
		return nil, err
	}

	kafka := messaging.NewKafka(cfg.KafkaBrokers, cfg.RelayTopic, logger)
	return &WorkerApp{
		postgres: pg,
		kafka:    kafka,
		syncer: workerapp.MirrorSyncer{
			Source: provenancemirror.NewClient(cfg.MirrorBaseURL, cfg.TopicID, logger),
			Cache:  repo,
			Logger: logger,
		},
		relay: workerapp.EventRelay{
			Cache:         repo,
			Publisher:     kafka,
			Clock:         postgresadapter.SystemClock{},
			IDGen:         postgresadapter.UUIDGenerator{},
			SourceService: cfg.ServiceName,
			Logger:        logger,
		},
		expiry: workerapp.ExpiryScanner{
			Cache:  repo,
			Clock:  postgresadapter.SystemClock{},
			Logger: logger,
		},
		pollInterval: cfg.SyncInterval,
		logger:       logger,
	}, nil
}

func (a *APIApp) Run(_ context.Context) error {
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return a.server.Start()
}

func (a *APIApp) Close() error {
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}

func (w *WorkerApp) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	w.logger.Info("worker app started",
		"event", "bootstrap_worker_started",
		"module", "internal/app/bootstrap",
		"layer", "platform",
		"poll_interval", w.pollInterval.String(),
	)

	for {
		if err := w.syncer.RunOnce(ctx); err != nil {
			return err
		}
		if err := w.relay.RunOnce(ctx); err != nil {
			return err
		}
		if err := w.expiry.RunOnce(ctx); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (w *WorkerApp) Close() error {
	var firstErr error
	if w.kafka != nil {
		firstErr = w.kafka.Close()
	}
	if w.postgres != nil {
		if err := w.postgres.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
