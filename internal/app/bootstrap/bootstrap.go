package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	brandservice "adx402/contexts/exchange/brand-service"
	brandpostgres "adx402/contexts/exchange/brand-service/adapters/postgres"
	publisherservice "adx402/contexts/exchange/publisher-service"
	publisherpostgres "adx402/contexts/exchange/publisher-service/adapters/postgres"
	settlementservice "adx402/contexts/finance/settlement-service"
	settlementpostgres "adx402/contexts/finance/settlement-service/adapters/postgres"
	moderationservice "adx402/contexts/moderation/moderation-service"
	moderationpostgres "adx402/contexts/moderation/moderation-service/adapters/postgres"
	"adx402/contexts/moderation/moderation-service/adapters/vision"
	"adx402/internal/platform/config"
	"adx402/internal/platform/db"
	"adx402/internal/platform/httpserver"
	"adx402/internal/platform/objectstore"
	"adx402/internal/platform/payment"

	"github.com/robfig/cron/v3"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	logger   *slog.Logger
}

type WorkerApp struct {
	postgres *db.Postgres
	cron     *cron.Cron
	spec     string
	sweep    func(ctx context.Context) error
	logger   *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}
	if strings.TrimSpace(cfg.MasterWallet) == "" {
		return nil, errors.New("MASTER_WALLET is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	publisherRepo := publisherpostgres.NewRepository(pg.DB, logger)
	publisherModule := publisherservice.NewModule(publisherservice.Dependencies{
		Publishers:  publisherRepo,
		Slots:       publisherRepo,
		Catalog:     publisherRepo,
		Impressions: publisherRepo,
		Clock:       publisherpostgres.SystemClock{},
		IDGenerator: publisherpostgres.UUIDGenerator{},
		Logger:      logger,
	})

	creatives := objectstore.New(cfg.CreativeBaseURL, logger)
	brandRepo := brandpostgres.NewRepository(pg.DB, logger)
	brandModule := brandservice.NewModule(brandservice.Dependencies{
		Brands:      brandRepo,
		Ads:         brandRepo,
		Creatives:   creatives,
		Clock:       brandpostgres.SystemClock{},
		IDGenerator: brandpostgres.UUIDGenerator{},
		Logger:      logger,
	})

	settlementRepo := settlementpostgres.NewRepository(pg.DB, logger)
	settlementModule := settlementservice.NewModule(settlementservice.Dependencies{
		Settlements: settlementRepo,
		Activity:    settlementRepo,
		Clock:       settlementpostgres.SystemClock{},
		IDGenerator: settlementpostgres.UUIDGenerator{},
		Logger:      logger,
	})

	gate := payment.Gate{
		PayTo:    cfg.MasterWallet,
		Network:  cfg.PaymentNetwork,
		Quote:    quoteFromBrandModule(brandModule),
		Verifier: payment.DevVerifier{},
		Logger:   logger,
	}

	server := httpserver.New(
		publisherModule,
		brandModule,
		settlementModule,
		gate,
		creatives,
		logger,
		normalizeAddr(cfg.HTTPPort),
	)
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

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	moderationRepo := moderationpostgres.NewRepository(pg.DB, logger)
	oracle := vision.NewClient(cfg.VisionEndpoint, cfg.VisionAPIKey)
	moderationModule := moderationservice.NewModule(moderationservice.Dependencies{
		Ads:       moderationRepo,
		Oracle:    oracle,
		BatchSize: cfg.ModerationBatchSize,
		Logger:    logger,
	})

	return &WorkerApp{
		postgres: pg,
		cron:     cron.New(),
		spec:     cfg.ModerationCron,
		sweep:    moderationModule.Sweep.RunOnce,
		logger:   logger,
	}, nil
}

// quoteFromBrandModule bridges the brand-service quote use case to the
// platform gate without the context importing platform code.
func quoteFromBrandModule(module brandservice.Module) payment.ActionHandler {
	return func(ctx context.Context, walletAddress string) (payment.Quote, error) {
		quote, err := module.Handler.QuoteUploadPriceHandler(ctx, walletAddress)
		if err != nil {
			return payment.Quote{}, err
		}
		return payment.Quote{
			Price:       quote.Price,
			Description: quote.Description,
		}, nil
	}
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
	_, err := w.cron.AddFunc(w.spec, func() {
		_ = w.sweep(ctx)
	})
	if err != nil {
		return err
	}

	w.cron.Start()
	w.logger.Info("worker app started",
		"event", "bootstrap_worker_started",
		"module", "internal/app/bootstrap",
		"layer", "platform",
		"cron", w.spec,
	)

	<-ctx.Done()
	stopped := w.cron.Stop()
	<-stopped.Done()
	return nil
}

func (w *WorkerApp) Close() error {
	if w.postgres != nil {
		return w.postgres.Close()
	}
	return nil
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
