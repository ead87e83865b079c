package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"market_seeder/internal/config"
	"market_seeder/internal/domain/service/pricing"
	"market_seeder/internal/domain/service/seeding"
	"market_seeder/internal/infrastructure/persistence"
	"market_seeder/internal/observability"
	"market_seeder/internal/worker"
	"market_seeder/pkg/application/connectors"
	"market_seeder/pkg/application/modules"
	"market_seeder/pkg/contextx"
)

// Run wires the seeder into its host surroundings: config, postgres, the
// seeding worker, and the probe/metrics sidecars. It blocks until the
// context is cancelled.
func Run(ctx context.Context, log *slog.Logger) error {
	ctx = contextx.WithLogger(ctx, log)

	// 1. Config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config load: %w", err)
	}

	// 2. Database
	pg := &connectors.Postgres{
		DSN:             cfg.Postgres.DSN,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
	}
	db := pg.Client(ctx)
	defer pg.Close(ctx)

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("db ping: %w", err)
	}
	log.Info("database connection OK")

	// 3. Repositories
	orderRepo := persistence.NewOrderRepository(db)
	dealRepo := persistence.NewDealRepository(db)
	prober := persistence.NewSchemaProber(db)

	// 4. Services
	priceSvc := pricing.NewService(orderRepo)
	seedSvc := seeding.NewService(dealRepo, priceSvc, seeding.Config{
		Days:           cfg.Seeder.Days,
		MinDealsPerDay: cfg.Seeder.MinDealsPerDay,
		AmountPerDeal:  cfg.Seeder.AmountPerDeal,
		Tag:            cfg.Seeder.Tag,
		ActorID:        cfg.Seeder.ActorID,
		PriceScale:     cfg.Seeder.PriceScale,
		CountAllDeals:  cfg.Seeder.CountAllDeals,
		Blacklist:      cfg.Seeder.BlacklistSet(),
		Jitter:         cfg.Seeder.Jitter,
	})

	// 5. Worker
	gate := worker.NewReadinessGate(prober, cfg.Seeder.ReadyAttempts, cfg.Seeder.ReadyInterval)
	seeder := worker.NewSeeder(seedSvc, gate, cfg.Seeder.RunEvery).
		WithMetrics(observability.NewMetrics(prometheus.DefaultRegisterer))

	g, ctx := errgroup.WithContext(ctx)

	modules.ProbeServer{
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		ListenAddress: cfg.App.ProbeListenAddress,
	}.Run(ctx, g)

	modules.MetricServer{
		ListenAddress: cfg.App.MetricsListenAddress,
	}.Run(ctx, g)

	g.Go(func() error {
		// A gate give-up disables seeding for this process lifetime but must
		// not take the host down; the sidecar servers keep serving.
		if err := seeder.Run(ctx); err != nil {
			if errors.Is(err, worker.ErrGivenUp) {
				log.Error("seeding disabled for this process lifetime", "error", err)
				return nil
			}
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return fmt.Errorf("seeder.Run: %w", err)
		}
		return nil
	})

	log.Info("application started",
		"name", cfg.App.Name,
		"version", cfg.App.Version,
	)

	if err := g.Wait(); err != nil {
		return fmt.Errorf("g.Wait: %w", err)
	}

	return nil
}
