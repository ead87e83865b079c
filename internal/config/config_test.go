package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"market_seeder/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	rq := require.New(t)

	t.Setenv("PG_DSN", "postgres://localhost:5432/screeps")

	cfg, err := config.Load()
	rq.NoError(err)

	rq.Equal(14, cfg.Seeder.Days)
	rq.Equal(10, cfg.Seeder.MinDealsPerDay)
	rq.Equal(int64(1000), cfg.Seeder.AmountPerDeal)
	rq.Equal("market-deals-seed", cfg.Seeder.Tag)
	rq.Equal("system", cfg.Seeder.ActorID)
	rq.Equal(12*time.Hour, cfg.Seeder.RunEvery)
	rq.Equal(float64(1000), cfg.Seeder.PriceScale)
	rq.True(cfg.Seeder.CountAllDeals)
	rq.Equal(0.10, cfg.Seeder.Jitter)
	rq.Empty(cfg.Seeder.BlacklistSet())
	rq.Equal(60, cfg.Seeder.ReadyAttempts)
	rq.Equal(time.Second, cfg.Seeder.ReadyInterval)

	rq.Equal("market-seeder", cfg.App.Name)
	rq.Equal(":8091", cfg.App.ProbeListenAddress)
	rq.Equal(":8092", cfg.App.MetricsListenAddress)

	rq.Equal(5, cfg.Postgres.MaxOpenConns)
	rq.Equal(5*time.Minute, cfg.Postgres.ConnMaxLifetime)
}

func TestLoadOverrides(t *testing.T) {
	rq := require.New(t)

	t.Setenv("PG_DSN", "postgres://localhost:5432/screeps")
	t.Setenv("SEED_DAYS", "7")
	t.Setenv("SEED_MIN_DEALS_PER_DAY", "25")
	t.Setenv("SEED_RUN_EVERY", "30m")
	t.Setenv("SEED_COUNT_ALL_DEALS", "false")
	t.Setenv("MARKET_SEED_BLACKLIST", "energy, G ,,X")

	cfg, err := config.Load()
	rq.NoError(err)

	rq.Equal(7, cfg.Seeder.Days)
	rq.Equal(25, cfg.Seeder.MinDealsPerDay)
	rq.Equal(30*time.Minute, cfg.Seeder.RunEvery)
	rq.False(cfg.Seeder.CountAllDeals)
	rq.Equal([]string{"energy", "G", "X"}, cfg.Seeder.BlacklistSet())
}

func TestLoadRequiresDSN(t *testing.T) {
	rq := require.New(t)

	t.Setenv("PG_DSN", "")

	_, err := config.Load()
	rq.Error(err)
}
