package config

import (
	"strings"
	"time"
)

type Seeder struct {
	Days           int           `env:"SEED_DAYS" envDefault:"14"`
	MinDealsPerDay int           `env:"SEED_MIN_DEALS_PER_DAY" envDefault:"10"`
	AmountPerDeal  int64         `env:"SEED_AMOUNT_PER_DEAL" envDefault:"1000"`
	Tag            string        `env:"SEED_TAG" envDefault:"market-deals-seed"`
	ActorID        string        `env:"SEED_ACTOR_ID" envDefault:"system"`
	RunEvery       time.Duration `env:"SEED_RUN_EVERY" envDefault:"12h"`
	PriceScale     float64       `env:"SEED_PRICE_SCALE" envDefault:"1000"`
	CountAllDeals  bool          `env:"SEED_COUNT_ALL_DEALS" envDefault:"true"`
	Jitter         float64       `env:"SEED_JITTER" envDefault:"0.10"`

	// Comma-separated resource types excluded from seeding, e.g. "energy,G,X".
	Blacklist []string `env:"MARKET_SEED_BLACKLIST" envSeparator:","`

	ReadyAttempts int           `env:"SEED_READY_ATTEMPTS" envDefault:"60"`
	ReadyInterval time.Duration `env:"SEED_READY_INTERVAL" envDefault:"1s"`
}

// BlacklistSet returns the blacklist with entries trimmed and empties
// dropped, so "energy, G ,," behaves like ["energy","G"].
func (s Seeder) BlacklistSet() []string {
	result := make([]string, 0, len(s.Blacklist))

	for _, entry := range s.Blacklist {
		if trimmed := strings.TrimSpace(entry); trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
