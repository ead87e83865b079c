package seeding

import (
	"context"
	"math/rand"
	"time"

	"github.com/samber/lo"

	"market_seeder/internal/domain"
	"market_seeder/internal/domain/entity"
	"market_seeder/internal/domain/value"
	"market_seeder/pkg/contextx"
	"market_seeder/pkg/errcodes"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// DealRepository is the slice of the money-log collection the seeder needs.
// An empty seededBy counts every deal in the window; a non-empty value
// restricts the count to records carrying that provenance tag.
type DealRepository interface {
	CountInWindow(ctx context.Context, resourceType string, window value.DayWindow, seededBy string) (int, error)
	Insert(ctx context.Context, deal *entity.Deal) error
}

// PriceSource produces the per-resource-type average price table.
type PriceSource interface {
	AveragePrices(ctx context.Context) map[string]float64
}

// Config holds the knobs of one seeding campaign. The zero value is not
// usable; NewService fills unset fields with the stock defaults.
type Config struct {
	Days           int      // trailing window length in calendar days
	MinDealsPerDay int      // floor each day window is topped up to
	AmountPerDeal  int64    // resource units per synthetic deal
	Tag            string   // provenance marker stored on every seeded deal
	ActorID        string   // synthetic identity, never a real player
	PriceScale     float64  // orders may be denominated in milli-Credits
	CountAllDeals  bool     // count organic deals toward the floor too
	Blacklist      []string // resource types never seeded
	Jitter         float64  // total jitter fraction, price varies by ±Jitter/2
}

const (
	defaultDays           = 14
	defaultMinDealsPerDay = 10
	defaultAmountPerDeal  = 1000
	defaultTag            = "market-deals-seed"
	defaultActorID        = "system"
	defaultPriceScale     = 1000
	defaultJitter         = 0.10
)

func (c *Config) applyDefaults() {
	if c.Days <= 0 {
		c.Days = defaultDays
	}
	if c.MinDealsPerDay <= 0 {
		c.MinDealsPerDay = defaultMinDealsPerDay
	}
	if c.AmountPerDeal <= 0 {
		c.AmountPerDeal = defaultAmountPerDeal
	}
	if c.Tag == "" {
		c.Tag = defaultTag
	}
	if c.ActorID == "" {
		c.ActorID = defaultActorID
	}
	if c.PriceScale <= 0 {
		c.PriceScale = defaultPriceScale
	}
	if c.Jitter <= 0 {
		c.Jitter = defaultJitter
	}
}

// Service runs seeding passes: one pass tops every non-blacklisted resource
// type up to the floor for every day of the trailing window.
type Service struct {
	deals  DealRepository
	prices PriceSource
	cfg    Config

	rand *rand.Rand
	now  func() time.Time
}

func NewService(deals DealRepository, prices PriceSource, cfg Config) *Service {
	cfg.applyDefaults()

	return &Service{
		deals:  deals,
		prices: prices,
		cfg:    cfg,
		rand:   rand.New(rand.NewSource(time.Now().UnixNano())), //nolint:gosec // jitter, not crypto
		now:    time.Now,
	}
}

// WithRand replaces the jitter/timestamp source, for deterministic tests.
func (s *Service) WithRand(r *rand.Rand) *Service {
	s.rand = r
	return s
}

// WithNow pins the reference day the trailing window is computed against.
func (s *Service) WithNow(now func() time.Time) *Service {
	s.now = now
	return s
}

// Summary is the result of one seeding pass.
type Summary struct {
	ResourceTypes int
	Inserted      int
}

// Run executes one full seeding pass. Resource types and days are processed
// strictly one at a time with a single outstanding write, so a given seed
// yields a deterministic sequence and the datastore never sees bursts.
// Days go from today backward. There is no lock around the count-then-insert
// sequence: a concurrent writer can push a window past the floor, which is
// accepted (the next periodic pass simply finds no shortfall).
//
// A failed insert aborts the pass and propagates; the periodic schedule
// retries naturally since the shortfall persists.
func (s *Service) Run(ctx context.Context) (Summary, error) {
	avgPrices := s.prices.AveragePrices(ctx)

	resourceTypes := lo.Keys(avgPrices)
	if len(s.cfg.Blacklist) > 0 {
		resourceTypes = lo.Filter(resourceTypes, func(rt string, _ int) bool {
			return !lo.Contains(s.cfg.Blacklist, rt)
		})
	}

	if len(resourceTypes) == 0 {
		logger(ctx).Info("no average prices from active orders, nothing to seed")
		return Summary{}, nil
	}

	summary := Summary{ResourceTypes: len(resourceTypes)}

	for _, resourceType := range resourceTypes {
		basis := avgPrices[resourceType]

		for daysAgo := 0; daysAgo < s.cfg.Days; daysAgo++ {
			window := value.NewDayWindow(s.now(), daysAgo)

			need := s.shortfall(ctx, resourceType, window)

			for k := 0; k < need; k++ {
				if err := s.insertSeedDeal(ctx, resourceType, basis, window); err != nil {
					return summary, domain.WrapError(err, errcodes.DealInsertFailed, "seeding pass aborted")
				}
				summary.Inserted++
			}
		}
	}

	logger(ctx).Info("seeding pass done",
		"resource_types", summary.ResourceTypes,
		"inserted", summary.Inserted,
	)

	return summary, nil
}
