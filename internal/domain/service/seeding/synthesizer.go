package seeding

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/rs/xid"

	"market_seeder/internal/domain/entity"
	"market_seeder/internal/domain/value"
)

// insertSeedDeal builds one synthetic deal and persists it.
func (s *Service) insertSeedDeal(ctx context.Context, resourceType string, basis float64, window value.DayWindow) error {
	deal := s.synthesize(resourceType, basis, window)

	if err := s.deals.Insert(ctx, deal); err != nil {
		return fmt.Errorf("insert seed deal %s/%s: %w", resourceType, deal.ID, err)
	}

	return nil
}

// synthesize produces a plausible market-sell record: the estimated average
// price scaled down to Credits and jittered by ±Jitter/2, timestamped
// uniformly inside the day window, attributed to the synthetic actor and
// tagged with the provenance marker.
func (s *Service) synthesize(resourceType string, basis float64, window value.DayWindow) *entity.Deal {
	jitter := 1 + (s.rand.Float64()-0.5)*s.cfg.Jitter
	price := safeBasis(basis) / s.cfg.PriceScale * jitter
	amount := s.cfg.AmountPerDeal

	return &entity.Deal{
		ID:     xid.New().String(),
		User:   s.cfg.ActorID,
		Type:   entity.DealTypeMarketSell,
		Date:   s.randomTimeIn(window),
		Change: float64(amount) * price,
		Market: entity.DealMarket{
			ResourceType: resourceType,
			Amount:       amount,
			Price:        price,
		},
		SeededBy: s.cfg.Tag,
	}
}

// safeBasis substitutes 1 for a non-finite price basis instead of erroring.
func safeBasis(basis float64) float64 {
	if math.IsNaN(basis) || math.IsInf(basis, 0) {
		return 1
	}
	return basis
}

// randomTimeIn draws a timestamp uniformly from [Start, End] inclusive.
func (s *Service) randomTimeIn(window value.DayWindow) time.Time {
	offset := s.rand.Int63n(int64(window.Duration()) + 1)
	return window.Start.Add(time.Duration(offset))
}
