package pricing

import (
	"context"
	"math"

	"market_seeder/internal/domain/entity"
	"market_seeder/pkg/contextx"
	"market_seeder/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// OrderRepository is the slice of the order collection the estimator needs.
type OrderRepository interface {
	FindActive(ctx context.Context) ([]entity.Order, error)
}

// Service derives one average price per resource type from live active
// orders. The table is rebuilt from scratch on every call and never cached:
// a stale average would leak into every deal synthesized from it.
type Service struct {
	orders OrderRepository
}

func NewService(orders OrderRepository) *Service {
	return &Service{orders: orders}
}

// AveragePrices returns the arithmetic mean of active-order prices per
// resource type. Orders without a resource type or with a non-finite price
// are dropped; resource types with no valid sample are absent from the
// result. A failed read degrades to an empty table instead of an error,
// so the caller simply has nothing to seed.
func (s *Service) AveragePrices(ctx context.Context) map[string]float64 {
	orders, err := s.orders.FindActive(ctx)
	if err != nil {
		logger(ctx).Warn("active orders query failed, assuming no orders", logx.Error(err))
		return map[string]float64{}
	}

	sums := make(map[string]float64)
	counts := make(map[string]int)

	for _, order := range orders {
		if order.ResourceType == "" {
			continue
		}
		if math.IsNaN(order.Price) || math.IsInf(order.Price, 0) {
			continue
		}

		sums[order.ResourceType] += order.Price
		counts[order.ResourceType]++
	}

	avg := make(map[string]float64, len(sums))
	for resourceType, sum := range sums {
		avg[resourceType] = sum / float64(counts[resourceType])
	}

	return avg
}
