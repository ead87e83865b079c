package seeding

import (
	"context"

	"market_seeder/internal/domain/value"
)

// shortfall returns how many deals the window is short of the floor.
// A failed count is treated as an empty window, so the pass errs toward
// seeding the full floor rather than skipping the day.
func (s *Service) shortfall(ctx context.Context, resourceType string, window value.DayWindow) int {
	seededBy := ""
	if !s.cfg.CountAllDeals {
		seededBy = s.cfg.Tag
	}

	have, err := s.deals.CountInWindow(ctx, resourceType, window, seededBy)
	if err != nil {
		logger(ctx).Warn("deal count failed, assuming empty window",
			"resource_type", resourceType,
			"window_start", window.Start,
			"error", err,
		)
		have = 0
	}

	if have >= s.cfg.MinDealsPerDay {
		return 0
	}

	return s.cfg.MinDealsPerDay - have
}
