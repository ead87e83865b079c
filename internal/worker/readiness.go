package worker

import (
	"context"
	"sync"
	"time"

	"github.com/benbjohnson/clock"

	"market_seeder/internal/domain"
	"market_seeder/pkg/contextx"
	"market_seeder/pkg/errcodes"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// ErrGivenUp is returned once the retry budget is exhausted. The gate never
// re-arms; only a process restart tries again.
var ErrGivenUp = domain.NewError(errcodes.StorageNotReady, "required tables still missing after retry budget")

// GateState is the readiness gate lifecycle: WAITING until the storage
// answers ready, then READY, or GIVEN_UP after the attempt cap.
type GateState string

const (
	GateWaiting GateState = "waiting"
	GateReady   GateState = "ready"
	GateGivenUp GateState = "given_up"
)

// StorageProber answers whether the datastore's required collections exist.
type StorageProber interface {
	Ready(ctx context.Context) (bool, error)
}

// ReadinessGate polls the prober on a fixed interval until it reports ready,
// bounded by a maximum attempt count. A probe error counts as "not ready"
// and spends an attempt like any other.
type ReadinessGate struct {
	probe       StorageProber
	maxAttempts int
	interval    time.Duration
	clock       clock.Clock

	mu    sync.Mutex
	state GateState
}

const (
	defaultMaxAttempts = 60
	defaultInterval    = time.Second
)

func NewReadinessGate(probe StorageProber, maxAttempts int, interval time.Duration) *ReadinessGate {
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}
	if interval <= 0 {
		interval = defaultInterval
	}

	return &ReadinessGate{
		probe:       probe,
		maxAttempts: maxAttempts,
		interval:    interval,
		clock:       clock.New(),
		state:       GateWaiting,
	}
}

// WithClock replaces the wall clock, for tests.
func (g *ReadinessGate) WithClock(c clock.Clock) *ReadinessGate {
	g.clock = c
	return g
}

func (g *ReadinessGate) State() GateState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

func (g *ReadinessGate) setState(state GateState) {
	g.mu.Lock()
	g.state = state
	g.mu.Unlock()
}

// Wait blocks until the storage is ready, the attempt budget runs out
// (ErrGivenUp), or the context is cancelled.
func (g *ReadinessGate) Wait(ctx context.Context) error {
	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		ready, err := g.probe.Ready(ctx)
		if err == nil && ready {
			g.setState(GateReady)
			return nil
		}

		if attempt == 1 {
			logger(ctx).Info("waiting for market_orders / users_money tables",
				"max_attempts", g.maxAttempts,
				"interval", g.interval,
			)
		}
		if err != nil {
			logger(ctx).Debug("storage probe failed", "attempt", attempt, "error", err)
		}

		if attempt == g.maxAttempts {
			break
		}

		timer := g.clock.Timer(g.interval)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		}
	}

	g.setState(GateGivenUp)
	logger(ctx).Error("giving up, tables still not ready", "attempts", g.maxAttempts)

	return ErrGivenUp
}
