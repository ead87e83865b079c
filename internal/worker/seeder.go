package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/rs/xid"

	"market_seeder/internal/domain/service/seeding"
	"market_seeder/internal/observability"
	"market_seeder/pkg/contextx"
	"market_seeder/pkg/logx"
)

// Seeder drives the seeding service: one run as soon as the readiness gate
// opens, then one per period for the rest of the process lifetime.
type Seeder struct {
	seeding *seeding.Service
	gate    *ReadinessGate
	period  time.Duration
	clock   clock.Clock
	metrics *observability.Metrics

	// Control fields
	mu         sync.Mutex
	cancelFunc context.CancelFunc
	isRunning  bool
	wg         sync.WaitGroup
}

const defaultPeriod = 12 * time.Hour

func NewSeeder(svc *seeding.Service, gate *ReadinessGate, period time.Duration) *Seeder {
	if period <= 0 {
		period = defaultPeriod
	}

	return &Seeder{
		seeding: svc,
		gate:    gate,
		period:  period,
		clock:   clock.New(),
	}
}

// WithClock replaces the wall clock, for tests.
func (w *Seeder) WithClock(c clock.Clock) *Seeder {
	w.clock = c
	return w
}

// WithMetrics attaches Prometheus instruments to each run.
func (w *Seeder) WithMetrics(m *observability.Metrics) *Seeder {
	w.metrics = m
	return w
}

// Start launches Run on its own goroutine.
func (w *Seeder) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.isRunning {
		return errors.New("seeder is already running")
	}

	runCtx, cancel := context.WithCancel(ctx)
	w.cancelFunc = cancel
	w.isRunning = true

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer func() {
			w.mu.Lock()
			w.isRunning = false
			w.cancelFunc = nil
			w.mu.Unlock()
		}()

		if err := w.Run(runCtx); err != nil && !errors.Is(err, context.Canceled) {
			logger(runCtx).Error("seeder stopped", logx.Error(err))
		}
	}()

	return nil
}

// Stop cancels the running loop and waits for it to exit.
func (w *Seeder) Stop() {
	w.mu.Lock()

	if !w.isRunning {
		w.mu.Unlock()
		return
	}

	if w.cancelFunc != nil {
		w.cancelFunc()
	}
	w.mu.Unlock()

	w.wg.Wait()
}

func (w *Seeder) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.isRunning
}

// Run blocks: it waits on the readiness gate, seeds once immediately, then
// re-seeds every period until the context is cancelled. Runs execute inline
// in this goroutine, so they serialize; a tick that fires while a run is
// still in progress is coalesced by the ticker, never stacked. If the gate
// gives up, Run returns ErrGivenUp and no seeding ever happens.
func (w *Seeder) Run(ctx context.Context) error {
	if err := w.gate.Wait(ctx); err != nil {
		return fmt.Errorf("readiness gate: %w", err)
	}

	w.runOnce(ctx, "startup")

	ticker := w.clock.Ticker(w.period)
	defer ticker.Stop()

	logger(ctx).Info("periodic seeding scheduled", "period", w.period)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			w.runOnce(ctx, "periodic")
		}
	}
}

func (w *Seeder) runOnce(parent context.Context, kind string) {
	traceID := contextx.TraceID(xid.New().String())
	ctx := contextx.WithTraceID(parent, traceID)
	ctx = contextx.WithLogger(ctx, logger(parent).With(logx.FieldTraceID, traceID.String()))

	start := w.clock.Now()
	summary, err := w.seeding.Run(ctx)
	elapsed := w.clock.Now().Sub(start)

	if w.metrics != nil {
		w.metrics.RunDuration.Observe(elapsed.Seconds())
	}

	if err != nil {
		if w.metrics != nil {
			w.metrics.RunsTotal.WithLabelValues("error").Inc()
			w.metrics.DealsInserted.Add(float64(summary.Inserted))
		}
		logger(ctx).Error("seeding run failed",
			"kind", kind,
			"inserted", summary.Inserted,
			logx.Error(err),
		)
		return
	}

	if w.metrics != nil {
		w.metrics.RunsTotal.WithLabelValues("ok").Inc()
		w.metrics.DealsInserted.Add(float64(summary.Inserted))
		w.metrics.LastSuccessfulRun.SetToCurrentTime()
	}

	logger(ctx).Info("seeding run ok",
		"kind", kind,
		"resource_types", summary.ResourceTypes,
		"inserted", summary.Inserted,
		"duration", elapsed,
	)
}
