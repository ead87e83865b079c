package worker_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/require"

	"market_seeder/internal/worker"
)

type fakeProber struct {
	mu         sync.Mutex
	calls      int
	readyAfter int // ready once calls >= readyAfter; 0 means never
	err        error
}

func (f *fakeProber) Ready(context.Context) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls++
	if f.err != nil {
		return false, f.err
	}
	return f.readyAfter > 0 && f.calls >= f.readyAfter, nil
}

func (f *fakeProber) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func TestGateOpensImmediately(t *testing.T) {
	rq := require.New(t)

	probe := &fakeProber{readyAfter: 1}
	gate := worker.NewReadinessGate(probe, 60, time.Second)

	rq.Equal(worker.GateWaiting, gate.State())
	rq.NoError(gate.Wait(context.Background()))
	rq.Equal(worker.GateReady, gate.State())
	rq.Equal(1, probe.callCount())
}

func TestGateOpensAfterRetries(t *testing.T) {
	rq := require.New(t)

	probe := &fakeProber{readyAfter: 3}
	gate := worker.NewReadinessGate(probe, 60, time.Millisecond)

	rq.NoError(gate.Wait(context.Background()))
	rq.Equal(worker.GateReady, gate.State())
	rq.Equal(3, probe.callCount())
}

func TestGateGivesUpAfterBudget(t *testing.T) {
	rq := require.New(t)

	probe := &fakeProber{} // never ready
	gate := worker.NewReadinessGate(probe, 5, time.Millisecond)

	err := gate.Wait(context.Background())
	rq.ErrorIs(err, worker.ErrGivenUp)
	rq.Equal(worker.GateGivenUp, gate.State())
	rq.Equal(5, probe.callCount())
}

func TestGateProbeErrorSpendsAnAttempt(t *testing.T) {
	rq := require.New(t)

	probe := &fakeProber{err: errors.New("no connection")}
	gate := worker.NewReadinessGate(probe, 3, time.Millisecond)

	err := gate.Wait(context.Background())
	rq.ErrorIs(err, worker.ErrGivenUp)
	rq.Equal(3, probe.callCount())
}

func TestGateHonorsContextCancel(t *testing.T) {
	rq := require.New(t)

	probe := &fakeProber{}
	gate := worker.NewReadinessGate(probe, 60, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- gate.Wait(ctx) }()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		rq.ErrorIs(err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("gate did not observe cancellation")
	}

	// Cancellation is not a give-up: the budget was never exhausted.
	rq.Equal(worker.GateWaiting, gate.State())
}

func TestGateUsesInjectedClock(t *testing.T) {
	rq := require.New(t)

	mock := clock.NewMock()
	probe := &fakeProber{readyAfter: 4}
	gate := worker.NewReadinessGate(probe, 10, time.Second).WithClock(mock)

	done := make(chan error, 1)
	go func() { done <- gate.Wait(context.Background()) }()

	for i := 0; i < 6; i++ {
		time.Sleep(10 * time.Millisecond) // let Wait arm its timer
		mock.Add(time.Second)
	}

	select {
	case err := <-done:
		rq.NoError(err)
		rq.Equal(4, probe.callCount())
	case <-time.After(time.Second):
		t.Fatal("gate did not open on the mock clock")
	}
}
