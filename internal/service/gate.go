// Package service contains the metric computations and the shared
// gate and cache infrastructure that protects the query engine.
package service

import (
	"context"

	"golang.org/x/sync/semaphore"

	"github.com/guttosm/segment-insights/internal/metrics"
)

// Gate is the bounded-concurrency admission control for the query engine.
// Every downstream call must pass through it; at most capacity callers hold
// a slot at any instant. Waiting callers block until a slot frees up or
// their context is cancelled.
type Gate struct {
	sem      *semaphore.Weighted
	capacity int
}

// NewGate creates a Gate with the given capacity. Capacity values below one
// fall back to one so the gate can never deadlock on construction.
func NewGate(capacity int) *Gate {
	if capacity < 1 {
		capacity = 1
	}
	return &Gate{
		sem:      semaphore.NewWeighted(int64(capacity)),
		capacity: capacity,
	}
}

// Capacity returns the configured slot count.
func (g *Gate) Capacity() int {
	return g.capacity
}

// Acquire blocks until a slot is available or ctx is cancelled.
func (g *Gate) Acquire(ctx context.Context) error {
	if !g.sem.TryAcquire(1) {
		metrics.GateWaitingTotal.Inc()
		if err := g.sem.Acquire(ctx, 1); err != nil {
			return err
		}
	}
	metrics.GateInFlight.Inc()
	return nil
}

// Release returns a previously acquired slot.
func (g *Gate) Release() {
	metrics.GateInFlight.Dec()
	g.sem.Release(1)
}

// Do runs fn while holding a slot. The slot is released on every exit path,
// including panics and fn errors.
func (g *Gate) Do(ctx context.Context, fn func(context.Context) error) error {
	if err := g.Acquire(ctx); err != nil {
		return err
	}
	defer g.Release()
	return fn(ctx)
}
