//go:build !integration

package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGate_NeverExceedsCapacity(t *testing.T) {
	const capacity = 3
	const callers = 20

	gate := NewGate(capacity)

	var inFlight int64
	var maxInFlight int64
	var wg sync.WaitGroup

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := gate.Do(context.Background(), func(context.Context) error {
				current := atomic.AddInt64(&inFlight, 1)
				for {
					observed := atomic.LoadInt64(&maxInFlight)
					if current <= observed || atomic.CompareAndSwapInt64(&maxInFlight, observed, current) {
						break
					}
				}
				time.Sleep(5 * time.Millisecond)
				atomic.AddInt64(&inFlight, -1)
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, atomic.LoadInt64(&maxInFlight), int64(capacity))
	assert.Equal(t, int64(0), atomic.LoadInt64(&inFlight))
}

func TestGate_ReleasesSlotOnError(t *testing.T) {
	gate := NewGate(1)

	wantErr := errors.New("engine unavailable")
	err := gate.Do(context.Background(), func(context.Context) error {
		return wantErr
	})
	assert.ErrorIs(t, err, wantErr)

	// The slot must be free again despite the failure.
	require.NoError(t, gate.Acquire(context.Background()))
	gate.Release()
}

func TestGate_AcquireHonorsContextCancellation(t *testing.T) {
	gate := NewGate(1)
	require.NoError(t, gate.Acquire(context.Background()))
	defer gate.Release()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := gate.Acquire(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestGate_WaitingCallerAdmittedWhenSlotFrees(t *testing.T) {
	gate := NewGate(1)
	require.NoError(t, gate.Acquire(context.Background()))

	admitted := make(chan struct{})
	go func() {
		if err := gate.Acquire(context.Background()); err == nil {
			gate.Release()
			close(admitted)
		}
	}()

	time.Sleep(10 * time.Millisecond)
	gate.Release()

	select {
	case <-admitted:
	case <-time.After(time.Second):
		t.Fatal("waiting caller was never admitted")
	}
}

func TestNewGate_ClampsCapacity(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		expected int
	}{
		{name: "zero capacity", capacity: 0, expected: 1},
		{name: "negative capacity", capacity: -4, expected: 1},
		{name: "positive capacity", capacity: 8, expected: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NewGate(tt.capacity).Capacity())
		})
	}
}
