package analysis

import (
	"sync"
	"testing"
	"time"

	"github.com/facebookgo/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *recorder) observe(ev Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func (r *recorder) snapshot() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

func TestRunner_VirtualTimeSequence(t *testing.T) {
	mock := clock.NewMock()
	start := mock.Now()
	rec := &recorder{}
	r := NewRunner(mock, New(), rec.observe)
	r.Start()
	defer r.Stop()

	mock.Add(1499 * time.Millisecond)
	assert.Empty(t, rec.snapshot(), "nothing fires before the first delay")

	mock.Add(1 * time.Millisecond)
	require.Len(t, rec.snapshot(), 1)

	mock.Add(6 * time.Second)
	events := rec.snapshot()
	require.Len(t, events, 5)

	wantOffsets := []time.Duration{1500, 3000, 4500, 6000, 7000}
	for i, ev := range events {
		assert.Equal(t, wantOffsets[i]*time.Millisecond, ev.At.Sub(start), "event %d", i)
		if i < 4 {
			assert.Equal(t, KindAdvance, ev.Kind)
			assert.Equal(t, i+1, ev.Step)
		}
	}
	assert.Equal(t, KindReveal, events[4].Kind)
	assert.True(t, r.State().Revealed)

	mock.Add(time.Minute)
	assert.Len(t, rec.snapshot(), 5, "the sequence stops after reveal")
}

func TestRunner_ResetMidFlight(t *testing.T) {
	mock := clock.NewMock()
	rec := &recorder{}
	r := NewRunner(mock, New(), rec.observe)
	r.Start()
	defer r.Stop()

	mock.Add(3 * time.Second)
	require.Equal(t, 2, r.State().Step)

	mock.Add(time.Second)
	r.Reset()
	assert.Equal(t, State{Step: 0, Selected: -1}, r.State())

	// The timer armed before the reset would have fired 500ms later.
	mock.Add(500 * time.Millisecond)
	assert.Equal(t, 0, r.State().Step)

	mock.Add(time.Second)
	assert.Equal(t, 1, r.State().Step)

	events := rec.snapshot()
	require.Len(t, events, 4)
	assert.Equal(t, KindReset, events[2].Kind)
}

func TestRunner_StopCancelsPendingTimer(t *testing.T) {
	mock := clock.NewMock()
	rec := &recorder{}
	r := NewRunner(mock, New(), rec.observe)
	r.Start()

	mock.Add(1 * time.Second)
	r.Stop()
	mock.Add(time.Hour)

	assert.Empty(t, rec.snapshot())
	assert.Equal(t, 0, r.State().Step)
}

func TestRunner_RestartRejectsCallbackFromEarlierRun(t *testing.T) {
	mock := clock.NewMock()
	rec := &recorder{}
	r := NewRunner(mock, New(), rec.observe)

	r.Start()
	r.mu.Lock()
	staleGen, staleEpoch := r.wiz.Generation(), r.epoch
	r.mu.Unlock()

	// The first run's callback is already executing when Stop and Start land.
	r.Stop()
	r.Start()
	defer r.Stop()
	r.fire(staleGen, staleEpoch)

	assert.Empty(t, rec.snapshot(), "a callback from before Stop must not advance")
	assert.Equal(t, 0, r.State().Step)

	mock.Add(1500 * time.Millisecond)
	require.Len(t, rec.snapshot(), 1)
	assert.Equal(t, 1, r.State().Step)

	mock.Add(1499 * time.Millisecond)
	assert.Len(t, rec.snapshot(), 1, "only one timer chain is live after the restart")
	assert.Equal(t, 1, r.State().Step)
}

func TestRunner_SelectAfterReveal(t *testing.T) {
	mock := clock.NewMock()
	rec := &recorder{}
	r := NewRunner(mock, New(), rec.observe)

	assert.ErrorIs(t, r.Select(0), ErrNotRevealed)

	r.Start()
	defer r.Stop()
	mock.Add(10 * time.Second)

	require.NoError(t, r.Select(2))
	assert.Equal(t, 2, r.State().Selected)
	require.NoError(t, r.Select(0))
	assert.Equal(t, 0, r.State().Selected)

	events := rec.snapshot()
	assert.Equal(t, KindSelect, events[len(events)-1].Kind)
}

func TestRunner_RealClockNoLeaks(t *testing.T) {
	defer goleak.VerifyNone(t)

	done := make(chan struct{})
	r := NewRunner(clock.New(), New(WithDelays(time.Millisecond, time.Millisecond)), func(ev Event) {
		if ev.Kind == KindReveal {
			close(done)
		}
	})
	r.Start()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("sequence did not reveal")
	}
	r.Stop()
	assert.True(t, r.State().Revealed)
}

func TestRunner_StartIsIdempotent(t *testing.T) {
	mock := clock.NewMock()
	rec := &recorder{}
	r := NewRunner(mock, New(), rec.observe)
	r.Start()
	r.Start()
	defer r.Stop()

	mock.Add(1500 * time.Millisecond)
	assert.Len(t, rec.snapshot(), 1)
}
