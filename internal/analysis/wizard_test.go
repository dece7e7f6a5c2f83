package analysis

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// drive fires every pending transition until the wizard is revealed.
func drive(t *testing.T, w *Wizard) []Event {
	t.Helper()
	var events []Event
	for i := 0; i < 10; i++ {
		next, ok := w.Next()
		if !ok {
			return events
		}
		ev, fired := w.Fire(next.Gen)
		require.True(t, fired)
		events = append(events, ev)
	}
	t.Fatal("wizard did not settle")
	return nil
}

func TestWizard_InitialState(t *testing.T) {
	w := New()
	assert.Equal(t, 0, w.Step())
	assert.False(t, w.Revealed())
	_, ok := w.Selected()
	assert.False(t, ok)
	assert.Equal(t, 4, w.Steps())
}

func TestWizard_FourAdvancesThenReveal(t *testing.T) {
	w := New()
	events := drive(t, w)

	require.Len(t, events, 5)
	for i := 0; i < 4; i++ {
		assert.Equal(t, KindAdvance, events[i].Kind)
		assert.Equal(t, i+1, events[i].Step, "no step skipped or repeated")
		assert.False(t, events[i].Revealed)
	}
	assert.Equal(t, KindReveal, events[4].Kind)
	assert.Equal(t, 4, events[4].Step)
	assert.True(t, w.Revealed())

	_, ok := w.Next()
	assert.False(t, ok, "nothing is pending after reveal")
}

func TestWizard_PendingDelays(t *testing.T) {
	w := New()
	next, ok := w.Next()
	require.True(t, ok)
	assert.Equal(t, KindAdvance, next.Kind)
	assert.Equal(t, 1500*time.Millisecond, next.Delay)

	for i := 0; i < 4; i++ {
		n, _ := w.Next()
		w.Fire(n.Gen)
	}
	next, ok = w.Next()
	require.True(t, ok)
	assert.Equal(t, KindReveal, next.Kind)
	assert.Equal(t, time.Second, next.Delay)
}

func TestWizard_WithDelays(t *testing.T) {
	w := New(WithDelays(10*time.Millisecond, 0))
	next, _ := w.Next()
	assert.Equal(t, 10*time.Millisecond, next.Delay)
	for i := 0; i < 4; i++ {
		n, _ := w.Next()
		w.Fire(n.Gen)
	}
	next, _ = w.Next()
	assert.Equal(t, DefaultRevealDelay, next.Delay)
}

func TestWizard_StaleGenerationIgnored(t *testing.T) {
	w := New()
	stale, _ := w.Next()
	w.Fire(stale.Gen)
	require.Equal(t, 1, w.Step())

	w.Reset()
	_, fired := w.Fire(stale.Gen)
	assert.False(t, fired)
	assert.Equal(t, 0, w.Step())
}

func TestWizard_ResetFromAnyState(t *testing.T) {
	for advances := 0; advances <= 5; advances++ {
		w := New()
		for i := 0; i < advances; i++ {
			n, ok := w.Next()
			require.True(t, ok)
			w.Fire(n.Gen)
		}
		if w.Revealed() {
			_, err := w.Select(2)
			require.NoError(t, err)
		}

		ev := w.Reset()
		assert.Equal(t, KindReset, ev.Kind)
		assert.Equal(t, 0, w.Step())
		assert.False(t, w.Revealed())
		_, ok := w.Selected()
		assert.False(t, ok)
		assert.Equal(t, State{Step: 0, Revealed: false, Selected: -1}, w.State())
	}
}

func TestWizard_SelectBeforeReveal(t *testing.T) {
	w := New()
	_, err := w.Select(0)
	assert.ErrorIs(t, err, ErrNotRevealed)
}

func TestWizard_SelectSingleExpansion(t *testing.T) {
	w := New()
	drive(t, w)

	_, err := w.Select(0)
	require.NoError(t, err)
	sel, ok := w.Selected()
	require.True(t, ok)
	assert.Equal(t, 0, sel)

	_, err = w.Select(1)
	require.NoError(t, err)
	sel, _ = w.Selected()
	assert.Equal(t, 1, sel, "second tap moves the expansion")

	_, err = w.Select(1)
	require.NoError(t, err)
	_, ok = w.Selected()
	assert.False(t, ok, "tapping the expanded entry collapses it")
}

func TestWizard_SelectOutOfRange(t *testing.T) {
	w := New()
	drive(t, w)
	_, err := w.Select(3)
	assert.True(t, errors.Is(err, ErrOutOfRange))
	_, err = w.Select(-1)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestWizard_StepStatus(t *testing.T) {
	w := New()
	n, _ := w.Next()
	w.Fire(n.Gen)
	n, _ = w.Next()
	w.Fire(n.Gen)

	assert.Equal(t, StepDone, w.StepStatus(0))
	assert.Equal(t, StepDone, w.StepStatus(1))
	assert.Equal(t, StepActive, w.StepStatus(2))
	assert.Equal(t, StepPending, w.StepStatus(3))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "advance", KindAdvance.String())
	assert.Equal(t, "reveal", KindReveal.String())
	assert.Equal(t, "kind(9)", Kind(9).String())
}
