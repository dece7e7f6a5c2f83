// Package analysis implements the simulated crop-analysis sequence.
//
// The sequence is a linear, time-driven state machine: four step advances
// separated by StepDelay, then a reveal after RevealDelay. Wizard holds the
// state and knows which timed transition is pending; it never touches a clock.
// Callers schedule the pending transition themselves (a tea.Tick in the TUI,
// a clock.Clock in Runner) and hand the generation token back to Fire.
// Reset bumps the generation, so anything scheduled before it is ignored.
package analysis

import (
	"errors"
	"fmt"
	"time"

	"krishisakha/internal/sample"
)

// Default delays between transitions.
const (
	DefaultStepDelay   = 1500 * time.Millisecond
	DefaultRevealDelay = 1000 * time.Millisecond
)

var (
	// ErrNotRevealed is returned when selecting before the results are shown.
	ErrNotRevealed = errors.New("analysis results not revealed yet")
	// ErrOutOfRange is returned for a selection index with no crop entry.
	ErrOutOfRange = errors.New("crop index out of range")
)

// Kind identifies a wizard event.
type Kind int

const (
	KindAdvance Kind = iota
	KindReveal
	KindReset
	KindSelect
)

func (k Kind) String() string {
	switch k {
	case KindAdvance:
		return "advance"
	case KindReveal:
		return "reveal"
	case KindReset:
		return "reset"
	case KindSelect:
		return "select"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Transition is the timed transition the wizard is waiting for.
type Transition struct {
	Kind  Kind
	Delay time.Duration
	Gen   uint64
}

// Event records one state change.
type Event struct {
	Kind     Kind
	Step     int
	Revealed bool
	Selected int // -1 when nothing is expanded
	At       time.Time
}

// State is a copy of the wizard's observable state.
type State struct {
	Step     int
	Revealed bool
	Selected int // -1 when nothing is expanded
}

// HasSelection reports whether a crop detail is expanded.
func (s State) HasSelection() bool { return s.Selected >= 0 }

// Option configures a Wizard.
type Option func(*Wizard)

// WithDelays overrides the step and reveal delays. Non-positive values keep the default.
func WithDelays(step, reveal time.Duration) Option {
	return func(w *Wizard) {
		if step > 0 {
			w.stepDelay = step
		}
		if reveal > 0 {
			w.revealDelay = reveal
		}
	}
}

// Wizard is the analysis state machine. It is not safe for concurrent use;
// Runner adds locking.
type Wizard struct {
	steps       int
	step        int
	revealed    bool
	selected    int
	gen         uint64
	stepDelay   time.Duration
	revealDelay time.Duration
}

// New returns a wizard at step 0, not revealed, nothing selected.
func New(opts ...Option) *Wizard {
	w := &Wizard{
		steps:       sample.StepCount(),
		selected:    -1,
		stepDelay:   DefaultStepDelay,
		revealDelay: DefaultRevealDelay,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func (w *Wizard) Step() int          { return w.step }
func (w *Wizard) Revealed() bool     { return w.revealed }
func (w *Wizard) Generation() uint64 { return w.gen }
func (w *Wizard) Steps() int         { return w.steps }

// Selected returns the expanded crop index, if any.
func (w *Wizard) Selected() (int, bool) {
	return w.selected, w.selected >= 0
}

// State returns a snapshot.
func (w *Wizard) State() State {
	return State{Step: w.step, Revealed: w.revealed, Selected: w.selected}
}

// Next returns the pending timed transition. ok is false once revealed.
func (w *Wizard) Next() (Transition, bool) {
	switch {
	case w.step < w.steps:
		return Transition{Kind: KindAdvance, Delay: w.stepDelay, Gen: w.gen}, true
	case !w.revealed:
		return Transition{Kind: KindReveal, Delay: w.revealDelay, Gen: w.gen}, true
	default:
		return Transition{}, false
	}
}

// Fire applies the pending transition scheduled under gen. Tokens from
// before the last Reset are stale and leave the state untouched.
func (w *Wizard) Fire(gen uint64) (Event, bool) {
	if gen != w.gen {
		return Event{}, false
	}
	next, ok := w.Next()
	if !ok {
		return Event{}, false
	}
	switch next.Kind {
	case KindAdvance:
		w.step++
	case KindReveal:
		w.revealed = true
	}
	return w.event(next.Kind), true
}

// Reset restarts the sequence from step 0 and invalidates scheduled transitions.
func (w *Wizard) Reset() Event {
	w.step = 0
	w.revealed = false
	w.selected = -1
	w.gen++
	return w.event(KindReset)
}

// Select taps the crop at i. Tapping the expanded entry collapses it;
// tapping another entry moves the expansion there.
func (w *Wizard) Select(i int) (Event, error) {
	if !w.revealed {
		return Event{}, ErrNotRevealed
	}
	if i < 0 || i >= sample.CropCount() {
		return Event{}, fmt.Errorf("select %d: %w", i, ErrOutOfRange)
	}
	if w.selected == i {
		w.selected = -1
	} else {
		w.selected = i
	}
	return w.event(KindSelect), nil
}

// StepStatus reports how step i should render.
func (w *Wizard) StepStatus(i int) StepStatus {
	switch {
	case w.step > i:
		return StepDone
	case w.step == i:
		return StepActive
	default:
		return StepPending
	}
}

// StepStatus is the rendering state of one step row.
type StepStatus int

const (
	StepPending StepStatus = iota
	StepActive
	StepDone
)

func (w *Wizard) event(k Kind) Event {
	return Event{Kind: k, Step: w.step, Revealed: w.revealed, Selected: w.selected}
}
