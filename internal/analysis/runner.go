package analysis

import (
	"sync"

	"github.com/facebookgo/clock"

	"krishisakha/internal/logging"
)

// Runner drives a Wizard from a clock. Each fired timer schedules the next
// pending transition until the results are revealed. Reset and Stop cancel
// the outstanding timer. A callback that was already running when its timer
// was cancelled is rejected by the wizard generation (Reset) or by the run
// epoch (Stop followed by Start).
type Runner struct {
	mu       sync.Mutex
	clock    clock.Clock
	wiz      *Wizard
	timer    *clock.Timer
	observer func(Event)
	running  bool
	epoch    uint64
}

// NewRunner wires a wizard to a clock. observer may be nil; it is called
// without the runner lock held, in the goroutine that caused the event.
func NewRunner(c clock.Clock, w *Wizard, observer func(Event)) *Runner {
	if c == nil {
		c = clock.New()
	}
	if w == nil {
		w = New()
	}
	if observer == nil {
		observer = func(Event) {}
	}
	return &Runner{clock: c, wiz: w, observer: observer}
}

// Start begins scheduling from the wizard's current state. Calling Start on a
// running runner is a no-op.
func (r *Runner) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.running {
		return
	}
	r.running = true
	r.epoch++
	logging.Get(logging.CategoryAnalysis).Debug("runner started at step %d", r.wiz.Step())
	r.scheduleLocked()
}

// Reset restarts the sequence and, if the runner is running, schedules the first advance.
func (r *Runner) Reset() {
	r.mu.Lock()
	r.cancelLocked()
	ev := r.wiz.Reset()
	ev.At = r.clock.Now()
	if r.running {
		r.scheduleLocked()
	}
	r.mu.Unlock()

	logging.Get(logging.CategoryAnalysis).Info("analysis reset")
	r.observer(ev)
}

// Stop cancels the pending timer. The wizard keeps its state; Start resumes it.
func (r *Runner) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.running = false
	r.epoch++
	r.cancelLocked()
}

// Select forwards a crop tap to the wizard.
func (r *Runner) Select(i int) error {
	r.mu.Lock()
	ev, err := r.wiz.Select(i)
	ev.At = r.clock.Now()
	r.mu.Unlock()
	if err != nil {
		return err
	}
	r.observer(ev)
	return nil
}

// State returns a snapshot of the wizard.
func (r *Runner) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.wiz.State()
}

func (r *Runner) scheduleLocked() {
	next, ok := r.wiz.Next()
	if !ok {
		return
	}
	gen, epoch := next.Gen, r.epoch
	r.timer = r.clock.AfterFunc(next.Delay, func() { r.fire(gen, epoch) })
}

func (r *Runner) cancelLocked() {
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
}

func (r *Runner) fire(gen, epoch uint64) {
	r.mu.Lock()
	if !r.running || epoch != r.epoch {
		r.mu.Unlock()
		return
	}
	ev, ok := r.wiz.Fire(gen)
	if !ok {
		r.mu.Unlock()
		return
	}
	ev.At = r.clock.Now()
	r.timer = nil
	r.scheduleLocked()
	r.mu.Unlock()

	logging.Get(logging.CategoryAnalysis).Debug("%s: step=%d revealed=%v", ev.Kind, ev.Step, ev.Revealed)
	r.observer(ev)
}
