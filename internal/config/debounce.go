package config

import (
	"sync"
	"time"
)

// DefaultReloadDebounce is how long config.yaml must stay unchanged after a
// save before the watcher reloads it.
const DefaultReloadDebounce = 200 * time.Millisecond

// ReloadDebouncer holds back a config reload until saves to the file stop.
// Writing config.yaml from an editor or from Save shows up as a write,
// create or rename event per step, and only the last one carries a complete
// file.
type ReloadDebouncer struct {
	mu    sync.Mutex
	quiet time.Duration
	timer *time.Timer
}

func NewReloadDebouncer(quiet time.Duration) *ReloadDebouncer {
	if quiet <= 0 {
		quiet = DefaultReloadDebounce
	}
	return &ReloadDebouncer{quiet: quiet}
}

// Schedule arms reload to run once the file has been quiet for the
// configured period. A save before then replaces the pending reload.
func (d *ReloadDebouncer) Schedule(reload func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.quiet, reload)
}

// Cancel drops a pending reload. Watch calls it on shutdown.
func (d *ReloadDebouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
