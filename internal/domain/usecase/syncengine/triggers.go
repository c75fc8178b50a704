package syncengine

import (
	"time"

	eventport "github.com/amirhossein-jamali/payledger/internal/domain/port/event"
)

// onChange restarts the debounce timer for local mutations.
// Changes written by the engine itself carry OriginSync and are ignored.
func (e *Engine) onChange(evt eventport.Event) {
	if evt.Origin == eventport.OriginSync {
		return
	}

	e.debounceMu.Lock()
	defer e.debounceMu.Unlock()

	if e.timer != nil {
		e.timer.Stop()
	}
	e.timer = time.AfterFunc(e.cfg.Debounce, e.debounced)
}

func (e *Engine) debounced() {
	e.debounceMu.Lock()
	e.timer = nil
	ctx := e.baseCtx
	e.debounceMu.Unlock()

	if _, err := e.SyncNow(ctx); err != nil {
		e.logger.Warn("Debounced sync failed", map[string]any{"error": err.Error()})
	}
}

// Name identifies the periodic job
func (e *Engine) Name() string {
	return jobName
}

// Run executes one sync cycle for the scheduler
func (e *Engine) Run() error {
	e.debounceMu.Lock()
	ctx := e.baseCtx
	e.debounceMu.Unlock()

	_, err := e.SyncNow(ctx)
	return err
}

// Pending reports whether a debounced sync is waiting to fire
func (e *Engine) Pending() bool {
	e.debounceMu.Lock()
	defer e.debounceMu.Unlock()
	return e.timer != nil
}

// Debounce returns the configured quiet period
func (e *Engine) Debounce() time.Duration {
	return e.cfg.Debounce
}
