package lifetime

import (
	"context"
	"sync"

	tally "github.com/uber-go/tally"
	"github.com/nimbus-ide/exthost/src/exthost/internal/handles"
	"go.uber.org/zap"
)

// NotifyFunc delivers a batch of collected handles to the owning side.
type NotifyFunc func(ctx context.Context, collected []handles.Handle) error

// Tracker batches handles that the referencing side has fully dropped, for
// delivery to the owning side in a single collection notice. Delivery is
// best-effort: a failed notice is logged and the batch is discarded, since
// the owning side reclaims leftovers at session teardown anyway.
type Tracker struct {
	notify NotifyFunc
	logger *zap.SugaredLogger
	stats  tally.Scope

	mu      sync.Mutex
	pending []handles.Handle
}

// NewTracker returns a Tracker delivering collection notices via notify.
func NewTracker(notify NotifyFunc, logger *zap.SugaredLogger, stats tally.Scope) *Tracker {
	return &Tracker{
		notify: notify,
		logger: logger,
		stats:  stats.SubScope("lifetime_tracker"),
	}
}

// Drop records handles whose last local reference has been discarded.
func (t *Tracker) Drop(hs ...handles.Handle) {
	if len(hs) == 0 {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	t.pending = append(t.pending, hs...)
	t.stats.Gauge("pending").Update(float64(len(t.pending)))
}

// Flush delivers the pending batch. The batch is cleared regardless of
// delivery outcome.
func (t *Tracker) Flush(ctx context.Context) {
	t.mu.Lock()
	batch := t.pending
	t.pending = nil
	t.mu.Unlock()

	if len(batch) == 0 {
		return
	}
	t.stats.Gauge("pending").Update(0)

	if err := t.notify(ctx, batch); err != nil {
		t.logger.Warnw("collection notice not delivered", "count", len(batch), "error", err)
		t.stats.Counter("lost").Inc(int64(len(batch)))
		return
	}
	t.stats.Counter("notified").Inc(int64(len(batch)))
}

// Pending returns the number of handles awaiting delivery.
func (t *Tracker) Pending() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return len(t.pending)
}
