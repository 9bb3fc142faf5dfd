package watcher

import (
	"sync"
	"time"
)

// Debouncer coalesces bursts of file events into a single flush. Events are
// deduplicated by path; a quiet window or a full batch triggers the flush
// callback.
type Debouncer struct {
	window   time.Duration
	maxBatch int
	onFlush  func([]FileEvent)

	mu      sync.Mutex
	pending map[string]FileEvent
	timer   *time.Timer
	stopped bool
}

func NewDebouncer(window time.Duration, maxBatch int, onFlush func([]FileEvent)) *Debouncer {
	return &Debouncer{
		window:   window,
		maxBatch: maxBatch,
		onFlush:  onFlush,
		pending:  make(map[string]FileEvent),
	}
}

func (d *Debouncer) Add(event FileEvent) {
	d.mu.Lock()

	if d.stopped {
		d.mu.Unlock()
		return
	}

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}

	d.pending[event.Path] = event

	if len(d.pending) >= d.maxBatch {
		events := d.takeLocked()
		d.mu.Unlock()
		d.flush(events)
		return
	}

	d.timer = time.AfterFunc(d.window, func() {
		d.mu.Lock()
		if d.stopped {
			d.mu.Unlock()
			return
		}
		events := d.takeLocked()
		d.mu.Unlock()
		d.flush(events)
	})

	d.mu.Unlock()
}

// takeLocked drains the pending set. Caller holds the lock.
func (d *Debouncer) takeLocked() []FileEvent {
	events := make([]FileEvent, 0, len(d.pending))
	for _, event := range d.pending {
		events = append(events, event)
	}
	d.pending = make(map[string]FileEvent)

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}

	return events
}

func (d *Debouncer) flush(events []FileEvent) {
	if len(events) > 0 && d.onFlush != nil {
		d.onFlush(events)
	}
}

// Stop flushes anything still pending and rejects further events.
func (d *Debouncer) Stop() {
	d.mu.Lock()

	if d.stopped {
		d.mu.Unlock()
		return
	}

	d.stopped = true
	events := d.takeLocked()
	d.mu.Unlock()

	d.flush(events)
}
