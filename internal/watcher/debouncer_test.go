package watcher

import (
	"sync"
	"testing"
	"time"
)

type flushRecorder struct {
	mu      sync.Mutex
	batches [][]FileEvent
}

func (r *flushRecorder) record(events []FileEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.batches = append(r.batches, events)
}

func (r *flushRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.batches)
}

func (r *flushRecorder) first() []FileEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.batches) == 0 {
		return nil
	}
	return r.batches[0]
}

func TestDebouncerCoalescesByPath(t *testing.T) {
	rec := &flushRecorder{}
	d := NewDebouncer(20*time.Millisecond, 100, rec.record)

	d.Add(FileEvent{Path: "a.md", Type: EventModify})
	d.Add(FileEvent{Path: "a.md", Type: EventModify})
	d.Add(FileEvent{Path: "b.md", Type: EventModify})

	deadline := time.Now().Add(time.Second)
	for rec.count() == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}

	if rec.count() != 1 {
		t.Fatalf("expected 1 flush, got %d", rec.count())
	}
	if got := len(rec.first()); got != 2 {
		t.Errorf("expected 2 deduplicated events, got %d", got)
	}
}

func TestDebouncerFlushesFullBatch(t *testing.T) {
	rec := &flushRecorder{}
	d := NewDebouncer(time.Hour, 2, rec.record)

	d.Add(FileEvent{Path: "a.md"})
	d.Add(FileEvent{Path: "b.md"})

	if rec.count() != 1 {
		t.Fatalf("full batch must flush immediately, got %d flushes", rec.count())
	}
}

func TestDebouncerStopFlushesPending(t *testing.T) {
	rec := &flushRecorder{}
	d := NewDebouncer(time.Hour, 100, rec.record)

	d.Add(FileEvent{Path: "a.md"})
	d.Stop()

	if rec.count() != 1 {
		t.Fatalf("Stop must flush pending events, got %d flushes", rec.count())
	}

	d.Add(FileEvent{Path: "b.md"})
	if rec.count() != 1 {
		t.Error("events after Stop must be dropped")
	}
}
