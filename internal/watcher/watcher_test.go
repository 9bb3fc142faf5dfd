package watcher

import (
	"testing"

	"github.com/fsnotify/fsnotify"
)

func TestShouldIgnore(t *testing.T) {
	w := &Watcher{config: Config{
		IgnorePatterns: []string{"**/node_modules/**", "**/README.md"},
	}}

	tests := []struct {
		path string
		want bool
	}{
		{"src/x_foo/x_foo.ts", false},
		{"src/node_modules/dep/index.js", true},
		{"src/x_foo/README.md", true},
		{"src/.cache", true},
	}

	for _, tt := range tests {
		if got := w.shouldIgnore(tt.path); got != tt.want {
			t.Errorf("shouldIgnore(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestShouldIgnoreHiddenAllowed(t *testing.T) {
	w := &Watcher{config: Config{WatchHidden: true}}
	if w.shouldIgnore("src/.cache") {
		t.Error("hidden paths must be watchable when WatchHidden is set")
	}
}

func TestConvertEvent(t *testing.T) {
	w := &Watcher{config: Config{}}

	tests := []struct {
		op   fsnotify.Op
		want EventType
	}{
		{fsnotify.Create, EventCreate},
		{fsnotify.Write, EventModify},
		{fsnotify.Remove, EventDelete},
		{fsnotify.Rename, EventRename},
	}

	for _, tt := range tests {
		got := w.convertEvent(fsnotify.Event{Name: "doc_src/header.md", Op: tt.op})
		if got == nil {
			t.Fatalf("convertEvent(%v) = nil", tt.op)
		}
		if got.Type != tt.want {
			t.Errorf("convertEvent(%v) = %v, want %v", tt.op, got.Type, tt.want)
		}
	}

	if got := w.convertEvent(fsnotify.Event{Name: "x", Op: fsnotify.Chmod}); got != nil {
		t.Errorf("chmod-only events must be dropped, got %v", got)
	}
}
