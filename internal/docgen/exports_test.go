package docgen

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDistPath(t *testing.T) {
	tests := []struct{ in, want string }{
		{"src/place_rating/place_rating.ts", "lib/place_rating/place_rating.js"},
		{"src/index.ts", "lib/index.js"},
		{"other/file.ts", "other/file.js"},
	}

	for _, tt := range tests {
		if got := DistPath(tt.in); got != tt.want {
			t.Errorf("DistPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestExportIndexLookup(t *testing.T) {
	dir := t.TempDir()
	metaPath := filepath.Join(dir, "package.json")

	meta := `{
		"name": "@placeui/components",
		"exports": {
			".": "./lib/index.js",
			"./place_rating.js": "./lib/place_rating/place_rating.js"
		}
	}`
	if err := os.WriteFile(metaPath, []byte(meta), 0644); err != nil {
		t.Fatal(err)
	}

	idx := NewExportIndex(metaPath)

	specifier, ok := idx.Lookup("lib/place_rating/place_rating.js")
	if !ok {
		t.Fatal("expected export lookup to succeed")
	}
	if specifier != "@placeui/components/place_rating.js" {
		t.Errorf("unexpected specifier %q", specifier)
	}

	specifier, ok = idx.Lookup("lib/index.js")
	if !ok {
		t.Fatal("expected root export lookup to succeed")
	}
	if specifier != "@placeui/components" {
		t.Errorf("unexpected root specifier %q", specifier)
	}

	if _, ok := idx.Lookup("lib/unknown.js"); ok {
		t.Error("expected unknown dist path to miss")
	}
}

func TestExportIndexMissingFile(t *testing.T) {
	idx := NewExportIndex(filepath.Join(t.TempDir(), "missing.json"))
	if _, ok := idx.Lookup("lib/index.js"); ok {
		t.Error("missing metadata file should yield no matches")
	}
}
