package manifest

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom-elements.json")

	data := `{
		"schemaVersion": "1.0.0",
		"modules": [
			{
				"kind": "javascript-module",
				"path": "src/place_rating/place_rating.ts",
				"declarations": [
					{
						"kind": "class",
						"name": "PlaceRating",
						"tagName": "place-rating",
						"customElement": true,
						"description": "Renders a star rating.",
						"members": [
							{"kind": "field", "name": "place", "type": {"text": "Place"}},
							{"kind": "method", "name": "refresh"}
						]
					}
				]
			}
		]
	}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	pkg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if len(pkg.Modules) != 1 {
		t.Fatalf("expected 1 module, got %d", len(pkg.Modules))
	}
	if pkg.Modules[0].Path != "src/place_rating/place_rating.ts" {
		t.Errorf("unexpected module path %q", pkg.Modules[0].Path)
	}

	decl := pkg.Modules[0].Declarations[0]
	if decl.Name != "PlaceRating" {
		t.Errorf("unexpected declaration name %q", decl.Name)
	}
	if len(decl.PublicFields()) != 1 {
		t.Errorf("expected 1 public field, got %d", len(decl.PublicFields()))
	}
	if len(decl.PublicMethods()) != 1 {
		t.Errorf("expected 1 public method, got %d", len(decl.PublicMethods()))
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing manifest")
	}
}

func TestLoadMalformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed manifest")
	}
}

func TestPermissiveAccessors(t *testing.T) {
	var m Member
	if m.TypeText() != "" {
		t.Errorf("expected empty type text, got %q", m.TypeText())
	}
	if m.ReturnTypeText() != "" {
		t.Errorf("expected empty return type, got %q", m.ReturnTypeText())
	}
	if !m.Public() {
		t.Error("member without privacy marker should be public")
	}

	m.Privacy = "protected"
	if m.Public() {
		t.Error("member with privacy marker should not be public")
	}

	var d Declaration
	if d.SuperclassName() != "" {
		t.Errorf("expected empty superclass, got %q", d.SuperclassName())
	}
	if len(d.PublicFields()) != 0 || len(d.PublicMethods()) != 0 {
		t.Error("zero-value declaration should have no members")
	}
}
