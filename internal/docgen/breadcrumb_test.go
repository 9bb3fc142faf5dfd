package docgen

import "testing"

func TestBreadcrumbs(t *testing.T) {
	tests := []struct {
		name    string
		relPath string
		want    string
	}{
		{
			name:    "root document",
			relPath: "README.md",
			want:    "[PlaceUI Components](README.md)\n\n",
		},
		{
			name:    "directly under source marker",
			relPath: "src/README.md",
			want:    "[PlaceUI Components](../README.md)\n\n",
		},
		{
			name:    "component directory",
			relPath: "src/place_picker/README.md",
			want:    "[PlaceUI Components](../../README.md) » [Place picker](README.md)\n\n",
		},
		{
			name:    "nested group",
			relPath: "src/place_building_blocks/place_rating/README.md",
			want:    "[PlaceUI Components](../../../README.md) » [Place building blocks](../README.md) » [Place rating](README.md)\n\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Breadcrumbs("PlaceUI Components", tt.relPath, "README.md")
			if got != tt.want {
				t.Errorf("Breadcrumbs(%q) = %q, want %q", tt.relPath, got, tt.want)
			}
		})
	}
}

func TestCrumbLabel(t *testing.T) {
	tests := []struct{ in, want string }{
		{"place_building_blocks", "Place building blocks"},
		{"icon-button", "Icon button"},
		{"api", "Api"},
	}

	for _, tt := range tests {
		if got := crumbLabel(tt.in); got != tt.want {
			t.Errorf("crumbLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
