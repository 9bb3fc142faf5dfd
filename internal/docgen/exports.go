package docgen

import (
	"encoding/json"
	"os"
	"path"
	"strings"
)

// PackageMeta is the slice of package metadata the generator cares about:
// the published package name and its export map.
type PackageMeta struct {
	Name    string            `json:"name"`
	Exports map[string]string `json:"exports"`
}

// ExportIndex resolves a module's distribution path to the import specifier
// users would write. The package metadata file is read lazily on the first
// lookup and cached for the remainder of the run; a missing or malformed
// file simply yields no matches, which suppresses the Importing section.
type ExportIndex struct {
	metaPath string
	loaded   bool
	name     string
	byDist   map[string]string
}

func NewExportIndex(metaPath string) *ExportIndex {
	return &ExportIndex{metaPath: metaPath}
}

// Lookup returns the import specifier for a distribution path such as
// "lib/place_rating/place_rating.js".
func (e *ExportIndex) Lookup(distPath string) (string, bool) {
	if !e.loaded {
		e.load()
	}

	alias, ok := e.byDist[distPath]
	if !ok {
		return "", false
	}

	if alias == "." {
		return e.name, true
	}
	return e.name + "/" + strings.TrimPrefix(alias, "./"), true
}

func (e *ExportIndex) load() {
	e.loaded = true
	e.byDist = make(map[string]string)

	data, err := os.ReadFile(e.metaPath)
	if err != nil {
		return
	}

	var meta PackageMeta
	if err := json.Unmarshal(data, &meta); err != nil {
		return
	}

	e.name = meta.Name
	for alias, target := range meta.Exports {
		e.byDist[strings.TrimPrefix(target, "./")] = alias
	}
}

// DistPath maps a manifest source path to the path it is published under:
// the leading source directory becomes the distribution directory and the
// TypeScript extension becomes JavaScript.
func DistPath(modPath string) string {
	p := path.Clean(modPath)
	if strings.HasPrefix(p, "src/") {
		p = "lib/" + strings.TrimPrefix(p, "src/")
	}
	if strings.HasSuffix(p, ".ts") {
		p = strings.TrimSuffix(p, ".ts") + ".js"
	}
	return p
}
