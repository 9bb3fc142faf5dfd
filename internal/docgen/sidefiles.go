package docgen

import (
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Per-directory static side-files. Every one of them is optional; a missing
// file contributes empty text and is never an error.
const (
	sideFileDir    = "doc_src"
	headerFileName = "header.md"
	footerFileName = "footer.md"
)

func readSideFile(p string) string {
	data, err := os.ReadFile(p)
	if err != nil {
		return ""
	}
	return string(data)
}

// headerFor and footerFor load the static text wrapped around a generated
// document, from the doc_src directory next to it.
func headerFor(docDir string) string {
	return readSideFile(filepath.Join(docDir, sideFileDir, headerFileName))
}

func footerFor(docDir string) string {
	return readSideFile(filepath.Join(docDir, sideFileDir, footerFileName))
}

// examplesFor and apisFor load the per-module example and API/pricing notes
// from doc_src next to the module source, keyed by the source basename.
func examplesFor(rootDir, modPath string) string {
	return readSideFile(moduleSideFile(rootDir, modPath, "examples"))
}

func apisFor(rootDir, modPath string) string {
	return readSideFile(moduleSideFile(rootDir, modPath, "apis"))
}

func moduleSideFile(rootDir, modPath, kind string) string {
	dir := path.Dir(modPath)
	base := strings.TrimSuffix(path.Base(modPath), path.Ext(modPath))
	return filepath.Join(rootDir, filepath.FromSlash(dir), sideFileDir, base+"."+kind+".md")
}
