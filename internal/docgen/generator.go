// Package docgen generates cross-linked Markdown reference documents from a
// custom-elements manifest. One Generate call is one full pass: read the
// manifest, filter to documentable declarations, group modules into
// destination documents, render each declaration, accumulate inventory
// tables and write everything out.
package docgen

import (
	"fmt"
	"log/slog"
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/placeui/elemdoc/internal/config"
	"github.com/placeui/elemdoc/internal/logger"
	"github.com/placeui/elemdoc/internal/manifest"
)

type Generator struct {
	cfg    *config.Config
	log    *slog.Logger
	writer *Writer
}

func New(cfg *config.Config) *Generator {
	return &Generator{
		cfg:    cfg,
		log:    logger.ForComponent("generator"),
		writer: NewWriter(cfg),
	}
}

// Generate runs one full generation pass. The export index is rebuilt per
// pass so watch-mode regeneration picks up package metadata changes.
func (g *Generator) Generate() error {
	pkg, err := manifest.Load(g.cfg.ManifestPath)
	if err != nil {
		return err
	}

	g.log.Info("loaded manifest", "path", g.cfg.ManifestPath, "modules", len(pkg.Modules))

	renderer := NewRenderer(g.cfg.RootDir, NewExportIndex(g.cfg.PackageMetaPath))
	docs := newDocumentSet()
	inv := NewInventory(g.cfg.Locale)

	rootRel := g.cfg.OutputName
	groupRel := path.Join(sourceDirMarker, buildingBlocksDir, g.cfg.OutputName)

	rendered := 0
	for _, mod := range pkg.Modules {
		if g.excluded(mod.Path) {
			g.log.Debug("module excluded", "path", mod.Path)
			continue
		}

		destRel := DestinationPath(mod.Path, g.cfg.OutputName)
		for _, decl := range mod.Declarations {
			if !decl.Documentable() {
				continue
			}
			docs.get(destRel).Append(renderer.Declaration(decl, mod, 2))
			g.addInventoryRow(inv, decl, destRel, rootRel, groupRel)
			rendered++
		}
	}

	// The root and group documents exist even when nothing maps to them;
	// the root table always links to the group.
	root := docs.get(rootRel)
	group := docs.get(groupRel)

	inv.Root.Add(
		fmt.Sprintf("[%s](%s)", buildingBlocksTitle, relLink(rootRel, groupRel)),
		buildingBlocksBlurb)
	inv.Finalize()

	root.Inventory = "## Components\n\n" + inv.Root.Markdown()
	group.Inventory = "## Data provider\n\n" + inv.Provider.Markdown() +
		"\n## Details components\n\n" + inv.Details.Markdown()

	for _, doc := range docs.all() {
		if err := g.writer.Write(doc); err != nil {
			return err
		}
	}

	g.log.Info("generation complete", "declarations", rendered, "documents", len(docs.all()))
	return nil
}

func (g *Generator) excluded(modPath string) bool {
	for _, pattern := range g.cfg.ExcludePatterns {
		if match, _ := doublestar.Match(pattern, modPath); match {
			return true
		}
	}
	return false
}

// addInventoryRow routes one documentable declaration to its summary table:
// building-block declarations split between the provider table and the
// details table, everything else lands in the root table.
func (g *Generator) addInventoryRow(inv *Inventory, decl manifest.Declaration, destRel, rootRel, groupRel string) {
	display, ok := friendlyNames[decl.Name]
	if !ok {
		display = "`<" + decl.TagName + ">`"
	}

	table := &inv.Root
	from := rootRel
	if underBuildingBlocks(destRel, groupRel) {
		from = groupRel
		if decl.Name == providerClassName {
			table = &inv.Provider
		} else {
			table = &inv.Details
		}
	}

	linked := fmt.Sprintf("[%s](%s)", display, relLink(from, destRel))
	table.Add(linked, decl.Description)
}

func underBuildingBlocks(destRel, groupRel string) bool {
	groupDir := path.Dir(groupRel)
	destDir := path.Dir(destRel)
	return destDir == groupDir || strings.HasPrefix(destDir, groupDir+"/")
}

// DestinationPath maps a module source path to its destination document:
// the last path segment is dropped and the output filename appended, so
// "a/b/c.ts" documents into "a/b/README.md".
func DestinationPath(modPath, outputName string) string {
	return path.Join(path.Dir(modPath), outputName)
}

// relLink computes the relative link from one generated document to
// another, both given relative to the project root.
func relLink(fromRel, toRel string) string {
	rel, err := filepath.Rel(path.Dir(fromRel), toRel)
	if err != nil {
		return toRel
	}
	return filepath.ToSlash(rel)
}
