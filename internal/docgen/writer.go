package docgen

import (
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/placeui/elemdoc/internal/config"
	"github.com/placeui/elemdoc/internal/logger"
)

// Writer persists assembled documents: breadcrumb trail, optional static
// header, inventory section, generated body, optional static footer. Writes
// are whole-file overwrites; the first failure aborts the run.
type Writer struct {
	cfg *config.Config
	log *slog.Logger
}

func NewWriter(cfg *config.Config) *Writer {
	return &Writer{cfg: cfg, log: logger.ForComponent("writer")}
}

func (w *Writer) Write(doc *Document) error {
	dir := filepath.Join(w.cfg.RootDir, filepath.FromSlash(path.Dir(doc.Rel)))

	var out strings.Builder
	out.WriteString(Breadcrumbs(w.cfg.ProjectName, doc.Rel, w.cfg.OutputName))

	if header := headerFor(dir); header != "" {
		out.WriteString(strings.TrimRight(header, "\n") + "\n\n")
	}
	if doc.Inventory != "" {
		out.WriteString(doc.Inventory)
		out.WriteString("\n")
	}
	out.WriteString(doc.Body())
	if footer := footerFor(dir); footer != "" {
		out.WriteString(strings.TrimRight(footer, "\n") + "\n\n")
	}

	content := strings.TrimRight(out.String(), "\n") + "\n"
	target := filepath.Join(dir, w.cfg.OutputName)

	if w.cfg.DryRun {
		w.log.Info("dry run, skipping write", "path", target, "bytes", len(content))
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}
	if err := os.WriteFile(target, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", target, err)
	}

	w.log.Debug("wrote document", "path", target, "bytes", len(content))
	return nil
}
