package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/placeui/elemdoc/internal/config"
	"github.com/placeui/elemdoc/internal/docgen"
	"github.com/placeui/elemdoc/internal/logger"
	"github.com/placeui/elemdoc/internal/watcher"
)

func main() {
	var (
		configPath  = flag.String("config", "", "path to a YAML config file")
		rootDir     = flag.String("root", "", "component library root directory")
		manifest    = flag.String("manifest", "", "path to the custom-elements manifest")
		packageMeta = flag.String("package", "", "path to the package metadata file")
		project     = flag.String("project", "", "project name for breadcrumbs")
		outputName  = flag.String("out", "", "per-directory output filename")
		locale      = flag.String("locale", "", "locale for inventory sorting")
		watch       = flag.Bool("watch", false, "regenerate when inputs change")
		dryRun      = flag.Bool("n", false, "render without writing any files")
		verbose     = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	applyFlag(&cfg.RootDir, *rootDir)
	applyFlag(&cfg.ManifestPath, *manifest)
	applyFlag(&cfg.PackageMetaPath, *packageMeta)
	applyFlag(&cfg.ProjectName, *project)
	applyFlag(&cfg.OutputName, *outputName)
	applyFlag(&cfg.Locale, *locale)
	cfg.DryRun = *dryRun

	logCfg := logger.DefaultConfig()
	logCfg.Level = logger.ParseLevel(cfg.LogLevel)
	if *verbose {
		logCfg.Level = logger.ParseLevel("debug")
	}
	logger.Init(logCfg)

	gen := docgen.New(cfg)
	if err := gen.Generate(); err != nil {
		fmt.Fprintf(os.Stderr, "Generation failed: %v\n", err)
		os.Exit(1)
	}

	if !*watch {
		return
	}

	if err := runWatch(cfg, gen); err != nil {
		fmt.Fprintf(os.Stderr, "Watch failed: %v\n", err)
		os.Exit(1)
	}
}

func applyFlag(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}

// runWatch regenerates on every relevant change batch until interrupted.
// Generated documents are excluded from watching so a write never re-triggers
// a pass.
func runWatch(cfg *config.Config, gen *docgen.Generator) error {
	watchCfg := cfg.Watch
	watchCfg.IgnorePatterns = append(watchCfg.IgnorePatterns, "**/"+cfg.OutputName)

	w, err := watcher.New(watchCfg, func(events []watcher.FileEvent) {
		if !relevant(cfg, events) {
			return
		}
		if err := gen.Generate(); err != nil {
			logger.Error("regeneration failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	if err := w.AddRoot(cfg.RootDir); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := w.Start(ctx); err != nil {
		return err
	}
	defer w.Stop()

	logger.Info("watching for changes", "root", cfg.RootDir)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig

	logger.Info("shutting down")
	return nil
}

// relevant reports whether a change batch touches generation inputs: the
// manifest, the package metadata or any doc_src side-file.
func relevant(cfg *config.Config, events []watcher.FileEvent) bool {
	manifestAbs := absPath(cfg.ManifestPath)
	metaAbs := absPath(cfg.PackageMetaPath)

	for _, event := range events {
		p := absPath(event.Path)
		if p == manifestAbs || p == metaAbs {
			return true
		}
		if strings.Contains(filepath.ToSlash(p), "/doc_src/") {
			return true
		}
	}
	return false
}

func absPath(p string) string {
	abs, err := filepath.Abs(p)
	if err != nil {
		return p
	}
	return abs
}
