package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/placeui/elemdoc/internal/watcher"
)

type Config struct {
	// ProjectName is the label used for the root breadcrumb crumb.
	ProjectName string `yaml:"project_name"`

	// RootDir is the component library checkout the documents are written
	// into. Module paths in the manifest are relative to it.
	RootDir string `yaml:"root_dir"`

	// ManifestPath locates the custom-elements manifest.
	ManifestPath string `yaml:"manifest"`

	// PackageMetaPath locates the package metadata used for import
	// snippets ({name, exports}).
	PackageMetaPath string `yaml:"package_meta"`

	// OutputName is the per-directory document filename.
	OutputName string `yaml:"output_name"`

	// Locale selects the collation used to sort inventory tables.
	Locale string `yaml:"locale"`

	// ExcludePatterns drops whole modules from generation when their
	// manifest path matches (doublestar syntax).
	ExcludePatterns []string `yaml:"exclude_patterns"`

	LogLevel string `yaml:"log_level"`

	Watch watcher.Config `yaml:"watch"`

	// DryRun renders and logs but never writes. Set from the CLI only.
	DryRun bool `yaml:"-"`
}

func Default() *Config {
	return &Config{
		ProjectName:     "PlaceUI Components",
		RootDir:         ".",
		ManifestPath:    "custom-elements.json",
		PackageMetaPath: "package.json",
		OutputName:      "README.md",
		Locale:          "en",
		LogLevel:        "info",
		Watch:           watcher.DefaultConfig(),
	}
}

// Load returns the defaults overlaid with the YAML file at path. An empty
// path returns the defaults unchanged; a missing file is an error so that a
// mistyped -config flag does not silently generate with defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return cfg, nil
}
