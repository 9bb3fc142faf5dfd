package watcher

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML decodes the watch section, accepting human-readable
// durations ("300ms", "2s"). Keys absent from the document keep whatever
// the receiver already holds, so decoding over DefaultConfig preserves
// defaults.
func (c *Config) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		DebounceWindow *string  `yaml:"debounce_window"`
		MaxBatchSize   *int     `yaml:"max_batch_size"`
		IgnorePatterns []string `yaml:"ignore_patterns"`
		WatchHidden    *bool    `yaml:"watch_hidden"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}

	if raw.DebounceWindow != nil {
		d, err := time.ParseDuration(*raw.DebounceWindow)
		if err != nil {
			return fmt.Errorf("invalid debounce_window: %w", err)
		}
		c.DebounceWindow = d
	}
	if raw.MaxBatchSize != nil {
		c.MaxBatchSize = *raw.MaxBatchSize
	}
	if raw.IgnorePatterns != nil {
		c.IgnorePatterns = raw.IgnorePatterns
	}
	if raw.WatchHidden != nil {
		c.WatchHidden = *raw.WatchHidden
	}

	return nil
}
