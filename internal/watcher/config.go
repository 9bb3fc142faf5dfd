package watcher

import "time"

type Config struct {
	DebounceWindow time.Duration `yaml:"debounce_window"`
	MaxBatchSize   int           `yaml:"max_batch_size"`
	IgnorePatterns []string      `yaml:"ignore_patterns"`
	WatchHidden    bool          `yaml:"watch_hidden"`
}

func DefaultConfig() Config {
	return Config{
		DebounceWindow: 300 * time.Millisecond,
		MaxBatchSize:   100,
		IgnorePatterns: []string{
			"**/node_modules/**",
			"**/.git/**",
			"**/dist/**",
			"**/build/**",
		},
		WatchHidden: false,
	}
}
