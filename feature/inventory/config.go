package inventory

import "time"

// Config holds the ingestion settings.
type Config struct {
	// Dedup skips records whose id (or name) is already stored.
	Dedup bool `mapstructure:"dedup" default:"false"`
	// ParseWorkers bounds how many files of one batch are decoded at once.
	ParseWorkers int `mapstructure:"parse_workers" default:"4"`
	// WatchDir is a folder whose new export files are ingested automatically. Empty disables it.
	WatchDir string `mapstructure:"watch_dir" default:""`
	// WatchDebounceMS is how long a file must stay quiet before it is ingested.
	WatchDebounceMS int `mapstructure:"watch_debounce_ms" default:"500"`
}

// WatchDebounce returns the debounce window as a duration.
func (c Config) WatchDebounce() time.Duration {
	if c.WatchDebounceMS <= 0 {
		return 500 * time.Millisecond
	}
	return time.Duration(c.WatchDebounceMS) * time.Millisecond
}

func (c Config) workers() int {
	if c.ParseWorkers <= 0 {
		return 1
	}
	return c.ParseWorkers
}
