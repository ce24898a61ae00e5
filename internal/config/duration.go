package config

import (
	"fmt"
	"strings"
	"time"
)

// DefaultDebounce is how long Watch waits after the last file event.
const DefaultDebounce = 250 * time.Millisecond

func ParseDurationField(path, raw string) (time.Duration, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q: %w", path, raw, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%s: duration must be >= 0", path)
	}
	return d, nil
}

func ParseDurationOrDefault(path, raw string, def time.Duration) (time.Duration, error) {
	d, err := ParseDurationField(path, raw)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return def, nil
	}
	return d, nil
}

// DebounceOf returns the configured watch debounce, or DefaultDebounce.
func DebounceOf(cfg *Config) time.Duration {
	if cfg == nil {
		return DefaultDebounce
	}
	d, err := ParseDurationOrDefault("watch.debounce", cfg.Watch.Debounce, DefaultDebounce)
	if err != nil {
		return DefaultDebounce
	}
	return d
}
