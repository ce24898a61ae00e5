package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks keyboard names, kinds and labels.
// Every problem is reported with its field path; errors are joined.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New("config is nil")
	}
	var errs []error
	seen := make(map[string]int, len(cfg.Keyboards))
	for i, kc := range cfg.Keyboards {
		path := fmt.Sprintf("keyboards[%d]", i)
		name := strings.TrimSpace(kc.Name)
		switch {
		case name == "":
			errs = append(errs, fmt.Errorf("%s.name: must not be empty", path))
		default:
			if j, dup := seen[name]; dup {
				errs = append(errs, fmt.Errorf("%s.name: %q already used by keyboards[%d]", path, name, j))
			} else {
				seen[name] = i
			}
		}
		switch strings.ToLower(strings.TrimSpace(kc.Kind)) {
		case KindInline, KindReply:
		default:
			errs = append(errs, fmt.Errorf("%s.kind: %q is not %q or %q", path, kc.Kind, KindInline, KindReply))
		}
		for r, row := range kc.Rows {
			for c, label := range row {
				if strings.TrimSpace(label) == "" {
					errs = append(errs, fmt.Errorf("%s.rows[%d][%d]: empty label", path, r, c))
				}
			}
		}
		for c, label := range kc.Pending {
			if strings.TrimSpace(label) == "" {
				errs = append(errs, fmt.Errorf("%s.pending[%d]: empty label", path, c))
			}
		}
	}
	if _, err := ParseDurationField("watch.debounce", cfg.Watch.Debounce); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
