package config

import (
	"reflect"
	"strings"

	logx "tgkeys/pkg/logx"
)

// SummarizeConfigChange returns (1) a compact list of changed sections,
// (2) structured attrs for logging, and (3) the names of keyboards that were
// added, removed or changed.
func SummarizeConfigChange(oldCfg, newCfg *Config) ([]string, []logx.Field, []string) {
	if oldCfg == nil {
		oldCfg = &Config{}
	}
	if newCfg == nil {
		newCfg = &Config{}
	}

	changed := make([]string, 0, 3)
	attrs := make([]logx.Field, 0, 8)

	if oldCfg.Logging.Level != newCfg.Logging.Level ||
		oldCfg.Logging.Console != newCfg.Logging.Console ||
		oldCfg.Logging.File.Enabled != newCfg.Logging.File.Enabled ||
		strings.TrimSpace(oldCfg.Logging.File.Path) != strings.TrimSpace(newCfg.Logging.File.Path) {
		changed = append(changed, "logging")
		attrs = append(attrs,
			logx.String("logging.level", newCfg.Logging.Level),
			logx.Bool("logging.console", newCfg.Logging.Console),
			logx.Bool("logging.file_enabled", newCfg.Logging.File.Enabled),
		)
	}

	if strings.TrimSpace(oldCfg.Watch.Debounce) != strings.TrimSpace(newCfg.Watch.Debounce) {
		changed = append(changed, "watch")
		attrs = append(attrs, logx.String("watch.debounce", strings.TrimSpace(newCfg.Watch.Debounce)))
	}

	oldKb := make(map[string]KeyboardConfig, len(oldCfg.Keyboards))
	for _, kc := range oldCfg.Keyboards {
		oldKb[kc.Name] = kc
	}
	var kbChanged []string
	for _, kc := range newCfg.Keyboards {
		prev, ok := oldKb[kc.Name]
		delete(oldKb, kc.Name)
		if !ok || !reflect.DeepEqual(prev, kc) {
			kbChanged = append(kbChanged, kc.Name)
		}
	}
	// Removed keyboards, in their old order.
	for _, kc := range oldCfg.Keyboards {
		if _, gone := oldKb[kc.Name]; gone {
			kbChanged = append(kbChanged, kc.Name)
		}
	}
	if len(kbChanged) > 0 {
		changed = append(changed, "keyboards")
		attrs = append(attrs,
			logx.Int("keyboards.count", len(newCfg.Keyboards)),
			logx.Any("keyboards.changed", kbChanged),
		)
	}

	return changed, attrs, kbChanged
}
