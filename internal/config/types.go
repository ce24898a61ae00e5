package config

// Config is the on-disk description of the keyboards to render.
//
// Example (YAML):
//
//	logging: { level: info, console: true }
//	keyboards:
//	  - name: default
//	    kind: reply
//	    rows:
//	      - [First Button, Second Button]
//	      - [Third Button, Fourth Button]
type Config struct {
	Logging   LoggingConfig    `json:"logging"`
	Watch     WatchConfig      `json:"watch,omitempty"`
	Keyboards []KeyboardConfig `json:"keyboards"`
}

type LoggingConfig struct {
	Level   string      `json:"level"`
	Console bool        `json:"console"`
	File    LoggingFile `json:"file"`
}

type LoggingFile struct {
	Enabled bool   `json:"enabled"`
	Path    string `json:"path"`
}

// WatchConfig controls config hot reload.
type WatchConfig struct {
	// Debounce is a Go duration string (e.g. "250ms"). Empty uses the default.
	Debounce string `json:"debounce,omitempty"`
}

// KeyboardConfig describes one keyboard.
//
// Rows are committed one by one. Pending is added after the last row without
// a line break, so it is dropped unless auto_commit is set.
type KeyboardConfig struct {
	Name       string     `json:"name"`
	Kind       string     `json:"kind"` // "inline" or "reply"
	AutoCommit bool       `json:"auto_commit,omitempty"`
	Rows       [][]string `json:"rows"`
	Pending    []string   `json:"pending,omitempty"`
}

const (
	KindInline = "inline"
	KindReply  = "reply"
)

// Default returns the two demo keyboards used when no config file is given.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{Level: "info", Console: true},
		Keyboards: []KeyboardConfig{
			{
				Name: "default",
				Kind: KindReply,
				Rows: [][]string{
					{"First Button", "Second Button"},
					{"Third Button", "Fourth Button"},
				},
			},
			{
				Name: "inline",
				Kind: KindInline,
				Rows: [][]string{
					{"Hello", "Test"},
					{"World", "Test", "Test", "Test"},
				},
			},
		},
	}
}
