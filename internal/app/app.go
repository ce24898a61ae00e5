package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"tgkeys/internal/config"
	logx "tgkeys/pkg/logx"
)

// Options configures an App.
type Options struct {
	// ConfigPath is a JSON or YAML file. Empty uses config.Default().
	ConfigPath string
	// LogLevel overrides logging.level from the config when set.
	LogLevel string
	// LogOut receives console logs. Defaults to logx.Stderr().
	LogOut io.Writer
}

// App renders the configured keyboards and optionally follows config changes.
type App struct {
	opts Options
	cfgm *config.Manager

	mu  sync.Mutex
	cfg *config.Config

	logs *logx.Service
	log  logx.Logger
}

func New(ctx context.Context, opts Options) (*App, error) {
	if opts.LogOut == nil {
		opts.LogOut = logx.Stderr()
	}

	a := &App{opts: opts}
	if strings.TrimSpace(opts.ConfigPath) == "" {
		a.cfg = config.Default()
	} else {
		a.cfgm = config.NewManager(opts.ConfigPath)
		cfg, err := a.cfgm.Load(ctx)
		if err != nil {
			return nil, err
		}
		a.cfg = cfg
	}

	a.logs, a.log = logx.NewTo(opts.LogOut, a.logConfig(a.cfg))
	if a.cfgm != nil {
		a.cfgm.SetLogger(a.log.With(logx.String("comp", "config")))
	}
	return a, nil
}

func (a *App) logConfig(cfg *config.Config) logx.Config {
	lc := logx.Config{
		Level:   cfg.Logging.Level,
		Console: cfg.Logging.Console,
		File: logx.FileConfig{
			Enabled: cfg.Logging.File.Enabled,
			Path:    cfg.Logging.File.Path,
		},
	}
	if strings.TrimSpace(a.opts.LogLevel) != "" {
		lc.Level = a.opts.LogLevel
	}
	return lc
}

func (a *App) Logger() logx.Logger { return a.log }

func (a *App) Config() *config.Config {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.cfg
}

func (a *App) Close() error { return a.logs.Close() }

// Render builds every configured keyboard and prints it to w under a
// "== name (kind) ==" heading. A keyboard that fails to build is logged and
// skipped; the first such error is returned after all keyboards are tried.
func (a *App) Render(w io.Writer) error {
	cfg := a.Config()
	var first error
	for _, kc := range cfg.Keyboards {
		kb, err := BuildKeyboard(kc, a.log)
		if err != nil {
			a.log.Error("keyboard build failed", logx.String("keyboard", kc.Name), logx.Err(err))
			if first == nil {
				first = err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, "== %s (%s) ==\n", kc.Name, kb.Kind()); err != nil {
			return err
		}
		if err := kb.Print(w); err != nil {
			return err
		}
		if a.log.Enabled(logx.LevelDebug) {
			rm := kb.Markup()
			a.log.Debug("telegram markup prepared",
				logx.String("keyboard", kc.Name),
				logx.Int("inline_rows", len(rm.InlineKeyboard)),
				logx.Int("reply_rows", len(rm.ReplyKeyboard)),
			)
		}
	}
	return first
}

// Run renders once. With watch set (and a config file in use), it keeps
// re-rendering on every accepted config change until ctx is done.
func (a *App) Run(ctx context.Context, w io.Writer, watch bool) error {
	if err := a.Render(w); err != nil {
		return err
	}
	if !watch {
		return nil
	}
	if a.cfgm == nil {
		return errors.New("watch requires a config file")
	}

	sub := a.cfgm.Subscribe(1)
	defer a.cfgm.Unsubscribe(sub)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = a.cfgm.Watch(ctx)
	}()
	defer wg.Wait()

	a.log.Info("watching config", logx.String("path", a.cfgm.Path()))
	for {
		select {
		case <-ctx.Done():
			return nil
		case cfg := <-sub:
			a.apply(cfg)
			if err := a.Render(w); err != nil {
				a.log.Warn("render after reload failed", logx.Err(err))
			}
		}
	}
}

func (a *App) apply(cfg *config.Config) {
	a.mu.Lock()
	old := a.cfg
	a.cfg = cfg
	a.mu.Unlock()

	changed, attrs, _ := config.SummarizeConfigChange(old, cfg)
	for _, c := range changed {
		if c == "logging" {
			a.logs.Apply(a.logConfig(cfg))
		}
	}
	a.log.Info("config reloaded", append(attrs, logx.Any("changed", changed))...)
}
