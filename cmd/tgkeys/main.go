package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"tgkeys/internal/app"
	logx "tgkeys/pkg/logx"
)

func main() {
	var (
		cfgPath  string
		watch    bool
		logLevel string
	)
	flag.StringVar(&cfgPath, "config", "", "path to keyboards config (json or yaml); empty prints the built-in demo")
	flag.BoolVar(&watch, "watch", false, "re-render when the config file changes")
	flag.StringVar(&logLevel, "log-level", "", "override logging.level (debug, info, warn, error)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	a, err := app.New(ctx, app.Options{ConfigPath: cfgPath, LogLevel: logLevel})
	if err != nil {
		fmt.Fprintln(logx.Stderr(), "fatal:", err)
		os.Exit(1)
	}
	defer a.Close()

	if err := a.Run(ctx, logx.Stdout(), watch); err != nil {
		a.Logger().Error("run failed", logx.Err(err))
		_ = a.Close()
		os.Exit(1)
	}
}
