package main

import (
	"flag"
	"log/slog"

	"github.com/soocke/streamtrack-go/app"
	"github.com/soocke/streamtrack-go/config"
)

func main() {
	cfgPath := flag.String("config", "streamtrack.json", "path to the JSON config file")
	debugFlag := flag.Bool("debug", false, "enable debug logging and runtime metrics")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if *debugFlag {
		cfg.Debug = true
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := NewLogger(level)
	if err != nil {
		logger.Warn("config problem; continuing with corrected values", "path", *cfgPath, "error", err)
	}

	application := app.NewApp("Stream Tracker", cfg.ViewWidth, cfg.ViewHeight, cfg, *cfgPath, logger)
	application.Start()
}
