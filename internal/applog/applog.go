// Package applog initialises the global slog logger for the application.
// Call Init once at startup; all other packages use log/slog directly.
package applog

import (
	"log/slog"
	"os"
	"sync/atomic"
)

var debugMode atomic.Bool

// Init sets up the global slog logger, writing structured text logs to
// stdout. If debug is true, or CATAN_TRACKER_DEBUG is set, the minimum log
// level is Debug; otherwise Info.
func Init(debug bool) {
	if os.Getenv("CATAN_TRACKER_DEBUG") != "" {
		debug = true
	}
	debugMode.Store(debug)

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	h := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(h))
}

// IsDebug reports whether debug mode is active.
func IsDebug() bool {
	return debugMode.Load()
}
