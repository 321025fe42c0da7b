package logging

import (
	"log/slog"

	"github.com/ormanli/interest-te/internal/app/interest"
)

// Setup setups logger configuration.
func Setup(cfg interest.Config) {
	if cfg.InitDebug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
		slog.Debug("Initializing debug level logging")
	}
}
