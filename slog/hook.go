package slog

import (
	"log/slog"

	"github.com/fwojciec/declutter"
)

// PhaseLogger returns a hook that logs every extraction phase at debug level.
func PhaseLogger(logger *slog.Logger) declutter.Hook {
	return func(ev declutter.PhaseEvent) {
		logger.Debug("extract phase",
			"phase", string(ev.Phase),
			"nodes", ev.Nodes,
			"score", ev.Score,
			"duration", ev.Duration,
		)
	}
}
