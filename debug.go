package roomkit

import (
	"fmt"
	"log/slog"
	"time"
)

// debugStats holds per-frame timing metrics.
// Only populated when Scene.debug is true.
type debugStats struct {
	traverseTime time.Duration
	submitTime   time.Duration
	commandCount int
}

// debugLog reports timing and command stats at debug level.
func (s *Scene) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	s.logger.Debug("frame",
		"traverse", stats.traverseTime,
		"submit", stats.submitTime,
		"total", stats.traverseTime+stats.submitTime,
		"commands", stats.commandCount,
		"timers", len(s.timers),
	)
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("roomkit debug: %s on disposed node %q (ID was %d)", op, n.Name, n.ID))
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
