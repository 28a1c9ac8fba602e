package kinetic

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// debugStats holds per-frame timing and bookkeeping counts.
// Only populated when Scene.debug is true.
type debugStats struct {
	inputTime     time.Duration
	observeTime   time.Duration
	frameTime     time.Duration
	taskCount     int
	observerCount int
}

// debugLogger receives warnings from element operations, which have no
// Scene pointer. SetDebugMode points it at the scene logger.
var debugLogger = zap.NewNop()

// debugLog writes the frame's stats at debug level.
func (s *Scene) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	total := stats.inputTime + stats.observeTime + stats.frameTime
	s.logger.Debug("frame",
		zap.Uint64("frame", s.frameCount),
		zap.Duration("input", stats.inputTime),
		zap.Duration("observe", stats.observeTime),
		zap.Duration("tasks", stats.frameTime),
		zap.Duration("total", total),
		zap.Int("task_count", stats.taskCount),
		zap.Int("observer_count", stats.observerCount),
	)
}

// debugCheckDisposed panics with a descriptive message when a disposed
// element is used in a tree operation. Only called in debug mode.
func debugCheckDisposed(e *Element, op string) {
	if e.disposed {
		panic(fmt.Sprintf("kinetic debug: %s on disposed element %q", op, e.Name))
	}
}

// debugMaxTreeDepth is the depth past which debugCheckTreeDepth warns.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(e *Element) {
	depth := 0
	for p := e; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		debugLogger.Warn("tree depth exceeds threshold",
			zap.Int("depth", depth),
			zap.Int("threshold", debugMaxTreeDepth),
			zap.String("element", e.Name))
	}
}

// debugMaxChildCount is the child count past which debugCheckChildCount warns.
const debugMaxChildCount = 1000

func debugCheckChildCount(e *Element) {
	if len(e.children) > debugMaxChildCount {
		debugLogger.Warn("child count exceeds threshold",
			zap.Int("children", len(e.children)),
			zap.Int("threshold", debugMaxChildCount),
			zap.String("element", e.Name))
	}
}
