package kinetic

type syntheticKind uint8

const (
	syntheticPointer syntheticKind = iota
	syntheticLeave
	syntheticWheel
)

// syntheticEvent represents a single injected input event. Screen
// coordinates are used and converted to page coordinates through the
// viewport, identical to real mouse input.
type syntheticEvent struct {
	kind             syntheticKind
	screenX, screenY float64
	pressed          bool
	dx, dy           float64
}

// InjectMove queues a pointer move to the given screen coordinates with the
// button up. The event is consumed on the next frame.
func (s *Scene) InjectMove(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{kind: syntheticPointer, screenX: x, screenY: y})
}

// InjectPress queues a button press at the given screen coordinates.
func (s *Scene) InjectPress(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{kind: syntheticPointer, screenX: x, screenY: y, pressed: true})
}

// InjectRelease queues a button release at the given screen coordinates.
func (s *Scene) InjectRelease(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{kind: syntheticPointer, screenX: x, screenY: y})
}

// InjectClick queues a press followed by a release at the same screen
// coordinates. Consumes two frames.
func (s *Scene) InjectClick(x, y float64) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// InjectLeave queues the pointer leaving the window.
func (s *Scene) InjectLeave() {
	s.injectQueue = append(s.injectQueue, syntheticEvent{kind: syntheticLeave})
}

// InjectScroll queues a wheel scroll of (dx, dy) page pixels.
func (s *Scene) InjectScroll(dx, dy float64) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{kind: syntheticWheel, dx: dx, dy: dy})
}

// InjectHover queues a linearly interpolated pointer path from (fromX, fromY)
// to (toX, toY) over the given number of frames (minimum 1).
func (s *Scene) InjectHover(fromX, fromY, toX, toY float64, frames int) {
	if frames < 1 {
		frames = 1
	}
	for i := 0; i < frames; i++ {
		t := 1.0
		if frames > 1 {
			t = float64(i) / float64(frames-1)
		}
		s.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
}

// PendingInput returns the number of queued synthetic events.
func (s *Scene) PendingInput() int {
	return len(s.injectQueue)
}

// processInjectedInput pops one event from the queue and applies it.
// Returns true if an event was consumed (device input is skipped).
func (s *Scene) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	switch evt.kind {
	case syntheticWheel:
		s.wheel(evt.dx, evt.dy)
		if s.pointer.inside {
			s.processPointer(s.pointer.lastSX, s.pointer.lastSY, s.pointer.down, true)
		}
	case syntheticLeave:
		s.processPointer(s.pointer.lastSX, s.pointer.lastSY, false, false)
	default:
		s.processPointer(evt.screenX, evt.screenY, evt.pressed, true)
	}
	return true
}
