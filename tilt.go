package kinetic

// DefaultTiltIntensity is the maximum rotation in degrees at an element edge.
const DefaultTiltIntensity = 10

// TiltState is the pointer-driven rotation and glare of an element.
type TiltState struct {
	// RotateX and RotateY are degrees, within [-intensity, intensity] while
	// the pointer is inside the element.
	RotateX, RotateY float64
	// GlareX and GlareY locate the glare as a percentage of the element's
	// width and height from its top-left corner.
	GlareX, GlareY float64
}

// ComputeTilt maps a pointer position (page coordinates) over bounds to a
// tilt. RotateY grows as the pointer moves right of center; RotateX grows as
// it moves above center, so the top edge comes toward the viewer. An empty
// box yields the neutral state.
func ComputeTilt(px, py float64, bounds Rect, intensity float64) TiltState {
	if bounds.Width <= 0 || bounds.Height <= 0 {
		return TiltState{}
	}
	cx, cy := bounds.Center()
	halfW := bounds.Width / 2
	halfH := bounds.Height / 2
	return TiltState{
		RotateY: (px - cx) / halfW * intensity,
		RotateX: -((py - cy) / halfH) * intensity,
		GlareX:  (px - bounds.X) / bounds.Width * 100,
		GlareY:  (py - bounds.Y) / bounds.Height * 100,
	}
}

// TiltTracker follows pointer events and exposes the current target tilt.
// Rotation returns to neutral on leave; glare position is kept so a fading
// glare does not jump.
type TiltTracker struct {
	src       PointerSource
	intensity float64
	state     TiltState
	hovered   bool
	subs      []func(TiltState, bool)
	observed  bool
	stopped   bool
}

// NewTiltTracker creates a tracker with the given intensity in degrees.
func NewTiltTracker(src PointerSource, intensity float64) *TiltTracker {
	return &TiltTracker{src: src, intensity: intensity}
}

// Attach starts following pointer events over el. Nil is ignored.
func (t *TiltTracker) Attach(el *Element) {
	if el == nil || t.src == nil || t.observed || t.stopped {
		return
	}
	t.observed = true
	t.src.Start(el, t.observe)
}

// Detach stops following pointer events and resets rotation.
func (t *TiltTracker) Detach() {
	if t.stopped {
		return
	}
	t.stopped = true
	if t.observed && t.src != nil {
		t.src.Stop()
	}
	t.hovered = false
	t.state.RotateX, t.state.RotateY = 0, 0
}

// State returns the current target tilt.
func (t *TiltTracker) State() TiltState {
	return t.state
}

// Hovered reports whether the pointer is over the element.
func (t *TiltTracker) Hovered() bool {
	return t.hovered
}

// Subscribe registers fn to be called with the tilt and hover flag after
// each pointer event.
func (t *TiltTracker) Subscribe(fn func(state TiltState, hovered bool)) {
	if fn != nil {
		t.subs = append(t.subs, fn)
	}
}

func (t *TiltTracker) observe(e PointerEvent) {
	switch e.Type {
	case EventPointerEnter, EventPointerMove:
		t.hovered = true
		t.state = ComputeTilt(e.X, e.Y, e.Bounds, t.intensity)
	case EventPointerLeave:
		t.hovered = false
		t.state.RotateX, t.state.RotateY = 0, 0
	default:
		return
	}
	for _, fn := range t.subs {
		fn(t.state, t.hovered)
	}
}
