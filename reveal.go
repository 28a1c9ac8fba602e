package kinetic

import (
	"github.com/tanema/gween/ease"
	"go.uber.org/zap"
)

// revealDistance is how far hidden content sits from its resting place.
const revealDistance = 50

// RevealConfig configures a Reveal.
type RevealConfig struct {
	// Delay before each transition starts, in seconds.
	Delay float64
	// Direction the content travels as it appears.
	Direction Direction
	// Duration of each transition, in seconds.
	Duration float64
	// Threshold is the visible fraction that reveals the content.
	Threshold float64
	// Once keeps the content revealed after the first time.
	Once bool
}

// DefaultRevealConfig returns an upward 0.5s reveal at 10% visibility, once.
func DefaultRevealConfig() RevealConfig {
	return RevealConfig{Direction: DirectionUp, Duration: 0.5, Threshold: 0.1, Once: true}
}

// hiddenOffset returns where content waits before appearing.
func (c RevealConfig) hiddenOffset() (x, y float64) {
	switch c.Direction {
	case DirectionDown:
		return 0, -revealDistance
	case DirectionLeft:
		return revealDistance, 0
	case DirectionRight:
		return -revealDistance, 0
	default:
		return 0, revealDistance
	}
}

// Reveal fades and slides an element into place the first time (or every
// time) it scrolls into view. The element's layout box is what gets
// observed, so the slide itself never affects visibility.
type Reveal struct {
	s       *Scene
	el      *Element
	cfg     RevealConfig
	tracker *InViewTracker
	anim    FrameHandle
}

// NewReveal hides el and reveals it when it comes into view. A nil element
// yields an inert Reveal that never reveals.
func NewReveal(s *Scene, el *Element, cfg RevealConfig) *Reveal {
	return newReveal(s, s.IntersectionSource(), el, cfg)
}

func newReveal(s *Scene, src IntersectionSource, el *Element, cfg RevealConfig) *Reveal {
	r := &Reveal{s: s, el: el, cfg: cfg}
	r.tracker = NewInViewTracker(src, InViewConfig{Amount: cfg.Threshold, Once: cfg.Once})
	if el == nil {
		return r
	}

	hx, hy := cfg.hiddenOffset()
	el.SetOffset(hx, hy)
	el.SetAlpha(0)

	r.tracker.Subscribe(r.transition)
	r.tracker.Attach(el)
	el.OnDispose(r.Stop)
	return r
}

func (r *Reveal) transition(visible bool) {
	r.anim.Stop()
	toX, toY, toAlpha := 0.0, 0.0, 1.0
	if !visible {
		toX, toY = r.cfg.hiddenOffset()
		toAlpha = 0
	}
	dur := float32(max(r.cfg.Duration, 0.001))
	g := TweenReveal(r.el, toX, toY, toAlpha, dur, ease.OutCubic).WithDelay(r.cfg.Delay)
	r.anim = r.s.Animate(g)
	r.s.Logger().Debug("reveal transition",
		zap.String("element", r.el.Name), zap.Bool("visible", visible))
}

// Revealed reports the current revealed signal.
func (r *Reveal) Revealed() bool {
	return r.tracker.Revealed()
}

// Animating reports whether a transition is running.
func (r *Reveal) Animating() bool {
	return r.anim.Active()
}

// Tracker exposes the underlying intersection tracker.
func (r *Reveal) Tracker() *InViewTracker {
	return r.tracker
}

// Stop detaches the observer and halts any running transition.
func (r *Reveal) Stop() {
	r.tracker.Detach()
	r.anim.Stop()
}
