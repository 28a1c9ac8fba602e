package kinetic

import (
	"math"

	"github.com/tanema/gween/ease"
)

const (
	glareFade   = 0.3
	shadowAlpha = 0.1
)

// TiltConfig configures a TiltCard.
type TiltConfig struct {
	Intensity  float64
	ShowBorder bool
	ShowShadow bool
	ShowGlare  bool
}

// DefaultTiltConfig returns intensity 10 with shadow and glare.
func DefaultTiltConfig() TiltConfig {
	return TiltConfig{Intensity: DefaultTiltIntensity, ShowShadow: true, ShowGlare: true}
}

// TiltCard rotates an element toward the pointer in pseudo-3D, with a shadow
// that deepens with the tilt and a glare that follows the pointer. Rotation
// springs back to flat when the pointer leaves.
type TiltCard struct {
	s       *Scene
	el      *Element
	cfg     TiltConfig
	tracker *TiltTracker
	rotX    *Spring
	rotY    *Spring
	hovered bool
	fade    FrameHandle
	frame   FrameHandle
}

// NewTiltCard makes el a tilt card. A nil element yields an inert card.
func NewTiltCard(s *Scene, el *Element, cfg TiltConfig) *TiltCard {
	return newTiltCard(s, s.PointerSource(), el, cfg)
}

func newTiltCard(s *Scene, src PointerSource, el *Element, cfg TiltConfig) *TiltCard {
	c := &TiltCard{
		s:       s,
		el:      el,
		cfg:     cfg,
		tracker: NewTiltTracker(src, cfg.Intensity),
		rotX:    NewSpring(TiltSpring),
		rotY:    NewSpring(TiltSpring),
	}
	if el == nil {
		return c
	}

	el.Border = cfg.ShowBorder
	if cfg.ShowGlare {
		el.Glare = &Glare{}
	}
	c.applyShadow()

	c.tracker.Subscribe(c.onPointer)
	c.tracker.Attach(el)
	c.frame = s.OnFrame(el, c.update)
	el.OnDispose(c.Stop)
	return c
}

func (c *TiltCard) onPointer(st TiltState, hovered bool) {
	c.rotX.Target = st.RotateX
	c.rotY.Target = st.RotateY
	if c.el.Glare != nil {
		c.el.Glare.X = st.GlareX
		c.el.Glare.Y = st.GlareY
		if hovered != c.hovered {
			to := 0.0
			if hovered {
				to = 1
			}
			c.fade.Stop()
			c.fade = c.s.Animate(TweenValue(c.el, &c.el.Glare.Opacity, to, glareFade, ease.Linear))
		}
	}
	c.hovered = hovered
}

func (c *TiltCard) update(dt float64) {
	c.el.SetTilt(c.rotX.Update(dt), c.rotY.Update(dt))
	c.applyShadow()
	if c.el.Glare != nil {
		c.el.Glare.Rotation = c.el.RotateY / 2
	}
}

func (c *TiltCard) applyShadow() {
	if !c.cfg.ShowShadow {
		c.el.Shadow = Shadow{}
		return
	}
	rx := math.Abs(c.el.RotateX)
	c.el.Shadow = Shadow{OffsetY: rx/2 + 5, Blur: rx + 10, Alpha: shadowAlpha}
}

// Target returns the tilt the card is springing toward.
func (c *TiltCard) Target() TiltState {
	return c.tracker.State()
}

// Hovered reports whether the pointer is over the card.
func (c *TiltCard) Hovered() bool {
	return c.hovered
}

// Stop detaches the pointer source and freezes the card.
func (c *TiltCard) Stop() {
	c.tracker.Detach()
	c.frame.Stop()
	c.fade.Stop()
}
