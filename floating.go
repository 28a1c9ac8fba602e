package kinetic

import (
	"math"

	"github.com/tanema/gween/ease"
)

const floatIntroRise = 20

// FloatingConfig configures a Floating decoration.
type FloatingConfig struct {
	XFactor        float64
	YFactor        float64
	RotationFactor float64
	// Delay before the intro fade and idle motion start, in seconds.
	Delay float64
	// Duration is the fade length and the vertical idle period, in seconds.
	Duration float64
}

// DefaultFloatingConfig returns factors 10/10/5 with a 4 second period.
func DefaultFloatingConfig() FloatingConfig {
	return FloatingConfig{XFactor: 10, YFactor: 10, RotationFactor: 5, Duration: 4}
}

// yoyo returns an eased position in [0, 1] that travels 0 -> 1 over period
// and back again, forever.
func yoyo(t, period float64) float64 {
	if period <= 0 || t <= 0 {
		return 0
	}
	phase := math.Mod(t, 2*period)
	if phase > period {
		phase = 2*period - phase
	}
	return float64(ease.InOutSine(float32(phase), 0, 1, float32(period)))
}

// Floating drifts a decorative element as the page scrolls past it, on top
// of a slow idle bob. Its offsets and rotation are owned by the component.
type Floating struct {
	el       *Element
	cfg      FloatingConfig
	progress *ScrollProgress
	x, y     Mapping
	rot      Mapping
	t        float64
	frame    FrameHandle
	fade     FrameHandle
}

// NewFloating starts floating el. A nil element yields an inert Floating.
func NewFloating(s *Scene, el *Element, cfg FloatingConfig) *Floating {
	return newFloating(s, s.ScrollSource(), el, cfg)
}

func newFloating(s *Scene, src ScrollSource, el *Element, cfg FloatingConfig) *Floating {
	triple := func(f float64) Mapping {
		return MustMapping([]float64{0, 0.5, 1}, []float64{-f, 0, f}, true)
	}
	f := &Floating{
		el:  el,
		cfg: cfg,
		x:   triple(cfg.XFactor),
		y:   triple(cfg.YFactor),
		rot: triple(cfg.RotationFactor),
	}
	f.progress, _ = NewScrollProgress(src, EnterExitOffset)
	if el == nil {
		return f
	}

	el.SetAlpha(0)
	el.SetOffset(0, floatIntroRise)
	f.progress.Attach(el)

	dur := float32(max(cfg.Duration, 0.001))
	f.fade = s.Animate(TweenAlpha(el, 1, dur, ease.Linear).WithDelay(cfg.Delay))
	f.frame = s.OnFrame(el, f.update)
	el.OnDispose(f.Stop)
	return f
}

// Idle returns the vertical idle displacement t seconds after creation.
// Only y bobs; x and rotation follow scroll alone.
func (f *Floating) Idle(t float64) float64 {
	t -= f.cfg.Delay
	if t <= 0 {
		return floatIntroRise
	}
	return floatIntroRise * (1 - yoyo(t, f.cfg.Duration))
}

func (f *Floating) update(dt float64) {
	f.t += dt
	p := f.progress.Value()
	f.el.SetOffset(f.x.Apply(p), f.y.Apply(p)+f.Idle(f.t))
	f.el.Rotation = f.rot.Apply(p)
	f.el.MarkDirty()
}

// Progress returns the element's scroll progress.
func (f *Floating) Progress() float64 {
	return f.progress.Value()
}

// Stop freezes the element where it is.
func (f *Floating) Stop() {
	f.progress.Detach()
	f.frame.Stop()
	f.fade.Stop()
}
