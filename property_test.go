package kinetic

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestMotionProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(1234)
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("marquee wrap stays in (-cycle, 0]", prop.ForAll(
		func(v float64) bool {
			w := Wrap(0, -DefaultMarqueeCycle, v)
			return w > -DefaultMarqueeCycle && w <= 0
		},
		gen.Float64Range(-1e6, 1e6),
	))

	properties.Property("wrap is congruent modulo the range", prop.ForAll(
		func(v float64) bool {
			k := (Wrap(0, -50, v) - v) / 50
			return math.Abs(k-math.Round(k)) < 1e-6
		},
		gen.Float64Range(-1e4, 1e4),
	))

	properties.Property("clamped mapping stays within its output range", prop.ForAll(
		func(v float64) bool {
			m := MustMapping([]float64{0, 0.5, 1}, []float64{-10, 0, 10}, true)
			out := m.Apply(v)
			return out >= -10 && out <= 10
		},
		gen.Float64Range(-100, 100),
	))

	properties.Property("increasing mapping is monotonic", prop.ForAll(
		func(a, b float64) bool {
			if a > b {
				a, b = b, a
			}
			m := MustMapping([]float64{0, 1000}, []float64{0, 5}, false)
			return m.Apply(a) <= m.Apply(b)
		},
		gen.Float64Range(-5000, 5000),
		gen.Float64Range(-5000, 5000),
	))

	properties.Property("tilt inside the box is bounded by intensity", prop.ForAll(
		func(fx, fy float64) bool {
			b := Rect{X: 40, Y: 900, Width: 320, Height: 180}
			st := ComputeTilt(b.X+fx*b.Width, b.Y+fy*b.Height, b, DefaultTiltIntensity)
			const eps = 1e-9
			return math.Abs(st.RotateX) <= DefaultTiltIntensity+eps &&
				math.Abs(st.RotateY) <= DefaultTiltIntensity+eps &&
				st.GlareX >= -eps && st.GlareX <= 100+eps &&
				st.GlareY >= -eps && st.GlareY <= 100+eps
		},
		gen.Float64Range(0, 1),
		gen.Float64Range(0, 1),
	))

	properties.Property("progress is linear through the window", prop.ForAll(
		func(p, y, h float64) bool {
			s := ScrollSample{ViewportHeight: 600, Target: Rect{Y: y, Width: 800, Height: h}}
			start := y - 600
			end := y + h
			s.ScrollY = start + p*(end-start)
			got, ok := ProgressAt(s, EnterExitOffset)
			return ok && math.Abs(got-p) < 1e-9
		},
		gen.Float64Range(-1, 2),
		gen.Float64Range(0, 5000),
		gen.Float64Range(1, 2000),
	))

	properties.Property("intersection ratio is a fraction", prop.ForAll(
		func(y, h float64) bool {
			e := measureIntersection(Rect{Y: y, Width: 100, Height: h}, Rect{Width: 800, Height: 600})
			return e.Ratio >= 0 && e.Ratio <= 1 && (e.Ratio == 0 || e.Intersecting)
		},
		gen.Float64Range(-2000, 2000),
		gen.Float64Range(0, 1500),
	))

	properties.TestingRun(t)
}
