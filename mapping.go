package kinetic

import (
	"errors"
	"fmt"
	"math"

	"github.com/tanema/gween/ease"
)

// ErrMapping is returned for malformed input/output ranges.
var ErrMapping = errors.New("kinetic: invalid mapping")

// Mapping converts one value into another through piecewise-linear
// keyframes. In must be strictly increasing and the same length as Out.
// Without Clamp, inputs outside In extrapolate along the first or last
// segment. Ease, when set, shapes the progress within each segment.
type Mapping struct {
	In    []float64
	Out   []float64
	Clamp bool
	Ease  ease.TweenFunc
}

// NewMapping validates and returns a mapping.
func NewMapping(in, out []float64, clamp bool) (Mapping, error) {
	m := Mapping{In: in, Out: out, Clamp: clamp}
	if err := m.Validate(); err != nil {
		return Mapping{}, err
	}
	return m, nil
}

// MustMapping is NewMapping for literal ranges; it panics on error.
func MustMapping(in, out []float64, clamp bool) Mapping {
	m, err := NewMapping(in, out, clamp)
	if err != nil {
		panic(err)
	}
	return m
}

// WithEase returns a copy of m that eases each segment with fn.
func (m Mapping) WithEase(fn ease.TweenFunc) Mapping {
	m.Ease = fn
	return m
}

// Validate reports whether the ranges are usable.
func (m Mapping) Validate() error {
	if len(m.In) < 2 {
		return fmt.Errorf("%w: need at least 2 keyframes, got %d", ErrMapping, len(m.In))
	}
	if len(m.In) != len(m.Out) {
		return fmt.Errorf("%w: %d inputs but %d outputs", ErrMapping, len(m.In), len(m.Out))
	}
	for i := 1; i < len(m.In); i++ {
		if !(m.In[i] > m.In[i-1]) {
			return fmt.Errorf("%w: input %d (%v) does not increase", ErrMapping, i, m.In[i])
		}
	}
	return nil
}

// Apply maps v. A mapping with fewer than two keyframes returns v unchanged.
func (m Mapping) Apply(v float64) float64 {
	n := len(m.In)
	if n < 2 || len(m.Out) != n {
		return v
	}

	seg := 0
	switch {
	case v <= m.In[0]:
		if m.Clamp {
			return m.Out[0]
		}
	case v >= m.In[n-1]:
		if m.Clamp {
			return m.Out[n-1]
		}
		seg = n - 2
	default:
		for seg < n-2 && v > m.In[seg+1] {
			seg++
		}
	}

	x0, x1 := m.In[seg], m.In[seg+1]
	y0, y1 := m.Out[seg], m.Out[seg+1]
	t := (v - x0) / (x1 - x0)
	if m.Ease != nil && t >= 0 && t <= 1 {
		t = float64(m.Ease(float32(t), 0, 1, 1))
	}
	return y0 + (y1-y0)*t
}

// Interpolate maps v from [inMin, inMax] onto [outMin, outMax] linearly,
// extrapolating outside the input range unless clamp is set.
func Interpolate(v, inMin, inMax, outMin, outMax float64, clamp bool) float64 {
	if inMax == inMin {
		return outMin
	}
	t := (v - inMin) / (inMax - inMin)
	if clamp {
		t = Clamp(t, 0, 1)
	}
	return outMin + (outMax-outMin)*t
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Wrap folds v into the repeating range between from and to. The range may
// be given in either order; the result lies in the half-open interval that
// excludes to, so Wrap(0, -50, v) returns values in (-50, 0].
func Wrap(from, to, v float64) float64 {
	r := to - from
	if r == 0 {
		return from
	}
	return math.Mod(math.Mod(v-from, r)+r, r) + from
}
