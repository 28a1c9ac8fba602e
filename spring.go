package kinetic

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// SpringConfig describes a damped spring the way UI motion tools usually
// tune one: stiffness, damping, and mass (default 1).
type SpringConfig struct {
	Stiffness float64
	Damping   float64
	Mass      float64
}

// Spring presets tuned for the site's effects.
var (
	// TiltSpring returns a tilt card to its target rotation.
	TiltSpring = SpringConfig{Stiffness: 300, Damping: 30}
	// ScrollVelocitySpring smooths raw scroll velocity for the marquee.
	ScrollVelocitySpring = SpringConfig{Stiffness: 400, Damping: 50}
)

// harmonicaParams converts stiffness/damping/mass to harmonica's angular
// frequency and damping ratio.
func (c SpringConfig) harmonicaParams() (freq, ratio float64) {
	m := c.Mass
	if m <= 0 {
		m = 1
	}
	k := math.Max(c.Stiffness, 0)
	freq = math.Sqrt(k / m)
	if k == 0 {
		return 0, 1
	}
	ratio = c.Damping / (2 * math.Sqrt(k*m))
	return freq, ratio
}

// Spring follows Target with damped-spring motion. Frames may have varying
// lengths; coefficients are recomputed only when dt changes.
type Spring struct {
	Pos, Vel float64
	Target   float64

	cfg    SpringConfig
	freq   float64
	ratio  float64
	motion harmonica.Spring
	lastDt float64
}

// NewSpring creates a spring at rest at 0.
func NewSpring(cfg SpringConfig) *Spring {
	s := &Spring{cfg: cfg}
	s.freq, s.ratio = cfg.harmonicaParams()
	return s
}

// Update advances the spring by dt seconds and returns the new position.
// Non-positive dt leaves the spring unchanged.
func (s *Spring) Update(dt float64) float64 {
	if dt <= 0 {
		return s.Pos
	}
	if dt != s.lastDt {
		s.motion = harmonica.NewSpring(dt, s.freq, s.ratio)
		s.lastDt = dt
	}
	s.Pos, s.Vel = s.motion.Update(s.Pos, s.Vel, s.Target)
	return s.Pos
}

// Settled reports whether the spring is within eps of its target and
// nearly still.
func (s *Spring) Settled(eps float64) bool {
	return math.Abs(s.Pos-s.Target) <= eps && math.Abs(s.Vel) <= eps
}

// Snap moves the spring to its target and stops it.
func (s *Spring) Snap() {
	s.Pos = s.Target
	s.Vel = 0
}
