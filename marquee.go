package kinetic

import (
	"strings"
)

const (
	// DefaultMarqueeVelocity is the base speed in percent of the strip per second.
	DefaultMarqueeVelocity = 5
	// DefaultMarqueeCycle is the wrap width in percent of the strip. With
	// four copies, half the strip is two copies, so the loop is seamless.
	DefaultMarqueeCycle = 50
	// DefaultMarqueeCopies is how many times the content is repeated.
	DefaultMarqueeCopies = 4
	// marqueeGap separates repeated segments, in pixels.
	marqueeGap = 16
)

// scrollVelocityFactor maps smoothed scroll velocity (px/s) to a speed
// multiplier. It is deliberately unclamped.
var scrollVelocityFactor = MustMapping([]float64{0, 1000}, []float64{0, 5}, false)

// MarqueeDriver advances a looping offset every frame. Scrolling the page
// changes its speed through a spring-smoothed scroll velocity.
type MarqueeDriver struct {
	BaseVelocity float64
	// Sign is +1 for leftward travel and -1 for rightward.
	Sign  float64
	Cycle float64

	offset   float64
	velocity *Spring
}

// NewMarqueeDriver creates a driver. Any direction other than
// DirectionRight travels left.
func NewMarqueeDriver(baseVelocity float64, dir Direction) *MarqueeDriver {
	sign := 1.0
	if dir == DirectionRight {
		sign = -1
	}
	return &MarqueeDriver{
		BaseVelocity: baseVelocity,
		Sign:         sign,
		Cycle:        DefaultMarqueeCycle,
		velocity:     NewSpring(ScrollVelocitySpring),
	}
}

// Advance moves the accumulator by one frame of dt seconds. scrollVelocity
// is the raw page scroll velocity in px/s. Large dt values are applied as
// they come.
func (m *MarqueeDriver) Advance(dt, scrollVelocity float64) {
	m.velocity.Target = scrollVelocity
	smooth := m.velocity.Update(dt)
	factor := scrollVelocityFactor.Apply(smooth)

	moveBy := m.Sign * m.BaseVelocity * dt
	moveBy += m.Sign * moveBy * factor
	m.offset += moveBy
}

// Offset returns the unbounded accumulator.
func (m *MarqueeDriver) Offset() float64 {
	return m.offset
}

// Percent returns the accumulator wrapped into (-Cycle, 0], the strip
// translation in percent.
func (m *MarqueeDriver) Percent() float64 {
	return Wrap(0, -m.Cycle, m.offset)
}

// SmoothedVelocity returns the spring-smoothed scroll velocity.
func (m *MarqueeDriver) SmoothedVelocity() float64 {
	return m.velocity.Pos
}

// MarqueeConfig configures a Marquee.
type MarqueeConfig struct {
	BaseVelocity float64
	Direction    Direction
}

// DefaultMarqueeConfig returns velocity 5 travelling left.
func DefaultMarqueeConfig() MarqueeConfig {
	return MarqueeConfig{BaseVelocity: DefaultMarqueeVelocity, Direction: DirectionLeft}
}

// Marquee is an endlessly scrolling line of text. The host element clips a
// strip holding DefaultMarqueeCopies copies of the text.
type Marquee struct {
	host   *Element
	strip  *Element
	driver *MarqueeDriver
	frame  FrameHandle
}

// NewMarquee fills host with a looping strip of text and starts driving it.
// A nil host is ignored and returns nil.
func NewMarquee(s *Scene, host *Element, text string, c Color, cfg MarqueeConfig) *Marquee {
	if host == nil {
		return nil
	}
	host.ClipChildren = true

	text = strings.TrimSpace(text)
	segW, segH := MeasureLabel(text)
	segW += marqueeGap

	strip := NewElement(host.Name+"/strip", segW*DefaultMarqueeCopies, segH)
	strip.Y = (host.Height - segH) / 2
	for i := 0; i < DefaultMarqueeCopies; i++ {
		seg := NewLabel(host.Name+"/segment", text, c)
		seg.X = float64(i) * segW
		strip.AddChild(seg)
	}
	host.AddChild(strip)

	m := &Marquee{host: host, strip: strip, driver: NewMarqueeDriver(cfg.BaseVelocity, cfg.Direction)}
	m.frame = s.OnFrame(host, func(dt float64) {
		_, vy := s.Viewport().Velocity()
		m.driver.Advance(dt, vy)
		m.strip.SetOffset(m.driver.Percent()/100*m.strip.Width, 0)
	})
	return m
}

// Driver returns the motion driver.
func (m *Marquee) Driver() *MarqueeDriver {
	return m.driver
}

// Strip returns the element holding the repeated segments.
func (m *Marquee) Strip() *Element {
	return m.strip
}

// Stop halts the marquee where it is.
func (m *Marquee) Stop() {
	m.frame.Stop()
}
