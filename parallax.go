package kinetic

// ParallaxConfig configures a Parallax section.
type ParallaxConfig struct {
	// BaseVelocity is the content travel across the whole pass, as a
	// fraction of the content height.
	BaseVelocity float64
	// Direction is DirectionUp or DirectionDown.
	Direction Direction
	// AllowOverflow lets content draw outside the section while it moves.
	// When false the section clips its children.
	AllowOverflow bool
}

// DefaultParallaxConfig returns velocity 0.2 upward with overflow allowed.
func DefaultParallaxConfig() ParallaxConfig {
	return ParallaxConfig{BaseVelocity: 0.2, Direction: DirectionUp, AllowOverflow: true}
}

// Parallax shifts a section's content vertically in proportion to how far
// the section has travelled through the viewport, from its top meeting the
// viewport bottom to its bottom meeting the viewport top.
type Parallax struct {
	section  *Element
	content  *Element
	progress *ScrollProgress
	shift    Mapping
}

// NewParallax drives content, a child of section. Nil elements yield an
// inert Parallax.
func NewParallax(s *Scene, section, content *Element, cfg ParallaxConfig) *Parallax {
	return newParallax(s.ScrollSource(), section, content, cfg)
}

func newParallax(src ScrollSource, section, content *Element, cfg ParallaxConfig) *Parallax {
	v := cfg.BaseVelocity
	if cfg.Direction == DirectionUp {
		v = -v
	}
	p := &Parallax{
		section: section,
		content: content,
		shift:   MustMapping([]float64{0, 1}, []float64{0, v * 100}, true),
	}
	// EnterExitOffset is always a valid window.
	p.progress, _ = NewScrollProgress(src, EnterExitOffset)
	if section == nil || content == nil {
		return p
	}

	section.ClipChildren = !cfg.AllowOverflow
	p.progress.Subscribe(p.apply)
	p.progress.Attach(section)
	section.OnDispose(p.Stop)
	return p
}

func (p *Parallax) apply(progress float64) {
	pct := p.shift.Apply(progress)
	p.content.SetOffset(p.content.OffsetX, pct/100*p.content.Height)
}

// Progress returns the section's scroll progress.
func (p *Parallax) Progress() float64 {
	return p.progress.Value()
}

// Stop detaches the sampler; the content keeps its last offset.
func (p *Parallax) Stop() {
	p.progress.Detach()
}
