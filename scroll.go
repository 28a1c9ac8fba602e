package kinetic

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrBadAnchor is returned when an anchor string cannot be parsed.
	ErrBadAnchor = errors.New("kinetic: invalid scroll anchor")
	// ErrScrollWindow is returned when a scroll window's start anchor does
	// not come before its end anchor in scroll order.
	ErrScrollWindow = errors.New("kinetic: scroll window start must precede end")
)

// Anchor pairs an edge of the tracked element with an edge of the viewport.
// Both are fractions along the scroll axis: 0 is the start (top) edge, 1 the
// end (bottom) edge. The anchor is reached when the two points coincide.
type Anchor struct {
	Element  float64
	Viewport float64
}

// ScrollOffset is the window over which progress runs from 0 to 1.
type ScrollOffset struct {
	Start Anchor
	End   Anchor
}

var (
	// EnterExitOffset runs from the element's top meeting the viewport
	// bottom to the element's bottom meeting the viewport top.
	EnterExitOffset = ScrollOffset{Start: Anchor{0, 1}, End: Anchor{1, 0}}
	// PageOffset runs over the whole scrollable range of a target.
	PageOffset = ScrollOffset{Start: Anchor{0, 0}, End: Anchor{1, 1}}
)

// ParseAnchor parses "<element> <viewport>" where each part is start,
// center, end, a fraction such as 0.25, or a percentage such as 25%.
func ParseAnchor(s string) (Anchor, error) {
	parts := strings.Fields(s)
	if len(parts) != 2 {
		return Anchor{}, fmt.Errorf("%w: %q needs two edges", ErrBadAnchor, s)
	}
	el, err := parseEdge(parts[0])
	if err != nil {
		return Anchor{}, fmt.Errorf("%w: %q: %v", ErrBadAnchor, s, err)
	}
	vp, err := parseEdge(parts[1])
	if err != nil {
		return Anchor{}, fmt.Errorf("%w: %q: %v", ErrBadAnchor, s, err)
	}
	return Anchor{Element: el, Viewport: vp}, nil
}

func parseEdge(s string) (float64, error) {
	switch strings.ToLower(s) {
	case "start":
		return 0, nil
	case "center":
		return 0.5, nil
	case "end":
		return 1, nil
	}
	if pct, ok := strings.CutSuffix(s, "%"); ok {
		v, err := strconv.ParseFloat(pct, 64)
		if err != nil {
			return 0, err
		}
		return v / 100, nil
	}
	return strconv.ParseFloat(s, 64)
}

// ParseScrollOffset parses a start and end anchor pair and validates it.
func ParseScrollOffset(start, end string) (ScrollOffset, error) {
	a, err := ParseAnchor(start)
	if err != nil {
		return ScrollOffset{}, err
	}
	b, err := ParseAnchor(end)
	if err != nil {
		return ScrollOffset{}, err
	}
	off := ScrollOffset{Start: a, End: b}
	return off, off.Validate()
}

// Validate rejects windows whose end can never come after their start,
// whatever the element and viewport sizes.
func (o ScrollOffset) Validate() error {
	if o.End.Element <= o.Start.Element && o.End.Viewport >= o.Start.Viewport {
		return fmt.Errorf("%w: start %+v, end %+v", ErrScrollWindow, o.Start, o.End)
	}
	return nil
}

// anchorScroll returns the scroll position at which anchor a is reached.
func anchorScroll(a Anchor, s ScrollSample) float64 {
	return s.Target.Y + a.Element*s.Target.Height - a.Viewport*s.ViewportHeight
}

// ProgressAt computes raw progress for a sample. ok is false when the
// window is empty or inverted for the current sizes.
func ProgressAt(s ScrollSample, o ScrollOffset) (progress float64, ok bool) {
	start := anchorScroll(o.Start, s)
	end := anchorScroll(o.End, s)
	if !(end > start) {
		return 0, false
	}
	return (s.ScrollY - start) / (end - start), true
}

// ScrollProgress maps scroll position onto progress through a window. The
// value is not clamped; apply a clamped Mapping for bounded output.
type ScrollProgress struct {
	src      ScrollSource
	offset   ScrollOffset
	value    float64
	sample   ScrollSample
	sampled  bool
	subs     []func(float64)
	observed bool
	stopped  bool
}

// NewScrollProgress creates a sampler over offset reading from src.
func NewScrollProgress(src ScrollSource, offset ScrollOffset) (*ScrollProgress, error) {
	if err := offset.Validate(); err != nil {
		return nil, err
	}
	return &ScrollProgress{src: src, offset: offset}, nil
}

// Attach starts sampling el, or the whole page when el is nil.
func (p *ScrollProgress) Attach(el *Element) {
	if p.src == nil || p.observed || p.stopped {
		return
	}
	p.observed = true
	p.src.Start(el, p.observe)
}

// Detach stops sampling. The last value is kept.
func (p *ScrollProgress) Detach() {
	if p.stopped {
		return
	}
	p.stopped = true
	if p.observed && p.src != nil {
		p.src.Stop()
	}
}

// Value returns the latest progress.
func (p *ScrollProgress) Value() float64 {
	return p.value
}

// Sampled reports whether at least one usable sample has arrived.
func (p *ScrollProgress) Sampled() bool {
	return p.sampled
}

// Sample returns the latest raw sample.
func (p *ScrollProgress) Sample() ScrollSample {
	return p.sample
}

// Subscribe registers fn to be called with each new progress value.
func (p *ScrollProgress) Subscribe(fn func(progress float64)) {
	if fn != nil {
		p.subs = append(p.subs, fn)
	}
}

func (p *ScrollProgress) observe(s ScrollSample) {
	p.sample = s
	v, ok := ProgressAt(s, p.offset)
	if !ok {
		return
	}
	if p.sampled && v == p.value {
		return
	}
	p.value = v
	p.sampled = true
	for _, fn := range p.subs {
		fn(v)
	}
}
