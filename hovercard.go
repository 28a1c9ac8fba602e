package kinetic

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tanema/gween/ease"
	"go.uber.org/zap"
)

const (
	hoverDuration = 0.3
	cardIntroRise = 20
	cardIntroTime = 0.5
)

// HoverEffect selects what a HoverCard does while hovered.
type HoverEffect uint8

const (
	HoverLift HoverEffect = iota
	HoverTilt
	HoverGlow
	HoverScale
	HoverNone
)

var hoverEffectNames = [...]string{"lift", "tilt", "glow", "scale", "none"}

func (h HoverEffect) String() string {
	if int(h) < len(hoverEffectNames) {
		return hoverEffectNames[h]
	}
	return fmt.Sprintf("HoverEffect(%d)", h)
}

// ErrHoverEffect is returned for an unknown hover effect name.
var ErrHoverEffect = errors.New("kinetic: unknown hover effect")

// ParseHoverEffect parses a lower-case effect name. The empty string is lift.
func ParseHoverEffect(s string) (HoverEffect, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return HoverLift, nil
	}
	for i, n := range hoverEffectNames {
		if n == s {
			return HoverEffect(i), nil
		}
	}
	return HoverNone, fmt.Errorf("%w: %q", ErrHoverEffect, s)
}

// cardPose is the animatable state a hover effect moves between.
type cardPose struct {
	offsetY float64
	rotX    float64
	rotY    float64
	scale   float64
	shadow  Shadow
}

func (h HoverEffect) pose(hovered bool) cardPose {
	p := cardPose{scale: 1}
	if !hovered {
		return p
	}
	switch h {
	case HoverLift:
		p.offsetY = -10
		p.shadow = Shadow{OffsetY: 20, Blur: 25, Alpha: 0.1}
	case HoverTilt:
		p.rotX, p.rotY = 5, 5
	case HoverGlow:
		p.shadow = Shadow{Blur: 15, Alpha: 0.5}
	case HoverScale:
		p.scale = 1.03
	}
	return p
}

// HoverCard fades a card up into place once and then animates it while the
// pointer is over it.
type HoverCard struct {
	s       *Scene
	el      *Element
	effect  HoverEffect
	src     PointerSource
	hovered bool
	fade    FrameHandle
	anim    FrameHandle
	shadow  FrameHandle
	stopped bool
}

// NewHoverCard makes el a hover card. A nil element yields an inert card.
func NewHoverCard(s *Scene, el *Element, effect HoverEffect) *HoverCard {
	return newHoverCard(s, s.PointerSource(), el, effect)
}

func newHoverCard(s *Scene, src PointerSource, el *Element, effect HoverEffect) *HoverCard {
	c := &HoverCard{s: s, el: el, effect: effect, src: src}
	if el == nil {
		return c
	}

	el.SetOffset(el.OffsetX, cardIntroRise)
	el.SetAlpha(0)
	c.fade = s.Animate(TweenAlpha(el, 1, cardIntroTime, ease.OutCubic))
	c.anim = s.Animate(TweenOffset(el, el.OffsetX, 0, cardIntroTime, ease.OutCubic))

	if src != nil {
		src.Start(el, c.observe)
	}
	el.OnDispose(c.Stop)
	return c
}

func (c *HoverCard) observe(e PointerEvent) {
	switch e.Type {
	case EventPointerEnter:
		c.setHovered(true)
	case EventPointerLeave:
		c.setHovered(false)
	}
}

func (c *HoverCard) setHovered(h bool) {
	if h == c.hovered {
		return
	}
	c.hovered = h
	if c.effect == HoverNone {
		return
	}
	p := c.effect.pose(h)
	el := c.el

	c.anim.Stop()
	c.shadow.Stop()
	c.anim = c.s.Animate(newTweenGroup(el, hoverDuration, ease.InOutQuad,
		[]*float64{&el.OffsetY, &el.RotateX, &el.RotateY, &el.Scale},
		[]float64{p.offsetY, p.rotX, p.rotY, p.scale}))
	c.shadow = c.s.Animate(newTweenGroup(el, hoverDuration, ease.InOutQuad,
		[]*float64{&el.Shadow.OffsetY, &el.Shadow.Blur, &el.Shadow.Alpha},
		[]float64{p.shadow.OffsetY, p.shadow.Blur, p.shadow.Alpha}))
	c.s.Logger().Debug("hover card",
		zap.String("element", el.Name), zap.Stringer("effect", c.effect), zap.Bool("hovered", h))
}

// Hovered reports whether the pointer is over the card.
func (c *HoverCard) Hovered() bool {
	return c.hovered
}

// Effect returns the card's hover effect.
func (c *HoverCard) Effect() HoverEffect {
	return c.effect
}

// Stop detaches the pointer and freezes the card.
func (c *HoverCard) Stop() {
	if c.stopped {
		return
	}
	c.stopped = true
	if c.src != nil && c.el != nil {
		c.src.Stop()
	}
	c.fade.Stop()
	c.anim.Stop()
	c.shadow.Stop()
}
