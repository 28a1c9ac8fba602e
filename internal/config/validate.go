package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/forgeline/kinetic"
	"golang.org/x/image/colornames"
)

var logLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// Validate checks every field and resolves every effect setting against
// the defaults, so a config that validates builds without errors.
func Validate(c *Config) error {
	if err := validateWindow(c.Window); err != nil {
		return fmt.Errorf("%w: window: %v", ErrInvalid, err)
	}
	if !logLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("%w: log_level %q", ErrInvalid, c.LogLevel)
	}
	if err := validateDefaults(c.Defaults); err != nil {
		return fmt.Errorf("%w: defaults: %v", ErrInvalid, err)
	}
	if len(c.Pages) == 0 {
		return fmt.Errorf("%w: no pages", ErrInvalid)
	}
	seen := make(map[string]bool, len(c.Pages))
	for i, p := range c.Pages {
		if p.Name == "" {
			return fmt.Errorf("%w: page %d has no name", ErrInvalid, i)
		}
		if seen[p.Name] {
			return fmt.Errorf("%w: duplicate page %q", ErrInvalid, p.Name)
		}
		seen[p.Name] = true
		for j, b := range p.Blocks {
			if err := validateBlock(b, c.Defaults); err != nil {
				return fmt.Errorf("%w: page %q block %d: %v", ErrInvalid, p.Name, j, err)
			}
		}
	}
	return nil
}

func validateWindow(w WindowConfig) error {
	if w.Width <= 0 || w.Height <= 0 {
		return fmt.Errorf("size %dx%d must be positive", w.Width, w.Height)
	}
	if w.TPS <= 0 {
		return fmt.Errorf("tps %d must be positive", w.TPS)
	}
	return nil
}

func validateDefaults(d DefaultsConfig) error {
	if _, err := d.Reveal.Resolve(d.Reveal); err != nil {
		return fmt.Errorf("reveal: %w", err)
	}
	if _, err := d.Parallax.Resolve(d.Parallax); err != nil {
		return fmt.Errorf("parallax: %w", err)
	}
	if _, err := d.Marquee.Resolve(d.Marquee); err != nil {
		return fmt.Errorf("marquee: %w", err)
	}
	return nil
}

func validateBlock(b BlockConfig, d DefaultsConfig) error {
	if !blockKinds[b.Kind] {
		return fmt.Errorf("unknown kind %q", b.Kind)
	}
	if b.Height < 0 {
		return fmt.Errorf("negative height %v", b.Height)
	}
	if b.Color != "" {
		if _, err := ParseColor(b.Color); err != nil {
			return err
		}
	}
	if b.Reveal != nil {
		if _, err := b.Reveal.Resolve(d.Reveal); err != nil {
			return fmt.Errorf("reveal: %w", err)
		}
	}
	if b.Parallax != nil {
		if _, err := b.Parallax.Resolve(d.Parallax); err != nil {
			return fmt.Errorf("parallax: %w", err)
		}
	}
	if b.Marquee != nil {
		if _, err := b.Marquee.Resolve(d.Marquee); err != nil {
			return fmt.Errorf("marquee: %w", err)
		}
	}
	if b.Card != nil {
		if _, err := kinetic.ParseHoverEffect(b.Card.Effect); err != nil {
			return fmt.Errorf("card: %w", err)
		}
	}
	if b.Kind == KindCards && len(b.Items) == 0 {
		return fmt.Errorf("cards block needs items")
	}
	return nil
}

// Resolve fills unset fields from def and converts to a RevealConfig.
func (r RevealSettings) Resolve(def RevealSettings) (kinetic.RevealConfig, error) {
	cfg := kinetic.DefaultRevealConfig()
	cfg.Delay = pick(r.Delay, def.Delay, 0)
	cfg.Duration = pick(r.Duration, def.Duration, cfg.Duration)
	cfg.Threshold = pick(r.Threshold, def.Threshold, cfg.Threshold)
	cfg.Once = pickBool(r.Once, def.Once, cfg.Once)
	if cfg.Threshold < 0 || cfg.Threshold > 1 {
		return cfg, fmt.Errorf("threshold %v outside [0, 1]", cfg.Threshold)
	}
	if cfg.Delay < 0 || cfg.Duration < 0 {
		return cfg, fmt.Errorf("negative timing")
	}
	dir, err := parseDirection(r.Direction, def.Direction, cfg.Direction)
	if err != nil {
		return cfg, err
	}
	cfg.Direction = dir
	return cfg, nil
}

// Resolve fills unset fields from def and converts to a ParallaxConfig.
func (p ParallaxSettings) Resolve(def ParallaxSettings) (kinetic.ParallaxConfig, error) {
	cfg := kinetic.DefaultParallaxConfig()
	cfg.BaseVelocity = pick(p.Velocity, def.Velocity, cfg.BaseVelocity)
	cfg.AllowOverflow = pickBool(p.Overflow, def.Overflow, cfg.AllowOverflow)
	dir, err := parseDirection(p.Direction, def.Direction, cfg.Direction)
	if err != nil {
		return cfg, err
	}
	if dir != kinetic.DirectionUp && dir != kinetic.DirectionDown {
		return cfg, fmt.Errorf("direction %s must be up or down", dir)
	}
	cfg.Direction = dir
	return cfg, nil
}

// Resolve fills unset fields from def and converts to a TiltConfig.
func (t TiltSettings) Resolve(def TiltSettings) kinetic.TiltConfig {
	cfg := kinetic.DefaultTiltConfig()
	cfg.Intensity = pick(t.Intensity, def.Intensity, cfg.Intensity)
	cfg.ShowBorder = pickBool(t.Border, def.Border, cfg.ShowBorder)
	cfg.ShowShadow = pickBool(t.Shadow, def.Shadow, cfg.ShowShadow)
	cfg.ShowGlare = pickBool(t.Glare, def.Glare, cfg.ShowGlare)
	return cfg
}

// Resolve fills unset fields from def and converts to a MarqueeConfig.
func (m MarqueeSettings) Resolve(def MarqueeSettings) (kinetic.MarqueeConfig, error) {
	cfg := kinetic.DefaultMarqueeConfig()
	cfg.BaseVelocity = pick(m.Velocity, def.Velocity, cfg.BaseVelocity)
	dir, err := parseDirection(m.Direction, def.Direction, cfg.Direction)
	if err != nil {
		return cfg, err
	}
	if dir != kinetic.DirectionLeft && dir != kinetic.DirectionRight {
		return cfg, fmt.Errorf("direction %s must be left or right", dir)
	}
	cfg.Direction = dir
	return cfg, nil
}

// Resolve fills unset fields from def and converts to a FloatingConfig.
func (f FloatSettings) Resolve(def FloatSettings) kinetic.FloatingConfig {
	cfg := kinetic.DefaultFloatingConfig()
	cfg.XFactor = pick(f.X, def.X, cfg.XFactor)
	cfg.YFactor = pick(f.Y, def.Y, cfg.YFactor)
	cfg.RotationFactor = pick(f.Rotation, def.Rotation, cfg.RotationFactor)
	cfg.Delay = pick(f.Delay, def.Delay, cfg.Delay)
	cfg.Duration = pick(f.Duration, def.Duration, cfg.Duration)
	return cfg
}

// pick returns the first set value. An explicit zero counts as set.
func pick(v, def *float64, builtin float64) float64 {
	switch {
	case v != nil:
		return *v
	case def != nil:
		return *def
	}
	return builtin
}

func pickBool(v, def *bool, builtin bool) bool {
	switch {
	case v != nil:
		return *v
	case def != nil:
		return *def
	}
	return builtin
}

func parseDirection(v, def string, builtin kinetic.Direction) (kinetic.Direction, error) {
	if v == "" {
		v = def
	}
	if v == "" {
		return builtin, nil
	}
	return kinetic.ParseDirection(v)
}

// ParseColor accepts #rgb, #rrggbb, #rrggbbaa or a CSS color name.
func ParseColor(s string) (kinetic.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := colornames.Map[s]; ok {
		return fromRGBA(c), nil
	}
	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return kinetic.Color{}, fmt.Errorf("unknown color %q", s)
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return kinetic.Color{}, fmt.Errorf("bad color %q", s)
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return kinetic.Color{}, fmt.Errorf("bad color %q: %w", s, err)
	}
	return fromRGBA(color.RGBA{R: uint8(n >> 24), G: uint8(n >> 16), B: uint8(n >> 8), A: uint8(n)}), nil
}

func fromRGBA(c color.RGBA) kinetic.Color {
	return kinetic.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
		A: float64(c.A) / 255,
	}
}
