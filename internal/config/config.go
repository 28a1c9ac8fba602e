// Package config loads the showcase site description: window settings,
// logging, effect defaults and the pages with their content blocks.
//
// Files are YAML. Load reads them through viper so every scalar can be
// overridden from the environment with the KINETIC_ prefix, for example
// KINETIC_WINDOW_TITLE or KINETIC_LOG_LEVEL. Parse decodes raw YAML with
// the same defaults and validation and never touches the environment.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// EnvPrefix is the prefix of environment overrides.
const EnvPrefix = "KINETIC"

type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Debug    bool           `yaml:"debug"`
	LogLevel string         `yaml:"log_level"`
	Defaults DefaultsConfig `yaml:"defaults"`
	Pages    []PageConfig   `yaml:"pages"`
}

type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	TPS    int    `yaml:"tps"`
}

// DefaultsConfig holds site-wide effect settings that blocks inherit.
type DefaultsConfig struct {
	Reveal   RevealSettings   `yaml:"reveal"`
	Parallax ParallaxSettings `yaml:"parallax"`
	Tilt     TiltSettings     `yaml:"tilt"`
	Marquee  MarqueeSettings  `yaml:"marquee"`
	Float    FloatSettings    `yaml:"float"`
}

type PageConfig struct {
	Name   string        `yaml:"name"`
	Title  string        `yaml:"title"`
	Blocks []BlockConfig `yaml:"blocks"`
}

// Block kinds.
const (
	KindHero    = "hero"
	KindText    = "text"
	KindCards   = "cards"
	KindMarquee = "marquee"
	KindFloat   = "float"
	KindButton  = "button"
)

var blockKinds = map[string]bool{
	KindHero:    true,
	KindText:    true,
	KindCards:   true,
	KindMarquee: true,
	KindFloat:   true,
	KindButton:  true,
}

// BlockConfig is one vertical section of a page. An effect is enabled by
// giving its key, even empty; unset fields inherit from Defaults.
type BlockConfig struct {
	Kind   string   `yaml:"kind"`
	Text   string   `yaml:"text,omitempty"`
	Height float64  `yaml:"height,omitempty"`
	Color  string   `yaml:"color,omitempty"`
	Items  []string `yaml:"items,omitempty"`

	Reveal   *RevealSettings   `yaml:"reveal,omitempty"`
	Parallax *ParallaxSettings `yaml:"parallax,omitempty"`
	Tilt     *TiltSettings     `yaml:"tilt,omitempty"`
	Marquee  *MarqueeSettings  `yaml:"marquee,omitempty"`
	Float    *FloatSettings    `yaml:"float,omitempty"`
	Card     *CardSettings     `yaml:"card,omitempty"`
}

type RevealSettings struct {
	Delay     *float64 `yaml:"delay,omitempty"`
	Direction string   `yaml:"direction,omitempty"`
	Duration  *float64 `yaml:"duration,omitempty"`
	Threshold *float64 `yaml:"threshold,omitempty"`
	Once      *bool    `yaml:"once,omitempty"`
}

type ParallaxSettings struct {
	Velocity  *float64 `yaml:"velocity,omitempty"`
	Direction string   `yaml:"direction,omitempty"`
	Overflow  *bool    `yaml:"overflow,omitempty"`
}

type TiltSettings struct {
	Intensity *float64 `yaml:"intensity,omitempty"`
	Border    *bool    `yaml:"border,omitempty"`
	Shadow    *bool    `yaml:"shadow,omitempty"`
	Glare     *bool    `yaml:"glare,omitempty"`
}

type MarqueeSettings struct {
	Velocity  *float64 `yaml:"velocity,omitempty"`
	Direction string   `yaml:"direction,omitempty"`
}

type FloatSettings struct {
	X        *float64 `yaml:"x,omitempty"`
	Y        *float64 `yaml:"y,omitempty"`
	Rotation *float64 `yaml:"rotation,omitempty"`
	Delay    *float64 `yaml:"delay,omitempty"`
	Duration *float64 `yaml:"duration,omitempty"`
}

type CardSettings struct {
	Effect string `yaml:"effect,omitempty"`
}

// Default returns the built-in configuration with no pages.
func Default() *Config {
	return &Config{
		Window:   WindowConfig{Title: "Forgeline Industries", Width: 1024, Height: 768, TPS: 60},
		LogLevel: "info",
		Defaults: DefaultsConfig{
			Reveal:   RevealSettings{Direction: "up", Duration: floatPtr(0.5), Threshold: floatPtr(0.1), Once: boolPtr(true)},
			Parallax: ParallaxSettings{Velocity: floatPtr(0.2), Direction: "up", Overflow: boolPtr(true)},
			Tilt:     TiltSettings{Intensity: floatPtr(10), Border: boolPtr(false), Shadow: boolPtr(true), Glare: boolPtr(true)},
			Marquee:  MarqueeSettings{Velocity: floatPtr(5), Direction: "left"},
			Float:    FloatSettings{X: floatPtr(10), Y: floatPtr(10), Rotation: floatPtr(5), Delay: floatPtr(0), Duration: floatPtr(4)},
		},
	}
}

func boolPtr(b bool) *bool { return &b }

func floatPtr(f float64) *float64 { return &f }

// setDefaults registers every scalar default with v so that environment
// overrides apply even when the file omits the key.
func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("window.title", d.Window.Title)
	v.SetDefault("window.width", d.Window.Width)
	v.SetDefault("window.height", d.Window.Height)
	v.SetDefault("window.tps", d.Window.TPS)
	v.SetDefault("debug", d.Debug)
	v.SetDefault("log_level", d.LogLevel)

	v.SetDefault("defaults.reveal.direction", d.Defaults.Reveal.Direction)
	v.SetDefault("defaults.reveal.duration", *d.Defaults.Reveal.Duration)
	v.SetDefault("defaults.reveal.threshold", *d.Defaults.Reveal.Threshold)
	v.SetDefault("defaults.reveal.once", *d.Defaults.Reveal.Once)
	v.SetDefault("defaults.parallax.velocity", *d.Defaults.Parallax.Velocity)
	v.SetDefault("defaults.parallax.direction", d.Defaults.Parallax.Direction)
	v.SetDefault("defaults.parallax.overflow", *d.Defaults.Parallax.Overflow)
	v.SetDefault("defaults.tilt.intensity", *d.Defaults.Tilt.Intensity)
	v.SetDefault("defaults.tilt.border", *d.Defaults.Tilt.Border)
	v.SetDefault("defaults.tilt.shadow", *d.Defaults.Tilt.Shadow)
	v.SetDefault("defaults.tilt.glare", *d.Defaults.Tilt.Glare)
	v.SetDefault("defaults.marquee.velocity", *d.Defaults.Marquee.Velocity)
	v.SetDefault("defaults.marquee.direction", d.Defaults.Marquee.Direction)
	v.SetDefault("defaults.float.x", *d.Defaults.Float.X)
	v.SetDefault("defaults.float.y", *d.Defaults.Float.Y)
	v.SetDefault("defaults.float.rotation", *d.Defaults.Float.Rotation)
	v.SetDefault("defaults.float.delay", *d.Defaults.Float.Delay)
	v.SetDefault("defaults.float.duration", *d.Defaults.Float.Duration)
}

// newViper returns a viper instance reading path with env overrides.
func newViper(path string) *viper.Viper {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

// Load reads and validates the file at path.
func Load(path string) (*Config, error) {
	v := newViper(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return decode(v)
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	err := v.Unmarshal(&cfg, func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "yaml"
	})
	if err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Parse decodes YAML over the built-in defaults and validates it.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Marshal encodes cfg as YAML.
func Marshal(cfg *Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// Page returns the page with the given name.
func (c *Config) Page(name string) (PageConfig, bool) {
	for _, p := range c.Pages {
		if p.Name == name {
			return p, true
		}
	}
	return PageConfig{}, false
}
