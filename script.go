package kinetic

import (
	"errors"
	"fmt"

	"github.com/tanema/gween/ease"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// ErrScript is returned for a malformed scenario script.
var ErrScript = errors.New("kinetic: invalid script")

// ScriptStep is one action in a scenario script.
type ScriptStep struct {
	Action   string  `yaml:"action"`
	Label    string  `yaml:"label,omitempty"`
	X        float64 `yaml:"x,omitempty"`
	Y        float64 `yaml:"y,omitempty"`
	DX       float64 `yaml:"dx,omitempty"`
	DY       float64 `yaml:"dy,omitempty"`
	FromX    float64 `yaml:"from_x,omitempty"`
	FromY    float64 `yaml:"from_y,omitempty"`
	Frames   int     `yaml:"frames,omitempty"`
	Duration float64 `yaml:"duration,omitempty"`
}

// Script is the top-level YAML structure of a scenario.
type Script struct {
	Name  string       `yaml:"name"`
	Steps []ScriptStep `yaml:"steps"`
}

var scriptActions = map[string]bool{
	"scroll":     true,
	"scroll_to":  true,
	"move":       true,
	"hover":      true,
	"leave":      true,
	"click":      true,
	"wait":       true,
	"screenshot": true,
}

// Validate checks that every step names a known action.
func (sc Script) Validate() error {
	if len(sc.Steps) == 0 {
		return fmt.Errorf("%w: no steps", ErrScript)
	}
	for i, st := range sc.Steps {
		if !scriptActions[st.Action] {
			return fmt.Errorf("%w: step %d: unknown action %q", ErrScript, i, st.Action)
		}
		if st.Frames < 0 {
			return fmt.Errorf("%w: step %d: negative frames", ErrScript, i)
		}
	}
	return nil
}

// ScriptRunner plays a scenario against a Scene one action at a time,
// waiting for injected input to drain and scroll animations to finish
// between actions. Attach it with SetScript.
type ScriptRunner struct {
	script    Script
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses and validates a YAML scenario.
func LoadScript(data []byte) (*ScriptRunner, error) {
	var sc Script
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &ScriptRunner{script: sc}, nil
}

// SetScript attaches a runner. Its next action is taken at the start of each
// step, before input is processed.
func (s *Scene) SetScript(r *ScriptRunner) {
	s.script = r
}

// Done reports whether every step has run and its input has drained.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Name returns the script's name.
func (r *ScriptRunner) Name() string {
	return r.script.Name
}

func (r *ScriptRunner) step(s *Scene) {
	if r.done {
		return
	}
	if len(s.injectQueue) > 0 || s.viewport.Scrolling() {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.script.Steps) {
		r.done = true
		return
	}

	st := r.script.Steps[r.cursor]
	r.cursor++
	s.logger.Debug("script step",
		zap.String("script", r.script.Name),
		zap.Int("index", r.cursor-1),
		zap.String("action", st.Action))

	switch st.Action {
	case "scroll":
		s.InjectScroll(st.DX, st.DY)
	case "scroll_to":
		s.viewport.ScrollTo(st.X, st.Y, float32(st.Duration), ease.InOutQuad)
	case "move":
		s.InjectMove(st.X, st.Y)
	case "hover":
		frames := max(st.Frames, 2)
		s.InjectHover(st.FromX, st.FromY, st.X, st.Y, frames)
	case "leave":
		s.InjectLeave()
	case "click":
		s.InjectClick(st.X, st.Y)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1
		}
	case "screenshot":
		s.Screenshot(st.Label)
	}

	if r.cursor >= len(r.script.Steps) && r.waitCount == 0 && len(s.injectQueue) == 0 && !s.viewport.Scrolling() {
		r.done = true
	}
}
