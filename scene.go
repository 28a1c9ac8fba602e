package kinetic

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// Scene is the top-level object that owns the element tree, the viewport,
// per-frame tasks, observers, and input state.
type Scene struct {
	root     *Element
	viewport *Viewport
	logger   *zap.Logger
	debug    bool

	// ClearColor fills the screen before the page is drawn.
	ClearColor Color
	// ScreenshotDir receives captures queued with Screenshot.
	ScreenshotDir string

	frames        frameScheduler
	scrollWatches []*scrollWatch
	viewWatches   []*intersectionWatch
	elapsed       float64
	frameCount    uint64

	// Input state
	handlers       handlerRegistry
	pointer        pointerState
	hitBuf         []*Element
	pointerWatches []*pointerWatch
	injectQueue    []syntheticEvent
	script         *ScriptRunner

	screenshotQueue []string

	updateFunc func() error
}

// NewScene creates a scene whose viewport covers a w x h screen.
func NewScene(w, h float64) *Scene {
	root := NewElement("root", w, 0)
	return &Scene{
		root:     root,
		viewport: newViewport(Rect{Width: w, Height: h}),
		logger:   zap.NewNop(),
	}
}

// Root returns the scene's root element.
func (s *Scene) Root() *Element {
	return s.root
}

// Viewport returns the scene's viewport.
func (s *Scene) Viewport() *Viewport {
	return s.viewport
}

// SetLogger replaces the scene logger. A nil logger disables logging.
func (s *Scene) SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	s.logger = l
}

// Logger returns the scene logger.
func (s *Scene) Logger() *zap.Logger {
	return s.logger
}

// SetUpdateFunc sets a callback run at the end of every Update.
func (s *Scene) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// Elapsed returns the total stepped time in seconds.
func (s *Scene) Elapsed() float64 {
	return s.elapsed
}

// Frame returns the number of frames stepped so far.
func (s *Scene) Frame() uint64 {
	return s.frameCount
}

// FitContent sets the viewport's content size to the extent of the root's
// children so scrolling stops at the last section.
func (s *Scene) FitContent() {
	updateWorldTransform(s.root, identityTransform, 1.0, false)
	var w, h float64
	for _, c := range s.root.children {
		b := c.Bounds()
		w = max(w, b.X+b.Width)
		h = max(h, b.Y+b.Height)
	}
	s.root.Height = h
	s.viewport.SetContentSize(w, h)
}

// Update reads device input and advances one tick. It is the method to call
// from ebiten.Game.Update.
func (s *Scene) Update() error {
	dt := 1.0 / float64(ebiten.TPS())
	s.step(dt, true)
	if s.updateFunc != nil {
		return s.updateFunc()
	}
	return nil
}

// Step advances the scene by dt seconds using only injected input. Tests and
// headless drivers call it directly.
func (s *Scene) Step(dt float64) {
	s.step(dt, false)
}

func (s *Scene) step(dt float64, readDevice bool) {
	var t0 time.Time
	var stats debugStats
	if s.debug {
		t0 = time.Now()
	}

	if s.script != nil {
		s.script.step(s)
	}

	// Refresh world transforms first so hit testing sees current positions.
	updateWorldTransform(s.root, identityTransform, 1.0, false)
	s.processInput(readDevice)
	s.viewport.update(float32(dt))

	if s.debug {
		stats.inputTime = time.Since(t0)
		t0 = time.Now()
	}

	// Layout may have changed through input handlers.
	updateWorldTransform(s.root, identityTransform, 1.0, false)
	s.sampleObservers()
	s.viewport.settle()

	if s.debug {
		stats.observeTime = time.Since(t0)
		t0 = time.Now()
	}

	s.frames.run(dt)
	updateWorldTransform(s.root, identityTransform, 1.0, false)

	s.elapsed += dt
	s.frameCount++

	if s.debug {
		stats.frameTime = time.Since(t0)
		stats.taskCount = s.frames.len()
		stats.observerCount = len(s.scrollWatches) + len(s.viewWatches) + len(s.pointerWatches)
		s.debugLog(stats)
	}
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-element
// access panics, deep trees are reported, and per-frame timing is logged at
// debug level.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
	debugLogger = s.logger
}

// globalDebug mirrors the most recently set Scene debug flag so that element
// operations (which lack a Scene pointer) can check it cheaply.
var globalDebug bool
