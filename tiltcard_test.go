package kinetic

import (
	"math"
	"testing"
)

var cardBounds = Rect{Width: 200, Height: 200}

func stepFor(s *Scene, seconds float64) {
	const dt = 1.0 / 60
	for t := 0.0; t < seconds; t += dt {
		s.Step(dt)
	}
}

func TestTiltCardSpringsToTarget(t *testing.T) {
	s := NewScene(800, 600)
	src := &fakePointer{}
	el := NewBox("card", 200, 200, ColorWhite)
	c := newTiltCard(s, src, el, DefaultTiltConfig())

	src.send(EventPointerEnter, 150, 100, cardBounds)
	if got := c.Target(); got.RotateY != 5 || got.RotateX != 0 {
		t.Fatalf("target = %+v, want RotateY 5", got)
	}
	s.Step(1.0 / 60)
	if el.RotateY <= 0 || el.RotateY >= 5 {
		t.Errorf("first frame RotateY = %v, want between 0 and 5", el.RotateY)
	}

	stepFor(s, 2)
	if math.Abs(el.RotateY-5) > 0.01 {
		t.Errorf("RotateY = %v, want ~5", el.RotateY)
	}
	if math.Abs(el.Glare.Rotation-el.RotateY/2) > 1e-9 {
		t.Errorf("glare rotation = %v, want half of RotateY", el.Glare.Rotation)
	}
	if el.Glare.Opacity != 1 {
		t.Errorf("glare opacity = %v, want 1", el.Glare.Opacity)
	}
	if el.Glare.X != 75 || el.Glare.Y != 50 {
		t.Errorf("glare at (%v, %v), want (75, 50)", el.Glare.X, el.Glare.Y)
	}
}

func TestTiltCardLeaveReturnsFlat(t *testing.T) {
	s := NewScene(800, 600)
	src := &fakePointer{}
	el := NewBox("card", 200, 200, ColorWhite)
	c := newTiltCard(s, src, el, DefaultTiltConfig())

	src.send(EventPointerEnter, 50, 50, cardBounds)
	stepFor(s, 1)
	src.send(EventPointerLeave, 0, 0, cardBounds)
	if c.Hovered() {
		t.Error("Hovered should be false after leave")
	}
	stepFor(s, 2)
	if math.Abs(el.RotateX) > 0.01 || math.Abs(el.RotateY) > 0.01 {
		t.Errorf("rotation = (%v, %v), want flat", el.RotateX, el.RotateY)
	}
	if el.Glare.Opacity != 0 {
		t.Errorf("glare opacity = %v, want 0", el.Glare.Opacity)
	}
	if el.Glare.X != 25 || el.Glare.Y != 25 {
		t.Errorf("glare moved on leave: (%v, %v)", el.Glare.X, el.Glare.Y)
	}
}

func TestTiltCardShadowDeepensWithTilt(t *testing.T) {
	s := NewScene(800, 600)
	src := &fakePointer{}
	el := NewBox("card", 200, 200, ColorWhite)
	newTiltCard(s, src, el, DefaultTiltConfig())

	if el.Shadow != (Shadow{OffsetY: 5, Blur: 10, Alpha: 0.1}) {
		t.Fatalf("resting shadow = %+v", el.Shadow)
	}
	// Top edge: RotateX = 10.
	src.send(EventPointerMove, 100, 0, cardBounds)
	stepFor(s, 2)
	rx := math.Abs(el.RotateX)
	if math.Abs(el.Shadow.OffsetY-(rx/2+5)) > 1e-9 || math.Abs(el.Shadow.Blur-(rx+10)) > 1e-9 {
		t.Errorf("shadow = %+v for RotateX %v", el.Shadow, el.RotateX)
	}
	if el.Shadow.Blur < 19.9 {
		t.Errorf("blur = %v, want ~20", el.Shadow.Blur)
	}
}

func TestTiltCardOptions(t *testing.T) {
	s := NewScene(800, 600)
	el := NewBox("card", 200, 200, ColorWhite)
	newTiltCard(s, &fakePointer{}, el, TiltConfig{Intensity: 10, ShowBorder: true})
	if !el.Border {
		t.Error("border should be shown")
	}
	if el.Glare != nil {
		t.Error("glare should be absent")
	}
	if el.Shadow != (Shadow{}) {
		t.Errorf("shadow = %+v, want none", el.Shadow)
	}
}

func TestTiltCardNilElement(t *testing.T) {
	s := NewScene(800, 600)
	src := &fakePointer{}
	c := newTiltCard(s, src, nil, DefaultTiltConfig())
	if src.started != 0 {
		t.Error("nil element should not start the source")
	}
	s.Step(1.0 / 60)
	c.Stop()
}

func TestTiltCardStopsOnDispose(t *testing.T) {
	s := NewScene(800, 600)
	src := &fakePointer{}
	el := NewBox("card", 200, 200, ColorWhite)
	s.Root().AddChild(el)
	newTiltCard(s, src, el, DefaultTiltConfig())

	el.Dispose()
	s.Step(1.0 / 60)
	if src.stopped != 1 {
		t.Errorf("source stopped %d times, want 1", src.stopped)
	}
	if n := s.frames.len(); n != 0 {
		t.Errorf("live tasks = %d, want 0", n)
	}
}

func TestTiltCardWithScene(t *testing.T) {
	s := NewScene(800, 600)
	el := NewBox("card", 200, 200, ColorWhite)
	el.SetPosition(100, 100)
	s.Root().AddChild(el)
	c := NewTiltCard(s, el, DefaultTiltConfig())

	s.InjectHover(0, 0, 250, 200, 4)
	for s.PendingInput() > 0 {
		s.Step(1.0 / 60)
	}
	if !c.Hovered() {
		t.Fatal("card should be hovered")
	}
	if got := c.Target().RotateY; math.Abs(got-5) > 1e-9 {
		t.Errorf("target RotateY = %v, want 5", got)
	}

	// Tilting does not move the hover region.
	stepFor(s, 1)
	s.InjectMove(295, 295)
	s.Step(1.0 / 60)
	if !c.Hovered() {
		t.Error("card edge should stay hovered while tilted")
	}
}
