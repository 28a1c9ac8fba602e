package kinetic

import (
	"math"
	"testing"
)

func TestYoyo(t *testing.T) {
	tests := []struct {
		t, period, want float64
	}{
		{0, 4, 0},
		{2, 4, 0.5},
		{4, 4, 1},
		{6, 4, 0.5},
		{8, 4, 0},
		{12, 4, 1},
		{1, 0, 0},
	}
	for _, tt := range tests {
		if got := yoyo(tt.t, tt.period); math.Abs(got-tt.want) > 1e-5 {
			t.Errorf("yoyo(%v, %v) = %v, want %v", tt.t, tt.period, got, tt.want)
		}
	}
}

func TestFloatingIdle(t *testing.T) {
	f := newFloating(NewScene(800, 600), &fakeScroll{}, nil, DefaultFloatingConfig())

	if dy := f.Idle(0); dy != 20 {
		t.Errorf("Idle(0) = %v, want 20", dy)
	}
	if dy := f.Idle(4); math.Abs(dy) > 1e-4 {
		t.Errorf("Idle(4) = %v, want 0 at the top of the bob", dy)
	}
	if dy := f.Idle(8); math.Abs(dy-20) > 1e-4 {
		t.Errorf("Idle(8) = %v, want 20", dy)
	}
}

func TestFloatingIdleWaitsForDelay(t *testing.T) {
	cfg := DefaultFloatingConfig()
	cfg.Delay = 1
	f := newFloating(NewScene(800, 600), &fakeScroll{}, nil, cfg)
	if dy := f.Idle(0.5); dy != 20 {
		t.Errorf("Idle during delay = %v, want 20", dy)
	}
}

func TestFloatingIntro(t *testing.T) {
	s := NewScene(800, 600)
	el := NewBox("orb", 50, 50, ColorWhite)
	newFloating(s, &fakeScroll{}, el, DefaultFloatingConfig())

	if el.Alpha != 0 || el.OffsetY != 20 {
		t.Fatalf("start alpha %v offset %v, want 0 and 20", el.Alpha, el.OffsetY)
	}
	s.Step(2)
	if el.Alpha != 0.5 {
		t.Errorf("alpha = %v, want 0.5 halfway through the fade", el.Alpha)
	}
	s.Step(2)
	if el.Alpha != 1 {
		t.Errorf("alpha = %v, want 1", el.Alpha)
	}
}

func TestFloatingFollowsScroll(t *testing.T) {
	tests := []struct {
		name    string
		scrollY float64
		x, y, r float64
	}{
		{"entering", 400, -10, -10, -5},
		{"middle", 900, 0, 0, 0},
		{"leaving", 1400, 10, 10, 5},
		{"past", 3000, 10, 10, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScene(800, 600)
			src := &fakeScroll{}
			el := NewBox("orb", 50, 50, ColorWhite)
			f := newFloating(s, src, el, DefaultFloatingConfig())

			src.at(tt.scrollY, 1000, 400, 600)
			s.Step(0.1)

			dy := f.Idle(0.1)
			if math.Abs(el.OffsetX-tt.x) > 1e-9 ||
				math.Abs(el.OffsetY-(tt.y+dy)) > 1e-9 ||
				math.Abs(el.Rotation-tt.r) > 1e-9 {
				t.Errorf("pose = (%v, %v, %v), want (%v, %v, %v) plus vertical idle",
					el.OffsetX, el.OffsetY, el.Rotation, tt.x, tt.y, tt.r)
			}
		})
	}
}

func TestFloatingIdleBobsOnlyVertically(t *testing.T) {
	s := NewScene(800, 600)
	src := &fakeScroll{}
	el := NewBox("orb", 50, 50, ColorWhite)
	newFloating(s, src, el, DefaultFloatingConfig())

	src.at(900, 1000, 400, 600)
	for i := 0; i < 30; i++ {
		s.Step(0.2)
		if math.Abs(el.OffsetX) > 1e-9 || math.Abs(el.Rotation) > 1e-9 {
			t.Fatalf("at %.1fs x %v rotation %v, want 0 while scroll holds at the middle",
				float64(i+1)*0.2, el.OffsetX, el.Rotation)
		}
	}
	if el.OffsetY == floatIntroRise {
		t.Error("y should have bobbed away from the rest position")
	}
}

func TestFloatingObservesOwnBox(t *testing.T) {
	s := NewScene(800, 600)
	src := &fakeScroll{}
	el := NewBox("orb", 50, 50, ColorWhite)
	newFloating(s, src, el, DefaultFloatingConfig())
	if src.started != 1 || src.el != el {
		t.Errorf("source started %d times on %v", src.started, src.el)
	}
}

func TestFloatingNilElement(t *testing.T) {
	s := NewScene(800, 600)
	src := &fakeScroll{}
	f := newFloating(s, src, nil, DefaultFloatingConfig())
	s.Step(1)
	if src.started != 0 || f.Progress() != 0 {
		t.Error("nil element should be inert")
	}
	f.Stop()
}

func TestFloatingStopFreezes(t *testing.T) {
	s := NewScene(800, 600)
	src := &fakeScroll{}
	el := NewBox("orb", 50, 50, ColorWhite)
	s.Root().AddChild(el)
	f := newFloating(s, src, el, DefaultFloatingConfig())
	s.Step(1)

	f.Stop()
	x, y, a := el.OffsetX, el.OffsetY, el.Alpha
	s.Step(1)
	if el.OffsetX != x || el.OffsetY != y || el.Alpha != a {
		t.Error("stopped element kept moving")
	}
	if src.stopped != 1 {
		t.Errorf("source stopped %d times, want 1", src.stopped)
	}
	el.Dispose()
	if src.stopped != 1 {
		t.Error("dispose after Stop reached the source again")
	}
}
