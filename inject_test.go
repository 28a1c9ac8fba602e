package kinetic

import "testing"

func TestInjectClickQueuesTwoEvents(t *testing.T) {
	s := NewScene(100, 100)
	s.InjectClick(10, 10)
	if s.PendingInput() != 2 {
		t.Fatalf("pending = %d, want 2", s.PendingInput())
	}
	s.Step(0.016)
	if s.PendingInput() != 1 {
		t.Errorf("pending = %d, want 1", s.PendingInput())
	}
}

func TestInjectHoverInterpolates(t *testing.T) {
	s := NewScene(800, 600)
	s.InjectHover(0, 0, 100, 200, 5)
	if s.PendingInput() != 5 {
		t.Fatalf("pending = %d, want 5", s.PendingInput())
	}
	want := [][2]float64{{0, 0}, {25, 50}, {50, 100}, {75, 150}, {100, 200}}
	for i, w := range want {
		e := s.injectQueue[i]
		if e.screenX != w[0] || e.screenY != w[1] {
			t.Errorf("step %d = (%v, %v), want %v", i, e.screenX, e.screenY, w)
		}
	}
}

func TestInjectHoverMinimumOneFrame(t *testing.T) {
	s := NewScene(800, 600)
	s.InjectHover(0, 0, 40, 40, 0)
	if s.PendingInput() != 1 {
		t.Fatalf("pending = %d, want 1", s.PendingInput())
	}
	if e := s.injectQueue[0]; e.screenX != 40 || e.screenY != 40 {
		t.Errorf("event = (%v, %v), want destination", e.screenX, e.screenY)
	}
}

func TestInjectOneEventPerFrame(t *testing.T) {
	s := NewScene(800, 600)
	s.Viewport().SetContentSize(800, 5000)
	s.InjectScroll(0, 100)
	s.InjectScroll(0, 100)
	s.InjectScroll(0, 100)
	s.Step(0.016)
	if s.Viewport().ScrollY != 100 {
		t.Errorf("ScrollY = %v after one frame, want 100", s.Viewport().ScrollY)
	}
	s.Step(0.016)
	s.Step(0.016)
	if s.Viewport().ScrollY != 300 || s.PendingInput() != 0 {
		t.Errorf("ScrollY %v pending %d, want 300 and 0", s.Viewport().ScrollY, s.PendingInput())
	}
}
