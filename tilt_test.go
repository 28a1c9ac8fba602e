package kinetic

import (
	"math"
	"testing"
)

func TestComputeTilt(t *testing.T) {
	box := Rect{X: 0, Y: 0, Width: 200, Height: 200}
	tests := []struct {
		name   string
		px, py float64
		want   TiltState
	}{
		{"center", 100, 100, TiltState{GlareX: 50, GlareY: 50}},
		{"right of center", 150, 100, TiltState{RotateY: 5, GlareX: 75, GlareY: 50}},
		{"top-left corner", 0, 0, TiltState{RotateX: 10, RotateY: -10, GlareX: 0, GlareY: 0}},
		{"bottom-right corner", 200, 200, TiltState{RotateX: -10, RotateY: 10, GlareX: 100, GlareY: 100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeTilt(tt.px, tt.py, box, DefaultTiltIntensity)
			assertNear(t, "RotateX", got.RotateX, tt.want.RotateX)
			assertNear(t, "RotateY", got.RotateY, tt.want.RotateY)
			assertNear(t, "GlareX", got.GlareX, tt.want.GlareX)
			assertNear(t, "GlareY", got.GlareY, tt.want.GlareY)
		})
	}
}

func TestComputeTiltOffsetBox(t *testing.T) {
	got := ComputeTilt(350, 1025, Rect{X: 300, Y: 1000, Width: 100, Height: 100}, 20)
	assertNear(t, "RotateY", got.RotateY, 0)
	assertNear(t, "RotateX", got.RotateX, 10)
	assertNear(t, "GlareY", got.GlareY, 25)
}

func TestComputeTiltEmptyBoxIsNeutral(t *testing.T) {
	got := ComputeTilt(10, 10, Rect{Width: 0, Height: 50}, 10)
	if got != (TiltState{}) {
		t.Errorf("empty box tilt = %+v, want neutral", got)
	}
	for _, v := range []float64{got.RotateX, got.RotateY, got.GlareX, got.GlareY} {
		if math.IsNaN(v) {
			t.Fatal("NaN in tilt state")
		}
	}
}

func TestTiltTrackerLeaveResets(t *testing.T) {
	src := &fakePointer{}
	tr := NewTiltTracker(src, DefaultTiltIntensity)
	var calls int
	tr.Subscribe(func(TiltState, bool) { calls++ })
	tr.Attach(NewElement("card", 200, 200))

	box := Rect{Width: 200, Height: 200}
	src.send(EventPointerEnter, 150, 100, box)
	if !tr.Hovered() || tr.State().RotateY != 5 {
		t.Fatalf("after enter: hovered %v, state %+v", tr.Hovered(), tr.State())
	}
	src.send(EventPointerLeave, 250, 100, box)
	st := tr.State()
	if tr.Hovered() || st.RotateX != 0 || st.RotateY != 0 {
		t.Errorf("after leave: hovered %v, state %+v", tr.Hovered(), st)
	}
	if st.GlareX != 75 {
		t.Errorf("glare should stay put on leave, GlareX = %v", st.GlareX)
	}
	if calls != 2 {
		t.Errorf("subscriber calls = %d, want 2", calls)
	}
}

func TestTiltTrackerIgnoresButtons(t *testing.T) {
	src := &fakePointer{}
	tr := NewTiltTracker(src, 10)
	calls := 0
	tr.Subscribe(func(TiltState, bool) { calls++ })
	tr.Attach(NewElement("card", 10, 10))
	src.send(EventPointerDown, 1, 1, Rect{Width: 10, Height: 10})
	if calls != 0 {
		t.Error("button events should not update tilt")
	}
}

func TestTiltTrackerNilElement(t *testing.T) {
	src := &fakePointer{}
	tr := NewTiltTracker(src, 10)
	tr.Attach(nil)
	tr.Detach()
	if src.started != 0 || src.stopped != 0 {
		t.Error("nil element should leave the source untouched")
	}
	if tr.State() != (TiltState{}) {
		t.Error("state should be neutral")
	}
}

func TestTiltTrackerWithScene(t *testing.T) {
	s := NewScene(800, 600)
	card := NewBox("card", 200, 200, ColorWhite)
	card.SetPosition(100, 100)
	s.Root().AddChild(card)
	s.FitContent()

	tr := NewTiltTracker(s.PointerSource(), DefaultTiltIntensity)
	tr.Attach(card)
	if !card.Interactable {
		t.Fatal("attaching should make the card interactable")
	}

	s.InjectMove(250, 200)
	s.Step(1.0 / 60)
	if !tr.Hovered() {
		t.Fatal("pointer over the card should hover it")
	}
	assertNear(t, "RotateY", tr.State().RotateY, 5)

	s.InjectMove(700, 500)
	s.Step(1.0 / 60)
	if tr.Hovered() || tr.State().RotateY != 0 {
		t.Errorf("after leaving: hovered %v, state %+v", tr.Hovered(), tr.State())
	}
}
