package kinetic

import "testing"

func TestNewScene(t *testing.T) {
	s := NewScene(1024, 768)
	if s.Root() == nil || s.Root().Name != "root" {
		t.Fatal("scene should have a root")
	}
	if got := s.Viewport().Screen; got.Width != 1024 || got.Height != 768 {
		t.Errorf("screen = %+v", got)
	}
	if s.Logger() == nil {
		t.Error("logger should default to a no-op")
	}
}

func TestSceneElapsedAndFrame(t *testing.T) {
	s := NewScene(100, 100)
	s.Step(0.25)
	s.Step(0.5)
	if s.Elapsed() != 0.75 || s.Frame() != 2 {
		t.Errorf("elapsed %v frame %d, want 0.75 and 2", s.Elapsed(), s.Frame())
	}
}

func TestSceneFitContent(t *testing.T) {
	s := NewScene(800, 600)
	a := NewElement("hero", 800, 600)
	b := NewElement("footer", 900, 300)
	b.SetPosition(0, 600)
	b.SetOffset(0, 500)
	s.Root().AddChild(a)
	s.Root().AddChild(b)
	s.FitContent()

	v := s.Viewport()
	if v.ContentWidth != 900 || v.ContentHeight != 900 {
		t.Errorf("content = %vx%v, want 900x900 from layout boxes", v.ContentWidth, v.ContentHeight)
	}
	if s.Root().Height != 900 {
		t.Errorf("root height = %v, want 900", s.Root().Height)
	}
}

func TestSceneObserversSeeInputChanges(t *testing.T) {
	s := NewScene(800, 600)
	el := NewBox("card", 100, 100, ColorWhite)
	el.SetPosition(0, 2000)
	s.Root().AddChild(el)

	var seen []float64
	s.IntersectionSource().Start(el, func(e IntersectionEntry) { seen = append(seen, e.Ratio) })
	s.OnScroll(func(_, _ float64) { el.SetPosition(0, 100) })

	s.Step(0.016)
	s.InjectScroll(0, 10)
	s.Step(0.016)
	if len(seen) != 2 || seen[1] != 1 {
		t.Errorf("ratios = %v, want the move seen in the same frame", seen)
	}
}

func TestSceneFrameTasksSeeSampledObservers(t *testing.T) {
	s := NewScene(800, 600)
	el := NewBox("card", 100, 100, ColorWhite)
	s.Root().AddChild(el)

	visible := false
	s.IntersectionSource().Start(el, func(e IntersectionEntry) { visible = e.Intersecting })
	var atTask bool
	s.OnFrame(nil, func(float64) { atTask = visible })
	s.Step(0.016)
	if !atTask {
		t.Error("frame task should run after observers")
	}
}

func TestSceneSetDebugMode(t *testing.T) {
	s := NewScene(100, 100)
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)
	if !s.debug || !globalDebug {
		t.Error("debug mode should be on")
	}
}
