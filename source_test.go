package kinetic

import "testing"

func TestMeasureIntersection(t *testing.T) {
	visible := Rect{Y: 100, Width: 800, Height: 600}
	tests := []struct {
		name         string
		bounds       Rect
		ratio        float64
		intersecting bool
	}{
		{"fully inside", Rect{Y: 200, Width: 100, Height: 100}, 1, true},
		{"half below", Rect{Y: 650, Width: 100, Height: 100}, 0.5, true},
		{"below", Rect{Y: 800, Width: 100, Height: 100}, 0, false},
		{"touching bottom edge", Rect{Y: 700, Width: 100, Height: 100}, 0, true},
		{"zero area inside", Rect{X: 10, Y: 300}, 1, true},
		{"larger than viewport", Rect{Width: 800, Height: 1200}, 0.5, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := measureIntersection(tt.bounds, visible)
			if e.Ratio != tt.ratio || e.Intersecting != tt.intersecting {
				t.Errorf("entry = ratio %v intersecting %v, want %v %v",
					e.Ratio, e.Intersecting, tt.ratio, tt.intersecting)
			}
			if e.Bounds != tt.bounds || e.Visible != visible {
				t.Error("entry should carry the measured rects")
			}
		})
	}
}

func TestSweepWatches(t *testing.T) {
	a, b, c := &pointerWatch{}, &pointerWatch{stopped: true}, &pointerWatch{}
	ws := []*pointerWatch{a, b, c}
	got := sweepWatches(ws, func(w *pointerWatch) bool { return w.stopped })
	if len(got) != 2 || got[0] != a || got[1] != c {
		t.Errorf("sweep = %v", got)
	}
	if ws[2] != nil {
		t.Error("tail slot should be cleared")
	}
}

func TestIntersectionSourceNotifiesOnChangeOnly(t *testing.T) {
	s := NewScene(800, 600)
	el := NewBox("card", 100, 100, ColorWhite)
	el.SetPosition(0, 200)
	s.Root().AddChild(el)

	var entries []IntersectionEntry
	src := s.IntersectionSource()
	src.Start(el, func(e IntersectionEntry) { entries = append(entries, e) })
	s.Step(0.016)
	s.Step(0.016)
	if len(entries) != 1 || entries[0].Ratio != 1 {
		t.Fatalf("entries = %+v, want one fully visible entry", entries)
	}

	el.SetPosition(0, 550)
	s.Step(0.016)
	if len(entries) != 2 || entries[1].Ratio != 0.5 {
		t.Errorf("entries = %+v, want a 50%% update", entries)
	}

	src.Stop()
	src.Stop()
	el.SetPosition(0, 0)
	s.Step(0.016)
	if len(entries) != 2 {
		t.Error("stopped source still notified")
	}
	if len(s.viewWatches) != 0 {
		t.Errorf("watches = %d, want 0 after sweep", len(s.viewWatches))
	}
}

func TestScrollSourcePageTarget(t *testing.T) {
	s := NewScene(800, 600)
	s.Viewport().SetContentSize(800, 3000)
	var last ScrollSample
	calls := 0
	s.ScrollSource().Start(nil, func(smp ScrollSample) {
		last = smp
		calls++
	})
	s.Step(0.5)
	s.Viewport().SetScroll(0, 300)
	s.Step(0.5)

	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
	if last.Target != (Rect{Width: 800, Height: 3000}) || last.ScrollY != 300 {
		t.Errorf("sample = %+v", last)
	}
	if last.VelocityY != 600 {
		t.Errorf("VelocityY = %v, want 600", last.VelocityY)
	}
}

func TestSourcesSkipUnmounted(t *testing.T) {
	s := NewScene(800, 600)
	el := NewBox("loose", 100, 100, ColorWhite)
	called := false
	s.IntersectionSource().Start(el, func(IntersectionEntry) { called = true })
	s.ScrollSource().Start(el, func(ScrollSample) { called = true })
	s.Step(0.016)
	if called {
		t.Error("unmounted element should not be sampled")
	}
}

func TestSourcesIgnoreDisposedAndNil(t *testing.T) {
	s := NewScene(800, 600)
	el := NewBox("gone", 10, 10, ColorWhite)
	el.Dispose()

	s.IntersectionSource().Start(el, func(IntersectionEntry) {})
	s.IntersectionSource().Start(nil, func(IntersectionEntry) {})
	s.ScrollSource().Start(el, func(ScrollSample) {})
	s.PointerSource().Start(el, func(PointerEvent) {})
	s.PointerSource().Start(nil, func(PointerEvent) {})

	if len(s.viewWatches)+len(s.scrollWatches)+len(s.pointerWatches) != 0 {
		t.Error("no watch should be registered")
	}
}

func TestPointerSourceMakesInteractable(t *testing.T) {
	s := NewScene(800, 600)
	el := NewBox("card", 10, 10, ColorWhite)
	s.Root().AddChild(el)
	s.PointerSource().Start(el, func(PointerEvent) {})
	if !el.Interactable {
		t.Error("Start should make the element interactable")
	}
}

func TestSourceStopsOnDispose(t *testing.T) {
	s := NewScene(800, 600)
	el := NewBox("card", 10, 10, ColorWhite)
	s.Root().AddChild(el)
	s.IntersectionSource().Start(el, func(IntersectionEntry) {})
	s.ScrollSource().Start(el, func(ScrollSample) {})
	s.PointerSource().Start(el, func(PointerEvent) {})

	el.Dispose()
	s.Step(0.016)
	if n := len(s.viewWatches) + len(s.scrollWatches) + len(s.pointerWatches); n != 0 {
		t.Errorf("watches = %d, want 0", n)
	}
}
