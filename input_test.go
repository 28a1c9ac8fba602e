package kinetic

import "testing"

func newInputScene() (*Scene, *Element) {
	s := NewScene(800, 600)
	box := NewBox("box", 100, 100, ColorWhite)
	box.SetPosition(50, 50)
	box.Interactable = true
	s.Root().AddChild(box)
	updateWorldTransform(s.root, identityTransform, 1.0, false)
	return s, box
}

// --- Hit testing ---

func TestHitTestTopmost(t *testing.T) {
	s, box := newInputScene()
	over := NewBox("over", 100, 100, ColorWhite)
	over.SetPosition(100, 100)
	over.Interactable = true
	s.Root().AddChild(over)
	updateWorldTransform(s.root, identityTransform, 1.0, false)

	if got := s.hitTest(120, 120); got != over {
		t.Errorf("hitTest overlap = %v, want over", got)
	}
	if got := s.hitTest(60, 60); got != box {
		t.Errorf("hitTest box only = %v, want box", got)
	}
	if got := s.hitTest(700, 500); got != nil {
		t.Errorf("hitTest miss = %v, want nil", got)
	}
}

func TestHitTestRespectsZIndex(t *testing.T) {
	s, box := newInputScene()
	over := NewBox("over", 100, 100, ColorWhite)
	over.SetPosition(50, 50)
	over.Interactable = true
	s.Root().AddChild(over)
	box.SetZIndex(1)
	updateWorldTransform(s.root, identityTransform, 1.0, false)

	if got := s.hitTest(60, 60); got != box {
		t.Errorf("hitTest = %v, want box with higher ZIndex", got)
	}
}

func TestHitTestSkips(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*Element)
	}{
		{"invisible", func(e *Element) { e.Visible = false }},
		{"not interactable", func(e *Element) { e.Interactable = false }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, box := newInputScene()
			tt.setup(box)
			if got := s.hitTest(60, 60); got != nil {
				t.Errorf("hitTest = %v, want nil", got)
			}
		})
	}
}

func TestHitTestUsesLayoutBox(t *testing.T) {
	s, box := newInputScene()
	box.SetOffset(0, 300)
	box.SetTilt(20, 20)
	updateWorldTransform(s.root, identityTransform, 1.0, false)

	if got := s.hitTest(60, 60); got != box {
		t.Error("presentation offset should not move the hover region")
	}
	if got := s.hitTest(60, 380); got != nil {
		t.Error("drawn position should not be hit")
	}
}

func TestHitTestFollowsScroll(t *testing.T) {
	s, box := newInputScene()
	s.Viewport().SetScroll(0, 40)
	var entered bool
	box.OnPointerEnter = func(PointerContext) { entered = true }

	// Screen (60, 20) is page (60, 60).
	s.InjectMove(60, 20)
	s.Step(0.016)
	if !entered {
		t.Error("enter should fire at the scrolled page position")
	}
}

// --- Enter / leave / click ---

func TestPointerEnterLeave(t *testing.T) {
	s, box := newInputScene()
	var events []string
	box.OnPointerEnter = func(PointerContext) { events = append(events, "enter") }
	box.OnPointerLeave = func(PointerContext) { events = append(events, "leave") }

	s.InjectMove(10, 10)
	s.InjectMove(60, 60)
	s.InjectMove(70, 70)
	s.InjectMove(300, 300)
	for s.PendingInput() > 0 {
		s.Step(0.016)
	}

	want := []string{"enter", "leave"}
	if len(events) != len(want) || events[0] != want[0] || events[1] != want[1] {
		t.Errorf("events = %v, want %v", events, want)
	}
}

func TestPointerLeaveWindow(t *testing.T) {
	s, box := newInputScene()
	left := false
	box.OnPointerLeave = func(PointerContext) { left = true }
	s.InjectMove(60, 60)
	s.InjectLeave()
	s.Step(0.016)
	s.Step(0.016)
	if !left {
		t.Error("leaving the window should fire leave")
	}
}

func TestHoverFollowsContentUnderStationaryPointer(t *testing.T) {
	s, box := newInputScene()
	s.Viewport().SetContentSize(800, 2000)
	entered, left := 0, 0
	box.OnPointerEnter = func(PointerContext) { entered++ }
	box.OnPointerLeave = func(PointerContext) { left++ }

	s.InjectMove(60, 60)
	s.Step(0.016)
	s.InjectScroll(0, 200)
	s.Step(0.016)

	if entered != 1 || left != 1 {
		t.Errorf("entered %d left %d, want 1 and 1", entered, left)
	}
}

func TestClick(t *testing.T) {
	s, box := newInputScene()
	var ctx PointerContext
	clicks := 0
	box.UserData = "payload"
	box.OnClick = func(c PointerContext) {
		clicks++
		ctx = c
	}

	s.InjectClick(60, 70)
	s.Step(0.016)
	if clicks != 0 {
		t.Fatal("click should not fire on press frame")
	}
	s.Step(0.016)
	if clicks != 1 {
		t.Fatalf("clicks = %d, want 1", clicks)
	}
	if ctx.Element != box || ctx.UserData != "payload" {
		t.Errorf("ctx = %+v", ctx)
	}
	if ctx.LocalX != 10 || ctx.LocalY != 20 {
		t.Errorf("local = (%v, %v), want (10, 20)", ctx.LocalX, ctx.LocalY)
	}
}

func TestClickNotFiredOnDifferentElement(t *testing.T) {
	s, box := newInputScene()
	clicked := false
	box.OnClick = func(PointerContext) { clicked = true }
	s.InjectPress(60, 60)
	s.InjectRelease(400, 400)
	s.Step(0.016)
	s.Step(0.016)
	if clicked {
		t.Error("release elsewhere should not click")
	}
}

func TestSceneHandlersFireBeforeElement(t *testing.T) {
	s, box := newInputScene()
	var order []string
	s.On(EventPointerDown, func(PointerContext) { order = append(order, "scene") })
	box.OnPointerDown = func(PointerContext) { order = append(order, "element") }
	s.InjectPress(60, 60)
	s.Step(0.016)
	if len(order) != 2 || order[0] != "scene" || order[1] != "element" {
		t.Errorf("order = %v, want [scene element]", order)
	}
}

func TestSceneHandlerFiresWithoutTarget(t *testing.T) {
	s, _ := newInputScene()
	var got PointerContext
	fired := false
	s.On(EventPointerDown, func(c PointerContext) {
		fired = true
		got = c
	})
	s.InjectPress(500, 500)
	s.Step(0.016)
	if !fired || got.Element != nil {
		t.Errorf("fired %v element %v, want true and nil", fired, got.Element)
	}
}

func TestCallbackHandleRemove(t *testing.T) {
	s, _ := newInputScene()
	calls := 0
	h := s.On(EventPointerMove, func(PointerContext) { calls++ })
	s.InjectMove(10, 10)
	s.Step(0.016)
	h.Remove()
	h.Remove()
	s.InjectMove(20, 20)
	s.Step(0.016)
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestOnUnknownEventIsNoOp(t *testing.T) {
	s, _ := newInputScene()
	h := s.On(EventType(99), func(PointerContext) {})
	h.Remove()
	var zero CallbackHandle
	zero.Remove()
}

// --- Wheel ---

func TestOnScroll(t *testing.T) {
	s, _ := newInputScene()
	s.Viewport().SetContentSize(800, 3000)
	var gotDY float64
	h := s.OnScroll(func(dx, dy float64) { gotDY += dy })
	s.InjectScroll(0, 120)
	s.Step(0.016)
	if gotDY != 120 || s.Viewport().ScrollY != 120 {
		t.Errorf("dy %v scrollY %v, want 120 and 120", gotDY, s.Viewport().ScrollY)
	}

	h.Remove()
	s.InjectScroll(0, 30)
	s.Step(0.016)
	if gotDY != 120 {
		t.Errorf("removed handler still fired: dy %v", gotDY)
	}
	if s.Viewport().ScrollY != 150 {
		t.Errorf("ScrollY = %v, want 150", s.Viewport().ScrollY)
	}
}

func TestDisposedHoverTargetIsCleared(t *testing.T) {
	s, box := newInputScene()
	s.InjectMove(60, 60)
	s.Step(0.016)
	if s.pointer.hoverTarget != box {
		t.Fatal("box should be hovered")
	}
	box.Dispose()
	s.Step(0.016)
	if s.pointer.hoverTarget != nil {
		t.Error("disposed element should not stay hovered")
	}
}
