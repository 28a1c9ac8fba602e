package kinetic

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// --- Pointer state ---

type pointerState struct {
	down        bool
	inside      bool
	lastSX      float64
	lastSY      float64
	pressTarget *Element
	hoverTarget *Element // element under the pointer last frame
	everMoved   bool
}

// --- Handler registry ---

type pointerHandler struct {
	id uint32
	fn func(PointerContext)
}

type handlerRegistry struct {
	pointerDown  []pointerHandler
	pointerUp    []pointerHandler
	pointerMove  []pointerHandler
	pointerEnter []pointerHandler
	pointerLeave []pointerHandler
	click        []pointerHandler
	scroll       []scrollHandler
	nextID       uint32
}

type scrollHandler struct {
	id uint32
	fn func(dx, dy float64)
}

// CallbackHandle allows removing a registered scene-level callback.
type CallbackHandle struct {
	id     uint32
	reg    *handlerRegistry
	event  EventType
	scroll bool
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	if h.scroll {
		for i := range h.reg.scroll {
			if h.reg.scroll[i].id == h.id {
				h.reg.scroll = append(h.reg.scroll[:i], h.reg.scroll[i+1:]...)
				return
			}
		}
		return
	}
	list := h.reg.list(h.event)
	if list != nil {
		*list = removePointerHandler(*list, h.id)
	}
}

func (r *handlerRegistry) list(event EventType) *[]pointerHandler {
	switch event {
	case EventPointerDown:
		return &r.pointerDown
	case EventPointerUp:
		return &r.pointerUp
	case EventPointerMove:
		return &r.pointerMove
	case EventPointerEnter:
		return &r.pointerEnter
	case EventPointerLeave:
		return &r.pointerLeave
	case EventClick:
		return &r.click
	}
	return nil
}

func removePointerHandler(s []pointerHandler, id uint32) []pointerHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = pointerHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

// --- Scene-level event registration ---

// On registers a scene-level callback for a pointer event type. Scene-level
// callbacks fire before the element's own callback, including when no
// element is under the pointer.
func (s *Scene) On(event EventType, fn func(PointerContext)) CallbackHandle {
	list := s.handlers.list(event)
	if list == nil || fn == nil {
		return CallbackHandle{}
	}
	s.handlers.nextID++
	id := s.handlers.nextID
	*list = append(*list, pointerHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, event: event}
}

// OnScroll registers a callback fired for each wheel scroll, with the page
// distance requested on each axis.
func (s *Scene) OnScroll(fn func(dx, dy float64)) CallbackHandle {
	s.handlers.nextID++
	id := s.handlers.nextID
	s.handlers.scroll = append(s.handlers.scroll, scrollHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, scroll: true}
}

// --- Hit testing ---

// collectInteractable walks the tree in painter order (DFS, ZIndex-sorted),
// appending interactable elements to buf. Invisible subtrees are skipped.
func (s *Scene) collectInteractable(e *Element, buf []*Element) []*Element {
	if !e.Visible {
		return buf
	}
	if e.Interactable && e != s.root {
		buf = append(buf, e)
	}
	for _, child := range e.sortedChildList() {
		buf = s.collectInteractable(child, buf)
	}
	return buf
}

// hitTest finds the topmost interactable element whose layout box contains
// the page point. Layout boxes are used so that tilting or lifting an
// element under the pointer does not move its hover region.
func (s *Scene) hitTest(worldX, worldY float64) *Element {
	s.hitBuf = s.collectInteractable(s.root, s.hitBuf[:0])
	for i := len(s.hitBuf) - 1; i >= 0; i-- {
		e := s.hitBuf[i]
		if e.Bounds().Contains(worldX, worldY) {
			return e
		}
	}
	return nil
}

// --- Input processing ---

// processInput handles one frame of pointer and wheel input. Injected events
// take priority over the device; when neither produces an event the last
// pointer position is re-evaluated so hover follows content that scrolls
// under a stationary pointer.
func (s *Scene) processInput(readDevice bool) {
	if s.processInjectedInput() {
		s.sweepPointerWatches()
		return
	}

	if readDevice {
		if wx, wy := ebiten.Wheel(); wx != 0 || wy != 0 {
			s.wheel(-wx*s.viewport.WheelStep, -wy*s.viewport.WheelStep)
		}
		mx, my := ebiten.CursorPosition()
		sx, sy := float64(mx), float64(my)
		inside := s.viewport.Screen.Contains(sx, sy)
		pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
		s.processPointer(sx, sy, pressed, inside)
	} else if s.pointer.inside {
		s.processPointer(s.pointer.lastSX, s.pointer.lastSY, s.pointer.down, true)
	}
	s.sweepPointerWatches()
}

// wheel scrolls the viewport and notifies scroll handlers.
func (s *Scene) wheel(dx, dy float64) {
	s.viewport.ScrollBy(dx, dy)
	for _, h := range s.handlers.scroll {
		h.fn(dx, dy)
	}
}

// processPointer runs the pointer state machine. Screen coordinates are
// converted to page coordinates through the viewport.
func (s *Scene) processPointer(sx, sy float64, pressed, inside bool) {
	ps := &s.pointer
	wx, wy := s.viewport.ScreenToWorld(sx, sy)

	var target *Element
	if inside {
		target = s.hitTest(wx, wy)
	}

	if target != ps.hoverTarget {
		if ps.hoverTarget != nil {
			s.firePointer(EventPointerLeave, ps.hoverTarget, wx, wy, sx, sy)
		}
		if target != nil {
			s.firePointer(EventPointerEnter, target, wx, wy, sx, sy)
		}
		ps.hoverTarget = target
	}

	moved := !ps.everMoved || sx != ps.lastSX || sy != ps.lastSY
	if inside && moved {
		s.firePointer(EventPointerMove, target, wx, wy, sx, sy)
		ps.everMoved = true
	}

	if pressed && !ps.down {
		ps.down = true
		ps.pressTarget = target
		s.firePointer(EventPointerDown, target, wx, wy, sx, sy)
	} else if !pressed && ps.down {
		if ps.pressTarget != nil && ps.pressTarget == target {
			s.firePointer(EventClick, target, wx, wy, sx, sy)
		}
		s.firePointer(EventPointerUp, target, wx, wy, sx, sy)
		ps.down = false
		ps.pressTarget = nil
	}

	ps.inside = inside
	ps.lastSX, ps.lastSY = sx, sy
	if !inside {
		ps.everMoved = false
	}
}

// --- Event dispatch ---

func (s *Scene) firePointer(event EventType, el *Element, wx, wy, sx, sy float64) {
	var lx, ly float64
	var userData any
	if el != nil {
		b := el.Bounds()
		lx, ly = wx-b.X, wy-b.Y
		userData = el.UserData
	}
	ctx := PointerContext{
		Element: el, UserData: userData,
		GlobalX: wx, GlobalY: wy, LocalX: lx, LocalY: ly,
		ScreenX: sx, ScreenY: sy,
	}
	if list := s.handlers.list(event); list != nil {
		for _, h := range *list {
			h.fn(ctx)
		}
	}
	if el == nil {
		return
	}

	var cb func(PointerContext)
	switch event {
	case EventPointerDown:
		cb = el.OnPointerDown
	case EventPointerUp:
		cb = el.OnPointerUp
	case EventPointerMove:
		cb = el.OnPointerMove
	case EventClick:
		cb = el.OnClick
	case EventPointerEnter:
		cb = el.OnPointerEnter
	case EventPointerLeave:
		cb = el.OnPointerLeave
	}
	if cb != nil {
		cb(ctx)
	}

	switch event {
	case EventPointerEnter, EventPointerMove, EventPointerLeave:
		pe := PointerEvent{Type: event, X: wx, Y: wy, Bounds: el.Bounds()}
		for i := 0; i < len(s.pointerWatches); i++ {
			w := s.pointerWatches[i]
			if !w.stopped && w.el == el {
				w.fn(pe)
			}
		}
	}
}

func (s *Scene) sweepPointerWatches() {
	s.pointerWatches = sweepWatches(s.pointerWatches, func(w *pointerWatch) bool { return w.stopped })
	if s.pointer.hoverTarget != nil && s.pointer.hoverTarget.IsDisposed() {
		s.pointer.hoverTarget = nil
	}
	if s.pointer.pressTarget != nil && s.pointer.pressTarget.IsDisposed() {
		s.pointer.pressTarget = nil
	}
}
