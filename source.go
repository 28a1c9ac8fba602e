package kinetic

// Observation sources deliver measurements about one element to one
// callback. Components depend on these interfaces rather than on the Scene so
// they can be driven by simulated sources in tests. Start on a nil element
// is a silent no-op unless the source documents otherwise; Stop is
// idempotent.

// IntersectionEntry describes how much of an element is inside the viewport.
type IntersectionEntry struct {
	// Ratio is the visible fraction of the element's area in [0, 1].
	Ratio float64
	// Intersecting is true when the element touches the viewport at all,
	// including edge contact and zero-area elements.
	Intersecting bool
	// Bounds is the element's layout box in page coordinates.
	Bounds Rect
	// Visible is the page area on screen.
	Visible Rect
}

// IntersectionSource observes an element's intersection with the viewport.
// The callback fires once with the initial state after Start and then
// whenever Ratio or Intersecting changes.
type IntersectionSource interface {
	Start(el *Element, fn func(IntersectionEntry))
	Stop()
}

// ScrollSample is a snapshot of the scroll position relative to a target.
type ScrollSample struct {
	ScrollX, ScrollY float64
	// ViewportWidth and ViewportHeight are the visible page size.
	ViewportWidth, ViewportHeight float64
	// Target is the tracked element's layout box, or the whole scrollable
	// content when the source tracks the page.
	Target Rect
	// VelocityY is the vertical scroll velocity in pixels per second.
	VelocityY float64
}

// ScrollSource samples scroll position for an element, or for the whole page
// when Start is given a nil element. The callback fires once after Start and
// then whenever the scroll position, viewport size, or target box changes.
type ScrollSource interface {
	Start(el *Element, fn func(ScrollSample))
	Stop()
}

// PointerEvent is a pointer enter, move, or leave over an element.
type PointerEvent struct {
	Type EventType
	// X and Y are page coordinates of the pointer.
	X, Y float64
	// Bounds is the element's layout box when the event fired.
	Bounds Rect
}

// PointerSource observes pointer enter/move/leave over an element. Starting
// makes the element interactable.
type PointerSource interface {
	Start(el *Element, fn func(PointerEvent))
	Stop()
}

// --- Scene-backed sources ---

type intersectionWatch struct {
	el      *Element
	fn      func(IntersectionEntry)
	last    IntersectionEntry
	primed  bool
	stopped bool
}

type sceneIntersectionSource struct {
	s *Scene
	w *intersectionWatch
}

// IntersectionSource returns a new viewport intersection source for this scene.
func (s *Scene) IntersectionSource() IntersectionSource {
	return &sceneIntersectionSource{s: s}
}

func (src *sceneIntersectionSource) Start(el *Element, fn func(IntersectionEntry)) {
	if el == nil || fn == nil || src.w != nil || el.IsDisposed() {
		return
	}
	src.w = &intersectionWatch{el: el, fn: fn}
	src.s.viewWatches = append(src.s.viewWatches, src.w)
	el.OnDispose(src.Stop)
}

func (src *sceneIntersectionSource) Stop() {
	if src.w != nil {
		src.w.stopped = true
	}
}

type scrollWatch struct {
	el      *Element
	fn      func(ScrollSample)
	last    ScrollSample
	primed  bool
	stopped bool
}

type sceneScrollSource struct {
	s *Scene
	w *scrollWatch
}

// ScrollSource returns a new scroll source for this scene.
func (s *Scene) ScrollSource() ScrollSource {
	return &sceneScrollSource{s: s}
}

func (src *sceneScrollSource) Start(el *Element, fn func(ScrollSample)) {
	if fn == nil || src.w != nil {
		return
	}
	if el != nil && el.IsDisposed() {
		return
	}
	src.w = &scrollWatch{el: el, fn: fn}
	src.s.scrollWatches = append(src.s.scrollWatches, src.w)
	if el != nil {
		el.OnDispose(src.Stop)
	}
}

func (src *sceneScrollSource) Stop() {
	if src.w != nil {
		src.w.stopped = true
	}
}

type pointerWatch struct {
	el      *Element
	fn      func(PointerEvent)
	stopped bool
}

type scenePointerSource struct {
	s *Scene
	w *pointerWatch
}

// PointerSource returns a new pointer source for this scene.
func (s *Scene) PointerSource() PointerSource {
	return &scenePointerSource{s: s}
}

func (src *scenePointerSource) Start(el *Element, fn func(PointerEvent)) {
	if el == nil || fn == nil || src.w != nil || el.IsDisposed() {
		return
	}
	el.Interactable = true
	src.w = &pointerWatch{el: el, fn: fn}
	src.s.pointerWatches = append(src.s.pointerWatches, src.w)
	el.OnDispose(src.Stop)
}

func (src *scenePointerSource) Stop() {
	if src.w != nil {
		src.w.stopped = true
	}
}

// --- Sampling ---

// measureIntersection computes the entry for bounds against the visible rect.
func measureIntersection(bounds, visible Rect) IntersectionEntry {
	e := IntersectionEntry{Bounds: bounds, Visible: visible}
	e.Intersecting = bounds.Intersects(visible)
	if !e.Intersecting {
		return e
	}
	area := bounds.Area()
	if area <= 0 {
		e.Ratio = 1
		return e
	}
	e.Ratio = Clamp(bounds.Intersection(visible).Area()/area, 0, 1)
	return e
}

// sampleObservers measures every live watch and notifies on change. Watches
// on elements that are not mounted under the root are skipped.
func (s *Scene) sampleObservers() {
	visible := s.viewport.VisibleBounds()
	_, vy := s.viewport.Velocity()

	for i := 0; i < len(s.viewWatches); i++ {
		w := s.viewWatches[i]
		if w.stopped || !w.el.Mounted(s.root) {
			continue
		}
		entry := measureIntersection(w.el.Bounds(), visible)
		if w.primed && entry.Ratio == w.last.Ratio && entry.Intersecting == w.last.Intersecting {
			continue
		}
		w.primed = true
		w.last = entry
		w.fn(entry)
	}

	content := Rect{Width: s.viewport.ContentWidth, Height: s.viewport.ContentHeight}
	for i := 0; i < len(s.scrollWatches); i++ {
		w := s.scrollWatches[i]
		if w.stopped {
			continue
		}
		target := content
		if w.el != nil {
			if !w.el.Mounted(s.root) {
				continue
			}
			target = w.el.Bounds()
		}
		sample := ScrollSample{
			ScrollX:        visible.X,
			ScrollY:        visible.Y,
			ViewportWidth:  visible.Width,
			ViewportHeight: visible.Height,
			Target:         target,
			VelocityY:      vy,
		}
		if w.primed && sample.ScrollX == w.last.ScrollX && sample.ScrollY == w.last.ScrollY &&
			sample.ViewportWidth == w.last.ViewportWidth && sample.ViewportHeight == w.last.ViewportHeight &&
			sample.Target == w.last.Target {
			continue
		}
		w.primed = true
		w.last = sample
		w.fn(sample)
	}

	s.viewWatches = sweepWatches(s.viewWatches, func(w *intersectionWatch) bool { return w.stopped })
	s.scrollWatches = sweepWatches(s.scrollWatches, func(w *scrollWatch) bool { return w.stopped })
}

// sweepWatches drops stopped watches in place.
func sweepWatches[T any](ws []*T, stopped func(*T) bool) []*T {
	live := ws[:0]
	for _, w := range ws {
		if !stopped(w) {
			live = append(live, w)
		}
	}
	for i := len(live); i < len(ws); i++ {
		ws[i] = nil
	}
	return live
}
