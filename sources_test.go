package kinetic

// Simulated observation sources. Tests push measurements by hand.

type fakeIntersection struct {
	el      *Element
	fn      func(IntersectionEntry)
	started int
	stopped int
}

func (f *fakeIntersection) Start(el *Element, fn func(IntersectionEntry)) {
	f.started++
	f.el, f.fn = el, fn
}

func (f *fakeIntersection) Stop() { f.stopped++ }

// push delivers an entry with the given visible ratio.
func (f *fakeIntersection) push(ratio float64) {
	f.fn(IntersectionEntry{Ratio: ratio, Intersecting: ratio > 0})
}

type fakeScroll struct {
	el      *Element
	fn      func(ScrollSample)
	started int
	stopped int
}

func (f *fakeScroll) Start(el *Element, fn func(ScrollSample)) {
	f.started++
	f.el, f.fn = el, fn
}

func (f *fakeScroll) Stop() { f.stopped++ }

// at delivers a sample for a target at targetY with the given height, seen
// through a viewport of height vh scrolled to scrollY.
func (f *fakeScroll) at(scrollY, targetY, height, vh float64) {
	f.fn(ScrollSample{
		ScrollY:        scrollY,
		ViewportWidth:  800,
		ViewportHeight: vh,
		Target:         Rect{Y: targetY, Width: 800, Height: height},
	})
}

type fakePointer struct {
	el      *Element
	fn      func(PointerEvent)
	started int
	stopped int
}

func (f *fakePointer) Start(el *Element, fn func(PointerEvent)) {
	f.started++
	f.el, f.fn = el, fn
}

func (f *fakePointer) Stop() { f.stopped++ }

func (f *fakePointer) send(typ EventType, x, y float64, bounds Rect) {
	f.fn(PointerEvent{Type: typ, X: x, Y: y, Bounds: bounds})
}
