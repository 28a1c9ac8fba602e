package kinetic

import "github.com/hajimehoshi/ebiten/v2"

// PointerContext carries pointer event data.
type PointerContext struct {
	Element  *Element
	UserData any
	GlobalX  float64
	GlobalY  float64
	LocalX   float64
	LocalY   float64
	ScreenX  float64
	ScreenY  float64
}

// Shadow is a soft drop shadow drawn beneath an element.
type Shadow struct {
	OffsetY float64
	Blur    float64
	Alpha   float64
}

// Glare is a light sheen drawn over an element. X and Y are percentages of
// the element's size; Rotation is in degrees.
type Glare struct {
	X, Y     float64
	Rotation float64
	Opacity  float64
}

// --- ID counter ---

// elementIDCounter is a plain counter (no atomic: kinetic is single-threaded).
var elementIDCounter uint32

func nextElementID() uint32 {
	elementIDCounter++
	return elementIDCounter
}

// Element is a rectangle in the page. Layout fields (X, Y, Width, Height)
// decide where the element sits and are what observers measure. Presentation
// fields (offsets, rotation, scale, tilt, alpha) are written by effects and
// only change how the element is drawn.
type Element struct {
	// Identity
	ID   uint32
	Name string

	// Hierarchy
	Parent   *Element
	children []*Element

	// Layout, local to the parent.
	X, Y          float64
	Width, Height float64

	// Presentation
	OffsetX, OffsetY float64
	Rotation         float64 // degrees, clockwise
	Scale            float64
	RotateX, RotateY float64 // degrees of pseudo-3D tilt
	Alpha            float64

	Color      Color
	Label      string
	LabelColor Color
	Border     bool
	Shadow     Shadow
	Glare      *Glare

	labelImage *ebiten.Image
	labelText  string

	// Computed during traversal.
	worldTransform  [6]float64
	layoutTransform [6]float64
	worldAlpha      float64
	transformDirty  bool

	// Visibility & interaction
	Visible      bool
	Interactable bool
	ClipChildren bool

	// Ordering
	ZIndex int

	// Metadata
	UserData any

	// Per-element callbacks (nil by default)
	OnPointerDown  func(PointerContext)
	OnPointerUp    func(PointerContext)
	OnPointerMove  func(PointerContext)
	OnClick        func(PointerContext)
	OnPointerEnter func(PointerContext)
	OnPointerLeave func(PointerContext)

	// Internal
	disposed       bool
	cleanups       []func()
	childrenSorted bool
	sortedChildren []*Element
}

// NewElement creates an element of the given size. It has no fill color.
func NewElement(name string, w, h float64) *Element {
	e := &Element{
		ID:             nextElementID(),
		Name:           name,
		Width:          w,
		Height:         h,
		Scale:          1,
		Alpha:          1,
		LabelColor:     ColorWhite,
		Visible:        true,
		transformDirty: true,
		childrenSorted: true,
	}
	return e
}

// NewBox creates a filled element.
func NewBox(name string, w, h float64, c Color) *Element {
	e := NewElement(name, w, h)
	e.Color = c
	return e
}

// NewLabel creates an unfilled element that draws text. The size is derived
// from the debug font cell (6x16 pixels per glyph).
func NewLabel(name, text string, c Color) *Element {
	w, h := MeasureLabel(text)
	e := NewElement(name, w, h)
	e.Label = text
	e.LabelColor = c
	return e
}

// --- Tree manipulation ---

// AddChild appends child to this element's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this element (cycle).
func (e *Element) AddChild(child *Element) {
	if child == nil {
		panic("kinetic: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(e, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, e) {
		panic("kinetic: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = e
	e.children = append(e.children, child)
	e.childrenSorted = false
	markSubtreeDirty(child)
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(e)
	}
}

// RemoveChild detaches child from this element.
// Panics if child.Parent != e.
func (e *Element) RemoveChild(child *Element) {
	if child.Parent != e {
		panic("kinetic: child's parent is not this element")
	}
	e.removeChildByPtr(child)
	child.Parent = nil
	e.childrenSorted = false
	markSubtreeDirty(child)
}

// RemoveFromParent detaches this element from its parent.
// No-op if this element has no parent.
func (e *Element) RemoveFromParent() {
	if e.Parent == nil {
		return
	}
	e.Parent.RemoveChild(e)
}

// RemoveChildren detaches all children. Children are NOT disposed.
func (e *Element) RemoveChildren() {
	for _, child := range e.children {
		child.Parent = nil
		markSubtreeDirty(child)
	}
	e.children = e.children[:0]
	e.childrenSorted = false
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (e *Element) Children() []*Element {
	return e.children
}

// NumChildren returns the number of children.
func (e *Element) NumChildren() int {
	return len(e.children)
}

// SetZIndex sets the element's ZIndex and marks the parent's children as unsorted.
func (e *Element) SetZIndex(z int) {
	if e.ZIndex == z {
		return
	}
	e.ZIndex = z
	if e.Parent != nil {
		e.Parent.childrenSorted = false
	}
}

// Mounted reports whether the element is attached under root.
func (e *Element) Mounted(root *Element) bool {
	if e == nil || e.disposed {
		return false
	}
	return isAncestor(root, e)
}

// --- Disposal ---

// OnDispose registers fn to run when the element is disposed. Effects use it
// to release observers and frame tasks. Functions run in reverse
// registration order. Registering on a disposed element runs fn at once.
func (e *Element) OnDispose(fn func()) {
	if fn == nil {
		return
	}
	if e.disposed {
		fn()
		return
	}
	e.cleanups = append(e.cleanups, fn)
}

// Dispose removes this element from its parent, marks it as disposed,
// releases everything attached to it, and recursively disposes all
// descendants.
func (e *Element) Dispose() {
	if e.disposed {
		return
	}
	e.RemoveFromParent()
	e.dispose()
}

func (e *Element) dispose() {
	e.disposed = true
	for _, child := range e.children {
		child.Parent = nil
		child.dispose()
	}
	cleanups := e.cleanups
	e.cleanups = nil
	for i := len(cleanups) - 1; i >= 0; i-- {
		cleanups[i]()
	}
	e.ID = 0
	e.children = nil
	e.sortedChildren = nil
	e.Parent = nil
	e.Glare = nil
	if e.labelImage != nil {
		e.labelImage.Deallocate()
		e.labelImage = nil
	}
	e.UserData = nil
	e.OnPointerDown = nil
	e.OnPointerUp = nil
	e.OnPointerMove = nil
	e.OnClick = nil
	e.OnPointerEnter = nil
	e.OnPointerLeave = nil
}

// IsDisposed returns true if this element has been disposed.
func (e *Element) IsDisposed() bool {
	return e.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of (or equal to) el.
func isAncestor(candidate, el *Element) bool {
	for p := el; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from e.children without clearing child.Parent.
func (e *Element) removeChildByPtr(child *Element) {
	for i, c := range e.children {
		if c == child {
			copy(e.children[i:], e.children[i+1:])
			e.children[len(e.children)-1] = nil
			e.children = e.children[:len(e.children)-1]
			return
		}
	}
}

// markSubtreeDirty sets transformDirty on el and all its descendants.
func markSubtreeDirty(el *Element) {
	el.transformDirty = true
	for _, child := range el.children {
		markSubtreeDirty(child)
	}
}

// sortedChildList returns children in ZIndex order, stable for equal values.
func (e *Element) sortedChildList() []*Element {
	if e.childrenSorted {
		if e.sortedChildren != nil {
			return e.sortedChildren
		}
		return e.children
	}
	e.sortedChildren = append(e.sortedChildren[:0], e.children...)
	s := e.sortedChildren
	// Insertion sort: child lists are short and usually nearly sorted.
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j].ZIndex < s[j-1].ZIndex; j-- {
			s[j], s[j-1] = s[j-1], s[j]
		}
	}
	e.childrenSorted = true
	return s
}
