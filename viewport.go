package kinetic

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scrollAnim holds active scroll-to tweens for both axes.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Viewport is the visible window into the page: a scroll position, a screen
// rectangle, and the content extent that scrolling is clamped to.
type Viewport struct {
	// ScrollX and ScrollY are the page coordinates of the viewport's top-left corner.
	ScrollX, ScrollY float64
	// Screen is the screen-space rectangle the page renders into.
	Screen Rect

	// ContentWidth and ContentHeight bound scrolling. Zero disables clamping
	// on that axis.
	ContentWidth  float64
	ContentHeight float64

	// WheelStep is the page distance scrolled per wheel notch.
	WheelStep float64

	prevX, prevY         float64
	velocityX, velocityY float64
	sizeChanged          bool

	viewMatrix    [6]float64
	invViewMatrix [6]float64
	dirty         bool

	scrollTween *scrollAnim
}

const defaultWheelStep = 60

// newViewport creates a Viewport with default values and the given screen rect.
func newViewport(screen Rect) *Viewport {
	return &Viewport{
		Screen:      screen,
		WheelStep:   defaultWheelStep,
		dirty:       true,
		sizeChanged: true,
	}
}

// ScrollTo animates the scroll position to (x, y) over duration seconds.
// A zero duration jumps immediately.
func (v *Viewport) ScrollTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	if duration <= 0 {
		v.scrollTween = nil
		v.SetScroll(x, y)
		return
	}
	if easeFn == nil {
		easeFn = ease.OutCubic
	}
	v.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(v.ScrollX), float32(x), duration, easeFn),
		tweenY: gween.New(float32(v.ScrollY), float32(y), duration, easeFn),
	}
}

// ScrollBy moves the scroll position by (dx, dy) immediately, cancelling any
// running ScrollTo animation.
func (v *Viewport) ScrollBy(dx, dy float64) {
	v.scrollTween = nil
	v.SetScroll(v.ScrollX+dx, v.ScrollY+dy)
}

// SetScroll sets the scroll position immediately and clamps it to the content.
func (v *Viewport) SetScroll(x, y float64) {
	v.ScrollX = x
	v.ScrollY = y
	v.clampToContent()
	v.dirty = true
}

// Resize changes the screen rectangle. Observers resample on the next frame.
func (v *Viewport) Resize(w, h float64) {
	if v.Screen.Width == w && v.Screen.Height == h {
		return
	}
	v.Screen.Width = w
	v.Screen.Height = h
	v.sizeChanged = true
	v.dirty = true
	v.clampToContent()
}

// SetContentSize sets the scrollable extent and re-clamps the scroll position.
func (v *Viewport) SetContentSize(w, h float64) {
	v.ContentWidth = w
	v.ContentHeight = h
	v.sizeChanged = true
	v.clampToContent()
}

// Scrolling reports whether a ScrollTo animation is running.
func (v *Viewport) Scrolling() bool {
	return v.scrollTween != nil
}

// Velocity returns the scroll velocity in page pixels per second measured
// over the last frame.
func (v *Viewport) Velocity() (vx, vy float64) {
	return v.velocityX, v.velocityY
}

// MaxScroll returns the largest reachable scroll position on each axis.
func (v *Viewport) MaxScroll() (float64, float64) {
	return math.Max(0, v.ContentWidth-v.Screen.Width), math.Max(0, v.ContentHeight-v.Screen.Height)
}

// update advances the scroll animation and measures velocity. Called once
// per frame from Scene.Step, after input.
func (v *Viewport) update(dt float32) {
	if v.scrollTween != nil {
		if !v.scrollTween.doneX {
			val, done := v.scrollTween.tweenX.Update(dt)
			v.ScrollX = float64(val)
			v.scrollTween.doneX = done
		}
		if !v.scrollTween.doneY {
			val, done := v.scrollTween.tweenY.Update(dt)
			v.ScrollY = float64(val)
			v.scrollTween.doneY = done
		}
		if v.scrollTween.doneX && v.scrollTween.doneY {
			v.scrollTween = nil
		}
		v.clampToContent()
	}

	if dt > 0 {
		v.velocityX = (v.ScrollX - v.prevX) / float64(dt)
		v.velocityY = (v.ScrollY - v.prevY) / float64(dt)
	}
	if v.ScrollX != v.prevX || v.ScrollY != v.prevY {
		v.dirty = true
	}
	v.prevX, v.prevY = v.ScrollX, v.ScrollY
}

func (v *Viewport) settle() {
	v.sizeChanged = false
}

// clampToContent restricts the scroll position to [0, content - screen].
func (v *Viewport) clampToContent() {
	if v.ContentWidth > 0 {
		maxX, _ := v.MaxScroll()
		v.ScrollX = Clamp(v.ScrollX, 0, maxX)
	}
	if v.ContentHeight > 0 {
		_, maxY := v.MaxScroll()
		v.ScrollY = Clamp(v.ScrollY, 0, maxY)
	}
}

// computeViewMatrix recomputes the cached page-to-screen matrix if dirty.
//
//	viewMatrix = Translate(Screen.X - ScrollX, Screen.Y - ScrollY)
func (v *Viewport) computeViewMatrix() [6]float64 {
	if !v.dirty {
		return v.viewMatrix
	}
	v.dirty = false
	v.viewMatrix = [6]float64{1, 0, 0, 1, v.Screen.X - v.ScrollX, v.Screen.Y - v.ScrollY}
	v.invViewMatrix = invertAffine(v.viewMatrix)
	return v.viewMatrix
}

// WorldToScreen converts page coordinates to screen coordinates.
func (v *Viewport) WorldToScreen(wx, wy float64) (sx, sy float64) {
	v.computeViewMatrix()
	return transformPoint(v.viewMatrix, wx, wy)
}

// ScreenToWorld converts screen coordinates to page coordinates.
func (v *Viewport) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	v.computeViewMatrix()
	return transformPoint(v.invViewMatrix, sx, sy)
}

// VisibleBounds returns the part of the page currently on screen.
func (v *Viewport) VisibleBounds() Rect {
	return Rect{X: v.ScrollX, Y: v.ScrollY, Width: v.Screen.Width, Height: v.Screen.Height}
}

// MarkDirty forces a recomputation of the view matrix.
func (v *Viewport) MarkDirty() {
	v.dirty = true
}
