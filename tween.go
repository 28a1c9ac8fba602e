package kinetic

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const maxTweenFields = 4

// TweenGroup animates up to 4 float64 fields of an Element simultaneously,
// optionally after a delay. Call Update(dt) each frame, or hand the group to
// Scene.Animate. The group writes values and marks the element dirty. If
// the target element is disposed, the group stops immediately.
type TweenGroup struct {
	tweens [maxTweenFields]*gween.Tween
	count  int
	fields [maxTweenFields]*float64
	target *Element
	delay  float32
	Done   bool
}

// newTweenGroup builds a group from (field, to) pairs, starting each tween
// at the field's current value.
func newTweenGroup(el *Element, duration float32, fn ease.TweenFunc, fields []*float64, to []float64) *TweenGroup {
	if fn == nil {
		fn = ease.Linear
	}
	g := &TweenGroup{target: el}
	for i := range fields {
		if i == maxTweenFields {
			break
		}
		g.tweens[i] = gween.New(float32(*fields[i]), float32(to[i]), duration, fn)
		g.fields[i] = fields[i]
		g.count++
	}
	return g
}

// Update advances all tweens by dt seconds, writes values to the target
// fields, and marks the element dirty. Time first drains the delay.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if g.target != nil && g.target.IsDisposed() {
		g.Done = true
		return
	}
	if g.delay > 0 {
		if dt <= g.delay {
			g.delay -= dt
			return
		}
		dt -= g.delay
		g.delay = 0
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone

	if g.target != nil {
		g.target.MarkDirty()
	}
}

// WithDelay sets a start delay in seconds and returns the group.
func (g *TweenGroup) WithDelay(seconds float64) *TweenGroup {
	if seconds > 0 {
		g.delay = float32(seconds)
	}
	return g
}

// Cancel stops the group where it is.
func (g *TweenGroup) Cancel() {
	g.Done = true
}

// TweenOffset animates el.OffsetX and el.OffsetY.
func TweenOffset(el *Element, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup(el, duration, fn, []*float64{&el.OffsetX, &el.OffsetY}, []float64{toX, toY})
}

// TweenAlpha animates el.Alpha.
func TweenAlpha(el *Element, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup(el, duration, fn, []*float64{&el.Alpha}, []float64{to})
}

// TweenScale animates el.Scale.
func TweenScale(el *Element, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup(el, duration, fn, []*float64{&el.Scale}, []float64{to})
}

// TweenRotation animates el.Rotation (degrees).
func TweenRotation(el *Element, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup(el, duration, fn, []*float64{&el.Rotation}, []float64{to})
}

// TweenTilt animates el.RotateX and el.RotateY (degrees).
func TweenTilt(el *Element, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup(el, duration, fn, []*float64{&el.RotateX, &el.RotateY}, []float64{toX, toY})
}

// TweenReveal animates offset and alpha together, as reveal transitions do.
func TweenReveal(el *Element, toX, toY, toAlpha float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup(el, duration, fn,
		[]*float64{&el.OffsetX, &el.OffsetY, &el.Alpha}, []float64{toX, toY, toAlpha})
}

// TweenValue animates an arbitrary field owned by el (for example a glare
// opacity). el may be nil for fields with no element.
func TweenValue(el *Element, field *float64, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup(el, duration, fn, []*float64{field}, []float64{to})
}

// Animate runs g every frame until it finishes, its element is disposed, or
// the returned handle is stopped. The task is not tied to the element's
// cleanups; a disposed target ends the group on its next update.
func (s *Scene) Animate(g *TweenGroup) FrameHandle {
	var h FrameHandle
	h = s.frames.add(func(dt float64) {
		g.Update(float32(dt))
		if g.Done {
			h.Stop()
		}
	})
	return h
}
