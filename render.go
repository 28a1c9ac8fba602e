package kinetic

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

const (
	// Debug font cell used for labels.
	glyphWidth  = 6
	glyphHeight = 16

	shadowLayers = 3
	glareAlpha   = 0.25
)

var borderColor = Color{1, 1, 1, 0.35}

// MeasureLabel returns the size of text drawn in the debug font.
func MeasureLabel(text string) (w, h float64) {
	lines, widest, cur := 1, 0, 0
	for _, r := range text {
		if r == '\n' {
			lines++
			cur = 0
			continue
		}
		cur++
		widest = max(widest, cur)
	}
	return float64(widest * glyphWidth), float64(lines * glyphHeight)
}

// Draw renders the page as seen through the viewport. Elements entirely
// outside the visible area are skipped, but their children are still visited.
func (s *Scene) Draw(screen *ebiten.Image) {
	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.toRGBA())
	}
	updateWorldTransform(s.root, identityTransform, 1.0, false)
	view := s.viewport.computeViewMatrix()
	s.drawElement(screen, s.root, view, s.viewport.VisibleBounds())
	s.flushScreenshots(screen)
}

func (s *Scene) drawElement(target *ebiten.Image, e *Element, view [6]float64, cull Rect) {
	if !e.Visible || e.worldAlpha <= 0 {
		return
	}
	m := multiplyAffine(view, e.worldTransform)
	local := Rect{Width: e.Width, Height: e.Height}

	if e.DrawnBounds().Intersects(cull) {
		if e.Shadow.Alpha > 0 {
			drawShadow(target, m, local, e.Shadow, e.worldAlpha)
		}
		if e.Color.A > 0 {
			drawRect(target, m, local, e.Color, e.worldAlpha)
		}
		if e.Label != "" {
			drawLabel(target, m, e)
		}
		if e.Glare != nil && e.Glare.Opacity > 0 {
			drawGlare(target, m, local, *e.Glare, e.worldAlpha)
		}
		if e.Border {
			drawBorder(target, m, local, e.worldAlpha)
		}
	}

	dst := target
	if e.ClipChildren {
		b := transformAABB(m, e.Width, e.Height)
		r := image.Rect(int(math.Floor(b.X)), int(math.Floor(b.Y)),
			int(math.Ceil(b.X+b.Width)), int(math.Ceil(b.Y+b.Height)))
		r = r.Intersect(target.Bounds())
		if r.Empty() {
			return
		}
		dst = target.SubImage(r).(*ebiten.Image)
	}
	for _, c := range e.sortedChildList() {
		s.drawElement(dst, c, view, cull)
	}
}

// geoM converts a [6]float64 affine matrix into an ebiten.GeoM.
func geoM(t [6]float64) ebiten.GeoM {
	var m ebiten.GeoM
	m.SetElement(0, 0, t[0])
	m.SetElement(1, 0, t[1])
	m.SetElement(0, 1, t[2])
	m.SetElement(1, 1, t[3])
	m.SetElement(0, 2, t[4])
	m.SetElement(1, 2, t[5])
	return m
}

// drawRect fills r, given in the element's local space, with c.
func drawRect(target *ebiten.Image, m [6]float64, r Rect, c Color, alpha float64) {
	if r.Width <= 0 || r.Height <= 0 {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(r.Width, r.Height)
	op.GeoM.Translate(r.X, r.Y)
	op.GeoM.Concat(geoM(m))
	a := float32(clamp01(c.A * alpha))
	op.ColorScale.Scale(float32(c.R)*a, float32(c.G)*a, float32(c.B)*a, a)
	target.DrawImage(solidPixel(), &op)
}

// drawShadow approximates a blurred shadow with concentric translucent rects.
func drawShadow(target *ebiten.Image, m [6]float64, r Rect, sh Shadow, alpha float64) {
	black := Color{0, 0, 0, sh.Alpha / shadowLayers}
	for i := shadowLayers; i >= 1; i-- {
		grow := sh.Blur / 2 * float64(i) / shadowLayers
		drawRect(target, m, Rect{
			X:      r.X - grow,
			Y:      r.Y + sh.OffsetY - grow,
			Width:  r.Width + 2*grow,
			Height: r.Height + 2*grow,
		}, black, alpha)
	}
}

func drawBorder(target *ebiten.Image, m [6]float64, r Rect, alpha float64) {
	drawRect(target, m, Rect{X: r.X, Y: r.Y, Width: r.Width, Height: 1}, borderColor, alpha)
	drawRect(target, m, Rect{X: r.X, Y: r.Y + r.Height - 1, Width: r.Width, Height: 1}, borderColor, alpha)
	drawRect(target, m, Rect{X: r.X, Y: r.Y, Width: 1, Height: r.Height}, borderColor, alpha)
	drawRect(target, m, Rect{X: r.X + r.Width - 1, Y: r.Y, Width: 1, Height: r.Height}, borderColor, alpha)
}

// drawGlare draws a soft highlight centred on the glare point, clipped to
// the element and turned by the glare rotation.
func drawGlare(target *ebiten.Image, m [6]float64, r Rect, g Glare, alpha float64) {
	cx := r.Width * g.X / 100
	cy := r.Height * g.Y / 100
	rad := g.Rotation * math.Pi / 180
	spin := computeRotationAbout(cx, cy, rad)
	mm := multiplyAffine(m, spin)
	size := math.Min(r.Width, r.Height)
	white := Color{1, 1, 1, glareAlpha * g.Opacity / shadowLayers}
	for i := 1; i <= shadowLayers; i++ {
		half := size / 2 * float64(i) / shadowLayers
		band := Rect{X: cx - half, Y: cy - half, Width: 2 * half, Height: 2 * half}.Intersection(r)
		drawRect(target, mm, band, white, alpha)
	}
}

// computeRotationAbout returns a rotation by rad around (cx, cy).
func computeRotationAbout(cx, cy, rad float64) [6]float64 {
	sin, cos := math.Sincos(rad)
	return [6]float64{
		cos, sin, -sin, cos,
		cx - cos*cx + sin*cy,
		cy - sin*cx - cos*cy,
	}
}

// drawLabel renders the label once into a cached image, then draws that with
// the element's transform and label color.
func drawLabel(target *ebiten.Image, m [6]float64, e *Element) {
	if e.labelImage == nil || e.labelText != e.Label {
		if e.labelImage != nil {
			e.labelImage.Deallocate()
		}
		w, h := MeasureLabel(e.Label)
		e.labelImage = ebiten.NewImage(max(int(w), 1), max(int(h), 1))
		ebitenutil.DebugPrintAt(e.labelImage, e.Label, 0, 0)
		e.labelText = e.Label
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Concat(geoM(m))
	c := e.LabelColor
	a := float32(clamp01(c.A * e.worldAlpha))
	op.ColorScale.Scale(float32(c.R)*a, float32(c.G)*a, float32(c.B)*a, a)
	target.DrawImage(e.labelImage, &op)
}
