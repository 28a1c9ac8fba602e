package kinetic

import "math"

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// tiltSkew scales how strongly a pseudo-3D tilt shears the element. A flat
// 2D renderer has no perspective, so tilt is shown as foreshortening along
// the rotated axis plus a small shear.
const tiltSkew = 0.35

const degToRad = math.Pi / 180

// computeLocalTransform computes the presentation matrix of an element
// relative to its parent. Returns [a, b, c, d, tx, ty].
//
// Composition order, pivot at the element center:
//
//	Translate(-pivot) -> Scale(tilt-foreshortened) -> Skew(tilt) -> Rotate -> Translate(X+OffsetX+pivot, Y+OffsetY+pivot)
func computeLocalTransform(e *Element) [6]float64 {
	px := e.Width / 2
	py := e.Height / 2

	sx := e.Scale
	sy := e.Scale
	var tanSkewX, tanSkewY float64
	if e.RotateY != 0 {
		ry := e.RotateY * degToRad
		sx *= math.Cos(ry)
		tanSkewY = math.Sin(ry) * tiltSkew
	}
	if e.RotateX != 0 {
		rx := e.RotateX * degToRad
		sy *= math.Cos(rx)
		tanSkewX = -math.Sin(rx) * tiltSkew
	}

	sin, cos := math.Sincos(e.Rotation * degToRad)

	// After Scale * Translate(-pivot) and Skew:
	a := sx
	b := tanSkewY * sx
	c := tanSkewX * sy
	d := sy
	preTx := -px*sx - tanSkewX*py*sy
	preTy := -tanSkewY*px*sx - py*sy

	// After Rotate:
	ra := cos*a - sin*b
	rb := sin*a + cos*b
	rc := cos*c - sin*d
	rd := sin*c + cos*d
	rtx := cos*preTx - sin*preTy
	rty := sin*preTx + cos*preTy

	return [6]float64{ra, rb, rc, rd, rtx + e.X + e.OffsetX + px, rty + e.Y + e.OffsetY + py}
}

// multiplyAffine multiplies two 2D affine matrices: result = parent * child.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular.
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityTransform
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// transformAABB returns the axis-aligned bounds of a (w, h) rectangle at the
// origin after applying m.
func transformAABB(m [6]float64, w, h float64) Rect {
	x0, y0 := transformPoint(m, 0, 0)
	x1, y1 := transformPoint(m, w, 0)
	x2, y2 := transformPoint(m, w, h)
	x3, y3 := transformPoint(m, 0, h)

	minX := math.Min(math.Min(x0, x1), math.Min(x2, x3))
	minY := math.Min(math.Min(y0, y1), math.Min(y2, y3))
	maxX := math.Max(math.Max(x0, x1), math.Max(x2, x3))
	maxY := math.Max(math.Max(y0, y1), math.Max(y2, y3))
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// updateWorldTransform recomputes an element's world and layout matrices.
// parentRecomputed forces recomputation even if this element is not dirty.
func updateWorldTransform(e *Element, parentTransform [6]float64, parentAlpha float64, parentRecomputed bool) {
	recompute := e.transformDirty || parentRecomputed
	if recompute {
		local := computeLocalTransform(e)
		e.worldTransform = multiplyAffine(parentTransform, local)
		e.layoutTransform = multiplyAffine(parentTransform, [6]float64{1, 0, 0, 1, e.X, e.Y})
		e.worldAlpha = parentAlpha * e.Alpha
		e.transformDirty = false
	}

	for _, child := range e.children {
		updateWorldTransform(child, e.worldTransform, e.worldAlpha, recompute)
	}
}

// --- Transform property setters ---

// SetPosition sets the element's layout position and marks it dirty.
func (e *Element) SetPosition(x, y float64) {
	e.X = x
	e.Y = y
	e.transformDirty = true
}

// SetSize sets the element's layout size and marks it dirty.
func (e *Element) SetSize(w, h float64) {
	e.Width = w
	e.Height = h
	e.transformDirty = true
}

// SetOffset sets the presentation offset and marks the element dirty.
func (e *Element) SetOffset(x, y float64) {
	e.OffsetX = x
	e.OffsetY = y
	e.transformDirty = true
}

// SetTilt sets the pseudo-3D rotation in degrees and marks the element dirty.
func (e *Element) SetTilt(rotateX, rotateY float64) {
	e.RotateX = rotateX
	e.RotateY = rotateY
	e.transformDirty = true
}

// SetAlpha sets the element's alpha and marks it dirty.
func (e *Element) SetAlpha(a float64) {
	e.Alpha = a
	e.transformDirty = true
}

// MarkDirty forces recomputation of the element's matrices on the next
// frame. Call it after setting fields directly.
func (e *Element) MarkDirty() {
	e.transformDirty = true
}

// --- Coordinate conversion ---

// WorldToLocal converts a page point into this element's drawn space.
func (e *Element) WorldToLocal(wx, wy float64) (lx, ly float64) {
	inv := invertAffine(e.worldTransform)
	return transformPoint(inv, wx, wy)
}

// LocalToWorld converts a point in this element's drawn space to the page.
func (e *Element) LocalToWorld(lx, ly float64) (wx, wy float64) {
	return transformPoint(e.worldTransform, lx, ly)
}

// Bounds returns the element's layout box in page coordinates: ancestors'
// presentation transforms apply, the element's own offsets and tilt do not.
// This is the box observers measure.
func (e *Element) Bounds() Rect {
	return transformAABB(e.layoutTransform, e.Width, e.Height)
}

// DrawnBounds returns the page-space bounds of the element as drawn.
func (e *Element) DrawnBounds() Rect {
	return transformAABB(e.worldTransform, e.Width, e.Height)
}

// WorldAlpha returns the alpha multiplied through all ancestors.
func (e *Element) WorldAlpha() float64 {
	return e.worldAlpha
}
