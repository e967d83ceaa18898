package app

import (
	"github.com/irfansharif/quads/internal/assert"
	"github.com/irfansharif/quads/internal/geom"
)

// ToModel maps pointer pixel coordinates (origin top-left, y-down) within the
// canvas rect to model space (origin center, y-up, [-1, 1] across the
// canvas). Points outside the canvas map outside [-1, 1]; nothing is clamped.
// The canvas must have non-zero width and height.
func ToModel(px, py float64, canvas geom.Box) geom.Point {
	return geom.Point{
		X: -1 + 2*(px-canvas.X)/canvas.W,
		Y: 1 - 2*(py-canvas.Y)/canvas.H,
	}
}

// ModelTransform returns ToModel for the given canvas as an affine
// transform.
func ModelTransform(canvas geom.Box) geom.Affine {
	return geom.MakeAffine(
		2/canvas.W, 0, -1-2*canvas.X/canvas.W,
		0, -2/canvas.H, 1+2*canvas.Y/canvas.H,
	)
}

// View tracks the canvas rect pointer coordinates are reported against.
type View struct {
	Canvas geom.Box // left, top, width, height in pointer pixels
}

// NewView creates a view over a canvas of the given size at the origin.
func NewView(width, height int) *View {
	v := &View{}
	v.SetViewport(width, height)
	return v
}

// SetViewport updates the canvas size, e.g. on window resize.
func (v *View) SetViewport(width, height int) {
	assert.That(width > 0 && height > 0, "invalid viewport dimensions %dx%d", width, height)
	v.Canvas = geom.MakeBox(0, 0, float64(width), float64(height))
}

// ToModel maps a pointer position to model space.
func (v *View) ToModel(px, py float64) geom.Point {
	return ToModel(px, py, v.Canvas)
}

// ToPixels maps a model-space point back to pointer pixels.
func (v *View) ToPixels(p geom.Point) (px, py float64) {
	inv, err := ModelTransform(v.Canvas).Inv()
	assert.That(err == nil, "canvas %v has no inverse mapping: %v", v.Canvas, err)
	q := inv.MulPoint(p)
	return q.X, q.Y
}
