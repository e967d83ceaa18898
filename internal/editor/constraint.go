package editor

import (
	"github.com/irfansharif/quads/internal/assert"
	"github.com/irfansharif/quads/internal/geom"
)

// Drag moves the selected vertex so its handle is centered on p and
// re-establishes axis alignment by moving the two adjacent corners. The
// diagonally opposite corner is the anchor and is never written.
//
// In SelectionShared mode vertex k of every quad follows the pointer, not
// just the quad the selection was made in.
//
// Dragging with no selection, or with a selection outside the model, is a
// programming error: it panics in debug builds and does nothing otherwise.
func (s *State) Drag(p geom.Point) {
	assert.That(s.Selected != nil, "drag with no active selection")
	if s.Selected == nil {
		return
	}

	sel := *s.Selected
	inRange := sel.Quad >= 0 && sel.Quad < len(s.Quads) && sel.Vertex >= 0 && sel.Vertex < VerticesPerQuad
	assert.That(inRange, "selection out of range: %s (%d quads)", sel, len(s.Quads))
	if !inRange {
		return
	}

	if s.Mode == SelectionPerQuad {
		s.Quads[sel.Quad].drag(sel.Vertex, p)
		assert.That(s.Quads[sel.Quad].AxisAligned(), "quad %d not axis-aligned after drag", sel.Quad)
		return
	}
	for qi := range s.Quads {
		s.Quads[qi].drag(sel.Vertex, p)
		assert.That(s.Quads[qi].AxisAligned(), "quad %d not axis-aligned after drag", qi)
	}
}

// drag moves vertex k to p and propagates one coordinate to each neighbour.
// The handle is centered on the position, so placing its origin at
// p - extent/2 is the same as setting the position to p.
func (q *Quad) drag(k int, p geom.Point) {
	q.Vertices[k].Pos = p

	prev := &q.Vertices[(k+3)%VerticesPerQuad]
	next := &q.Vertices[(k+1)%VerticesPerQuad]
	if k%2 == 0 {
		prev.Pos.Y = p.Y
		next.Pos.X = p.X
	} else {
		prev.Pos.X = p.X
		next.Pos.Y = p.Y
	}
}
