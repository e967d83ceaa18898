package editor

import "github.com/irfansharif/quads/internal/geom"

// HitTest updates the hover flag of every vertex for pointer position p and
// then the selection.
//
// Each vertex's flag is written exactly once and independently of the others,
// so overlapping handles can all be hovered at once. While the pointer is
// down, the last hovered vertex in iteration order (quad-major, then vertex
// ID) becomes the selection; if nothing is hovered an ongoing drag keeps its
// selection. When the pointer is up the selection is cleared.
func (s *State) HitTest(p geom.Point) {
	var hit *Selection
	for qi := range s.Quads {
		q := &s.Quads[qi]
		for vi := range q.Vertices {
			v := &q.Vertices[vi]
			v.Hovered = v.Handle().Contains(p)
			if v.Hovered {
				hit = &Selection{Quad: qi, Vertex: v.ID}
			}
		}
	}

	switch {
	case !s.PointerDown:
		s.Selected = nil
	case hit != nil:
		s.Selected = hit
	}
}

// Hovered returns the vertices currently under the pointer, in iteration
// order.
func (s *State) Hovered() []Selection {
	var out []Selection
	for qi := range s.Quads {
		for vi := range s.Quads[qi].Vertices {
			if v := &s.Quads[qi].Vertices[vi]; v.Hovered {
				out = append(out, Selection{Quad: qi, Vertex: v.ID})
			}
		}
	}
	return out
}
