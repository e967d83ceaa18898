// Package editor holds the quad editor's shape model: axis-aligned quads made
// of four draggable vertices, the pointer cursor, and the hover/selection
// state. It implements hit testing and the corner constraint that keeps every
// quad a rectangle while one of its vertices is dragged.
//
// Vertex ordering within a quad is fixed:
//
//	1 ---- 2
//	|      |
//	0 ---- 3
//
// Vertices 0 and 1 share X, 1 and 2 share Y, 2 and 3 share X, 3 and 0 share Y.
// Vertex k and vertex (k+2)%4 are diagonal opposites.
//
// State is not safe for concurrent use; callers serialize access (see
// package app).
package editor

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/irfansharif/quads/internal/geom"
	"github.com/irfansharif/quads/internal/palette"
)

// VerticesPerQuad is the number of vertices in every quad.
const VerticesPerQuad = 4

// SelectionMode controls which quads a drag moves.
type SelectionMode int

const (
	// SelectionShared applies a drag of vertex k to vertex k of every quad.
	SelectionShared SelectionMode = iota
	// SelectionPerQuad only moves the quad the selected vertex belongs to.
	SelectionPerQuad
)

func (m SelectionMode) String() string {
	switch m {
	case SelectionShared:
		return "shared"
	case SelectionPerQuad:
		return "per-quad"
	default:
		return "unknown"
	}
}

// ParseSelectionMode parses the String form of a SelectionMode.
func ParseSelectionMode(s string) (SelectionMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "shared", "":
		return SelectionShared, nil
	case "per-quad", "perquad":
		return SelectionPerQuad, nil
	}
	return 0, fmt.Errorf("unknown selection mode %q (want shared or per-quad)", s)
}

// Vertex is a draggable quad corner.
type Vertex struct {
	ID      int            // index within the parent quad, 0..3
	Pos     geom.Point     // position in model space
	Extent  geom.Point     // handle width (X) and height (Y)
	Colour  colorful.Color // stored colour; hover highlighting never changes it
	Hovered bool           // whether the pointer is over the handle
}

// Handle returns the hit-test box of the vertex, centered on its position.
func (v *Vertex) Handle() geom.Box {
	return geom.CenteredBox(v.Pos, v.Extent.X, v.Extent.Y)
}

// Quad is four vertices forming an axis-aligned rectangle.
type Quad struct {
	Vertices [VerticesPerQuad]Vertex
}

// NewQuad returns the quad covering box b, with corner colours taken from p
// and square handles of the given size.
func NewQuad(b geom.Box, p palette.Palette, handleSize float64) Quad {
	lo, hi := b.Min(), b.Max()
	positions := [VerticesPerQuad]geom.Point{
		lo,
		geom.MakePoint(lo.X, hi.Y),
		hi,
		geom.MakePoint(hi.X, lo.Y),
	}

	var q Quad
	for i, pos := range positions {
		q.Vertices[i] = Vertex{
			ID:     i,
			Pos:    pos,
			Extent: geom.MakePoint(handleSize, handleSize),
			Colour: p[i],
		}
	}
	return q
}

// Positions returns the positions of the four vertices, in vertex order.
func (q *Quad) Positions() [VerticesPerQuad]geom.Point {
	var out [VerticesPerQuad]geom.Point
	for i := range q.Vertices {
		out[i] = q.Vertices[i].Pos
	}
	return out
}

// Bounds returns the min/max box over the quad's vertex positions.
func (q *Quad) Bounds() geom.Box {
	pos := q.Positions()
	return geom.Bounds(pos[:]...)
}

// AxisAligned reports whether every pair of adjacent vertices shares the
// coordinate the ordering convention says it should.
func (q *Quad) AxisAligned() bool {
	v := &q.Vertices
	return v[0].Pos.X == v[1].Pos.X &&
		v[1].Pos.Y == v[2].Pos.Y &&
		v[2].Pos.X == v[3].Pos.X &&
		v[3].Pos.Y == v[0].Pos.Y
}

// Cursor is the free-floating marker that follows the pointer.
type Cursor struct {
	Pos    geom.Point
	Extent geom.Point
	Colour colorful.Color
}

// Handle returns the cursor's box, centered on the pointer.
func (c *Cursor) Handle() geom.Box {
	return geom.CenteredBox(c.Pos, c.Extent.X, c.Extent.Y)
}

// Selection identifies the vertex being dragged.
type Selection struct {
	Quad   int // index into State.Quads
	Vertex int // vertex ID, 0..3
}

func (s Selection) String() string {
	return fmt.Sprintf("quad %d, vertex %d", s.Quad, s.Vertex)
}

// QuadLayout describes one quad of the initial layout.
type QuadLayout struct {
	Box     geom.Box
	Palette palette.Palette
}

// Layout is the initial editor configuration.
type Layout struct {
	Quads      []QuadLayout
	HandleSize float64 // side of each vertex handle, in model units
	CursorSize float64 // side of the cursor marker, in model units
	Mode       SelectionMode
}

// State is the editor state shared by pointer handling and rendering.
type State struct {
	Quads       []Quad
	Cursor      Cursor
	PointerDown bool
	Selected    *Selection // nil when no vertex is being dragged
	Mode        SelectionMode
}

// NewState builds the editor state for the given layout.
func NewState(l Layout) *State {
	s := &State{
		Quads: make([]Quad, len(l.Quads)),
		Cursor: Cursor{
			Extent: geom.MakePoint(l.CursorSize, l.CursorSize),
			Colour: palette.Cursor,
		},
		Mode: l.Mode,
	}
	for i, ql := range l.Quads {
		s.Quads[i] = NewQuad(ql.Box, ql.Palette, l.HandleSize)
	}
	return s
}

// Validate checks the structural invariants of every quad: vertex IDs match
// their index, handle extents are non-negative and the quad is axis-aligned.
func (s *State) Validate() error {
	for qi := range s.Quads {
		q := &s.Quads[qi]
		for vi := range q.Vertices {
			v := &q.Vertices[vi]
			if v.ID != vi {
				return fmt.Errorf("quad %d: vertex at index %d has ID %d", qi, vi, v.ID)
			}
			if v.Extent.X < 0 || v.Extent.Y < 0 {
				return fmt.Errorf("quad %d: vertex %d has negative handle extent %v", qi, vi, v.Extent)
			}
		}
		if !q.AxisAligned() {
			return fmt.Errorf("quad %d is not axis-aligned: %v", qi, q.Positions())
		}
	}
	if sel := s.Selected; sel != nil {
		if sel.Quad < 0 || sel.Quad >= len(s.Quads) || sel.Vertex < 0 || sel.Vertex >= VerticesPerQuad {
			return fmt.Errorf("selection out of range: %s", sel)
		}
	}
	return nil
}
