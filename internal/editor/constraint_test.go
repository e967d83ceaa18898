package editor

import (
	"math/rand"
	"testing"

	"github.com/irfansharif/quads/internal/geom"
)

func TestDragScenario(t *testing.T) {
	s := NewState(unitLayout(SelectionShared))
	s.Selected = &Selection{Quad: 0, Vertex: 0}

	s.Drag(geom.MakePoint(0, 0))

	want := [VerticesPerQuad]geom.Point{
		{X: 0, Y: 0},     // dragged
		{X: 0, Y: 0.5},   // next: takes X
		{X: 0.5, Y: 0.5}, // diagonal: untouched
		{X: 0.5, Y: 0},   // previous: takes Y
	}
	if got := s.Quads[0].Positions(); got != want {
		t.Fatalf("positions = %v, want %v", got, want)
	}
	if h := s.Quads[0].Vertices[0].Handle(); geom.Dist(h.Center(), geom.MakePoint(0, 0)) > 1e-12 {
		t.Fatalf("handle %v not centered on the pointer", h)
	}
}

func TestDragOddVertex(t *testing.T) {
	s := NewState(unitLayout(SelectionShared))
	s.Selected = &Selection{Quad: 0, Vertex: 1}

	s.Drag(geom.MakePoint(-0.25, 0.75))

	want := [VerticesPerQuad]geom.Point{
		{X: -0.25, Y: -0.5}, // previous: takes X
		{X: -0.25, Y: 0.75}, // dragged
		{X: 0.5, Y: 0.75},   // next: takes Y
		{X: 0.5, Y: -0.5},   // diagonal: untouched
	}
	if got := s.Quads[0].Positions(); got != want {
		t.Fatalf("positions = %v, want %v", got, want)
	}
}

// TestDragPreservesInvariants drags random vertices to random points and
// checks after every step that all quads are rectangles and that the corner
// opposite the dragged one is bit-for-bit unchanged.
func TestDragPreservesInvariants(t *testing.T) {
	for _, mode := range []SelectionMode{SelectionShared, SelectionPerQuad} {
		t.Run(mode.String(), func(t *testing.T) {
			r := rand.New(rand.NewSource(1234))
			s := NewState(twoQuadLayout(mode))

			for step := 0; step < 500; step++ {
				sel := Selection{Quad: r.Intn(len(s.Quads)), Vertex: r.Intn(VerticesPerQuad)}
				s.Selected = &sel
				p := geom.MakePoint(r.Float64()*2-1, r.Float64()*2-1)

				diagonal := (sel.Vertex + 2) % VerticesPerQuad
				before := make([]geom.Point, len(s.Quads))
				for qi := range s.Quads {
					before[qi] = s.Quads[qi].Vertices[diagonal].Pos
				}

				s.Drag(p)

				for qi := range s.Quads {
					q := &s.Quads[qi]
					if !q.AxisAligned() {
						t.Fatalf("step %d: quad %d not axis-aligned: %v", step, qi, q.Positions())
					}
					if q.Vertices[diagonal].Pos != before[qi] {
						t.Fatalf("step %d: quad %d diagonal vertex %d moved from %v to %v",
							step, qi, diagonal, before[qi], q.Vertices[diagonal].Pos)
					}
				}
				if err := s.Validate(); err != nil {
					t.Fatalf("step %d: %v", step, err)
				}
			}
		})
	}
}

func TestDragSharedMovesEveryQuad(t *testing.T) {
	s := NewState(twoQuadLayout(SelectionShared))
	s.Selected = &Selection{Quad: 0, Vertex: 2}
	p := geom.MakePoint(0.1, -0.1)

	s.Drag(p)

	for qi := range s.Quads {
		if got := s.Quads[qi].Vertices[2].Pos; got != p {
			t.Errorf("quad %d vertex 2 = %v, want %v", qi, got, p)
		}
	}
}

func TestDragPerQuadMovesOnlySelected(t *testing.T) {
	s := NewState(twoQuadLayout(SelectionPerQuad))
	untouched := s.Quads[1].Positions()
	s.Selected = &Selection{Quad: 0, Vertex: 2}

	s.Drag(geom.MakePoint(0.1, -0.1))

	if got := s.Quads[0].Vertices[2].Pos; got != geom.MakePoint(0.1, -0.1) {
		t.Errorf("quad 0 vertex 2 = %v, want (0.1, -0.1)", got)
	}
	if got := s.Quads[1].Positions(); got != untouched {
		t.Errorf("quad 1 moved: %v, want %v", got, untouched)
	}
}

func TestDragLeavesColoursAndHandles(t *testing.T) {
	s := NewState(unitLayout(SelectionShared))
	before := s.Quads[0].Vertices
	s.Selected = &Selection{Quad: 0, Vertex: 3}

	s.Drag(geom.MakePoint(0.3, -0.2))

	for i, v := range s.Quads[0].Vertices {
		if v.Colour != before[i].Colour || v.Extent != before[i].Extent || v.ID != before[i].ID {
			t.Errorf("vertex %d: colour/extent/ID changed by drag", i)
		}
	}
}
