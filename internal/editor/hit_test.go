package editor

import (
	"testing"

	"github.com/irfansharif/quads/internal/geom"
)

func hoverFlags(s *State) [][VerticesPerQuad]bool {
	out := make([][VerticesPerQuad]bool, len(s.Quads))
	for qi := range s.Quads {
		for vi, v := range s.Quads[qi].Vertices {
			out[qi][vi] = v.Hovered
		}
	}
	return out
}

func TestHitTestHover(t *testing.T) {
	s := NewState(unitLayout(SelectionShared))

	for _, tc := range []struct {
		name string
		p    geom.Point
		want [VerticesPerQuad]bool
	}{
		{"on vertex 0", geom.MakePoint(-0.5, -0.5), [4]bool{true, false, false, false}},
		{"inside handle of vertex 2", geom.MakePoint(0.54, 0.46), [4]bool{false, false, true, false}},
		{"just outside vertex 3", geom.MakePoint(0.56, -0.5), [4]bool{}},
		{"quad center", geom.MakePoint(0, 0), [4]bool{}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			s.HitTest(tc.p)
			if got := hoverFlags(s)[0]; got != tc.want {
				t.Fatalf("hover = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestHitTestIdempotent(t *testing.T) {
	s := NewState(twoQuadLayout(SelectionShared))
	s.PointerDown = true
	p := geom.MakePoint(0.2, 0.2)

	s.HitTest(p)
	first, firstSel := hoverFlags(s), *s.Selected
	s.HitTest(p)
	second, secondSel := hoverFlags(s), *s.Selected

	for qi := range first {
		if first[qi] != second[qi] {
			t.Fatalf("quad %d hover changed: %v then %v", qi, first[qi], second[qi])
		}
	}
	if firstSel != secondSel {
		t.Fatalf("selection changed: %s then %s", firstSel, secondSel)
	}
}

func TestHitTestOverlappingLastWins(t *testing.T) {
	l := unitLayout(SelectionShared)
	l.Quads = append(l.Quads, l.Quads[0]) // identical quad: every handle overlaps
	s := NewState(l)
	s.PointerDown = true

	s.HitTest(geom.MakePoint(0.5, 0.5))
	if got := s.Hovered(); len(got) != 2 {
		t.Fatalf("hovered = %v, want both copies of vertex 2", got)
	}
	if want := (Selection{Quad: 1, Vertex: 2}); s.Selected == nil || *s.Selected != want {
		t.Fatalf("selected = %v, want %s", s.Selected, want)
	}
}

func TestHitTestLastVertexWithinQuad(t *testing.T) {
	l := unitLayout(SelectionShared)
	l.HandleSize = 1.2 // handles of vertices 1 and 2 both cover (0, 0.5)
	s := NewState(l)
	s.PointerDown = true

	s.HitTest(geom.MakePoint(0, 0.5))
	if want := (Selection{Quad: 0, Vertex: 2}); s.Selected == nil || *s.Selected != want {
		t.Fatalf("selected = %v, want %s", s.Selected, want)
	}
}

func TestSelectionClearsWhenPointerUp(t *testing.T) {
	s := NewState(unitLayout(SelectionShared))
	s.PointerDown = true
	s.HitTest(geom.MakePoint(-0.5, -0.5))
	if s.Selected == nil {
		t.Fatal("expected a selection while the pointer is down over vertex 0")
	}

	// Still over the handle, but the button is released.
	s.PointerDown = false
	s.HitTest(geom.MakePoint(-0.5, -0.5))
	if s.Selected != nil {
		t.Fatalf("selection = %s, want none with the pointer up", s.Selected)
	}
	if !s.Quads[0].Vertices[0].Hovered {
		t.Fatal("vertex 0 should still be hovered")
	}
}

func TestSelectionKeptWhileDraggingOffHandles(t *testing.T) {
	s := NewState(unitLayout(SelectionShared))
	s.PointerDown = true
	s.HitTest(geom.MakePoint(-0.5, -0.5))

	s.HitTest(geom.MakePoint(0, 0)) // nothing hovered
	if want := (Selection{Quad: 0, Vertex: 0}); s.Selected == nil || *s.Selected != want {
		t.Fatalf("selected = %v, want %s", s.Selected, want)
	}
}

func TestNoSelectionWithoutHover(t *testing.T) {
	s := NewState(unitLayout(SelectionShared))
	s.PointerDown = true
	s.HitTest(geom.MakePoint(0, 0))
	if s.Selected != nil {
		t.Fatalf("selected = %s, want none", s.Selected)
	}
}
