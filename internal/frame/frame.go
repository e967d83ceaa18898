// Package frame derives the per-frame vertex buffers from the editor state.
//
// Every shape is a flat run of x, y, r, g, b records in model space, tagged
// with the primitive it is drawn as. Buffers are rebuilt from scratch each
// frame; nothing here mutates the editor state.
package frame

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/irfansharif/quads/internal/editor"
	"github.com/irfansharif/quads/internal/geom"
	"github.com/irfansharif/quads/internal/palette"
)

// FloatsPerVertex is the size of one x, y, r, g, b record.
const FloatsPerVertex = 5

// FanVertexCount is the number of vertices in every quad, handle and cursor
// fan.
const FanVertexCount = 4

// Primitive is the kind of draw call a shape is issued with.
type Primitive int

const (
	TriangleFan Primitive = iota
	Triangles
)

func (p Primitive) String() string {
	switch p {
	case TriangleFan:
		return "triangle-fan"
	case Triangles:
		return "triangles"
	default:
		return "unknown"
	}
}

// Shape is one draw call's worth of vertex data.
type Shape struct {
	Kind Primitive
	Data []float32
}

// VertexCount returns the number of vertices in the shape.
func (s Shape) VertexCount() int { return len(s.Data) / FloatsPerVertex }

// Frame is everything drawn in one display refresh, in draw order.
type Frame struct {
	Shapes []Shape
}

// VertexCount returns the total number of vertices across all shapes.
func (f Frame) VertexCount() int {
	n := 0
	for _, s := range f.Shapes {
		n += s.VertexCount()
	}
	return n
}

// Build derives the frame for the current state. For every quad it emits the
// background fill over its bounding box, the quad itself as a fan with one
// colour per corner, and a fan per vertex handle; the cursor is drawn last.
// Hovered vertices are drawn in palette.Highlight without touching their
// stored colour.
func Build(s *editor.State) (Frame, error) {
	f := Frame{Shapes: make([]Shape, 0, len(s.Quads)*(2+editor.VerticesPerQuad)+1)}
	for qi := range s.Quads {
		q := &s.Quads[qi]

		fill, err := backgroundFill(q)
		if err != nil {
			return Frame{}, fmt.Errorf("quad %d: %w", qi, err)
		}
		if fill != nil {
			f.Shapes = append(f.Shapes, *fill)
		}

		body := Shape{Kind: TriangleFan, Data: make([]float32, 0, FanVertexCount*FloatsPerVertex)}
		for vi := range q.Vertices {
			v := &q.Vertices[vi]
			body.Data = appendVertex(body.Data, v.Pos, vertexColour(v))
		}
		f.Shapes = append(f.Shapes, body)

		for vi := range q.Vertices {
			v := &q.Vertices[vi]
			f.Shapes = append(f.Shapes, boxFan(v.Handle(), vertexColour(v)))
		}
	}
	f.Shapes = append(f.Shapes, boxFan(s.Cursor.Handle(), s.Cursor.Colour))
	return f, nil
}

// vertexColour is the colour a vertex is drawn with this frame.
func vertexColour(v *editor.Vertex) colorful.Color {
	if v.Hovered {
		return palette.Highlight
	}
	return v.Colour
}

// backgroundFill triangulates the quad's bounding box. Collapsed quads (zero
// width or height) have no fill.
func backgroundFill(q *editor.Quad) (*Shape, error) {
	bounds := q.Bounds()
	if bounds.W == 0 || bounds.H == 0 {
		return nil, nil
	}

	corners := bounds.Corners()
	triangles, err := earClip(corners[:])
	if err != nil {
		return nil, err
	}

	tint := palette.Tint(q.Vertices[0].Colour)
	fill := &Shape{Kind: Triangles, Data: make([]float32, 0, len(triangles)*3*FloatsPerVertex)}
	for _, tri := range triangles {
		for _, p := range tri {
			fill.Data = appendVertex(fill.Data, p, tint)
		}
	}
	return fill, nil
}

// boxFan returns the box as a 4-vertex triangle fan of a single colour.
func boxFan(b geom.Box, c colorful.Color) Shape {
	s := Shape{Kind: TriangleFan, Data: make([]float32, 0, FanVertexCount*FloatsPerVertex)}
	for _, p := range b.Corners() {
		s.Data = appendVertex(s.Data, p, c)
	}
	return s
}

func appendVertex(data []float32, p geom.Point, c colorful.Color) []float32 {
	r, g, b := palette.RGB32(c)
	return append(data, float32(p.X), float32(p.Y), r, g, b)
}
