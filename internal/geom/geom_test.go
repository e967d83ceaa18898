package geom

import (
	"math"
	"testing"
)

func TestBoxContains(t *testing.T) {
	b := MakeBox(-0.05, -0.05, 0.1, 0.1)
	for _, tc := range []struct {
		p    Point
		want bool
	}{
		{MakePoint(0, 0), true},
		{MakePoint(-0.05, -0.05), true}, // closed at the origin
		{MakePoint(0.05, 0.05), true},   // and at the far corner
		{MakePoint(0.0501, 0), false},
		{MakePoint(0, -0.0501), false},
	} {
		if got := b.Contains(tc.p); got != tc.want {
			t.Errorf("%v.Contains(%v) = %t, want %t", b, tc.p, got, tc.want)
		}
	}
}

func TestMakeBoxNormalizesExtent(t *testing.T) {
	b := MakeBox(1, 1, -2, -3)
	want := Box{X: -1, Y: -2, W: 2, H: 3}
	if b != want {
		t.Fatalf("MakeBox = %v, want %v", b, want)
	}
}

func TestBounds(t *testing.T) {
	got := Bounds(MakePoint(0.5, -0.5), MakePoint(-0.5, 0.25), MakePoint(0, 0.5))
	want := Box{X: -0.5, Y: -0.5, W: 1, H: 1}
	if got != want {
		t.Fatalf("Bounds = %v, want %v", got, want)
	}
	if (Bounds() != Box{}) {
		t.Fatalf("Bounds() of nothing should be the zero box")
	}
}

func TestCenteredBox(t *testing.T) {
	b := CenteredBox(MakePoint(0.5, 0.5), 0.2, 0.4)
	if c := b.Center(); Dist(c, MakePoint(0.5, 0.5)) > 1e-12 {
		t.Fatalf("center = %v, want (0.5, 0.5)", c)
	}
	if b.W != 0.2 || b.H != 0.4 {
		t.Fatalf("extent = %vx%v, want 0.2x0.4", b.W, b.H)
	}
}

func TestAffineInverse(t *testing.T) {
	tr := MakeAffine(2, 0, -1, 0, -3, 1)
	inv, err := tr.Inv()
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range []Point{{0, 0}, {1, 2}, {-3.5, 7.25}} {
		got := inv.MulPoint(tr.MulPoint(p))
		if math.Abs(got.X-p.X) > 1e-12 || math.Abs(got.Y-p.Y) > 1e-12 {
			t.Errorf("round trip of %v = %v", p, got)
		}
	}

	if _, err := MakeAffine(0, 0, 1, 0, 0, 1).Inv(); err == nil {
		t.Fatalf("expected error inverting a degenerate transform")
	}
}

func TestAffineMulOrder(t *testing.T) {
	scale := MakeAffine(2, 0, 0, 0, 2, 0)
	translate := MakeAffine(1, 0, 1, 0, 1, 1)
	// Mul applies the right-hand transform first.
	got := translate.Mul(scale).MulPoint(MakePoint(1, 1))
	if got != MakePoint(3, 3) {
		t.Fatalf("translate*scale (1,1) = %v, want (3,3)", got)
	}
}
