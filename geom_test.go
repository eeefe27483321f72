package gamepaint

import (
	"math"
	"testing"
)

func TestRegularPolygonPoints(t *testing.T) {
	for _, n := range []int{3, 4, 6, 12} {
		pts := regularPolygonPoints(n, 50, 50, 20, 0)
		if len(pts) != n {
			t.Fatalf("n=%d: got %d vertices", n, len(pts))
		}
		for i, p := range pts {
			d := math.Hypot(p.X-50, p.Y-50)
			if math.Abs(d-20) > 1e-9 {
				t.Errorf("n=%d vertex %d at distance %f, want 20", n, i, d)
			}
		}
		// With no rotation the first vertex points straight up.
		if math.Abs(pts[0].X-50) > 1e-9 || math.Abs(pts[0].Y-30) > 1e-9 {
			t.Errorf("n=%d first vertex = %v, want (50,30)", n, pts[0])
		}
	}
	if pts := regularPolygonPoints(2, 0, 0, 10, 0); pts != nil {
		t.Errorf("n=2 returned %d vertices, want nil", len(pts))
	}
}

func TestStarPoints(t *testing.T) {
	pts := starPoints(5, 0, 0, 10, 4)
	if len(pts) != 10 {
		t.Fatalf("got %d vertices, want 10", len(pts))
	}
	for i, p := range pts {
		d := math.Hypot(p.X, p.Y)
		want := 10.0
		if i%2 == 1 {
			want = 4.0
		}
		if math.Abs(d-want) > 1e-9 {
			t.Errorf("vertex %d at distance %f, want %f", i, d, want)
		}
	}
}

func TestBinomial(t *testing.T) {
	tests := []struct {
		n, k int
		want float64
	}{
		{0, 0, 1}, {3, 0, 1}, {3, 3, 1}, {3, 1, 3}, {4, 2, 6}, {5, 2, 10}, {3, 5, 0}, {3, -1, 0},
	}
	for _, tt := range tests {
		if got := binomial(tt.n, tt.k); got != tt.want {
			t.Errorf("binomial(%d,%d) = %f, want %f", tt.n, tt.k, got, tt.want)
		}
	}
}

func TestBezierEndpoints(t *testing.T) {
	ctrl := []Point{Pt(10, 20), Pt(50, 0), Pt(80, 90), Pt(100, 40)}
	p0 := bezierPoint(ctrl, 0)
	if math.Abs(p0.X-10) > 1e-9 || math.Abs(p0.Y-20) > 1e-9 {
		t.Errorf("bezier(0) = %v, want first control point", p0)
	}
	p1 := bezierPoint(ctrl, 1)
	if math.Abs(p1.X-100) > 1e-9 || math.Abs(p1.Y-40) > 1e-9 {
		t.Errorf("bezier(1) = %v, want last control point", p1)
	}
	// Linear case reduces to a lerp.
	mid := bezierPoint([]Point{Pt(0, 0), Pt(10, 10)}, 0.5)
	if math.Abs(mid.X-5) > 1e-9 || math.Abs(mid.Y-5) > 1e-9 {
		t.Errorf("linear bezier midpoint = %v, want (5,5)", mid)
	}
}

func TestPointsFromInts(t *testing.T) {
	pts := PointsFromInts([][2]int{{1, 2}, {3, 4}})
	if len(pts) != 2 || pts[0] != Pt(1, 2) || pts[1] != Pt(3, 4) {
		t.Errorf("PointsFromInts = %v", pts)
	}
}

func TestHeartPointsSpanSize(t *testing.T) {
	pts := heartPoints(0, 0, 18)
	if len(pts) != 72 {
		t.Fatalf("got %d points, want 72", len(pts))
	}
	var maxX float64
	for _, p := range pts {
		maxX = math.Max(maxX, p.X)
	}
	// The parametric curve reaches x = ±16 at size 18.
	if maxX < 15 || maxX > 16.1 {
		t.Errorf("max x = %f, want about 16", maxX)
	}
}
