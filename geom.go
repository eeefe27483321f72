package gamepaint

import "math"

// Point is a 2D point in canvas coordinates.
type Point struct {
	X, Y float64
}

// Pt is shorthand for creating a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// PointsFromInts converts integer coordinate pairs, as exchanged at the
// tool boundary, into Points.
func PointsFromInts(pairs [][2]int) []Point {
	pts := make([]Point, len(pairs))
	for i, p := range pairs {
		pts[i] = Pt(float64(p[0]), float64(p[1]))
	}
	return pts
}

// regularPolygonPoints returns the n vertices of a regular polygon with
// the given circumradius. rotation is in degrees; at rotation 0 one
// vertex points straight up.
func regularPolygonPoints(n int, cx, cy, radius, rotation float64) []Point {
	if n < 3 {
		return nil
	}
	base := (rotation - 90) * math.Pi / 180
	pts := make([]Point, n)
	for i := 0; i < n; i++ {
		a := base + 2*math.Pi*float64(i)/float64(n)
		pts[i] = Pt(cx+radius*math.Cos(a), cy+radius*math.Sin(a))
	}
	return pts
}

// starPoints returns the 2*points vertices of a star outline,
// alternating between the outer and inner radius. One outer vertex
// points straight up.
func starPoints(points int, cx, cy, outer, inner float64) []Point {
	if points < 2 {
		return nil
	}
	pts := make([]Point, 0, points*2)
	for i := 0; i < points*2; i++ {
		a := math.Pi*float64(i)/float64(points) - math.Pi/2
		r := outer
		if i%2 == 1 {
			r = inner
		}
		pts = append(pts, Pt(cx+r*math.Cos(a), cy+r*math.Sin(a)))
	}
	return pts
}

// binomial computes the binomial coefficient C(n, k).
func binomial(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}
	if k == 0 || k == n {
		return 1
	}
	if k > n-k {
		k = n - k
	}
	result := 1.0
	for i := 0; i < k; i++ {
		result = result * float64(n-i) / float64(i+1)
	}
	return result
}

// bezierPoint evaluates the Bezier curve defined by the control points
// at parameter t using the Bernstein polynomial form.
func bezierPoint(ctrl []Point, t float64) Point {
	n := len(ctrl) - 1
	var x, y float64
	for i, p := range ctrl {
		coef := binomial(n, i) * math.Pow(1-t, float64(n-i)) * math.Pow(t, float64(i))
		x += coef * p.X
		y += coef * p.Y
	}
	return Pt(x, y)
}

// heartPoints samples the classic heart parametric curve, scaled to the
// given size and centered at (cx, cy).
func heartPoints(cx, cy, size float64) []Point {
	pts := make([]Point, 0, 72)
	for deg := 0; deg < 360; deg += 5 {
		t := float64(deg) * math.Pi / 180
		s := math.Sin(t)
		x := 16 * s * s * s
		y := 13*math.Cos(t) - 5*math.Cos(2*t) - 2*math.Cos(3*t) - math.Cos(4*t)
		pts = append(pts, Pt(cx+x*size/18, cy-y*size/18))
	}
	return pts
}
