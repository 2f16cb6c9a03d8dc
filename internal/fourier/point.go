package fourier

import "math"

// Point is a position in the plane.
type Point struct {
	X float64
	Y float64
}

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 { return math.Hypot(q.X-p.X, q.Y-p.Y) }

// Lerp linearly interpolates between p and q.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{X: p.X + (q.X-p.X)*t, Y: p.Y + (q.Y-p.Y)*t}
}

// Path is an ordered sequence of points in input order.
type Path []Point

// Closed returns the path with its first point appended. Paths with fewer
// than two points are returned unchanged.
func (p Path) Closed() Path {
	if len(p) < 2 {
		return p
	}
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, p[0])
}

// Perimeter returns the arc length of the closed path.
func (p Path) Perimeter() float64 {
	if len(p) < 2 {
		return 0
	}
	var total float64
	closed := p.Closed()
	for i := 1; i < len(closed); i++ {
		total += closed[i-1].Dist(closed[i])
	}
	return total
}

// Bounds returns the minimum and maximum corners of the path's bounding box.
// ok is false for an empty path.
func (p Path) Bounds() (lo, hi Point, ok bool) {
	if len(p) == 0 {
		return Point{}, Point{}, false
	}
	lo, hi = p[0], p[0]
	for _, q := range p[1:] {
		lo.X = math.Min(lo.X, q.X)
		lo.Y = math.Min(lo.Y, q.Y)
		hi.X = math.Max(hi.X, q.X)
		hi.Y = math.Max(hi.Y, q.Y)
	}
	return lo, hi, true
}
