// Package geom provides the stateless collision predicates used by the
// quest engine. All predicates are pure functions over value types; none
// of them allocate, error, or panic.
package geom

// Point is a position in level space. X grows rightward, Y grows downward.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X, Y float64
	W, H float64
}

// Circle is a circle described by its center and radius.
type Circle struct {
	X, Y float64
	R    float64
}

// Overlaps reports whether two rectangles share positive area.
// Rectangles that only touch along an edge do not overlap, and a
// degenerate rectangle (zero width or height) never overlaps anything.
func Overlaps(a, b Rect) bool {
	if a.W <= 0 || a.H <= 0 || b.W <= 0 || b.H <= 0 {
		return false
	}
	return a.X < b.X+b.W && b.X < a.X+a.W &&
		a.Y < b.Y+b.H && b.Y < a.Y+a.H
}

// OverlapsCircle reports whether two circles overlap. Tangent circles
// (center distance exactly equal to the radius sum) do not collide.
func OverlapsCircle(a, b Circle) bool {
	if a.R <= 0 || b.R <= 0 {
		return false
	}
	dx := a.X - b.X
	dy := a.Y - b.Y
	rs := a.R + b.R
	return dx*dx+dy*dy < rs*rs
}

// Contains reports whether p lies inside r using half-open interval
// semantics: inclusive on the min edges, exclusive on the max edges.
// Adjacent rectangles therefore never both claim a shared boundary point.
func Contains(r Rect, p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// CircleContains reports whether p lies strictly inside c.
// A point exactly on the boundary is outside.
func CircleContains(c Circle, p Point) bool {
	dx := p.X - c.X
	dy := p.Y - c.Y
	return dx*dx+dy*dy < c.R*c.R
}
