package geom

import "testing"

// TestOverlapsBasic tests positive-area rectangle overlap
func TestOverlapsBasic(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	b := Rect{X: 5, Y: 5, W: 10, H: 10}
	if !Overlaps(a, b) {
		t.Errorf("Expected overlap between %v and %v", a, b)
	}
	if !Overlaps(b, a) {
		t.Errorf("Expected overlap to be symmetric")
	}

	c := Rect{X: 20, Y: 20, W: 5, H: 5}
	if Overlaps(a, c) {
		t.Errorf("Expected no overlap between disjoint rects %v and %v", a, c)
	}
}

// TestOverlapsSharedEdge tests that edge-adjacent rectangles do not collide
func TestOverlapsSharedEdge(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	b := Rect{X: 10, Y: 0, W: 10, H: 10}
	if Overlaps(a, b) {
		t.Errorf("Rects sharing only an edge must not overlap: %v, %v", a, b)
	}

	below := Rect{X: 0, Y: 10, W: 10, H: 10}
	if Overlaps(a, below) {
		t.Errorf("Vertically adjacent rects must not overlap: %v, %v", a, below)
	}
}

// TestOverlapsDegenerate tests zero-size rectangles never collide
func TestOverlapsDegenerate(t *testing.T) {
	full := Rect{X: 0, Y: 0, W: 10, H: 10}
	cases := []Rect{
		{X: 5, Y: 5, W: 0, H: 10},
		{X: 5, Y: 5, W: 10, H: 0},
		{X: 5, Y: 5, W: 0, H: 0},
		{X: 5, Y: 5, W: -1, H: 5},
	}
	for _, r := range cases {
		if Overlaps(full, r) {
			t.Errorf("Degenerate rect %v must never overlap", r)
		}
		if Overlaps(r, full) {
			t.Errorf("Degenerate rect %v must never overlap (reversed)", r)
		}
	}
}

// TestOverlapsCircle tests circle overlap including the tangent boundary
func TestOverlapsCircle(t *testing.T) {
	a := Circle{X: 0, Y: 0, R: 5}
	b := Circle{X: 7, Y: 0, R: 5}
	if !OverlapsCircle(a, b) {
		t.Errorf("Expected circles %v and %v to overlap", a, b)
	}

	// Distance exactly equals radius sum: touching, not colliding.
	tangent := Circle{X: 10, Y: 0, R: 5}
	if OverlapsCircle(a, tangent) {
		t.Errorf("Tangent circles must not collide: %v, %v", a, tangent)
	}

	far := Circle{X: 100, Y: 0, R: 5}
	if OverlapsCircle(a, far) {
		t.Errorf("Distant circles must not collide: %v, %v", a, far)
	}

	zero := Circle{X: 0, Y: 0, R: 0}
	if OverlapsCircle(a, zero) {
		t.Errorf("Zero-radius circle must never collide")
	}
}

// TestContains tests half-open point containment
func TestContains(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 10, H: 10}

	if !Contains(r, Point{X: 0, Y: 0}) {
		t.Errorf("Min corner must be inside (inclusive min edge)")
	}
	if Contains(r, Point{X: 10, Y: 5}) {
		t.Errorf("Max X edge must be outside (exclusive max edge)")
	}
	if Contains(r, Point{X: 5, Y: 10}) {
		t.Errorf("Max Y edge must be outside (exclusive max edge)")
	}
	if !Contains(r, Point{X: 9.999, Y: 9.999}) {
		t.Errorf("Interior point must be inside")
	}

	// Adjacent rects never double-count a boundary point.
	right := Rect{X: 10, Y: 0, W: 10, H: 10}
	p := Point{X: 10, Y: 5}
	if Contains(r, p) && Contains(right, p) {
		t.Errorf("Boundary point %v claimed by both adjacent rects", p)
	}
	if !Contains(right, p) {
		t.Errorf("Boundary point %v must belong to the right rect", p)
	}
}

// TestCircleContains tests strict circle containment
func TestCircleContains(t *testing.T) {
	c := Circle{X: 0, Y: 0, R: 5}
	if !CircleContains(c, Point{X: 3, Y: 0}) {
		t.Errorf("Interior point must be inside circle")
	}
	if CircleContains(c, Point{X: 5, Y: 0}) {
		t.Errorf("Boundary point must be outside circle (strict)")
	}
	if CircleContains(c, Point{X: 4, Y: 4}) {
		t.Errorf("Exterior point must be outside circle")
	}
}
