package maze

// Branches is the ordered store of resumable points owned by one head.
// Whether it behaves as a stack, a queue or a bag is decided by the Policy.
type Branches struct {
	points []Point
}

// Len returns the number of stored points.
func (b *Branches) Len() int {
	return len(b.points)
}

// Push appends p to the back.
func (b *Branches) Push(p Point) {
	b.points = append(b.points, p)
}

// PopBack removes and returns the most recently pushed point.
func (b *Branches) PopBack() (Point, bool) {
	if len(b.points) == 0 {
		return Point{}, false
	}

	last := len(b.points) - 1
	p := b.points[last]
	b.points = b.points[:last]
	return p, true
}

// PopFront removes and returns the earliest pushed point.
func (b *Branches) PopFront() (Point, bool) {
	return b.RemoveAt(0)
}

// RemoveAt removes and returns the point at index i.
func (b *Branches) RemoveAt(i int) (Point, bool) {
	if i < 0 || i >= len(b.points) {
		return Point{}, false
	}

	p := b.points[i]
	copy(b.points[i:], b.points[i+1:])
	b.points = b.points[:len(b.points)-1]
	return p, true
}

// Points returns a copy of the stored points, oldest first.
func (b *Branches) Points() []Point {
	out := make([]Point, len(b.points))
	copy(out, b.points)
	return out
}
