package maze

// Point is a cell coordinate in the occupancy grid.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns the point n cells away from p in direction d.
func (p Point) Add(d Direction, n int) Point {
	delta := d.Delta()
	return Point{X: p.X + delta.X*n, Y: p.Y + delta.Y*n}
}

// Direction is a cardinal movement of a head.
type Direction int

// None means "no direction yet" or "no legal move".
const (
	None Direction = iota
	Up
	Right
	Down
	Left
)

// Directions lists the cardinal moves in evaluation order.
var Directions = [...]Direction{Up, Right, Down, Left}

var deltas = map[Direction]Point{
	Up:    {X: 0, Y: -1},
	Right: {X: 1, Y: 0},
	Down:  {X: 0, Y: 1},
	Left:  {X: -1, Y: 0},
}

// Delta returns the one-cell offset of the direction. None has a zero offset.
func (d Direction) Delta() Point {
	return deltas[d]
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Right:
		return "Right"
	case Down:
		return "Down"
	case Left:
		return "Left"
	default:
		return "None"
	}
}

// MarshalText encodes the direction by name.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText decodes a direction name. Unknown names decode to None.
func (d *Direction) UnmarshalText(b []byte) error {
	*d = None
	for _, candidate := range Directions {
		if candidate.String() == string(b) {
			*d = candidate
		}
	}
	return nil
}
