package maze

// Head is a carving agent: a position on a visited cell, the last direction
// it moved in and its own branch store.
type Head struct {
	id        int
	pos       Point
	direction Direction
	branches  Branches
}

// HeadState is a read-only view of a head for collaborators.
type HeadState struct {
	ID        int       `json:"id"`
	Position  Point     `json:"position"`
	Direction Direction `json:"direction"`
	Branches  int       `json:"branches"`
}

func newHead(id int, start Point) *Head {
	return &Head{id: id, pos: start, direction: None}
}

// Position returns the current cell of the head.
func (h *Head) Position() Point {
	return h.pos
}

// Branches returns the number of stored branch points.
func (h *Head) Branches() int {
	return h.branches.Len()
}

// State returns a copy of the observable head state.
func (h *Head) State() HeadState {
	return HeadState{
		ID:        h.id,
		Position:  h.pos,
		Direction: h.direction,
		Branches:  h.branches.Len(),
	}
}
