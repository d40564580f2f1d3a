package maze

// LegalMoves returns the directions in which a move of step cells from p
// lands on a free cell. Only the destination is checked; the cells in between
// are carved by the move itself. The result keeps the Up, Right, Down, Left
// order.
func LegalMoves(g *Grid, p Point, step int) []Direction {
	moves := make([]Direction, 0, len(Directions))
	for _, d := range Directions {
		if g.IsFree(p.Add(d, step)) {
			moves = append(moves, d)
		}
	}
	return moves
}

// hasLegalMove is LegalMoves without the allocation.
func hasLegalMove(g *Grid, p Point, step int) bool {
	for _, d := range Directions {
		if g.IsFree(p.Add(d, step)) {
			return true
		}
	}
	return false
}
