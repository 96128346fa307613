package chess

// Pieces is the ordered set of live pieces.
type Pieces []Piece

// At returns the piece occupying the square.
func (set Pieces) At(sq Square) (Piece, bool) {
	for _, p := range set {
		if p.Square == sq {
			return p, true
		}
	}
	return Piece{}, false
}

// Occupied reports whether any piece stands on the square.
func (set Pieces) Occupied(sq Square) bool {
	_, ok := set.At(sq)
	return ok
}

// Get returns the piece with the given handle.
func (set Pieces) Get(id PieceID) (Piece, bool) {
	for _, p := range set {
		if p.ID == id {
			return p, true
		}
	}
	return Piece{}, false
}

// King returns the king of the color, if present.
func (set Pieces) King(color Color) (Piece, bool) {
	for _, p := range set {
		if p.Kind == King && p.Color == color {
			return p, true
		}
	}
	return Piece{}, false
}

// Clone returns an independent copy of the set.
func (set Pieces) Clone() Pieces {
	clone := make(Pieces, len(set))
	copy(clone, set)
	return clone
}

// Color returns the pieces of one side, in set order.
func (set Pieces) Color(color Color) Pieces {
	out := make(Pieces, 0, 16)
	for _, p := range set {
		if p.Color == color {
			out = append(out, p)
		}
	}
	return out
}

// Material sums the material value of one side.
func (set Pieces) Material(color Color) int {
	total := 0
	for _, p := range set {
		if p.Color == color {
			total = total + p.Value
		}
	}
	return total
}

// onlyKing reports whether the color has no piece other than its king.
func (set Pieces) onlyKing(color Color) bool {
	for _, p := range set {
		if p.Color == color && p.Kind != King {
			return false
		}
	}
	return true
}

func (set Pieces) indexOf(k pieceKey) int {
	for i, p := range set {
		if p.key() == k {
			return i
		}
	}
	return -1
}
