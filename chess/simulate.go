package chess

// Simulate returns a copy of the set with the move applied. Both the mover
// and the captured piece are matched by square, color and kind, not by
// handle. The input set is left untouched.
func Simulate(set Pieces, moving Piece, to Square, captured *Piece) Pieces {
	hypothetical := set.Clone()
	if captured != nil {
		if i := hypothetical.indexOf(captured.key()); i >= 0 {
			hypothetical = append(hypothetical[:i], hypothetical[i+1:]...)
		}
	}
	if i := hypothetical.indexOf(moving.key()); i >= 0 {
		hypothetical[i].Square = to
	}
	return hypothetical
}

// leavesKingSafe reports whether the move keeps the mover's king out of check.
func leavesKingSafe(set Pieces, moving Piece, to Square) bool {
	var captured *Piece
	if target, ok := set.At(to); ok && target.Color != moving.Color {
		captured = &target
	}
	return !InCheck(moving.Color, Simulate(set, moving, to, captured))
}
