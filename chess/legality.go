package chess

// CanMove reports whether the piece may move to the square given the set,
// ignoring king safety. In attacking mode a pawn is asked whether it threatens
// the square, whatever stands on it; the flag does not affect other kinds.
// The destination must be on the board.
func CanMove(piece Piece, to Square, set Pieces, attacking bool) bool {
	if to == piece.Square {
		return false
	}
	switch piece.Kind {
	case Pawn:
		if attacking {
			return canPawnAttack(piece, to)
		}
		return canPawnMove(piece, to, set)
	case Knight, King:
		df, dr := piece.Square.delta(to)
		return piece.Kind.steps(df, dr) && canLand(piece, to, set)
	case Bishop, Rook, Queen:
		return canSlide(piece, to, set)
	}
	return false
}

// canLand reports whether the destination is empty or holds an opposing piece.
func canLand(piece Piece, to Square, set Pieces) bool {
	if target, ok := set.At(to); ok {
		return target.Color != piece.Color
	}
	return true
}

func canSlide(piece Piece, to Square, set Pieces) bool {
	df, dr := piece.Square.delta(to)
	if !piece.Kind.alongRay(df, dr) {
		return false
	}
	stepFile, stepRank := sign(df), sign(dr)
	for sq := piece.Square.shift(stepFile, stepRank); sq != to; sq = sq.shift(stepFile, stepRank) {
		if set.Occupied(sq) {
			return false
		}
	}
	return canLand(piece, to, set)
}

func canPawnMove(piece Piece, to Square, set Pieces) bool {
	df, dr := piece.Square.delta(to)
	forward := piece.Color.forward()
	switch {
	case df == 0 && dr == forward:
		return !set.Occupied(to)
	case df == 0 && dr == 2*forward:
		if piece.Square.Rank != piece.Color.homeRank() {
			return false
		}
		return !set.Occupied(piece.Square.shift(0, forward)) && !set.Occupied(to)
	case (df == 1 || df == -1) && dr == forward:
		target, ok := set.At(to)
		return ok && target.Color != piece.Color
	}
	return false
}

func canPawnAttack(piece Piece, to Square) bool {
	df, dr := piece.Square.delta(to)
	return (df == 1 || df == -1) && dr == piece.Color.forward()
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}
