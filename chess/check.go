package chess

// InCheck reports whether the king of the color is attacked. A color without
// a king is never in check.
func InCheck(color Color, set Pieces) bool {
	king, ok := set.King(color)
	if !ok {
		return false
	}
	for _, p := range set {
		if p.Color != color && CanMove(p, king.Square, set, true) {
			return true
		}
	}
	return false
}

// Attackers returns every opposing piece attacking the king of the color.
func Attackers(color Color, set Pieces) Pieces {
	king, ok := set.King(color)
	if !ok {
		return nil
	}
	var attackers Pieces
	for _, p := range set {
		if p.Color != color && CanMove(p, king.Square, set, true) {
			attackers = append(attackers, p)
		}
	}
	return attackers
}
