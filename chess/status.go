package chess

import "github.com/apex/log"

// Status is the game state exposed after every committed move.
type Status struct {
	Turn      Color
	Check     bool
	Checkmate bool
	Stalemate bool
}

// Over reports whether the game has ended.
func (s Status) Over() bool {
	return s.Checkmate || s.Stalemate
}

// Resolve hands the turn to the other side and derives check, checkmate and
// stalemate for it.
//
// Escapes from check are limited to moving the king or capturing a sole
// attacker; blocking a slider is not searched. Stalemate only looks at the
// king's own mobility and whether any other piece of the side remains.
func Resolve(status Status, set Pieces) Status {
	next := Status{Turn: status.Turn.Other()}
	if InCheck(next.Turn, set) {
		next.Check = true
		next.Checkmate = !kingCanMove(next.Turn, set) && !canCaptureAttacker(next.Turn, set)
	} else {
		next.Stalemate = !kingCanMove(next.Turn, set) && set.onlyKing(next.Turn)
	}
	log.WithFields(log.Fields{
		"turn":      next.Turn,
		"check":     next.Check,
		"checkmate": next.Checkmate,
		"stalemate": next.Stalemate,
	}).Debug("status resolved")
	return next
}

// kingCanMove reports whether the king of the color has a safe square to go to.
func kingCanMove(color Color, set Pieces) bool {
	king, ok := set.King(color)
	if !ok {
		return false
	}
	found := false
	eachSquare(func(sq Square) bool {
		if target, ok := set.At(sq); ok && target.Color == color {
			return true
		}
		if CanMove(king, sq, set, false) && leavesKingSafe(set, king, sq) {
			log.WithField("square", sq).Debug("king can move")
			found = true
		}
		return !found
	})
	return found
}

// canCaptureAttacker reports whether a piece other than the king can take
// the only piece giving check without exposing the king.
func canCaptureAttacker(color Color, set Pieces) bool {
	attackers := Attackers(color, set)
	if len(attackers) != 1 {
		return false
	}
	attacker := attackers[0]
	for _, p := range set {
		if p.Color != color || p.Kind == King {
			continue
		}
		if !CanMove(p, attacker.Square, set, false) {
			continue
		}
		if !InCheck(color, Simulate(set, p, attacker.Square, &attacker)) {
			log.WithField("piece", p).WithField("attacker", attacker).Debug("attacker can be captured")
			return true
		}
	}
	return false
}
