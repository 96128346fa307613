package chess

import "github.com/apex/log"

// Game owns the piece set, the selection and the status of one match. It is
// not safe for concurrent use.
type Game struct {
	pieces    Pieces
	status    Status
	selection Selection
}

// NewGame returns a game in the standard starting layout with White to move.
func NewGame() *Game {
	return &Game{pieces: StartingPieces(), status: Status{Turn: White}}
}

// Restore rebuilds a game from a piece set, a status and the square of the
// first selected piece (NoSquare for none).
func Restore(set Pieces, status Status, selected Square) *Game {
	game := &Game{pieces: set.Clone(), status: status}
	if p, ok := game.pieces.At(selected); ok && p.Color == status.Turn {
		game.selection.First = p.ID
	}
	return game
}

// Status returns the current status.
func (g *Game) Status() Status {
	return g.status
}

// Pieces returns a snapshot of the live pieces.
func (g *Game) Pieces() Pieces {
	return g.pieces.Clone()
}

// Selection returns the current selection.
func (g *Game) Selection() Selection {
	return g.selection
}

// Selected returns the square of the first selected piece, or NoSquare.
func (g *Game) Selected() Square {
	if p, ok := g.pieces.Get(g.selection.First); ok {
		return p.Square
	}
	return NoSquare
}

// HandleTileClick feeds one on-board square into the selection protocol and
// commits a move when the click completes a legal, king-safe selection.
func (g *Game) HandleTileClick(sq Square) ClickResult {
	if g.status.Over() {
		log.WithField("square", sq).Info("game over, click ignored")
		return ClickResult{Outcome: OutcomeGameOver, To: sq, Status: g.status}
	}
	clicked, occupied := g.pieces.At(sq)
	first, ok := g.pieces.Get(g.selection.First)
	if !g.selection.active() || !ok {
		return g.selectFirst(sq, clicked, occupied)
	}
	if occupied && clicked.Color == first.Color {
		g.selection = Selection{First: clicked.ID}
		log.WithField("piece", clicked).Debug("selection changed")
		return ClickResult{Outcome: OutcomeReselected, Piece: clicked, From: clicked.Square, Status: g.status}
	}
	if occupied {
		g.selection.SecondPiece = clicked.ID
	} else {
		g.selection.SecondTile = sq
	}
	defer g.selection.clear()
	return g.attempt(first, sq, clicked, occupied)
}

func (g *Game) selectFirst(sq Square, clicked Piece, occupied bool) ClickResult {
	if !occupied {
		log.WithField("square", sq).Debug("no piece at tile")
		return ClickResult{Outcome: OutcomeEmpty, To: sq, Status: g.status}
	}
	if clicked.Color != g.status.Turn {
		log.WithField("turn", g.status.Turn).WithField("piece", clicked).Info("not your turn")
		return ClickResult{Outcome: OutcomeNotYourTurn, Piece: clicked, From: sq, Status: g.status}
	}
	g.selection = Selection{First: clicked.ID}
	log.WithField("piece", clicked).Debug("piece selected")
	return ClickResult{Outcome: OutcomeSelected, Piece: clicked, From: sq, Status: g.status}
}

func (g *Game) attempt(piece Piece, to Square, target Piece, occupied bool) ClickResult {
	result := ClickResult{Piece: piece, From: piece.Square, To: to, Status: g.status}
	ctx := log.WithField("piece", piece).WithField("to", to)
	if !CanMove(piece, to, g.pieces, occupied) {
		ctx.Info("illegal move")
		result.Outcome = OutcomeIllegal
		return result
	}
	var captured *Piece
	if occupied {
		captured = &target
	}
	if InCheck(piece.Color, Simulate(g.pieces, piece, to, captured)) {
		ctx.Info("move exposes king")
		result.Outcome = OutcomeSelfCheck
		return result
	}
	g.commit(piece.ID, to, captured)
	g.status = Resolve(g.status, g.pieces)
	result.Piece.Square = to
	result.Captured = captured
	result.Status = g.status
	result.Outcome = OutcomeMoved
	if captured != nil {
		result.Outcome = OutcomeCaptured
	}
	ctx.WithField("outcome", result.Outcome).Info("move made")
	return result
}

// commit applies a validated move to the real piece set. The captured piece
// is matched by square, color and kind as in Simulate.
func (g *Game) commit(id PieceID, to Square, captured *Piece) {
	if captured != nil {
		if i := g.pieces.indexOf(captured.key()); i >= 0 {
			g.pieces = append(g.pieces[:i], g.pieces[i+1:]...)
		}
	}
	for i := range g.pieces {
		if g.pieces[i].ID == id {
			g.pieces[i].Square = to
		}
	}
}
