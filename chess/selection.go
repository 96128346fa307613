package chess

import "fmt"

// Selection holds the pieces and tile picked by tile clicks. Only one of
// SecondPiece and SecondTile is meaningful for a move attempt.
type Selection struct {
	First       PieceID
	SecondPiece PieceID
	SecondTile  Square
}

// Outcome of a tile click.
type Outcome uint8

const (
	// OutcomeEmpty is a click on an empty tile with nothing selected.
	OutcomeEmpty Outcome = iota
	// OutcomeNotYourTurn is a click on a piece of the side not to move.
	OutcomeNotYourTurn
	// OutcomeSelected records the first piece.
	OutcomeSelected
	// OutcomeReselected moves the selection to another piece of the same side.
	OutcomeReselected
	// OutcomeIllegal rejects a move the piece cannot make.
	OutcomeIllegal
	// OutcomeSelfCheck rejects a move that would leave the mover's king attacked.
	OutcomeSelfCheck
	// OutcomeMoved commits a move onto an empty tile.
	OutcomeMoved
	// OutcomeCaptured commits a move that takes an opposing piece.
	OutcomeCaptured
	// OutcomeGameOver rejects any click after checkmate or stalemate.
	OutcomeGameOver
)

var outcomeNames = []string{
	OutcomeEmpty:       "empty",
	OutcomeNotYourTurn: "not-your-turn",
	OutcomeSelected:    "selected",
	OutcomeReselected:  "reselected",
	OutcomeIllegal:     "illegal",
	OutcomeSelfCheck:   "self-check",
	OutcomeMoved:       "moved",
	OutcomeCaptured:    "captured",
	OutcomeGameOver:    "game-over",
}

func (o Outcome) String() string {
	if int(o) < len(outcomeNames) {
		return outcomeNames[o]
	}
	return "unknown"
}

// MarshalText encodes an outcome as its name.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText decodes an outcome name.
func (o *Outcome) UnmarshalText(text []byte) error {
	for i, name := range outcomeNames {
		if name == string(text) {
			*o = Outcome(i)
			return nil
		}
	}
	return fmt.Errorf("invalid outcome %q", text)
}

// Committed reports whether the click changed the board.
func (o Outcome) Committed() bool {
	return o == OutcomeMoved || o == OutcomeCaptured
}

// Rejected reports whether the click attempted a move that was refused.
func (o Outcome) Rejected() bool {
	return o == OutcomeIllegal || o == OutcomeSelfCheck
}

// ClickResult describes what a tile click did.
type ClickResult struct {
	Outcome  Outcome
	Piece    Piece
	From     Square
	To       Square
	Captured *Piece
	Status   Status
}

func (s *Selection) clear() {
	*s = Selection{}
}

// active reports whether a first piece is held.
func (s Selection) active() bool {
	return s.First != NoPiece
}
