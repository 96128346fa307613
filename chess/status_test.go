package chess

import (
	. "gopkg.in/check.v1"
)

type StatusSuite struct{}

var _ = Suite(&StatusSuite{})

func (s *StatusSuite) TestQuietMoveFlipsTurn(c *C) {
	status := Resolve(Status{Turn: White}, StartingPieces())
	c.Assert(status, Equals, Status{Turn: Black})
	status = Resolve(status, StartingPieces())
	c.Assert(status, Equals, Status{Turn: White})
}

func (s *StatusSuite) TestQueenAndRookMate(c *C) {
	set := position(
		pc(King, Black, 1, 8),
		pc(King, White, 5, 1),
		pc(Queen, White, 8, 8),
		pc(Rook, White, 8, 7),
	)
	status := Resolve(Status{Turn: White}, set)
	c.Assert(status, Equals, Status{Turn: Black, Check: true, Checkmate: true})
	c.Assert(status.Over(), Equals, true)
}

func (s *StatusSuite) TestKingCapturesAttacker(c *C) {
	set := position(
		pc(King, Black, 8, 8),
		pc(King, White, 1, 1),
		pc(Rook, White, 7, 8),
	)
	status := Resolve(Status{Turn: White}, set)
	c.Assert(status, Equals, Status{Turn: Black, Check: true})
}

func (s *StatusSuite) TestBackRankMate(c *C) {
	set := position(
		pc(King, Black, 8, 8),
		pc(Pawn, Black, 7, 7),
		pc(Pawn, Black, 8, 7),
		pc(King, White, 5, 1),
		pc(Rook, White, 1, 8),
	)
	status := Resolve(Status{Turn: White}, set)
	c.Assert(status, Equals, Status{Turn: Black, Check: true, Checkmate: true})
}

func (s *StatusSuite) TestSingleAttackerCaptured(c *C) {
	set := position(
		pc(King, Black, 8, 8),
		pc(Pawn, Black, 7, 7),
		pc(Pawn, Black, 8, 7),
		pc(Rook, Black, 1, 2),
		pc(King, White, 5, 1),
		pc(Rook, White, 1, 8),
	)
	status := Resolve(Status{Turn: White}, set)
	c.Assert(status, Equals, Status{Turn: Black, Check: true})
}

func (s *StatusSuite) TestPinnedDefenderCannotCapture(c *C) {
	// The bishop on e7 could take the knight only by opening the e-file.
	set := position(
		pc(King, Black, 5, 8),
		pc(Bishop, Black, 5, 7),
		pc(Rook, Black, 4, 8),
		pc(Bishop, Black, 6, 8),
		pc(Pawn, Black, 4, 7),
		pc(Pawn, Black, 6, 7),
		pc(King, White, 1, 1),
		pc(Rook, White, 5, 1),
		pc(Knight, White, 4, 6),
	)
	c.Assert(Attackers(Black, set), HasLen, 1)
	c.Assert(CanMove(mustAt(c, set, sq(5, 7)), sq(4, 6), set, false), Equals, true)
	status := Resolve(Status{Turn: White}, set)
	c.Assert(status, Equals, Status{Turn: Black, Check: true, Checkmate: true})
}

func (s *StatusSuite) TestDoubleCheckCannotBeCaptured(c *C) {
	set := position(
		pc(King, Black, 8, 8),
		pc(Pawn, Black, 7, 7),
		pc(Pawn, Black, 8, 7),
		pc(Rook, Black, 1, 2),
		pc(King, White, 5, 1),
		pc(Rook, White, 1, 8),
		pc(Knight, White, 7, 6),
	)
	c.Assert(Attackers(Black, set), HasLen, 2)
	status := Resolve(Status{Turn: White}, set)
	c.Assert(status, Equals, Status{Turn: Black, Check: true, Checkmate: true})
}

func (s *StatusSuite) TestRookOnFileWithoutInterposition(c *C) {
	// Only king moves and captures count as escapes, so the bishop that
	// could block on e2 does not save White.
	set := position(
		pc(King, White, 5, 1),
		pc(Bishop, White, 4, 1),
		pc(Bishop, White, 6, 1),
		pc(Pawn, White, 4, 2),
		pc(Pawn, White, 6, 2),
		pc(Rook, Black, 5, 8),
	)
	c.Assert(InCheck(White, set), Equals, true)
	status := Resolve(Status{Turn: Black}, set)
	c.Assert(status, Equals, Status{Turn: White, Check: true, Checkmate: true})
}

func (s *StatusSuite) TestRookOnFileKingSteps(c *C) {
	set := position(pc(King, White, 5, 1), pc(Rook, Black, 5, 8))
	status := Resolve(Status{Turn: Black}, set)
	c.Assert(status, Equals, Status{Turn: White, Check: true})
}

func (s *StatusSuite) TestLoneKingStalemate(c *C) {
	set := position(
		pc(King, Black, 8, 8),
		pc(Queen, White, 7, 6),
		pc(King, White, 6, 7),
	)
	status := Resolve(Status{Turn: White}, set)
	c.Assert(status, Equals, Status{Turn: Black, Stalemate: true})
	c.Assert(status.Over(), Equals, true)
}

func (s *StatusSuite) TestStalemateNeedsLoneKing(c *C) {
	set := position(
		pc(King, Black, 8, 8),
		pc(Pawn, Black, 1, 7),
		pc(Queen, White, 7, 6),
		pc(King, White, 6, 7),
	)
	status := Resolve(Status{Turn: White}, set)
	c.Assert(status, Equals, Status{Turn: Black})
}
