package chess

import (
	"strings"

	. "gopkg.in/check.v1"
)

type BoardSuite struct{}

var _ = Suite(&BoardSuite{})

func (s *BoardSuite) TestFmtBoard(c *C) {
	value, err := Board{}.Value()
	c.Assert(err, IsNil)
	c.Assert(value, Equals, strings.Repeat("00", 64))
	value, err = StartingPieces().Board().Value()
	c.Assert(err, IsNil)
	c.Assert(value, Equals, "0804060a0c060408"+strings.Repeat("02", 8)+strings.Repeat("00", 32)+strings.Repeat("03", 8)+"0905070b0d070509")
}

func (s *BoardSuite) TestScanBoard(c *C) {
	value, err := StartingPieces().Board().Value()
	c.Assert(err, IsNil)
	var board Board
	c.Assert(board.Scan(value), IsNil)
	c.Assert(board.Pieces(), diffEquals, StartingPieces())

	var raw Board
	c.Assert(raw.Scan([]byte(value.(string))), IsNil)
	c.Assert(raw, Equals, board)
}

func (s *BoardSuite) TestScanBadBoard(c *C) {
	var board Board
	c.Assert(board.Scan(0), ErrorMatches, "invalid format scaning 0")
	c.Assert(board.Scan("zz"), ErrorMatches, "encoding/hex: invalid byte: .*")
	c.Assert(board.Scan("0804"), ErrorMatches, "board is not length 64: 2")
}

func (s *BoardSuite) TestStartingLayout(c *C) {
	set := StartingPieces()
	c.Assert(set, HasLen, 32)
	c.Assert(set.Material(White), Equals, 39)
	c.Assert(set.Material(Black), Equals, 39)
	assertUniqueSquares(c, set)
	for i, p := range set {
		c.Assert(p.ID, Equals, PieceID(i+1))
	}
	c.Assert(set[0], Equals, NewPiece(1, "Pawn 1", Pawn, White, sq(1, 2)))
	c.Assert(set[8], Equals, NewPiece(9, "Pawn 1", Pawn, Black, sq(1, 7)))
	king, ok := set.King(Black)
	c.Assert(ok, Equals, true)
	c.Assert(king, Equals, NewPiece(32, "King", King, Black, sq(5, 8)))
	queen := mustAt(c, set, sq(4, 1))
	c.Assert(queen.Name, Equals, "Queen")
	c.Assert(queen.Value, Equals, 9)
	c.Assert(mustAt(c, set, sq(7, 8)).Name, Equals, "Knight 2")
}

func (s *BoardSuite) TestBoardString(c *C) {
	lines := strings.Split(StartingPieces().Board().String(), "\n")
	c.Assert(lines, HasLen, 9)
	c.Assert(lines[0], Equals, "♜♞♝♛♚♝♞♜")
	c.Assert(lines[1], Equals, "♟♟♟♟♟♟♟♟")
	c.Assert(lines[4], Equals, "········")
	c.Assert(lines[7], Equals, "♖♘♗♕♔♗♘♖")
}

func (s *BoardSuite) TestSquare(c *C) {
	c.Assert(NoSquare.Valid(), Equals, false)
	c.Assert(sq(1, 1).Valid(), Equals, true)
	c.Assert(sq(8, 9).Valid(), Equals, false)
	c.Assert(sq(5, 2).String(), Equals, "(5,2)")
	for i := 0; i < 64; i++ {
		c.Assert(squareAt(i).index(), Equals, i)
	}
}
