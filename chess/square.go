package chess

import "fmt"

// Square is a board cell addressed by 1-based file and rank.
type Square struct {
	File int
	Rank int
}

// NoSquare is the off-board sentinel. It never denotes a real square.
var NoSquare = Square{}

// Valid reports whether the square lies on the board.
func (sq Square) Valid() bool {
	return sq.File >= 1 && sq.File <= 8 && sq.Rank >= 1 && sq.Rank <= 8
}

func (sq Square) String() string {
	return fmt.Sprintf("(%d,%d)", sq.File, sq.Rank)
}

func (sq Square) delta(to Square) (int, int) {
	return to.File - sq.File, to.Rank - sq.Rank
}

func (sq Square) shift(df, dr int) Square {
	return Square{File: sq.File + df, Rank: sq.Rank + dr}
}

func (sq Square) index() int {
	return (sq.Rank-1)*8 + sq.File - 1
}

func squareAt(index int) Square {
	return Square{File: index%8 + 1, Rank: index/8 + 1}
}

// eachSquare visits all 64 squares, file-major within each rank.
func eachSquare(visit func(Square) bool) {
	for rank := 1; rank <= 8; rank++ {
		for file := 1; file <= 8; file++ {
			if !visit(Square{File: file, Rank: rank}) {
				return
			}
		}
	}
}
