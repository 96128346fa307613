package chess

import "fmt"

var backRank = []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// setupOrder is the order pieces are created in at game setup.
var setupOrder = []Kind{Pawn, Knight, Rook, Bishop, Queen, King}

var glyphsWhite = map[Kind]rune{
	Bishop: '♗',
	King:   '♔',
	Knight: '♘',
	Pawn:   '♙',
	Queen:  '♕',
	Rook:   '♖',
}

var glyphsBlack = map[Kind]rune{
	Bishop: '♝',
	King:   '♚',
	Knight: '♞',
	Pawn:   '♟',
	Queen:  '♛',
	Rook:   '♜',
}

// StartingPieces returns the 32-piece standard layout.
func StartingPieces() Pieces {
	var start Board
	for file := 1; file <= 8; file++ {
		start.put(Square{File: file, Rank: 1}, backRank[file-1], White)
		start.put(Square{File: file, Rank: 2}, Pawn, White)
		start.put(Square{File: file, Rank: 7}, Pawn, Black)
		start.put(Square{File: file, Rank: 8}, backRank[file-1], Black)
	}
	return start.Pieces()
}

// pieceName labels the n-th (1-based) piece of a kind for one side. Kinds
// with a single piece per side go unnumbered.
func pieceName(kind Kind, n int) string {
	if kind == King || kind == Queen {
		return kind.String()
	}
	return fmt.Sprintf("%s %d", kind, n)
}
