package chess

import (
	"database/sql/driver"
	"encoding/hex"
	"fmt"
	"strings"
)

// Board is a compact position: one byte per square, indexed from (1,1)
// file-major, holding a kind ORed with its color.
type Board [64]uint8

func (board *Board) put(sq Square, kind Kind, color Color) {
	board[sq.index()] = uint8(kind) | uint8(color)
}

func (board Board) kind(i int) Kind {
	return Kind(board[i] & 0xE)
}

func (board Board) color(i int) Color {
	return Color(board[i] & 1)
}

// Board encodes the set as a compact position.
func (set Pieces) Board() Board {
	var board Board
	for _, p := range set {
		board.put(p.Square, p.Kind, p.Color)
	}
	return board
}

// Pieces decodes the position into a piece set. Handles and names are
// assigned in setup order: by kind, White before Black, then by square.
func (board Board) Pieces() Pieces {
	set := make(Pieces, 0, 32)
	for _, kind := range setupOrder {
		for _, color := range []Color{White, Black} {
			n := 0
			for i := range board {
				if board.kind(i) != kind || board.color(i) != color {
					continue
				}
				n = n + 1
				id := PieceID(len(set) + 1)
				set = append(set, NewPiece(id, pieceName(kind, n), kind, color, squareAt(i)))
			}
		}
	}
	return set
}

func (board Board) String() string {
	var b strings.Builder
	for rank := 8; rank >= 1; rank-- {
		for file := 1; file <= 8; file++ {
			i := Square{File: file, Rank: rank}.index()
			switch {
			case board.kind(i) == none:
				b.WriteRune('·')
			case board.color(i) == Black:
				b.WriteRune(glyphsBlack[board.kind(i)])
			default:
				b.WriteRune(glyphsWhite[board.kind(i)])
			}
		}
		b.WriteRune('\n')
	}
	return b.String()
}

// Value stores the board as hex.
func (board Board) Value() (driver.Value, error) {
	return hex.EncodeToString(board[:]), nil
}

// Scan reads a hex encoded board.
func (board *Board) Scan(cell interface{}) error {
	var src []byte
	switch cell := cell.(type) {
	case string:
		src = []byte(cell)
	case []byte:
		src = cell
	default:
		return fmt.Errorf("invalid format scaning %#v", cell)
	}
	raw, err := hex.DecodeString(string(src))
	if err != nil {
		return err
	}
	if len(raw) != len(board) {
		return fmt.Errorf("board is not length %d: %d", len(board), len(raw))
	}
	copy(board[:], raw)
	return nil
}
