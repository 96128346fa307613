package chess

import "fmt"

// Color of a side.
type Color uint8

// Kind of a piece. Kinds are shifted left by one so a kind ORed with a color
// fits in a single byte of a Board.
type Kind uint8

// PieceID is a stable handle for a piece, independent of its square.
type PieceID int

const (
	White Color = 0
	Black Color = 1
)

const (
	none   Kind = iota << 1
	Pawn   Kind = iota << 1
	Knight Kind = iota << 1
	Bishop Kind = iota << 1
	Rook   Kind = iota << 1
	Queen  Kind = iota << 1
	King   Kind = iota << 1
)

// NoPiece is the zero handle.
const NoPiece PieceID = 0

var kindNames = map[Kind]string{
	Pawn:   "Pawn",
	Knight: "Knight",
	Bishop: "Bishop",
	Rook:   "Rook",
	Queen:  "Queen",
	King:   "King",
}

var kindValues = map[Kind]int{
	Pawn:   1,
	Knight: 3,
	Bishop: 3,
	Rook:   5,
	Queen:  9,
	King:   0,
}

type offset struct {
	file, rank int
}

var kingOffsets = []offset{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

var knightOffsets = []offset{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

// Piece is a single live piece on the board.
type Piece struct {
	ID     PieceID
	Name   string
	Kind   Kind
	Color  Color
	Square Square
	Value  int
}

// NewPiece builds a piece with the material value of its kind.
func NewPiece(id PieceID, name string, kind Kind, color Color, sq Square) Piece {
	return Piece{ID: id, Name: name, Kind: kind, Color: color, Square: sq, Value: kindValues[kind]}
}

func (c Color) String() string {
	if c == Black {
		return "Black"
	}
	return "White"
}

// Other returns the opposing color.
func (c Color) Other() Color {
	return c ^ 1
}

// MarshalText encodes a color as its name.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText decodes a color name.
func (c *Color) UnmarshalText(text []byte) error {
	switch string(text) {
	case "White":
		*c = White
	case "Black":
		*c = Black
	default:
		return fmt.Errorf("invalid color %q", text)
	}
	return nil
}

// forward is the rank delta of a pawn advance.
func (c Color) forward() int {
	if c == Black {
		return -1
	}
	return 1
}

// homeRank is the rank from which a pawn may advance two squares.
func (c Color) homeRank() int {
	if c == Black {
		return 7
	}
	return 2
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// MarshalText encodes a kind as its name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText decodes a kind name.
func (k *Kind) UnmarshalText(text []byte) error {
	for kind, name := range kindNames {
		if name == string(text) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("invalid kind %q", text)
}

// Slides reports whether the kind moves along rays.
func (k Kind) Slides() bool {
	return k == Bishop || k == Rook || k == Queen
}

// alongRay reports whether the delta lies on a ray the kind may slide along.
func (k Kind) alongRay(df, dr int) bool {
	straight := (df == 0) != (dr == 0)
	diagonal := df != 0 && (df == dr || df == -dr)
	switch k {
	case Rook:
		return straight
	case Bishop:
		return diagonal
	case Queen:
		return straight || diagonal
	}
	return false
}

// steps reports whether the delta is one of the fixed offsets of a stepping kind.
func (k Kind) steps(df, dr int) bool {
	var offsets []offset
	switch k {
	case King:
		offsets = kingOffsets
	case Knight:
		offsets = knightOffsets
	default:
		return false
	}
	for _, o := range offsets {
		if o.file == df && o.rank == dr {
			return true
		}
	}
	return false
}

func (p Piece) String() string {
	return fmt.Sprintf("%s %s at %s", p.Color, p.Kind, p.Square)
}

// key identifies a piece by position rather than handle.
func (p Piece) key() pieceKey {
	return pieceKey{square: p.Square, color: p.Color, kind: p.Kind}
}

type pieceKey struct {
	square Square
	color  Color
	kind   Kind
}
