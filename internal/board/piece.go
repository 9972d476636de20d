package board

// Piece is the content of a chess square. The numeric values are stable and
// are what Packed stores per nibble: white pieces use even codes, black
// pieces the following odd code.
type Piece uint8

const (
	Empty       Piece = 0
	WhitePawn   Piece = 2
	BlackPawn   Piece = 3
	WhiteKnight Piece = 4
	BlackKnight Piece = 5
	WhiteBishop Piece = 6
	BlackBishop Piece = 7
	WhiteRook   Piece = 8
	BlackRook   Piece = 9
	WhiteQueen  Piece = 10
	BlackQueen  Piece = 11
	WhiteKing   Piece = 12
	BlackKing   Piece = 13
)

// Color of a piece. Empty squares have NoColor.
type Color uint8

const (
	NoColor Color = iota
	White
	Black
)

func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	default:
		return "none"
	}
}

// Kind is a piece type without color.
type Kind uint8

const (
	NoKind Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

var kindNames = [...]string{"none", "pawn", "knight", "bishop", "rook", "queen", "king"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// NewPiece combines a color and a kind. NoColor or NoKind yields Empty.
func NewPiece(c Color, k Kind) Piece {
	if c == NoColor || k == NoKind || k > King {
		return Empty
	}
	p := Piece(k) * 2
	if c == Black {
		p++
	}
	return p
}

// Valid reports whether p is one of the 13 defined codes.
func (p Piece) Valid() bool {
	return p == Empty || (p >= WhitePawn && p <= BlackKing)
}

func (p Piece) Color() Color {
	if p == Empty || !p.Valid() {
		return NoColor
	}
	if p%2 == 0 {
		return White
	}
	return Black
}

func (p Piece) Kind() Kind {
	if p == Empty || !p.Valid() {
		return NoKind
	}
	return Kind(p / 2)
}

const whiteLetters = " PNBRQK"

// Letter returns the FEN letter for p, upper case for white. Empty and
// invalid codes return 0.
func (p Piece) Letter() rune {
	k := p.Kind()
	if k == NoKind {
		return 0
	}
	l := rune(whiteLetters[k])
	if p.Color() == Black {
		l += 'a' - 'A'
	}
	return l
}

// PieceFromLetter maps one of PNBRQK/pnbrqk to its piece.
func PieceFromLetter(r rune) (Piece, bool) {
	switch r {
	case 'P':
		return WhitePawn, true
	case 'N':
		return WhiteKnight, true
	case 'B':
		return WhiteBishop, true
	case 'R':
		return WhiteRook, true
	case 'Q':
		return WhiteQueen, true
	case 'K':
		return WhiteKing, true
	case 'p':
		return BlackPawn, true
	case 'n':
		return BlackKnight, true
	case 'b':
		return BlackBishop, true
	case 'r':
		return BlackRook, true
	case 'q':
		return BlackQueen, true
	case 'k':
		return BlackKing, true
	default:
		return Empty, false
	}
}

func (p Piece) String() string {
	if p == Empty {
		return "empty"
	}
	if !p.Valid() {
		return "invalid"
	}
	return p.Color().String() + " " + p.Kind().String()
}
