package render

import (
	"fmt"
	"strings"

	"github.com/park285/fen-board/internal/board"
)

// Text renders the board as one line per row.
type Text struct{}

var _ Renderer = Text{}

var modernGlyphs = map[board.Piece]rune{
	board.WhiteKing: '♔', board.WhiteQueen: '♕', board.WhiteRook: '♖',
	board.WhiteBishop: '♗', board.WhiteKnight: '♘', board.WhitePawn: '♙',
	board.BlackKing: '♚', board.BlackQueen: '♛', board.BlackRook: '♜',
	board.BlackBishop: '♝', board.BlackKnight: '♞', board.BlackPawn: '♟',
}

func (Text) Render(b board.ChessBoard, opts Options) (string, error) {
	theme := opts.Theme
	if theme == "" {
		theme = ThemeClassic
	}
	if theme != ThemeClassic && theme != ThemeModern {
		return "", fmt.Errorf("%w: %q", ErrUnknownTheme, theme)
	}
	if !opts.Rotation.Valid() {
		return "", fmt.Errorf("%w: %d", ErrInvalidRotation, opts.Rotation)
	}

	var sb strings.Builder
	for y := 0; y < board.Size; y++ {
		if opts.Labels {
			sb.WriteString(rowLabel(y, opts.Rotation))
			sb.WriteByte(' ')
		}
		for x := 0; x < board.Size; x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			row, col := source(y, x, opts.Rotation)
			sb.WriteRune(cellRune(b.Get(row, col), theme))
		}
		sb.WriteByte('\n')
	}
	if opts.Labels {
		sb.WriteString("  ")
		for x := 0; x < board.Size; x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(colLabel(x, opts.Rotation))
		}
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}

// source maps a display position to the board cell shown there after
// rotating the board clockwise.
func source(y, x int, r Rotation) (int, int) {
	const last = board.Size - 1
	switch r {
	case 90:
		return last - x, y
	case 180:
		return last - y, last - x
	case 270:
		return x, last - y
	default:
		return y, x
	}
}

func cellRune(p board.Piece, theme Theme) rune {
	if theme == ThemeModern {
		if g, ok := modernGlyphs[p]; ok {
			return g
		}
		return '·'
	}
	if l := p.Letter(); l != 0 {
		return l
	}
	return '.'
}

func rankName(row int) string { return string(rune('8' - row)) }
func fileName(col int) string { return string(rune('a' + col)) }

// rowLabel names display row y: a rank when rows still run along ranks, a
// file when the board is turned sideways.
func rowLabel(y int, r Rotation) string {
	row, col := source(y, 0, r)
	if r == 90 || r == 270 {
		return fileName(col)
	}
	return rankName(row)
}

func colLabel(x int, r Rotation) string {
	row, col := source(0, x, r)
	if r == 90 || r == 270 {
		return rankName(row)
	}
	return fileName(col)
}
