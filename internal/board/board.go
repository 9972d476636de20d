// Package board holds the fixed 8x8 grid used to carry a decoded position.
package board

// Size is the number of rows and columns on the board.
const Size = 8

// Cell is any value that can live in a board square. The zero value of the
// type is the content of a freshly constructed board.
type Cell interface {
	comparable
}

// Board is an 8x8 grid. Row 0 is the first rank listed in a FEN placement
// field, column 0 is the a-file.
type Board[T Cell] struct {
	cells [Size][Size]T
}

// New returns a board with every cell set to the zero value of T.
func New[T Cell]() Board[T] {
	return Board[T]{}
}

// Get returns the cell at (row, col). Indices outside [0,8) panic.
func (b *Board[T]) Get(row, col int) T {
	return b.cells[row][col]
}

// Set overwrites the cell at (row, col). Indices outside [0,8) panic.
func (b *Board[T]) Set(row, col int, v T) {
	b.cells[row][col] = v
}

// Row returns a copy of a single row.
func (b *Board[T]) Row(row int) [Size]T {
	return b.cells[row]
}

// ChessBoard is the board populated by the FEN decoder.
type ChessBoard = Board[Piece]
