package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoardIsEmpty(t *testing.T) {
	b := New[Piece]()
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			assert.Equal(t, Empty, b.Get(row, col), "row %d col %d", row, col)
		}
	}
}

func TestSetGet(t *testing.T) {
	b := New[Piece]()
	b.Set(0, 0, BlackRook)
	b.Set(7, 7, WhiteRook)
	b.Set(3, 4, WhiteKing)

	assert.Equal(t, BlackRook, b.Get(0, 0))
	assert.Equal(t, WhiteRook, b.Get(7, 7))
	assert.Equal(t, WhiteKing, b.Get(3, 4))
	assert.Equal(t, Empty, b.Get(4, 3))

	b.Set(3, 4, Empty)
	assert.Equal(t, Empty, b.Get(3, 4))
}

func TestOutOfRangePanics(t *testing.T) {
	b := New[Piece]()
	assert.Panics(t, func() { b.Get(8, 0) })
	assert.Panics(t, func() { b.Get(0, -1) })
	assert.Panics(t, func() { b.Set(-1, 0, WhitePawn) })
	assert.Panics(t, func() { b.Set(0, 8, WhitePawn) })
}

func TestBoardsCompareByValue(t *testing.T) {
	a := New[Piece]()
	b := New[Piece]()
	a.Set(1, 1, BlackPawn)
	b.Set(1, 1, BlackPawn)
	assert.True(t, a == b)

	b.Set(1, 2, BlackPawn)
	assert.False(t, a == b)
}

func TestGenericCellType(t *testing.T) {
	// checkers-style board with a custom cell
	type stone struct {
		owner int
		king  bool
	}
	b := New[stone]()
	b.Set(2, 5, stone{owner: 1, king: true})
	require.Equal(t, stone{owner: 1, king: true}, b.Get(2, 5))
	assert.Equal(t, stone{}, b.Get(5, 2))

	row := b.Row(2)
	assert.Equal(t, stone{owner: 1, king: true}, row[5])
}
