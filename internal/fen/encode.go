package fen

import (
	"strconv"
	"strings"

	"github.com/park285/fen-board/internal/board"
)

// Encode writes the canonical placement field for b: ranks separated by
// '/', consecutive empty squares collapsed into a single digit.
func Encode(b board.ChessBoard) string {
	var sb strings.Builder
	sb.Grow(board.Size*board.Size + board.Size - 1)
	for row := 0; row < board.Size; row++ {
		if row > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for col := 0; col < board.Size; col++ {
			l := b.Get(row, col).Letter()
			if l == 0 {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteRune(l)
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
	}
	return sb.String()
}
