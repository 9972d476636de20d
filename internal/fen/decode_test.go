package fen

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	yaml "gopkg.in/yaml.v3"

	"github.com/park285/fen-board/internal/board"
)

type placementCase struct {
	Name string `yaml:"name"`
	FEN  string `yaml:"fen"`
	Kind string `yaml:"kind"`
	Row  string `yaml:"row"`
	Char string `yaml:"char"`
}

type placementFixtures struct {
	Valid   []placementCase `yaml:"valid"`
	Invalid []placementCase `yaml:"invalid"`
}

func loadFixtures(t *testing.T) placementFixtures {
	t.Helper()
	raw, err := os.ReadFile("testdata/placements.yaml")
	require.NoError(t, err)
	var fx placementFixtures
	require.NoError(t, yaml.Unmarshal(raw, &fx))
	require.NotEmpty(t, fx.Valid)
	require.NotEmpty(t, fx.Invalid)
	return fx
}

func TestDecodeStartPosition(t *testing.T) {
	b, err := Decode(StartPosition)
	require.NoError(t, err)

	back := []board.Kind{board.Rook, board.Knight, board.Bishop, board.Queen, board.King, board.Bishop, board.Knight, board.Rook}
	for col, k := range back {
		assert.Equal(t, board.NewPiece(board.Black, k), b.Get(0, col), "black back rank col %d", col)
		assert.Equal(t, board.BlackPawn, b.Get(1, col))
		assert.Equal(t, board.WhitePawn, b.Get(6, col))
		assert.Equal(t, board.NewPiece(board.White, k), b.Get(7, col), "white back rank col %d", col)
	}
	for row := 2; row < 6; row++ {
		for col := 0; col < board.Size; col++ {
			assert.Equal(t, board.Empty, b.Get(row, col), "row %d col %d", row, col)
		}
	}
}

func TestDecodeFixtures(t *testing.T) {
	fx := loadFixtures(t)

	for _, tc := range fx.Valid {
		t.Run(tc.Name, func(t *testing.T) {
			_, err := Decode(tc.FEN)
			assert.NoError(t, err)
		})
	}

	for _, tc := range fx.Invalid {
		t.Run(tc.Name, func(t *testing.T) {
			b, err := Decode(tc.FEN)
			require.Error(t, err)
			assert.Equal(t, board.ChessBoard{}, b)

			var de *DecodeError
			require.True(t, errors.As(err, &de), "want *DecodeError, got %T", err)
			assert.Equal(t, tc.Kind, de.Kind.String())
			if tc.Row != "" {
				assert.Equal(t, tc.Row, de.Row)
			}
			if tc.Char != "" {
				assert.Equal(t, []rune(tc.Char)[0], de.Char)
			}
		})
	}
}

func TestDecodeErrorMessages(t *testing.T) {
	tests := []struct {
		fen      string
		sentinel error
		msg      string
	}{
		{"8/8/8/8/8/8/8", ErrWrongRankCount, "invalid FEN: must have 8 rows (got 7)"},
		{"8/8/8/8/8/8/8/8/8", ErrWrongRankCount, "invalid FEN: must have 8 rows (got 9)"},
		{"8/8/8/8/8/8/ppppppppp/8", ErrRankTooLong, "invalid FEN: row too long: ppppppppp"},
		{"8/8/8/8/8/8/8/rnbqkbnx", ErrUnrecognizedPieceChar, "invalid FEN: piece character: x"},
		{"8/8/8/8/8/8/8/9", ErrInvalidRunLength, "invalid FEN: invalid run length '9' in row: 9"},
	}
	for _, tt := range tests {
		t.Run(tt.fen, func(t *testing.T) {
			_, err := Decode(tt.fen)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.sentinel))
			assert.Equal(t, tt.msg, err.Error())
		})
	}
}

func TestDecodeErrorIsOnlyItsKind(t *testing.T) {
	_, err := Decode("8/8/8/8/8/8/8/9")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidRunLength))
	assert.False(t, errors.Is(err, ErrRankTooLong))
	assert.False(t, errors.Is(err, ErrWrongRankCount))
}

func TestRankCountCheckedBeforeRanks(t *testing.T) {
	// the bad character would fail rank parsing, but the count check runs first
	_, err := Decode("x/8/8/8/8/8/8")
	assert.True(t, errors.Is(err, ErrWrongRankCount))
}

func TestDecodeReportsRankIndex(t *testing.T) {
	_, err := Decode("8/8/8/3z4/8/8/8/8")
	var de *DecodeError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, 3, de.Rank)
	assert.Equal(t, 'z', de.Char)
}

func TestUnderfilledRanks(t *testing.T) {
	const short = "rnbqk/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

	b, err := Decode(short)
	require.NoError(t, err)
	assert.Equal(t, board.BlackKing, b.Get(0, 4))
	for col := 5; col < board.Size; col++ {
		assert.Equal(t, board.Empty, b.Get(0, col))
	}

	strict := NewDecoder(WithStrictRanks())
	assert.True(t, strict.StrictRanks())
	_, err = strict.Decode(short)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRankTooShort))
	assert.Equal(t, "invalid FEN: row too short: rnbqk", err.Error())

	_, err = strict.Decode(StartPosition)
	assert.NoError(t, err)

	// an empty rank is also under-filled
	_, err = strict.Decode("8/8//8/8/8/8/8")
	assert.True(t, errors.Is(err, ErrRankTooShort))
	_, err = Decode("8/8//8/8/8/8/8")
	assert.NoError(t, err)
}

func TestDecodeIdempotent(t *testing.T) {
	fx := loadFixtures(t)
	for _, tc := range fx.Valid {
		a, err := Decode(tc.FEN)
		require.NoError(t, err)
		b, err := Decode(tc.FEN)
		require.NoError(t, err)
		assert.Equal(t, a, b, tc.Name)
	}
}

func TestPlacement(t *testing.T) {
	assert.Equal(t, "8/8", Placement("8/8"))
	assert.Equal(t, "8/8", Placement("  8/8 w - - 0 1"))
	assert.Equal(t, "8/8", Placement("8/8\tb"))
	assert.Equal(t, "", Placement(""))
}

func TestNonASCIIDigitIsUnrecognized(t *testing.T) {
	_, err := Decode("8/8/8/8/8/8/8/٣5")
	var de *DecodeError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, UnrecognizedPieceChar, de.Kind)
	assert.Equal(t, '٣', de.Char)
}
