// Package fen converts between the piece-placement field of Forsyth-Edwards
// Notation and board.ChessBoard.
package fen

import (
	"strings"

	"github.com/park285/fen-board/internal/board"
)

// StartPosition is the placement field of the standard initial position.
const StartPosition = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

// Decoder parses placement fields. The zero value is the permissive decoder.
type Decoder struct {
	strictRanks bool
}

type Option func(*Decoder)

// WithStrictRanks rejects ranks that describe fewer than 8 columns.
func WithStrictRanks() Option {
	return func(d *Decoder) { d.strictRanks = true }
}

func NewDecoder(opts ...Option) *Decoder {
	d := &Decoder{}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// StrictRanks reports whether under-filled ranks are rejected.
func (d *Decoder) StrictRanks() bool { return d != nil && d.strictRanks }

var defaultDecoder = &Decoder{}

// Decode parses fen with the permissive default decoder.
func Decode(fen string) (board.ChessBoard, error) {
	return defaultDecoder.Decode(fen)
}

// Placement returns the first whitespace-delimited field of fen. Input
// without whitespace is returned unchanged.
func Placement(fen string) string {
	fields := strings.Fields(fen)
	if len(fields) == 0 {
		return fen
	}
	return fields[0]
}

// Decode parses the placement field of fen into a new board. Trailing FEN
// fields (side to move, castling, ...) are ignored. On error no board is
// returned.
func (d *Decoder) Decode(fen string) (board.ChessBoard, error) {
	ranks := strings.Split(Placement(fen), "/")
	if len(ranks) != board.Size {
		return board.ChessBoard{}, &DecodeError{Kind: WrongRankCount, Rank: -1, Ranks: len(ranks)}
	}

	b := board.New[board.Piece]()
	for rankIdx, rank := range ranks {
		col, err := decodeRank(&b, rankIdx, rank)
		if err != nil {
			return board.ChessBoard{}, err
		}
		if d.StrictRanks() && col < board.Size {
			return board.ChessBoard{}, &DecodeError{Kind: RankTooShort, Rank: rankIdx, Row: rank}
		}
	}
	return b, nil
}

// decodeRank writes one rank into b and returns the number of columns it
// described.
func decodeRank(b *board.ChessBoard, rankIdx int, rank string) (int, error) {
	col := 0
	for _, c := range rank {
		if col == board.Size {
			return col, &DecodeError{Kind: RankTooLong, Rank: rankIdx, Row: rank, Char: c}
		}
		if c >= '0' && c <= '9' {
			run := int(c - '0')
			if run < 1 || run > board.Size-col {
				return col, &DecodeError{Kind: InvalidRunLength, Rank: rankIdx, Row: rank, Char: c}
			}
			col += run
			continue
		}
		piece, ok := board.PieceFromLetter(c)
		if !ok {
			return col, &DecodeError{Kind: UnrecognizedPieceChar, Rank: rankIdx, Row: rank, Char: c}
		}
		b.Set(rankIdx, col, piece)
		col++
	}
	return col, nil
}
