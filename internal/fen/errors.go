package fen

import (
	"errors"
	"fmt"
)

// ErrorKind identifies which placement rule a FEN string broke.
type ErrorKind int

const (
	WrongRankCount ErrorKind = iota + 1
	RankTooLong
	InvalidRunLength
	UnrecognizedPieceChar
	RankTooShort
)

func (k ErrorKind) String() string {
	switch k {
	case WrongRankCount:
		return "wrong_rank_count"
	case RankTooLong:
		return "rank_too_long"
	case InvalidRunLength:
		return "invalid_run_length"
	case UnrecognizedPieceChar:
		return "unrecognized_piece_char"
	case RankTooShort:
		return "rank_too_short"
	default:
		return "unknown"
	}
}

var (
	ErrWrongRankCount        = errors.New("fen: wrong rank count")
	ErrRankTooLong           = errors.New("fen: rank too long")
	ErrInvalidRunLength      = errors.New("fen: invalid run length")
	ErrUnrecognizedPieceChar = errors.New("fen: unrecognized piece character")
	ErrRankTooShort          = errors.New("fen: rank too short")
)

var kindSentinels = map[ErrorKind]error{
	WrongRankCount:        ErrWrongRankCount,
	RankTooLong:           ErrRankTooLong,
	InvalidRunLength:      ErrInvalidRunLength,
	UnrecognizedPieceChar: ErrUnrecognizedPieceChar,
	RankTooShort:          ErrRankTooShort,
}

// DecodeError describes a rejected placement field. Rank is the zero-based
// index of the offending rank and is -1 for WrongRankCount.
type DecodeError struct {
	Kind  ErrorKind
	Rank  int
	Row   string
	Char  rune
	Ranks int
}

func (e *DecodeError) Error() string {
	switch e.Kind {
	case WrongRankCount:
		return fmt.Sprintf("invalid FEN: must have 8 rows (got %d)", e.Ranks)
	case RankTooLong:
		return fmt.Sprintf("invalid FEN: row too long: %s", e.Row)
	case InvalidRunLength:
		return fmt.Sprintf("invalid FEN: invalid run length '%c' in row: %s", e.Char, e.Row)
	case UnrecognizedPieceChar:
		return fmt.Sprintf("invalid FEN: piece character: %c", e.Char)
	case RankTooShort:
		return fmt.Sprintf("invalid FEN: row too short: %s", e.Row)
	default:
		return "invalid FEN"
	}
}

// Is lets errors.Is match a DecodeError against the sentinel for its kind.
func (e *DecodeError) Is(target error) bool {
	s, ok := kindSentinels[e.Kind]
	return ok && s == target
}
