// Package render defines how a decoded board is turned into a textual
// artifact, and ships a plain-text renderer used by the CLI and the
// /v1/board endpoint.
package render

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/park285/fen-board/internal/board"
)

var (
	ErrUnknownTheme    = errors.New("unknown theme")
	ErrInvalidRotation = errors.New("rotation must be 0, 90, 180 or 270")
)

type Theme string

const (
	ThemeClassic Theme = "classic"
	ThemeModern  Theme = "modern"
)

// ParseTheme accepts a theme name case-insensitively. An empty name selects
// ThemeClassic.
func ParseTheme(s string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(ThemeClassic):
		return ThemeClassic, nil
	case string(ThemeModern):
		return ThemeModern, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownTheme, s)
	}
}

// Rotation is a clockwise quarter-turn count expressed in degrees.
type Rotation int

// ParseRotation accepts "0", "90", "180" or "270". Empty means 0.
func ParseRotation(s string) (Rotation, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidRotation, s)
	}
	r := Rotation(n)
	if !r.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidRotation, n)
	}
	return r, nil
}

func (r Rotation) Valid() bool {
	return r == 0 || r == 90 || r == 180 || r == 270
}

type Options struct {
	Theme    Theme
	Rotation Rotation
	Labels   bool
}

// Renderer turns a fully populated board into text. Implementations only
// read the board.
type Renderer interface {
	Render(b board.ChessBoard, opts Options) (string, error)
}
