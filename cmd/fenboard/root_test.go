package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/park285/fen-board/internal/fen"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestDecodeCommand(t *testing.T) {
	out, err := run(t, "decode", fen.StartPosition+" w KQkq - 0 1")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 8)
	assert.Equal(t, "r n b q k b n r", lines[0])
	assert.Equal(t, "R N B Q K B N R", lines[7])
}

func TestDecodeCommandPackedRoundTrip(t *testing.T) {
	packed, err := run(t, "decode", "--packed", fen.StartPosition)
	require.NoError(t, err)

	placement, err := run(t, "unpack", strings.TrimSpace(packed))
	require.NoError(t, err)
	assert.Equal(t, fen.StartPosition+"\n", placement)
}

func TestDecodeCommandJSON(t *testing.T) {
	out, err := run(t, "decode", "--json", "8/8/8/8/8/8/8/44")
	require.NoError(t, err)
	assert.Contains(t, out, `"placement": "8/8/8/8/8/8/8/8"`)
}

func TestDecodeCommandErrors(t *testing.T) {
	_, err := run(t, "decode", "8/8/8/8/8/8/8/9")
	assert.True(t, errors.Is(err, fen.ErrInvalidRunLength))

	_, err = run(t, "decode", "--strict", "k/8/8/8/8/8/8/K7")
	assert.True(t, errors.Is(err, fen.ErrRankTooShort))

	_, err = run(t, "decode", "--rotation", "45", fen.StartPosition)
	assert.Error(t, err)

	_, err = run(t, "unpack", "ff")
	assert.Error(t, err)
}
