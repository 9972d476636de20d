package board

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
)

// ErrInvalidCode is returned when a packed nibble holds no defined piece code.
var ErrInvalidCode = errors.New("invalid piece code")

// PackedLen is the size of a packed board in bytes.
const PackedLen = Size * 4

// Packed stores a chess board as 4 bits per square. Row r lives in Packed[r];
// column c occupies bits 4c..4c+3, so the a-file is the low nibble.
type Packed [Size]uint32

func colShift(col int) uint { return uint(col) * 4 }

// Pack encodes b into its compact form.
func Pack(b ChessBoard) Packed {
	var p Packed
	for row := 0; row < Size; row++ {
		var bits uint32
		for col := 0; col < Size; col++ {
			bits |= uint32(b.Get(row, col)&0xF) << colShift(col)
		}
		p[row] = bits
	}
	return p
}

// Unpack decodes a compact board. Nibbles that do not map to a Piece are
// rejected rather than silently dropped.
func Unpack(p Packed) (ChessBoard, error) {
	b := New[Piece]()
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			nibble := Piece((p[row] >> colShift(col)) & 0xF)
			if !nibble.Valid() {
				return ChessBoard{}, fmt.Errorf("row %d col %d: %w: %d", row, col, ErrInvalidCode, nibble)
			}
			b.Set(row, col, nibble)
		}
	}
	return b, nil
}

// MarshalBinary writes the rows as little-endian uint32 values.
func (p Packed) MarshalBinary() ([]byte, error) {
	out := make([]byte, PackedLen)
	for i, row := range p {
		binary.LittleEndian.PutUint32(out[i*4:], row)
	}
	return out, nil
}

func (p *Packed) UnmarshalBinary(data []byte) error {
	if len(data) != PackedLen {
		return fmt.Errorf("packed board: want %d bytes, got %d", PackedLen, len(data))
	}
	for i := range p {
		p[i] = binary.LittleEndian.Uint32(data[i*4:])
	}
	return nil
}

// String returns the binary form as lowercase hex.
func (p Packed) String() string {
	raw, _ := p.MarshalBinary()
	return hex.EncodeToString(raw)
}

// ParsePackedHex is the inverse of Packed.String.
func ParsePackedHex(s string) (Packed, error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return Packed{}, fmt.Errorf("packed board: %w", err)
	}
	var p Packed
	if err := p.UnmarshalBinary(raw); err != nil {
		return Packed{}, err
	}
	return p, nil
}
