package cache

import (
	"context"

	"go.uber.org/zap"

	"github.com/park285/fen-board/internal/board"
	"github.com/park285/fen-board/internal/fen"
)

// Decoder puts a Store in front of a fen.Decoder. Redis failures are logged
// and the FEN is decoded directly; only successful decodes are stored.
type Decoder struct {
	fen    *fen.Decoder
	store  *Store
	logger *zap.Logger
}

func NewDecoder(d *fen.Decoder, store *Store, logger *zap.Logger) *Decoder {
	if d == nil {
		d = fen.NewDecoder()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Decoder{fen: d, store: store, logger: logger}
}

// Decode behaves like fen.Decoder.Decode.
func (d *Decoder) Decode(ctx context.Context, s string) (board.ChessBoard, error) {
	placement := fen.Placement(s)
	// strict and permissive decoders disagree on short ranks, keep them apart
	key := placement
	if d.fen.StrictRanks() {
		key = "strict:" + placement
	}

	if d.store != nil {
		packed, ok, err := d.store.Get(ctx, key)
		switch {
		case err != nil:
			d.logger.Warn("board cache get failed", zap.String("placement", placement), zap.Error(err))
		case ok:
			b, err := board.Unpack(packed)
			if err == nil {
				return b, nil
			}
			d.logger.Warn("board cache entry corrupt", zap.String("placement", placement), zap.Error(err))
		}
	}

	b, err := d.fen.Decode(placement)
	if err != nil {
		return board.ChessBoard{}, err
	}

	if d.store != nil {
		if err := d.store.Put(ctx, key, board.Pack(b)); err != nil {
			d.logger.Warn("board cache put failed", zap.String("placement", placement), zap.Error(err))
		}
	}
	return b, nil
}
