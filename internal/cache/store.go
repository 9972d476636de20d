// Package cache keeps packed boards in Redis, keyed by FEN placement field.
package cache

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/park285/fen-board/internal/board"
)

const (
	keyPrefix  = "fen:board:"
	defaultTTL = time.Hour
)

// NewClient connects to redisURL (redis:// or rediss://) and pings it.
func NewClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	if strings.TrimSpace(redisURL) == "" {
		return nil, errors.New("redis url is empty")
	}
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return rdb, nil
}

type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewStore wraps rdb. A non-positive ttl falls back to one hour.
func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Store{rdb: rdb, ttl: ttl}
}

func (s *Store) key(placement string) string { return keyPrefix + placement }

// Get returns the packed board stored for placement. ok is false on a miss.
func (s *Store) Get(ctx context.Context, placement string) (board.Packed, bool, error) {
	raw, err := s.rdb.Get(ctx, s.key(placement)).Bytes()
	if err == redis.Nil {
		return board.Packed{}, false, nil
	}
	if err != nil {
		return board.Packed{}, false, err
	}
	var p board.Packed
	if err := p.UnmarshalBinary(raw); err != nil {
		return board.Packed{}, false, err
	}
	return p, true, nil
}

func (s *Store) Put(ctx context.Context, placement string, p board.Packed) error {
	raw, err := p.MarshalBinary()
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, s.key(placement), raw, s.ttl).Err()
}
