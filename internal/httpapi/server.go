// Package httpapi serves decoded boards over HTTP.
package httpapi

import (
	"context"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/park285/fen-board/internal/board"
	"github.com/park285/fen-board/internal/render"
)

// BoardDecoder is satisfied by cache.Decoder.
type BoardDecoder interface {
	Decode(ctx context.Context, fen string) (board.ChessBoard, error)
}

type Server struct {
	decoder  BoardDecoder
	renderer render.Renderer
	logger   *zap.Logger

	readTimeout  time.Duration
	writeTimeout time.Duration

	srv *fasthttp.Server
}

type Option func(*Server)

func WithRenderer(r render.Renderer) Option {
	return func(s *Server) { s.renderer = r }
}

func WithLogger(l *zap.Logger) Option {
	return func(s *Server) { s.logger = l }
}

func WithTimeouts(read, write time.Duration) Option {
	return func(s *Server) {
		s.readTimeout = read
		s.writeTimeout = write
	}
}

func NewServer(decoder BoardDecoder, opts ...Option) *Server {
	s := &Server{
		decoder:      decoder,
		renderer:     render.Text{},
		logger:       zap.NewNop(),
		readTimeout:  5 * time.Second,
		writeTimeout: 5 * time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.srv = &fasthttp.Server{
		Handler:      s.Handler(),
		Name:         "fenboard",
		ReadTimeout:  s.readTimeout,
		WriteTimeout: s.writeTimeout,
	}
	return s
}

// Handler returns the routed handler wrapped in request logging.
func (s *Server) Handler() fasthttp.RequestHandler {
	return withRequestLog(s.logger, s.route)
}

func (s *Server) route(ctx *fasthttp.RequestCtx) {
	switch string(ctx.Path()) {
	case "/healthcheck":
		s.healthcheck(ctx)
	case "/v1/board":
		s.board(ctx)
	case "/v1/decode":
		s.decode(ctx)
	default:
		writeError(ctx, fasthttp.StatusNotFound, "not_found", "no route for "+string(ctx.Path()))
	}
}

func (s *Server) ListenAndServe(addr string) error {
	s.logger.Info("http server listening", zap.String("addr", addr))
	return s.srv.ListenAndServe(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.ShutdownWithContext(ctx)
}
