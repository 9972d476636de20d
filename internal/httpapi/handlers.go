package httpapi

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/park285/fen-board/internal/board"
	"github.com/park285/fen-board/internal/fen"
	"github.com/park285/fen-board/internal/render"
	"github.com/park285/fen-board/pkg/boarddto"
)

func (s *Server) healthcheck(ctx *fasthttp.RequestCtx) {
	if !requireGet(ctx) {
		return
	}
	ctx.SetContentType("text/plain; charset=utf-8")
	ctx.SetStatusCode(fasthttp.StatusOK)
	ctx.SetBodyString("ok")
}

func (s *Server) board(ctx *fasthttp.RequestCtx) {
	if !requireGet(ctx) {
		return
	}
	args := ctx.QueryArgs()

	opts, err := parseRenderOptions(args)
	if err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "bad_request", err.Error())
		return
	}
	b, ok := s.decodeQuery(ctx)
	if !ok {
		return
	}

	out, err := s.renderer.Render(b, opts)
	if err != nil {
		s.logger.Error("render failed", zap.Error(err))
		writeError(ctx, fasthttp.StatusInternalServerError, "internal", "render failed")
		return
	}
	ctx.SetContentType("text/plain; charset=utf-8")
	ctx.SetStatusCode(fasthttp.StatusOK)
	ctx.SetBodyString(out)
}

func (s *Server) decode(ctx *fasthttp.RequestCtx) {
	if !requireGet(ctx) {
		return
	}
	b, ok := s.decodeQuery(ctx)
	if !ok {
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, toDTO(b))
}

// decodeQuery decodes the fen query argument, writing the error response
// itself when it fails.
func (s *Server) decodeQuery(ctx *fasthttp.RequestCtx) (board.ChessBoard, bool) {
	raw := strings.TrimSpace(string(ctx.QueryArgs().Peek("fen")))
	if raw == "" {
		writeError(ctx, fasthttp.StatusBadRequest, "bad_request", "missing fen parameter")
		return board.ChessBoard{}, false
	}

	b, err := s.decoder.Decode(ctx, raw)
	if err != nil {
		var de *fen.DecodeError
		if errors.As(err, &de) {
			writeError(ctx, fasthttp.StatusBadRequest, de.Kind.String(), de.Error())
			return board.ChessBoard{}, false
		}
		s.logger.Error("decode failed", zap.String("fen", raw), zap.Error(err))
		writeError(ctx, fasthttp.StatusInternalServerError, "internal", "decode failed")
		return board.ChessBoard{}, false
	}
	return b, true
}

func parseRenderOptions(args *fasthttp.Args) (render.Options, error) {
	var opts render.Options
	theme, err := render.ParseTheme(string(args.Peek("theme")))
	if err != nil {
		return opts, err
	}
	rot, err := render.ParseRotation(string(args.Peek("rotation")))
	if err != nil {
		return opts, err
	}
	opts.Theme = theme
	opts.Rotation = rot
	if v := strings.TrimSpace(string(args.Peek("labels"))); v != "" {
		labels, err := strconv.ParseBool(v)
		if err != nil {
			return opts, errors.New("labels must be true or false")
		}
		opts.Labels = labels
	}
	return opts, nil
}

func toDTO(b board.ChessBoard) boarddto.Board {
	rows := make([]string, board.Size)
	for row := 0; row < board.Size; row++ {
		var sb strings.Builder
		for col := 0; col < board.Size; col++ {
			if l := b.Get(row, col).Letter(); l != 0 {
				sb.WriteRune(l)
			} else {
				sb.WriteByte('.')
			}
		}
		rows[row] = sb.String()
	}
	return boarddto.Board{
		Placement: fen.Encode(b),
		Rows:      rows,
		Packed:    board.Pack(b).String(),
	}
}

func requireGet(ctx *fasthttp.RequestCtx) bool {
	if ctx.IsGet() || ctx.IsHead() {
		return true
	}
	ctx.Response.Header.Set("Allow", "GET, HEAD")
	writeError(ctx, fasthttp.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
	return false
}

func writeError(ctx *fasthttp.RequestCtx, status int, code, msg string) {
	writeJSON(ctx, status, boarddto.Error{Code: code, Message: "error: " + msg})
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v any) {
	payload, err := json.Marshal(v)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		ctx.SetBodyString(`{"code":"internal","message":"error: encode response","retryable":false}`)
		return
	}
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(payload)
}
