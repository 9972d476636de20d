package httpapi

import (
	"time"

	"github.com/google/uuid"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

const requestIDHeader = "X-Request-Id"

// withRequestLog tags every request with an id (reusing the caller's
// X-Request-Id when present) and logs it once the handler returns. 5xx
// responses are logged at error level.
func withRequestLog(logger *zap.Logger, next fasthttp.RequestHandler) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		start := time.Now()
		reqID := string(ctx.Request.Header.Peek(requestIDHeader))
		if reqID == "" {
			reqID = uuid.NewString()
		}
		ctx.Response.Header.Set(requestIDHeader, reqID)

		next(ctx)

		status := ctx.Response.StatusCode()
		fields := []zap.Field{
			zap.String("request_id", reqID),
			zap.ByteString("method", ctx.Method()),
			zap.ByteString("uri", ctx.RequestURI()),
			zap.Int("status", status),
			zap.Duration("duration", time.Since(start)),
		}
		if status >= fasthttp.StatusInternalServerError {
			logger.Error("request", fields...)
			return
		}
		logger.Info("request", fields...)
	}
}
