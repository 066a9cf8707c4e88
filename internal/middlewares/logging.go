package middlewares

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// requestInfo is shared by every handler of one request; fields are filled in as
// the request moves down the chain and read back once it returns.
type requestInfo struct {
	id       string
	userName string
}

type requestInfoKey struct{}

// RequestIDFromContext returns the request id stamped by LoggingMiddleware.
func RequestIDFromContext(ctx context.Context) string {
	if info, ok := ctx.Value(requestInfoKey{}).(*requestInfo); ok {
		return info.id
	}
	return ""
}

// setRequestUser attaches the authenticated user name to the access log entry.
func setRequestUser(ctx context.Context, userName string) {
	if info, ok := ctx.Value(requestInfoKey{}).(*requestInfo); ok {
		info.userName = userName
	}
}

// LoggingMiddleware stamps every request with an X-Request-ID and writes one access
// log entry when the handler returns: info below 400, warn for client errors and
// error for server errors.
func LoggingMiddleware(log *zap.SugaredLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			info := &requestInfo{id: uuid.New().String()}
			start := time.Now()

			rw := &responseWriter{
				ResponseWriter: w,
				statusCode:     http.StatusOK,
			}

			r = r.WithContext(context.WithValue(r.Context(), requestInfoKey{}, info))
			w.Header().Set("X-Request-ID", info.id)

			next.ServeHTTP(rw, r)

			fields := []any{
				"request_id", info.id,
				"method", r.Method,
				"uri", r.RequestURI,
				"route", routePattern(r),
				"remote_addr", r.RemoteAddr,
				"status", rw.statusCode,
				"response_size", strconv.Itoa(rw.size) + "B",
				"duration", time.Since(start),
			}
			if info.userName != "" {
				fields = append(fields, "user_name", info.userName)
			}

			switch {
			case rw.statusCode >= http.StatusInternalServerError:
				log.Errorw("request failed", fields...)
			case rw.statusCode >= http.StatusBadRequest:
				log.Warnw("request rejected", fields...)
			default:
				log.Infow("request served", fields...)
			}
		})
	}
}

// routePattern is the matched chi pattern, so /items/{id} groups in log queries.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		return rctx.RoutePattern()
	}
	return ""
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
	size       int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	size, err := rw.ResponseWriter.Write(b)
	rw.size += size
	return size, err
}
