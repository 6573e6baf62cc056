// internal/middleware/logging.go
package middleware

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// logCtxKey is the context key under which the request logger is stored.
type logCtxKey struct{}

// sensitiveHeaders lists the headers whose values are masked in the logs (lower case).
var sensitiveHeaders = map[string]bool{
	"authorization": true,
	"cookie":        true, // request header
	"set-cookie":    true, // response header
	"x-api-key":     true,
}

// responseLogger wraps http.ResponseWriter and records the status code and body.
type responseLogger struct {
	http.ResponseWriter
	statusCode int
	body       *bytes.Buffer
}

// newResponseLogger creates a responseLogger that defaults to 200 OK.
func newResponseLogger(w http.ResponseWriter) *responseLogger {
	return &responseLogger{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
		body:           new(bytes.Buffer),
	}
}

func (rl *responseLogger) WriteHeader(statusCode int) {
	rl.statusCode = statusCode
	rl.ResponseWriter.WriteHeader(statusCode)
}

func (rl *responseLogger) Write(b []byte) (int, error) {
	rl.body.Write(b) // capture the response body
	return rl.ResponseWriter.Write(b)
}

// LoggingMiddleware centralises request and response logging. It stores a
// request scoped logger in the context and logs a start line and a summary
// line per request. Headers and bodies are logged at debug level with
// sensitive header values masked.
func LoggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			// --- Step 1: prepare on arrival ---

			startTime := time.Now()

			// Logger carrying the request id, stored in the context for downstream code
			requestLogger := logger.With("req_id", middleware.GetReqID(r.Context()))
			r = r.WithContext(WithLogger(r.Context(), requestLogger))

			// Start line
			requestLogger.Info("Request started",
				"method", r.Method,
				"path", r.URL.Path,
				"remote_addr", r.RemoteAddr,
			)

			// Read the request body once and put it back (debug only)
			var reqBodyBytes []byte
			debug := logger.Enabled(r.Context(), slog.LevelDebug)
			if debug && r.Body != nil {
				reqBodyBytes, _ = io.ReadAll(r.Body)
				r.Body = io.NopCloser(bytes.NewBuffer(reqBodyBytes))
			}

			// Wrapper that records what the handler writes
			rl := newResponseLogger(w)

			// --- Step 2: hand over to the next handler ---
			next.ServeHTTP(rl, r)

			// --- Step 3: log before the response leaves ---

			latency := time.Since(startTime)

			// 5xx is an error, 4xx a warning
			logLevel := slog.LevelInfo
			if rl.statusCode >= 500 {
				logLevel = slog.LevelError
			} else if rl.statusCode >= 400 {
				logLevel = slog.LevelWarn
			}

			// Summary line
			requestLogger.Log(r.Context(), logLevel, "Request completed",
				"status", rl.statusCode,
				"latency_ms", float64(latency.Nanoseconds())/1e6,
				"bytes_out", rl.body.Len(),
			)

			// Detail lines (debug level)
			if debug {
				requestLogger.Debug("Request detail",
					"headers", formatHeaders(r.Header),
					"body", string(reqBodyBytes),
				)
				requestLogger.Debug("Response detail",
					"status", rl.statusCode, // repeated here so the detail line stands alone
					"headers", formatHeaders(rl.Header()),
					"body", rl.body.String(),
				)
			}
		})
	}
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, logCtxKey{}, logger)
}

// GetLogger returns the logger stored in ctx, or slog.Default.
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(logCtxKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// formatHeaders flattens headers for logging and masks sensitive values.
func formatHeaders(headers http.Header) map[string]string {
	result := make(map[string]string)
	for key, values := range headers {
		if sensitiveHeaders[strings.ToLower(key)] {
			result[key] = "[SENSITIVE]"
		} else {
			result[key] = strings.Join(values, ", ")
		}
	}
	return result
}
