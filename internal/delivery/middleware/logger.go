package middleware

import (
	"log/slog"
	"net/url"
	"strings"
	"time"

	"satoru/config"
	deliverycontext "satoru/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

const redacted = "REDACTED"

// sensitiveQueryParams carry credentials; the WebSocket endpoint accepts the
// access token as ?token=.
var sensitiveQueryParams = map[string]struct{}{
	"token":         {},
	"access":        {},
	"access_token":  {},
	"refresh":       {},
	"refresh_token": {},
	"id_token":      {},
}

// LoggerMiddleware logs one line per request when debug is enabled.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  config.Env.Debug,
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.debug {
			return next(c)
		}

		start := time.Now()
		err := next(c)
		m.logRequest(c, start, err)

		return err
	}
}

func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, err error) {
	req := c.Request()
	res := c.Response()

	fields := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("uri", req.URL.Path),
		slog.Int("status", res.Status),
		slog.Int64("bytes_out", res.Size),
		slog.Duration("latency", time.Since(start)),
		slog.String("remote_ip", c.RealIP()),
		slog.String("user_agent", req.UserAgent()),
	}

	if query := redactQuery(req.URL.RawQuery); query != "" {
		fields = append(fields, slog.String("query", query))
	}
	if userID, ok := deliverycontext.GetUserID(c); ok {
		fields = append(fields, slog.String("user_id", userID.String()))
	}
	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	logLevel := slog.LevelInfo
	switch {
	case res.Status >= 500:
		logLevel = slog.LevelError
	case res.Status >= 400:
		logLevel = slog.LevelWarn
	}

	// The request-scoped logger already carries request_id.
	logger := deliverycontext.GetLoggerOrDefault(req.Context(), m.logger.With(
		slog.String("request_id", deliverycontext.GetRequestID(c)),
	))
	logger.LogAttrs(req.Context(), logLevel, "HTTP Request", fields...)
}

// redactQuery replaces the values of credential parameters. A query that does
// not parse is dropped entirely.
func redactQuery(rawQuery string) string {
	if rawQuery == "" {
		return ""
	}

	values, err := url.ParseQuery(rawQuery)
	if err != nil {
		return redacted
	}
	for key := range values {
		if _, ok := sensitiveQueryParams[strings.ToLower(key)]; ok {
			values[key] = []string{redacted}
		}
	}

	return values.Encode()
}
