// Package middleware provides transport middleware for the eventbridge client.
package middleware

import (
	"log/slog"
	"net/http"
	"time"
)

// LoggingTransport wraps an http.RoundTripper and logs each request using
// slog, including duration and response status. It logs the x-amz-target
// header rather than the URL path because the path alone does not identify
// the operation for JSON-RPC style calls.
//
// Pass the result as Config.HTTPClient's Transport:
//
//	client := &http.Client{Transport: middleware.LoggingTransport(logger, nil)}
func LoggingTransport(logger *slog.Logger, next http.RoundTripper) http.RoundTripper {
	if logger == nil {
		logger = slog.Default()
	}
	if next == nil {
		next = http.DefaultTransport
	}

	return roundTripFunc(func(req *http.Request) (*http.Response, error) {
		start := time.Now()

		logger.Info("request started",
			slog.String("method", req.Method),
			slog.String("host", req.URL.Host),
			slog.String("target", req.Header.Get("x-amz-target")),
		)

		resp, err := next.RoundTrip(req)
		duration := time.Since(start)

		if err != nil {
			logger.Error("request failed",
				slog.String("method", req.Method),
				slog.String("host", req.URL.Host),
				slog.Duration("duration", duration),
				slog.Any("error", err),
			)
		} else {
			logger.Info("request completed",
				slog.String("method", req.Method),
				slog.String("host", req.URL.Host),
				slog.Duration("duration", duration),
				slog.Int("status", resp.StatusCode),
			)
		}

		return resp, err
	})
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}
