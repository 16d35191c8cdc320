// Package testutil provides testing helpers for exercising request executors
// against canned API replies. This package is import-cycle safe and can be
// used from any package.
package testutil

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
)

// RoundTripFunc adapts a function to http.RoundTripper, for injecting
// transport behavior into an http.Client without a listener.
type RoundTripFunc func(*http.Request) (*http.Response, error)

// RoundTrip implements http.RoundTripper.
func (f RoundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

// RecordedRequest is one request captured by a Server, with the body already
// drained so tests can assert on it after the response was written.
type RecordedRequest struct {
	Method string
	Path   string
	Header http.Header
	Body   []byte
}

// Server is an httptest.Server that records every request it receives and
// answers each with a fixed status and JSON body.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	requests []RecordedRequest
}

// NewServer starts a recording server replying with the given status and
// body. The caller must Close it.
func NewServer(status int, body string) *Server {
	s := &Server{}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		s.mu.Lock()
		s.requests = append(s.requests, RecordedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Header: r.Header.Clone(),
			Body:   data,
		})
		s.mu.Unlock()

		w.Header().Set("Content-Type", "application/x-amz-json-1.1")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	return s
}

// Requests returns a snapshot of everything recorded so far.
func (s *Server) Requests() []RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]RecordedRequest, len(s.requests))
	copy(out, s.requests)
	return out
}

// Last returns the most recent recorded request. It returns the zero value if
// nothing was received.
func (s *Server) Last() RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return RecordedRequest{}
	}
	return s.requests[len(s.requests)-1]
}
