package eventbridge

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// APIError is an error response from the remote API, decoded from the
// JSON-RPC error envelope ({"__type": "...", "message": "..."}).
type APIError struct {
	// Type is the remote error type with any namespace prefix stripped,
	// e.g. "ResourceNotFoundException".
	Type       string
	Message    string
	StatusCode int
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s (http %d)", e.Type, e.StatusCode)
	}
	return fmt.Sprintf("%s: %s (http %d)", e.Type, e.Message, e.StatusCode)
}

// Throttled reports whether the request was rejected for rate limiting and is
// safe to retry after a delay.
func (e *APIError) Throttled() bool {
	return e.StatusCode == http.StatusTooManyRequests ||
		e.Type == "ThrottlingException" ||
		e.Type == "TooManyRequestsException"
}

// IsNotFound reports whether err is an APIError for a missing resource.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) &&
		(apiErr.StatusCode == http.StatusNotFound || strings.HasSuffix(apiErr.Type, "NotFoundException"))
}

// IsConflict reports whether err is an APIError for a resource that already
// exists or is mid-transition.
func IsConflict(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) &&
		(apiErr.StatusCode == http.StatusConflict || strings.HasSuffix(apiErr.Type, "AlreadyExistsException"))
}

// errorEnvelope matches the wire error shape. The message key's casing varies
// between services, so both spellings are mapped.
type errorEnvelope struct {
	Type     string `json:"__type"`
	Message  string `json:"message"`
	MessageU string `json:"Message"`
}

// decodeAPIError builds an *APIError from a non-2xx response body. A body
// that is not a recognizable envelope still yields a usable error carrying
// the status code.
func decodeAPIError(statusCode int, body []byte) *APIError {
	var env errorEnvelope
	_ = json.Unmarshal(body, &env)

	// "com.amazonaws.events#ResourceNotFoundException" → "ResourceNotFoundException"
	errType := env.Type
	if i := strings.LastIndexByte(errType, '#'); i >= 0 {
		errType = errType[i+1:]
	}
	if errType == "" {
		errType = http.StatusText(statusCode)
	}

	msg := env.Message
	if msg == "" {
		msg = env.MessageU
	}

	return &APIError{
		Type:       errType,
		Message:    msg,
		StatusCode: statusCode,
	}
}
