package nanocreatures

import (
	"encoding/json"
	"fmt"
)

// APIError is a non-2xx response. Message is the server-provided message
// when the body parses as the error payload shape, otherwise the
// operation's fallback text; RawBody always holds the response body as
// received.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	RawBody    string
}

func (e *APIError) Error() string { return e.Message }

// DecodeError is a 2xx response whose body failed to decode. It is
// distinct from APIError so callers can tell a broken success apart from
// a server-side failure.
type DecodeError struct {
	Body string
	err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode response: %v (body: %s)", e.err, e.Body)
}

func (e *DecodeError) Unwrap() error { return e.err }

func newAPIError(status int, raw []byte, fallback string) *APIError {
	var payload struct {
		Message string `json:"message"`
		Code    string `json:"code"`
		Status  int    `json:"status"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		// Non-JSON error page: keep the status and body visible so the
		// caller can diagnose it.
		return &APIError{
			StatusCode: status,
			Message:    fmt.Sprintf("%s: unexpected status %d: %s", fallback, status, raw),
			RawBody:    string(raw),
		}
	}
	message := payload.Message
	if message == "" {
		message = fallback
	}
	return &APIError{
		StatusCode: status,
		Code:       payload.Code,
		Message:    message,
		RawBody:    string(raw),
	}
}
