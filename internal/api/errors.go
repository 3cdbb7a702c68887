package api

import "errors"

var (
	// ErrNotFound indicates the requested activity does not exist on the
	// server.
	ErrNotFound = errors.New("activity not found")

	// ErrUnauthorized indicates the session token was rejected.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidRequest indicates the server rejected the request payload.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrUnavailable indicates the activity service is unreachable.
	ErrUnavailable = errors.New("activity service unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("activity service request timed out")

	// ErrServer indicates a 5xx response from the activity service.
	ErrServer = errors.New("activity service error")
)
