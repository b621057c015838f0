package sentiment

import (
	"fmt"
	"strings"
)

// ValidationError is a rejection carrying the server's messages for the text field.
type ValidationError struct {
	StatusCode int
	Messages   []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error (status %d): %s", e.StatusCode, strings.Join(e.Messages, "; "))
}

// First is the message shown to the user.
func (e *ValidationError) First() string {
	if len(e.Messages) == 0 {
		return ""
	}
	return e.Messages[0]
}

// RequestError covers every other failure: transport, status, or body shape.
type RequestError struct {
	Op         string // "send" | "status" | "decode"
	StatusCode int
	Err        error
}

func (e *RequestError) Error() string {
	var parts []string
	parts = append(parts, "predict "+e.Op)
	if e.StatusCode > 0 {
		parts = append(parts, fmt.Sprintf("status=%d", e.StatusCode))
	}
	if e.Err != nil {
		parts = append(parts, e.Err.Error())
	}
	return strings.Join(parts, ": ")
}

func (e *RequestError) Unwrap() error { return e.Err }
