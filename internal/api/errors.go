package api

import (
	"encoding/json"
	"fmt"
)

// ErrServiceUnavailable indicates the platform backend is down or
// unreachable.
type ErrServiceUnavailable struct {
	Err error
}

func (e *ErrServiceUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("platform service unavailable: %v", e.Err)
	}
	return "platform service unavailable"
}

func (e *ErrServiceUnavailable) Unwrap() error { return e.Err }

// ErrInvalidResponse indicates the backend returned a payload that does
// not conform to the endpoint's schema.
type ErrInvalidResponse struct {
	Body json.RawMessage
	Err  error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid service response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrStatus indicates the backend answered with a non-success HTTP status.
type ErrStatus struct {
	Code int
	Body string
}

func (e *ErrStatus) Error() string {
	return fmt.Sprintf("service returned status %d: %s", e.Code, e.Body)
}
