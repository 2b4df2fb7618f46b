package llm

import "fmt"

// The single API call fails in a fixed set of ways. Each kind carries enough
// detail for the terminal error message; none of them are retried.

// TimeoutError reports that the request exceeded the client timeout.
type TimeoutError struct {
	Err error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("request timed out: %v", e.Err)
}

func (e *TimeoutError) Unwrap() error { return e.Err }

// ConnectError reports that the endpoint could not be reached.
type ConnectError struct {
	Err error
}

func (e *ConnectError) Error() string {
	return fmt.Sprintf("could not connect to OpenRouter: %v", e.Err)
}

func (e *ConnectError) Unwrap() error { return e.Err }

// StatusError reports a non-200 response, carrying the status code and the
// full error body.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("API error %d: %s", e.Code, e.Body)
}

// DecodeError reports a failure to encode the request payload.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("encoding request: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
