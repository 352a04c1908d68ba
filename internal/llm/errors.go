package llm

import (
	"fmt"
	"time"
)

// TransportError indicates the collaborator was unreachable or the call
// failed outright (network failure, timeout, server error). Retryable.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("llm transport error: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// RateLimitError indicates provider backpressure. Callers should wait
// RetryAfter (when known) before retrying.
type RateLimitError struct {
	Err        error
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("llm rate limited (retry after %s): %v", e.RetryAfter, e.Err)
	}
	return fmt.Sprintf("llm rate limited: %v", e.Err)
}

func (e *RateLimitError) Unwrap() error { return e.Err }
