package errors

import (
	stderr "errors"
	"fmt"
)

// StaleHandleError indicates use of a handle whose owner-side state has
// already been released or collected. The handle is permanently invalid;
// callers recover by discarding the reference and re-acquiring.
type StaleHandleError struct {
	Handle   int64
	Category string
}

// Error is an implementation of the error interface.
func (e *StaleHandleError) Error() string {
	return fmt.Sprintf("handle %d (%s) is stale", e.Handle, e.Category)
}

// IsStaleHandle reports whether StaleHandleError is part of the error chain.
func IsStaleHandle(e error) bool {
	var s *StaleHandleError
	return stderr.As(e, &s)
}

// ProtocolViolationError indicates a malformed delta or an out-of-order
// dependency between synchronized collections. It is fatal to the affected
// synchronization session, never to the whole process.
type ProtocolViolationError struct {
	Reason string
}

// Error is an implementation of the error interface.
func (e *ProtocolViolationError) Error() string {
	return fmt.Sprintf("protocol violation: %s", e.Reason)
}

// IsProtocolViolation reports whether ProtocolViolationError is part of the
// error chain.
func IsProtocolViolation(e error) bool {
	var p *ProtocolViolationError
	return stderr.As(e, &p)
}
