package errors

import (
	stderr "errors"
	"fmt"
)

// UnboundCapabilityError indicates that a capability identifier was resolved
// before any instance was bound to it. This is registry misuse and fatal at
// session startup.
type UnboundCapabilityError struct {
	Name string
}

// Error is an implementation of the error interface.
func (e *UnboundCapabilityError) Error() string {
	return fmt.Sprintf("capability %q has no bound instance", e.Name)
}

// DuplicateCapabilityError indicates that the same capability name was
// registered or bound twice on the same side.
type DuplicateCapabilityError struct {
	Name string
}

// Error is an implementation of the error interface.
func (e *DuplicateCapabilityError) Error() string {
	return fmt.Sprintf("capability %q is already registered", e.Name)
}

// CapabilityDisposedError indicates a call against a capability after its
// disposal was acknowledged. Callers recover by discarding their references
// and re-acquiring.
type CapabilityDisposedError struct {
	Name string
}

// Error is an implementation of the error interface.
func (e *CapabilityDisposedError) Error() string {
	return fmt.Sprintf("capability %q has been disposed", e.Name)
}

// IsCapabilityDisposed reports whether CapabilityDisposedError is part of the
// error chain.
func IsCapabilityDisposed(e error) bool {
	var d *CapabilityDisposedError
	return stderr.As(e, &d)
}
