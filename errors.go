package svga3d

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why a core operation failed. See spec §7.
type ErrorKind int

const (
	// ErrInvalidParameter indicates a guest-supplied argument failed
	// validation. This is the most common error kind — it is produced by
	// every guest-input bounds/range check in the core.
	ErrInvalidParameter ErrorKind = iota + 1

	// ErrInvalidState indicates an operation was attempted against
	// uninitialized or mismatched state (e.g. reading a COTable that is
	// not bound to any MOB).
	ErrInvalidState

	// ErrNoMemory indicates a host allocation failed.
	ErrNoMemory

	// ErrNotImplemented indicates a known command with no backend support,
	// or a reserved/unallocated command id.
	ErrNotImplemented

	// ErrNotSupported indicates the backend interface required by this
	// command family is absent.
	ErrNotSupported

	// ErrInternal indicates a core invariant was violated. Unlike the
	// other kinds, this should never originate purely from guest input —
	// it indicates a bug in the core itself.
	ErrInternal
)

// String returns a short machine-stable name for the error kind.
func (k ErrorKind) String() string {
	switch k {
	case ErrInvalidParameter:
		return "INVALID_PARAMETER"
	case ErrInvalidState:
		return "INVALID_STATE"
	case ErrNoMemory:
		return "NO_MEMORY"
	case ErrNotImplemented:
		return "NOT_IMPLEMENTED"
	case ErrNotSupported:
		return "NOT_SUPPORTED"
	case ErrInternal:
		return "INTERNAL_ERROR"
	default:
		return "UNKNOWN_ERROR"
	}
}

// Error is the error type returned by every core operation. It pairs an
// ErrorKind with a human-readable message, the way surface.BackendNotFoundError
// pairs a name with a message in the teacher package.
type Error struct {
	Kind ErrorKind
	Op   string // operation that failed, e.g. "gbo.Create", "otable.Write"
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("svga3d: %s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("svga3d: %s: %s: %s", e.Op, e.Kind, e.Msg)
}

// Kind reports the ErrorKind of err if err is (or wraps) an *Error.
// Returns ErrInternal if err does not carry a kind, so that callers which
// forget to use NewError still fail closed rather than looking like success.
func Kind(err error) ErrorKind {
	var e *Error
	if err == nil {
		return 0
	}
	if errors.As(err, &e) {
		return e.Kind
	}
	return ErrInternal
}

// NewError builds an *Error. Use the Errorf-style helpers below in normal
// code; NewError is exported for callers that already have a formatted
// message.
func NewError(kind ErrorKind, op, msg string) *Error {
	return &Error{Kind: kind, Op: op, Msg: msg}
}

// Invalidf builds an ErrInvalidParameter.
func Invalidf(op, format string, args ...any) *Error {
	return &Error{Kind: ErrInvalidParameter, Op: op, Msg: fmt.Sprintf(format, args...)}
}

// InvalidStatef builds an ErrInvalidState.
func InvalidStatef(op, format string, args ...any) *Error {
	return &Error{Kind: ErrInvalidState, Op: op, Msg: fmt.Sprintf(format, args...)}
}

// Internalf builds an ErrInternal.
func Internalf(op, format string, args ...any) *Error {
	return &Error{Kind: ErrInternal, Op: op, Msg: fmt.Sprintf(format, args...)}
}

// NotImplementedf builds an ErrNotImplemented.
func NotImplementedf(op, format string, args ...any) *Error {
	return &Error{Kind: ErrNotImplemented, Op: op, Msg: fmt.Sprintf(format, args...)}
}

// NotSupportedf builds an ErrNotSupported.
func NotSupportedf(op, format string, args ...any) *Error {
	return &Error{Kind: ErrNotSupported, Op: op, Msg: fmt.Sprintf(format, args...)}
}

// NoMemoryf builds an ErrNoMemory.
func NoMemoryf(op, format string, args ...any) *Error {
	return &Error{Kind: ErrNoMemory, Op: op, Msg: fmt.Sprintf(format, args...)}
}
