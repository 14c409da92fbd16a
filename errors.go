package arena

import (
	stderrors "errors"
	"fmt"

	"github.com/pkg/errors"
)

// ErrorKind classifies the documented failure modes of the arena API. It is
// a kind, not a type: every failure path produces an *Error carrying one of
// these, rather than a distinct Go error type per condition.
type ErrorKind int

const (
	// KindInvalidArg covers a nil arena, a zero size where one is forbidden,
	// or a non-power-of-two alignment.
	KindInvalidArg ErrorKind = iota
	// KindOOM covers an allocation or growth attempt that failed.
	KindOOM
	// KindMarkerOutOfRange covers Pop called with a marker past the current
	// offset.
	KindMarkerOutOfRange
	// KindSnapshotInvalid covers a corrupt or truncated snapshot file.
	KindSnapshotInvalid
	// KindOwnership covers Save/Load called on a non-owning arena.
	KindOwnership
	// KindBusy covers any operation attempted while the arena is being
	// destroyed.
	KindBusy
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidArg:
		return "invalid_arg"
	case KindOOM:
		return "oom"
	case KindMarkerOutOfRange:
		return "marker_out_of_range"
	case KindSnapshotInvalid:
		return "snapshot_invalid"
	case KindOwnership:
		return "ownership"
	case KindBusy:
		return "busy"
	default:
		return "unknown"
	}
}

// Error is the error value returned by every arena operation's documented
// failure path. Op names the operation that failed; Err, when non-nil, is
// the underlying cause wrapped with a stack trace for the default error
// sink to report.
type Error struct {
	Kind ErrorKind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("arena: %s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("arena: %s: %s", e.Op, e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

// newError builds an *Error with a stack trace attached to its cause, so
// the default error sink can print an origin for the failure.
func newError(kind ErrorKind, op string) *Error {
	return &Error{Kind: kind, Op: op, Err: errors.WithStack(errors.New(op))}
}

// newErrorf is like newError but with a formatted cause message.
func newErrorf(kind ErrorKind, op, format string, args ...any) *Error {
	return &Error{Kind: kind, Op: op, Err: errors.WithStack(errors.Errorf(format, args...))}
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
