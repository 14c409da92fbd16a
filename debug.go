package arena

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/dolthub/maphash"
)

// debugInfo holds the non-owning metadata threaded through every
// constructor: a label, a process-wide unique id, and the error sink.
type debugInfo struct {
	label     string
	id        uint64
	errorFunc ErrorFunc
	errorCtx  any
}

var idCounter atomic.Uint64

// GenerateID assigns a process-wide monotonically increasing id. It is
// called automatically by the constructors when an arena's id is unset.
func GenerateID() uint64 {
	return idCounter.Add(1)
}

// Label returns the arena's debug label.
func (a *Arena) Label() string {
	if a == nil {
		return ""
	}
	return a.debug.label
}

// ID returns the arena's process-wide unique id.
func (a *Arena) ID() uint64 {
	if a == nil {
		return 0
	}
	return a.debug.id
}

// labelRegistry is the in-memory debug label registry: a process-wide map
// from an arena's id to the label it was last finalized with. It lets a
// Hook or ErrorFunc that only captured an id (e.g. from a log line written
// after the arena itself was destroyed) resolve it back to a human-readable
// name via LookupLabel.
var labelRegistry sync.Map // uint64 -> string

func registerLabel(id uint64, label string) {
	labelRegistry.Store(id, label)
}

func unregisterLabel(id uint64) {
	labelRegistry.Delete(id)
}

// LookupLabel returns the label most recently registered for a process-wide
// arena id by finalize (New, Init, InitWithBuffer, ReinitWithBuffer, or
// SubArena), and whether an entry was found. Destroy removes the entry, so
// a lookup after Destroy returns ("", false) unless the id was reused by a
// later arena.
func LookupLabel(id uint64) (string, bool) {
	v, ok := labelRegistry.Load(id)
	if !ok {
		return "", false
	}
	return v.(string), true
}

// IsValid reports whether a is safe to operate on: non-nil, holding a
// non-empty buffer, with a well-formed offset, and not mid-destruction.
// IsValid never mutates the arena and is intended for defensive checks,
// not as a substitute for checking operation return values.
func (a *Arena) IsValid() bool {
	if a == nil {
		return false
	}
	if a.destroying.Load() {
		return false
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.buf != nil && a.size > 0 && a.offset >= 0 && a.offset <= a.size
}

// ReportError formats a message and dispatches it to the arena's installed
// ErrorFunc. It never mutates the arena and never returns an error itself;
// it is the external collaborator the documented error kinds report
// through.
func (a *Arena) ReportError(kind ErrorKind, format string, args ...any) {
	if a == nil || a.debug.errorFunc == nil {
		return
	}
	msg := fmt.Sprintf("%s: %s", kind, fmt.Sprintf(format, args...))
	a.debug.errorFunc(a, msg, a.debug.errorCtx)
}

// reportErrorLocked is the internal counterpart of ReportError used by code
// paths that already hold a.mu and have an *Error in hand; it passes
// err.Error() to the installed ErrorFunc as the message.
func (a *Arena) reportErrorLocked(err *Error) {
	if a.debug.errorFunc == nil {
		return
	}
	a.debug.errorFunc(a, err.Error(), a.debug.errorCtx)
}

// zeroMetadata unconditionally clears the arena's fields. It is called once
// from Destroy so that reused storage (a stack-allocated Arena that is
// Init-ed again) starts from a clean slate.
func (a *Arena) zeroMetadata() {
	*a = Arena{}
}

var fingerprintHasher = maphash.NewHasher[string]()

// Fingerprint returns a fast, non-cryptographic hash of the arena's live
// bytes ([0:Used())). It exists for tests and debugging — e.g. asserting
// that a Save/Load round trip reproduced the same content without comparing
// full buffers by hand — and is not part of the snapshot format.
func (a *Arena) Fingerprint() uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return fingerprintHasher.Hash(string(a.buf[:a.offset]))
}
