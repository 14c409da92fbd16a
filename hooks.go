package arena

import (
	"fmt"
	"os"
)

// EventKind identifies the lifecycle event a Hook was invoked for.
type EventKind int

const (
	// EventAlloc fires after a successful allocation, with p and n set to
	// the returned range and its requested size.
	EventAlloc EventKind = iota
	// EventReset fires after Reset has poisoned and rewound the arena.
	EventReset
	// EventDestroy fires once, as Destroy begins tearing the arena down.
	EventDestroy
)

func (k EventKind) String() string {
	switch k {
	case EventAlloc:
		return "alloc"
	case EventReset:
		return "reset"
	case EventDestroy:
		return "destroy"
	default:
		return "unknown"
	}
}

// Hook observes arena lifecycle events. It is called synchronously while
// the arena's lock is held, so it must not block indefinitely and must not
// call Destroy on the arena it was fired from. It may call query methods,
// or Alloc, on that same arena: the lock is reentrant per goroutine.
type Hook func(a *Arena, kind EventKind, p []byte, n int, ctx any)

// ErrorFunc is the error-reporting sink dispatched by ReportError. It is an
// observer, not a recovery path: every documented failure is still
// reflected in the arena's stats and return value whether or not an
// ErrorFunc is installed.
type ErrorFunc func(a *Arena, msg string, ctx any)

// NoopHook discards every event. It is the default when no hook is
// installed via WithHook.
func NoopHook(*Arena, EventKind, []byte, int, any) {}

// DefaultErrorFunc writes the formatted message to the process's standard
// error stream, prefixed with the arena's label when available.
func DefaultErrorFunc(a *Arena, msg string, _ any) {
	if a != nil && a.debug.label != "" {
		fmt.Fprintf(os.Stderr, "arena[%s]: %s\n", a.debug.label, msg)
		return
	}
	fmt.Fprintln(os.Stderr, msg)
}
