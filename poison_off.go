//go:build arena_nopoison

package arena

// PoisonByte is kept as a constant even when poisoning is compiled out, so
// callers and tests can reference it unconditionally.
const PoisonByte = 0xDE

// poison is a no-op under the arena_nopoison build tag.
func poison(b []byte) {}
