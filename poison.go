//go:build !arena_nopoison

package arena

// PoisonByte fills reclaimed memory so use-after-reclaim shows up as a
// recognizable pattern rather than silently reading stale data.
const PoisonByte = 0xDE

// poison overwrites b with PoisonByte. Compiled to a no-op under the
// arena_nopoison build tag.
func poison(b []byte) {
	for i := range b {
		b[i] = PoisonByte
	}
}
