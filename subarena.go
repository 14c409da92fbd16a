package arena

import "fmt"

// SubArena carves a nested arena of size bytes out of a's remaining
// capacity. The child shares a's backing buffer, does not own it, cannot
// grow, and keeps a non-owning back-reference to a. The parent's offset is
// advanced past the carved region (plus any alignment padding) so it is
// reserved; that reservation is not returned to the parent when the child
// is destroyed — reclaim it by Marking the parent around the SubArena
// call.
//
// Growing a parent with live sub-arenas is forbidden: Alloc on a refuses to
// grow while a.subCount is non-zero.
func (a *Arena) SubArena(size int, opts ...Option) (*Arena, error) {
	if a == nil {
		return nil, newError(KindInvalidArg, "SubArena")
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.checkBusyLocked("SubArena"); err != nil {
		return nil, err
	}
	if size <= 0 {
		err := newError(KindInvalidArg, "SubArena")
		a.reportErrorLocked(err)
		return nil, err
	}

	start := alignUp(a.offset, DefaultAlign)
	padding := start - a.offset
	need := size + padding
	if a.size-a.offset < need {
		err := newError(KindOOM, "SubArena")
		a.reportErrorLocked(err)
		return nil, err
	}

	cfg := defaultConfig()
	cfg.hook = a.hook
	cfg.hookCtx = a.hookCtx
	cfg.errorFunc = a.debug.errorFunc
	cfg.errorCtx = a.debug.errorCtx
	cfg.markerCap = a.markerCap
	for _, o := range opts {
		o(&cfg)
	}
	cfg.canGrow = false // sub-arenas never own a growable buffer, regardless of options

	child := &Arena{}
	finalize(child, a.buf[start:start+size:start+size], size, false, cfg)
	child.parent = a
	if cfg.label == "" {
		child.debug.label = fmt.Sprintf("%s/sub-%d", a.debug.label, child.debug.id)
		registerLabel(child.debug.id, child.debug.label)
	}

	a.offset = start + size
	a.subCount.Add(1)

	return child, nil
}
