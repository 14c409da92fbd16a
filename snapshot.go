package arena

import (
	"bufio"
	"encoding/binary"
	"io"
	"os"
)

// snapshotVersion is the only version this package knows how to read or
// write. A future format change must bump this and teach Load to reject (or
// migrate) older versions explicitly.
const snapshotVersion uint32 = 1

// magicSize, magic identify an arena snapshot file. The field is 9 bytes
// wide so that version lands at offset 9 and used lands at offset 13
// exactly as documented; magicBytes therefore holds the first 8 ASCII
// characters of "ARENASNAP" followed by a trailing NUL, the same shape as
// the 9-byte "BADMAGIC\0" mismatch example used to test rejection.
const magicSize = 9
const headerSize = magicSize + 4 + 8 // magic + version(u32 LE) + used(u64 host-endian)

var magicBytes = [magicSize]byte{'A', 'R', 'E', 'N', 'A', 'S', 'N', 'A', 0}

// Save writes the live portion of a's buffer ([0:Used())) to path as a
// fixed binary snapshot: a header (magic, version, used) followed by the
// raw payload bytes. It fails if a is nil, path is empty, or a does not own
// its buffer. The file is closed on every exit path.
//
// Save copies (offset, buffer) under the lock and writes the file after
// releasing it: callers must not concurrently mutate the arena while a
// Save is in flight, a precondition this package documents but does not
// enforce.
func (a *Arena) Save(path string) error {
	if a == nil || path == "" {
		return newError(KindInvalidArg, "Save")
	}
	if !a.ownsBuffer.Load() {
		err := newError(KindOwnership, "Save")
		a.ReportError(KindOwnership, "Save: arena does not own its buffer")
		return err
	}

	a.mu.Lock()
	used := a.offset
	payload := make([]byte, used)
	copy(payload, a.buf[:used])
	a.mu.Unlock()

	f, err := os.Create(path)
	if err != nil {
		werr := newErrorf(KindSnapshotInvalid, "Save", "create %s: %v", path, err)
		a.ReportError(KindSnapshotInvalid, "Save: %v", err)
		return werr
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := writeHeader(w, uint64(used)); err != nil {
		a.ReportError(KindSnapshotInvalid, "Save: write header: %v", err)
		return newErrorf(KindSnapshotInvalid, "Save", "write header: %v", err)
	}
	if _, err := w.Write(payload); err != nil {
		a.ReportError(KindSnapshotInvalid, "Save: write payload: %v", err)
		return newErrorf(KindSnapshotInvalid, "Save", "write payload: %v", err)
	}
	if err := w.Flush(); err != nil {
		a.ReportError(KindSnapshotInvalid, "Save: flush: %v", err)
		return newErrorf(KindSnapshotInvalid, "Save", "flush: %v", err)
	}
	return nil
}

// Load reads a snapshot written by Save into a, which must own its buffer
// and be at least as large as the snapshot's used field. On success,
// a.Used() equals the snapshot's used value. On any validation or read
// failure the arena is left structurally valid (IsValid still holds) but
// its offset and buffer contents are otherwise unspecified; Load never
// mutates the arena before every byte of the payload has been read
// successfully.
func Load(a *Arena, path string) error {
	if a == nil || path == "" {
		return newError(KindInvalidArg, "Load")
	}
	if !a.ownsBuffer.Load() {
		err := newError(KindOwnership, "Load")
		a.ReportError(KindOwnership, "Load: arena does not own its buffer")
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		a.ReportError(KindSnapshotInvalid, "Load: open %s: %v", path, err)
		return newErrorf(KindSnapshotInvalid, "Load", "open %s: %v", path, err)
	}
	defer f.Close()

	used, err := readHeader(f)
	if err != nil {
		a.ReportError(KindSnapshotInvalid, "Load: %v", err)
		return newErrorf(KindSnapshotInvalid, "Load", "%v", err)
	}

	a.mu.Lock()
	capacity := uint64(a.size)
	a.mu.Unlock()
	if used > capacity {
		a.ReportError(KindSnapshotInvalid, "Load: payload of %d bytes exceeds arena capacity %d", used, capacity)
		return newErrorf(KindSnapshotInvalid, "Load", "payload of %d bytes exceeds arena capacity %d", used, capacity)
	}

	payload := make([]byte, used)
	if _, err := io.ReadFull(f, payload); err != nil {
		a.ReportError(KindSnapshotInvalid, "Load: read payload: %v", err)
		return newErrorf(KindSnapshotInvalid, "Load", "read payload: %v", err)
	}

	a.mu.Lock()
	copy(a.buf, payload)
	a.offset = int(used)
	a.mu.Unlock()
	return nil
}

func writeHeader(w io.Writer, used uint64) error {
	var hdr [headerSize]byte
	copy(hdr[0:magicSize], magicBytes[:])
	binary.LittleEndian.PutUint32(hdr[magicSize:magicSize+4], snapshotVersion)
	binary.NativeEndian.PutUint64(hdr[magicSize+4:headerSize], used)
	_, err := w.Write(hdr[:])
	return err
}

func readHeader(r io.Reader) (used uint64, err error) {
	var hdr [headerSize]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return 0, errSnapshotf("truncated header: %v", err)
	}
	if [magicSize]byte(hdr[0:magicSize]) != magicBytes {
		return 0, errSnapshotf("bad magic")
	}
	version := binary.LittleEndian.Uint32(hdr[magicSize : magicSize+4])
	if version != snapshotVersion {
		return 0, errSnapshotf("unsupported version %d", version)
	}
	used = binary.NativeEndian.Uint64(hdr[magicSize+4 : headerSize])
	return used, nil
}

func errSnapshotf(format string, args ...any) error {
	return newErrorf(KindSnapshotInvalid, "Load", format, args...)
}
