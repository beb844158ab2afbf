package loop

import "sync/atomic"

// dirtyTracker decides whether a render is due.
//
// frameVersion is a monotonic counter bumped by markDirty (any
// goroutine) or by the auto-dirty policy. renderedVersion belongs to
// whichever single context performs renders and needs no atomics.
// A render is due iff renderedVersion < frameVersion.
type dirtyTracker struct {
	frameVersion    atomic.Uint64
	renderedVersion uint64
}

func (d *dirtyTracker) markDirty() {
	d.frameVersion.Add(1)
}

func (d *dirtyTracker) version() uint64 {
	return d.frameVersion.Load()
}

func (d *dirtyTracker) renderDue() bool {
	return d.renderedVersion < d.frameVersion.Load()
}

// markRendered records the version captured before the render started.
// Marks that interleaved with the render stay newer than renderedVersion
// and keep the next render due.
func (d *dirtyTracker) markRendered(version uint64) {
	d.renderedVersion = version
}
