package object

import (
	lean2go "github.com/lean2go/lean2go"
)

// Ref is a release-on-exit guard for a heap object the caller owns. The
// invariant is exactly-once release: Release after the first call, or on a
// nil pointer, or with no release primitive, is a no-op instead of a
// double-decrement.
type Ref struct {
	ptr      uintptr
	rel      lean2go.Releaser
	released bool
}

// NewRef wraps a foreign-owned pointer. rel may be nil when the runtime's
// release primitive is unavailable; the guard then degrades to a no-op
// (a deliberate best-effort leak rather than a hard dependency).
func NewRef(ptr uintptr, rel lean2go.Releaser) *Ref {
	return &Ref{ptr: ptr, rel: rel}
}

// Ptr returns the guarded address.
func (r *Ref) Ptr() uintptr {
	return r.ptr
}

// Released reports whether the reference has already been dropped.
func (r *Ref) Released() bool {
	return r.released
}

// Release decrements the object's reference count once.
func (r *Ref) Release() {
	if r.released || r.ptr == 0 {
		return
	}
	r.released = true
	if r.rel != nil {
		r.rel.DecRef(r.ptr)
	}
}
