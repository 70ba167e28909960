package runtime

import (
	"github.com/ebitengine/purego"

	lean2go "github.com/lean2go/lean2go"
	"github.com/lean2go/lean2go/errors"
	"github.com/lean2go/lean2go/object"
)

// Runtime is a loaded Lean runtime: the allocator and reference-count
// primitives plus raw memory access. It satisfies lean2go.Runtime.
type Runtime struct {
	object.NativeMemory

	lib     *SharedLibrary
	allocFn uintptr
	decFn   uintptr
}

func fromLibrary(lib *SharedLibrary) (*Runtime, error) {
	allocFn, err := resolveSymbol(lib.handle, symAllocObject)
	if err != nil || allocFn == 0 {
		return nil, errors.Wrap(errors.PhaseLocate, errors.KindRuntimeUnavailable, err,
			symAllocObject+" not exported by "+lib.path)
	}
	// Optional: without it releases become no-ops.
	decFn, _ := resolveSymbol(lib.handle, symDecRef)
	return &Runtime{lib: lib, allocFn: allocFn, decFn: decFn}, nil
}

// Library returns the shared library the runtime was loaded from.
func (r *Runtime) Library() *SharedLibrary {
	return r.lib
}

// AllocObject requests size bytes from lean_alloc_object.
func (r *Runtime) AllocObject(size uintptr) (uintptr, error) {
	ptr, _, _ := purego.SyscallN(r.allocFn, size)
	return ptr, nil
}

// DecRef drops one reference via lean_dec_ref_cold. Best-effort: a runtime
// without the primitive makes this a no-op.
func (r *Runtime) DecRef(ptr uintptr) {
	if r.decFn == 0 || ptr == 0 {
		return
	}
	purego.SyscallN(r.decFn, ptr)
}

// CanRelease reports whether the release primitive was found.
func (r *Runtime) CanRelease() bool {
	return r.decFn != 0
}

var _ lean2go.Runtime = (*Runtime)(nil)
