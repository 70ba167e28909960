package lean2go

// Memory provides raw access to native process memory.
// Addresses are pointers obtained from the Lean runtime's allocator or
// returned by foreign calls; all multi-byte fields are little-endian.
type Memory interface {
	Read(addr uintptr, length uintptr) ([]byte, error)
	Write(addr uintptr, data []byte) error
	ReadU8(addr uintptr) (uint8, error)
	ReadU64(addr uintptr) (uint64, error)
	WriteU32(addr uintptr, value uint32) error
	WriteU64(addr uintptr, value uint64) error
}

// Allocator allocates raw Lean heap objects (lean_alloc_object).
type Allocator interface {
	AllocObject(size uintptr) (uintptr, error)
}

// Releaser decrements a Lean object's reference count, freeing it when the
// count reaches zero (lean_dec_ref_cold). Implementations are best-effort:
// a runtime without the release primitive provides a no-op.
type Releaser interface {
	DecRef(ptr uintptr)
}

// Runtime is the foreign runtime surface the marshalling core needs.
type Runtime interface {
	Allocator
	Releaser
	Memory
}

// Function is a resolved export with the fixed boundary calling convention:
// one word-sized argument in, one word-sized result out.
type Function interface {
	Call(arg uintptr) uintptr
}

// Library resolves exported symbols in a loaded shared library.
type Library interface {
	Symbol(name string) (Function, error)
}
