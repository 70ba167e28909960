package object

import (
	lean2go "github.com/lean2go/lean2go"
	"github.com/lean2go/lean2go/errors"
)

// Encoder builds Lean heap objects from Go values through a runtime's
// allocator and raw memory access.
type Encoder struct {
	rt lean2go.Runtime
}

func NewEncoder(rt lean2go.Runtime) *Encoder {
	return &Encoder{rt: rt}
}

// EncodeU32Array builds a Lean Array UInt32 and returns its address. The
// returned object carries one reference and is meant to be consumed by
// exactly one foreign call; the caller must not read, mutate or free it
// afterward.
func (e *Encoder) EncodeU32Array(values []uint32) (uintptr, error) {
	if e.rt == nil {
		return 0, errors.RuntimeUnavailable("")
	}

	capacity := uintptr(len(values))
	size := ArrayHeaderSize + SlotSize*capacity

	ptr, err := e.rt.AllocObject(size)
	if err != nil {
		return 0, errors.Wrap(errors.PhaseEncode, errors.KindAllocation, err, "lean_alloc_object")
	}
	if ptr == 0 {
		return 0, errors.AllocationFailed(size)
	}

	// Header: m_rc=1, m_cs_sz=0, m_other=0, m_tag=ArrayTag.
	if err := e.rt.WriteU32(ptr+offRefCount, 1); err != nil {
		return 0, err
	}
	if err := e.rt.WriteU32(ptr+4, uint32(ArrayTag)<<24); err != nil {
		return 0, err
	}
	if err := e.rt.WriteU64(ptr+offSize, uint64(len(values))); err != nil {
		return 0, err
	}
	if err := e.rt.WriteU64(ptr+offCapacity, uint64(capacity)); err != nil {
		return 0, err
	}

	for i, v := range values {
		if err := e.rt.WriteU64(ptr+offData+uintptr(i)*SlotSize, BoxU32(v)); err != nil {
			return 0, err
		}
	}

	return ptr, nil
}

// EncodeF64Array is unsupported: Lean boxes Float through lean_box_float,
// a runtime constructor this boundary does not model. It fails rather than
// degrade to an incorrect integer encoding.
func (e *Encoder) EncodeF64Array(values []float64) (uintptr, error) {
	return 0, errors.Unsupported(errors.PhaseEncode,
		"Array Float requires lean_box_float; use Array UInt32")
}
