package object

import (
	stderrors "errors"

	lean2go "github.com/lean2go/lean2go"
	"github.com/lean2go/lean2go/errors"
)

// Decoder converts raw foreign-call results (tagged words or heap pointers)
// back into Go values, releasing heap objects it has fully consumed.
type Decoder struct {
	mem lean2go.Memory
	rel lean2go.Releaser
}

// NewDecoder builds a decoder over mem. rel may be nil; heap results are
// then leaked instead of released, never an error.
func NewDecoder(mem lean2go.Memory, rel lean2go.Releaser) *Decoder {
	return &Decoder{mem: mem, rel: rel}
}

// DecodeScalar32 decodes a tagged 32-bit scalar result. Boxed 32-bit
// scalars are not supported on this boundary.
func (d *Decoder) DecodeScalar32(word uint64) (uint32, error) {
	if !IsScalar(word) {
		return 0, errors.Unsupported(errors.PhaseDecode,
			"boxed 32-bit scalar results are not supported")
	}
	return UnboxU32(word), nil
}

// DecodeScalar64 decodes a UInt64/Nat result: a tagged scalar directly, or
// a boxed scalar read from the heap object's payload. A boxed object is
// released after the read.
func (d *Decoder) DecodeScalar64(word uint64) (uint64, error) {
	if IsScalar(word) {
		return UnboxU64(word), nil
	}
	return d.decodeBoxedU64(NewRef(uintptr(word), d.rel))
}

func (d *Decoder) decodeBoxedU64(ref *Ref) (uint64, error) {
	defer ref.Release()
	if ref.Ptr() == 0 {
		return 0, errors.Unsupported(errors.PhaseDecode, "null result word")
	}
	v, err := d.mem.ReadU64(ref.Ptr() + HeaderSize)
	if err != nil {
		return 0, errors.Wrap(errors.PhaseDecode, errors.KindUnsupported, err,
			"boxed scalar payload read failed")
	}
	return v, nil
}

// DecodeArray32 reads a Lean Array UInt32 into a Go slice. A null pointer
// decodes to an empty slice. The array's own reference is released once the
// elements have been read, and on the tag-mismatch error path.
func (d *Decoder) DecodeArray32(ptr uintptr) ([]uint32, error) {
	if ptr == 0 {
		return []uint32{}, nil
	}

	ref := NewRef(ptr, d.rel)
	defer ref.Release()

	tag, err := d.mem.ReadU8(ptr + offTag)
	if err != nil {
		return nil, err
	}
	if tag != ArrayTag {
		return nil, errors.TagMismatch(ArrayTag, tag)
	}

	return d.decodeArrayElems(ref)
}

// decodeArrayElems reads the element slots of a verified array object. The
// ref is consumed: released on success and on every error path.
func (d *Decoder) decodeArrayElems(ref *Ref) ([]uint32, error) {
	defer ref.Release()

	size, err := d.mem.ReadU64(ref.Ptr() + offSize)
	if err != nil {
		return nil, err
	}

	out := make([]uint32, 0, size)
	for i := uintptr(0); i < uintptr(size); i++ {
		word, err := d.mem.ReadU64(ref.Ptr() + offData + i*SlotSize)
		if err != nil {
			return nil, err
		}
		if !IsScalar(word) {
			// Boxed elements would need per-element unboxing plus a
			// reference-count protocol this boundary does not carry.
			return nil, errors.Unsupported(errors.PhaseDecode,
				"array element is a boxed scalar, not a tagged word")
		}
		out = append(out, UnboxU32(word))
	}
	return out, nil
}

// DecodeFlexible decodes a result whose static type is unknown: the word's
// low bit picks tagged-scalar decoding, otherwise the heap object's tag
// picks between array and boxed-scalar decoding. This is a deliberate
// best-effort heuristic for exports whose return type the binding layer
// cannot see; callers needing certainty should use a fixed shape.
//
// The result is either a uint64 or a []uint32.
func (d *Decoder) DecodeFlexible(raw uint64) (any, error) {
	if IsScalar(raw) {
		return UnboxU64(raw), nil
	}
	if raw == 0 {
		return []uint32{}, nil
	}

	ref := NewRef(uintptr(raw), d.rel)

	tag, err := d.mem.ReadU8(ref.Ptr() + offTag)
	if err != nil {
		ref.Release()
		return nil, err
	}
	if tag == ArrayTag {
		return d.decodeArrayElems(ref)
	}
	// Not an array: fall back to the boxed-scalar read on the same object.
	// The single ref flows into the fallback, so the object is still
	// released exactly once.
	return d.decodeBoxedU64(ref)
}

// IsTagMismatch reports whether err is the decode-path type mismatch that
// DecodeFlexible falls back from.
func IsTagMismatch(err error) bool {
	return stderrors.Is(err, &errors.Error{Phase: errors.PhaseDecode, Kind: errors.KindTypeMismatch})
}
