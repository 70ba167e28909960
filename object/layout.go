package object

// Lean runtime constants, from lean.h.
const (
	// ArrayTag identifies lean_array_object in a header's m_tag byte.
	ArrayTag uint8 = 246

	// HeaderSize is sizeof(lean_object): m_rc + m_cs_sz + m_other + m_tag.
	HeaderSize = 8

	// ArrayHeaderSize is sizeof(lean_array_object) before the element
	// slots: header + m_size + m_capacity.
	ArrayHeaderSize = HeaderSize + 8 + 8

	// SlotSize is the width of one array element slot.
	SlotSize = 8
)

// Field offsets within an array object.
const (
	offRefCount = 0
	offTag      = 7
	offSize     = 8
	offCapacity = 16
	offData     = 24
)

// BoxU32 encodes a 32-bit scalar as a tagged word: value in the high bits,
// low bit set so the runtime never treats it as a pointer.
func BoxU32(v uint32) uint64 {
	return uint64(v)<<1 | 1
}

// IsScalar reports whether a raw word is a tagged scalar rather than a
// heap pointer.
func IsScalar(word uint64) bool {
	return word&1 == 1
}

// UnboxU32 decodes a tagged word produced by BoxU32. The caller must have
// checked IsScalar first.
func UnboxU32(word uint64) uint32 {
	return uint32(word >> 1)
}

// UnboxU64 decodes a tagged word on the 64-bit read path (up to 63 bits).
func UnboxU64(word uint64) uint64 {
	return word >> 1
}
