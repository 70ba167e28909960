// Package object encodes and decodes Lean 4 runtime objects.
//
// This package handles bidirectional conversion between Go values and the
// Lean runtime's in-memory object representation:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│ Go Value ←→ [Encoder/Decoder] ←→ Lean heap / tagged words  │
//	└─────────────────────────────────────────────────────────────┘
//
// # Object Layout
//
// Every Lean heap object starts with a fixed 8-byte header; array objects
// add a size and capacity word followed by the element slots:
//
//	Offset  Size  Field
//	─────────────────────────────────────
//	0       4     m_rc (refcount, LE)
//	4       2     m_cs_sz (zero here)
//	6       1     m_other (zero here)
//	7       1     m_tag (246 = array)
//	8       8     m_size
//	16      8     m_capacity
//	24      8*n   element slots
//
// Small scalars never reach the heap: a word with its low bit set is a
// tagged scalar carrying value >> 1 directly.
//
// # Ownership
//
// An encoded array is consumed by exactly one foreign call and must not be
// touched afterward. A heap object returned by a foreign call is owned by
// the caller until released; the Decoder releases objects it has fully
// consumed through a Ref guard, which makes a second release a checked
// no-op rather than a corruption.
//
// # Supported Shapes
//
// Encoding covers Array UInt32. Decoding covers tagged scalars (32 and
// 64-bit reads), boxed 64-bit scalars, and arrays of tagged scalars.
// Float arrays and boxed 32-bit scalars fail with structured errors; Lean
// boxes those through runtime constructors this boundary does not model.
//
// # Thread Safety
//
// Encoder and Decoder are stateless and may be shared, but the objects they
// operate on are not protected: decoding or releasing the same pointer from
// multiple goroutines is undefined behavior.
package object
