// Package invoke performs foreign calls into a compiled Lean export library.
//
// Every call follows the same stateless request/response sequence: locate
// the Lean runtime if the caller did not supply one, resolve the export,
// encode the Array UInt32 argument, call with one word-sized argument and
// one word-sized result, decode per the call shape. No session state is
// held between calls, and nothing is retried.
//
// The four call shapes are the stable API the binding generator emits
// against:
//
//	CallArrayToU32    (Array UInt32) -> UInt32
//	CallArrayToU64    (Array UInt32) -> UInt64
//	CallArrayToArray  (Array UInt32) -> Array UInt32
//	CallArrayFlexible (Array UInt32) -> UInt64 or Array UInt32
//
// The flexible shape sniffs the result's low bit to pick scalar or array
// decoding; it exists for exports whose return type the binding layer
// cannot see statically.
//
// Symbol resolution happens before any encoding, so a missing export fails
// without allocating a Lean object.
//
// Calls block the calling goroutine until the foreign function returns;
// there is no cancellation or timeout at this layer.
package invoke
