// Package runtime locates and loads the Lean runtime's shared libraries and
// the target export library, and exposes the runtime's allocation and
// reference-count primitives behind the root lean2go interfaces.
//
// # Locating the Runtime
//
// The Lean toolchain ships its runtime as platform-named shared libraries in
// the toolchain bin directory. Locate tries the candidates in priority
// order and returns the first that loads:
//
//	Windows: libInit_shared.dll, libleanshared.dll, libleanshared_2.dll
//	macOS:   libInit_shared.dylib, libleanshared.dylib, libleanshared_2.dylib
//	other:   libInit_shared.so, libleanshared.so, libleanshared_2.so
//
// A candidate that exists but fails to load falls through silently to the
// next; only a fully empty result is an error.
//
// # Primitives
//
// The loaded runtime must export lean_alloc_object. lean_dec_ref_cold is
// optional: without it DecRef is a no-op, trading a leak for portability
// across runtime builds that inline the release path.
//
// Library loads are process-wide; the OS loader caches and shares handles
// across calls.
package runtime
