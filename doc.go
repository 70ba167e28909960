// Package lean2go bridges compiled Lean 4 shared libraries to Go.
//
// Given Lean source with @[export] definitions, lean2go drives the Lean
// toolchain to produce a shared library, discovers the exported C symbols,
// and generates Go source that calls them through a marshalling core that
// reproduces the Lean runtime's in-memory object format.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	lean2go/         Root package with core Memory, Allocator and Library interfaces
//	├── object/      Lean object encoding/decoding (tagged scalars, array objects)
//	├── runtime/     Lean runtime location and shared-library loading
//	├── invoke/      Foreign calls and the four call-shape dispatchers
//	├── exports/     @[export] symbol discovery in Lean source
//	├── build/       Lake/leanc toolchain driver
//	├── bindgen/     Go wrapper source generation
//	├── pipeline/    End-to-end source -> shared lib -> bindings
//	├── manifest/    lean2go.toml project configuration
//	└── errors/      Structured error types for debugging
//
// # Quick Start
//
// Call an already-built export directly:
//
//	lib, err := runtime.Open("./libLeanExport.so")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	sum, err := invoke.CallArrayToU64(lib, nil, "my_sum", []uint32{1, 2, 3}, leanBin)
//	fmt.Println(sum) // 6
//
// Or generate bindings for a whole project:
//
//	result, err := pipeline.Run(ctx, "Demo.lean", pipeline.Options{})
//
// # Supported Boundary
//
// The marshalling core handles exactly the shapes the Lean ABI makes cheap
// from the outside: Array UInt32 arguments and scalar or Array UInt32
// results. Floating-point arrays and boxed 32-bit scalars are rejected with
// structured errors rather than marshalled incorrectly.
//
// # Thread Safety
//
// Loaded library handles are process-wide and safe to reuse across calls.
// Reference-count mutation on Lean heap objects is NOT thread-safe here:
// any given foreign-allocated object must be decoded and released from a
// single goroutine.
package lean2go
