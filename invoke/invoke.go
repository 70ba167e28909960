package invoke

import (
	"go.uber.org/zap"

	lean2go "github.com/lean2go/lean2go"
	"github.com/lean2go/lean2go/errors"
	"github.com/lean2go/lean2go/object"
	"github.com/lean2go/lean2go/runtime"
)

// Shape selects how a call's raw result is decoded.
type Shape int

const (
	ShapeU32 Shape = iota
	ShapeU64
	ShapeArray
	ShapeFlexible
)

func (s Shape) String() string {
	switch s {
	case ShapeU32:
		return "u32"
	case ShapeU64:
		return "u64"
	case ShapeArray:
		return "array"
	case ShapeFlexible:
		return "flexible"
	default:
		return "unknown"
	}
}

// Invoke calls symbol in lib with a Lean Array UInt32 built from values and
// decodes the result per shape. A nil rt is resolved by locating the Lean
// runtime in binDir. The encoded argument is consumed by the callee; the
// result object, if any, is released by the decoder.
func Invoke(lib lean2go.Library, rt lean2go.Runtime, symbol string, values []uint32, binDir string, shape Shape) (any, error) {
	if lib == nil {
		return nil, errors.InvalidInput(errors.PhaseInvoke, "nil target library")
	}
	if rt == nil {
		located, err := runtime.Locate(binDir)
		if err != nil {
			return nil, err
		}
		rt = located
	}

	// Resolve before encoding so a missing export has no allocation side
	// effect to leak.
	fn, err := lib.Symbol(symbol)
	if err != nil {
		return nil, err
	}

	arg, err := object.NewEncoder(rt).EncodeU32Array(values)
	if err != nil {
		return nil, err
	}

	Logger().Debug("foreign call",
		zap.String("symbol", symbol),
		zap.Int("elems", len(values)),
		zap.Stringer("shape", shape))

	// The callee consumes the argument object; it must not be touched
	// after this call.
	raw := uint64(fn.Call(arg))

	dec := object.NewDecoder(rt, rt)
	var result any
	var decErr error
	switch shape {
	case ShapeU32:
		result, decErr = dec.DecodeScalar32(raw)
	case ShapeU64:
		result, decErr = dec.DecodeScalar64(raw)
	case ShapeArray:
		result, decErr = dec.DecodeArray32(uintptr(raw))
	case ShapeFlexible:
		result, decErr = dec.DecodeFlexible(raw)
	default:
		return nil, errors.InvalidInput(errors.PhaseInvoke, "unknown call shape")
	}
	if decErr != nil {
		// Stamp the export symbol onto decode errors for diagnostics.
		if e, ok := decErr.(*errors.Error); ok && e.Symbol == "" {
			e.Symbol = symbol
		}
		return nil, decErr
	}
	return result, nil
}

// CallArrayToU32 calls an (Array UInt32) -> UInt32 export.
func CallArrayToU32(lib lean2go.Library, rt lean2go.Runtime, symbol string, values []uint32, binDir string) (uint32, error) {
	v, err := Invoke(lib, rt, symbol, values, binDir, ShapeU32)
	if err != nil {
		return 0, err
	}
	return v.(uint32), nil
}

// CallArrayToU64 calls an (Array UInt32) -> UInt64 export.
func CallArrayToU64(lib lean2go.Library, rt lean2go.Runtime, symbol string, values []uint32, binDir string) (uint64, error) {
	v, err := Invoke(lib, rt, symbol, values, binDir, ShapeU64)
	if err != nil {
		return 0, err
	}
	return v.(uint64), nil
}

// CallArrayToArray calls an (Array UInt32) -> Array UInt32 export.
func CallArrayToArray(lib lean2go.Library, rt lean2go.Runtime, symbol string, values []uint32, binDir string) ([]uint32, error) {
	v, err := Invoke(lib, rt, symbol, values, binDir, ShapeArray)
	if err != nil {
		return nil, err
	}
	return v.([]uint32), nil
}

// CallArrayFlexible calls an export whose result type is unknown to the
// binding layer. The result is a uint64 or a []uint32.
func CallArrayFlexible(lib lean2go.Library, rt lean2go.Runtime, symbol string, values []uint32, binDir string) (any, error) {
	return Invoke(lib, rt, symbol, values, binDir, ShapeFlexible)
}
