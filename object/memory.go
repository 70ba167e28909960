package object

import (
	"encoding/binary"
	"unsafe"

	"github.com/lean2go/lean2go/errors"
)

// NativeMemory reads and writes process memory at raw addresses. It is the
// only place in the module that dereferences foreign pointers; everything
// else goes through the lean2go.Memory interface.
type NativeMemory struct{}

func (NativeMemory) Read(addr uintptr, length uintptr) ([]byte, error) {
	if addr == 0 {
		return nil, errors.InvalidInput(errors.PhaseDecode, "read at null address")
	}
	if length == 0 {
		return nil, nil
	}
	out := make([]byte, length)
	copy(out, unsafe.Slice((*byte)(unsafe.Pointer(addr)), length))
	return out, nil
}

func (NativeMemory) Write(addr uintptr, data []byte) error {
	if addr == 0 {
		return errors.InvalidInput(errors.PhaseEncode, "write at null address")
	}
	copy(unsafe.Slice((*byte)(unsafe.Pointer(addr)), len(data)), data)
	return nil
}

func (NativeMemory) ReadU8(addr uintptr) (uint8, error) {
	if addr == 0 {
		return 0, errors.InvalidInput(errors.PhaseDecode, "read at null address")
	}
	return *(*uint8)(unsafe.Pointer(addr)), nil
}

func (NativeMemory) ReadU64(addr uintptr) (uint64, error) {
	if addr == 0 {
		return 0, errors.InvalidInput(errors.PhaseDecode, "read at null address")
	}
	b := unsafe.Slice((*byte)(unsafe.Pointer(addr)), 8)
	return binary.LittleEndian.Uint64(b), nil
}

func (NativeMemory) WriteU32(addr uintptr, value uint32) error {
	if addr == 0 {
		return errors.InvalidInput(errors.PhaseEncode, "write at null address")
	}
	binary.LittleEndian.PutUint32(unsafe.Slice((*byte)(unsafe.Pointer(addr)), 4), value)
	return nil
}

func (NativeMemory) WriteU64(addr uintptr, value uint64) error {
	if addr == 0 {
		return errors.InvalidInput(errors.PhaseEncode, "write at null address")
	}
	binary.LittleEndian.PutUint64(unsafe.Slice((*byte)(unsafe.Pointer(addr)), 8), value)
	return nil
}
