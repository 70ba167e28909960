package object

import (
	"unsafe"
)

// arena satisfies lean2go.Runtime for tests: allocations come from the Go
// heap (the real NativeMemory reads them through their actual addresses)
// and releases are counted per pointer so exactly-once can be asserted.
type arena struct {
	NativeMemory

	bufs     [][]byte
	allocs   int
	releases map[uintptr]int
	failNext bool
}

func newArena() *arena {
	return &arena{releases: make(map[uintptr]int)}
}

func (a *arena) AllocObject(size uintptr) (uintptr, error) {
	if a.failNext {
		a.failNext = false
		return 0, nil
	}
	if size == 0 {
		size = 1
	}
	buf := make([]byte, size)
	a.bufs = append(a.bufs, buf)
	a.allocs++
	return uintptr(unsafe.Pointer(&buf[0])), nil
}

func (a *arena) DecRef(ptr uintptr) {
	a.releases[ptr]++
}

// releaseCount returns how many times ptr was released.
func (a *arena) releaseCount(ptr uintptr) int {
	return a.releases[ptr]
}

// totalReleases sums releases across all pointers.
func (a *arena) totalReleases() int {
	n := 0
	for _, c := range a.releases {
		n += c
	}
	return n
}

// newBoxedU64 lays out a boxed scalar: header then an 8-byte payload.
func (a *arena) newBoxedU64(tag uint8, payload uint64) uintptr {
	ptr, _ := a.AllocObject(HeaderSize + 8)
	a.WriteU32(ptr, 1)
	a.WriteU32(ptr+4, uint32(tag)<<24)
	a.WriteU64(ptr+HeaderSize, payload)
	return ptr
}
