package runtime

import (
	"github.com/ebitengine/purego"

	lean2go "github.com/lean2go/lean2go"
	"github.com/lean2go/lean2go/errors"
)

// SharedLibrary is a loaded native shared library. Handles are process-wide
// and safe to reuse across calls.
type SharedLibrary struct {
	path   string
	handle uintptr
}

// Open loads the shared library at path.
func Open(path string) (*SharedLibrary, error) {
	handle, err := openLibrary(path)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseInvoke, errors.KindNotFound, err, "load library "+path)
	}
	return &SharedLibrary{path: path, handle: handle}, nil
}

// Path returns the file the library was loaded from.
func (l *SharedLibrary) Path() string {
	return l.path
}

// Symbol resolves an export by name.
func (l *SharedLibrary) Symbol(name string) (lean2go.Function, error) {
	addr, err := resolveSymbol(l.handle, name)
	if err != nil || addr == 0 {
		return nil, errors.SymbolNotFound(name)
	}
	return fnHandle(addr), nil
}

// fnHandle is a resolved export with the fixed boundary signature: one
// word-sized argument, one word-sized result.
type fnHandle uintptr

func (f fnHandle) Call(arg uintptr) uintptr {
	r1, _, _ := purego.SyscallN(uintptr(f), arg)
	return r1
}

var _ lean2go.Library = (*SharedLibrary)(nil)
