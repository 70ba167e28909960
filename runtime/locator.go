package runtime

import (
	"os"
	"path/filepath"
	goruntime "runtime"

	"go.uber.org/zap"

	"github.com/lean2go/lean2go/errors"
)

// Symbols resolved in the loaded runtime.
const (
	symAllocObject = "lean_alloc_object"
	symDecRef      = "lean_dec_ref_cold"
)

// CandidateNames returns the runtime shared-library file names for the
// current platform, in load-priority order.
func CandidateNames() []string {
	stems := []string{"libInit_shared", "libleanshared", "libleanshared_2"}
	var ext string
	switch goruntime.GOOS {
	case "windows":
		ext = ".dll"
	case "darwin":
		ext = ".dylib"
	default:
		ext = ".so"
	}
	names := make([]string, len(stems))
	for i, stem := range stems {
		names[i] = stem + ext
	}
	return names
}

// Locate loads the Lean runtime from a toolchain bin directory. It tries
// the platform candidates in order and returns the first that loads and
// exports the allocator; a missing directory, no candidates, or all loads
// failing yields a runtime-unavailable error.
func Locate(binDir string) (*Runtime, error) {
	if binDir == "" {
		return nil, errors.RuntimeUnavailable("")
	}
	info, err := os.Stat(binDir)
	if err != nil || !info.IsDir() {
		return nil, errors.RuntimeUnavailable(binDir)
	}

	for _, name := range CandidateNames() {
		path := filepath.Join(binDir, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		handle, err := openLibrary(path)
		if err != nil {
			Logger().Debug("runtime candidate failed to load",
				zap.String("path", path), zap.Error(err))
			continue
		}
		rt, err := fromLibrary(&SharedLibrary{path: path, handle: handle})
		if err != nil {
			Logger().Debug("runtime candidate missing allocator",
				zap.String("path", path), zap.Error(err))
			continue
		}
		Logger().Debug("lean runtime loaded", zap.String("path", path))
		return rt, nil
	}
	return nil, errors.RuntimeUnavailable(binDir)
}
