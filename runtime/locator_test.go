package runtime

import (
	stderrors "errors"
	goruntime "runtime"
	"strings"
	"testing"

	"github.com/lean2go/lean2go/errors"
)

func TestCandidateNames(t *testing.T) {
	names := CandidateNames()
	if len(names) != 3 {
		t.Fatalf("got %d candidates, want 3", len(names))
	}

	var wantExt string
	switch goruntime.GOOS {
	case "windows":
		wantExt = ".dll"
	case "darwin":
		wantExt = ".dylib"
	default:
		wantExt = ".so"
	}

	wantStems := []string{"libInit_shared", "libleanshared", "libleanshared_2"}
	for i, name := range names {
		if !strings.HasSuffix(name, wantExt) {
			t.Errorf("candidate %q missing extension %q", name, wantExt)
		}
		if !strings.HasPrefix(name, wantStems[i]) {
			t.Errorf("candidate %d = %q, want stem %q", i, name, wantStems[i])
		}
	}
}

func TestLocateEmptyDir(t *testing.T) {
	_, err := Locate("")
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseLocate, Kind: errors.KindRuntimeUnavailable}) {
		t.Errorf("expected runtime-unavailable error, got %v", err)
	}
}

func TestLocateMissingDir(t *testing.T) {
	_, err := Locate("/nonexistent/lean/toolchain/bin")
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseLocate, Kind: errors.KindRuntimeUnavailable}) {
		t.Errorf("expected runtime-unavailable error, got %v", err)
	}
}

func TestLocateDirWithoutCandidates(t *testing.T) {
	_, err := Locate(t.TempDir())
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseLocate, Kind: errors.KindRuntimeUnavailable}) {
		t.Errorf("expected runtime-unavailable error, got %v", err)
	}
}

func TestLocateErrorMentionsOverride(t *testing.T) {
	_, err := Locate(t.TempDir())
	if err == nil || !strings.Contains(err.Error(), "LEAN2GO_LEAN_BIN") {
		t.Errorf("error should mention the override variable, got %v", err)
	}
}
