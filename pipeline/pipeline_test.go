package pipeline

import (
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/lean2go/lean2go/bindgen"
	"github.com/lean2go/lean2go/errors"
)

func TestRunMissingInput(t *testing.T) {
	_, err := Run(context.Background(), filepath.Join(t.TempDir(), "absent.lean"), Options{})
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseBuild, Kind: errors.KindNotFound}) {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestRunWrongExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "source.txt")
	if err := os.WriteFile(path, []byte("not lean"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Run(context.Background(), path, Options{})
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseBuild, Kind: errors.KindInvalidInput}) {
		t.Errorf("expected invalid-input error, got %v", err)
	}
}

func TestRunFileWithoutExports(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.lean")
	if err := os.WriteFile(path, []byte("def f : UInt32 := 0"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Run(context.Background(), path, Options{})
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseParse, Kind: errors.KindInvalidInput}) {
		t.Errorf("expected invalid-input error, got %v", err)
	}
}

func TestRunProjectWithoutExports(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "Main.lean"), []byte("def f : UInt32 := 0"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Run(context.Background(), dir, Options{})
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseParse, Kind: errors.KindInvalidInput}) {
		t.Errorf("expected invalid-input error, got %v", err)
	}
}

func TestOptionsFill(t *testing.T) {
	var o Options
	o.fill()
	if o.LibName != "LeanExport" || o.BindingsName != "lean_export" || o.Package != "leanexport" {
		t.Errorf("defaults = %+v", o)
	}

	o = Options{BindingsName: "my_math"}
	o.fill()
	if o.Package != "mymath" {
		t.Errorf("package derived from bindings name = %q, want mymath", o.Package)
	}

	o = Options{LibName: "Custom", BindingsName: "cb", Package: "explicit"}
	o.fill()
	if o.LibName != "Custom" || o.Package != "explicit" {
		t.Errorf("explicit options overridden: %+v", o)
	}
}

func TestLeanBinDirEnvOverride(t *testing.T) {
	t.Setenv(bindgen.EnvLeanBin, "/custom/lean/bin")
	if got := LeanBinDir(context.Background(), t.TempDir(), false); got != "/custom/lean/bin" {
		t.Errorf("env override ignored, got %q", got)
	}
}

func TestLeanBinDirNoLib(t *testing.T) {
	t.Setenv(bindgen.EnvLeanBin, "")
	if got := LeanBinDir(context.Background(), t.TempDir(), false); got != "" {
		t.Errorf("expected empty hint without a library, got %q", got)
	}
}
