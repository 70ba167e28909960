package manifest

import (
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `
[project]
lib-name = "MathTools"
mathlib = true

[bindings]
name = "math_tools"
package = "mathtools"
out-dir = "gen"
`)

	m, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if m.Project.LibName != "MathTools" {
		t.Errorf("LibName = %q", m.Project.LibName)
	}
	if !m.Project.Mathlib {
		t.Error("Mathlib not set")
	}
	if m.Bindings.Name != "math_tools" || m.Bindings.Package != "mathtools" || m.Bindings.OutDir != "gen" {
		t.Errorf("Bindings = %+v", m.Bindings)
	}
	wantDir, _ := filepath.Abs(dir)
	if m.Dir != wantDir {
		t.Errorf("Dir = %q, want %q", m.Dir, wantDir)
	}
}

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "")

	m, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if m.Project.LibName != "LeanExport" {
		t.Errorf("default LibName = %q", m.Project.LibName)
	}
	if m.Bindings.Name != "lean_export" {
		t.Errorf("default Bindings.Name = %q", m.Bindings.Name)
	}
	if m.Project.Mathlib {
		t.Error("Mathlib should default to false")
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(t.TempDir()); err == nil {
		t.Error("expected error for missing manifest")
	}
}

func TestLoadInvalidTOML(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "[project\nbroken")
	if _, err := Load(dir); err == nil {
		t.Error("expected parse error")
	}
}

func TestFindAndLoadWalksUp(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, `[project]
lib-name = "FromRoot"
`)
	nested := filepath.Join(root, "a", "b", "c")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	m, err := FindAndLoad(nested)
	if err != nil {
		t.Fatalf("FindAndLoad: %v", err)
	}
	if m == nil {
		t.Fatal("manifest not found from nested dir")
	}
	if m.Project.LibName != "FromRoot" {
		t.Errorf("LibName = %q", m.Project.LibName)
	}
	wantDir, _ := filepath.Abs(root)
	if m.Dir != wantDir {
		t.Errorf("Dir = %q, want %q", m.Dir, wantDir)
	}
}

func TestFindAndLoadAbsent(t *testing.T) {
	m, err := FindAndLoad(t.TempDir())
	if err != nil {
		t.Fatalf("FindAndLoad: %v", err)
	}
	if m != nil {
		t.Errorf("expected nil manifest, got %+v", m)
	}
}
