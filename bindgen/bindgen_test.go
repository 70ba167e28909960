package bindgen

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lean2go/lean2go/errors"
	"github.com/lean2go/lean2go/exports"
)

func TestGoName(t *testing.T) {
	tests := []struct {
		symbol string
		want   string
	}{
		{"my_add", "MyAdd"},
		{"sum", "Sum"},
		{"my_long_symbol_name", "MyLongSymbolName"},
		{"alreadyCamel", "AlreadyCamel"},
		{"_leading", "Leading"},
		{"trailing_", "Trailing"},
		{"double__under", "DoubleUnder"},
		{"42nd", "X42nd"},
		{"_", "Export"},
	}
	for _, tt := range tests {
		if got := goName(tt.symbol); got != tt.want {
			t.Errorf("goName(%q) = %q, want %q", tt.symbol, got, tt.want)
		}
	}
}

func TestGenerate(t *testing.T) {
	src, err := Generate([]exports.Export{
		{Symbol: "my_add", LeanName: "myAdd"},
		{Symbol: "my_sum", LeanName: "sum"},
	}, Options{
		Package:    "mathbind",
		LibPath:    "/tmp/libExports.so",
		LeanBinDir: "/opt/lean/bin",
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	out := string(src)
	for _, want := range []string{
		"package mathbind",
		"func MyAdd(values []uint32) (any, error)",
		"func MySum(values []uint32) (any, error)",
		`"my_add"`,
		`"my_sum"`,
		`defaultLibPath = "/tmp/libExports.so"`,
		`defaultLeanBin = "/opt/lean/bin"`,
		EnvLib,
		EnvLeanBin,
		"DO NOT EDIT",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("generated source missing %q", want)
		}
	}
}

func TestGenerateDefaultPackage(t *testing.T) {
	src, err := Generate([]exports.Export{{Symbol: "f", LeanName: "f"}}, Options{LibPath: "lib.so"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.Contains(string(src), "package leanexport") {
		t.Error("default package clause not applied")
	}
}

func TestGenerateNameCollision(t *testing.T) {
	src, err := Generate([]exports.Export{
		{Symbol: "my_add", LeanName: "a"},
		{Symbol: "myAdd", LeanName: "b"},
	}, Options{LibPath: "lib.so"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	out := string(src)
	if !strings.Contains(out, "func MyAdd(") || !strings.Contains(out, "func MyAdd_(") {
		t.Errorf("colliding symbols not disambiguated:\n%s", out)
	}
}

func TestGenerateNoExports(t *testing.T) {
	_, err := Generate(nil, Options{LibPath: "lib.so"})
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseGenerate, Kind: errors.KindInvalidInput}) {
		t.Errorf("expected invalid-input error, got %v", err)
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bindings.go")
	err := WriteFile(path, []exports.Export{{Symbol: "f", LeanName: "f"}}, Options{LibPath: "lib.so"})
	if err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "func F(") {
		t.Error("written file missing binding function")
	}
}
