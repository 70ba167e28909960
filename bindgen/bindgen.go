// Package bindgen emits Go source wrapping compiled Lean exports.
//
// The generated file is self-contained: it lazily opens the export library
// (honoring the LEAN2GO_LIB override), locates the Lean runtime through the
// LEAN2GO_LEAN_BIN override or the recorded toolchain bin directory, and
// exposes one Go function per Lean export built on the flexible call shape.
package bindgen

import (
	"bytes"
	"go/format"
	"os"
	"strings"
	"text/template"

	"github.com/lean2go/lean2go/errors"
	"github.com/lean2go/lean2go/exports"
)

// Environment overrides read by generated bindings.
const (
	EnvLib     = "LEAN2GO_LIB"
	EnvLeanBin = "LEAN2GO_LEAN_BIN"
)

// Options configures generation.
type Options struct {
	Package    string // package clause of the generated file
	LibPath    string // default shared-library path baked into the file
	LeanBinDir string // default Lean toolchain bin dir (may be empty)
}

type binding struct {
	GoName string
	Symbol string
}

type templateData struct {
	Package    string
	LibPath    string
	LeanBinDir string
	EnvLib     string
	EnvLeanBin string
	Bindings   []binding
}

// Generate renders gofmt-formatted binding source for the given exports.
func Generate(exp []exports.Export, opts Options) ([]byte, error) {
	if len(exp) == 0 {
		return nil, errors.InvalidInput(errors.PhaseGenerate, "no exports to bind")
	}
	if opts.Package == "" {
		opts.Package = "leanexport"
	}

	data := templateData{
		Package:    opts.Package,
		LibPath:    opts.LibPath,
		LeanBinDir: opts.LeanBinDir,
		EnvLib:     EnvLib,
		EnvLeanBin: EnvLeanBin,
	}
	used := make(map[string]bool, len(exp))
	for _, e := range exp {
		name := goName(e.Symbol)
		for used[name] {
			name += "_"
		}
		used[name] = true
		data.Bindings = append(data.Bindings, binding{GoName: name, Symbol: e.Symbol})
	}

	var buf bytes.Buffer
	if err := bindingsTemplate.Execute(&buf, data); err != nil {
		return nil, errors.Wrap(errors.PhaseGenerate, errors.KindInvalidInput, err, "render bindings")
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, errors.Wrap(errors.PhaseGenerate, errors.KindInvalidInput, err, "format bindings")
	}
	return src, nil
}

// WriteFile generates bindings and writes them to path.
func WriteFile(path string, exp []exports.Export, opts Options) error {
	src, err := Generate(exp, opts)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, src, 0o644); err != nil {
		return errors.Wrap(errors.PhaseGenerate, errors.KindInvalidInput, err, "write "+path)
	}
	return nil
}

// goName converts a C symbol to an exported Go identifier: my_add -> MyAdd.
func goName(symbol string) string {
	var b strings.Builder
	upper := true
	for _, r := range symbol {
		switch {
		case r == '_':
			upper = true
		case upper:
			b.WriteString(strings.ToUpper(string(r)))
			upper = false
		default:
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "Export"
	}
	name := b.String()
	if name[0] >= '0' && name[0] <= '9' {
		name = "X" + name
	}
	return name
}

var bindingsTemplate = template.Must(template.New("bindings").Parse(`// Code generated by lean2go. DO NOT EDIT.

package {{.Package}}

import (
	"os"
	"sync"

	"github.com/lean2go/lean2go/invoke"
	"github.com/lean2go/lean2go/runtime"
)

const (
	defaultLibPath = {{printf "%q" .LibPath}}
	defaultLeanBin = {{printf "%q" .LeanBinDir}}
)

var (
	libOnce sync.Once
	lib     *runtime.SharedLibrary
	libErr  error
)

func library() (*runtime.SharedLibrary, error) {
	libOnce.Do(func() {
		path := os.Getenv({{printf "%q" .EnvLib}})
		if path == "" {
			path = defaultLibPath
		}
		lib, libErr = runtime.Open(path)
	})
	return lib, libErr
}

func leanBinDir() string {
	if dir := os.Getenv({{printf "%q" .EnvLeanBin}}); dir != "" {
		return dir
	}
	return defaultLeanBin
}
{{range .Bindings}}
// {{.GoName}} calls the Lean export {{printf "%q" .Symbol}} with an
// Array UInt32 argument. The result is a uint64 or a []uint32.
func {{.GoName}}(values []uint32) (any, error) {
	l, err := library()
	if err != nil {
		return nil, err
	}
	return invoke.CallArrayFlexible(l, nil, {{printf "%q" .Symbol}}, values, leanBinDir())
}
{{end}}`))
