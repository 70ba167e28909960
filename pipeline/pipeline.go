// Package pipeline ties the collaborators together: Lean source in, shared
// library plus generated Go bindings out.
//
// A single .lean file is wrapped in a synthesized Lake project under
// .lean2go_build so the shared library can be produced and kept; a project
// directory is built in place. Bindings are still written when only the
// shared-library step fails, so the caller can build the library by other
// means and point LEAN2GO_LIB at it.
package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/lean2go/lean2go/bindgen"
	"github.com/lean2go/lean2go/build"
	"github.com/lean2go/lean2go/errors"
	"github.com/lean2go/lean2go/exports"
)

// BuildDirName is the synthesized project directory for single-file input.
const BuildDirName = ".lean2go_build"

const lakefileMinimal = `import Lake
open Lake DSL

package lean2go_export where
  precompileModules := true

lean_lib LeanExport where
  defaultFacets := #[LeanLib.sharedFacet]
`

const lakefileMathlib = `import Lake
open Lake DSL

require mathlib from git "https://github.com/leanprover-community/mathlib4.git"

package lean2go_export where
  precompileModules := true

lean_lib LeanExport where
  defaultFacets := #[LeanLib.sharedFacet]
`

// Options configures a pipeline run. Zero values pick the defaults.
type Options struct {
	OutDir       string // generated files directory; defaults beside the input
	LibName      string // Lake library name, default LeanExport
	BindingsName string // generated file stem, default lean_export
	Package      string // generated package clause, default leanexport
	Mathlib      bool   // single-file only: add Mathlib to the lakefile
}

func (o *Options) fill() {
	if o.LibName == "" {
		o.LibName = "LeanExport"
	}
	if o.BindingsName == "" {
		o.BindingsName = "lean_export"
	}
	if o.Package == "" {
		o.Package = strings.ReplaceAll(o.BindingsName, "_", "")
	}
}

// Result reports what a run produced.
type Result struct {
	LibPath string // empty when the shared library could not be produced
	GoPath  string
	Exports []exports.Export
}

// Run builds Lean source (a .lean file or a Lake project directory) and
// generates Go bindings for its @[export] definitions.
func Run(ctx context.Context, input string, opts Options) (*Result, error) {
	opts.fill()

	info, err := os.Stat(input)
	if err != nil {
		return nil, errors.NotFound(errors.PhaseBuild, "input", input)
	}
	if info.IsDir() {
		return runProject(ctx, input, opts)
	}
	return runFile(ctx, input, opts)
}

func runFile(ctx context.Context, leanFile string, opts Options) (*Result, error) {
	if filepath.Ext(leanFile) != ".lean" {
		return nil, errors.InvalidInput(errors.PhaseBuild, "input must be a .lean file or a project directory")
	}
	src, err := os.ReadFile(leanFile)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseBuild, errors.KindNotFound, err, "read "+leanFile)
	}
	found := exports.Parse(string(src))
	if len(found) == 0 {
		return nil, errors.InvalidInput(errors.PhaseParse, "no @[export ...] defs found in "+leanFile)
	}

	outDir := opts.OutDir
	if outDir == "" {
		outDir = filepath.Dir(leanFile)
	}

	// Persistent synthesized project so the shared library survives the run.
	project := filepath.Join(outDir, BuildDirName)
	if err := os.MkdirAll(project, 0o755); err != nil {
		return nil, errors.Wrap(errors.PhaseBuild, errors.KindBuildFailed, err, "create build dir")
	}
	lakefile := lakefileMinimal
	if opts.Mathlib {
		lakefile = lakefileMathlib
	}
	if err := os.WriteFile(filepath.Join(project, "lakefile.lean"), []byte(lakefile), 0o644); err != nil {
		return nil, errors.Wrap(errors.PhaseBuild, errors.KindBuildFailed, err, "write lakefile")
	}
	if err := os.WriteFile(filepath.Join(project, opts.LibName+".lean"), src, 0o644); err != nil {
		return nil, errors.Wrap(errors.PhaseBuild, errors.KindBuildFailed, err, "write source")
	}

	if err := build.Project(ctx, project); err != nil {
		return nil, err
	}
	return finish(ctx, project, outDir, found, opts)
}

func runProject(ctx context.Context, projectDir string, opts Options) (*Result, error) {
	found, err := exports.ScanProject(projectDir)
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, errors.InvalidInput(errors.PhaseParse, "no @[export ...] defs found under "+projectDir)
	}

	outDir := opts.OutDir
	if outDir == "" {
		outDir = projectDir
	}
	if err := build.Project(ctx, projectDir); err != nil {
		return nil, err
	}
	return finish(ctx, projectDir, outDir, found, opts)
}

func finish(ctx context.Context, projectDir, outDir string, found []exports.Export, opts Options) (*Result, error) {
	libPath, err := build.EnsureSharedLib(ctx, projectDir, opts.LibName, outDir)
	if err != nil {
		// Bindings are still useful: record the conventional name so
		// LEAN2GO_LIB or a later build can satisfy it.
		Logger().Warn("shared library not produced", zap.Error(err))
		libPath = ""
	}

	bindLib := libPath
	if bindLib == "" {
		bindLib = "./lib" + opts.LibName + build.SharedLibExt()
	}
	binDir := LeanBinDir(ctx, projectDir, libPath != "")

	goPath := filepath.Join(outDir, opts.BindingsName+".go")
	err = bindgen.WriteFile(goPath, found, bindgen.Options{
		Package:    opts.Package,
		LibPath:    bindLib,
		LeanBinDir: binDir,
	})
	if err != nil {
		return nil, err
	}

	return &Result{LibPath: libPath, GoPath: goPath, Exports: found}, nil
}

// LeanBinDir resolves the runtime-binaries directory hint baked into
// generated bindings: the LEAN2GO_LEAN_BIN override wins, then lean
// --print-prefix when a library was actually produced.
func LeanBinDir(ctx context.Context, projectDir string, haveLib bool) string {
	if dir := os.Getenv(bindgen.EnvLeanBin); dir != "" {
		return dir
	}
	if !haveLib {
		return ""
	}
	return build.LeanBinDir(ctx, projectDir)
}
