// Package build drives the Lean toolchain: lake builds, shared-library
// production, and toolchain discovery. The marshalling core never invokes
// any of this; it only consumes the resulting paths.
package build

import (
	"context"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	goruntime "runtime"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/lean2go/lean2go/errors"
)

const (
	printPrefixTimeout = 10 * time.Second
	lakeBuildTimeout   = 5 * time.Minute
	leancLinkTimeout   = 2 * time.Minute
)

// SharedLibExt returns the platform's shared-library file extension.
func SharedLibExt() string {
	switch goruntime.GOOS {
	case "windows":
		return ".dll"
	case "darwin":
		return ".dylib"
	default:
		return ".so"
	}
}

// LeanBinDir returns the Lean toolchain bin directory, where the runtime
// shared libraries live. Empty when the toolchain is not on PATH.
func LeanBinDir(ctx context.Context, projectDir string) string {
	ctx, cancel := context.WithTimeout(ctx, printPrefixTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "lean", "--print-prefix")
	cmd.Dir = projectDir
	out, err := cmd.Output()
	if err != nil {
		Logger().Debug("lean --print-prefix failed", zap.Error(err))
		return ""
	}
	prefix := strings.TrimSpace(string(out))
	if prefix == "" {
		return ""
	}
	return filepath.Join(prefix, "bin")
}

// HasLakefile reports whether dir contains a Lake project definition.
func HasLakefile(dir string) bool {
	for _, name := range []string{"lakefile.lean", "lakefile.toml"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
			return true
		}
	}
	return false
}

// Project runs lake build in projectDir.
func Project(ctx context.Context, projectDir string) error {
	if !HasLakefile(projectDir) {
		return errors.InvalidInput(errors.PhaseBuild, "no lakefile.lean or lakefile.toml in "+projectDir)
	}
	ctx, cancel := context.WithTimeout(ctx, lakeBuildTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "lake", "build")
	cmd.Dir = projectDir
	if out, err := cmd.CombinedOutput(); err != nil {
		Logger().Debug("lake build failed", zap.ByteString("output", out))
		return errors.BuildFailed("lake build", err)
	}
	return nil
}

// EnsureSharedLib produces a loadable shared library after lake build and
// returns its path. It tries, in order: the lake :shared facet, an already
// built library under build/, and linking the emitted IR C files with
// leanc -shared. The result is copied to out_dir as lib<Name><ext> so
// generated bindings find it by a stable name.
func EnsureSharedLib(ctx context.Context, projectDir, libName, outDir string) (string, error) {
	ext := SharedLibExt()
	if outDir == "" {
		outDir = projectDir
	}
	outLib := filepath.Join(outDir, "lib"+libName+ext)

	// 1. Shared facet: lake puts the library somewhere under .lake/build.
	if err := buildSharedFacet(ctx, projectDir, libName); err != nil {
		Logger().Debug("shared facet build failed", zap.Error(err))
	}
	if found := findBuiltLib(projectDir, libName, ext); found != "" {
		if sameFile(found, outLib) {
			return found, nil
		}
		if err := copyFile(found, outLib); err != nil {
			return "", errors.BuildFailed("copy shared library", err)
		}
		return outLib, nil
	}

	// 2. Already built under the expected name?
	for _, buildDir := range buildDirs(projectDir) {
		for _, name := range []string{"lib" + libName + ext, libName + ext} {
			p := filepath.Join(buildDir, name)
			if _, err := os.Stat(p); err != nil {
				continue
			}
			if !sameFile(p, outLib) {
				if err := copyFile(p, outLib); err != nil {
					return "", errors.BuildFailed("copy shared library", err)
				}
			}
			return outLib, nil
		}
	}

	// 3. Link the IR C output ourselves.
	if err := linkFromIR(ctx, projectDir, outLib); err != nil {
		return "", err
	}
	return outLib, nil
}

func buildSharedFacet(ctx context.Context, projectDir, libName string) error {
	ctx, cancel := context.WithTimeout(ctx, lakeBuildTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "lake", "build", libName+":shared")
	cmd.Dir = projectDir
	if out, err := cmd.CombinedOutput(); err != nil {
		Logger().Debug("lake shared facet", zap.ByteString("output", out))
		return errors.BuildFailed("lake build "+libName+":shared", err)
	}
	return nil
}

func buildDirs(projectDir string) []string {
	return []string{
		filepath.Join(projectDir, "build"),
		filepath.Join(projectDir, ".lake", "build"),
	}
}

// findBuiltLib searches lake build output for a shared library whose stem
// contains libName (lake names these <pkg>_<lib><ext>).
func findBuiltLib(projectDir, libName, ext string) string {
	want := strings.ToLower(libName)
	for _, base := range buildDirs(projectDir) {
		var found string
		filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() || found != "" {
				return nil
			}
			if filepath.Ext(path) != ext {
				return nil
			}
			stem := strings.TrimSuffix(d.Name(), ext)
			if strings.Contains(strings.ToLower(stem), want) {
				found = path
			}
			return nil
		})
		if found != "" {
			return found
		}
	}
	return ""
}

// irCFiles finds the C files lake build emitted under build/ir, possibly in
// subdirectories, sorted for a deterministic link line.
func irCFiles(projectDir string) []string {
	var out []string
	for _, base := range buildDirs(projectDir) {
		dir := filepath.Join(base, "ir")
		filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return nil
			}
			if filepath.Ext(path) == ".c" {
				out = append(out, path)
			}
			return nil
		})
	}
	sort.Strings(out)
	return out
}

func linkFromIR(ctx context.Context, projectDir, outLib string) error {
	cFiles := irCFiles(projectDir)
	if len(cFiles) == 0 {
		return errors.BuildFailed("no IR C files under build/ir", nil)
	}

	ctx, cancel := context.WithTimeout(ctx, leancLinkTimeout)
	defer cancel()

	args := append([]string{"env", "leanc", "-shared", "-o", outLib}, cFiles...)
	cmd := exec.CommandContext(ctx, "lake", args...)
	cmd.Dir = projectDir
	if out, err := cmd.CombinedOutput(); err != nil {
		Logger().Debug("leanc -shared failed", zap.ByteString("output", out))
		return errors.BuildFailed("lake env leanc -shared", err)
	}
	if _, err := os.Stat(outLib); err != nil {
		return errors.BuildFailed("leanc produced no output", err)
	}
	return nil
}

func sameFile(a, b string) bool {
	ra, err := filepath.Abs(a)
	if err != nil {
		return false
	}
	rb, err := filepath.Abs(b)
	if err != nil {
		return false
	}
	return ra == rb
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
