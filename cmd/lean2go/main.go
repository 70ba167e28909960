package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/lean2go/lean2go/build"
	"github.com/lean2go/lean2go/exports"
	"github.com/lean2go/lean2go/invoke"
	"github.com/lean2go/lean2go/manifest"
	"github.com/lean2go/lean2go/pipeline"
	"github.com/lean2go/lean2go/runtime"
)

func main() {
	var (
		outDir      = flag.String("out-dir", "", "Directory for generated files (default: beside the input)")
		bindings    = flag.String("bindings", "", "Generated Go file stem (default lean_export)")
		pkgName     = flag.String("package", "", "Package clause of the generated file")
		libName     = flag.String("lib", "", "Lake library name (default LeanExport)")
		mathlib     = flag.Bool("mathlib", false, "Single-file only: add Mathlib to the build")
		list        = flag.Bool("list", false, "List discovered @[export] defs and exit")
		verbose     = flag.Bool("v", false, "Verbose logging")
		interactive = flag.Bool("i", false, "Interactive mode with TUI (builds first)")
	)
	flag.Parse()

	input := flag.Arg(0)
	if input == "" {
		fmt.Fprintln(os.Stderr, "Usage: lean2go <file.lean | project-dir> [-out-dir DIR] [-bindings NAME]")
		fmt.Fprintln(os.Stderr, "       lean2go <file.lean | project-dir> -list")
		fmt.Fprintln(os.Stderr, "       lean2go <file.lean | project-dir> -i  (interactive mode)")
		os.Exit(1)
	}

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err == nil {
			runtime.SetLogger(logger)
			invoke.SetLogger(logger)
			build.SetLogger(logger)
			pipeline.SetLogger(logger)
		}
	}

	opts := optionsFor(input, *outDir, *bindings, *pkgName, *libName, *mathlib)

	if *list {
		if err := listExports(input); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode needs a terminal")
			os.Exit(1)
		}
		if err := runInteractive(input, opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(input, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// optionsFor layers flag values over an optional lean2go.toml found at or
// above the input.
func optionsFor(input, outDir, bindings, pkgName, libName string, mathlib bool) pipeline.Options {
	opts := pipeline.Options{
		OutDir:       outDir,
		BindingsName: bindings,
		Package:      pkgName,
		LibName:      libName,
		Mathlib:      mathlib,
	}

	start := input
	if info, err := os.Stat(input); err != nil || !info.IsDir() {
		start = filepath.Dir(input)
	}
	m, err := manifest.FindAndLoad(start)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return opts
	}
	if m == nil {
		return opts
	}

	if opts.OutDir == "" {
		opts.OutDir = m.Bindings.OutDir
	}
	if opts.BindingsName == "" {
		opts.BindingsName = m.Bindings.Name
	}
	if opts.Package == "" {
		opts.Package = m.Bindings.Package
	}
	if opts.LibName == "" {
		opts.LibName = m.Project.LibName
	}
	if !opts.Mathlib {
		opts.Mathlib = m.Project.Mathlib
	}
	return opts
}

func listExports(input string) error {
	found, err := discover(input)
	if err != nil {
		return err
	}
	fmt.Printf("Exports (%d):\n", len(found))
	for _, e := range found {
		fmt.Printf("  %s (def %s)\n", e.Symbol, e.LeanName)
	}
	return nil
}

func discover(input string) ([]exports.Export, error) {
	info, err := os.Stat(input)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return exports.ScanProject(input)
	}
	return exports.ParseFile(input)
}

func run(input string, opts pipeline.Options) error {
	result, err := pipeline.Run(context.Background(), input, opts)
	if err != nil {
		return err
	}

	fmt.Printf("Wrote: %s\n", result.GoPath)
	if result.LibPath == "" {
		fmt.Fprintln(os.Stderr, "Note: shared library not produced by lake. Build it and set LEAN2GO_LIB.")
	} else {
		fmt.Printf("Lib:   %s\n", result.LibPath)
	}
	fmt.Printf("Exports (%d):\n", len(result.Exports))
	for _, e := range result.Exports {
		fmt.Printf("  %s (def %s)\n", e.Symbol, e.LeanName)
	}
	return nil
}
