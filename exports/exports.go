// Package exports discovers @[export] definitions in Lean 4 source.
//
// Lean attaches a C symbol to a definition with @[export "name"] or
// @[export name]; the compiled shared library exposes that symbol with the
// boundary calling convention the invoke package expects. This package only
// scans source text; it does not inspect binaries.
package exports

import (
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/lean2go/lean2go/errors"
)

// Export is one exported symbol found in Lean source.
type Export struct {
	Symbol   string // C symbol from the attribute
	LeanName string // the def it is attached to
}

// Matches @[export "my_add"] or @[export my_add], optionally followed by
// further attribute blocks, then the def it annotates.
var exportAttr = regexp.MustCompile(
	`@\s*\[\s*export\s+(?:"([^"]+)"|(\w+))\s*\]\s*(?:\[[^\]]*\]\s*)*def\s+(\w+)`)

// Parse finds all @[export ...] defs in src, in source order.
func Parse(src string) []Export {
	var out []Export
	for _, m := range exportAttr.FindAllStringSubmatch(src, -1) {
		symbol := m[1]
		if symbol == "" {
			symbol = m[2]
		}
		leanName := m[3]
		if symbol != "" && leanName != "" {
			out = append(out, Export{Symbol: symbol, LeanName: leanName})
		}
	}
	return out
}

// ParseFile parses a single .lean file.
func ParseFile(path string) ([]Export, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseParse, errors.KindNotFound, err, "read "+path)
	}
	return Parse(string(data)), nil
}

// ScanProject collects exports from every .lean file under dir, skipping
// lakefiles. Duplicate symbols keep their first occurrence.
func ScanProject(dir string) ([]Export, error) {
	var all []Export
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ".lean" {
			return nil
		}
		if strings.HasPrefix(d.Name(), "lakefile") {
			return nil
		}
		found, err := ParseFile(path)
		if err != nil {
			return err
		}
		all = append(all, found...)
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(errors.PhaseParse, errors.KindInvalidInput, err, "scan "+dir)
	}
	return Dedupe(all), nil
}

// Dedupe drops exports whose symbol was already seen.
func Dedupe(exports []Export) []Export {
	seen := make(map[string]struct{}, len(exports))
	out := make([]Export, 0, len(exports))
	for _, e := range exports {
		if _, ok := seen[e.Symbol]; ok {
			continue
		}
		seen[e.Symbol] = struct{}{}
		out = append(out, e)
	}
	return out
}
