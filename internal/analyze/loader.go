package analyze

import (
	"bytes"
	"errors"
	"fmt"
	"go/ast"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"golang.org/x/tools/go/packages"

	"strictjson-generator/internal/common"
	"strictjson-generator/internal/diagnostic"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Config holds configuration for extraction.
type Config struct {
	// RuntimeImport is the import path of the package declaring Felt252.
	RuntimeImport string
	// Dir is the directory patterns are resolved in. Empty uses the
	// current directory.
	Dir string
}

// DefaultConfig returns the default extraction configuration.
func DefaultConfig() Config {
	return Config{RuntimeImport: common.RuntimeImport}
}

// Analyzer loads Go packages and extracts record schemas.
type Analyzer struct {
	config Config
	log    *logrus.Entry
}

// NewAnalyzer creates a new Analyzer. A nil log uses the standard logger.
func NewAnalyzer(config Config, log *logrus.Entry) *Analyzer {
	if config.RuntimeImport == "" {
		config.RuntimeImport = common.RuntimeImport
	}

	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}

	return &Analyzer{config: config, log: log.WithField("component", "analyze")}
}

// LoadPackages loads the packages matching patterns and extracts the
// schemas of typeNames from each of them. No typeNames selects every
// exported struct type that is not declared in a generated file. Struct
// types of the same package nested by a selected record are always
// extracted.
//
// Patterns are standard Go package patterns (e.g., "./examples/accounts").
// Problems with individual records are reported as diagnostics; the error
// is reserved for packages that fail to load.
//
// Files written by the generator are loaded as empty files, so a stale
// deserializer referring to a renamed field does not stop regeneration.
func (a *Analyzer) LoadPackages(patterns []string, typeNames ...string) ([]*Package, diagnostic.Diagnostics, error) {
	overlay, err := a.generatedOverlay(patterns)
	if err != nil {
		return nil, diagnostic.Diagnostics{}, err
	}

	cfg := &packages.Config{
		Mode:    LoadMode,
		Dir:     a.config.Dir,
		Overlay: overlay,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, diagnostic.Diagnostics{}, fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors
	var errs []error

	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}

	if len(errs) > 0 {
		return nil, diagnostic.Diagnostics{}, fmt.Errorf("package errors: %w", errors.Join(errs...))
	}

	var (
		out   []*Package
		diags diagnostic.Diagnostics
	)

	for _, pkg := range pkgs {
		p, pd, err := a.processPackage(pkg, typeNames)
		if err != nil {
			return nil, diags, fmt.Errorf("failed to process package %s: %w", pkg.PkgPath, err)
		}

		diags.Merge(pd)
		out = append(out, p)

		a.log.WithFields(logrus.Fields{
			"package": pkg.PkgPath,
			"types":   len(p.Set.Names()),
		}).Debug("extracted schemas")
	}

	return out, diags, nil
}

// generatedOverlay lists the files of the matched packages that start with
// the generator's header and maps each to a file holding only that header
// and the package clause.
func (a *Analyzer) generatedOverlay(patterns []string) (map[string][]byte, error) {
	pkgs, err := packages.Load(&packages.Config{
		Mode: packages.NeedName | packages.NeedFiles,
		Dir:  a.config.Dir,
	}, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to list package files: %w", err)
	}

	overlay := make(map[string][]byte)

	for _, pkg := range pkgs {
		for _, file := range pkg.GoFiles {
			content, err := os.ReadFile(file)
			if err != nil {
				return nil, fmt.Errorf("reading %s: %w", file, err)
			}

			if !bytes.HasPrefix(content, []byte(common.GeneratedHeader)) {
				continue
			}

			overlay[file] = fmt.Appendf(nil, "%s\n\npackage %s\n", common.GeneratedHeader, pkg.Name)

			a.log.WithField("file", file).Debug("ignoring previously generated file")
		}
	}

	return overlay, nil
}

// processPackage extracts the schemas of a loaded package.
func (a *Analyzer) processPackage(pkg *packages.Package, typeNames []string) (*Package, diagnostic.Diagnostics, error) {
	generated := make(map[string]bool)

	for _, f := range pkg.Syntax {
		if ast.IsGenerated(f) {
			generated[pkg.Fset.File(f.Pos()).Name()] = true
		}
	}

	e := newExtractor(pkg.Types, pkg.Fset, a.config.RuntimeImport, generated)

	set, err := e.extract(typeNames)
	if err != nil {
		return nil, e.diags, err
	}

	p := &Package{
		Path:    pkg.PkgPath,
		Name:    pkg.Name,
		Imports: e.imports,
		Set:     set,
	}

	if len(pkg.GoFiles) > 0 {
		p.Dir = filepath.Dir(pkg.GoFiles[0])
	}

	return p, e.diags, nil
}
