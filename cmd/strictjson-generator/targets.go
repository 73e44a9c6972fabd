package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"strictjson-generator/internal/analyze"
	"strictjson-generator/internal/common"
	"strictjson-generator/internal/config"
	"strictjson-generator/internal/diagnostic"
	"strictjson-generator/internal/schema"
)

// sourceOptions select where schemas come from: Go packages named on the
// command line, or a config file.
type sourceOptions struct {
	configPath string
	patterns   []string
	types      []string
	out        string
	filename   string
}

func (o *sourceOptions) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.configPath, "config", "c", "",
		"config file (default "+config.DefaultFilename+" when no --pkg is given)")
	cmd.Flags().StringSliceVarP(&o.patterns, "pkg", "p", nil, "Go package pattern to extract records from")
	cmd.Flags().StringSliceVarP(&o.types, "type", "t", nil, "record type to extract (default every exported struct)")
	cmd.Flags().StringVarP(&o.out, "out", "o", "", "output directory (default the package directory)")
	cmd.Flags().StringVar(&o.filename, "filename", "", "generated file name (default <package>_strictjson.go)")
}

// target is one generated file: a schema set and where it goes.
type target struct {
	set      *schema.Set
	output   string
	filename string
	imports  map[string]string
}

// sources is the resolved input of one invocation.
type sources struct {
	targets       []target
	runtimeImport string
	comments      bool
	helpers       bool
}

// resolve loads the schemas selected by o. Diagnostics describe problems
// with individual records; the error is reserved for unusable input.
func (o *sourceOptions) resolve(log *logrus.Entry) (*sources, diagnostic.Diagnostics, error) {
	if len(o.patterns) > 0 {
		return o.resolvePackages(log)
	}

	path := o.configPath
	if path == "" {
		path = config.DefaultFilename
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			return nil, diagnostic.Diagnostics{}, fmt.Errorf("no --pkg given and no %s found", path)
		}
	}

	return resolveConfig(path, log)
}

func (o *sourceOptions) resolvePackages(log *logrus.Entry) (*sources, diagnostic.Diagnostics, error) {
	src := &sources{runtimeImport: common.RuntimeImport, comments: true, helpers: true}

	pkgs, diags, err := analyze.NewAnalyzer(analyze.DefaultConfig(), log).LoadPackages(o.patterns, o.types...)
	if err != nil {
		return nil, diags, err
	}

	for _, p := range pkgs {
		src.targets = append(src.targets, target{
			set:      p.Set,
			output:   firstNonEmpty(o.out, p.Dir),
			filename: o.filename,
			imports:  p.Imports,
		})
	}

	return src, diags, nil
}

// resolveConfig loads a config file. Patterns and output directories are
// relative to the directory of the file.
func resolveConfig(path string, log *logrus.Entry) (*sources, diagnostic.Diagnostics, error) {
	f, err := config.LoadFile(path)
	if err != nil {
		return nil, diagnostic.Diagnostics{}, err
	}

	diags := *config.Validate(f)
	if diags.HasErrors() {
		return &sources{}, diags, nil
	}

	base := filepath.Dir(path)
	src := &sources{
		runtimeImport: f.RuntimeImport,
		comments:      *f.Comments,
		helpers:       *f.UnmarshalHelpers,
	}

	analyzer := analyze.NewAnalyzer(analyze.Config{RuntimeImport: f.RuntimeImport, Dir: base}, log)

	for _, pc := range f.Packages {
		if pc.Types.IsEmpty() {
			log.WithField("pattern", pc.Pattern).Debug("extracting every exported struct")
		}

		pkgs, pd, err := analyzer.LoadPackages([]string{pc.Pattern}, pc.Types...)
		diags.Merge(pd)

		if err != nil {
			return nil, diags, err
		}

		for _, p := range pkgs {
			out := p.Dir
			if pc.Output != "" {
				out = relativeTo(base, pc.Output)
			}

			src.targets = append(src.targets, target{
				set:      p.Set,
				output:   out,
				filename: pc.Filename,
				imports:  p.Imports,
			})
		}
	}

	inline, err := f.InlineTargets()
	if err != nil {
		return nil, diags, err
	}

	for _, it := range inline {
		src.targets = append(src.targets, target{
			set:      it.Set,
			output:   relativeTo(base, it.Output),
			filename: it.Filename,
		})
	}

	log.WithFields(logrus.Fields{
		"config":  path,
		"targets": len(src.targets),
	}).Debug("loaded config")

	return src, diags, nil
}

func relativeTo(base, path string) string {
	if filepath.IsAbs(path) {
		return path
	}

	return filepath.Join(base, path)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
