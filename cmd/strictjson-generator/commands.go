package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"strictjson-generator/internal/diagnostic"
	"strictjson-generator/internal/gen"
	"strictjson-generator/internal/plan"
)

var errInvalidSchemas = errors.New("schemas have errors")

func newAnalyzeCmd(a *app) *cobra.Command {
	opts := &sourceOptions{}

	cmd := &cobra.Command{
		Use:   "analyze [pkg-pattern...]",
		Short: "`analyze` prints the schemas extracted from Go packages or a config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.patterns = append(opts.patterns, args...)

			src, diags, err := opts.resolve(a.log)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			for _, t := range src.targets {
				fmt.Fprintf(out, "package %s (%s)\n", t.set.Package(), t.output)

				for _, s := range t.set.Schemas() {
					fmt.Fprintf(out, "  %s\n", s)
				}
			}

			printDiagnostics(cmd.ErrOrStderr(), diags)

			return nil
		},
	}

	opts.addFlags(cmd)

	return cmd
}

func newPlanCmd(a *app) *cobra.Command {
	opts := &sourceOptions{}

	var dump bool

	cmd := &cobra.Command{
		Use:   "plan [pkg-pattern...]",
		Short: "`plan` prints the parse plans synthesized for the selected records",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.patterns = append(opts.patterns, args...)

			src, diags, err := opts.resolve(a.log)
			if err != nil {
				return err
			}

			plans, pd := synthesize(src, a.log)
			diags.Merge(pd)

			out := cmd.OutOrStdout()

			for _, sp := range plans {
				for _, p := range sp.Plans {
					if dump {
						spew.Fdump(out, p)
						continue
					}

					printPlan(out, p)
				}
			}

			printDiagnostics(cmd.ErrOrStderr(), diags)

			if diags.HasErrors() {
				return errInvalidSchemas
			}

			return nil
		},
	}

	opts.addFlags(cmd)
	cmd.Flags().BoolVar(&dump, "dump", false, "dump the full plan structure")

	return cmd
}

func newCheckCmd(a *app) *cobra.Command {
	opts := &sourceOptions{}

	cmd := &cobra.Command{
		Use:   "check [pkg-pattern...]",
		Short: "`check` validates the selected schemas and reports diagnostics",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.patterns = append(opts.patterns, args...)

			src, diags, err := opts.resolve(a.log)
			if err != nil {
				return err
			}

			plans, pd := synthesize(src, a.log)
			diags.Merge(pd)

			printDiagnostics(cmd.OutOrStdout(), diags)

			if diags.HasErrors() {
				return errInvalidSchemas
			}

			records := 0
			for _, sp := range plans {
				records += len(sp.Plans)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d records in %d packages\n", records, len(plans))

			return nil
		},
	}

	opts.addFlags(cmd)

	return cmd
}

func newGenCmd(a *app) *cobra.Command {
	opts := &sourceOptions{}

	cmd := &cobra.Command{
		Use:   "gen [pkg-pattern...]",
		Short: "`gen` writes the deserializers of the selected records",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.patterns = append(opts.patterns, args...)

			src, diags, err := opts.resolve(a.log)
			if err != nil {
				return err
			}

			plans, pd := synthesize(src, a.log)
			diags.Merge(pd)

			printDiagnostics(cmd.ErrOrStderr(), diags)

			if diags.HasErrors() {
				return errInvalidSchemas
			}

			for i, sp := range plans {
				if len(sp.Plans) == 0 {
					a.log.WithField("package", sp.Package).Warn("no records to generate")
					continue
				}

				if err := generate(src, src.targets[i], sp, a.log); err != nil {
					return err
				}
			}

			return nil
		},
	}

	opts.addFlags(cmd)

	return cmd
}

// synthesize computes the plans of every target, in target order.
func synthesize(src *sources, log *logrus.Entry) ([]*plan.SetPlan, diagnostic.Diagnostics) {
	sy := plan.NewSynthesizer(plan.DefaultConfig(), log)

	var diags diagnostic.Diagnostics

	plans := make([]*plan.SetPlan, 0, len(src.targets))

	for _, t := range src.targets {
		sp, d := sy.SynthesizeSet(t.set)
		diags.Merge(d)

		plans = append(plans, sp)
	}

	return plans, diags
}

func generate(src *sources, t target, sp *plan.SetPlan, log *logrus.Entry) error {
	cfg := gen.DefaultGeneratorConfig()
	cfg.OutputDir = t.output
	cfg.Filename = t.filename
	cfg.RuntimeImport = src.runtimeImport
	cfg.Imports = t.imports
	cfg.GenerateComments = src.comments
	cfg.UnmarshalHelpers = src.helpers

	files, err := gen.NewGenerator(cfg, log).Generate(sp)
	if err != nil {
		return err
	}

	if err := gen.WriteFiles(files, t.output); err != nil {
		return err
	}

	for _, f := range files {
		log.WithFields(logrus.Fields{
			"package": sp.Package,
			"file":    f.Filename,
			"dir":     t.output,
		}).Info("wrote deserializers")
	}

	return nil
}

func printPlan(w io.Writer, p *plan.ParsePlan) {
	fmt.Fprintf(w, "%s -> %s (fingerprint %016x)\n", p.Record, p.Deserializer, p.Fingerprint)

	for _, f := range p.Fields {
		fmt.Fprintf(w, "  %q -> %s %s via %s\n", f.Key, f.GoName, f.Parser.GoType, f.Parser.Primitive.Func())
	}
}

func printDiagnostics(w io.Writer, diags diagnostic.Diagnostics) {
	for _, d := range diags.All() {
		fmt.Fprintf(w, "%s: %s\n", d.Severity, d)
	}
}
