package gen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"text/template"

	"github.com/sirupsen/logrus"

	"strictjson-generator/internal/common"
	"strictjson-generator/internal/plan"
)

// DefaultRuntimeImport is the import path of the runtime primitives.
const DefaultRuntimeImport = common.RuntimeImport

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// PackageName overrides the package name of the generated file. Empty
	// uses the package of the set plan.
	PackageName string
	// OutputDir is the directory where generated files are written.
	OutputDir string
	// Filename is the generated file name. Empty uses <package>_strictjson.go.
	Filename string
	// RuntimeImport is the import path of the runtime package.
	RuntimeImport string
	// Imports maps the import path of every package that declares a nested
	// record of another package to its package name.
	Imports map[string]string
	// GenerateComments enables doc comments on generated declarations.
	GenerateComments bool
	// UnmarshalHelpers generates an Unmarshal<T>JSON function per record.
	UnmarshalHelpers bool
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		OutputDir:        ".",
		RuntimeImport:    DefaultRuntimeImport,
		GenerateComments: true,
		UnmarshalHelpers: true,
	}
}

// Generator renders parse plans into Go source.
type Generator struct {
	config GeneratorConfig
	log    *logrus.Entry
}

// NewGenerator creates a new Generator. A nil log uses the standard logger.
func NewGenerator(config GeneratorConfig, log *logrus.Entry) *Generator {
	if config.RuntimeImport == "" {
		config.RuntimeImport = DefaultRuntimeImport
	}

	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}

	return &Generator{config: config, log: log.WithField("component", "gen")}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "accounts_strictjson.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Generate renders every plan of sp into one file. Generation performs no
// I/O unless formatting fails and OutputDir is set, in which case the
// unformatted source is written next to the intended output for debugging.
func (g *Generator) Generate(sp *plan.SetPlan) ([]GeneratedFile, error) {
	pkg := g.config.PackageName
	if pkg == "" {
		pkg = sp.Package
	}

	filename := g.config.Filename
	if filename == "" {
		filename = pkg + "_strictjson.go"
	}

	content, err := g.Render(pkg, sp.Plans)
	if err != nil {
		var fe *formatError
		if errors.As(err, &fe) && g.config.OutputDir != "" {
			if werr := writeDebugUnformatted(g.config.OutputDir, filename, fe.source, fe.err); werr != nil {
				g.log.WithError(werr).Warn("could not write unformatted source")
			}
		}

		return nil, fmt.Errorf("generating %s: %w", filename, err)
	}

	g.log.WithFields(logrus.Fields{
		"package": pkg,
		"file":    filename,
		"records": len(sp.Plans),
	}).Debug("generated deserializers")

	return []GeneratedFile{{Filename: filename, Content: content}}, nil
}

// formatError carries the unformatted source of a template result that
// go/format rejected.
type formatError struct {
	err    error
	source []byte
}

func (e *formatError) Error() string { return "formatting code: " + e.err.Error() }

func (e *formatError) Unwrap() error { return e.err }

// Render renders plans as the source of one file of package pkg.
func (g *Generator) Render(pkg string, plans []*plan.ParsePlan) ([]byte, error) {
	if len(plans) == 0 {
		return nil, errors.New("no parse plans to render")
	}

	data, err := g.buildTemplateData(pkg, plans)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, &formatError{err: err, source: buf.Bytes()}
	}

	return formatted, nil
}

// Template for the deserializer file
var fileTemplate = template.Must(template.New("deserializers").Parse(GeneratedHeader + `

package {{.PackageName}}

{{if eq (len .Imports) 1}}import {{index .Imports 0}}
{{else}}import (
{{- range .Imports}}
	{{.}}
{{- end}}
)
{{end}}{{$rt := .Runtime}}
{{range .Records}}{{$rec := .Record}}{{$msg := .Msg}}
{{if $.GenerateComments}}// {{.Deserializer}} decodes {{.Record}} values from JSON objects. Every
// field is required and unknown fields are rejected.
{{end}}type {{.Deserializer}} struct{}

var _ {{$rt}}.ObjectDeserializer[{{.Record}}] = {{.Deserializer}}{}

{{if $.GenerateComments}}// Deserialize parses the members of a JSON object. The opening '{' must
// already be consumed; the cursor is left on the closing '}'.
{{end}}func ({{.Deserializer}}) Deserialize(data []byte, pos *int) ({{.Record}}, error) {
{{- if .Fields}}
	var (
{{- range .Fields}}
		{{.Slot}} {{.GoType}}
		{{.Flag}} bool
{{- end}}
	)
{{end}}
	for {
		{{$rt}}.SkipWhitespace(data, pos)

		c, ok := {{$rt}}.Peek(data, *pos)
		if !ok {
			return {{$rec}}{}, {{$rt}}.NewError({{$rt}}.ErrUnexpectedEOF, *pos, {{.Msg.UnexpectedEOF}})
		}

		if c == '}' {
			break
		}

		fieldName, err := {{$rt}}.ParseString(data, pos)
		if err != nil {
			return {{$rec}}{}, {{$rt}}.NewError({{$rt}}.ErrMalformedFieldName, *pos, {{.Msg.MalformedFieldName}}).WithCause(err)
		}

		{{$rt}}.SkipWhitespace(data, pos)

		c, ok = {{$rt}}.Peek(data, *pos)
		if !ok {
			return {{$rec}}{}, {{$rt}}.NewError({{$rt}}.ErrUnexpectedEOF, *pos, {{.Msg.UnexpectedEOF}})
		}

		if c != ':' {
			return {{$rec}}{}, {{$rt}}.NewError({{$rt}}.ErrMissingSeparator, *pos, {{.Msg.MissingSeparator}}).WithField(fieldName)
		}

		*pos++

		switch fieldName {
{{- range .Fields}}
		case {{.Key}}:
			value, err := {{.Call}}
			if err != nil {
				return {{$rec}}{}, {{$rt}}.NewError({{$rt}}.ErrFieldValue, *pos, {{.FailureMessage}}).WithField({{.Key}}).WithCause(err)
			}

			{{.Slot}} = value
			{{.Flag}} = true
{{- end}}
		default:
			return {{$rec}}{}, {{$rt}}.NewError({{$rt}}.ErrUnknownField, *pos, {{.Msg.UnknownField}}).WithField(fieldName)
		}

		{{$rt}}.SkipWhitespace(data, pos)

		c, ok = {{$rt}}.Peek(data, *pos)
		if !ok {
			return {{$rec}}{}, {{$rt}}.NewError({{$rt}}.ErrUnexpectedEOF, *pos, {{.Msg.UnexpectedEOF}})
		}

		if c == '}' {
			break
		}

		if c != ',' {
			return {{$rec}}{}, {{$rt}}.NewError({{$rt}}.ErrUnexpectedChar, *pos, {{.Msg.UnexpectedChar}}+string([]byte{c}))
		}

		*pos++
	}
{{range .Fields}}
	if !{{.Flag}} {
		return {{$rec}}{}, {{$rt}}.NewError({{$rt}}.ErrMissingRequiredField, *pos, {{$msg.MissingRequiredField}}).WithField({{.Key}})
	}
{{end}}
	return {{.Literal}}, nil
}
{{if $.UnmarshalHelpers}}
{{if $.GenerateComments}}// Unmarshal{{.Record}}JSON parses data as exactly one {{.Record}} object.
{{end}}func Unmarshal{{.Record}}JSON(data []byte) ({{.Record}}, error) {
	return {{$rt}}.Unmarshal[{{.Record}}](data, {{.Deserializer}}{})
}
{{end}}{{end}}`))
