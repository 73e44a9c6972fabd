package config

// File is the top-level structure of a config file.
type File struct {
	// Version is the config format version. Only "1" is known.
	Version string `yaml:"version"`
	// RuntimeImport is the import path generated code uses for the runtime.
	RuntimeImport string `yaml:"runtime_import,omitempty"`
	// Comments toggles doc comments in generated code. Defaults to true.
	Comments *bool `yaml:"comments,omitempty"`
	// UnmarshalHelpers toggles the Unmarshal<T>JSON wrappers. Defaults to
	// true.
	UnmarshalHelpers *bool `yaml:"unmarshal_helpers,omitempty"`
	// Packages are Go packages whose structs are extracted.
	Packages []PackageConfig `yaml:"packages,omitempty"`
	// Schemas are inline record declarations.
	Schemas []SchemaConfig `yaml:"schemas,omitempty"`
}

// PackageConfig selects the structs of one Go package pattern.
type PackageConfig struct {
	// Pattern is a go/packages pattern, e.g. "./examples/accounts".
	Pattern string `yaml:"pattern"`
	// Output is the output directory. Empty writes next to the package
	// sources.
	Output string `yaml:"output,omitempty"`
	// Filename overrides the generated file name.
	Filename string `yaml:"filename,omitempty"`
	// Types restricts extraction to the named structs. Empty selects every
	// exported struct.
	Types StringOrArray `yaml:"types,omitempty"`
}

// SchemaConfig declares one record without Go source.
type SchemaConfig struct {
	// Name is the record type name.
	Name string `yaml:"name"`
	// Package is the Go package name of the generated file.
	Package string `yaml:"package"`
	// Output is the output directory.
	Output string `yaml:"output,omitempty"`
	// Filename overrides the generated file name.
	Filename string `yaml:"filename,omitempty"`
	// Fields in declaration order.
	Fields []FieldConfig `yaml:"fields"`
}

// FieldConfig declares one field of an inline schema.
type FieldConfig struct {
	// Name is the JSON member name.
	Name string `yaml:"name"`
	// GoName is the struct field name. Derived from Name when empty.
	GoName string `yaml:"go_name,omitempty"`
	// Type is the type spelling, e.g. "u64" or "Array<Address>".
	Type string `yaml:"type"`
}

// StringOrArray represents a YAML value that can be either a single string
// or an array of strings.
type StringOrArray []string
