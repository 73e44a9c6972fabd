package analyze

import (
	"reflect"
	"strings"

	"strictjson-generator/internal/schema"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "strictjson-generator/examples/accounts"
	Name    string // e.g., "Session"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// Package is the extraction result of one Go package.
type Package struct {
	// Path is the import path.
	Path string
	// Name is the package name.
	Name string
	// Dir is the directory holding the package sources.
	Dir string
	// Imports maps the import path of every package that declares a nested
	// record of another package to its package name.
	Imports map[string]string
	// Set holds the extracted schemas in declaration order.
	Set *schema.Set
}

// jsonTag is the parsed json struct tag of a field.
type jsonTag struct {
	Name    string
	Options []string
	Skip    bool
}

// parseJSONTag follows encoding/json: `json:"-"` skips the field, `json:"-,"`
// names it "-", and an empty name keeps the field name.
func parseJSONTag(tag reflect.StructTag) jsonTag {
	raw, ok := tag.Lookup("json")
	if !ok {
		return jsonTag{}
	}

	if raw == "-" {
		return jsonTag{Skip: true}
	}

	name, opts, _ := strings.Cut(raw, ",")

	jt := jsonTag{Name: name}
	if opts != "" {
		jt.Options = strings.Split(opts, ",")
	}

	return jt
}
