package schema

import (
	"fmt"
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"

	"strictjson-generator/internal/common"
	"strictjson-generator/internal/match"
)

// Field is one declared member of a record.
type Field struct {
	// Name is the JSON member name.
	Name string
	// GoName is the Go struct field identifier.
	GoName string
	// Type is the declared type.
	Type TypeRef
}

// NewField returns a field whose Go identifier is derived from the JSON
// name ("public_key" -> "PublicKey", "owner_id" -> "OwnerID").
func NewField(name string, t TypeRef) Field {
	return Field{Name: name, GoName: GoNameFor(name), Type: t}
}

// initialisms are spelled upper-case in derived Go names.
var initialisms = map[string]bool{
	"API": true, "ID": true, "IP": true, "JSON": true, "URI": true,
	"URL": true, "UUID": true, "HTTP": true, "TCP": true, "UTC": true,
}

// GoNameFor derives an exported Go identifier from a JSON member name.
func GoNameFor(name string) string {
	var b strings.Builder
	for _, tok := range match.Words(name) {
		if upper := strings.ToUpper(tok); initialisms[upper] {
			b.WriteString(upper)
			continue
		}

		b.WriteString(common.UpperFirst(tok))
	}

	return b.String()
}

// Schema is the ordered field list of one record type.
type Schema struct {
	name   string
	fields []Field
}

// New creates a Schema. fields are copied in declaration order.
func New(name string, fields ...Field) Schema {
	return Schema{name: name, fields: slices.Clone(fields)}
}

// Name returns the record type name.
func (s Schema) Name() string { return s.name }

// Len returns the number of fields.
func (s Schema) Len() int { return len(s.fields) }

// Field returns the i-th declared field.
func (s Schema) Field(i int) Field { return s.fields[i] }

// Fields returns a copy of the declared fields.
func (s Schema) Fields() []Field { return slices.Clone(s.fields) }

// Lookup returns the first field declared with the JSON name key.
func (s Schema) Lookup(key string) (Field, bool) {
	for _, f := range s.fields {
		if f.Name == key {
			return f, true
		}
	}

	return Field{}, false
}

// String returns the canonical text of the schema, e.g.
// Session{"id" ID u64; "active" Active bool}.
func (s Schema) String() string {
	var b strings.Builder

	b.WriteString(s.name)
	b.WriteByte('{')

	for i, f := range s.fields {
		if i > 0 {
			b.WriteString("; ")
		}

		fmt.Fprintf(&b, "%q %s %s", f.Name, f.GoName, f.Type)
	}

	b.WriteByte('}')

	return b.String()
}

// Fingerprint returns a stable hash of the canonical text. Equal schemas
// have equal fingerprints.
func (s Schema) Fingerprint() uint64 {
	return xxhash.Sum64String(s.String())
}

// Set is the ordered collection of schemas generated into one Go package.
type Set struct {
	pkg     string
	schemas []Schema
	index   map[string]int
}

// NewSet creates a Set. Record names must be unique.
func NewSet(pkg string, schemas ...Schema) (*Set, error) {
	set := &Set{
		pkg:     pkg,
		schemas: slices.Clone(schemas),
		index:   make(map[string]int, len(schemas)),
	}

	for i, s := range schemas {
		if _, dup := set.index[s.Name()]; dup {
			return nil, fmt.Errorf("record type %s declared twice in package %s", s.Name(), pkg)
		}

		set.index[s.Name()] = i
	}

	return set, nil
}

// Package returns the Go package name the set is generated into.
func (s *Set) Package() string { return s.pkg }

// Schemas returns the schemas in declaration order.
func (s *Set) Schemas() []Schema { return slices.Clone(s.schemas) }

// Lookup returns the schema of the named record type.
func (s *Set) Lookup(name string) (Schema, bool) {
	i, ok := s.index[name]
	if !ok {
		return Schema{}, false
	}

	return s.schemas[i], true
}

// Names returns the record type names in declaration order.
func (s *Set) Names() []string {
	names := make([]string, len(s.schemas))
	for i, sc := range s.schemas {
		names[i] = sc.Name()
	}

	return names
}
