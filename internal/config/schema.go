package config

import (
	"fmt"
	"path/filepath"

	"strictjson-generator/internal/schema"
)

// ToSchema converts the inline declaration to a schema.Schema. Go field
// names default to the derived name of the JSON name.
func (sc SchemaConfig) ToSchema() (schema.Schema, error) {
	fields := make([]schema.Field, 0, len(sc.Fields))

	for i, fc := range sc.Fields {
		t, err := schema.ParseTypeRef(fc.Type)
		if err != nil {
			return schema.Schema{}, fmt.Errorf("schema %s field #%d %q: %w", sc.Name, i+1, fc.Name, err)
		}

		f := schema.NewField(fc.Name, t)
		if fc.GoName != "" {
			f.GoName = fc.GoName
		}

		fields = append(fields, f)
	}

	return schema.New(sc.Name, fields...), nil
}

// InlineTarget is a group of inline schemas generated into one file.
type InlineTarget struct {
	// Output is the output directory.
	Output string
	// Filename is the first file name override of the group, if any.
	Filename string
	// Set holds the schemas in declaration order.
	Set *schema.Set
}

// InlineTargets groups the inline schemas by package and output directory,
// in order of first declaration.
func (f *File) InlineTargets() ([]InlineTarget, error) {
	type group struct {
		pkg, output, filename string
		schemas               []schema.Schema
	}

	var groups []*group

	index := make(map[[2]string]*group)

	for _, sc := range f.Schemas {
		s, err := sc.ToSchema()
		if err != nil {
			return nil, err
		}

		key := [2]string{sc.Package, filepath.Clean(sc.Output)}

		g, ok := index[key]
		if !ok {
			g = &group{pkg: sc.Package, output: key[1]}
			index[key] = g
			groups = append(groups, g)
		}

		if g.filename == "" {
			g.filename = sc.Filename
		}

		g.schemas = append(g.schemas, s)
	}

	targets := make([]InlineTarget, 0, len(groups))

	for _, g := range groups {
		set, err := schema.NewSet(g.pkg, g.schemas...)
		if err != nil {
			return nil, err
		}

		targets = append(targets, InlineTarget{Output: g.output, Filename: g.filename, Set: set})
	}

	return targets, nil
}
