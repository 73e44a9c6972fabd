package config

import (
	"fmt"
	"go/token"

	"strictjson-generator/internal/diagnostic"
	"strictjson-generator/internal/schema"
)

// Validate checks the structure of a config file. Inline schemas are
// converted and validated like extracted ones.
func Validate(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("config_is_nil", "config file is nil", "", "")
		return res
	}

	if f.Version != CurrentVersion {
		res.AddError("unknown_version",
			fmt.Sprintf("unknown config version %q, expected %q", f.Version, CurrentVersion), "", "version")
	}

	if len(f.Packages) == 0 && len(f.Schemas) == 0 {
		res.AddWarning("empty_config", "config declares no packages and no schemas", "", "")
	}

	seenPatterns := map[string]struct{}{}

	for i, p := range f.Packages {
		if p.Pattern == "" {
			res.AddError("missing_pattern", fmt.Sprintf("packages[%d] has no pattern", i), "", "")
			continue
		}

		if _, ok := seenPatterns[p.Pattern]; ok {
			res.AddError("duplicate_pattern", fmt.Sprintf("duplicate package pattern %q", p.Pattern), "", p.Pattern)
			continue
		}

		seenPatterns[p.Pattern] = struct{}{}

		for j, name := range p.Types {
			if p.Types[:j].Contains(name) {
				res.AddWarning("duplicate_type",
					fmt.Sprintf("package %q lists type %s more than once", p.Pattern, name), name, p.Pattern)
			}
		}
	}

	seenSchemas := map[string]struct{}{}

	for i := range f.Schemas {
		validateSchema(res, &f.Schemas[i], i, seenSchemas)
	}

	return res
}

func validateSchema(res *diagnostic.Diagnostics, sc *SchemaConfig, i int, seen map[string]struct{}) {
	if sc.Name == "" {
		res.AddError("missing_schema_name", fmt.Sprintf("schemas[%d] has no name", i), "", "")
		return
	}

	if !token.IsIdentifier(sc.Package) {
		res.AddError("invalid_package_name",
			fmt.Sprintf("schema %s: package %q is not a Go identifier", sc.Name, sc.Package), sc.Name, "package")
	}

	before := len(res.Errors)

	key := sc.Package + "." + sc.Name
	if _, ok := seen[key]; ok {
		res.AddError("duplicate_schema", fmt.Sprintf("schema %s declared twice", key), sc.Name, "")
		return
	}

	seen[key] = struct{}{}

	for _, fc := range sc.Fields {
		if _, err := schema.ParseTypeRef(fc.Type); err != nil {
			res.AddError("invalid_field_type", err.Error(), sc.Name, fc.Name)
		}
	}

	if len(res.Errors) > before {
		return
	}

	s, err := sc.ToSchema()
	if err != nil {
		res.AddError("invalid_schema", err.Error(), sc.Name, "")
		return
	}

	res.Merge(schema.Validate(s))
}
