package schema

import (
	"fmt"
	"go/token"
	"go/types"

	"strictjson-generator/internal/diagnostic"
)

// Diagnostic codes reported by Validate.
const (
	CodeInvalidIdentifier = "INVALID_IDENTIFIER"
	CodeEmptyFieldName    = "EMPTY_FIELD_NAME"
	CodeDuplicateField    = "DUPLICATE_FIELD"
	CodeDuplicateGoName   = "DUPLICATE_GO_NAME"
	CodeInvalidType       = "INVALID_TYPE"
	CodeReservedName      = "RESERVED_NAME"
)

// deserializerLocals are declared in every generated Deserialize method. A
// record with one of these names would be shadowed inside it.
var deserializerLocals = map[string]bool{
	"data": true, "pos": true, "c": true, "ok": true,
	"fieldName": true, "value": true, "err": true,
}

// Validate checks that s can be synthesized: the record name and every Go
// field identifier are identifiers, the record name is not one generated
// code declares or predeclares, JSON names are non-empty and unique, and
// every type is complete.
func Validate(s Schema) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	if !token.IsIdentifier(s.name) {
		diags.AddError(CodeInvalidIdentifier,
			fmt.Sprintf("record name %q is not a Go identifier", s.name), s.name, "")
	} else if deserializerLocals[s.name] || types.Universe.Lookup(s.name) != nil {
		diags.AddError(CodeReservedName,
			fmt.Sprintf("record name %s collides with a name generated code relies on", s.name), s.name, "")
	}

	seen := make(map[string]int, len(s.fields))
	seenGo := make(map[string]int, len(s.fields))

	for i, f := range s.fields {
		if f.Name == "" {
			diags.AddError(CodeEmptyFieldName,
				fmt.Sprintf("field #%d has an empty JSON name", i+1), s.name, f.GoName)
		} else if first, dup := seen[f.Name]; dup {
			diags.AddError(CodeDuplicateField,
				fmt.Sprintf("JSON name %q is declared by fields #%d and #%d", f.Name, first+1, i+1),
				s.name, f.Name)
		} else {
			seen[f.Name] = i
		}

		if !token.IsIdentifier(f.GoName) {
			diags.AddError(CodeInvalidIdentifier,
				fmt.Sprintf("Go field name %q is not an identifier", f.GoName), s.name, f.Name)
		} else if first, dup := seenGo[f.GoName]; dup {
			diags.AddError(CodeDuplicateGoName,
				fmt.Sprintf("Go field %s is declared by fields #%d and #%d", f.GoName, first+1, i+1),
				s.name, f.Name)
		} else {
			seenGo[f.GoName] = i
		}

		if err := f.Type.check(); err != nil {
			diags.AddError(CodeInvalidType, err.Error(), s.name, f.Name)
		}
	}

	return diags
}
