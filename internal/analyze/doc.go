// Package analyze extracts record schemas from Go struct declarations.
//
// It uses golang.org/x/tools/go/packages with go/types to load packages
// and maps every selected struct to a schema.Schema:
//   - JSON names come from the json struct tag, or the field name
//   - uint64, string, bool, jsonrt.Felt252, slices and struct types of the
//     same or another package are supported
//   - unexported fields and fields tagged json:"-" are skipped
//
// Anything else is reported as a diagnostic on the record.
package analyze
