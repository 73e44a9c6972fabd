// Package plan provides the parser synthesizer: it turns an ordered record
// schema into a ParsePlan consumed by code generation.
//
// Synthesis pipeline:
//  1. Validate the schema (identifiers, unique JSON names, complete types)
//  2. For each field, select one runtime primitive from the static
//     type-directed table (arrays and nested records recurse)
//  3. Name one value slot and one "parsed" flag per field
//  4. Fix the literal messages for every failure the routine can report
//  5. For a Set, report unresolved nested record names and near-duplicate
//     JSON names as diagnostics
//
// The same schema always yields the same plan; plans are cached by the
// schema fingerprint.
package plan
