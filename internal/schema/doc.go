// Package schema is the normalized data model consumed by the parser
// synthesizer: an ordered list of JSON member names, Go field identifiers
// and declared types for one record type.
//
// A Schema is immutable once constructed. It can be produced from Go
// source (package analyze) or from a YAML schema file (package config).
package schema
