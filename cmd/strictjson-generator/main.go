// Package main provides the CLI entrypoint for strictjson-generator.
//
// strictjson-generator turns record schemas into strict JSON object
// deserializers:
//   - analyze extracts schemas from Go structs (AST + go/types)
//   - plan shows the parse plan synthesized for a record
//   - check validates schemas and reports diagnostics
//   - gen writes the generated deserializers
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
