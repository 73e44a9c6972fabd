// Package config loads strictjson.yaml, the generator configuration.
//
// A config file names the Go packages whose structs get deserializers and
// may declare inline schemas that have no Go source to extract from:
//
//	version: "1"
//	runtime_import: strictjson-generator/jsonrt
//	packages:
//	  - pattern: ./examples/accounts
//	    types: [Account, Address]
//	schemas:
//	  - name: Point
//	    package: geometry
//	    output: ./geometry
//	    fields:
//	      - {name: x, type: u64}
//	      - {name: tags, type: "Array<ByteArray>"}
//
// Field types accept the canonical spellings (u64, ByteArray, bool,
// felt252, Array<T>) and their Go equivalents (uint64, string, []T).
package config
