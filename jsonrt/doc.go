// Package jsonrt provides the runtime primitives used by deserializers
// generated by strictjson-generator.
//
// Every primitive reads from a caller-owned byte slice and advances a
// caller-owned cursor (a *int byte offset) past the token it consumed. On
// failure the cursor position is unspecified and the caller must abort.
//
// Key types:
//   - ObjectDeserializer: implemented by every generated <T>JSONDeserializer
//   - ParseFunc: the shape shared by all value parsers
//   - Felt252: a STARK field element
//   - Error: the single failure outcome of a generated deserializer
package jsonrt
