// Package gen provides deterministic Go code generation for strict JSON
// object deserializers.
//
// Generation approach uses text/template + go/format. For every parse plan
// the emitted file contains:
//   - a <T>JSONDeserializer type implementing jsonrt.ObjectDeserializer[T]
//   - one value slot and one parsed flag per field, in declared order
//   - a switch on the field name with one case per field, in declared order,
//     and a default case rejecting unknown fields
//   - a required-field check per field
//   - an Unmarshal<T>JSON convenience function (optional)
package gen
