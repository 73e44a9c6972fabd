package plan

import "strictjson-generator/internal/schema"

//go:generate go tool stringer -type=Primitive -trimprefix=Primitive -output=primitive_string.go

// Primitive identifies the runtime parser selected for a value.
type Primitive int

const (
	PrimitiveInvalid Primitive = iota
	PrimitiveU64
	PrimitiveString
	PrimitiveBool
	PrimitiveFelt252
	PrimitiveArray
	PrimitiveObject
)

// primitiveTable is the static type-directed dispatch table.
var primitiveTable = map[schema.Kind]Primitive{
	schema.KindU64:        PrimitiveU64,
	schema.KindByteString: PrimitiveString,
	schema.KindBool:       PrimitiveBool,
	schema.KindFelt252:    PrimitiveFelt252,
	schema.KindArray:      PrimitiveArray,
	schema.KindNamed:      PrimitiveObject,
}

// PrimitiveFor returns the primitive selected for a declared type kind.
func PrimitiveFor(k schema.Kind) Primitive {
	return primitiveTable[k]
}

// Func returns the name of the runtime function implementing p.
func (p Primitive) Func() string {
	switch p {
	case PrimitiveU64:
		return "ParseU64"
	case PrimitiveString:
		return "ParseString"
	case PrimitiveBool:
		return "ParseBool"
	case PrimitiveFelt252:
		return "ParseFelt252"
	case PrimitiveArray:
		return "ParseArray"
	case PrimitiveObject:
		return "ParseObject"
	default:
		return ""
	}
}

// IsScalar reports whether p parses a single token with no nested parser.
func (p Primitive) IsScalar() bool {
	switch p {
	case PrimitiveU64, PrimitiveString, PrimitiveBool, PrimitiveFelt252:
		return true
	default:
		return false
	}
}
