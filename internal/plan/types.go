package plan

import (
	"strictjson-generator/internal/diagnostic"
	"strictjson-generator/internal/schema"
)

// ParsePlan is everything the emitter needs to render the deserializer of
// one record type. It is derived purely from a Schema and must not be
// modified.
type ParsePlan struct {
	// Record is the record type name.
	Record string
	// Deserializer is the name of the generated deserializer type.
	Deserializer string
	// RuntimePkg is the package name the runtime is referenced by.
	RuntimePkg string
	// Fields holds one action per field, in declaration order.
	Fields []FieldAction
	// Required lists the JSON names that must be present. Every field is
	// required.
	Required []string
	// Messages are the literal failure messages.
	Messages Messages
	// Fingerprint is the fingerprint of the source schema.
	Fingerprint uint64
}

// FieldAction describes how one JSON member is parsed and stored.
type FieldAction struct {
	// Key is the JSON member name matched against the parsed field name.
	Key string
	// GoName is the record field the value is stored in.
	GoName string
	// Slot is the local variable holding the parsed value.
	Slot string
	// Flag is the local boolean set once the value was parsed.
	Flag string
	// Type is the declared type.
	Type schema.TypeRef
	// Parser is the selected primitive parser.
	Parser Parser
	// FailureMessage is reported when Parser fails.
	FailureMessage string
}

// Parser is a selected runtime primitive. Arrays carry their element
// parser, nested records the deserializer they delegate to.
type Parser struct {
	Primitive Primitive
	// GoType is the Go type of the parsed value.
	GoType string
	// Elem is the element parser of PrimitiveArray.
	Elem *Parser
	// Deserializer is the deserializer type of PrimitiveObject.
	Deserializer string
}

// Messages are the literal messages of each failure kind.
type Messages struct {
	MalformedFieldName   string
	MissingSeparator     string
	UnknownField         string
	MissingRequiredField string
	// UnexpectedChar is followed by the offending byte.
	UnexpectedChar string
	UnexpectedEOF  string
}

// DefaultMessages returns the messages of a strict deserializer.
func DefaultMessages() Messages {
	return Messages{
		MalformedFieldName:   "Failed to parse field name",
		MissingSeparator:     "Expected ':'",
		UnknownField:         "Unknown field",
		MissingRequiredField: "Missing required field",
		UnexpectedChar:       "Unexpected char: ",
		UnexpectedEOF:        "Unexpected end of input",
	}
}

// FieldFailureMessage returns the message reported when the value of the
// JSON member key fails to parse.
func FieldFailureMessage(key string) string {
	return "Failed to parse " + key
}

// SetPlan holds the plans of every record generated into one package.
type SetPlan struct {
	// Package is the Go package name.
	Package string
	// Plans are in schema declaration order.
	Plans []*ParsePlan
	// Diagnostics contains all warnings and errors from synthesis.
	Diagnostics diagnostic.Diagnostics
}

// Lookup returns the plan of the named record, or nil.
func (sp *SetPlan) Lookup(record string) *ParsePlan {
	for _, p := range sp.Plans {
		if p.Record == record {
			return p
		}
	}

	return nil
}
