package schema

import (
	"errors"
	"fmt"
	"go/token"
	"go/types"
	"strings"

	"strictjson-generator/internal/common"
)

// Kind tags the variant held by a TypeRef.
type Kind int

const (
	KindInvalid Kind = iota
	KindU64
	KindByteString
	KindBool
	KindFelt252
	KindArray
	KindNamed
)

// String returns a human-readable representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindU64:
		return "u64"
	case KindByteString:
		return "bytestring"
	case KindBool:
		return "bool"
	case KindFelt252:
		return "felt252"
	case KindArray:
		return "array"
	case KindNamed:
		return "named"
	default:
		return common.UnknownStr
	}
}

// TypeRef is the declared type of a field.
type TypeRef struct {
	Kind Kind
	// Elem is the element type of an array.
	Elem *TypeRef
	// Name is the record type name of a named type, optionally qualified
	// with a package name ("geo.Point").
	Name string
}

// U64 returns the unsigned 64-bit integer type.
func U64() TypeRef { return TypeRef{Kind: KindU64} }

// ByteString returns the string type.
func ByteString() TypeRef { return TypeRef{Kind: KindByteString} }

// Bool returns the boolean type.
func Bool() TypeRef { return TypeRef{Kind: KindBool} }

// Felt252 returns the field element type.
func Felt252() TypeRef { return TypeRef{Kind: KindFelt252} }

// ArrayOf returns the array type with the given element type.
func ArrayOf(elem TypeRef) TypeRef {
	return TypeRef{Kind: KindArray, Elem: &elem}
}

// Named returns a reference to a record type with its own deserializer.
func Named(name string) TypeRef {
	return TypeRef{Kind: KindNamed, Name: name}
}

// String renders the canonical spelling: u64, ByteArray, bool, felt252,
// Array<T> or the record name.
func (t TypeRef) String() string {
	switch t.Kind {
	case KindU64:
		return "u64"
	case KindByteString:
		return "ByteArray"
	case KindBool:
		return "bool"
	case KindFelt252:
		return "felt252"
	case KindArray:
		if t.Elem == nil {
			return "Array<?>"
		}

		return "Array<" + t.Elem.String() + ">"
	case KindNamed:
		return t.Name
	default:
		return "<invalid>"
	}
}

// GoType renders the Go spelling of t. runtimePkg is the package name the
// runtime is imported under in the generated file.
func (t TypeRef) GoType(runtimePkg string) string {
	switch t.Kind {
	case KindU64:
		return "uint64"
	case KindByteString:
		return "string"
	case KindBool:
		return "bool"
	case KindFelt252:
		return runtimePkg + ".Felt252"
	case KindArray:
		if t.Elem == nil {
			return "[]any"
		}

		return "[]" + t.Elem.GoType(runtimePkg)
	case KindNamed:
		return t.Name
	default:
		return "any"
	}
}

// Equal reports whether t and o describe the same type.
func (t TypeRef) Equal(o TypeRef) bool {
	if t.Kind != o.Kind || t.Name != o.Name {
		return false
	}

	if t.Elem == nil || o.Elem == nil {
		return t.Elem == o.Elem
	}

	return t.Elem.Equal(*o.Elem)
}

// NamedRefs returns the record names t refers to, outermost first.
func (t TypeRef) NamedRefs() []string {
	switch t.Kind {
	case KindNamed:
		return []string{t.Name}
	case KindArray:
		if t.Elem != nil {
			return t.Elem.NamedRefs()
		}
	}

	return nil
}

// check reports why t cannot be synthesized, or nil.
func (t TypeRef) check() error {
	switch t.Kind {
	case KindU64, KindByteString, KindBool, KindFelt252:
		return nil
	case KindArray:
		if t.Elem == nil {
			return errors.New("array type has no element type")
		}

		return t.Elem.check()
	case KindNamed:
		if !IsQualifiedIdent(t.Name) {
			return fmt.Errorf("record type name %q is not a Go identifier", t.Name)
		}

		if types.Universe.Lookup(t.Name) != nil {
			return fmt.Errorf("%s is a predeclared Go type, not a record", t.Name)
		}

		return nil
	default:
		return errors.New("type is not set")
	}
}

// ParseTypeRef parses a type spelling. It accepts the canonical spellings
// (u64, ByteArray, bool, felt252, Array<T>) and their Go equivalents
// (uint64, string, bool, jsonrt.Felt252, []T). Anything else that is a
// possibly package-qualified identifier is a named record type.
func ParseTypeRef(s string) (TypeRef, error) {
	s = strings.TrimSpace(s)

	switch s {
	case "":
		return TypeRef{}, errors.New("empty type")
	case "u64", "uint64":
		return U64(), nil
	case "ByteArray", "string":
		return ByteString(), nil
	case "bool":
		return Bool(), nil
	case "felt252", "Felt252", "jsonrt.Felt252":
		return Felt252(), nil
	}

	var inner string

	switch {
	case strings.HasPrefix(s, "Array<") && strings.HasSuffix(s, ">"):
		inner = s[len("Array<") : len(s)-1]
	case strings.HasPrefix(s, "[]"):
		inner = s[len("[]"):]
	default:
		if !IsQualifiedIdent(s) || types.Universe.Lookup(s) != nil {
			return TypeRef{}, fmt.Errorf("unsupported type %q", s)
		}

		return Named(s), nil
	}

	elem, err := ParseTypeRef(inner)
	if err != nil {
		return TypeRef{}, fmt.Errorf("array element of %q: %w", s, err)
	}

	return ArrayOf(elem), nil
}

// IsQualifiedIdent reports whether s is an identifier or a pkg.Ident pair.
func IsQualifiedIdent(s string) bool {
	pkg, name, found := strings.Cut(s, ".")
	if !found {
		return token.IsIdentifier(s)
	}

	return token.IsIdentifier(pkg) && token.IsIdentifier(name)
}
