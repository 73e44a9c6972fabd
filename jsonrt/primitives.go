package jsonrt

import (
	"strconv"
	"unicode/utf8"

	json "github.com/goccy/go-json"
)

// ParseFunc parses one JSON value at the cursor.
type ParseFunc[T any] func(data []byte, pos *int) (T, error)

// ObjectDeserializer maps the members of one JSON object to a record.
//
// Deserialize is called with the cursor just past the opening '{'. It
// returns with the cursor on the closing '}', which the caller consumes.
type ObjectDeserializer[T any] interface {
	Deserialize(data []byte, pos *int) (T, error)
}

// ParseString parses a JSON string.
func ParseString(data []byte, pos *int) (string, error) {
	SkipWhitespace(data, pos)

	start := *pos
	if err := expect(data, pos, '"'); err != nil {
		return "", err
	}

	escaped := false
	for i := *pos; i < len(data); i++ {
		switch c := data[i]; {
		case c == '"':
			*pos = i + 1
			if !escaped && utf8.Valid(data[start+1:i]) {
				return string(data[start+1 : i]), nil
			}

			var s string
			if err := json.Unmarshal(data[start:i+1], &s); err != nil {
				return "", syntaxErrorf(start, "invalid string: %v", err)
			}

			return s, nil

		case c == '\\':
			escaped = true
			i++

		case c < 0x20:
			return "", syntaxErrorf(i, "control character %#02x in string", c)
		}
	}

	return "", syntaxErrorf(start, "unterminated string")
}

// ParseU64 parses a JSON integer in the range of uint64. Signs, fractions,
// exponents and leading zeros are rejected.
func ParseU64(data []byte, pos *int) (uint64, error) {
	SkipWhitespace(data, pos)

	digits, err := scanUnsigned(data, pos)
	if err != nil {
		return 0, err
	}

	v, err := strconv.ParseUint(string(digits), 10, 64)
	if err != nil {
		return 0, syntaxErrorf(*pos-len(digits), "integer %s overflows uint64", digits)
	}

	return v, nil
}

// scanUnsigned consumes the digits of a JSON unsigned integer.
func scanUnsigned(data []byte, pos *int) ([]byte, error) {
	start := *pos

	c, ok := Peek(data, start)
	if !ok {
		return nil, syntaxErrorf(start, "expected integer, got end of input")
	}

	if c == '-' {
		return nil, syntaxErrorf(start, "expected unsigned integer, got negative number")
	}

	if !isDigit(c) {
		return nil, syntaxErrorf(start, "expected integer, got %q", c)
	}

	end := start + 1
	for end < len(data) && isDigit(data[end]) {
		end++
	}

	if c == '0' && end-start > 1 {
		return nil, syntaxErrorf(start, "leading zero in integer")
	}

	if next, ok := Peek(data, end); ok && (next == '.' || next == 'e' || next == 'E') {
		return nil, syntaxErrorf(end, "expected integer, got fractional number")
	}

	*pos = end

	return data[start:end], nil
}

// ParseBool parses the JSON literals true and false.
func ParseBool(data []byte, pos *int) (bool, error) {
	SkipWhitespace(data, pos)

	switch {
	case consumeLiteral(data, pos, "true"):
		return true, nil
	case consumeLiteral(data, pos, "false"):
		return false, nil
	default:
		return false, syntaxErrorf(*pos, "expected boolean")
	}
}

// ParseArray parses a JSON array whose elements are parsed by elem. An
// empty array yields an empty, non-nil slice.
func ParseArray[E any](data []byte, pos *int, elem ParseFunc[E]) ([]E, error) {
	SkipWhitespace(data, pos)

	if err := expect(data, pos, '['); err != nil {
		return nil, err
	}

	out := []E{}

	SkipWhitespace(data, pos)

	if c, ok := Peek(data, *pos); ok && c == ']' {
		*pos++
		return out, nil
	}

	for {
		v, err := elem(data, pos)
		if err != nil {
			return nil, err
		}

		out = append(out, v)

		SkipWhitespace(data, pos)

		c, ok := Peek(data, *pos)
		if !ok {
			return nil, syntaxErrorf(*pos, "unterminated array")
		}

		switch c {
		case ',':
			*pos++
		case ']':
			*pos++
			return out, nil
		default:
			return nil, syntaxErrorf(*pos, "expected ',' or ']' in array, got %q", c)
		}
	}
}

// ParseObject parses a JSON object with the record deserializer d. It
// consumes both braces.
func ParseObject[T any](data []byte, pos *int, d ObjectDeserializer[T]) (T, error) {
	var zero T

	SkipWhitespace(data, pos)

	if err := expect(data, pos, '{'); err != nil {
		return zero, err
	}

	v, err := d.Deserialize(data, pos)
	if err != nil {
		return zero, err
	}

	if err := expect(data, pos, '}'); err != nil {
		return zero, err
	}

	return v, nil
}

// ArrayOf lifts an element parser to an array parser.
func ArrayOf[E any](elem ParseFunc[E]) ParseFunc[[]E] {
	return func(data []byte, pos *int) ([]E, error) {
		return ParseArray(data, pos, elem)
	}
}

// ObjectOf lifts a record deserializer to a value parser.
func ObjectOf[T any](d ObjectDeserializer[T]) ParseFunc[T] {
	return func(data []byte, pos *int) (T, error) {
		return ParseObject(data, pos, d)
	}
}

// Unmarshal parses data as exactly one JSON object using d. Whitespace may
// surround the object; anything else is an error.
func Unmarshal[T any](data []byte, d ObjectDeserializer[T]) (T, error) {
	var zero T

	pos := 0
	SkipWhitespace(data, &pos)

	c, ok := Peek(data, pos)
	if !ok {
		return zero, NewError(ErrUnexpectedEOF, pos, "Unexpected end of input")
	}

	if c != '{' {
		return zero, NewError(ErrUnexpectedChar, pos, "Unexpected char: "+string([]byte{c}))
	}

	pos++

	v, err := d.Deserialize(data, &pos)
	if err != nil {
		return zero, err
	}

	// Deserialize returns on the closing brace.
	pos++
	SkipWhitespace(data, &pos)

	if pos != len(data) {
		return zero, NewError(ErrTrailingData, pos, "Unexpected trailing data")
	}

	return v, nil
}
