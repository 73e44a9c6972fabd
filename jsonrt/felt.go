package jsonrt

import (
	"encoding/hex"
	"math/big"
	"strings"
)

// Felt252 is an element of the STARK prime field, stored as 32 big-endian
// bytes. The zero value is the field element 0.
type Felt252 [32]byte

// feltPrime is 2^251 + 17*2^192 + 1.
var feltPrime = func() *big.Int {
	p := new(big.Int).Lsh(big.NewInt(1), 251)
	p.Add(p, new(big.Int).Lsh(big.NewInt(17), 192))

	return p.Add(p, big.NewInt(1))
}()

// NewFelt252 converts v to a field element. v must be in [0, P).
func NewFelt252(v *big.Int) (Felt252, error) {
	var f Felt252
	if v.Sign() < 0 || v.Cmp(feltPrime) >= 0 {
		return f, syntaxErrorf(0, "value %s out of felt252 range", v)
	}

	v.FillBytes(f[:])

	return f, nil
}

// Felt252FromUint64 converts v to a field element.
func Felt252FromUint64(v uint64) Felt252 {
	f, _ := NewFelt252(new(big.Int).SetUint64(v))
	return f
}

// ParseFelt252Text parses a decimal or 0x-prefixed hexadecimal field element.
func ParseFelt252Text(s string) (Felt252, error) {
	digits, base := s, 10
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		digits, base = s[2:], 16
	}

	if digits == "" {
		return Felt252{}, syntaxErrorf(0, "empty felt252 literal %q", s)
	}

	for i := 0; i < len(digits); i++ {
		c := digits[i]
		if isDigit(c) || (base == 16 && isHexLetter(c)) {
			continue
		}

		return Felt252{}, syntaxErrorf(i, "invalid felt252 literal %q", s)
	}

	v, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return Felt252{}, syntaxErrorf(0, "invalid felt252 literal %q", s)
	}

	return NewFelt252(v)
}

func isHexLetter(c byte) bool {
	return (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// ParseFelt252 parses a field element written either as a JSON integer or
// as a JSON string holding a decimal or 0x-prefixed hexadecimal integer.
func ParseFelt252(data []byte, pos *int) (Felt252, error) {
	SkipWhitespace(data, pos)

	start := *pos

	if c, ok := Peek(data, start); ok && c == '"' {
		s, err := ParseString(data, pos)
		if err != nil {
			return Felt252{}, err
		}

		f, err := ParseFelt252Text(s)
		if err != nil {
			return Felt252{}, syntaxErrorf(start, "invalid felt252 string %q", s)
		}

		return f, nil
	}

	digits, err := scanUnsigned(data, pos)
	if err != nil {
		return Felt252{}, err
	}

	f, err := ParseFelt252Text(string(digits))
	if err != nil {
		return Felt252{}, syntaxErrorf(start, "felt252 %s out of range", digits)
	}

	return f, nil
}

// BigInt returns the element as a non-negative integer.
func (f Felt252) BigInt() *big.Int {
	return new(big.Int).SetBytes(f[:])
}

// IsZero reports whether f is the zero element.
func (f Felt252) IsZero() bool {
	return f == Felt252{}
}

// String returns the element as 0x-prefixed hexadecimal without leading zeros.
func (f Felt252) String() string {
	s := strings.TrimLeft(hex.EncodeToString(f[:]), "0")
	if s == "" {
		s = "0"
	}

	return "0x" + s
}

// MarshalJSON encodes f as a 0x-prefixed hexadecimal string.
func (f Felt252) MarshalJSON() ([]byte, error) {
	return []byte(`"` + f.String() + `"`), nil
}

// UnmarshalJSON accepts the forms ParseFelt252 accepts.
func (f *Felt252) UnmarshalJSON(data []byte) error {
	pos := 0

	v, err := ParseFelt252(data, &pos)
	if err != nil {
		return err
	}

	SkipWhitespace(data, &pos)

	if pos != len(data) {
		return syntaxErrorf(pos, "unexpected data after felt252")
	}

	*f = v

	return nil
}
