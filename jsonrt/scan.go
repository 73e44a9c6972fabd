package jsonrt

// SkipWhitespace advances the cursor past JSON insignificant whitespace.
func SkipWhitespace(data []byte, pos *int) {
	for *pos < len(data) {
		switch data[*pos] {
		case ' ', '\t', '\n', '\r':
			*pos++
		default:
			return
		}
	}
}

// Peek returns the byte at offset without consuming it. ok is false past
// the end of data.
func Peek(data []byte, offset int) (c byte, ok bool) {
	if offset < 0 || offset >= len(data) {
		return 0, false
	}

	return data[offset], true
}

// expect consumes c at the cursor.
func expect(data []byte, pos *int, c byte) error {
	got, ok := Peek(data, *pos)
	if !ok {
		return syntaxErrorf(*pos, "expected %q, got end of input", c)
	}

	if got != c {
		return syntaxErrorf(*pos, "expected %q, got %q", c, got)
	}

	*pos++

	return nil
}

// consumeLiteral consumes lit at the cursor.
func consumeLiteral(data []byte, pos *int, lit string) bool {
	end := *pos + len(lit)
	if end > len(data) || string(data[*pos:end]) != lit {
		return false
	}

	*pos = end

	return true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
