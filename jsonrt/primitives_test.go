package jsonrt

import (
	"math"
	"strconv"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkipWhitespace(t *testing.T) {
	data := []byte(" \t\r\n x")
	pos := 0
	SkipWhitespace(data, &pos)
	assert.Equal(t, 5, pos)

	// Already at a significant byte.
	SkipWhitespace(data, &pos)
	assert.Equal(t, 5, pos)

	// End of input.
	empty := []byte("  ")
	pos = 0
	SkipWhitespace(empty, &pos)
	assert.Equal(t, 2, pos)
}

func TestPeek(t *testing.T) {
	c, ok := Peek([]byte("ab"), 1)
	assert.True(t, ok)
	assert.Equal(t, byte('b'), c)

	_, ok = Peek([]byte("ab"), 2)
	assert.False(t, ok)

	_, ok = Peek([]byte("ab"), -1)
	assert.False(t, ok)
}

func TestParseString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantPos int
		wantErr bool
	}{
		{name: "plain", input: `"hello",`, want: "hello", wantPos: 7},
		{name: "empty", input: `""`, want: "", wantPos: 2},
		{name: "leading whitespace", input: `  "a"`, want: "a", wantPos: 5},
		{name: "escaped quote", input: `"a\"b"`, want: `a"b`, wantPos: 6},
		{name: "unicode escape", input: `"\u00e9t\u00e9"`, want: "été", wantPos: 15},
		{name: "newline escape", input: `"a\nb"`, want: "a\nb", wantPos: 6},
		{name: "raw utf8", input: `"日本"`, want: "日本", wantPos: 8},
		{name: "not a string", input: `123`, wantErr: true},
		{name: "unterminated", input: `"abc`, wantErr: true},
		{name: "control character", input: "\"a\x01b\"", wantErr: true},
		{name: "bad escape", input: `"\q"`, wantErr: true},
		{name: "end of input", input: ``, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := 0
			got, err := ParseString([]byte(tt.input), &pos)
			if tt.wantErr {
				require.Error(t, err)

				var se *SyntaxError
				assert.ErrorAs(t, err, &se)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantPos, pos)
		})
	}
}

func TestParseString_MatchesReferenceDecoder(t *testing.T) {
	inputs := []string{
		`"plain"`,
		`"tab\tand\\slash\/"`,
		`"\ud83d\ude00 emoji"`,
		`"mixed \"quotes\" and \b\f\r"`,
	}

	for _, in := range inputs {
		var want string
		require.NoError(t, json.Unmarshal([]byte(in), &want))

		pos := 0
		got, err := ParseString([]byte(in), &pos)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
		assert.Equal(t, len(in), pos, in)
	}
}

func TestParseU64(t *testing.T) {
	maxU64 := strconv.FormatUint(math.MaxUint64, 10)

	tests := []struct {
		name    string
		input   string
		want    uint64
		wantPos int
		wantErr bool
	}{
		{name: "zero", input: "0", want: 0, wantPos: 1},
		{name: "simple", input: "42,", want: 42, wantPos: 2},
		{name: "leading whitespace", input: " 7}", want: 7, wantPos: 2},
		{name: "max", input: maxU64, want: math.MaxUint64, wantPos: len(maxU64)},
		{name: "overflow", input: "18446744073709551616", wantErr: true},
		{name: "negative", input: "-1", wantErr: true},
		{name: "leading zero", input: "01", wantErr: true},
		{name: "fraction", input: "1.5", wantErr: true},
		{name: "exponent", input: "1e3", wantErr: true},
		{name: "string", input: `"1"`, wantErr: true},
		{name: "end of input", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := 0
			got, err := ParseU64([]byte(tt.input), &pos)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantPos, pos)
		})
	}
}

func TestParseBool(t *testing.T) {
	pos := 0
	v, err := ParseBool([]byte("true,"), &pos)
	require.NoError(t, err)
	assert.True(t, v)
	assert.Equal(t, 4, pos)

	pos = 0
	v, err = ParseBool([]byte(" false"), &pos)
	require.NoError(t, err)
	assert.False(t, v)
	assert.Equal(t, 6, pos)

	for _, in := range []string{"tru", "TRUE", "1", `"true"`, ""} {
		pos = 0
		_, err = ParseBool([]byte(in), &pos)
		assert.Error(t, err, in)
	}
}

func TestParseArray(t *testing.T) {
	pos := 0
	got, err := ParseArray([]byte(`[1, 2 ,3]`), &pos, ParseU64)
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 2, 3}, got)
	assert.Equal(t, 9, pos)

	pos = 0
	empty, err := ParseArray([]byte(`[ ]`), &pos, ParseString)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	pos = 0
	nested, err := ParseArray([]byte(`[[1],[],[2,3]]`), &pos, ArrayOf(ParseU64))
	require.NoError(t, err)
	assert.Equal(t, [][]uint64{{1}, {}, {2, 3}}, nested)

	for _, in := range []string{`[1,]`, `[1 2]`, `[1`, `1`, `["a"]`, `[`} {
		pos = 0
		_, err = ParseArray([]byte(in), &pos, ParseU64)
		assert.Error(t, err, in)
	}
}
