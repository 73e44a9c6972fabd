package analyze

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"strictjson-generator/internal/diagnostic"
	"strictjson-generator/internal/schema"
)

const accountsPkg = "strictjson-generator/examples/accounts"

func load(t *testing.T, pattern string, typeNames ...string) (*Package, diagnostic.Diagnostics) {
	t.Helper()

	pkgs, diags, err := NewAnalyzer(DefaultConfig(), nil).LoadPackages([]string{pattern}, typeNames...)
	require.NoError(t, err)
	require.Len(t, pkgs, 1)

	return pkgs[0], diags
}

func TestAnalyzer_LoadPackages_Accounts(t *testing.T) {
	pkg, diags := load(t, accountsPkg)
	require.NoError(t, diags.Error())

	assert.Equal(t, accountsPkg, pkg.Path)
	assert.Equal(t, "accounts", pkg.Name)
	assert.NotEmpty(t, pkg.Dir)
	assert.Empty(t, pkg.Imports)

	// Deserializers in the generated file are not records.
	assert.Equal(t, []string{"Session", "Address", "Account"}, pkg.Set.Names())

	session, ok := pkg.Set.Lookup("Session")
	require.True(t, ok)
	assert.Equal(t, `Session{"id" ID u64; "active" Active bool}`, session.String())

	account, ok := pkg.Set.Lookup("Account")
	require.True(t, ok)
	assert.Equal(t,
		`Account{"owner" Owner ByteArray; "balance" Balance u64; "public_key" PublicKey felt252; `+
			`"frozen" Frozen bool; "tags" Tags Array<ByteArray>; "scores" Scores Array<Array<u64>>; `+
			`"home" Home Address; "previous" Previous Array<Address>}`,
		account.String())
}

func TestAnalyzer_LoadPackages_SelectedTypePullsNestedRecords(t *testing.T) {
	pkg, diags := load(t, accountsPkg, "Account")
	require.NoError(t, diags.Error())

	assert.Equal(t, []string{"Address", "Account"}, pkg.Set.Names())
}

func TestAnalyzer_LoadPackages_Unsupported(t *testing.T) {
	pkg, diags := load(t, "./testdata/unsupported")

	assert.Equal(t, []string{"Inner", "Outer", "Wrapper", "Tagged"}, pkg.Set.Names())

	var bad []diagnostic.Diagnostic

	for _, d := range diags.Errors {
		if d.Record == "Bad" {
			bad = append(bad, d)
		}
	}

	require.Len(t, bad, 5)

	fields := make([]string, 0, len(bad))
	for _, d := range bad {
		assert.Equal(t, CodeUnsupportedType, d.Code)

		fields = append(fields, d.Field)
	}

	assert.Equal(t, []string{"count", "Lookup", "Ptr", "State", "Fixed"}, fields)
	assert.Equal(t, "Count: int is not supported; use uint64, string or bool", bad[0].Message)

	assert.ElementsMatch(t, []string{CodeGenericType, CodeEmbeddedField}, diagnostic.Codes(diags.Warnings))
	assert.Equal(t, []string{CodeIgnoredTagOption}, diagnostic.Codes(diags.Infos))

	tagged, ok := pkg.Set.Lookup("Tagged")
	require.True(t, ok)
	assert.Equal(t, `Tagged{"id" ID u64; "-" Dash ByteArray; "Plain" Plain bool}`, tagged.String())

	wrapper, ok := pkg.Set.Lookup("Wrapper")
	require.True(t, ok)
	assert.Equal(t, `Wrapper{"name" Name ByteArray}`, wrapper.String())

	outer, ok := pkg.Set.Lookup("Outer")
	require.True(t, ok)
	assert.True(t, schema.ArrayOf(schema.Named("Inner")).Equal(outer.Field(1).Type))
}

func TestAnalyzer_LoadPackages_ExplicitSelectionErrors(t *testing.T) {
	tests := []struct {
		typeName string
		code     string
	}{
		{"Outr", CodeTypeNotFound},
		{"Box", CodeGenericType},
		{"Status", CodeNotAStruct},
		{"Bad", CodeUnsupportedType},
	}

	for _, tt := range tests {
		t.Run(tt.typeName, func(t *testing.T) {
			pkg, diags := load(t, "./testdata/unsupported", tt.typeName)

			require.NotEmpty(t, diags.Errors)
			assert.Equal(t, tt.code, diags.Errors[0].Code)
			assert.Empty(t, pkg.Set.Names())
		})
	}

	_, diags := load(t, "./testdata/unsupported", "Outr")
	assert.Contains(t, diags.Errors[0].Suggestions, "Outer")
}

func TestAnalyzer_LoadPackages_ForeignRecords(t *testing.T) {
	pkg, diags := load(t, "./testdata/foreign")
	require.NoError(t, diags.Error())

	assert.Equal(t, map[string]string{accountsPkg: "accounts"}, pkg.Imports)
	assert.Len(t, diags.Infos, 2)

	order, ok := pkg.Set.Lookup("Order")
	require.True(t, ok)
	assert.Equal(t,
		`Order{"ship" Ship accounts.Address; "sessions" Sessions Array<accounts.Session>; "key" Key felt252}`,
		order.String())
}

func TestAnalyzer_LoadPackages_LoadError(t *testing.T) {
	_, _, err := NewAnalyzer(DefaultConfig(), nil).LoadPackages([]string{"./testdata/missing"})
	require.Error(t, err)
}

func TestParseJSONTag(t *testing.T) {
	tests := []struct {
		tag  string
		want jsonTag
	}{
		{``, jsonTag{}},
		{`json:"id"`, jsonTag{Name: "id"}},
		{`json:"id,omitempty"`, jsonTag{Name: "id", Options: []string{"omitempty"}}},
		{`json:",string"`, jsonTag{Options: []string{"string"}}},
		{`json:"-"`, jsonTag{Skip: true}},
		{`json:"-,"`, jsonTag{Name: "-"}},
		{`yaml:"x"`, jsonTag{}},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			assert.Equal(t, tt.want, parseJSONTag(reflect.StructTag(tt.tag)))
		})
	}
}

func TestTypePath(t *testing.T) {
	p := NewTypePath("Scores")
	assert.Equal(t, "Scores", p.String())
	assert.Equal(t, "Scores[][]", p.Slice().Slice().String())
	assert.Equal(t, "Outer.In", NewTypePath("Outer").Field("In").String())
	assert.Equal(t, "Scores", p.String())
}

func TestTypeID_String(t *testing.T) {
	assert.Equal(t, "Session", TypeID{Name: "Session"}.String())
	assert.Equal(t, accountsPkg+".Session", TypeID{PkgPath: accountsPkg, Name: "Session"}.String())
}

func TestAnalyzer_LoadPackages_IgnoresStaleGeneratedFile(t *testing.T) {
	pkg, diags := load(t, "./testdata/stale")
	require.NoError(t, diags.Error())

	assert.Equal(t, []string{"Point"}, pkg.Set.Names())

	point, ok := pkg.Set.Lookup("Point")
	require.True(t, ok)
	assert.Equal(t, `Point{"x" X u64}`, point.String())
}
