package plan

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"strictjson-generator/internal/schema"
)

func sessionSchema() schema.Schema {
	return schema.New("Session",
		schema.Field{Name: "id", GoName: "ID", Type: schema.U64()},
		schema.Field{Name: "active", GoName: "Active", Type: schema.Bool()},
	)
}

func TestSynthesize_Session(t *testing.T) {
	p, err := Synthesize(sessionSchema())
	require.NoError(t, err)

	assert.Equal(t, "Session", p.Record)
	assert.Equal(t, "SessionJSONDeserializer", p.Deserializer)
	assert.Equal(t, "jsonrt", p.RuntimePkg)
	assert.Equal(t, []string{"id", "active"}, p.Required)
	assert.Equal(t, DefaultMessages(), p.Messages)
	assert.Equal(t, sessionSchema().Fingerprint(), p.Fingerprint)

	require.Len(t, p.Fields, 2)

	id := p.Fields[0]
	assert.Equal(t, "id", id.Key)
	assert.Equal(t, "ID", id.GoName)
	assert.Equal(t, "fID", id.Slot)
	assert.Equal(t, "fIDParsed", id.Flag)
	assert.Equal(t, PrimitiveU64, id.Parser.Primitive)
	assert.Equal(t, "uint64", id.Parser.GoType)
	assert.Equal(t, "Failed to parse id", id.FailureMessage)

	active := p.Fields[1]
	assert.Equal(t, "fActive", active.Slot)
	assert.Equal(t, PrimitiveBool, active.Parser.Primitive)
	assert.Equal(t, "Failed to parse active", active.FailureMessage)

	dump := spew.Sdump(p)
	assert.Contains(t, dump, "SessionJSONDeserializer")
}

func TestSynthesize_PrimitiveSelection(t *testing.T) {
	tests := []struct {
		name       string
		typ        schema.TypeRef
		primitive  Primitive
		goType     string
		elem       Primitive
		elemGoType string
		deser      string
	}{
		{name: "u64", typ: schema.U64(), primitive: PrimitiveU64, goType: "uint64"},
		{name: "bytestring", typ: schema.ByteString(), primitive: PrimitiveString, goType: "string"},
		{name: "bool", typ: schema.Bool(), primitive: PrimitiveBool, goType: "bool"},
		{name: "felt", typ: schema.Felt252(), primitive: PrimitiveFelt252, goType: "jsonrt.Felt252"},
		{
			name: "array of u64", typ: schema.ArrayOf(schema.U64()),
			primitive: PrimitiveArray, goType: "[]uint64", elem: PrimitiveU64, elemGoType: "uint64",
		},
		{
			name: "array of arrays", typ: schema.ArrayOf(schema.ArrayOf(schema.Felt252())),
			primitive: PrimitiveArray, goType: "[][]jsonrt.Felt252", elem: PrimitiveArray, elemGoType: "[]jsonrt.Felt252",
		},
		{name: "named", typ: schema.Named("Address"), primitive: PrimitiveObject, goType: "Address", deser: "AddressJSONDeserializer"},
		{name: "qualified named", typ: schema.Named("geo.Point"), primitive: PrimitiveObject, goType: "geo.Point", deser: "geo.PointJSONDeserializer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Synthesize(schema.New("Record", schema.Field{Name: "v", GoName: "V", Type: tt.typ}))
			require.NoError(t, err)
			require.Len(t, p.Fields, 1)

			parser := p.Fields[0].Parser
			assert.Equal(t, tt.primitive, parser.Primitive)
			assert.Equal(t, tt.goType, parser.GoType)
			assert.Equal(t, tt.deser, parser.Deserializer)

			if tt.elem == PrimitiveInvalid {
				assert.Nil(t, parser.Elem)
				return
			}

			require.NotNil(t, parser.Elem)
			assert.Equal(t, tt.elem, parser.Elem.Primitive)
			assert.Equal(t, tt.elemGoType, parser.Elem.GoType)
		})
	}
}

func TestSynthesize_NestedArrayOfRecords(t *testing.T) {
	p, err := Synthesize(schema.New("Account",
		schema.NewField("previous", schema.ArrayOf(schema.Named("Address"))),
	))
	require.NoError(t, err)

	parser := p.Fields[0].Parser
	require.NotNil(t, parser.Elem)
	assert.Equal(t, PrimitiveObject, parser.Elem.Primitive)
	assert.Equal(t, "AddressJSONDeserializer", parser.Elem.Deserializer)
	assert.Equal(t, "Previous", p.Fields[0].GoName)
}

func TestSynthesize_EmptySchema(t *testing.T) {
	p, err := Synthesize(schema.New("Empty"))
	require.NoError(t, err)
	assert.Empty(t, p.Fields)
	assert.Empty(t, p.Required)
}

func TestSynthesize_Deterministic(t *testing.T) {
	a, err := Synthesize(sessionSchema())
	require.NoError(t, err)

	b, err := Synthesize(sessionSchema())
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestSynthesizer_CachesByFingerprint(t *testing.T) {
	sy := NewSynthesizer(DefaultConfig(), nil)

	a, err := sy.Synthesize(sessionSchema())
	require.NoError(t, err)

	b, err := sy.Synthesize(sessionSchema())
	require.NoError(t, err)

	assert.Same(t, a, b)
	assert.Equal(t, 1, sy.cache.Len())

	other := schema.New("Session", schema.Field{Name: "id", GoName: "ID", Type: schema.ByteString()})
	c, err := sy.Synthesize(other)
	require.NoError(t, err)
	assert.NotSame(t, a, c)
	assert.Equal(t, 2, sy.cache.Len())
}

func TestSynthesize_RejectsDuplicateNames(t *testing.T) {
	s := schema.New("Session",
		schema.Field{Name: "id", GoName: "ID", Type: schema.U64()},
		schema.Field{Name: "id", GoName: "OtherID", Type: schema.U64()},
	)

	_, err := Synthesize(s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), schema.CodeDuplicateField)
}

func TestSynthesize_RejectsInvalidIdentifiers(t *testing.T) {
	s := schema.New("Session",
		schema.Field{Name: "id", GoName: "ID; os.Exit(1)", Type: schema.U64()},
	)

	_, err := Synthesize(s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), schema.CodeInvalidIdentifier)
}

func TestSynthesize_UniqueLocals(t *testing.T) {
	s := schema.New("Point",
		schema.Field{Name: "lower", GoName: "x", Type: schema.U64()},
		schema.Field{Name: "upper", GoName: "X", Type: schema.U64()},
	)

	p, err := Synthesize(s)
	require.NoError(t, err)

	assert.Equal(t, "fX", p.Fields[0].Slot)
	assert.Equal(t, "fXParsed", p.Fields[0].Flag)
	assert.Equal(t, "fX2", p.Fields[1].Slot)
	assert.Equal(t, "fX2Parsed", p.Fields[1].Flag)
}

func TestSynthesizeSet_Diagnostics(t *testing.T) {
	account := schema.New("Account",
		schema.NewField("home", schema.Named("Adress")),
		schema.NewField("origin", schema.Named("geo.Point")),
		schema.Field{Name: "user_id", GoName: "UserID", Type: schema.U64()},
		schema.Field{Name: "userId", GoName: "UserIDAlt", Type: schema.U64()},
	)
	address := schema.New("Address", schema.NewField("street", schema.ByteString()))
	broken := schema.New("Broken", schema.Field{Name: "", GoName: "X", Type: schema.U64()})

	set, err := schema.NewSet("accounts", account, address, broken)
	require.NoError(t, err)

	sp, diags := NewSynthesizer(DefaultConfig(), nil).SynthesizeSet(set)

	assert.Equal(t, "accounts", sp.Package)
	require.Len(t, sp.Plans, 2)
	assert.Equal(t, "Account", sp.Plans[0].Record)
	assert.Equal(t, "Address", sp.Plans[1].Record)
	assert.NotNil(t, sp.Lookup("Address"))
	assert.Nil(t, sp.Lookup("Broken"))

	require.Len(t, diags.Errors, 1)
	assert.Equal(t, schema.CodeEmptyFieldName, diags.Errors[0].Code)

	require.Len(t, diags.Warnings, 1)
	assert.Equal(t, CodeUnresolvedNamed, diags.Warnings[0].Code)
	assert.Equal(t, "home", diags.Warnings[0].Field)
	assert.Equal(t, []string{"Address"}, diags.Warnings[0].Suggestions)

	require.Len(t, diags.Infos, 1)
	assert.Equal(t, CodeSimilarFields, diags.Infos[0].Code)
	assert.Equal(t, diags, sp.Diagnostics)
}

func TestPrimitive_Names(t *testing.T) {
	assert.Equal(t, "U64", PrimitiveU64.String())
	assert.Equal(t, "Object", PrimitiveObject.String())
	assert.Equal(t, "Primitive(42)", Primitive(42).String())

	assert.Equal(t, "ParseFelt252", PrimitiveFelt252.Func())
	assert.Equal(t, "ParseArray", PrimitiveArray.Func())
	assert.Empty(t, PrimitiveInvalid.Func())

	assert.True(t, PrimitiveString.IsScalar())
	assert.False(t, PrimitiveObject.IsScalar())
	assert.Equal(t, PrimitiveInvalid, PrimitiveFor(schema.KindInvalid))
}
