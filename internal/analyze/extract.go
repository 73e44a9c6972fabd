package analyze

import (
	"fmt"
	"go/token"
	"go/types"
	"reflect"
	"slices"
	"sort"
	"strings"

	"strictjson-generator/internal/diagnostic"
	"strictjson-generator/internal/match"
	"strictjson-generator/internal/schema"
)

// Diagnostic codes reported by the extractor.
const (
	CodeTypeNotFound     = "TYPE_NOT_FOUND"
	CodeNotAStruct       = "NOT_A_STRUCT"
	CodeGenericType      = "GENERIC_TYPE"
	CodeUnsupportedType  = "UNSUPPORTED_TYPE"
	CodeEmbeddedField    = "EMBEDDED_FIELD"
	CodeIgnoredTagOption = "IGNORED_TAG_OPTION"
	CodeForeignRecord    = "FOREIGN_RECORD"
)

const felt252Name = "Felt252"

// extractor maps the struct types of one package to schemas.
type extractor struct {
	pkg       *types.Package
	fset      *token.FileSet
	runtime   string
	generated map[string]bool

	queue   []*types.TypeName
	queued  map[TypeID]bool
	imports map[string]string
	diags   diagnostic.Diagnostics
}

func newExtractor(pkg *types.Package, fset *token.FileSet, runtime string, generated map[string]bool) *extractor {
	return &extractor{
		pkg:       pkg,
		fset:      fset,
		runtime:   runtime,
		generated: generated,
		queued:    make(map[TypeID]bool),
		imports:   make(map[string]string),
	}
}

// extract builds the set of the selected records and the records they nest.
func (e *extractor) extract(typeNames []string) (*schema.Set, error) {
	explicit := len(typeNames) > 0
	if explicit {
		e.selectNamed(typeNames)
	} else {
		e.selectAll()
	}

	type entry struct {
		pos    token.Pos
		schema schema.Schema
	}

	var entries []entry

	for len(e.queue) > 0 {
		tn := e.queue[0]
		e.queue = e.queue[1:]

		s, ok := e.schemaFor(tn, explicit)
		if ok {
			entries = append(entries, entry{pos: tn.Pos(), schema: s})
		}
	}

	sort.SliceStable(entries, func(i, j int) bool { return entries[i].pos < entries[j].pos })

	schemas := make([]schema.Schema, len(entries))
	for i, en := range entries {
		schemas[i] = en.schema
	}

	return schema.NewSet(e.pkg.Name(), schemas...)
}

func (e *extractor) selectNamed(typeNames []string) {
	scope := e.pkg.Scope()

	for _, name := range typeNames {
		tn, ok := scope.Lookup(name).(*types.TypeName)
		if !ok {
			e.diags.AddError(CodeTypeNotFound,
				fmt.Sprintf("type %s not found in package %s", name, e.pkg.Path()), name, "",
				match.Suggest(name, scope.Names(), 0.6, 3)...)

			continue
		}

		e.enqueue(tn)
	}
}

func (e *extractor) selectAll() {
	scope := e.pkg.Scope()

	for _, name := range scope.Names() {
		tn, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || !tn.Exported() || tn.IsAlias() {
			continue
		}

		if e.generated[e.fset.File(tn.Pos()).Name()] {
			continue
		}

		if _, ok := tn.Type().Underlying().(*types.Struct); !ok {
			continue
		}

		e.enqueue(tn)
	}
}

func (e *extractor) enqueue(tn *types.TypeName) {
	id := TypeID{PkgPath: e.pkg.Path(), Name: tn.Name()}
	if e.queued[id] {
		return
	}

	e.queued[id] = true
	e.queue = append(e.queue, tn)
}

// schemaFor maps one struct type. A record with an unsupported field is
// reported and left out.
func (e *extractor) schemaFor(tn *types.TypeName, explicit bool) (schema.Schema, bool) {
	name := tn.Name()

	if tn.IsAlias() {
		e.diags.AddError(CodeNotAStruct, fmt.Sprintf("%s is a type alias", name), name, "")
		return schema.Schema{}, false
	}

	named, ok := tn.Type().(*types.Named)
	if !ok {
		e.diags.AddError(CodeNotAStruct, fmt.Sprintf("%s is not a named type", name), name, "")
		return schema.Schema{}, false
	}

	st, ok := named.Underlying().(*types.Struct)
	if !ok {
		e.diags.AddError(CodeNotAStruct,
			fmt.Sprintf("%s is not a struct (underlying type %s)", name, named.Underlying()), name, "")

		return schema.Schema{}, false
	}

	if named.TypeParams().Len() > 0 {
		msg := fmt.Sprintf("generic type %s cannot be deserialized", name)
		if explicit {
			e.diags.AddError(CodeGenericType, msg, name, "")
		} else {
			e.diags.AddWarning(CodeGenericType, msg+"; skipped", name, "")
		}

		return schema.Schema{}, false
	}

	var (
		fields []schema.Field
		bad    bool
	)

	for i := range st.NumFields() {
		field := st.Field(i)

		if field.Embedded() {
			e.diags.AddWarning(CodeEmbeddedField,
				fmt.Sprintf("embedded field %s is skipped", field.Name()), name, field.Name())

			continue
		}

		if !field.Exported() {
			continue
		}

		tag := parseJSONTag(reflect.StructTag(st.Tag(i)))
		if tag.Skip {
			continue
		}

		key := tag.Name
		if key == "" {
			key = field.Name()
		}

		if opts := slices.DeleteFunc(slices.Clone(tag.Options), func(o string) bool { return o == "" }); len(opts) > 0 {
			e.diags.AddInfo(CodeIgnoredTagOption,
				fmt.Sprintf("json tag options %s are ignored; every field is required", strings.Join(opts, ",")),
				name, key)
		}

		ref, err := e.typeRef(field.Type(), NewTypePath(field.Name()))
		if err != nil {
			e.diags.AddError(CodeUnsupportedType, err.Error(), name, key)
			bad = true

			continue
		}

		fields = append(fields, schema.Field{Name: key, GoName: field.Name(), Type: ref})
	}

	if bad {
		return schema.Schema{}, false
	}

	return schema.New(name, fields...), true
}

// typeRef maps a field type. Struct types of the extracted package are
// queued for extraction.
func (e *extractor) typeRef(t types.Type, path *TypePath) (schema.TypeRef, error) {
	switch tt := types.Unalias(t).(type) {
	case *types.Basic:
		switch tt.Kind() {
		case types.Uint64:
			return schema.U64(), nil
		case types.String:
			return schema.ByteString(), nil
		case types.Bool:
			return schema.Bool(), nil
		default:
			return schema.TypeRef{}, fmt.Errorf("%s: %s is not supported; use uint64, string or bool", path, tt)
		}

	case *types.Slice:
		elem, err := e.typeRef(tt.Elem(), path.Slice())
		if err != nil {
			return schema.TypeRef{}, err
		}

		return schema.ArrayOf(elem), nil

	case *types.Named:
		return e.namedRef(tt, path)

	default:
		return schema.TypeRef{}, fmt.Errorf("%s: %s is not supported", path, tt)
	}
}

func (e *extractor) namedRef(t *types.Named, path *TypePath) (schema.TypeRef, error) {
	obj := t.Obj()
	if obj.Pkg() == nil {
		return schema.TypeRef{}, fmt.Errorf("%s: %s is not supported", path, t)
	}

	if obj.Pkg().Path() == e.runtime && obj.Name() == felt252Name {
		return schema.Felt252(), nil
	}

	if _, ok := t.Underlying().(*types.Struct); !ok {
		return schema.TypeRef{}, fmt.Errorf("%s: named type %s with underlying %s is not supported",
			path, t, t.Underlying())
	}

	if t.TypeArgs().Len() > 0 {
		return schema.TypeRef{}, fmt.Errorf("%s: generic type %s is not supported", path, t)
	}

	if obj.Pkg() == e.pkg {
		e.enqueue(obj)
		return schema.Named(obj.Name()), nil
	}

	e.imports[obj.Pkg().Path()] = obj.Pkg().Name()
	qualified := obj.Pkg().Name() + "." + obj.Name()

	e.diags.AddInfo(CodeForeignRecord,
		fmt.Sprintf("%s needs a generated deserializer in package %s", qualified, obj.Pkg().Path()),
		"", path.String())

	return schema.Named(qualified), nil
}
