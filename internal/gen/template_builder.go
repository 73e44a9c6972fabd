package gen

import (
	"errors"
	"fmt"
	"go/token"
	"sort"
	"strconv"
	"strings"

	"strictjson-generator/internal/common"
	"strictjson-generator/internal/plan"
)

// templateData holds all data needed for the file template.
type templateData struct {
	PackageName      string
	Imports          []importSpec
	Runtime          string
	Records          []recordData
	GenerateComments bool
	UnmarshalHelpers bool
}

// recordData is one record's deserializer. String fields that end up in
// Go string literals are already quoted.
type recordData struct {
	Record       string
	Deserializer string
	Fields       []fieldData
	Msg          messageData
	Literal      string
}

// fieldData is one case of the field-name switch.
type fieldData struct {
	Key            string
	Slot           string
	Flag           string
	GoType         string
	Call           string
	FailureMessage string
}

// messageData mirrors plan.Messages as quoted literals.
type messageData struct {
	MalformedFieldName   string
	MissingSeparator     string
	UnknownField         string
	MissingRequiredField string
	UnexpectedChar       string
	UnexpectedEOF        string
}

// buildTemplateData constructs the template data from the plans of one file.
func (g *Generator) buildTemplateData(pkg string, plans []*plan.ParsePlan) (*templateData, error) {
	if !token.IsIdentifier(pkg) {
		return nil, fmt.Errorf("package name %q is not an identifier", pkg)
	}

	rt := plans[0].RuntimePkg
	for _, p := range plans[1:] {
		if p.RuntimePkg != rt {
			return nil, fmt.Errorf("plans disagree on the runtime package name: %s and %s", rt, p.RuntimePkg)
		}
	}

	if err := checkShadowing(rt, plans); err != nil {
		return nil, err
	}

	data := &templateData{
		PackageName:      pkg,
		Imports:          g.imports(rt),
		Runtime:          rt,
		GenerateComments: g.config.GenerateComments,
		UnmarshalHelpers: g.config.UnmarshalHelpers,
	}

	ordered, err := orderPlans(plans)
	if err != nil {
		g.log.WithError(err).Debug("keeping declaration order")

		ordered = plans
	}

	for _, p := range ordered {
		data.Records = append(data.Records, buildRecordData(p))
	}

	return data, nil
}

// checkShadowing rejects records named like the runtime package or like a
// value slot or parsed flag of a record in the same file. Such a record
// could not be referenced inside the Deserialize methods.
func checkShadowing(rt string, plans []*plan.ParsePlan) error {
	records := make(map[string]bool, len(plans))
	for _, p := range plans {
		records[p.Record] = true
	}

	if records[rt] {
		return fmt.Errorf("record %s has the name of the runtime package", rt)
	}

	for _, p := range plans {
		for _, f := range p.Fields {
			for _, local := range []string{f.Slot, f.Flag} {
				if records[local] {
					return fmt.Errorf("record %s is shadowed by a local of %s", local, p.Deserializer)
				}
			}
		}
	}

	return nil
}

// imports lists the runtime first, then the packages of foreign records
// sorted by path. go/format regroups them alphabetically. An alias is
// only written when the package name differs from the last path element.
func (g *Generator) imports(rt string) []importSpec {
	specs := []importSpec{newImportSpec(g.config.RuntimeImport, rt)}

	paths := make([]string, 0, len(g.config.Imports))
	for path := range g.config.Imports {
		if path != g.config.RuntimeImport {
			paths = append(paths, path)
		}
	}

	sort.Strings(paths)

	for _, path := range paths {
		specs = append(specs, newImportSpec(path, g.config.Imports[path]))
	}

	return specs
}

func newImportSpec(path, name string) importSpec {
	spec := importSpec{Path: path}
	if name != "" && common.PkgAlias(path) != name {
		spec.Alias = name
	}

	return spec
}

func buildRecordData(p *plan.ParsePlan) recordData {
	rd := recordData{
		Record:       p.Record,
		Deserializer: p.Deserializer,
		Literal:      recordLiteral(p),
		Msg: messageData{
			MalformedFieldName:   strconv.Quote(p.Messages.MalformedFieldName),
			MissingSeparator:     strconv.Quote(p.Messages.MissingSeparator),
			UnknownField:         strconv.Quote(p.Messages.UnknownField),
			MissingRequiredField: strconv.Quote(p.Messages.MissingRequiredField),
			UnexpectedChar:       strconv.Quote(p.Messages.UnexpectedChar),
			UnexpectedEOF:        strconv.Quote(p.Messages.UnexpectedEOF),
		},
	}

	for _, f := range p.Fields {
		rd.Fields = append(rd.Fields, fieldData{
			Key:            strconv.Quote(f.Key),
			Slot:           f.Slot,
			Flag:           f.Flag,
			GoType:         f.Parser.GoType,
			Call:           callExpr(p.RuntimePkg, f.Parser),
			FailureMessage: strconv.Quote(f.FailureMessage),
		})
	}

	return rd
}

// orderPlans puts every record after the records it nests. Ties keep
// declaration order. Records that nest each other through arrays form a
// cycle, reported as an error naming them.
func orderPlans(plans []*plan.ParsePlan) ([]*plan.ParsePlan, error) {
	index := make(map[string]int, len(plans))
	for i, p := range plans {
		index[p.Record] = i
	}

	order, err := dependencyOrder(len(plans), func(i int) []int {
		var deps []int

		for _, f := range plans[i].Fields {
			for _, ref := range f.Type.NamedRefs() {
				if j, ok := index[ref]; ok {
					deps = append(deps, j)
				}
			}
		}

		return deps
	})
	if errors.Is(err, errCycle) {
		names := make([]string, len(order))
		for k, i := range order {
			names[k] = plans[i].Record
		}

		return nil, fmt.Errorf("ordering records: %w: %s", err, strings.Join(names, ", "))
	}

	if err != nil {
		return nil, fmt.Errorf("ordering records: %w", err)
	}

	out := make([]*plan.ParsePlan, len(order))
	for k, i := range order {
		out[k] = plans[i]
	}

	return out, nil
}
