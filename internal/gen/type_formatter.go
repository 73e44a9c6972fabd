package gen

import (
	"fmt"
	"strings"

	"strictjson-generator/internal/plan"
)

// importSpec represents an import statement.
type importSpec struct {
	Alias string
	Path  string
}

// String renders the import line as it appears inside an import block.
func (i importSpec) String() string {
	if i.Alias != "" {
		return i.Alias + " " + fmt.Sprintf("%q", i.Path)
	}

	return fmt.Sprintf("%q", i.Path)
}

// callExpr renders the expression parsing a field value at the cursor.
func callExpr(rt string, p plan.Parser) string {
	switch p.Primitive {
	case plan.PrimitiveArray:
		return fmt.Sprintf("%s.%s[%s](data, pos, %s)",
			rt, p.Primitive.Func(), p.Elem.GoType, parserExpr(rt, *p.Elem))
	case plan.PrimitiveObject:
		return fmt.Sprintf("%s.%s[%s](data, pos, %s{})",
			rt, p.Primitive.Func(), p.GoType, p.Deserializer)
	default:
		return rt + "." + p.Primitive.Func() + "(data, pos)"
	}
}

// parserExpr renders p as a jsonrt.ParseFunc value, used for array elements.
func parserExpr(rt string, p plan.Parser) string {
	switch p.Primitive {
	case plan.PrimitiveArray:
		return fmt.Sprintf("%s.ArrayOf[%s](%s)", rt, p.Elem.GoType, parserExpr(rt, *p.Elem))
	case plan.PrimitiveObject:
		return fmt.Sprintf("%s.ObjectOf[%s](%s{})", rt, p.GoType, p.Deserializer)
	default:
		return rt + "." + p.Primitive.Func()
	}
}

// recordLiteral renders the composite literal built from the field slots.
func recordLiteral(p *plan.ParsePlan) string {
	if len(p.Fields) == 0 {
		return p.Record + "{}"
	}

	var sb strings.Builder

	sb.WriteString(p.Record)
	sb.WriteString("{\n")

	for _, f := range p.Fields {
		fmt.Fprintf(&sb, "\t\t%s: %s,\n", f.GoName, f.Slot)
	}

	sb.WriteString("\t}")

	return sb.String()
}
