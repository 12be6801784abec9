package cgen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vast-data/sane-optgen/core"
)

// ConstraintTable renders the static table backing a parsed constraint.
// It returns "" for options without one, including verbatim constraints.
func ConstraintTable(o *core.Option) (string, error) {
	c := o.Constraint
	switch {
	case c.IsRange():
		return rangeTable(o.ConstraintID, o.Type, *c.Range), nil
	case c.IsList():
		return listTable(o, c.List)
	default:
		return "", nil
	}
}

func rangeTable(name string, t core.OptionType, r [3]string) string {
	if t == core.TypeFixed {
		for i := range r {
			r[i] = fix(r[i])
		}
	}
	return fmt.Sprintf("static const SANE_Range %s =\n  { %s,%s,%s };\n", name, r[0], r[1], r[2])
}

func listTable(o *core.Option, items []string) (string, error) {
	var etype string
	var elems []string
	switch o.Type {
	case core.TypeInt:
		etype = "SANE_Word"
		elems = append([]string{strconv.Itoa(len(items))}, items...)
	case core.TypeFixed:
		etype = "SANE_Word"
		elems = []string{strconv.Itoa(len(items))}
		for _, it := range items {
			elems = append(elems, fix(it))
		}
	case core.TypeString:
		etype = "SANE_String_Const"
		for _, it := range items {
			elems = append(elems, i18n(it))
		}
		elems = append(elems, "NULL")
	default:
		return "", core.NewParseError(o.Line, o.Name, "list constraints are not supported for options of type %s", o.Type)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "static const %s %s[%d] = {\n", etype, o.ConstraintID, len(elems))
	for _, e := range elems[:len(elems)-1] {
		sb.WriteString("\t" + e + ",\n")
	}
	sb.WriteString("\t" + elems[len(elems)-1] + " };\n")
	return sb.String(), nil
}
