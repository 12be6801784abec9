package cgen

import (
	"strconv"
	"strings"

	"github.com/vast-data/sane-optgen/core"
)

// Code holds the C fragments that initialize one option descriptor.
type Code struct {
	OptID string
	Group bool

	Name           string
	Title          string
	Desc           string
	Type           string
	Unit           string
	Size           string
	Cap            string
	Info           string
	ConstraintType string

	// Constraint is the "<member> = <expr>" assignment into sod->constraint, or empty.
	Constraint string
	// DefaultLines are the complete def/val assignment statements, possibly none.
	DefaultLines []string
}

// Synthesize renders the C fragments of a normalized option. Verbatim values
// always take precedence over the type-specific rendering of their field.
func Synthesize(o *core.Option) (*Code, error) {
	c := &Code{
		OptID: o.OptID,
		Group: o.IsGroup(),
		Type:  o.Type.CName(),
	}

	c.Name = field(o, core.FieldName, func() string { return `"` + o.Name + `"` })
	c.Title = field(o, core.FieldTitle, func() string { return i18n(o.Title) })
	c.Desc = field(o, core.FieldDesc, func() string { return i18n(o.Desc) })
	c.Unit = field(o, core.FieldUnit, func() string { return o.Unit })
	c.Size = field(o, core.FieldSize, func() string { return sizeCode(o) })
	c.Cap = field(o, core.FieldCap, func() string { return flagsCode(o.Caps) })
	c.Info = field(o, core.FieldInfo, func() string { return flagsCode(o.Info) })
	c.ConstraintType = field(o, core.FieldConstraintType, func() string { return o.ConstraintKind.CName() })

	if c.Group {
		return c, nil
	}

	constraint, err := constraintCode(o)
	if err != nil {
		return nil, err
	}
	c.Constraint = constraint

	def, err := defaultCode(o)
	if err != nil {
		return nil, err
	}
	if def != "" {
		c.DefaultLines = append(c.DefaultLines, "opt->def."+def+";")
		if o.ConstraintKind == core.ConstraintStringList {
			c.DefaultLines = append(c.DefaultLines,
				"opt->val.w = find_string_in_list(opt->def.s, sod->constraint.string_list);")
		} else {
			c.DefaultLines = append(c.DefaultLines, "opt->val."+def+";")
		}
	}
	return c, nil
}

func field(o *core.Option, f core.Field, render func() string) string {
	if code, ok := o.VerbatimCode(f); ok {
		return code
	}
	return render()
}

func i18n(s string) string {
	return `SANE_I18N("` + s + `")`
}

func fix(s string) string {
	return "SANE_FIX(" + s + ")"
}

func sizeCode(o *core.Option) string {
	switch o.Type {
	case core.TypeString:
		return strconv.Itoa(o.Count + 1)
	case core.TypeInt, core.TypeFixed:
		return strconv.Itoa(o.Count) + " * sizeof(SANE_Word)"
	case core.TypeButton:
		return "0"
	default:
		return "sizeof(SANE_Word)"
	}
}

func flagsCode(flags []string) string {
	if len(flags) == 0 {
		return "0"
	}
	return strings.Join(flags, "|")
}

func constraintCode(o *core.Option) (string, error) {
	if code, ok := o.VerbatimCode(core.FieldConstraint); ok {
		return code, nil
	}
	if o.Constraint == nil {
		return "", nil
	}
	switch o.ConstraintKind {
	case core.ConstraintRange:
		return o.ConstraintKind.Member() + " = &" + o.ConstraintID, nil
	case core.ConstraintWordList, core.ConstraintStringList:
		return o.ConstraintKind.Member() + " = " + o.ConstraintID, nil
	default:
		return "", core.NewParseError(o.Line, o.Name,
			"constraint type %s cannot reference the generated table %s", o.ConstraintKind.CName(), o.ConstraintID)
	}
}

// defaultCode returns the "<member> = <expr>" part of the default assignment.
func defaultCode(o *core.Option) (string, error) {
	if code, ok := o.VerbatimCode(core.FieldDefault); ok {
		return code, nil
	}
	if !o.HasDefault {
		return "", nil
	}

	d := o.Default
	switch {
	case d == core.DefaultMin || d == core.DefaultMax:
		if o.ConstraintKind != core.ConstraintRange {
			return "", core.NewParseError(o.Line, o.Name, "default %s needs a range constraint", d)
		}
		bound := "min"
		if d == core.DefaultMax {
			bound = "max"
		}
		return "w = sod->constraint.range->" + bound, nil
	case o.Type == core.TypeInt || o.Type == core.TypeBool:
		return "w = " + d, nil
	case o.Type == core.TypeFixed:
		return "w = " + fix(d), nil
	case o.Type == core.TypeString:
		return "s = " + i18n(d), nil
	default:
		return "", core.NewParseError(o.Line, o.Name, "options of type %s take no default value", o.Type)
	}
}
