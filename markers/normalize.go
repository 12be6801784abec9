package markers

import (
	"fmt"
	"strings"

	"github.com/vast-data/sane-optgen/core"
)

// Prefixes namespace the generated C identifiers.
type Prefixes struct {
	Opt        string
	Constraint string
}

// verbatimKinds maps the leading word of a verbatim constraint to its kind.
var verbatimKinds = []struct {
	prefix string
	kind   core.ConstraintKind
}{
	{core.VerbatimMarker + "string_list", core.ConstraintStringList},
	{core.VerbatimMarker + "word_list", core.ConstraintWordList},
	{core.VerbatimMarker + "range", core.ConstraintRange},
}

// CName replaces every character outside [A-Za-z0-9] with a single '_'.
func CName(name string) string {
	var sb strings.Builder
	sb.Grow(len(name))
	for _, r := range name {
		if !core.IsAlnum(r) {
			r = '_'
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// Normalize fills defaults, derives identifiers and resolves the constraint kind
// of every option, in place.
func Normalize(options []*core.Option, p Prefixes) error {
	seen := make(map[string]*core.Option, len(options))
	for _, o := range options {
		if err := normalizeOption(o, p); err != nil {
			return err
		}
		if prev, dup := seen[o.CName]; dup {
			return core.NewParseError(o.Line, o.Name,
				"identifier %q already used by %s", o.CName, describe(prev))
		}
		seen[o.CName] = o
	}
	return nil
}

// describe names an option for diagnostics. Only the synthetic option count
// entry has no source line.
func describe(o *core.Option) string {
	if o.Line == 0 {
		return "the option count entry"
	}
	return fmt.Sprintf("the option at line %d", o.Line)
}

func normalizeOption(o *core.Option, p Prefixes) error {
	if o.CName == "" {
		o.CName = CName(o.Name)
	}
	o.OptID = p.Opt + o.CName
	o.ConstraintID = p.Constraint + o.CName

	if !o.HasTitle && !hasVerbatim(o, core.FieldTitle) {
		o.Title = core.DefaultTitle
		o.HasTitle = true
	}
	if !o.HasDesc && !hasVerbatim(o, core.FieldDesc) {
		o.SetVerbatim(core.FieldDesc, core.DefaultDesc)
		o.HasDesc = true
	}
	if !o.HasUnit && !hasVerbatim(o, core.FieldUnit) {
		o.Unit = core.UnitPrefix + "NONE"
		o.HasUnit = true
	}

	if code, ok := o.VerbatimCode(core.FieldConstraintType); ok {
		o.ConstraintKind = core.ConstraintExternal
		if k, err := core.ParseConstraintKind(code); err == nil {
			o.ConstraintKind = k
		}
		o.HasConstraintKind = true
	}
	if o.HasConstraintKind {
		return nil
	}

	kind, err := inferConstraintKind(o)
	if err != nil {
		return err
	}
	o.ConstraintKind = kind
	o.HasConstraintKind = true
	return nil
}

func inferConstraintKind(o *core.Option) (core.ConstraintKind, error) {
	switch {
	case o.Constraint.IsList():
		if o.Type == core.TypeString {
			return core.ConstraintStringList, nil
		}
		return core.ConstraintWordList, nil
	case o.Constraint.IsRange():
		return core.ConstraintRange, nil
	}

	raw, ok := o.Verbatim[core.FieldConstraint]
	if !ok {
		return core.ConstraintNone, nil
	}
	for _, vk := range verbatimKinds {
		if strings.HasPrefix(raw, vk.prefix) {
			return vk.kind, nil
		}
	}
	return 0, core.NewParseError(o.Line, raw,
		"cannot infer the constraint type of option %q; start the expression with @range, @word_list or @string_list, or set constraint_type", o.Name)
}

func hasVerbatim(o *core.Option, f core.Field) bool {
	_, ok := o.Verbatim[f]
	return ok
}
