package markers

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/vast-data/sane-optgen/core"
)

// Handler applies one keyword line to the option currently being built.
type Handler func(b *Builder, o *core.Option, l Line) error

// Keyword defines how a descriptor keyword is parsed.
type Keyword struct {
	// Name is the lowercase keyword (e.g., "title").
	Name string
	// Field is the attribute a verbatim "@expr" value overrides. Keywords
	// without a field never take the verbatim path.
	Field core.Field
	// RequiresValue rejects lines that carry only the keyword.
	RequiresValue bool
	// Handler parses non-verbatim values. Nil means the line is accepted and ignored.
	Handler Handler
	// Description provides help text for this keyword.
	Description string
}

// Registry maps keywords to their definitions.
type Registry struct {
	keywords map[string]*Keyword
}

// NewRegistry creates an empty keyword registry.
func NewRegistry() *Registry {
	return &Registry{
		keywords: make(map[string]*Keyword),
	}
}

// Register adds a keyword definition to the registry.
func (r *Registry) Register(k Keyword) error {
	name := strings.ToLower(k.Name)
	if name == "" {
		return fmt.Errorf("keyword name must not be empty")
	}
	if _, exists := r.keywords[name]; exists {
		return fmt.Errorf("keyword %q already registered", name)
	}
	k.Name = name
	r.keywords[name] = &k
	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(k Keyword) {
	if err := r.Register(k); err != nil {
		panic(err)
	}
}

// Lookup finds a keyword definition, or returns nil.
func (r *Registry) Lookup(name string) *Keyword {
	return r.keywords[strings.ToLower(name)]
}

// ListKeywords returns all definitions sorted by name.
func (r *Registry) ListKeywords() []*Keyword {
	result := make([]*Keyword, 0, len(r.keywords))
	for _, k := range r.keywords {
		result = append(result, k)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}

// DefaultRegistry returns a registry with every descriptor keyword.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.MustRegister(Keyword{Name: "type", RequiresValue: true, Handler: parseType,
		Description: "starts a new option: type <int|fixed|bool|string|button|group> <name>[<count>]"})
	r.MustRegister(Keyword{Name: "title", Field: core.FieldTitle, RequiresValue: true, Handler: parseTitle,
		Description: "option title"})
	r.MustRegister(Keyword{Name: "desc", Field: core.FieldDesc, RequiresValue: true, Handler: parseDesc,
		Description: "option description"})
	r.MustRegister(Keyword{Name: "unit", Field: core.FieldUnit, RequiresValue: true, Handler: parseUnit,
		Description: "SANE unit without the SANE_UNIT_ prefix"})
	r.MustRegister(Keyword{Name: "default", Field: core.FieldDefault, RequiresValue: true, Handler: parseDefault,
		Description: "default value, _MIN or _MAX"})
	r.MustRegister(Keyword{Name: "cap", Field: core.FieldCap, Handler: parseCap,
		Description: "capability flags without the SANE_CAP_ prefix"})
	r.MustRegister(Keyword{Name: "info", Field: core.FieldInfo, Handler: parseInfo,
		Description: "info flags without the SANE_INFO_ prefix"})
	r.MustRegister(Keyword{Name: "constraint", Field: core.FieldConstraint, RequiresValue: true, Handler: parseConstraint,
		Description: "{a|b|c} list or (min,max,quant) range"})
	r.MustRegister(Keyword{Name: "constraint_type", Field: core.FieldConstraintType, RequiresValue: true, Handler: parseConstraintType,
		Description: "overrides the inferred constraint type"})
	r.MustRegister(Keyword{Name: "cname", RequiresValue: true, Handler: parseCName,
		Description: "overrides the C identifier derived from the name"})
	r.MustRegister(Keyword{Name: "size", Field: core.FieldSize, RequiresValue: true, Handler: parseSize,
		Description: "verbatim size expression"})
	r.MustRegister(Keyword{Name: "name", Field: core.FieldName, RequiresValue: true, Handler: parseName,
		Description: "verbatim SANE option name expression"})
	r.MustRegister(Keyword{Name: "rem",
		Description: "comment"})
	r.MustRegister(Keyword{Name: core.EndKeyword,
		Description: "ends the descriptor block"})
	return r
}

func parseType(b *Builder, o *core.Option, l Line) error {
	typeWord, spec := cutSpace(l.Value)

	t, err := core.ParseOptionType(typeWord)
	if err != nil {
		return core.NewParseError(l.Num, l.Text, "%v", err)
	}
	o.Type = t

	if t == core.TypeGroup {
		b.groups++
		o.Name = fmt.Sprintf(core.GroupNameFormat, b.groups)
		if spec != "" {
			o.Name = spec
		}
		o.Count = 0
		o.HasName = true
		return nil
	}

	if spec == "" {
		return core.NewParseError(l.Num, l.Text, "missing option name")
	}
	name, count, err := splitArraySpec(spec)
	if err != nil {
		return core.NewParseError(l.Num, l.Text, "%v", err)
	}
	o.Name = name
	o.Count = count
	o.HasName = true
	return nil
}

// splitArraySpec splits "gamma-table[4096]" into its name and element count.
func splitArraySpec(spec string) (string, int, error) {
	idx := strings.IndexByte(spec, '[')
	if idx == -1 {
		return spec, 1, nil
	}
	if idx == 0 {
		return "", 0, fmt.Errorf("missing option name before %q", spec)
	}
	if !strings.HasSuffix(spec, "]") {
		return "", 0, fmt.Errorf("unterminated array length in %q", spec)
	}
	count, err := strconv.Atoi(strings.TrimSpace(spec[idx+1 : len(spec)-1]))
	if err != nil || count < 1 {
		return "", 0, fmt.Errorf("invalid array length in %q", spec)
	}
	return spec[:idx], count, nil
}

func parseTitle(_ *Builder, o *core.Option, l Line) error {
	o.Title = l.Value
	o.HasTitle = true
	return nil
}

func parseDesc(_ *Builder, o *core.Option, l Line) error {
	o.Desc = l.Value
	o.HasDesc = true
	return nil
}

func parseUnit(_ *Builder, o *core.Option, l Line) error {
	o.Unit = core.UnitPrefix + strings.ToUpper(l.Value)
	o.HasUnit = true
	return nil
}

func parseDefault(_ *Builder, o *core.Option, l Line) error {
	o.Default = l.Value
	o.HasDefault = true
	return nil
}

func parseCap(_ *Builder, o *core.Option, l Line) error {
	o.Caps = prefixedFlags(core.CapPrefix, l.Value)
	return nil
}

func parseInfo(_ *Builder, o *core.Option, l Line) error {
	o.Info = prefixedFlags(core.InfoPrefix, l.Value)
	return nil
}

func prefixedFlags(prefix, value string) []string {
	words := strings.Fields(value)
	flags := make([]string, 0, len(words))
	for _, w := range words {
		flags = append(flags, prefix+strings.ToUpper(w))
	}
	return flags
}

func parseConstraint(b *Builder, o *core.Option, l Line) error {
	v := l.Value
	switch v[0] {
	case '{':
		if !strings.HasSuffix(v, "}") {
			return core.NewParseError(l.Num, l.Text, "unterminated constraint list")
		}
		items := splitTrim(v[1:len(v)-1], "|")
		if items == nil {
			return core.NewParseError(l.Num, l.Text, "empty constraint list")
		}
		o.Constraint = &core.Constraint{List: items}
		delete(o.Verbatim, core.FieldConstraint)
	case '(':
		if !strings.HasSuffix(v, ")") {
			return core.NewParseError(l.Num, l.Text, "unterminated constraint range")
		}
		items := splitTrim(v[1:len(v)-1], ",")
		if len(items) != 3 {
			return core.NewParseError(l.Num, l.Text, "constraint range needs (min,max,quant), got %d values", len(items))
		}
		o.Constraint = &core.Constraint{Range: &[3]string{items[0], items[1], items[2]}}
		delete(o.Verbatim, core.FieldConstraint)
	default:
		b.warn("Ignored", l)
	}
	return nil
}

// splitTrim splits s on sep and trims each item. It returns nil if any item is empty.
func splitTrim(s, sep string) []string {
	parts := strings.Split(s, sep)
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
		if parts[i] == "" {
			return nil
		}
	}
	return parts
}

func parseConstraintType(_ *Builder, o *core.Option, l Line) error {
	k, err := core.ParseConstraintKind(l.Value)
	if err != nil {
		return core.NewParseError(l.Num, l.Text, "%v", err)
	}
	o.ConstraintKind = k
	o.HasConstraintKind = true
	return nil
}

func parseCName(_ *Builder, o *core.Option, l Line) error {
	cname := strings.TrimPrefix(l.Value, core.VerbatimMarker)
	if !core.IsCIdentifier(cname) {
		return core.NewParseError(l.Num, l.Text, "cname must be a C identifier")
	}
	o.CName = cname
	return nil
}

func parseSize(_ *Builder, _ *core.Option, l Line) error {
	return core.NewParseError(l.Num, l.Text, "size accepts only a verbatim @expression")
}

func parseName(_ *Builder, _ *core.Option, l Line) error {
	return core.NewParseError(l.Num, l.Text, "name accepts only a verbatim @expression; set the name on the type line")
}
