package core

import (
	"fmt"
	"strings"
)

// OptionType is the SANE value type of an option.
type OptionType int

const (
	TypeInt OptionType = iota
	TypeFixed
	TypeBool
	TypeString
	TypeButton
	TypeGroup
)

var optionTypeNames = map[OptionType]string{
	TypeInt:    "int",
	TypeFixed:  "fixed",
	TypeBool:   "bool",
	TypeString: "string",
	TypeButton: "button",
	TypeGroup:  "group",
}

// ParseOptionType maps a descriptor type word ("int", "Fixed", ...) to its OptionType.
func ParseOptionType(s string) (OptionType, error) {
	word := strings.ToLower(s)
	for t, name := range optionTypeNames {
		if name == word {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown option type %q", s)
}

func (t OptionType) String() string {
	if name, ok := optionTypeNames[t]; ok {
		return name
	}
	return "unknown"
}

// CName returns the SANE_TYPE_* token.
func (t OptionType) CName() string {
	return TypePrefix + strings.ToUpper(t.String())
}

// IsNumeric reports whether values of this type are stored as SANE_Word arrays.
func (t OptionType) IsNumeric() bool {
	return t == TypeInt || t == TypeFixed
}

// ConstraintKind classifies how legal values of an option are restricted.
type ConstraintKind int

const (
	ConstraintNone ConstraintKind = iota
	ConstraintRange
	ConstraintWordList
	ConstraintStringList
	// ConstraintExternal is a constraint_type supplied as a raw C expression.
	ConstraintExternal
)

var constraintKindNames = map[ConstraintKind]string{
	ConstraintNone:       "none",
	ConstraintRange:      "range",
	ConstraintWordList:   "word_list",
	ConstraintStringList: "string_list",
	ConstraintExternal:   "external",
}

// ParseConstraintKind maps "range", "word_list", ... to a ConstraintKind.
// ConstraintExternal has no textual form and is never returned.
func ParseConstraintKind(s string) (ConstraintKind, error) {
	word := strings.ToLower(strings.TrimPrefix(strings.ToUpper(s), ConstraintPrefix))
	for k, name := range constraintKindNames {
		if k != ConstraintExternal && name == word {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown constraint type %q", s)
}

func (k ConstraintKind) String() string {
	if name, ok := constraintKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// CName returns the SANE_CONSTRAINT_* token.
func (k ConstraintKind) CName() string {
	return ConstraintPrefix + strings.ToUpper(k.String())
}

// Member is the SANE_Option_Descriptor constraint union member for this kind.
func (k ConstraintKind) Member() string {
	return strings.ToLower(strings.TrimPrefix(k.CName(), ConstraintPrefix))
}

// Constraint is the parsed constraint of an option. At most one of List and
// Range is set; a verbatim constraint lives in Option.Verbatim instead.
type Constraint struct {
	List  []string   `json:"list,omitempty" msgpack:"list,omitempty"`
	Range *[3]string `json:"range,omitempty" msgpack:"range,omitempty"`
}

// IsList reports whether the constraint came from a {a|b|c} list.
func (c *Constraint) IsList() bool {
	return c != nil && c.List != nil
}

// IsRange reports whether the constraint came from a (min,max,quant) tuple.
func (c *Constraint) IsRange() bool {
	return c != nil && c.Range != nil
}

// Field names a descriptor attribute that may carry a verbatim override.
type Field string

const (
	FieldName           Field = "name"
	FieldTitle          Field = "title"
	FieldDesc           Field = "desc"
	FieldUnit           Field = "unit"
	FieldSize           Field = "size"
	FieldCap            Field = "cap"
	FieldInfo           Field = "info"
	FieldConstraintType Field = "constraint_type"
	FieldConstraint     Field = "constraint"
	FieldDefault        Field = "default"
)

// Option is one described option, or the synthetic "number of options" entry.
//
// Fields stay at their zero value until the corresponding keyword is seen;
// the Has* flags distinguish "absent" from "explicitly empty".
type Option struct {
	Line int `json:"line" msgpack:"line"`

	Name  string     `json:"name" msgpack:"name"`
	CName string     `json:"cname" msgpack:"cname"`
	Type  OptionType `json:"type" msgpack:"type"`
	Count int        `json:"count" msgpack:"count"`

	Title string `json:"title" msgpack:"title"`
	Desc  string `json:"desc" msgpack:"desc"`
	Unit  string `json:"unit" msgpack:"unit"`

	Caps []string `json:"caps" msgpack:"caps"`
	Info []string `json:"info" msgpack:"info"`

	Constraint     *Constraint    `json:"constraint,omitempty" msgpack:"constraint,omitempty"`
	ConstraintKind ConstraintKind `json:"constraint_kind" msgpack:"constraint_kind"`
	Default        string         `json:"default" msgpack:"default"`

	// Verbatim holds raw "@expr" values by field, marker included.
	Verbatim map[Field]string `json:"verbatim,omitempty" msgpack:"verbatim,omitempty"`

	OptID        string `json:"opt_id" msgpack:"opt_id"`
	ConstraintID string `json:"constraint_id" msgpack:"constraint_id"`

	// Presence flags travel with dump output so decoded records render the same.
	HasName           bool `json:"-" msgpack:"has_name"`
	HasTitle          bool `json:"-" msgpack:"has_title"`
	HasDesc           bool `json:"-" msgpack:"has_desc"`
	HasUnit           bool `json:"-" msgpack:"has_unit"`
	HasDefault        bool `json:"-" msgpack:"has_default"`
	HasConstraintKind bool `json:"-" msgpack:"has_constraint_kind"`
}

// SetVerbatim records a raw "@expr" value for field f.
func (o *Option) SetVerbatim(f Field, raw string) {
	if o.Verbatim == nil {
		o.Verbatim = make(map[Field]string)
	}
	o.Verbatim[f] = raw
}

// VerbatimCode returns the C expression of a verbatim field with the marker stripped.
func (o *Option) VerbatimCode(f Field) (string, bool) {
	raw, ok := o.Verbatim[f]
	if !ok {
		return "", false
	}
	return strings.TrimPrefix(raw, VerbatimMarker), true
}

// HasConstraint reports whether any constraint, parsed or verbatim, is attached.
func (o *Option) HasConstraint() bool {
	if o.Constraint != nil {
		return true
	}
	_, ok := o.Verbatim[FieldConstraint]
	return ok
}

// IsGroup reports whether the option only partitions the option list.
func (o *Option) IsGroup() bool {
	return o.Type == TypeGroup
}

// IsVerbatim reports whether s is a verbatim C expression.
func IsVerbatim(s string) bool {
	return strings.HasPrefix(s, VerbatimMarker)
}

// IsAlnum reports whether r is an ASCII letter or digit.
func IsAlnum(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
}

// IsCIdentifier reports whether s is a valid C identifier.
func IsCIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r != '_' && !IsAlnum(r) {
			return false
		}
		if i == 0 && r >= '0' && r <= '9' {
			return false
		}
	}
	return true
}
