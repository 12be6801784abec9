package core

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bndr/gotabulate"
	"github.com/vmihailenco/msgpack/v5"
)

// OptionSet is the ordered list of options produced by one generator run.
type OptionSet []*Option

var tableHeaders = []string{"#", "enum", "name", "type", "count", "unit", "constraint", "default", "line"}

// PrettyTable renders one row per option.
func (set OptionSet) PrettyTable() string {
	if len(set) == 0 {
		return "<>"
	}
	rows := make([][]any, 0, len(set))
	for i, o := range set {
		rows = append(rows, []any{
			strconv.Itoa(i),
			o.OptID,
			displayName(o),
			o.Type.String(),
			strconv.Itoa(o.Count),
			strings.TrimPrefix(displayField(o, FieldUnit, o.Unit), UnitPrefix),
			constraintSummary(o),
			displayField(o, FieldDefault, o.Default),
			lineOrDash(o.Line),
		})
	}
	t := gotabulate.Create(rows)
	t.SetHeaders(tableHeaders)
	t.SetAlign("left")
	t.SetWrapStrings(true)
	t.SetMaxCellSize(60)
	return t.Render("grid")
}

// PrettyJson prints the OptionSet as JSON, optionally indented
func (set OptionSet) PrettyJson(indent ...string) string {
	var b []byte
	var err error
	if len(indent) > 0 {
		b, err = json.MarshalIndent(set, "", indent[0])
	} else {
		b, err = json.Marshal(set)
	}
	if err != nil {
		return fmt.Sprintf("failed to marshal JSON: %v", err)
	}
	return string(b)
}

// EncodeMsgpack writes the OptionSet in MessagePack form.
func (set OptionSet) EncodeMsgpack(w io.Writer) error {
	enc := msgpack.NewEncoder(w)
	if err := enc.Encode(set); err != nil {
		return fmt.Errorf("failed to encode options: %w", err)
	}
	return nil
}

// DecodeOptionSet reads an OptionSet written by EncodeMsgpack.
func DecodeOptionSet(r io.Reader) (OptionSet, error) {
	var set OptionSet
	if err := msgpack.NewDecoder(r).Decode(&set); err != nil {
		return nil, fmt.Errorf("failed to decode options: %w", err)
	}
	return set, nil
}

func (set OptionSet) String() string {
	return set.PrettyTable()
}

func displayName(o *Option) string {
	if o.Name == "" {
		return "-"
	}
	return o.Name
}

func displayField(o *Option, f Field, plain string) string {
	if raw, ok := o.Verbatim[f]; ok {
		return raw
	}
	if plain == "" {
		return "-"
	}
	return plain
}

func constraintSummary(o *Option) string {
	switch {
	case o.Constraint.IsList():
		return o.ConstraintKind.String() + " {" + strings.Join(o.Constraint.List, "|") + "}"
	case o.Constraint.IsRange():
		r := o.Constraint.Range
		return o.ConstraintKind.String() + " (" + r[0] + "," + r[1] + "," + r[2] + ")"
	}
	if raw, ok := o.Verbatim[FieldConstraint]; ok {
		return raw
	}
	return o.ConstraintKind.String()
}

func lineOrDash(line int) string {
	if line == 0 {
		return "-"
	}
	return strconv.Itoa(line)
}
