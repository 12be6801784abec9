package cgen

import (
	"io"

	"github.com/pkg/errors"

	"github.com/vast-data/sane-optgen/core"
)

type bodyData struct {
	Tables      []string
	Codes       []*Code
	StateStruct string
	Context     string
}

// WriteBody writes the constraint tables, the find_string_in_list helper and
// build_option_descriptors. Every option is synthesized before anything is
// written, so a faulty option leaves w untouched.
func WriteBody(w io.Writer, s Settings, options []*core.Option) error {
	data := bodyData{
		StateStruct: s.StateStruct,
		Context:     s.Context,
	}
	for _, o := range options {
		table, err := ConstraintTable(o)
		if err != nil {
			return errors.WithStack(err)
		}
		if table != "" {
			data.Tables = append(data.Tables, table)
		}
	}
	for _, o := range options {
		code, err := Synthesize(o)
		if err != nil {
			return errors.WithStack(err)
		}
		data.Codes = append(data.Codes, code)
	}

	if err := bodyTmpl.Execute(w, data); err != nil {
		return errors.Wrap(err, "failed to execute body template")
	}
	return nil
}
