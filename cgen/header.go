package cgen

import (
	"io"

	"github.com/pkg/errors"

	"github.com/vast-data/sane-optgen/core"
)

// Settings names the driver-side symbols the generated code refers to.
type Settings struct {
	// Origin is the driver source named in the "generated from" comment.
	Origin string
	// StateStruct is the driver session struct passed to build_option_descriptors.
	StateStruct string
	// Context is the expression of the option_descriptor_t array being filled.
	Context string
	// OptPrefix prefixes every option_t enumerator, including the "last" sentinel.
	OptPrefix string
}

// DefaultSettings returns the symbols used by the pixma backend.
func DefaultSettings() Settings {
	return Settings{
		Origin:      core.DefaultOrigin,
		StateStruct: core.DefaultStateStruct,
		Context:     core.DefaultContext,
		OptPrefix:   core.DefaultOptPrefix,
	}
}

// WritePreamble writes the two comment lines that open every generated file.
func WritePreamble(w io.Writer, s Settings) error {
	if err := preambleTmpl.Execute(w, s); err != nil {
		return errors.Wrap(err, "failed to execute preamble template")
	}
	return nil
}

type headerData struct {
	Options     []*core.Option
	Last        string
	StateStruct string
}

// WriteHeader writes the value union, the option_t enumeration, the
// descriptor struct and the build_option_descriptors prototype.
func WriteHeader(w io.Writer, s Settings, options []*core.Option) error {
	data := headerData{
		Options:     options,
		Last:        s.OptPrefix + core.LastSuffix,
		StateStruct: s.StateStruct,
	}
	if err := headerTmpl.Execute(w, data); err != nil {
		return errors.Wrap(err, "failed to execute header template")
	}
	return nil
}
