package sane_optgen

import (
	"io"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/vast-data/sane-optgen/cgen"
	"github.com/vast-data/sane-optgen/core"
	"github.com/vast-data/sane-optgen/markers"
)

// Mode selects which half of the generated code is written.
type Mode int

const (
	// ModeBody writes the constraint tables and build_option_descriptors.
	ModeBody Mode = iota
	// ModeHeader writes the type declarations.
	ModeHeader
)

// HeaderModeArg is the command-line argument that selects ModeHeader.
const HeaderModeArg = "h"

func (m Mode) String() string {
	if m == ModeHeader {
		return "header"
	}
	return "body"
}

// Generator turns descriptor blocks into C code.
type Generator struct {
	config   *core.Config
	log      *zap.Logger
	registry *markers.Registry
}

// NewGenerator creates a Generator. config must already be validated; a nil
// config means all defaults and a nil logger discards diagnostics.
func NewGenerator(config *core.Config, log *zap.Logger) *Generator {
	if config == nil {
		config = core.NewConfig()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Generator{
		config:   config,
		log:      log,
		registry: markers.DefaultRegistry(),
	}
}

// Registry exposes the keyword registry used by Parse.
func (g *Generator) Registry() *markers.Registry {
	return g.registry
}

// Parse reads and normalizes every descriptor block in r.
func (g *Generator) Parse(r io.Reader) (*markers.Result, error) {
	return markers.Parse(r, markers.Options{
		BeginMarker: g.config.BeginMarker,
		Prefixes: markers.Prefixes{
			Opt:        g.config.OptPrefix,
			Constraint: g.config.ConstraintPrefix,
		},
		Registry: g.registry,
		Logger:   g.log,
	})
}

// Generate writes the generated file for mode to w. When r holds no
// descriptor block only the two leading comment lines are written.
func (g *Generator) Generate(r io.Reader, w io.Writer, mode Mode) error {
	result, err := g.Parse(r)
	if err != nil {
		return err
	}
	return g.Render(result, w, mode)
}

// Render writes an already parsed result.
func (g *Generator) Render(result *markers.Result, w io.Writer, mode Mode) error {
	settings := g.settings()
	if err := cgen.WritePreamble(w, settings); err != nil {
		return err
	}
	if !result.Found {
		return nil
	}

	g.log.Debug("rendering option descriptors",
		zap.Stringer("mode", mode),
		zap.Int("options", len(result.Options)))
	switch mode {
	case ModeHeader:
		return cgen.WriteHeader(w, settings, result.Options)
	case ModeBody:
		return cgen.WriteBody(w, settings, result.Options)
	default:
		return errors.Errorf("unknown generation mode %d", mode)
	}
}

func (g *Generator) settings() cgen.Settings {
	return cgen.Settings{
		Origin:      g.config.Origin,
		StateStruct: g.config.StateStruct,
		Context:     g.config.Context,
		OptPrefix:   g.config.OptPrefix,
	}
}
