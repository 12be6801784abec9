/*
Package sane_optgen generates the SANE option descriptor tables of a scanner
backend from a descriptor block kept in the backend's C source.

The block lists every option with its type, title, unit, constraint and
default (see package markers for the syntax). From it the generator writes two
files that the backend includes:

  - the header (mode "h"): the option_value_t union, the option_t enumeration
    and the option_descriptor_t struct;
  - the body: static constraint tables and a build_option_descriptors function
    that fills the option_descriptor_t array at runtime.

The main entry point is Generator, created from a core.Config:

	cfg := core.NewConfig()
	cfg.Origin = "pixma.c"
	gen := sane_optgen.NewGenerator(cfg, logger)
	if err := gen.Generate(os.Stdin, os.Stdout, sane_optgen.ModeHeader); err != nil {
		// structural fault in the descriptor block
	}

Soft problems (unknown keywords, unparseable constraints) are logged as
warnings and skipped. Structural faults return a *core.ParseError that names
the offending input line.
*/
package sane_optgen
