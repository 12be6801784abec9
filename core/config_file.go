package core

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

// configFile is the HCL schema of a generator config file:
//
//	required_version = ">= 0.3"
//
//	generator {
//	  origin       = "pixma.c"
//	  state_struct = "pixma_sane_t"
//	  context      = "OPT_IN_CTX"
//	}
//
//	logging {
//	  level = "info"
//	}
type configFile struct {
	RequiredVersion *string         `hcl:"required_version,optional"`
	Generator       *generatorBlock `hcl:"generator,block"`
	Logging         *loggingBlock   `hcl:"logging,block"`
}

type generatorBlock struct {
	BeginMarker      *string `hcl:"begin_marker,optional"`
	Origin           *string `hcl:"origin,optional"`
	StateStruct      *string `hcl:"state_struct,optional"`
	Context          *string `hcl:"context,optional"`
	OptPrefix        *string `hcl:"opt_prefix,optional"`
	ConstraintPrefix *string `hcl:"constraint_prefix,optional"`
}

type loggingBlock struct {
	Level  *string `hcl:"level,optional"`
	Format *string `hcl:"format,optional"`
	File   *string `hcl:"file,optional"`
}

// LoadConfigFile reads an HCL config file and applies every attribute it sets onto config.
func (config *Config) LoadConfigFile(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	return config.LoadConfigHCL(src, path)
}

// LoadConfigHCL is LoadConfigFile for in-memory sources; filename is used in diagnostics.
//
// Expressions can refer to `generator_version` and to the process environment as `env.NAME`.
func (config *Config) LoadConfigHCL(src []byte, filename string) error {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse config file: %s", diags.Error())
	}

	var cf configFile
	if diags := gohcl.DecodeBody(file.Body, configEvalContext(), &cf); diags.HasErrors() {
		return fmt.Errorf("failed to decode config file: %s", diags.Error())
	}

	set(&config.RequiredVersion, cf.RequiredVersion)
	if g := cf.Generator; g != nil {
		set(&config.BeginMarker, g.BeginMarker)
		set(&config.Origin, g.Origin)
		set(&config.StateStruct, g.StateStruct)
		set(&config.Context, g.Context)
		set(&config.OptPrefix, g.OptPrefix)
		set(&config.ConstraintPrefix, g.ConstraintPrefix)
	}
	if l := cf.Logging; l != nil {
		set(&config.LogLevel, l.Level)
		set(&config.LogFormat, l.Format)
		set(&config.LogFile, l.File)
	}
	return nil
}

func configEvalContext() *hcl.EvalContext {
	env := make(map[string]cty.Value)
	for _, kv := range os.Environ() {
		if name, value, ok := strings.Cut(kv, "="); ok && name != "" {
			env[name] = cty.StringVal(value)
		}
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"generator_version": cty.StringVal(GeneratorVersion()),
			"env":               cty.ObjectVal(env),
		},
	}
}

func set(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
