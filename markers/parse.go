package markers

import (
	"io"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/vast-data/sane-optgen/core"
)

// Options configures Parse. Zero values fall back to the core defaults.
type Options struct {
	BeginMarker string
	Prefixes    Prefixes
	Registry    *Registry
	Logger      *zap.Logger
}

func (o Options) withDefaults() Options {
	if o.BeginMarker == "" {
		o.BeginMarker = core.DefaultBeginMarker
	}
	if o.Prefixes.Opt == "" {
		o.Prefixes.Opt = core.DefaultOptPrefix
	}
	if o.Prefixes.Constraint == "" {
		o.Prefixes.Constraint = core.DefaultConstraintPrefix
	}
	if o.Registry == nil {
		o.Registry = DefaultRegistry()
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}

// Result is the outcome of parsing one input stream.
type Result struct {
	// Found is false when the stream contains no descriptor block.
	Found bool
	// Blocks is the number of descriptor blocks read.
	Blocks int
	// Options lists the "number of options" entry followed by every
	// described option, normalized, in input order.
	Options []*core.Option
}

// NumOptions returns the synthetic leading option that reports the option count.
func NumOptions(optPrefix string) *core.Option {
	o := &core.Option{
		Name:              "",
		CName:             core.NumOptionsCName,
		Type:              core.TypeInt,
		Count:             1,
		Unit:              core.UnitPrefix + "NONE",
		Caps:              []string{core.CapPrefix + "SOFT_DETECT"},
		ConstraintKind:    core.ConstraintNone,
		HasName:           true,
		HasTitle:          true,
		HasDesc:           true,
		HasUnit:           true,
		HasDefault:        true,
		HasConstraintKind: true,
	}
	o.SetVerbatim(core.FieldTitle, core.VerbatimMarker+"SANE_TITLE_NUM_OPTIONS")
	o.SetVerbatim(core.FieldDesc, core.VerbatimMarker+"SANE_DESC_NUM_OPTIONS")
	o.SetVerbatim(core.FieldDefault, core.VerbatimMarker+"w = "+optPrefix+core.LastSuffix)
	return o
}

// Parse reads every descriptor block in r.
func Parse(r io.Reader, opts Options) (*Result, error) {
	opts = opts.withDefaults()
	log := opts.Logger

	sc := NewScanner(r, opts.BeginMarker)
	b := NewBuilder(opts.Registry, log)

	for {
		line, ok, err := sc.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		if err := b.Feed(line); err != nil {
			return nil, errors.WithStack(err)
		}
	}
	b.Seal()

	result := &Result{Found: sc.Blocks() > 0, Blocks: sc.Blocks()}
	if !result.Found {
		log.Debug("no option descriptor block found", zap.String("marker", opts.BeginMarker))
		return result, nil
	}
	result.Options = append([]*core.Option{NumOptions(opts.Prefixes.Opt)}, b.Options()...)
	if err := Normalize(result.Options, opts.Prefixes); err != nil {
		return nil, errors.WithStack(err)
	}
	log.Debug("parsed option descriptors",
		zap.Int("blocks", result.Blocks),
		zap.Int("options", len(result.Options)))
	return result, nil
}
