package markers

import (
	"go.uber.org/zap"

	"github.com/vast-data/sane-optgen/core"
)

// Builder accumulates keyword lines into option records.
type Builder struct {
	registry *Registry
	log      *zap.Logger

	// groups numbers `type group` options across every block of a run.
	groups  int
	options []*core.Option
	current *core.Option
}

// NewBuilder creates a Builder. A nil logger discards warnings.
func NewBuilder(registry *Registry, log *zap.Logger) *Builder {
	if registry == nil {
		registry = DefaultRegistry()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Builder{
		registry: registry,
		log:      log,
		current:  &core.Option{},
	}
}

// Feed applies one keyword line.
func (b *Builder) Feed(l Line) error {
	kw := b.registry.Lookup(l.Keyword)
	if kw == nil {
		b.warn("Skip", l)
		return nil
	}

	switch kw.Name {
	case core.EndKeyword:
		b.Seal()
		return nil
	case "type":
		b.Seal()
		b.current = &core.Option{Line: l.Num}
	}

	if kw.RequiresValue && l.Value == "" {
		return core.NewParseError(l.Num, l.Text, "keyword %q needs a value", kw.Name)
	}

	o := b.current
	if kw.Field != "" && l.IsVerbatim() {
		o.SetVerbatim(kw.Field, l.Value)
		if kw.Field == core.FieldConstraint {
			o.Constraint = nil
		}
		return nil
	}
	if kw.Handler == nil {
		return nil
	}
	if kw.Field != "" && kw.Field != core.FieldConstraint {
		delete(o.Verbatim, kw.Field)
	}
	return kw.Handler(b, o, l)
}

// Seal closes the open option. Options that never saw a `type` line are dropped.
func (b *Builder) Seal() {
	if b.current != nil && b.current.HasName {
		b.options = append(b.options, b.current)
	}
	b.current = &core.Option{}
}

// Options returns the sealed options in input order.
func (b *Builder) Options() []*core.Option {
	return b.options
}

func (b *Builder) warn(what string, l Line) {
	b.log.Warn(what+": "+l.Text, zap.Int("line", l.Num), zap.String("keyword", l.Keyword))
}
