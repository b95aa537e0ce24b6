package encode

import "github.com/go-wff/wff/format"

type Option func(*EncState)

// EncState carries the output configuration the writers run under.
type EncState struct {
	format format.Format
	column bool
	vars   func(string) string

	Color func(Element, string) string
}

func WithFormat(f format.Format) Option {
	return func(es *EncState) { es.format = f }
}

// WithColumn restricts Table to the bare output column.
func WithColumn(v bool) Option {
	return func(es *EncState) { es.column = v }
}

// WithVars overrides how variable keys render in expressions.
func WithVars(fn func(string) string) Option {
	return func(es *EncState) { es.vars = fn }
}

func WithColors(c *Colors) Option {
	return func(es *EncState) { es.Color = c.Color }
}

func newState(opts ...Option) *EncState {
	es := &EncState{vars: varDefault}
	for _, opt := range opts {
		opt(es)
	}
	if es.vars == nil {
		es.vars = varDefault
	}
	return es
}

func varDefault(key string) string { return "var(" + key + ")" }

func (es *EncState) color(e Element, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(e, s)
}
