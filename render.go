package wff

import (
	"strings"

	"github.com/go-wff/wff/debug"
)

type renderState struct {
	vars func(string) string
}

// RenderOption configures Render.
type RenderOption func(*renderState)

// RenderVars overrides how variable leaves are rendered. The default
// renders a key as var(<key>).
func RenderVars(fn func(key string) string) RenderOption {
	return func(rs *renderState) { rs.vars = fn }
}

func renderVarDefault(key string) string {
	return "var(" + key + ")"
}

// Render writes f as a fully parenthesized infix expression. Variable
// leaves go through the variable renderer, constants render as zero and
// one, and every binary operation among the twelve named connectives
// renders as "(" + left + " " + symbol + " " + right + ")". Any other
// operation yields an *UnsupportedArityError; use String for a total
// rendering.
func (f Formula) Render(opts ...RenderOption) (string, error) {
	rs := &renderState{vars: renderVarDefault}
	for _, opt := range opts {
		opt(rs)
	}
	var sb strings.Builder
	if err := render(f, &sb, rs); err != nil {
		if debug.Render() {
			debug.Logf("render %s: %v\n", f, err)
		}
		return "", err
	}
	return sb.String(), nil
}

func render(f Formula, sb *strings.Builder, rs *renderState) error {
	switch n := f.n.(type) {
	case leafNode:
		sb.WriteString(rs.vars(n.key))
		return nil
	case *opNode:
		if b, ok := f.Constant(); ok {
			if b == 0 {
				sb.WriteString("zero")
			} else {
				sb.WriteString("one")
			}
			return nil
		}
		c, ok := ConnectiveOf(n.sig)
		if !ok {
			return &UnsupportedArityError{Sig: n.sig}
		}
		sb.WriteString("(")
		if err := render(n.kids[0], sb, rs); err != nil {
			return err
		}
		sb.WriteString(" " + c.Symbol() + " ")
		if err := render(n.kids[1], sb, rs); err != nil {
			return err
		}
		sb.WriteString(")")
		return nil
	}
	panic("wff: invalid formula")
}
