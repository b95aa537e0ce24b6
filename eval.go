package wff

import "github.com/go-wff/wff/debug"

// Eval computes the bit value of f under env. Variables take their bound
// value, with any nonzero bit read as 1; an unbound variable yields an
// *UnboundVariableError. An operation of arity n evaluates its operands
// left to right into bits b1..bn and returns the signature output at index
// b1<<(n-1) | ... | bn. Keys in env beyond the variables of f are ignored.
//
// Evaluation is pure: it never modifies f or env.
func (f Formula) Eval(env Env) (Bit, error) {
	switch n := f.n.(type) {
	case leafNode:
		b, ok := env[n.key]
		if !ok {
			return 0, &UnboundVariableError{Key: n.key}
		}
		if b > 1 {
			b = 1
		}
		if debug.Eval() {
			debug.Logf("eval %s = %d\n", f, b)
		}
		return b, nil
	case *opNode:
		idx := 0
		for _, kid := range n.kids {
			b, err := kid.Eval(env)
			if err != nil {
				return 0, err
			}
			idx = idx<<1 | int(b)
		}
		out := n.sig.At(idx)
		if debug.Eval() {
			debug.Logf("eval %s = %d (signature %s at %d)\n", f, out, n.sig, idx)
		}
		return out, nil
	}
	panic("wff: invalid formula")
}
