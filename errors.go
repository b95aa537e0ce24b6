package wff

import "fmt"

// MalformedSignatureError reports an attempt to build an operation whose
// signature cannot encode a boolean function of the operands given: the
// signature is not a bit string of power-of-two length, or the operand
// count does not match its arity.
type MalformedSignatureError struct {
	Sig      Signature
	Operands int // operand count at the point of failure, -1 when none applies
}

func (e *MalformedSignatureError) Error() string {
	n := len(e.Sig)
	switch {
	case !validBits(string(e.Sig)):
		return fmt.Sprintf("malformed signature %q: not a bit string", string(e.Sig))
	case n == 0 || n&(n-1) != 0:
		return fmt.Sprintf("malformed signature %q: length %d is not a power of two", string(e.Sig), n)
	default:
		return fmt.Sprintf("signature %q has arity %d, got %d operands", string(e.Sig), e.Sig.Arity(), e.Operands)
	}
}

// UnboundVariableError reports evaluation of a variable that has no value
// in the environment.
type UnboundVariableError struct {
	Key string
}

func (e *UnboundVariableError) Error() string {
	return fmt.Sprintf("unbound variable %q", e.Key)
}

// UnsupportedArityError reports a formula that has no infix rendering
// because one of its operations is not a named binary connective.
type UnsupportedArityError struct {
	Sig Signature
}

func (e *UnsupportedArityError) Error() string {
	return fmt.Sprintf("operation %q (arity %d) has no infix form", string(e.Sig), e.Sig.Arity())
}
