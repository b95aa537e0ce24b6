package wff

import "strings"

// Formula is an immutable propositional formula: a variable leaf or an
// operation applied to an ordered list of operand subformulas. Formulas
// are values; they are built by the constructors Var, Constant, Op and
// Apply, and never change after construction. The zero value is not a
// valid formula.
type Formula struct {
	n node
}

// node is the internal two-case representation behind Formula.
type node interface {
	isNode()
}

type leafNode struct {
	key string
}

type opNode struct {
	sig  Signature
	kids []Formula
}

func (leafNode) isNode() {}
func (*opNode) isNode()  {}

var (
	zeroNode = &opNode{sig: "0"}
	oneNode  = &opNode{sig: "1"}
)

// Zero returns the constant false formula. It is a nullary operation with
// signature "0".
func Zero() Formula { return Formula{zeroNode} }

// One returns the constant true formula. It is a nullary operation with
// signature "1".
func One() Formula { return Formula{oneNode} }

// Constant returns Zero for 0 and One for any nonzero bit.
func Constant(b Bit) Formula {
	if b == 0 {
		return Zero()
	}
	return One()
}

// Var returns a formula consisting of a single variable leaf. Any string
// is a permitted key.
func Var(key string) Formula {
	return Formula{leafNode{key: key}}
}

// OpFunc builds an operation formula from operands. It is obtained from Op
// and validates the operand count against the signature's arity on each
// application.
type OpFunc func(operands ...Formula) (Formula, error)

// Op returns the generic operation constructor for sig. The returned
// builder rejects applications where sig is not a valid signature or where
// the operand count differs from its arity, so every formula it returns is
// well formed.
//
//	xor := wff.Op("0110")
//	f, err := xor(wff.Var("x"), wff.Var("y"))
func Op(sig Signature) OpFunc {
	return func(operands ...Formula) (Formula, error) {
		n := sig.Arity()
		if n < 0 || len(operands) != n {
			return Formula{}, &MalformedSignatureError{Sig: sig, Operands: len(operands)}
		}
		kids := make([]Formula, len(operands))
		copy(kids, operands)
		return Formula{&opNode{sig: sig, kids: kids}}, nil
	}
}

// IsLeaf reports whether f is a variable leaf. Constants are nullary
// operations, not leaves.
func (f Formula) IsLeaf() bool {
	_, ok := f.n.(leafNode)
	return ok
}

// Key returns the variable key of a leaf formula.
func (f Formula) Key() (string, bool) {
	leaf, ok := f.n.(leafNode)
	return leaf.key, ok
}

// Operation returns the signature of an operation formula.
func (f Formula) Operation() (Signature, bool) {
	op, ok := f.n.(*opNode)
	if !ok {
		return "", false
	}
	return op.sig, true
}

// Constant returns the value of a constant formula, a nullary operation.
func (f Formula) Constant() (Bit, bool) {
	op, ok := f.n.(*opNode)
	if !ok || len(op.sig) != 1 {
		return 0, false
	}
	return op.sig.At(0), true
}

// Operands returns the operand subformulas of f as a fresh slice. Leaves
// have none.
func (f Formula) Operands() []Formula {
	op, ok := f.n.(*opNode)
	if !ok {
		return nil
	}
	kids := make([]Formula, len(op.kids))
	copy(kids, op.kids)
	return kids
}

// Arity returns the operand count of f: 0 for leaves and constants.
func (f Formula) Arity() int {
	if op, ok := f.n.(*opNode); ok {
		return len(op.kids)
	}
	return 0
}

// Equal reports structural equality: same shape, same variable keys, same
// signatures, operand by operand. Equality of formula values is distinct
// from the Iff connective, which builds a formula.
func (f Formula) Equal(g Formula) bool {
	switch a := f.n.(type) {
	case leafNode:
		b, ok := g.n.(leafNode)
		return ok && a.key == b.key
	case *opNode:
		b, ok := g.n.(*opNode)
		if !ok || a.sig != b.sig || len(a.kids) != len(b.kids) {
			return false
		}
		for i := range a.kids {
			if !a.kids[i].Equal(b.kids[i]) {
				return false
			}
		}
		return true
	}
	return f.n == nil && g.n == nil
}

// Visit traverses f depth first, calling fn twice per subformula: once on
// entry with isPost false and once on exit with isPost true. Returning
// false from the entry call skips the subformula's operands. A non-nil
// error stops the traversal.
func (f Formula) Visit(fn func(sub Formula, isPost bool) (bool, error)) error {
	dive, err := fn(f, false)
	if err != nil {
		return err
	}
	if dive {
		if op, ok := f.n.(*opNode); ok {
			for _, kid := range op.kids {
				if err := kid.Visit(fn); err != nil {
					return err
				}
			}
		}
	}
	if _, err := fn(f, true); err != nil {
		return err
	}
	return nil
}

// String returns a total debugging form of f: the infix rendering where
// one exists, zero/one for constants, and a call-style op(<sig>)(...)
// spelling for operations outside the named connectives.
func (f Formula) String() string {
	switch n := f.n.(type) {
	case leafNode:
		return "var(" + n.key + ")"
	case *opNode:
		if len(n.sig) == 1 {
			if n.sig.At(0) == 0 {
				return "zero"
			}
			return "one"
		}
		if c, ok := ConnectiveOf(n.sig); ok {
			return "(" + n.kids[0].String() + " " + c.Symbol() + " " + n.kids[1].String() + ")"
		}
		parts := make([]string, len(n.kids))
		for i, kid := range n.kids {
			parts[i] = kid.String()
		}
		return "op(" + string(n.sig) + ")(" + strings.Join(parts, ", ") + ")"
	}
	return "<invalid wff>"
}
