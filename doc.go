// Package wff builds, queries, evaluates and renders propositional
// formulas represented as immutable trees.
//
// # Overview
//
// A Formula is either a variable leaf, identified by a string key, or an
// operation applied to an ordered list of operand subformulas. Operations
// carry a Signature: the truth table of an n-ary boolean function written
// as a bit string of length 2^n, position i holding the output for the
// i-th combination of operand values in binary counting order with the
// first operand most significant. The constants Zero and One are the
// nullary operations with signatures "0" and "1".
//
// Formulas are plain values. Constructors copy their operand slices and
// accessors return copies, so no formula changes after construction and
// sharing subformulas between trees is safe.
//
// # Constructing Formulas
//
// Use the constructors; the zero value of Formula is not valid:
//
//	x := wff.Var("x")
//	y := wff.Var("y")
//	f := x.And(y).Or(x.Xor(y))
//
//	maj, err := wff.Op("00010111")(wff.Var("a"), wff.Var("b"), wff.Var("c"))
//
// Op validates at application time: the signature must be a bit string of
// power-of-two length and the operand count must equal its arity, so every
// formula that exists is well formed.
//
// # Connectives
//
// The twelve named binary connectives are the nontrivial binary functions
// except the two bare projections, each with a fixed signature and infix
// symbol:
//
//	and             &    0001
//	not-implies     >    0010
//	not-implied-by  <    0100
//	xor             ^    0110
//	or              |    0111
//	nor             %    1000
//	iff             ==   1001
//	not-second      //   1010
//	implied-by      >=   1011
//	not-first       /    1100
//	implies         <=   1101
//	nand            @    1110
//
// Each is available as a Connective constant used with Apply and as a
// method on Formula. Connective application always builds a tree; nothing
// evaluates eagerly. Structural equality of formulas is Formula.Equal and
// is unrelated to the Iff connective, which builds a biconditional
// formula.
//
// # Evaluation
//
// Eval computes the bit value of a formula under an Env mapping variable
// keys to bits:
//
//	v, err := f.Eval(wff.Env{"x": 1, "y": 0})
//
// Evaluating a variable that the environment does not bind yields an
// *UnboundVariableError. Operations of any arity evaluate: operand bits
// index into the signature in binary counting order.
//
// # Truth Tables
//
// Table evaluates a formula under every assignment of its variables in
// SortedVars (lexicographic) order and returns the output column as a
// Signature of length 2^k:
//
//	wff.Var("x").Or(wff.Var("y")).Table() // "0111"
//
// The column is itself the signature of a k-ary operation, so
// Op(f.Table()) rebuilds f's boolean function. Assignments exposes the
// underlying enumeration.
//
// # Rendering
//
// Render produces a fully parenthesized infix expression, with a
// configurable variable renderer:
//
//	s, err := f.Render()                                  // (var(x) | var(y))
//	s, err = f.Render(wff.RenderVars(strings.ToUpper))    // (X | Y)
//
// Only leaves, constants and the twelve connectives render; any other
// operation yields an *UnsupportedArityError. Formula.String is the total
// fallback, spelling unrenderable operations op(<sig>)(...). Rendered text
// is for display; this package does not parse formula text.
//
// # Errors
//
// The package reports failures through three error types, returned
// immediately and unwrapped: *MalformedSignatureError from Op and
// ParseSignature, *UnboundVariableError from Eval, and
// *UnsupportedArityError from Render.
//
// # Thread Safety
//
// Formulas and Signatures are immutable and safe for concurrent use. Env
// is an ordinary map; callers synchronize if they share one across
// goroutines.
//
// # Related Packages
//
//   - github.com/go-wff/wff/encode - truth table and expression writers
//   - github.com/go-wff/wff/format - output format selection
//   - github.com/go-wff/wff/debug - environment-gated tracing
package wff
