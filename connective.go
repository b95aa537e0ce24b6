package wff

import (
	"errors"
	"fmt"
)

// Connective identifies one of the twelve named binary connectives. The
// set is closed: every nontrivial binary boolean function except the two
// bare projections. Connectives are ordered by their signatures.
type Connective int

const (
	And          Connective = iota // 0001
	NotImplies                     // 0010
	NotImpliedBy                   // 0100
	Xor                            // 0110
	Or                             // 0111
	Nor                            // 1000
	Iff                            // 1001
	NotSecond                      // 1010
	ImpliedBy                      // 1011
	NotFirst                       // 1100
	Implies                        // 1101
	Nand                           // 1110
)

type connectiveDef struct {
	name   string
	symbol string
	sig    Signature
}

var connectiveDefs = [...]connectiveDef{
	And:          {"and", "&", "0001"},
	NotImplies:   {"not-implies", ">", "0010"},
	NotImpliedBy: {"not-implied-by", "<", "0100"},
	Xor:          {"xor", "^", "0110"},
	Or:           {"or", "|", "0111"},
	Nor:          {"nor", "%", "1000"},
	Iff:          {"iff", "==", "1001"},
	NotSecond:    {"not-second", "//", "1010"},
	ImpliedBy:    {"implied-by", ">=", "1011"},
	NotFirst:     {"not-first", "/", "1100"},
	Implies:      {"implies", "<=", "1101"},
	Nand:         {"nand", "@", "1110"},
}

var (
	connectiveByToken map[string]Connective
	connectiveBySig   map[Signature]Connective
)

func init() {
	connectiveByToken = make(map[string]Connective, 2*len(connectiveDefs))
	connectiveBySig = make(map[Signature]Connective, len(connectiveDefs))
	for c, def := range connectiveDefs {
		connectiveByToken[def.name] = Connective(c)
		connectiveByToken[def.symbol] = Connective(c)
		connectiveBySig[def.sig] = Connective(c)
	}
}

var ErrBadConnective = errors.New("bad connective")

// ParseConnective resolves a connective from its name or its symbol.
func ParseConnective(v string) (Connective, error) {
	c, ok := connectiveByToken[v]
	if ok {
		return c, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadConnective, v)
}

// ConnectiveOf returns the connective whose signature is sig, if there is
// one.
func ConnectiveOf(sig Signature) (Connective, bool) {
	c, ok := connectiveBySig[sig]
	return c, ok
}

func (c Connective) valid() bool {
	return c >= 0 && int(c) < len(connectiveDefs)
}

// Signature returns the 4-bit signature of the connective under operand
// order (0,0), (0,1), (1,0), (1,1).
func (c Connective) Signature() Signature {
	if !c.valid() {
		return ""
	}
	return connectiveDefs[c].sig
}

// Symbol returns the infix symbol used when rendering the connective.
func (c Connective) Symbol() string {
	if !c.valid() {
		return ""
	}
	return connectiveDefs[c].symbol
}

func (c Connective) String() string {
	if !c.valid() {
		return "<unknown connective>"
	}
	return connectiveDefs[c].name
}

func (c Connective) MarshalText() ([]byte, error) {
	if !c.valid() {
		return nil, fmt.Errorf("%d is not a connective", int(c))
	}
	return []byte(c.String()), nil
}

func (c *Connective) UnmarshalText(d []byte) error {
	cc, err := ParseConnective(string(d))
	if err != nil {
		return err
	}
	*c = cc
	return nil
}

// Connectives returns the twelve connectives in signature order.
func Connectives() []Connective {
	res := make([]Connective, len(connectiveDefs))
	for i := range connectiveDefs {
		res[i] = Connective(i)
	}
	return res
}

// Apply builds the formula applying connective c to operands x and y. It
// never evaluates eagerly, even on constant operands. Apply panics if c is
// not one of the named connectives.
func Apply(c Connective, x, y Formula) Formula {
	if !c.valid() {
		panic(fmt.Sprintf("wff: %d is not a connective", int(c)))
	}
	return Formula{&opNode{sig: connectiveDefs[c].sig, kids: []Formula{x, y}}}
}

// The twelve connectives as infix-style methods.

// And builds the conjunction of f and g.
func (f Formula) And(g Formula) Formula { return Apply(And, f, g) }

// NotImplies builds the negation of Implies: true iff f holds and g does not.
func (f Formula) NotImplies(g Formula) Formula { return Apply(NotImplies, f, g) }

// NotImpliedBy builds the negation of ImpliedBy: true iff g holds and f does not.
func (f Formula) NotImpliedBy(g Formula) Formula { return Apply(NotImpliedBy, f, g) }

// Xor builds the exclusive disjunction of f and g.
func (f Formula) Xor(g Formula) Formula { return Apply(Xor, f, g) }

// Or builds the disjunction of f and g.
func (f Formula) Or(g Formula) Formula { return Apply(Or, f, g) }

// Nor builds the negated disjunction of f and g.
func (f Formula) Nor(g Formula) Formula { return Apply(Nor, f, g) }

// Iff builds the biconditional of f and g. This is a formula over f and g;
// use Equal to compare formula structure.
func (f Formula) Iff(g Formula) Formula { return Apply(Iff, f, g) }

// NotSecond builds the negation of g; the value of f is ignored.
func (f Formula) NotSecond(g Formula) Formula { return Apply(NotSecond, f, g) }

// ImpliedBy builds the converse implication: true unless g holds and f does not.
func (f Formula) ImpliedBy(g Formula) Formula { return Apply(ImpliedBy, f, g) }

// NotFirst builds the negation of f; the value of g is ignored.
func (f Formula) NotFirst(g Formula) Formula { return Apply(NotFirst, f, g) }

// Implies builds the implication: true unless f holds and g does not.
func (f Formula) Implies(g Formula) Formula { return Apply(Implies, f, g) }

// Nand builds the negated conjunction of f and g.
func (f Formula) Nand(g Formula) Formula { return Apply(Nand, f, g) }
