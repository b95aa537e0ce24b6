package wff

import "github.com/go-wff/wff/debug"

// Assignments enumerates all 2^k assignments of bits to keys in binary
// counting order, with the first key as the most significant bit, calling
// visit once per assignment. The Env passed to visit is reused between
// calls; visit must copy it to retain it. An empty key list yields a
// single visit with an empty environment. A non-nil error from visit stops
// the enumeration.
func Assignments(keys []string, visit func(Env) error) error {
	k := len(keys)
	env := make(Env, k)
	for i := 0; i < 1<<uint(k); i++ {
		for j, key := range keys {
			env[key] = Bit(i >> uint(k-1-j) & 1)
		}
		if err := visit(env); err != nil {
			return err
		}
	}
	return nil
}

// Table computes the full truth table of f over its variables in
// SortedVars order and returns the output column as a Signature of length
// 2^k, where k is the number of distinct variables. The result is itself
// the signature of a k-ary operation, so Op(f.Table()) rebuilds f's
// boolean function. Ground formulas yield a length-1 signature.
//
// The table is exhaustive: cost grows as 2^k.
func (f Formula) Table() Signature {
	keys := f.SortedVars()
	out := make([]byte, 0, 1<<uint(len(keys)))
	err := Assignments(keys, func(env Env) error {
		b, err := f.Eval(env)
		if err != nil {
			return err
		}
		out = append(out, '0'+byte(b))
		return nil
	})
	if err != nil {
		// unreachable: Assignments binds every variable of f
		panic(err)
	}
	if debug.Table() {
		debug.Logf("table %s over %d vars = %s\n", f, len(keys), string(out))
	}
	return Signature(out)
}
