package wff

import "math/bits"

// Bit is a boolean value in numeric form, 0 or 1.
type Bit uint8

// Env binds variable keys to bit values for evaluation. A nil Env is a
// valid empty environment.
type Env map[string]Bit

// Signature is the truth table of an n-ary boolean function written out as
// a bit string of length 2^n. Position i holds the output for the i-th
// combination of operand values in binary counting order, with the first
// operand as the most significant bit. For example "0111" is binary
// disjunction: position 0 is the output for operands (0, 0) and position 3
// the output for (1, 1).
//
// Signatures are plain strings over '0' and '1', so they are immutable,
// comparable and usable as map and set keys.
type Signature string

// SignatureOf builds a signature from output bits. Any nonzero bit is
// treated as 1.
func SignatureOf(outputs ...Bit) Signature {
	buf := make([]byte, len(outputs))
	for i, b := range outputs {
		if b == 0 {
			buf[i] = '0'
		} else {
			buf[i] = '1'
		}
	}
	return Signature(buf)
}

// ParseSignature validates s as a signature: a string of '0' and '1'
// characters whose length is a power of two. It returns a
// *MalformedSignatureError otherwise.
func ParseSignature(s string) (Signature, error) {
	sig := Signature(s)
	if !sig.Valid() {
		return "", &MalformedSignatureError{Sig: sig, Operands: -1}
	}
	return sig, nil
}

// Valid reports whether the signature is a bit string whose length is a
// power of two.
func (s Signature) Valid() bool {
	n := len(s)
	if n == 0 || n&(n-1) != 0 {
		return false
	}
	return validBits(string(s))
}

// Arity returns the number of operands a function with this signature
// takes, or -1 if the signature is not valid.
func (s Signature) Arity() int {
	if !s.Valid() {
		return -1
	}
	return bits.TrailingZeros(uint(len(s)))
}

// At returns the output bit at position i. Any byte other than '1' reads
// as 0.
func (s Signature) At(i int) Bit {
	if s[i] == '1' {
		return 1
	}
	return 0
}

// Bits returns the outputs of the signature as a fresh slice.
func (s Signature) Bits() []Bit {
	out := make([]Bit, len(s))
	for i := range s {
		out[i] = s.At(i)
	}
	return out
}

func (s Signature) String() string { return string(s) }

func validBits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != '0' && s[i] != '1' {
			return false
		}
	}
	return true
}
