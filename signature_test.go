package wff

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSignatureArity(t *testing.T) {
	tests := []struct {
		sig  Signature
		want int
	}{
		{"0", 0},
		{"1", 0},
		{"01", 1},
		{"0110", 2},
		{"00010111", 3},
		{"0110100110010110", 4},
		{"", -1},
		{"011", -1},
		{"0a01", -1},
		{"2110", -1},
	}
	for _, tt := range tests {
		t.Run(string(tt.sig), func(t *testing.T) {
			if got := tt.sig.Arity(); got != tt.want {
				t.Errorf("Arity(%q) = %v, want %v", tt.sig, got, tt.want)
			}
			if got := tt.sig.Valid(); got != (tt.want >= 0) {
				t.Errorf("Valid(%q) = %v, want %v", tt.sig, got, tt.want >= 0)
			}
		})
	}
}

func TestSignatureOf(t *testing.T) {
	tests := []struct {
		bits []Bit
		want Signature
	}{
		{[]Bit{0, 1, 1, 1}, "0111"},
		{[]Bit{1}, "1"},
		{[]Bit{0, 7}, "01"},
		{nil, ""},
	}
	for _, tt := range tests {
		if got := SignatureOf(tt.bits...); got != tt.want {
			t.Errorf("SignatureOf(%v) = %q, want %q", tt.bits, got, tt.want)
		}
	}
}

func TestSignatureAt(t *testing.T) {
	sig := Signature("0110")
	want := []Bit{0, 1, 1, 0}
	got := sig.Bits()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Bits(%q) mismatch (-want +got):\n%s", sig, diff)
	}
	for i, b := range want {
		if sig.At(i) != b {
			t.Errorf("At(%d) = %v, want %v", i, sig.At(i), b)
		}
	}
}

func TestParseSignature(t *testing.T) {
	sig, err := ParseSignature("1001")
	if err != nil {
		t.Fatalf("ParseSignature: %v", err)
	}
	if sig != "1001" {
		t.Errorf("ParseSignature = %q, want %q", sig, "1001")
	}

	for _, bad := range []string{"", "011", "01x1"} {
		_, err := ParseSignature(bad)
		var msErr *MalformedSignatureError
		if !errors.As(err, &msErr) {
			t.Errorf("ParseSignature(%q) = %v, want MalformedSignatureError", bad, err)
			continue
		}
		if msErr.Sig != Signature(bad) {
			t.Errorf("Sig = %q, want %q", msErr.Sig, bad)
		}
	}
}
