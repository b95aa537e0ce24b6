package main

import (
	"errors"
	"testing"

	"github.com/scott-cotton/cli"

	"github.com/go-wff/wff"
)

func TestParseFormula(t *testing.T) {
	x, y := wff.Var("x"), wff.Var("y")
	maj, _ := wff.Op("00010111")(wff.Var("a"), wff.Var("b"), wff.Var("c"))
	tests := []struct {
		name string
		args []string
		want wff.Formula
	}{
		{"symbol", []string{"x", "y", "&"}, x.And(y)},
		{"name", []string{"x", "y", "and"}, x.And(y)},
		{"signature", []string{"x", "y", "0110"}, x.Xor(y)},
		{"constants", []string{"zero", "one", "|"}, wff.Zero().Or(wff.One())},
		{"bit constants", []string{"0", "1", "|"}, wff.Zero().Or(wff.One())},
		{"var escape", []string{"var:and", "x", "&"}, wff.Var("and").And(x)},
		{"ternary", []string{"a", "b", "c", "00010111"}, maj},
		{"nested", []string{"x", "y", "implies", "y", "x", "implies", "iff"},
			x.Implies(y).Iff(y.Implies(x))},
		{"single var", []string{"x"}, x},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseFormula(tt.args)
			if err != nil {
				t.Fatalf("parseFormula(%v): %v", tt.args, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("parseFormula(%v) = %s, want %s", tt.args, got, tt.want)
			}
		})
	}
}

func TestParseFormulaUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"empty", nil},
		{"underflow connective", []string{"&"}},
		{"underflow signature", []string{"x", "0110"}},
		{"leftover", []string{"x", "y"}},
		{"bad signature length", []string{"x", "011"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseFormula(tt.args)
			if err == nil {
				t.Fatalf("parseFormula(%v) succeeded, want error", tt.args)
			}
			if !errors.Is(err, cli.ErrUsage) {
				t.Errorf("parseFormula(%v) = %v, want ErrUsage", tt.args, err)
			}
		})
	}
}

func TestParseFormulaMalformedSignature(t *testing.T) {
	_, err := parseFormula([]string{"x", "011"})
	var msErr *wff.MalformedSignatureError
	if !errors.As(err, &msErr) {
		t.Fatalf("parseFormula = %v, want MalformedSignatureError", err)
	}
	if msErr.Sig != "011" {
		t.Errorf("Sig = %q, want %q", msErr.Sig, "011")
	}
}
