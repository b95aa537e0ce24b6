package wff

import (
	"testing"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/go-cmp/cmp"
)

func TestVars(t *testing.T) {
	maj := mustOp(t, "00010111", Var("p"), Var("q"), Var("p"))
	tests := []struct {
		name string
		f    Formula
		want []string
	}{
		{"single var", Var("a"), []string{"a"}},
		{"constant", One(), []string{}},
		{"dedup", Var("a").And(Var("a")), []string{"a"}},
		{"two vars", Var("b").Or(Var("a")), []string{"a", "b"}},
		{"nested", Var("x").And(Var("y")).Implies(Var("z").Xor(Var("x"))), []string{"x", "y", "z"}},
		{"ground mix", Var("a").And(One()).Or(Zero()), []string{"a"}},
		{"wide arity", maj, []string{"p", "q"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := mapset.NewSet[string](tt.want...)
			if got := tt.f.Vars(); !got.Equal(want) {
				t.Errorf("Vars() = %v, want %v", got, want)
			}
			if diff := cmp.Diff(tt.want, tt.f.SortedVars()); diff != "" {
				t.Errorf("SortedVars() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestVarsFresh(t *testing.T) {
	f := Var("a").And(Var("b"))
	s := f.Vars()
	s.Add("c")
	if f.Vars().Contains("c") {
		t.Errorf("mutating a returned set changed the formula's variables")
	}
}

func TestOperations(t *testing.T) {
	x, y := Var("x"), Var("y")
	maj := mustOp(t, "00010111", x, y, Var("z"))
	tests := []struct {
		name string
		f    Formula
		want []Signature
	}{
		{"leaf", x, nil},
		{"constant", Zero(), []Signature{"0"}},
		{"single op", x.And(y), []Signature{"0001"}},
		{"dedup", x.And(y).And(x), []Signature{"0001"}},
		{"mixed", x.And(y).Or(One()), []Signature{"0001", "0111", "1"}},
		{"beyond binary", maj.Nand(Zero()), []Signature{"00010111", "1110", "0"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := mapset.NewSet[Signature](tt.want...)
			if got := tt.f.Operations(); !got.Equal(want) {
				t.Errorf("Operations() = %v, want %v", got, want)
			}
		})
	}
}
