package main

import (
	"fmt"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/go-wff/wff"
	"github.com/go-wff/wff/debug"
)

// parseFormula interprets args as a postfix constructor program and
// returns the single formula it leaves behind. Each argument maps to one
// constructor call: zero/one push constants, a signature applies wff.Op
// over as many operands as its arity, a connective name or symbol applies
// it to two operands, var:<key> forces a variable, and anything else is a
// variable. There is no expression syntax.
func parseFormula(args []string) (wff.Formula, error) {
	var stack []wff.Formula
	for _, arg := range args {
		switch {
		case arg == "zero":
			stack = append(stack, wff.Zero())
		case arg == "one":
			stack = append(stack, wff.One())
		case strings.HasPrefix(arg, "var:"):
			stack = append(stack, wff.Var(strings.TrimPrefix(arg, "var:")))
		case isBits(arg):
			sig, err := wff.ParseSignature(arg)
			if err != nil {
				return wff.Formula{}, fmt.Errorf("%w: %w", cli.ErrUsage, err)
			}
			n := sig.Arity()
			if len(stack) < n {
				return wff.Formula{}, fmt.Errorf(
					"%w: signature %q needs %d operands, have %d",
					cli.ErrUsage, arg, n, len(stack))
			}
			f, err := wff.Op(sig)(stack[len(stack)-n:]...)
			if err != nil {
				return wff.Formula{}, err
			}
			stack = append(stack[:len(stack)-n], f)
		case isConnective(arg):
			c, err := wff.ParseConnective(arg)
			if err != nil {
				return wff.Formula{}, err
			}
			if len(stack) < 2 {
				return wff.Formula{}, fmt.Errorf(
					"%w: connective %q needs 2 operands, have %d",
					cli.ErrUsage, arg, len(stack))
			}
			x, y := stack[len(stack)-2], stack[len(stack)-1]
			stack = append(stack[:len(stack)-2], wff.Apply(c, x, y))
		default:
			stack = append(stack, wff.Var(arg))
		}
	}
	if len(stack) != 1 {
		return wff.Formula{}, fmt.Errorf(
			"%w: formula must leave exactly one result, got %d",
			cli.ErrUsage, len(stack))
	}
	if debug.CLI() {
		debug.Logf("formula %s\n", stack[0])
	}
	return stack[0], nil
}

func isBits(arg string) bool {
	if arg == "" {
		return false
	}
	for i := 0; i < len(arg); i++ {
		if arg[i] != '0' && arg[i] != '1' {
			return false
		}
	}
	return true
}

func isConnective(arg string) bool {
	_, err := wff.ParseConnective(arg)
	return err == nil
}
