package main

import (
	"cmp"
	"slices"

	"github.com/scott-cotton/cli"

	"github.com/go-wff/wff"
	"github.com/go-wff/wff/encode"
)

func varsRun(cfg *VarsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Vars.Parse(cc, args)
	if err != nil {
		return err
	}
	f, err := parseFormula(args)
	if err != nil {
		return err
	}
	return encode.List("vars", f.SortedVars(), cc.Out, cfg.encOpts(cc.Out)...)
}

func opsRun(cfg *OpsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Ops.Parse(cc, args)
	if err != nil {
		return err
	}
	f, err := parseFormula(args)
	if err != nil {
		return err
	}
	sigs := f.Operations().ToSlice()
	// by arity, then by value
	slices.SortFunc(sigs, func(a, b wff.Signature) int {
		if c := cmp.Compare(len(a), len(b)); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})
	items := make([]string, len(sigs))
	for i, sig := range sigs {
		items[i] = string(sig)
	}
	return encode.List("operations", items, cc.Out, cfg.encOpts(cc.Out)...)
}
