package main

import (
	"github.com/scott-cotton/cli"

	"github.com/go-wff/wff/encode"
)

func tableRun(cfg *TableConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Table.Parse(cc, args)
	if err != nil {
		return err
	}
	f, err := parseFormula(args)
	if err != nil {
		return err
	}
	opts := append(cfg.encOpts(cc.Out), encode.WithColumn(cfg.Column))
	return encode.Table(f, cc.Out, opts...)
}
