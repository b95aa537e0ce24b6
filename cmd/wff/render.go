package main

import (
	"github.com/scott-cotton/cli"

	"github.com/go-wff/wff/encode"
)

func renderRun(cfg *RenderConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Render.Parse(cc, args)
	if err != nil {
		return err
	}
	f, err := parseFormula(args)
	if err != nil {
		return err
	}
	opts := cfg.encOpts(cc.Out)
	if cfg.Bare {
		opts = append(opts, encode.WithVars(func(key string) string { return key }))
	}
	return encode.Expr(f, cc.Out, opts...)
}
