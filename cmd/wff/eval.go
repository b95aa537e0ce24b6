package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/go-wff/wff"
	"github.com/go-wff/wff/debug"
	"github.com/go-wff/wff/encode"
)

func evalRun(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	f, err := parseFormula(args)
	if err != nil {
		return err
	}
	if debug.CLI() {
		debug.Logf("eval %s under %d bindings\n", f, len(cfg.Env))
	}
	b, err := f.Eval(cfg.Env)
	if err != nil {
		return err
	}
	return encode.Value(b, cc.Out, cfg.encOpts(cc.Out)...)
}

func envFunc(env wff.Env, a string) error {
	key, val, ok := strings.Cut(a, "=")
	if !ok {
		return fmt.Errorf("%w: argument %q expected var=bit", cli.ErrUsage, a)
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return fmt.Errorf("%w: argument %q: %v", cli.ErrUsage, a, err)
	}
	if b {
		env[key] = 1
	} else {
		env[key] = 0
	}
	return nil
}
