package main

import (
	"github.com/scott-cotton/cli"

	"github.com/go-wff/wff"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: text/t, json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "wff").
		WithSynopsis("wff [opts] command [opts] [formula]").
		WithDescription(mainDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return wffMain(cfg, cc, args)
		}).
		WithSubs(
			TableCommand(cfg),
			EvalCommand(cfg),
			RenderCommand(cfg),
			VarsCommand(cfg),
			OpsCommand(cfg),
			ConnectivesCommand(cfg))
}

const mainDescription = `wff is a tool for working with propositional formulas.

Formula Arguments

Commands take a formula written as a postfix constructor program, one
constructor per argument:

  zero, one      push a constant
  <bits>         a signature: a string of 0s and 1s of power-of-two length
                 such as 0110; pops one operand per arity and pushes the
                 operation
  <connective>   a connective name or symbol (see 'wff connectives'); pops
                 two operands and pushes the application
  var:<key>      push a variable, whatever the key looks like
  <key>          any other argument pushes a variable

The program must leave exactly one formula. For example

  wff table x y '&'
  wff eval -e a=1 -e b=0 -e c=1 a b c 00010111
  wff render x 'var:and' implies

No expression syntax is parsed; arguments map one-to-one onto
constructors.`

func TableCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TableConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("table").
		WithAliases("t", "ta").
		WithSynopsis("table [-column] <formula>").
		WithDescription("print the truth table of a formula").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return tableRun(cfg, cc, args)
		})
	cfg.Table = cmd
	return cmd
}

func EvalCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EvalConfig{MainConfig: mainCfg, Env: wff.Env{}}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts,
		&cli.Opt{
			Name: "e",
			Type: cli.NamedFuncOpt(cli.FuncOpt(envOptTypeFunc(cfg.Env)), "(var=bit)"),
		})

	cmd := cli.NewCommand("eval").
		WithAliases("e", "ev").
		WithSynopsis("eval [-e var=bit [ -e var2=bit2 ]...] <formula>").
		WithDescription("evaluate a formula under an assignment").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return evalRun(cfg, cc, args)
		})
	cfg.Eval = cmd
	return cmd
}

func envOptTypeFunc(env wff.Env) func(cc *cli.Context, a string) (any, error) {
	return func(cc *cli.Context, a string) (any, error) {
		if err := envFunc(env, a); err != nil {
			return nil, err
		}
		return 0, nil
	}
}

func RenderCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RenderConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("render").
		WithAliases("r", "re").
		WithSynopsis("render [-bare] <formula>").
		WithDescription("print a formula as an infix expression").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return renderRun(cfg, cc, args)
		})
	cfg.Render = cmd
	return cmd
}

func VarsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &VarsConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Vars, "vars").
		WithAliases("v").
		WithSynopsis("vars <formula>").
		WithDescription("list the distinct variables of a formula").
		WithRun(func(cc *cli.Context, args []string) error {
			return varsRun(cfg, cc, args)
		})
}

func OpsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &OpsConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Ops, "ops").
		WithSynopsis("ops <formula>").
		WithDescription("list the distinct operation signatures of a formula").
		WithRun(func(cc *cli.Context, args []string) error {
			return opsRun(cfg, cc, args)
		})
}

func ConnectivesCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ConnectivesConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Connectives, "connectives").
		WithAliases("c", "conn").
		WithSynopsis("connectives").
		WithDescription("list the named binary connectives").
		WithRun(func(cc *cli.Context, args []string) error {
			return connectivesRun(cfg, cc, args)
		})
}
