package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"

	"github.com/go-wff/wff"
	"github.com/go-wff/wff/encode"
	"github.com/go-wff/wff/format"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='colorize output'"`

	T bool `cli:"name=t aliases=text desc='output in text'"`
	J bool `cli:"name=j aliases=json desc='output in json'"`
	Y bool `cli:"name=y aliases=yaml desc='output in yaml'"`

	OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fp **format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = &f
		return f, nil
	})
}

func (cfg *MainConfig) outFormat() format.Format {
	var fmat format.Format
	switch {
	case cfg.T:
		fmat = format.TextFormat
	case cfg.J:
		fmat = format.JSONFormat
	case cfg.Y:
		fmat = format.YAMLFormat
	}
	if cfg.OutFormat != nil {
		fmat = *cfg.OutFormat
	}
	return fmat
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.Option {
	res := []encode.Option{
		encode.WithFormat(cfg.outFormat()),
	}
	if cfg.Color {
		res = append(res, encode.WithColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.WithColors(encode.NewColors()))
		return res
	}
	return res
}

type TableConfig struct {
	*MainConfig
	Column bool `cli:"name=column aliases=col desc='print only the output column'"`

	Table *cli.Command
}

type EvalConfig struct {
	*MainConfig
	Env wff.Env

	Eval *cli.Command
}

type RenderConfig struct {
	*MainConfig
	Bare bool `cli:"name=bare desc='render variables as bare keys'"`

	Render *cli.Command
}

type VarsConfig struct {
	*MainConfig

	Vars *cli.Command
}

type OpsConfig struct {
	*MainConfig

	Ops *cli.Command
}

type ConnectivesConfig struct {
	*MainConfig

	Connectives *cli.Command
}
