package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/go-wff/wff/encode"
)

func connectivesRun(cfg *ConnectivesConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Connectives.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: connectives takes no arguments", cli.ErrUsage)
	}
	return encode.Connectives(cc.Out, cfg.encOpts(cc.Out)...)
}
