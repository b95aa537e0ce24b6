package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Eval   bool
	Table  bool
	Render bool
	CLI    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Eval = boolEnv("WFF_DEBUG_EVAL")
	d.Table = boolEnv("WFF_DEBUG_TABLE")
	d.Render = boolEnv("WFF_DEBUG_RENDER")
	d.CLI = boolEnv("WFF_DEBUG_CLI")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Eval() bool {
	return d.Eval
}
func Table() bool {
	return d.Table
}
func Render() bool {
	return d.Render
}
func CLI() bool {
	return d.CLI
}
