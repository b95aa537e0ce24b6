package encode

import (
	"bytes"
	"strings"

	"github.com/go-wff/wff"
)

func MustExpr(f wff.Formula, opts ...Option) string {
	buf := bytes.NewBuffer(nil)
	if err := Expr(f, buf, opts...); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
