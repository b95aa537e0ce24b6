package encode

import (
	"strings"

	"github.com/fatih/color"
)

// Element classifies the pieces of emitted text for coloring.
type Element int

const (
	VarElement Element = iota
	ConstElement
	SymbolElement
	ParenElement
	BitElement
	HeaderElement
	RuleElement
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Element]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Element]func(string, ...any) string{},
	}
	colors.Map[VarElement] = color.RGB(8, 196, 16).SprintfFunc()
	colors.Map[ConstElement] = color.CyanString
	colors.Map[SymbolElement] = color.RGB(255, 0, 196).SprintfFunc()
	colors.Map[ParenElement] = color.RGB(74, 92, 138).SprintfFunc()
	colors.Map[BitElement] = color.RGB(128, 216, 236).SprintfFunc()
	colors.Map[HeaderElement] = color.RGB(196, 96, 16).SprintfFunc()
	colors.Map[RuleElement] = color.RGB(196, 128, 128).SprintfFunc()
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(e Element, s string) string {
	return c.Get(e)(s)
}

func (c *Colors) Get(e Element) func(string, ...any) string {
	f := c.Map[e]
	if f == nil {
		return c.Default
	}
	return f
}
