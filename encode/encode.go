package encode

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/go-wff/wff"
	"github.com/go-wff/wff/format"
)

// tableDoc is the JSON/YAML shape of a truth table. Each row holds the
// input bits in variable order followed by the output bit. Rows carry
// int, not wff.Bit: encoding/json renders a slice of uint8-kinded
// elements as a base64 string instead of an array.
type tableDoc struct {
	Vars  []string `json:"vars" yaml:"vars"`
	Table string   `json:"table" yaml:"table"`
	Rows  [][]int  `json:"rows,omitempty" yaml:"rows,omitempty"`
}

type exprDoc struct {
	Expr string `json:"expr" yaml:"expr"`
}

type valueDoc struct {
	Value wff.Bit `json:"value" yaml:"value"`
}

type connectiveDoc struct {
	Name      string `json:"name" yaml:"name"`
	Symbol    string `json:"symbol" yaml:"symbol"`
	Signature string `json:"signature" yaml:"signature"`
}

// Table writes the truth table of f to w. Text format produces a grid
// with a header line and one row per assignment, or only the output
// column under WithColumn; JSON and YAML produce a document with vars,
// table and (without WithColumn) rows fields.
func Table(f wff.Formula, w io.Writer, opts ...Option) error {
	es := newState(opts...)
	keys := f.SortedVars()
	table := f.Table()
	switch {
	case es.format.IsText():
		if es.column {
			_, err := fmt.Fprintf(w, "%s\n", es.color(BitElement, string(table)))
			return err
		}
		return writeGrid(w, keys, table, es)
	case es.format.IsJSON(), es.format.IsYAML():
		doc := &tableDoc{Vars: keys, Table: string(table)}
		if !es.column {
			doc.Rows = tableRows(keys, table)
		}
		return writeDoc(doc, w, es)
	}
	return fmt.Errorf("%w: %d", format.ErrBadFormat, es.format)
}

func writeGrid(w io.Writer, keys []string, table wff.Signature, es *EncState) error {
	var sb strings.Builder
	for _, key := range keys {
		sb.WriteString(es.color(HeaderElement, key))
		sb.WriteString(" ")
	}
	sb.WriteString(es.color(RuleElement, "|"))
	sb.WriteString(" " + es.color(HeaderElement, "out") + "\n")
	i := 0
	wff.Assignments(keys, func(env wff.Env) error {
		for _, key := range keys {
			bit := fmt.Sprintf("%*d", len(key), env[key])
			sb.WriteString(es.color(BitElement, bit))
			sb.WriteString(" ")
		}
		sb.WriteString(es.color(RuleElement, "|"))
		sb.WriteString(" " + es.color(BitElement, fmt.Sprintf("%d", table.At(i))) + "\n")
		i++
		return nil
	})
	_, err := io.WriteString(w, sb.String())
	return err
}

func tableRows(keys []string, table wff.Signature) [][]int {
	rows := make([][]int, 0, len(table))
	i := 0
	wff.Assignments(keys, func(env wff.Env) error {
		row := make([]int, 0, len(keys)+1)
		for _, key := range keys {
			row = append(row, int(env[key]))
		}
		row = append(row, int(table.At(i)))
		rows = append(rows, row)
		i++
		return nil
	})
	return rows
}

// Expr writes f as a fully parenthesized infix expression followed by a
// newline. Operations outside the named connectives yield the same
// *wff.UnsupportedArityError as Formula.Render.
func Expr(f wff.Formula, w io.Writer, opts ...Option) error {
	es := newState(opts...)
	switch {
	case es.format.IsText():
		var sb strings.Builder
		if err := writeExpr(&sb, f, es); err != nil {
			return err
		}
		sb.WriteString("\n")
		_, err := io.WriteString(w, sb.String())
		return err
	case es.format.IsJSON(), es.format.IsYAML():
		s, err := f.Render(wff.RenderVars(es.vars))
		if err != nil {
			return err
		}
		return writeDoc(&exprDoc{Expr: s}, w, es)
	}
	return fmt.Errorf("%w: %d", format.ErrBadFormat, es.format)
}

func writeExpr(sb *strings.Builder, f wff.Formula, es *EncState) error {
	if key, ok := f.Key(); ok {
		sb.WriteString(es.color(VarElement, es.vars(key)))
		return nil
	}
	if b, ok := f.Constant(); ok {
		if b == 0 {
			sb.WriteString(es.color(ConstElement, "zero"))
		} else {
			sb.WriteString(es.color(ConstElement, "one"))
		}
		return nil
	}
	sig, _ := f.Operation()
	c, ok := wff.ConnectiveOf(sig)
	if !ok {
		return &wff.UnsupportedArityError{Sig: sig}
	}
	kids := f.Operands()
	sb.WriteString(es.color(ParenElement, "("))
	if err := writeExpr(sb, kids[0], es); err != nil {
		return err
	}
	sb.WriteString(" " + es.color(SymbolElement, c.Symbol()) + " ")
	if err := writeExpr(sb, kids[1], es); err != nil {
		return err
	}
	sb.WriteString(es.color(ParenElement, ")"))
	return nil
}

// Value writes a single evaluation result.
func Value(b wff.Bit, w io.Writer, opts ...Option) error {
	es := newState(opts...)
	switch {
	case es.format.IsText():
		_, err := fmt.Fprintf(w, "%s\n", es.color(BitElement, fmt.Sprintf("%d", b)))
		return err
	case es.format.IsJSON(), es.format.IsYAML():
		return writeDoc(&valueDoc{Value: b}, w, es)
	}
	return fmt.Errorf("%w: %d", format.ErrBadFormat, es.format)
}

// List writes a named list of strings: one item per line in text format,
// a single-field document in JSON and YAML.
func List(name string, items []string, w io.Writer, opts ...Option) error {
	es := newState(opts...)
	if items == nil {
		items = []string{}
	}
	switch {
	case es.format.IsText():
		var sb strings.Builder
		for _, item := range items {
			sb.WriteString(es.color(VarElement, item))
			sb.WriteString("\n")
		}
		_, err := io.WriteString(w, sb.String())
		return err
	case es.format.IsJSON(), es.format.IsYAML():
		return writeDoc(map[string][]string{name: items}, w, es)
	}
	return fmt.Errorf("%w: %d", format.ErrBadFormat, es.format)
}

// Connectives writes the closed set of named connectives in signature
// order: name, symbol and signature per connective.
func Connectives(w io.Writer, opts ...Option) error {
	es := newState(opts...)
	cs := wff.Connectives()
	switch {
	case es.format.IsText():
		nameW := 0
		for _, c := range cs {
			nameW = max(nameW, len(c.String()))
		}
		var sb strings.Builder
		for _, c := range cs {
			sb.WriteString(es.color(HeaderElement, fmt.Sprintf("%-*s", nameW, c.String())))
			sb.WriteString("  " + es.color(SymbolElement, fmt.Sprintf("%-2s", c.Symbol())))
			sb.WriteString("  " + es.color(BitElement, string(c.Signature())))
			sb.WriteString("\n")
		}
		_, err := io.WriteString(w, sb.String())
		return err
	case es.format.IsJSON(), es.format.IsYAML():
		docs := make([]connectiveDoc, len(cs))
		for i, c := range cs {
			docs[i] = connectiveDoc{
				Name:      c.String(),
				Symbol:    c.Symbol(),
				Signature: string(c.Signature()),
			}
		}
		return writeDoc(docs, w, es)
	}
	return fmt.Errorf("%w: %d", format.ErrBadFormat, es.format)
}

func writeDoc(doc any, w io.Writer, es *EncState) error {
	if es.format.IsJSON() {
		d, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return err
		}
		d = append(d, '\n')
		_, err = w.Write(d)
		return err
	}
	d, err := yaml.Marshal(doc)
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}
