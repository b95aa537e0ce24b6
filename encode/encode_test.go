package encode

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml"
	"github.com/google/go-cmp/cmp"

	"github.com/go-wff/wff"
	"github.com/go-wff/wff/format"
)

func TestTableText(t *testing.T) {
	f := wff.Var("x").And(wff.Var("y"))
	var buf bytes.Buffer
	if err := Table(f, &buf); err != nil {
		t.Fatalf("Table: %v", err)
	}
	want := "x y | out\n" +
		"0 0 | 0\n" +
		"0 1 | 0\n" +
		"1 0 | 0\n" +
		"1 1 | 1\n"
	if got := buf.String(); got != want {
		t.Errorf("Table =\n%s\nwant\n%s", got, want)
	}
}

// Bits line up under the header even when variable names differ in width.
func TestTableTextWidths(t *testing.T) {
	f := wff.Var("in").Or(wff.Var("b"))
	var buf bytes.Buffer
	if err := Table(f, &buf); err != nil {
		t.Fatalf("Table: %v", err)
	}
	want := "b in | out\n" +
		"0  0 | 0\n" +
		"0  1 | 1\n" +
		"1  0 | 1\n" +
		"1  1 | 1\n"
	if got := buf.String(); got != want {
		t.Errorf("Table =\n%s\nwant\n%s", got, want)
	}
}

func TestTableColumn(t *testing.T) {
	f := wff.Var("x").And(wff.Var("y"))
	var buf bytes.Buffer
	if err := Table(f, &buf, WithColumn(true)); err != nil {
		t.Fatalf("Table: %v", err)
	}
	if got, want := buf.String(), "0001\n"; got != want {
		t.Errorf("Table = %q, want %q", got, want)
	}
}

func TestTableGround(t *testing.T) {
	var buf bytes.Buffer
	if err := Table(wff.One(), &buf); err != nil {
		t.Fatalf("Table: %v", err)
	}
	if got, want := buf.String(), "| out\n| 1\n"; got != want {
		t.Errorf("Table = %q, want %q", got, want)
	}
}

func TestTableJSON(t *testing.T) {
	f := wff.Var("x").And(wff.Var("y"))
	var buf bytes.Buffer
	if err := Table(f, &buf, WithFormat(format.JSONFormat)); err != nil {
		t.Fatalf("Table: %v", err)
	}
	var doc struct {
		Vars  []string `json:"vars"`
		Table string   `json:"table"`
		Rows  [][]int  `json:"rows"`
	}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("Unmarshal: %v\n%s", err, buf.String())
	}
	if diff := cmp.Diff([]string{"x", "y"}, doc.Vars); diff != "" {
		t.Errorf("vars mismatch (-want +got):\n%s", diff)
	}
	if doc.Table != "0001" {
		t.Errorf("table = %q, want %q", doc.Table, "0001")
	}
	wantRows := [][]int{{0, 0, 0}, {0, 1, 0}, {1, 0, 0}, {1, 1, 1}}
	if diff := cmp.Diff(wantRows, doc.Rows); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestTableJSONColumn(t *testing.T) {
	f := wff.Var("x").And(wff.Var("y"))
	var buf bytes.Buffer
	if err := Table(f, &buf, WithFormat(format.JSONFormat), WithColumn(true)); err != nil {
		t.Fatalf("Table: %v", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if _, ok := doc["rows"]; ok {
		t.Errorf("column document carries rows: %v", doc)
	}
	if doc["table"] != "0001" {
		t.Errorf("table = %v, want %q", doc["table"], "0001")
	}
}

func TestTableYAML(t *testing.T) {
	f := wff.Var("x").Xor(wff.Var("y"))
	var buf bytes.Buffer
	if err := Table(f, &buf, WithFormat(format.YAMLFormat)); err != nil {
		t.Fatalf("Table: %v", err)
	}
	var doc struct {
		Vars  []string `yaml:"vars"`
		Table string   `yaml:"table"`
		Rows  [][]int  `yaml:"rows"`
	}
	if err := yaml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("Unmarshal: %v\n%s", err, buf.String())
	}
	if diff := cmp.Diff([]string{"x", "y"}, doc.Vars); diff != "" {
		t.Errorf("vars mismatch (-want +got):\n%s", diff)
	}
	if doc.Table != "0110" {
		t.Errorf("table = %q, want %q", doc.Table, "0110")
	}
	wantRows := [][]int{{0, 0, 0}, {0, 1, 1}, {1, 0, 1}, {1, 1, 0}}
	if diff := cmp.Diff(wantRows, doc.Rows); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestExpr(t *testing.T) {
	f := wff.Var("x").And(wff.Var("y")).Implies(wff.Zero())
	var buf bytes.Buffer
	if err := Expr(f, &buf); err != nil {
		t.Fatalf("Expr: %v", err)
	}
	if got, want := buf.String(), "((var(x) & var(y)) <= zero)\n"; got != want {
		t.Errorf("Expr = %q, want %q", got, want)
	}
}

func TestExprVars(t *testing.T) {
	f := wff.Var("x").Nand(wff.Var("y"))
	var buf bytes.Buffer
	if err := Expr(f, &buf, WithVars(strings.ToUpper)); err != nil {
		t.Fatalf("Expr: %v", err)
	}
	if got, want := buf.String(), "(X @ Y)\n"; got != want {
		t.Errorf("Expr = %q, want %q", got, want)
	}
}

func TestExprJSON(t *testing.T) {
	f := wff.Var("x").Or(wff.Var("y"))
	var buf bytes.Buffer
	if err := Expr(f, &buf, WithFormat(format.JSONFormat)); err != nil {
		t.Fatalf("Expr: %v", err)
	}
	var doc struct {
		Expr string `json:"expr"`
	}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if want := "(var(x) | var(y))"; doc.Expr != want {
		t.Errorf("expr = %q, want %q", doc.Expr, want)
	}
}

func TestExprUnsupported(t *testing.T) {
	maj, err := wff.Op("00010111")(wff.Var("a"), wff.Var("b"), wff.Var("c"))
	if err != nil {
		t.Fatal(err)
	}
	for _, f := range []format.Format{format.TextFormat, format.JSONFormat} {
		err := Expr(maj, io.Discard, WithFormat(f))
		var uaErr *wff.UnsupportedArityError
		if !errors.As(err, &uaErr) {
			t.Errorf("Expr under %s = %v, want UnsupportedArityError", f, err)
		}
	}
}

func TestMustExpr(t *testing.T) {
	f := wff.Var("x").Iff(wff.One())
	if got, want := MustExpr(f), "(var(x) == one)"; got != want {
		t.Errorf("MustExpr = %q, want %q", got, want)
	}
}

func TestMustExprPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("MustExpr on an unrenderable formula did not panic")
		}
	}()
	neg, err := wff.Op("10")(wff.Var("x"))
	if err != nil {
		t.Fatal(err)
	}
	MustExpr(neg)
}

// The nor symbol is a literal "%"; it must survive the sprintf-style
// color functions.
func TestExprColorEscape(t *testing.T) {
	old := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = old }()

	f := wff.Var("x").Nor(wff.Var("y"))
	got := MustExpr(f, WithColors(NewColors()))
	if want := "(var(x) % var(y))"; got != want {
		t.Errorf("MustExpr = %q, want %q", got, want)
	}
}

func TestValue(t *testing.T) {
	var buf bytes.Buffer
	if err := Value(1, &buf); err != nil {
		t.Fatalf("Value: %v", err)
	}
	if got, want := buf.String(), "1\n"; got != want {
		t.Errorf("Value = %q, want %q", got, want)
	}

	buf.Reset()
	if err := Value(0, &buf, WithFormat(format.JSONFormat)); err != nil {
		t.Fatalf("Value: %v", err)
	}
	var doc struct {
		Value int `json:"value"`
	}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if doc.Value != 0 {
		t.Errorf("value = %d, want 0", doc.Value)
	}
}

func TestList(t *testing.T) {
	var buf bytes.Buffer
	if err := List("vars", []string{"a", "b"}, &buf); err != nil {
		t.Fatalf("List: %v", err)
	}
	if got, want := buf.String(), "a\nb\n"; got != want {
		t.Errorf("List = %q, want %q", got, want)
	}

	buf.Reset()
	if err := List("vars", nil, &buf, WithFormat(format.JSONFormat)); err != nil {
		t.Fatalf("List: %v", err)
	}
	var doc map[string][]string
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if diff := cmp.Diff(map[string][]string{"vars": {}}, doc); diff != "" {
		t.Errorf("document mismatch (-want +got):\n%s", diff)
	}
}

func TestConnectivesText(t *testing.T) {
	var buf bytes.Buffer
	if err := Connectives(&buf); err != nil {
		t.Fatalf("Connectives: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 12 {
		t.Fatalf("lines = %d, want 12\n%s", len(lines), buf.String())
	}
	first := strings.Fields(lines[0])
	if diff := cmp.Diff([]string{"and", "&", "0001"}, first); diff != "" {
		t.Errorf("first line mismatch (-want +got):\n%s", diff)
	}
	last := strings.Fields(lines[11])
	if diff := cmp.Diff([]string{"nand", "@", "1110"}, last); diff != "" {
		t.Errorf("last line mismatch (-want +got):\n%s", diff)
	}
}

func TestConnectivesJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Connectives(&buf, WithFormat(format.JSONFormat)); err != nil {
		t.Fatalf("Connectives: %v", err)
	}
	var docs []struct {
		Name      string `json:"name"`
		Symbol    string `json:"symbol"`
		Signature string `json:"signature"`
	}
	if err := json.Unmarshal(buf.Bytes(), &docs); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(docs) != 12 {
		t.Fatalf("connectives = %d, want 12", len(docs))
	}
	if docs[3].Name != "xor" || docs[3].Symbol != "^" || docs[3].Signature != "0110" {
		t.Errorf("docs[3] = %+v, want xor", docs[3])
	}
}

func TestBadFormat(t *testing.T) {
	bad := WithFormat(format.Format(9))
	f := wff.Var("x").And(wff.Var("y"))
	for name, err := range map[string]error{
		"table":       Table(f, io.Discard, bad),
		"expr":        Expr(f, io.Discard, bad),
		"value":       Value(1, io.Discard, bad),
		"list":        List("vars", nil, io.Discard, bad),
		"connectives": Connectives(io.Discard, bad),
	} {
		if !errors.Is(err, format.ErrBadFormat) {
			t.Errorf("%s = %v, want ErrBadFormat", name, err)
		}
	}
}
