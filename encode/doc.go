// Package encode writes formulas and their derived artifacts as text,
// JSON or YAML.
//
// # Usage
//
//	// Truth table grid to stdout
//	err := encode.Table(f, os.Stdout)
//
//	// Infix expression as a JSON document
//	err := encode.Expr(f, os.Stdout, encode.WithFormat(format.JSONFormat))
//
//	// Colorized output
//	err := encode.Table(f, os.Stdout, encode.WithColors(encode.NewColors()))
//
// Writers never encode formulas themselves, only their renderings and
// tables; formulas have no persistence format.
//
// # Related Packages
//
//   - github.com/go-wff/wff - the formula engine
//   - github.com/go-wff/wff/format - output format selection
package encode
