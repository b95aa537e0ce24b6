// Package format names the output formats the toolkit can emit: plain
// text, JSON and YAML.
//
// # Usage
//
//	f, err := format.ParseFormat("json")
//
//	// Select behavior by format
//	if f.IsJSON() { ... }
//
// Formats apply to emitted artifacts such as truth tables and query
// results. Formulas themselves have no persistence format.
//
// # Related Packages
//
//   - github.com/go-wff/wff/encode - writers parameterized by format
package format
