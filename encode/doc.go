// Package encode writes documents back to tabtext.
//
// A structured document is written element by element in canonical form:
// labels and scalar values are separated by a single space, table cells by
// a tab, and each blank placeholder becomes one empty line. A plain text
// document is written as it was edited, with any run of trailing line
// breaks replaced by exactly one.
//
// # Usage
//
//	err := encode.Encode(d, arena, os.Stdout)
//
//	// with terminal colors
//	err := encode.Encode(d, arena, os.Stdout, encode.EncodeColors(encode.NewColors()))
//
// # Related Packages
//
//   - github.com/signadot/tabtext/doc - document model
//   - github.com/signadot/tabtext/parse - the reverse direction
package encode
