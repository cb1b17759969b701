// Package token provides the lexical layer for tabtext files.
//
// [Scanner] reads whitespace delimited tokens and whole lines from a buffer.
// It supports lookahead with [Scanner.Peek] so that callers can classify a
// token before consuming it, and it counts runs of blank lines with
// [Scanner.CountNewlines] so that the spacing between blocks can be
// reproduced on output.
//
// [IsNumber] is the numeric classifier which decides where the data of a
// block ends.
//
// [MatchTrigger] maps the first token of a line onto a section [Trigger]
// using an ordered dispatch table.
//
// # Related Packages
//
//   - github.com/signadot/tabtext/parse - validation and document assembly
//   - github.com/signadot/tabtext/encode - serialization
package token
