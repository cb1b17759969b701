// Package doc holds the in-memory model of a loaded tabtext file.
//
// A [Document] is an ordered list of [Element]s, or a single block of text
// when the file was loaded in [PlainText] mode. Elements never hold cell
// values themselves: they hold [Handle]s into storage owned by a
// [Renderer], and values are read back through a [ValueReader]. [Arena] is
// the in-process implementation of both.
//
// # Element Kinds
//
//   - [CommentKind] a comment line, or a blank line placeholder when Text is empty
//   - [ScalarKind] one labelled value
//   - [ScalarGroupKind] several labelled values declared on one line
//   - [MatrixKind] a table with one header per column
//   - [VectorGroupKind] a table with one header per row
//   - [SingleVectorKind] a one row table with a single label
//
// # Related Packages
//
//   - github.com/signadot/tabtext/parse - builds documents
//   - github.com/signadot/tabtext/encode - writes documents
package doc
