// Package tabtext loads and saves tabtext files.
//
// A tabtext file is line oriented. Lines beginning with a section trigger
// (#scalar, #matrix, #matrixname, #vector, #vectors, #vectorsname) open a
// block of numeric data, and any other line beginning with '#' is a
// comment:
//
//	# calibration run
//	#scalar rate
//	0.5
//
//	#matrixname grid
//	#matrix a b
//	1	2
//	3	4
//
// [Load] validates a file and, when it is well formed, assembles it into a
// structured [doc.Document] whose values live in a [doc.Renderer]. A file
// which fails validation is loaded as plain text instead; the failure is
// kept in Document.Fallback and is not an error. [Save] writes a document
// back through the same storage.
//
// # Errors
//
//   - errors wrapping [doc.ErrIO] for files which cannot be read or written
//   - errors wrapping [doc.ErrInternal] when validation and assembly disagree
//
// # Related Packages
//
//   - github.com/signadot/tabtext/parse - validation and assembly
//   - github.com/signadot/tabtext/encode - serialization
//   - github.com/signadot/tabtext/doc - document model
package tabtext
