// Package parse validates tabtext files and assembles them into documents.
//
// Loading is two passes over the same buffer. [Validate] is a dry run which
// checks that every line belongs to a well formed section and stores
// nothing. [Parse] assumes its input has passed validation and builds a
// [doc.Document], handing values to a [doc.Renderer] as it goes. If the
// two passes ever disagree Parse fails with an error wrapping
// [doc.ErrInternal].
//
// # Usage
//
//	if err := parse.Validate(d); err != nil {
//	    // show d as plain text
//	}
//	res, err := parse.Parse(d, doc.NewArena())
//
// # Blank Lines
//
// The run of line breaks after each section is recorded as blank comment
// elements so that saving reproduces the spacing of the file. After a block
// of data the first break terminates the last data line and is not counted;
// after a comment, or a block whose last line was its label line, every
// break is counted.
//
// # Related Packages
//
//   - github.com/signadot/tabtext/doc - document model
//   - github.com/signadot/tabtext/token - tokens and triggers
package parse
