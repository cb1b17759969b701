package parse

import (
	"github.com/signadot/tabtext/doc"
	"github.com/signadot/tabtext/token"
)

type parseOpts struct {
	seq       *doc.Sequence
	positions map[*doc.Element]*token.Pos
}

type ParseOption func(*parseOpts)

// ParseSequence issues serial numbers from seq instead of a sequence
// private to the document.
func ParseSequence(seq *doc.Sequence) ParseOption {
	return func(o *parseOpts) { o.seq = seq }
}

// ParsePositions records in m the position of the first token of every
// element other than blank line placeholders.
func ParsePositions(m map[*doc.Element]*token.Pos) ParseOption {
	return func(o *parseOpts) {
		o.positions = m
	}
}
