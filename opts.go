package tabtext

import (
	"log/slog"

	"github.com/signadot/tabtext/doc"
	"github.com/signadot/tabtext/token"
)

type loadOpts struct {
	mode      doc.Mode
	logger    *slog.Logger
	seq       *doc.Sequence
	positions map[*doc.Element]*token.Pos
}

type LoadOption func(*loadOpts)

// WithMode requests a presentation mode. PlainText is always honoured;
// Structured only when the file is valid.
func WithMode(m doc.Mode) LoadOption {
	return func(o *loadOpts) { o.mode = m }
}

func WithLogger(l *slog.Logger) LoadOption {
	return func(o *loadOpts) { o.logger = l }
}

// WithSequence draws element serial numbers from seq.
func WithSequence(seq *doc.Sequence) LoadOption {
	return func(o *loadOpts) { o.seq = seq }
}

// WithPositions records element positions in m, see parse.ParsePositions.
func WithPositions(m map[*doc.Element]*token.Pos) LoadOption {
	return func(o *loadOpts) { o.positions = m }
}

func getLoadOpts(opts []LoadOption) *loadOpts {
	o := &loadOpts{mode: doc.Structured}
	for _, f := range opts {
		f(o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}
	return o
}

type saveOpts struct {
	logger *slog.Logger
	perm   uint32
}

type SaveOption func(*saveOpts)

func SaveLogger(l *slog.Logger) SaveOption {
	return func(o *saveOpts) { o.logger = l }
}

// SavePerm sets the permissions of a newly created file. Existing files
// keep theirs.
func SavePerm(perm uint32) SaveOption {
	return func(o *saveOpts) { o.perm = perm }
}
