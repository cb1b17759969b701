package tabtext

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/signadot/tabtext/doc"
)

// ErrStale is returned for a load superseded by a later Start on the same
// Loader.
var ErrStale = errors.New("stale load")

// Loader reads files in the background. Only the most recently started
// load is current; finishing an older one fails with ErrStale.
type Loader struct {
	gen atomic.Uint64
}

// Pending is a load in progress. Its buffer may only be used after Done is
// closed.
type Pending struct {
	gen  uint64
	path string
	done chan struct{}
	buf  []byte
	err  error
}

func (p *Pending) Path() string { return p.path }

// Done is closed once the file has been read or the read has failed.
func (p *Pending) Done() <-chan struct{} { return p.done }

// Start begins reading path and supersedes any earlier load.
func (l *Loader) Start(ctx context.Context, path string) *Pending {
	p := &Pending{
		gen:  l.gen.Add(1),
		path: path,
		done: make(chan struct{}),
	}
	go func() {
		defer close(p.done)
		if err := ctx.Err(); err != nil {
			p.err = err
			return
		}
		p.buf, p.err = ReadBuffer(path)
	}()
	return p
}

// Current reports whether p is the latest load started on l.
func (l *Loader) Current(p *Pending) bool {
	return l.gen.Load() == p.gen
}

// Finish waits for p and builds its document. It fails with ErrStale if a
// newer load has been started, or with ctx's error if ctx ends first.
func (l *Loader) Finish(ctx context.Context, p *Pending, r doc.Renderer, opts ...LoadOption) (*doc.Document, error) {
	select {
	case <-p.done:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	if !l.Current(p) {
		return nil, fmt.Errorf("%w: %s", ErrStale, p.path)
	}
	if p.err != nil {
		return nil, p.err
	}
	return LoadBytes(p.buf, r, opts...)
}
