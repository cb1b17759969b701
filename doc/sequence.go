package doc

import "sync/atomic"

// Sequence issues element serial numbers. Each Document owns one unless it
// is given a shared one.
type Sequence struct {
	n atomic.Uint64
}

func (s *Sequence) Next() uint64 {
	return s.n.Add(1)
}

// Last returns the most recently issued serial, 0 if none.
func (s *Sequence) Last() uint64 {
	return s.n.Load()
}
