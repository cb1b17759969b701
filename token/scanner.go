package token

// Scanner walks a document buffer a token or a line at a time. It keeps no
// state besides its offset, so Peek is free to rescan.
type Scanner struct {
	d   []byte
	i   int
	doc *PosDoc
}

func NewScanner(d []byte) *Scanner {
	return &Scanner{d: d, doc: NewPosDoc(d)}
}

// Offset returns the current byte offset.
func (s *Scanner) Offset() int { return s.i }

// Pos returns the position of the current offset.
func (s *Scanner) Pos() *Pos { return s.doc.Pos(s.i) }

// PosDoc returns the position index over the scanned buffer.
func (s *Scanner) PosDoc() *PosDoc { return s.doc }

// EOF reports whether only whitespace remains.
func (s *Scanner) EOF() bool {
	return s.skip(s.i) == len(s.d)
}

// Peek returns the next token without consuming it, or nil at the end of
// input.
func (s *Scanner) Peek() *Token {
	tok, _ := s.scan()
	return tok
}

// Next consumes and returns the next token, skipping any whitespace
// including line breaks. It returns nil at the end of input.
func (s *Scanner) Next() *Token {
	tok, end := s.scan()
	if tok != nil {
		s.i = end
	}
	return tok
}

func (s *Scanner) scan() (*Token, int) {
	start := s.skip(s.i)
	if start == len(s.d) {
		return nil, start
	}
	end := start
	for end < len(s.d) && !isSpace(s.d[end]) {
		end++
	}
	return &Token{Bytes: s.d[start:end], Pos: s.doc.Pos(start)}, end
}

func (s *Scanner) skip(i int) int {
	for i < len(s.d) && isSpace(s.d[i]) {
		i++
	}
	return i
}

// RestOfLine consumes everything up to and including the next line break
// and returns it without the break. A carriage return before the break is
// dropped.
func (s *Scanner) RestOfLine() string {
	start := s.i
	for s.i < len(s.d) && s.d[s.i] != '\n' {
		s.i++
	}
	end := s.i
	if s.i < len(s.d) {
		s.i++
	}
	if end > start && s.d[end-1] == '\r' {
		end--
	}
	return string(s.d[start:end])
}

// CountNewlines consumes the run of line breaks at the current offset and
// returns its length. Spaces, tabs and carriage returns ahead of a break
// belong to the run, so "\r\n" and whitespace only lines count once each.
// Horizontal whitespace not followed by a break is left in place.
func (s *Scanner) CountNewlines() int {
	n := 0
	for {
		j := s.i
		for j < len(s.d) && (s.d[j] == ' ' || s.d[j] == '\t' || s.d[j] == '\r') {
			j++
		}
		if j == len(s.d) || s.d[j] != '\n' {
			return n
		}
		s.i = j + 1
		n++
	}
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
