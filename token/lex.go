package token

// Class is the lexical class of a span of a line, used for highlighting.
type Class int

const (
	ClassText Class = iota
	ClassKeyword
	ClassLabel
	ClassInteger
	ClassFloat
	ClassComment
)

func (c Class) String() string {
	switch c {
	case ClassKeyword:
		return "keyword"
	case ClassLabel:
		return "label"
	case ClassInteger:
		return "integer"
	case ClassFloat:
		return "float"
	case ClassComment:
		return "comment"
	default:
		return "text"
	}
}

// Span is a half open byte range [Start, End) of a line.
type Span struct {
	Start, End int
	Class      Class
}

// Spans classifies the whitespace delimited tokens of a single line. The
// first token of a section line is a keyword and the rest are labels; a
// comment line is one span; any other token is a number or plain text.
// Whitespace is not covered by any span.
func Spans(line []byte) []Span {
	var res []Span
	first := true
	i := 0
	for {
		for i < len(line) && isSpace(line[i]) {
			i++
		}
		if i == len(line) {
			return res
		}
		j := i
		for j < len(line) && !isSpace(line[j]) {
			j++
		}
		tok := line[i:j]
		if first {
			first = false
			switch t := MatchTrigger(string(tok)); t {
			case NoTrigger:
			case Comment:
				end := len(line)
				for end > i && isSpace(line[end-1]) {
					end--
				}
				return append(res, Span{Start: i, End: end, Class: ClassComment})
			default:
				kw := len(t.Keyword())
				res = append(res, Span{Start: i, End: i + kw, Class: ClassKeyword})
				if i+kw < j {
					res = append(res, Span{Start: i + kw, End: j, Class: ClassLabel})
				}
				res = labels(res, line, j)
				return res
			}
		}
		res = append(res, Span{Start: i, End: j, Class: classify(tok)})
		i = j
	}
}

func labels(res []Span, line []byte, i int) []Span {
	for {
		for i < len(line) && isSpace(line[i]) {
			i++
		}
		if i == len(line) {
			return res
		}
		j := i
		for j < len(line) && !isSpace(line[j]) {
			j++
		}
		res = append(res, Span{Start: i, End: j, Class: ClassLabel})
		i = j
	}
}

func classify(tok []byte) Class {
	s := string(tok)
	switch {
	case IsInteger(s):
		return ClassInteger
	case IsNumber(s):
		return ClassFloat
	}
	return ClassText
}
