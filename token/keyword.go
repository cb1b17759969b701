package token

import (
	"fmt"
	"strings"
)

// Trigger identifies the kind of line introduced by its first token.
type Trigger int

const (
	NoTrigger Trigger = iota
	Scalar
	VectorsName
	Vectors
	Vector
	MatrixName
	Matrix
	Comment
)

// CommentChar starts a comment when no section trigger matches.
const CommentChar = '#'

// triggers is the dispatch table used by MatchTrigger. Matching is by prefix
// and the first hit wins, so a keyword must come before every keyword it is
// a prefix of: "#vectorsname" before "#vectors" before "#vector", and
// "#matrixname" before "#matrix". init enforces this.
var triggers = []struct {
	t  Trigger
	kw string
}{
	{Scalar, "#scalar"},
	{VectorsName, "#vectorsname"},
	{Vectors, "#vectors"},
	{Vector, "#vector"},
	{MatrixName, "#matrixname"},
	{Matrix, "#matrix"},
}

func init() {
	for i := range triggers {
		for j := i + 1; j < len(triggers); j++ {
			if strings.HasPrefix(triggers[j].kw, triggers[i].kw) {
				panic(fmt.Sprintf("trigger %q shadows %q", triggers[i].kw, triggers[j].kw))
			}
		}
	}
}

// MatchTrigger classifies the first token of a line.
func MatchTrigger(tok string) Trigger {
	for i := range triggers {
		if strings.HasPrefix(tok, triggers[i].kw) {
			return triggers[i].t
		}
	}
	if len(tok) > 0 && tok[0] == CommentChar {
		return Comment
	}
	return NoTrigger
}

// Keyword returns the literal keyword of a section trigger, or "" for
// Comment and NoTrigger.
func (t Trigger) Keyword() string {
	for i := range triggers {
		if triggers[i].t == t {
			return triggers[i].kw
		}
	}
	return ""
}

func (t Trigger) String() string {
	switch t {
	case NoTrigger:
		return "none"
	case Comment:
		return "comment"
	default:
		return t.Keyword()
	}
}

// IsNamed reports whether t introduces a tab name line which must be
// followed by the trigger returned by Names.
func (t Trigger) IsNamed() bool {
	return t == VectorsName || t == MatrixName
}

// Names returns the trigger that must follow a tab name line.
func (t Trigger) Names() Trigger {
	switch t {
	case VectorsName:
		return Vectors
	case MatrixName:
		return Matrix
	}
	return NoTrigger
}

// Triggers returns the section triggers in dispatch order.
func Triggers() []Trigger {
	res := make([]Trigger, len(triggers))
	for i := range triggers {
		res[i] = triggers[i].t
	}
	return res
}
