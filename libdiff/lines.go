package libdiff

import (
	"io"
	"strings"

	"github.com/fatih/color"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	Equal Op = iota
	Insert
	Delete
)

func (o Op) Prefix() string {
	switch o {
	case Insert:
		return "+"
	case Delete:
		return "-"
	default:
		return " "
	}
}

// Line is one line of a diff, without its line break.
type Line struct {
	Op   Op
	Text string
}

// Lines diffs from and to line by line.
func Lines(from, to string) []Line {
	diffCfg := diffpatch.New()
	a, b, lines := diffCfg.DiffLinesToChars(from, to)
	diffs := diffCfg.DiffMain(a, b, false)
	diffs = diffCfg.DiffCharsToLines(diffs, lines)
	var res []Line
	for i := range diffs {
		diff := &diffs[i]
		op := Equal
		switch diff.Type {
		case diffpatch.DiffInsert:
			op = Insert
		case diffpatch.DiffDelete:
			op = Delete
		}
		for ln := range strings.Lines(diff.Text) {
			res = append(res, Line{Op: op, Text: strings.TrimSuffix(ln, "\n")})
		}
	}
	return res
}

// Changed reports whether any line was inserted or deleted.
func Changed(ls []Line) bool {
	for i := range ls {
		if ls[i].Op != Equal {
			return true
		}
	}
	return false
}

// Write prints ls with a one character prefix per line, coloring inserts
// and deletes when colors is set.
func Write(w io.Writer, ls []Line, colors bool) error {
	ins := color.New(color.FgGreen).SprintFunc()
	del := color.New(color.FgRed).SprintFunc()
	for _, l := range ls {
		s := l.Op.Prefix() + l.Text
		if colors {
			switch l.Op {
			case Insert:
				s = ins(s)
			case Delete:
				s = del(s)
			}
		}
		if _, err := io.WriteString(w, s+"\n"); err != nil {
			return err
		}
	}
	return nil
}
