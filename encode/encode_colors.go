package encode

import (
	"strings"

	"github.com/fatih/color"
	"github.com/signadot/tabtext/token"
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[token.Class]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map: map[token.Class]func(string, ...any) string{
			token.ClassKeyword: color.BlueString,
			token.ClassLabel:   color.RGB(196, 96, 16).SprintfFunc(),
			token.ClassInteger: color.New(color.FgRed).SprintfFunc(),
			token.ClassFloat:   color.New(color.FgHiRed).SprintfFunc(),
			token.ClassComment: color.RGB(96, 96, 96).SprintfFunc(),
		},
	}
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(cl token.Class, s string) string {
	return c.Get(cl)(s)
}

func (c *Colors) Get(cl token.Class) func(string, ...any) string {
	f := c.Map[cl]
	if f == nil {
		return c.Default
	}
	return f
}

// Highlight colors text line by line. Whitespace and line breaks are kept
// as they are.
func Highlight(text string, c *Colors) string {
	b := strings.Builder{}
	for ln := range strings.Lines(text) {
		body := strings.TrimSuffix(ln, "\n")
		at := 0
		for _, sp := range token.Spans([]byte(body)) {
			b.WriteString(body[at:sp.Start])
			b.WriteString(c.Color(sp.Class, body[sp.Start:sp.End]))
			at = sp.End
		}
		b.WriteString(ln[at:])
	}
	return b.String()
}
