package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/signadot/tabtext/doc"
	"go.lsp.dev/protocol"
)

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	d := s.docs.get(string(params.TextDocument.URI))
	if d == nil || d.doc == nil {
		return nil, nil
	}
	e := d.elementAt(int(params.Position.Line))
	if e == nil {
		return nil, nil
	}
	hoverText := buildHoverText(d, e)
	if hoverText == "" {
		return nil, nil
	}
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: hoverText,
		},
	}, nil
}

// elementAt finds the element whose lines include line: the last element
// starting at or before it. Blank lines belong to no element.
func (d *document) elementAt(line int) *doc.Element {
	if strings.TrimSpace(lineAt(d.content, line)) == "" {
		return nil
	}
	var (
		best     *doc.Element
		bestLine = -1
	)
	for _, e := range d.doc.Elements {
		pos := d.positions[e]
		if pos == nil {
			continue
		}
		l := pos.Line()
		if l <= line && l > bestLine {
			best, bestLine = e, l
		}
	}
	return best
}

func buildHoverText(d *document, e *doc.Element) string {
	var sb strings.Builder
	switch {
	case e.Kind.IsScalar():
		fmt.Fprintf(&sb, "**%s** (%d labels)\n\n", e.Kind, len(e.Fields))
		for _, h := range e.Fields {
			f, ok := d.arena.Field(h)
			if !ok {
				continue
			}
			fmt.Fprintf(&sb, "- `%s` = %s\n", f.Label, f.Value)
		}
	case e.Kind.IsTable():
		t, ok := d.arena.Table(e.Table)
		if !ok {
			return ""
		}
		fmt.Fprintf(&sb, "**%s** `%s`\n\n", e.Kind, tabName(d.doc, e))
		rows, cols := t.Dims()
		fmt.Fprintf(&sb, "%d rows x %d columns\n\n", rows, cols)
		labels := t.Columns
		if e.Kind != doc.MatrixKind {
			labels = t.Rows
		}
		fmt.Fprintf(&sb, "labels: %s\n", strings.Join(labels, ", "))
	}
	return sb.String()
}

// tabName is the name e answers to in expressions.
func tabName(d *doc.Document, e *doc.Element) string {
	for _, t := range d.Tabs() {
		if t.Element == e {
			return t.Name
		}
	}
	return e.Name
}
