package main

import (
	"context"
	"strings"

	"github.com/signadot/tabtext/token"
	"go.lsp.dev/protocol"
)

func (s *Server) Completion(ctx context.Context, params *protocol.CompletionParams) (*protocol.CompletionList, error) {
	d := s.docs.get(string(params.TextDocument.URI))
	if d == nil {
		return nil, nil
	}
	pos := params.Position
	line := lineAt(d.content, int(pos.Line))
	prefix := line[:byteCol(line, int(pos.Character))]
	return &protocol.CompletionList{
		Items: completeTrigger(prefix, pos),
	}, nil
}

// completeTrigger offers the section keywords when the text before the
// cursor is the start of the first token of the line.
func completeTrigger(prefix string, pos protocol.Position) []protocol.CompletionItem {
	completions := []protocol.CompletionItem{}
	typed := strings.TrimLeft(prefix, " \t")
	if strings.ContainsAny(typed, " \t") {
		return completions
	}
	start := pos
	start.Character -= uint32(utf16Len(typed))
	for _, t := range token.Triggers() {
		kw := t.Keyword()
		if !strings.HasPrefix(kw, typed) {
			continue
		}
		completions = append(completions, protocol.CompletionItem{
			Label:  kw,
			Kind:   protocol.CompletionItemKindKeyword,
			Detail: triggerDetail(t),
			TextEdit: &protocol.TextEdit{
				Range:   protocol.Range{Start: start, End: pos},
				NewText: kw + " ",
			},
		})
	}
	return completions
}

func triggerDetail(t token.Trigger) string {
	switch t {
	case token.Scalar:
		return "labels, then one value per label"
	case token.VectorsName, token.MatrixName:
		return "tab name for the following " + t.Names().Keyword()
	case token.Vectors:
		return "row labels, then values row by row"
	case token.Vector:
		return "one label, then values"
	case token.Matrix:
		return "column labels, then full rows of values"
	}
	return ""
}
