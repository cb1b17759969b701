package main

import (
	"bytes"
	"context"

	"github.com/signadot/tabtext/encode"
	"go.lsp.dev/protocol"
)

func (s *Server) Formatting(ctx context.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	d := s.docs.get(string(params.TextDocument.URI))
	if d == nil {
		return nil, nil
	}
	return formatEdits(d), nil
}

// formatEdits returns a single edit replacing the whole document with its
// canonical form. Invalid documents are left alone.
func formatEdits(d *document) []protocol.TextEdit {
	if d.doc == nil {
		return nil
	}
	var buf bytes.Buffer
	if err := encode.Encode(d.doc, d.arena, &buf); err != nil {
		return nil
	}
	formatted := buf.String()
	if formatted == d.content {
		return []protocol.TextEdit{}
	}
	return []protocol.TextEdit{
		{
			Range: protocol.Range{
				Start: protocol.Position{Line: 0, Character: 0},
				End: protocol.Position{
					Line:      uint32(lineCount(d.content)),
					Character: 0,
				},
			},
			NewText: formatted,
		},
	}
}
