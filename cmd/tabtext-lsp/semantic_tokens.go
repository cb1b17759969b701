package main

import (
	"context"
	"strings"

	"github.com/signadot/tabtext/token"
	"go.lsp.dev/protocol"
)

type tokenInfo struct {
	line      uint32
	character uint32
	length    uint32
	tokenType protocol.SemanticTokenTypes
	modifiers []protocol.SemanticTokenModifiers
}

func classTokenType(c token.Class) protocol.SemanticTokenTypes {
	switch c {
	case token.ClassKeyword:
		return protocol.SemanticTokenKeyword
	case token.ClassLabel:
		return protocol.SemanticTokenProperty
	case token.ClassInteger, token.ClassFloat:
		return protocol.SemanticTokenNumber
	case token.ClassComment:
		return protocol.SemanticTokenComment
	default:
		return protocol.SemanticTokenString
	}
}

// lineTokens classifies one line. The name on a tab name line is marked as
// a definition.
func lineTokens(n int, line string) []tokenInfo {
	spans := token.Spans([]byte(line))
	named := len(spans) > 0 && spans[0].Class == token.ClassKeyword &&
		token.MatchTrigger(line[spans[0].Start:spans[0].End]).IsNamed()
	res := make([]tokenInfo, 0, len(spans))
	for _, sp := range spans {
		start := utf16Col(line, sp.Start)
		ti := tokenInfo{
			line:      uint32(n),
			character: uint32(start),
			length:    uint32(utf16Col(line, sp.End) - start),
			tokenType: classTokenType(sp.Class),
		}
		if named && sp.Class == token.ClassLabel {
			ti.modifiers = []protocol.SemanticTokenModifiers{protocol.SemanticTokenModifierDefinition}
		}
		res = append(res, ti)
	}
	return res
}

// collectSemanticTokens returns the LSP relative encoding of the tokens on
// lines [from, to) of content.
func collectSemanticTokens(content string, from, to int) []uint32 {
	typeMap := make(map[protocol.SemanticTokenTypes]uint32)
	for i, tt := range tokenTypes {
		typeMap[tt] = uint32(i)
	}
	modifierMap := make(map[protocol.SemanticTokenModifiers]uint32)
	for i, tm := range tokenModifiers {
		modifierMap[tm] = uint32(i)
	}

	tokens := []uint32{}
	var prevLine, prevChar uint32
	for n, line := range strings.Split(content, "\n") {
		if n < from {
			continue
		}
		if n >= to {
			break
		}
		line = strings.TrimSuffix(line, "\r")
		for _, ti := range lineTokens(n, line) {
			deltaLine := ti.line - prevLine
			deltaChar := ti.character
			if deltaLine == 0 {
				deltaChar = ti.character - prevChar
			}
			var bits uint32
			for _, mod := range ti.modifiers {
				if idx, ok := modifierMap[mod]; ok {
					bits |= 1 << idx
				}
			}
			tokens = append(tokens, deltaLine, deltaChar, ti.length, typeMap[ti.tokenType], bits)
			prevLine, prevChar = ti.line, ti.character
		}
	}
	return tokens
}

func (s *Server) SemanticTokensFull(ctx context.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	d := s.docs.get(string(params.TextDocument.URI))
	if d == nil {
		return &protocol.SemanticTokens{Data: []uint32{}}, nil
	}
	return &protocol.SemanticTokens{
		Data: collectSemanticTokens(d.content, 0, lineCount(d.content)+1),
	}, nil
}

func (s *Server) SemanticTokensRange(ctx context.Context, params *protocol.SemanticTokensRangeParams) (*protocol.SemanticTokens, error) {
	d := s.docs.get(string(params.TextDocument.URI))
	if d == nil {
		return &protocol.SemanticTokens{Data: []uint32{}}, nil
	}
	r := params.Range
	return &protocol.SemanticTokens{
		Data: collectSemanticTokens(d.content, int(r.Start.Line), int(r.End.Line)+1),
	}, nil
}
