package main

import (
	"context"
	"errors"
	"sync"

	"github.com/signadot/tabtext/doc"
	"github.com/signadot/tabtext/parse"
	"github.com/signadot/tabtext/token"
	"go.lsp.dev/protocol"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

type document struct {
	uri     string
	content string
	version int32

	// doc is nil when content is not structurally valid; err then holds
	// the validation failure.
	doc       *doc.Document
	arena     *doc.Arena
	positions map[*doc.Element]*token.Pos
	err       error
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri string, content string, version int32) *document {
	d := &document{
		uri:       uri,
		content:   content,
		version:   version,
		arena:     doc.NewArena(),
		positions: make(map[*doc.Element]*token.Pos),
	}
	buf := []byte(content)
	d.err = parse.Validate(buf)
	if d.err == nil {
		d.doc, d.err = parse.Parse(buf, d.arena, parse.ParsePositions(d.positions))
	}
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.docs[uri] = d
	return d
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

func (s *Server) publishDiagnostics(ctx context.Context, uri string) {
	d := s.docs.get(uri)
	if d == nil || s.conn == nil {
		return
	}
	err := s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         protocol.DocumentURI(uri),
		Diagnostics: diagnose(d),
	})
	if err != nil {
		s.log.Error("publish diagnostics", "uri", uri, "error", err)
	}
}

// diagnose reports the first validation failure of d, if any.
func diagnose(d *document) []protocol.Diagnostic {
	res := []protocol.Diagnostic{}
	if d.err == nil {
		return res
	}
	diag := protocol.Diagnostic{
		Severity: protocol.DiagnosticSeverityError,
		Message:  d.err.Error(),
		Source:   "tabtext",
	}
	var verr *parse.ValidationError
	if errors.As(d.err, &verr) {
		diag.Message = verr.Err.Error()
		if verr.Pos != nil {
			line, col := verr.Pos.LineCol()
			text := lineAt(d.content, line)
			diag.Range = protocol.Range{
				Start: protocol.Position{Line: uint32(line), Character: uint32(utf16Col(text, col))},
				End:   protocol.Position{Line: uint32(line), Character: uint32(utf16Col(text, tokenEnd(text, col)))},
			}
		}
	}
	return append(res, diag)
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.docs.put(string(params.TextDocument.URI), params.TextDocument.Text, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

// DidChange handles full document sync: the last change carries the whole
// text.
func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	if s.docs.get(uri) == nil || len(params.ContentChanges) == 0 {
		return nil
	}
	content := params.ContentChanges[len(params.ContentChanges)-1].Text
	s.docs.put(uri, content, params.TextDocument.Version)
	s.publishDiagnostics(ctx, uri)
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(string(params.TextDocument.URI))
	return nil
}
