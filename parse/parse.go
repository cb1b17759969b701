package parse

import (
	"strings"

	"github.com/signadot/tabtext/debug"
	"github.com/signadot/tabtext/doc"
	"github.com/signadot/tabtext/token"
)

type state int

const (
	scanningLine state = iota
	inScalarBlock
	inMatrixBlock
	inVectorBlock
	inComment
	done
)

type parser struct {
	s    *token.Scanner
	r    doc.Renderer
	res  *doc.Document
	opts *parseOpts

	// the line which opened the current section
	tok  *token.Token
	trig token.Trigger
	name string
}

// Parse assembles a validated buffer into a structured document, creating
// storage for values through r. Input which Validate rejects yields an
// error wrapping doc.ErrInternal, and any storage created so far is
// released when r is a doc.Releaser.
func Parse(d []byte, r doc.Renderer, opts ...ParseOption) (*doc.Document, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	p := &parser{
		s:    token.NewScanner(normalize(d)),
		r:    r,
		res:  doc.New(pOpts.seq),
		opts: pOpts,
	}
	err := p.run()
	if err == nil {
		// the sentinel break appended by normalize always yields one
		// trailing placeholder
		last := p.res.DropLast()
		if last == nil || !last.IsBlank() {
			err = internalf(p.s.Pos(), "missing end of input placeholder")
		}
	}
	if err != nil {
		if rel, ok := r.(doc.Releaser); ok {
			p.res.Release(rel)
		}
		return nil, err
	}
	p.res.Valid = true
	return p.res, nil
}

func (p *parser) run() error {
	st := scanningLine
	for st != done {
		var (
			n   int
			err error
		)
		switch st {
		case scanningLine:
			st, err = p.scanLine()
			if err != nil {
				return err
			}
			continue
		case inScalarBlock:
			_, err = p.readScalars(p.s.RestOfLine())
			n = p.dataBlanks()
		case inMatrixBlock:
			n, err = p.readMatrix(strings.Fields(p.s.RestOfLine()))
		case inVectorBlock:
			kind := doc.VectorGroupKind
			if p.trig == token.Vector {
				kind = doc.SingleVectorKind
			}
			n, err = p.readVectorBlock(kind, strings.Fields(p.s.RestOfLine()))
		case inComment:
			p.add(doc.NewComment(p.tok.String() + p.s.RestOfLine()))
			// the comment's own break was taken with the line
			n = p.s.CountNewlines()
		}
		if err != nil {
			return err
		}
		p.appendBlanks(n)
		if debug.Parse() {
			debug.Logf("parse %s: %d elements, %d blank\n", p.trig, len(p.res.Elements), n)
		}
		st = scanningLine
	}
	return nil
}

func (p *parser) scanLine() (state, error) {
	tok := p.s.Next()
	if tok == nil {
		return done, nil
	}
	p.tok, p.name = tok, ""
	p.trig = tok.Trigger()
	switch p.trig {
	case token.Scalar:
		return inScalarBlock, nil
	case token.VectorsName, token.MatrixName:
		p.name = tabName(p.s.RestOfLine())
		want := p.trig.Names()
		next := p.s.Next()
		if p.name == "" || next == nil || next.Trigger() != want {
			return done, internalf(tok.Pos, "%s not followed by %s", p.trig, want)
		}
		p.trig = want
		if want == token.Vectors {
			return inVectorBlock, nil
		}
		return inMatrixBlock, nil
	case token.Vectors, token.Vector:
		return inVectorBlock, nil
	case token.Matrix:
		return inMatrixBlock, nil
	case token.Comment:
		return inComment, nil
	}
	return done, internalf(tok.Pos, "line outside any section")
}
