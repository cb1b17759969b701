package parse

import (
	"strings"

	"github.com/signadot/tabtext/debug"
	"github.com/signadot/tabtext/token"
)

// Validate checks that d is a structurally valid tabtext file without
// building anything. It returns nil or a *ValidationError.
//
// A valid file has at least one section. Every line belongs to a comment or
// to a section: a trigger line followed by data whose shape matches the
// trigger's labels.
func Validate(d []byte) error {
	v := &validator{s: token.NewScanner(normalize(d))}
	err := v.run()
	if debug.Validate() {
		debug.Logf("validate %d bytes: sections=%d err=%v\n", len(d), v.sections, err)
	}
	return err
}

// IsValid reports whether Validate accepts d.
func IsValid(d []byte) bool {
	return Validate(d) == nil
}

type validator struct {
	s        *token.Scanner
	sections int
}

func (v *validator) run() error {
	for {
		tok := v.s.Next()
		if tok == nil {
			break
		}
		var err error
		switch trig := tok.Trigger(); trig {
		case token.Comment:
			v.s.RestOfLine()
			continue
		case token.NoTrigger:
			return invalid(ErrUnmarked, tok.Pos)
		case token.VectorsName, token.MatrixName:
			err = v.named(tok, trig)
		default:
			err = v.section(tok, trig)
		}
		if err != nil {
			return err
		}
		v.sections++
	}
	if v.sections == 0 {
		return invalid(ErrNoSections, nil)
	}
	return nil
}

func (v *validator) named(tok *token.Token, trig token.Trigger) error {
	if tabName(v.s.RestOfLine()) == "" {
		return invalid(ErrTabName, tok.Pos)
	}
	next := v.s.Next()
	if next == nil {
		return invalid(ErrNameNoBlock, v.s.Pos())
	}
	if next.Trigger() != trig.Names() {
		return invalid(ErrNameNoBlock, next.Pos)
	}
	return v.section(next, trig.Names())
}

func (v *validator) section(tok *token.Token, trig token.Trigger) error {
	labels := strings.Fields(v.s.RestOfLine())
	if len(labels) == 0 {
		return invalid(ErrNoLabels, tok.Pos)
	}
	switch trig {
	case token.Scalar:
		return v.checkScalars(len(labels))
	case token.Matrix:
		return v.checkTable(len(labels))
	case token.Vector:
		if len(labels) != 1 {
			return invalid(ErrVectorLabels, tok.Pos)
		}
		return v.checkVector(tok, 1)
	case token.Vectors:
		return v.checkVector(tok, len(labels))
	}
	return invalid(ErrUnmarked, tok.Pos)
}

// checkScalars expects one number per label.
func (v *validator) checkScalars(n int) error {
	for range n {
		tok := v.s.Next()
		if tok == nil {
			return invalid(ErrTooFewValues, v.s.Pos())
		}
		if !tok.IsNumber() {
			return invalid(ErrTooFewValues, tok.Pos)
		}
	}
	return nil
}

// checkTable expects any number of complete rows of ncol numbers. Rows go
// on as long as the next token is a number.
func (v *validator) checkTable(ncol int) error {
	for {
		tok := v.s.Peek()
		if tok == nil || !tok.IsNumber() {
			return nil
		}
		for range ncol {
			tok := v.s.Next()
			if tok == nil {
				return invalid(ErrIncompleteRow, v.s.Pos())
			}
			if !tok.IsNumber() {
				return invalid(ErrIncompleteRow, tok.Pos)
			}
		}
	}
}

// checkVector expects a positive multiple of n numbers.
func (v *validator) checkVector(trig *token.Token, n int) error {
	count := 0
	for {
		tok := v.s.Peek()
		if tok == nil || !tok.IsNumber() {
			break
		}
		v.s.Next()
		count++
	}
	if count == 0 {
		return invalid(ErrNoData, trig.Pos)
	}
	if count%n != 0 {
		return invalid(ErrNotDivisible, v.s.Pos())
	}
	return nil
}

func tabName(rest string) string {
	return strings.TrimSpace(rest)
}

// normalize returns a copy of d which ends in a line break followed by one
// extra sentinel break.
func normalize(d []byte) []byte {
	res := make([]byte, len(d), len(d)+2)
	copy(res, d)
	if len(res) == 0 || res[len(res)-1] != '\n' {
		res = append(res, '\n')
	}
	return append(res, '\n')
}
