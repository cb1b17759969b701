package parse

import (
	"errors"
	"fmt"

	"github.com/signadot/tabtext/doc"
	"github.com/signadot/tabtext/token"
)

var (
	errInternal = fmt.Errorf("%w: validated input did not assemble", doc.ErrInternal)

	ErrInvalid       = errors.New("structurally invalid")
	ErrUnmarked      = fmt.Errorf("%w: line outside any section", ErrInvalid)
	ErrNoLabels      = fmt.Errorf("%w: no labels", ErrInvalid)
	ErrTooFewValues  = fmt.Errorf("%w: too few values", ErrInvalid)
	ErrIncompleteRow = fmt.Errorf("%w: incomplete row", ErrInvalid)
	ErrNotDivisible  = fmt.Errorf("%w: value count not a multiple of label count", ErrInvalid)
	ErrNoData        = fmt.Errorf("%w: no values", ErrInvalid)
	ErrVectorLabels  = fmt.Errorf("%w: #vector takes exactly one label", ErrInvalid)
	ErrTabName       = fmt.Errorf("%w: empty tab name", ErrInvalid)
	ErrNameNoBlock   = fmt.Errorf("%w: tab name not followed by its block", ErrInvalid)
	ErrNoSections    = fmt.Errorf("%w: no sections", ErrInvalid)
)

// ValidationError is a validation failure with the position of the
// offending token. Pos is nil when the failure is not tied to a token.
type ValidationError struct {
	Err error
	Pos *token.Pos
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func (e *ValidationError) Error() string {
	if e.Pos == nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

// Line returns the 0-based line of the failure, or -1.
func (e *ValidationError) Line() int {
	if e.Pos == nil {
		return -1
	}
	return e.Pos.Line()
}

func invalid(err error, p *token.Pos) error {
	return &ValidationError{Err: err, Pos: p}
}

func internalf(p *token.Pos, format string, args ...any) error {
	return fmt.Errorf("%w: %s at %s", errInternal, fmt.Sprintf(format, args...), p)
}
