package doc

import "errors"

var (
	// ErrInternal marks a failed consistency check between validation and
	// assembly. Nothing about the document can be trusted after it.
	ErrInternal = errors.New("internal error")

	ErrIO        = errors.New("i/o error")
	ErrNoStorage = errors.New("no such storage")
	ErrNotNumber = errors.New("not a number")
	ErrRange     = errors.New("index out of range")
)
