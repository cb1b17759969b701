package parse

import (
	"errors"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		err  error
	}{
		{"scalar", "#scalar A\n1\n", nil},
		{"scalar group", "#scalar A B\n1 2\n", nil},
		{"matrix", "#matrix A B\n1 2\n3 4\n", nil},
		{"matrix no rows", "#matrix A B\n", nil},
		{"matrix rows across lines", "#matrix A B\n1\n2 3 4\n", nil},
		{"vectors", "#vectors A B\n1 2 3 4\n", nil},
		{"vector", "#vector v\n1 2 3\n", nil},
		{"named matrix", "#matrixname speeds\n#matrix A\n1\n", nil},
		{"named vectors", "#vectorsname My Tab\n#vectors A\n1\n", nil},
		{"comments around", "# head\n#scalar A\n1\n# tail\n", nil},
		{"no trailing newline", "#scalar A\n1", nil},
		{"crlf", "#scalar A\r\n1\r\n", nil},
		{"signed and exponent", "#vector v\n-1 +2 .5 5. 1e3\n", nil},
		{"empty", "", ErrNoSections},
		{"only comments", "# a\n# b\n", ErrNoSections},
		{"unknown line", "#scalar A\n1\nhello\n", ErrUnmarked},
		{"leading number", "1 2\n#scalar A\n1\n", ErrUnmarked},
		{"indivisible vectors", "#vectors A B\n1 2 3\n", ErrNotDivisible},
		{"vectors without data", "#vectors A B\n", ErrNoData},
		{"vectors without labels", "#vectors\n1 2\n", ErrNoLabels},
		{"vector with two labels", "#vector a b\n1 2\n", ErrVectorLabels},
		{"incomplete row", "#matrix A B\n1 2\n3\n", ErrIncompleteRow},
		{"incomplete row before section", "#matrix A B\n1\n#scalar C\n1\n", ErrIncompleteRow},
		{"matrix no labels", "#matrix\n", ErrNoLabels},
		{"scalar short", "#scalar A B\n1\n", ErrTooFewValues},
		{"scalar not number", "#scalar A\nx\n", ErrTooFewValues},
		{"scalar inf", "#scalar A\ninf\n", ErrTooFewValues},
		{"scalar overflow", "#scalar A\n1e400\n", ErrTooFewValues},
		{"matrix overflow", "#matrix A B\n1 1e400\n", ErrIncompleteRow},
		{"empty tab name", "#matrixname  \n#matrix A\n1\n", ErrTabName},
		{"name without block", "#matrixname m\n#scalar A\n1\n", ErrNameNoBlock},
		{"name wrong block", "#vectorsname v\n#matrix A\n1\n", ErrNameNoBlock},
		{"name at end", "#matrixname m\n", ErrNameNoBlock},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate([]byte(tt.in))
			if tt.err == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.err) {
				t.Fatalf("got %v, want %v", err, tt.err)
			}
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("%v does not wrap ErrInvalid", err)
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Errorf("%T is not a *ValidationError", err)
			}
		})
	}
}

func TestValidationErrorLine(t *testing.T) {
	err := Validate([]byte("#scalar A\n1\n\nbad line\n"))
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("got %v", err)
	}
	if verr.Line() != 3 {
		t.Errorf("line = %d, want 3", verr.Line())
	}
}

func TestIsValid(t *testing.T) {
	if !IsValid([]byte("#scalar A\n1\n")) {
		t.Errorf("valid file rejected")
	}
	if IsValid([]byte("#vectors A B\n1 2 3\n")) {
		t.Errorf("invalid file accepted")
	}
}
