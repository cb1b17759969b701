package doc

import "fmt"

type Kind int

const (
	CommentKind Kind = iota
	ScalarKind
	ScalarGroupKind
	MatrixKind
	VectorGroupKind
	SingleVectorKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		CommentKind:      "comment",
		ScalarKind:       "scalar",
		ScalarGroupKind:  "scalars",
		MatrixKind:       "matrix",
		VectorGroupKind:  "vectors",
		SingleVectorKind: "vector",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"comment": CommentKind,
		"scalar":  ScalarKind,
		"scalars": ScalarGroupKind,
		"matrix":  MatrixKind,
		"vectors": VectorGroupKind,
		"vector":  SingleVectorKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{
		CommentKind,
		ScalarKind,
		ScalarGroupKind,
		MatrixKind,
		VectorGroupKind,
		SingleVectorKind,
	}
}

// IsTable reports whether elements of kind k hold a table handle.
func (k Kind) IsTable() bool {
	switch k {
	case MatrixKind, VectorGroupKind, SingleVectorKind:
		return true
	default:
		return false
	}
}

// IsScalar reports whether elements of kind k hold field handles.
func (k Kind) IsScalar() bool {
	return k == ScalarKind || k == ScalarGroupKind
}
