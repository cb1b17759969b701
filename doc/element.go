package doc

// Element is one top level entry of a structured document.
type Element struct {
	// Serial is assigned when the element is appended to a Document and
	// increases with document order.
	Serial uint64
	Kind   Kind

	// Text is the raw comment line of a CommentKind. Empty means the
	// element stands for a blank line.
	Text string

	// Name is the tab name of a MatrixKind or VectorGroupKind, empty when
	// none was declared, and the label of a SingleVectorKind.
	Name string

	Fields []Handle
	Table  Handle
}

func NewComment(text string) *Element {
	return &Element{Kind: CommentKind, Text: text}
}

// NewBlank returns a placeholder for one blank line.
func NewBlank() *Element {
	return &Element{Kind: CommentKind}
}

// NewScalars returns a ScalarKind element for one field and a
// ScalarGroupKind element for more.
func NewScalars(fields ...Handle) *Element {
	k := ScalarKind
	if len(fields) > 1 {
		k = ScalarGroupKind
	}
	return &Element{Kind: k, Fields: fields}
}

func NewTable(k Kind, name string, h Handle) *Element {
	return &Element{Kind: k, Name: name, Table: h}
}

func (e *Element) IsBlank() bool {
	return e.Kind == CommentKind && e.Text == ""
}

// IsComment reports whether e is a comment which is not a blank line.
func (e *Element) IsComment() bool {
	return e.Kind == CommentKind && e.Text != ""
}

// Handles returns every storage handle held by e.
func (e *Element) Handles() []Handle {
	switch {
	case e.Kind.IsScalar():
		return e.Fields
	case e.Kind.IsTable():
		return []Handle{e.Table}
	}
	return nil
}
