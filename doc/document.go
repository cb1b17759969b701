package doc

import "strconv"

// Document is a loaded file.
type Document struct {
	Mode Mode

	// Valid records whether the source passed structural validation,
	// whatever mode it ended up in.
	Valid bool

	Elements []*Element

	// Text holds the whole file in PlainText mode.
	Text Handle

	// Fallback is the validation failure which forced PlainText mode on a
	// structured load, nil otherwise.
	Fallback error

	seq *Sequence
}

// New returns an empty structured document. A nil seq gives the document a
// sequence of its own.
func New(seq *Sequence) *Document {
	if seq == nil {
		seq = &Sequence{}
	}
	return &Document{seq: seq}
}

// Append assigns e the next serial number and adds it to the end of d.
func (d *Document) Append(e *Element) *Element {
	e.Serial = d.seq.Next()
	d.Elements = append(d.Elements, e)
	return e
}

// DropLast removes and returns the final element, or nil if there is none.
func (d *Document) DropLast() *Element {
	n := len(d.Elements)
	if n == 0 {
		return nil
	}
	e := d.Elements[n-1]
	d.Elements = d.Elements[:n-1]
	return e
}

// Tab is a table element with the name it is presented under.
type Tab struct {
	Name    string
	Element *Element
}

// Tabs lists the table elements of d in document order. Matrices and vector
// groups without a declared name are named by their 1-based position among
// the tables of d; a single vector is named by its label.
func (d *Document) Tabs() []Tab {
	var res []Tab
	for _, e := range d.Elements {
		if !e.Kind.IsTable() {
			continue
		}
		name := e.Name
		if name == "" {
			name = strconv.Itoa(len(res) + 1)
		}
		res = append(res, Tab{Name: name, Element: e})
	}
	return res
}

// Scalars lists the scalar and scalar group elements of d.
func (d *Document) Scalars() []*Element {
	var res []*Element
	for _, e := range d.Elements {
		if e.Kind.IsScalar() {
			res = append(res, e)
		}
	}
	return res
}

// Release hands every handle held by d back to s.
func (d *Document) Release(s Releaser) {
	for _, e := range d.Elements {
		for _, h := range e.Handles() {
			s.Release(h)
		}
	}
	if d.Mode == PlainText {
		s.Release(d.Text)
	}
}
