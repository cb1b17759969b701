package encode

import (
	"bytes"

	"github.com/signadot/tabtext/doc"
)

func MustString(d *doc.Document, r doc.ValueReader) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(d, r, buf); err != nil {
		panic(err)
	}
	return buf.String()
}

// ElementString returns the canonical text of e, or "" if its storage is
// missing.
func ElementString(e *doc.Element, r doc.ValueReader) string {
	buf := bytes.NewBuffer(nil)
	if err := EncodeElement(e, r, buf); err != nil {
		return ""
	}
	return buf.String()
}
