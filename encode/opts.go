package encode

type EncodeOption func(*EncState)

// EncodeColors highlights the output with c.
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.colors = c }
}

// EncodeBlanks controls whether blank line placeholders are written. It is
// on by default.
func EncodeBlanks(v bool) EncodeOption {
	return func(es *EncState) { es.noBlanks = !v }
}
