package token

import "fmt"

// Token is a whitespace delimited run of bytes in a document.
type Token struct {
	Bytes []byte
	Pos   *Pos
}

func (t *Token) String() string {
	return string(t.Bytes)
}

// Trigger classifies the token as the first token of a line.
func (t *Token) Trigger() Trigger {
	return MatchTrigger(string(t.Bytes))
}

// IsNumber reports whether the token is a numeric datum.
func (t *Token) IsNumber() bool {
	n, err := number(t.Bytes)
	return err == nil && n == len(t.Bytes)
}

func (t *Token) Info() string {
	return fmt.Sprintf("`%s` %s", t.Bytes, t.Pos)
}
