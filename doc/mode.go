package doc

import (
	"errors"
	"fmt"
)

// Mode is how a document is presented and saved.
type Mode int

const (
	Structured Mode = iota
	PlainText
)

var ErrBadMode = errors.New("bad mode")

func ParseMode(v string) (Mode, error) {
	m, ok := map[string]Mode{
		"s":          Structured,
		"structured": Structured,
		"p":          PlainText,
		"plain":      PlainText,
		"text":       PlainText,
	}[v]
	if ok {
		return m, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadMode, v)
}

func (m Mode) String() string {
	d, err := m.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (m Mode) MarshalText() ([]byte, error) {
	switch m {
	case Structured:
		return []byte("structured"), nil
	case PlainText:
		return []byte("plain"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a mode>", m)
	}
}

func (m *Mode) UnmarshalText(d []byte) error {
	pm, err := ParseMode(string(d))
	if err != nil {
		return err
	}
	*m = pm
	return nil
}
