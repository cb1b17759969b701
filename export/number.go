package export

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/signadot/tabtext/token"
)

// Number is the text of a numeric value.
type Number string

// JSON returns n in JSON number syntax. Forms such as "+1", ".5" and "5."
// are rewritten; anything else is kept as written.
func (n Number) JSON() string {
	if json.Valid([]byte(n)) {
		return string(n)
	}
	f, err := strconv.ParseFloat(string(n), 64)
	if err != nil {
		return string(n)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func (n Number) MarshalJSON() ([]byte, error) {
	if !token.IsNumber(string(n)) {
		return nil, fmt.Errorf("%w: %q", ErrNotNumber, string(n))
	}
	return []byte(n.JSON()), nil
}

// UnmarshalJSON accepts a JSON number or a string holding one.
func (n *Number) UnmarshalJSON(d []byte) error {
	s := string(d)
	if len(d) > 0 && d[0] == '"' {
		if err := json.Unmarshal(d, &s); err != nil {
			return err
		}
	}
	if !token.IsNumber(s) {
		return fmt.Errorf("%w: %s", ErrNotNumber, d)
	}
	*n = Number(s)
	return nil
}

func (n Number) MarshalYAML() (any, error) {
	s := string(n)
	if token.IsInteger(s) {
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return i, nil
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrNotNumber, s)
	}
	return f, nil
}

func (n *Number) UnmarshalYAML(unmarshal func(any) error) error {
	var v any
	if err := unmarshal(&v); err != nil {
		return err
	}
	var s string
	switch x := v.(type) {
	case int:
		s = strconv.Itoa(x)
	case int64:
		s = strconv.FormatInt(x, 10)
	case uint64:
		s = strconv.FormatUint(x, 10)
	case float64:
		s = strconv.FormatFloat(x, 'g', -1, 64)
	case string:
		s = x
	default:
		return fmt.Errorf("%w: %v", ErrNotNumber, v)
	}
	if !token.IsNumber(s) {
		return fmt.Errorf("%w: %q", ErrNotNumber, s)
	}
	*n = Number(s)
	return nil
}
