package token

import (
	"errors"
	"strconv"
)

// IsNumber reports whether s is a locale invariant floating point literal:
// an optional sign, digits with an optional fraction (or a fraction alone),
// and an optional exponent. Literals beyond the float64 range are not
// numbers.
func IsNumber(s string) bool {
	n, err := number([]byte(s))
	if err != nil || n != len(s) {
		return false
	}
	_, err = strconv.ParseFloat(s, 64)
	return !errors.Is(err, strconv.ErrRange)
}

// IsInteger reports whether s is an optionally signed run of decimal digits.
func IsInteger(s string) bool {
	d := []byte(s)
	i := sign(d)
	n := asciiDigits(d[i:])
	return n > 0 && i+n == len(d) && IsNumber(s)
}

// number returns the length of the numeric literal at the start of d.
func number(d []byte) (int, error) {
	i := sign(d)
	digits := asciiDigits(d[i:])
	f := fract(d[i+digits:], digits > 0)
	if digits+f == 0 {
		return 0, ErrNumber
	}
	e := exp(d[i+digits+f:])
	return i + digits + f + e, nil
}

func sign(d []byte) int {
	if len(d) == 0 {
		return 0
	}
	switch d[0] {
	case '+', '-':
		return 1
	}
	return 0
}

func asciiDigits(d []byte) int {
	i := 0
	for i < len(d) {
		if !asciiDigit(d[i]) {
			return i
		}
		i++
	}
	return i
}

func asciiDigit(c byte) bool {
	switch c {
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return true
	default:
		return false
	}
}

func exp(d []byte) int {
	if len(d) < 2 {
		return 0
	}
	switch d[0] {
	case 'e', 'E':
	default:
		return 0
	}
	i := 1
	switch d[1] {
	case '+', '-':
		i++
	default:
	}
	if i == len(d) {
		return 0
	}
	n := asciiDigits(d[i:])
	if n == 0 {
		return 0
	}
	return n + i
}

// fract returns the length of a fraction at the start of d. A bare '.' only
// counts when it follows integer digits, as in "5.".
func fract(d []byte, lead bool) int {
	if len(d) == 0 || d[0] != '.' {
		return 0
	}
	n := asciiDigits(d[1:])
	if n == 0 && !lead {
		return 0
	}
	return n + 1
}
