package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Validate bool
	Parse    bool
	Encode   bool
	Load     bool
	Eval     bool
	Patch    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Validate = boolEnv("TABTEXT_DEBUG_VALIDATE")
	d.Parse = boolEnv("TABTEXT_DEBUG_PARSE")
	d.Encode = boolEnv("TABTEXT_DEBUG_ENCODE")
	d.Load = boolEnv("TABTEXT_DEBUG_LOAD")
	d.Eval = boolEnv("TABTEXT_DEBUG_EVAL")
	d.Patch = boolEnv("TABTEXT_DEBUG_PATCH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Validate() bool {
	return d.Validate
}
func Parse() bool {
	return d.Parse
}
func Encode() bool {
	return d.Encode
}
func Load() bool {
	return d.Load
}
func Eval() bool {
	return d.Eval
}
func Patch() bool {
	return d.Patch
}
