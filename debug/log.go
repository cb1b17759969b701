package debug

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/signadot/tabtext/doc"
)

func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *doc.Element:
			args[i] = fmt.Sprintf("[%d %s %q]", x.Serial, x.Kind, x.Name+x.Text)
		case bool, string, float64, int:

		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
