package tabtext

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/signadot/tabtext/debug"
	"github.com/signadot/tabtext/doc"
	"github.com/signadot/tabtext/export"
	"github.com/signadot/tabtext/format"
)

// Patch applies an RFC 6902 JSON patch to the JSON export of d and writes
// the resulting values back through ed. Only values may change.
func Patch(d *doc.Document, ed doc.Editor, patch []byte) error {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return err
	}
	j, err := export.Marshal(d, ed, format.JSONFormat)
	if err != nil {
		return err
	}
	jOut, err := ops.Apply(j)
	if err != nil {
		return err
	}
	if debug.Patch() {
		debug.Logf("patched export:\n%s\n", jOut)
	}
	es, err := export.Unmarshal(jOut, format.JSONFormat)
	if err != nil {
		return fmt.Errorf("patched document: %w", err)
	}
	return export.Import(d, ed, es)
}
