// Package libdiff renders the textual difference between the original
// file and the pending edit, for the -diff save mode.
package libdiff

import (
	"io"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Text writes a character-level diff of from to to. With colors on,
// deletions are red and insertions green; without, they are wrapped in
// [-...-] and {+...+} markers.
func Text(w io.Writer, from, to string, colors bool) error {
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMain(from, to, true)
	diffs = diffCfg.DiffCleanupSemantic(diffs)

	del := color.New(color.FgRed).SprintFunc()
	ins := color.New(color.FgGreen).SprintFunc()
	for i := range diffs {
		diff := &diffs[i]
		var out string
		switch diff.Type {
		case diffpatch.DiffDelete:
			if colors {
				out = del(diff.Text)
			} else {
				out = "[-" + diff.Text + "-]"
			}
		case diffpatch.DiffInsert:
			if colors {
				out = ins(diff.Text)
			} else {
				out = "{+" + diff.Text + "+}"
			}
		case diffpatch.DiffEqual:
			out = diff.Text
		}
		if _, err := io.WriteString(w, out); err != nil {
			return err
		}
	}
	return nil
}
