package rewrite

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// renderDiff produces a minimal line diff between two file contents, with
// removed lines prefixed by "-" and added lines by "+".
func renderDiff(before, after string) string {
	dmp := diffmatchpatch.New()

	beforeRunes, afterRunes, lines := dmp.DiffLinesToRunes(before, after)
	diffs := dmp.DiffMainRunes(beforeRunes, afterRunes, false)
	diffs = dmp.DiffCharsToLines(diffs, lines)

	var builder strings.Builder
	for _, diff := range diffs {
		var prefix string
		switch diff.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		default:
			continue
		}
		for _, line := range strings.Split(strings.TrimRight(diff.Text, "\n"), "\n") {
			builder.WriteString(prefix)
			builder.WriteString(line)
			builder.WriteString("\n")
		}
	}

	return builder.String()
}
