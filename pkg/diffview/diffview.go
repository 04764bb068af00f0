// Package diffview computes line-level before/after pairs between the
// original and rewritten page text, using the sergi/go-diff library with a
// line-mode reduction so changes stay aligned to line boundaries.
package diffview

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// LineChange is one changed line, numbered against the original text.
type LineChange struct {
	Number int    // 1-based line number in the original text; for a pure insertion, the original line it precedes
	Before string // line content before the rewrite ("" if the line was inserted)
	After  string // line content after the rewrite ("" if the line was removed)
}

// Compare returns every changed line in original line order. Unchanged
// inputs yield nil.
func Compare(before, after string) []LineChange {
	if before == after {
		return nil
	}

	dmp := diffmatchpatch.New()
	a, b, lineArray := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	var changes []LineChange
	var pending []LineChange // removed lines waiting for their replacement
	oldLine := 0

	flush := func() {
		changes = append(changes, pending...)
		pending = nil
	}

	for _, diff := range diffs {
		lines := splitLines(diff.Text)

		switch diff.Type {
		case diffmatchpatch.DiffEqual:
			flush()
			oldLine += len(lines)

		case diffmatchpatch.DiffDelete:
			for _, line := range lines {
				oldLine++
				pending = append(pending, LineChange{Number: oldLine, Before: line})
			}

		case diffmatchpatch.DiffInsert:
			for _, line := range lines {
				if len(pending) > 0 {
					pending[0].After = line
					changes = append(changes, pending[0])
					pending = pending[1:]
				} else {
					changes = append(changes, LineChange{Number: oldLine + 1, After: line})
				}
			}
		}
	}
	flush()

	return changes
}

// splitLines splits diff text into lines, dropping the empty tail that a
// trailing newline produces.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
