// Package diff renders line-oriented unified diffs between two exports.
package diff

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	maxDiffLines    = 10000
	truncateMessage = "... (diff truncated, exceeds 10,000 lines) ..."
)

// Stat counts changed lines.
type Stat struct {
	Added   int
	Removed int
}

// String renders the stat as "+N -M".
func (s Stat) String() string {
	return fmt.Sprintf("+%d -%d", s.Added, s.Removed)
}

// Empty reports whether nothing changed.
func (s Stat) Empty() bool {
	return s.Added == 0 && s.Removed == 0
}

type line struct {
	op   diffmatchpatch.Operation
	text string
}

func lineDiff(before, after string) []line {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var out []line
	for _, d := range diffs {
		text := strings.TrimSuffix(d.Text, "\n")
		if d.Text == "" {
			continue
		}
		for _, l := range strings.Split(text, "\n") {
			out = append(out, line{op: d.Type, text: l})
		}
	}
	return out
}

// Unified returns a unified diff of before and after, or "" when they are
// identical. Output carries no timestamps, so the same inputs always produce
// the same text. Diffs beyond 10,000 lines are truncated with a marker.
func Unified(before, after []byte, beforeLabel, afterLabel string) string {
	if bytes.Equal(before, after) {
		return ""
	}

	lines := lineDiff(string(before), string(after))
	var beforeCount, afterCount int
	for _, l := range lines {
		if l.op != diffmatchpatch.DiffInsert {
			beforeCount++
		}
		if l.op != diffmatchpatch.DiffDelete {
			afterCount++
		}
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "--- %s\n", beforeLabel)
	fmt.Fprintf(&buf, "+++ %s\n", afterLabel)
	fmt.Fprintf(&buf, "@@ -1,%d +1,%d @@\n", beforeCount, afterCount)

	for _, l := range lines {
		switch l.op {
		case diffmatchpatch.DiffEqual:
			buf.WriteString(" ")
		case diffmatchpatch.DiffDelete:
			buf.WriteString("-")
		case diffmatchpatch.DiffInsert:
			buf.WriteString("+")
		}
		buf.WriteString(l.text)
		buf.WriteString("\n")
	}

	result := buf.String()
	split := strings.Split(result, "\n")
	if len(split) > maxDiffLines {
		truncated := strings.Join(split[:maxDiffLines], "\n")
		return truncated + "\n" + truncateMessage + "\n"
	}

	return result
}

// Summarize counts added and removed lines between before and after.
func Summarize(before, after []byte) Stat {
	var s Stat
	if bytes.Equal(before, after) {
		return s
	}
	for _, l := range lineDiff(string(before), string(after)) {
		switch l.op {
		case diffmatchpatch.DiffInsert:
			s.Added++
		case diffmatchpatch.DiffDelete:
			s.Removed++
		}
	}
	return s
}
