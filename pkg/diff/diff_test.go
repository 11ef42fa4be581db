package diff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnifiedIdenticalContent(t *testing.T) {
	t.Parallel()

	content := []byte("line1\nline2\nline3\n")
	require.Empty(t, Unified(content, content, "before", "after"))
	require.True(t, Summarize(content, content).Empty())
}

func TestUnifiedSingleLineChange(t *testing.T) {
	t.Parallel()

	before := []byte("  --primary: #2563eb;\n  --ring: #2563eb;\n  --radius: 0.5rem;\n")
	after := []byte("  --primary: #ff0000;\n  --ring: #2563eb;\n  --radius: 0.5rem;\n")

	result := Unified(before, after, "baseline/globals.css", "overridden/globals.css")

	require.True(t, strings.HasPrefix(result, "--- baseline/globals.css\n+++ overridden/globals.css\n"))
	require.Contains(t, result, "@@ -1,3 +1,3 @@\n")
	require.Contains(t, result, "-  --primary: #2563eb;\n")
	require.Contains(t, result, "+  --primary: #ff0000;\n")
	require.Contains(t, result, "   --ring: #2563eb;\n")
	require.Equal(t, Stat{Added: 1, Removed: 1}, Summarize(before, after))
}

func TestUnifiedIsDeterministic(t *testing.T) {
	t.Parallel()

	before := []byte("a\nb\nc\n")
	after := []byte("a\nB\nc\nd\n")
	require.Equal(t, Unified(before, after, "x", "y"), Unified(before, after, "x", "y"))
	require.Equal(t, "+2 -1", Summarize(before, after).String())
}

func TestUnifiedEmptyBefore(t *testing.T) {
	t.Parallel()

	result := Unified(nil, []byte("new content\n"), "before", "after")
	require.Contains(t, result, "+new content\n")
	require.Contains(t, result, "@@ -1,0 +1,1 @@")
}

func TestUnifiedTruncation(t *testing.T) {
	t.Parallel()

	var before, after []string
	for i := 0; i < 11000; i++ {
		before = append(before, "expected line")
		if i%2 == 0 {
			after = append(after, "actual line")
		} else {
			after = append(after, "expected line")
		}
	}

	result := Unified([]byte(strings.Join(before, "\n")), []byte(strings.Join(after, "\n")), "before", "after")
	require.Contains(t, result, "truncated")
	require.LessOrEqual(t, strings.Count(result, "\n"), maxDiffLines+1)
}
