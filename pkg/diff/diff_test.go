package diff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateUnifiedDiff_IdenticalContent(t *testing.T) {
	t.Parallel()

	content := []byte("padding:\n  top: 20\n")
	require.Empty(t, GenerateUnifiedDiff(content, content, "frame 0", "frame 1"))
}

func TestGenerateUnifiedDiff_SingleLineChange(t *testing.T) {
	t.Parallel()

	before := []byte("label_fraction: 0\nbottom_lines: 1\nerror: \"\"\n")
	after := []byte("label_fraction: 0.5\nbottom_lines: 1\nerror: \"\"\n")

	result := GenerateUnifiedDiff(before, after, "frame 0", "frame 1")
	require.True(t, strings.HasPrefix(result, "--- frame 0\n+++ frame 1\n"))
	require.Contains(t, result, "-label_fraction: 0\n")
	require.Contains(t, result, "+label_fraction: 0.5\n")
	require.Contains(t, result, " bottom_lines: 1\n")
	require.Contains(t, result, "@@ -1,3 +1,3 @@")
}

func TestChangedLinesReturnsInsertedLinesOnly(t *testing.T) {
	t.Parallel()

	before := []byte("a: 1\nb: 2\nc: 3\n")
	after := []byte("a: 1\nb: 5\nc: 3\nd: 4\n")

	require.Equal(t, []string{"b: 5", "d: 4"}, ChangedLines(before, after))
	require.Nil(t, ChangedLines(before, before))
}

func TestGenerateUnifiedDiff_Truncates(t *testing.T) {
	t.Parallel()

	var before, after strings.Builder
	for i := 0; i < maxDiffLines; i++ {
		before.WriteString("old\n")
		after.WriteString("new\n")
	}

	result := GenerateUnifiedDiff([]byte(before.String()), []byte(after.String()), "a", "b")
	require.Contains(t, result, truncateMessage)
}
