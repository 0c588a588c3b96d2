package items

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// deckLines builds n numbered lines, "1. item 1" through "n. item n".
func deckLines(n int) string {
	var sb strings.Builder
	for i := 1; i <= n; i++ {
		fmt.Fprintf(&sb, "%d. item %d\n", i, i)
	}
	return sb.String()
}

func TestLoad_StripsEnumerationPrefixes(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		line     string
		expected string
	}{
		{name: "simple prefix", line: "1. Snowstorm", expected: "Snowstorm"},
		{name: "multi digit prefix", line: "12.    Small town", expected: "Small town"},
		{name: "no prefix", line: "Meet-cute", expected: "Meet-cute"},
		{name: "dot without space kept", line: "1.5 inches of snow", expected: "1.5 inches of snow"},
		{name: "surrounding whitespace trimmed", line: "  3. Hot cocoa  ", expected: "Hot cocoa"},
		{name: "internal whitespace collapsed", line: "4. Tree   lighting\tceremony", expected: "Tree lighting ceremony"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Pad with enough filler lines to clear the minimum.
			input := tc.line + "\n" + deckLines(MinItems)

			list, err := Load(strings.NewReader(input))
			require.NoError(t, err)
			assert.Equal(t, tc.expected, list[0])
		})
	}
}

func TestLoad_SkipsBlankLines(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	input := "\n\n" + deckLines(MinItems) + "\n   \n"

	// --- Act ---
	list, err := Load(strings.NewReader(input))

	// --- Assert ---
	require.NoError(t, err)
	assert.Len(t, list, MinItems)
}

func TestLoad_CenterAndPoolSplit(t *testing.T) {
	t.Parallel()

	list, err := Load(strings.NewReader(deckLines(30)))
	require.NoError(t, err)

	assert.Equal(t, "item 1", list.Center())
	assert.Len(t, list.Pool(), 29)
	assert.Equal(t, "item 2", list.Pool()[0])
}

func TestLoad_TooFewItems(t *testing.T) {
	t.Parallel()

	_, err := Load(strings.NewReader(deckLines(MinItems - 1)))

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, MinItems-1, vErr.Count)
	assert.Contains(t, vErr.Error(), "need at least 25 items")
}

func TestLoad_ExactlyMinItems(t *testing.T) {
	t.Parallel()

	list, err := Load(strings.NewReader(deckLines(MinItems)))
	require.NoError(t, err)
	assert.Len(t, list, MinItems)
}

func TestLoadPath_SingleFile(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := filepath.Join(t.TempDir(), "items.txt")
	require.NoError(t, os.WriteFile(path, []byte(deckLines(26)), 0o600))

	// --- Act ---
	list, err := LoadPath(path)

	// --- Assert ---
	require.NoError(t, err)
	assert.Len(t, list, 26)
}

func TestLoadPath_DirectoryConcatenatesSortedFiles(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	tmpDir := t.TempDir()
	// Written out of order on purpose; loading must follow filename order.
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "b.txt"), []byte(deckLines(24)), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "a.txt"), []byte("Snowstorm\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "ignored.md"), []byte("not items\n"), 0o600))

	// --- Act ---
	list, err := LoadPath(tmpDir)

	// --- Assert ---
	require.NoError(t, err)
	assert.Len(t, list, 25)
	assert.Equal(t, "Snowstorm", list.Center())
}

func TestLoadPath_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadPath(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
}

func TestLoadPath_EmptyDirectory(t *testing.T) {
	t.Parallel()

	_, err := LoadPath(t.TempDir())
	require.ErrorContains(t, err, "no .txt files")
}
