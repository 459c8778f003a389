package ingest_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"frontpanel/ingest"
)

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLines(t *testing.T) {
	path := writeInput(t, "  Here is  \n\nsome text\n   \nhooray!\n")

	lines, err := ingest.Lines(path)
	require.NoError(t, err)
	require.Equal(t, []string{"Here is", "some text", "hooray!"}, lines)
}

func TestLines_MissingFile(t *testing.T) {
	_, err := ingest.Lines(filepath.Join(t.TempDir(), "absent.txt"))
	require.Error(t, err)
}

func TestPair(t *testing.T) {
	path := writeInput(t, "R8,U5,L5,D3\nU7,R6,D4,L4\n")

	first, second, err := ingest.Pair(path)
	require.NoError(t, err)
	require.Equal(t, "R8,U5,L5,D3", first)
	require.Equal(t, "U7,R6,D4,L4", second)
}

func TestPair_TooFewLines(t *testing.T) {
	path := writeInput(t, "R8,U5,L5,D3\n\n  \n")

	_, _, err := ingest.Pair(path)
	require.ErrorIs(t, err, ingest.ErrLineCount)
}

// TestPair_IgnoresExtras: only the first two lines are ever consulted.
func TestPair_IgnoresExtras(t *testing.T) {
	path := writeInput(t, "U1\nD1\nL1\n")

	first, second, err := ingest.Pair(path)
	require.NoError(t, err)
	require.Equal(t, "U1", first)
	require.Equal(t, "D1", second)
}
