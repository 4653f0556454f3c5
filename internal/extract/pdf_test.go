package extract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTextFromPDFMissingFileReturnsSentinel(t *testing.T) {
	require.Equal(t, Sentinel, TextFromPDF(filepath.Join(t.TempDir(), "missing.pdf")))
}

func TestTextFromPDFGarbageFileReturnsSentinel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not-a.pdf")
	require.NoError(t, os.WriteFile(path, []byte("plain text, not a pdf"), 0o644))
	require.Equal(t, Sentinel, TextFromPDF(path))
}
