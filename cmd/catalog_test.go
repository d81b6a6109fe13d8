package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"MoodFM/catalog"
)

func TestPrintCatalogSummary(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printCatalogSummary(&buf, catalog.Default()))

	out := buf.String()
	assert.Contains(t, out, "Happy")
	assert.Contains(t, out, "18:28")
	assert.Contains(t, out, "Calm")
	assert.Contains(t, out, "27:57")
	assert.Contains(t, out, "20 songs in total")
}

func TestCatalogCommand_InvalidFile(t *testing.T) {
	t.Setenv("CATALOG_PATH", "")
	rootCmd.SetArgs([]string{"catalog", "--file", t.TempDir() + "/missing.yaml"})
	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading catalog file")
}

func TestCatalogCommand_Builtin(t *testing.T) {
	t.Setenv("CATALOG_PATH", "")
	catalogFile = ""

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"catalog"})
	t.Cleanup(func() { rootCmd.SetOut(nil) })

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), "Energetic")
	assert.Contains(t, buf.String(), "20 songs in total")
}
