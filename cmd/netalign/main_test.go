package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/yumyai/netalign/logger"
)

func writeDataset(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"dataset.toml": `orthogroups = "groups.txt"
alignment = "pairs.align"
[species1]
name = "S cerevisiae"
network = "s1.txt"
ensembl_ncbi = "s1_ncbi.txt"
ensembl_others = "s1_others.txt"
[species2]
name = "C elegans"
network = "s2.txt"
ensembl_ncbi = "s2_ncbi.txt"
ensembl_others = "s2_others.txt"
[defaults]
query1 = "Q"
query2 = "Z"
`,
		"groups.txt":    "X\tZ\n",
		"pairs.align":   "X\tZ\n",
		"s1.txt":        "Q\tX\nQ\tY\n",
		"s2.txt":        "Z\tW\n",
		"s1_ncbi.txt":   "header\n",
		"s1_others.txt": "header\n",
		"s2_ncbi.txt":   "header\n",
		"s2_others.txt": "header\n",
	}
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	return filepath.Join(dir, "dataset.toml")
}

func TestRunWritesViews(t *testing.T) {
	manifest := writeDataset(t)
	out := t.TempDir()
	var stdout, stderr bytes.Buffer

	code := run(context.Background(), []string{"-dataset", manifest, "-out", out, "-db", ":memory:"}, &stdout, &stderr)
	require.Equal(t, exitOK, code, stderr.String())

	for _, name := range []string{"o_Q_Z.json", "a_Q_Z.json"} {
		raw, err := os.ReadFile(filepath.Join(out, name))
		require.NoError(t, err)

		var elements []map[string]any
		require.NoError(t, json.Unmarshal(raw, &elements))
		assert.NotEmpty(t, elements)
		assert.Contains(t, stdout.String(), name)
	}
}

func TestRunUnknownProtein(t *testing.T) {
	manifest := writeDataset(t)
	var stdout, stderr bytes.Buffer

	code := run(context.Background(), []string{"-dataset", manifest, "-out", t.TempDir(), "-q1", "NOPE"}, &stdout, &stderr)
	assert.Equal(t, exitUnknown, code)
	assert.Contains(t, stderr.String(), "NOPE")
}

func TestRunMissingManifest(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"-dataset", filepath.Join(t.TempDir(), "none.toml")}, &stdout, &stderr)
	assert.Equal(t, exitFailure, code)
}

func TestRunRejectsPositionalArgs(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"extra"}, &stdout, &stderr)
	assert.Equal(t, exitFailure, code)
	assert.Contains(t, stderr.String(), "unexpected arguments")
}

func TestViewFileName(t *testing.T) {
	name, err := viewFileName("o", "YOL139C", "WBGene00002061")
	require.NoError(t, err)
	assert.Equal(t, "o_YOL139C_WBGene00002061.json", name)

	for _, bad := range []string{"../etc", "a/b", `a\b`, "..", "."} {
		_, err := viewFileName("a", bad, "Z")
		assert.Error(t, err, bad)
		_, err = viewFileName("a", "Q", bad)
		assert.Error(t, err, bad)
	}
}

func TestRunRejectsTraversalInQuery(t *testing.T) {
	dir := filepath.Dir(writeDataset(t))
	// a gene id that exists in the network but would escape -out
	require.NoError(t, os.WriteFile(filepath.Join(dir, "s1.txt"), []byte("../Q\tX\n"), 0o644))
	out := filepath.Join(t.TempDir(), "views")
	var stdout, stderr bytes.Buffer

	code := run(context.Background(), []string{
		"-dataset", filepath.Join(dir, "dataset.toml"), "-out", out, "-q1", "../Q",
	}, &stdout, &stderr)

	assert.Equal(t, exitFailure, code)
	assert.Contains(t, stderr.String(), "cannot be used in a file name")
	assert.NoDirExists(t, out)
	entries, _ := os.ReadDir(filepath.Dir(out))
	assert.Empty(t, entries)
}

func TestRunAppliesLogLevelFlag(t *testing.T) {
	defer logger.SetLevel(zapcore.InfoLevel)
	var stdout, stderr bytes.Buffer

	code := run(context.Background(), []string{
		"-dataset", writeDataset(t), "-out", t.TempDir(), "-log-level", "debug",
	}, &stdout, &stderr)
	require.Equal(t, exitOK, code, stderr.String())
	assert.Equal(t, zapcore.DebugLevel, logger.Level())
}
