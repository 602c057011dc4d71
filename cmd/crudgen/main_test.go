package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func resetFlags() {
	genList, genDetail, genCreate, genUpdate, genDelete = false, false, false, false, false
}

func TestMktemplateAllRoles(t *testing.T) {
	resetFlags()
	dir := t.TempDir()

	runCLI(t, "mktemplate", "Bookmark", "--dir", dir)

	for _, name := range []string{
		"bookmark_list.html",
		"bookmark_detail.html",
		"bookmark_form.html",
		"bookmark_confirm_delete.html",
	} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}
}

func TestMktemplateRoleSubset(t *testing.T) {
	resetFlags()
	dir := t.TempDir()

	runCLI(t, "mktemplate", "bookmark", "--dir", dir, "--list")

	_, err := os.Stat(filepath.Join(dir, "bookmark_list.html"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "bookmark_detail.html"))
	assert.True(t, os.IsNotExist(err))
}

func TestMktemplateSkipsExisting(t *testing.T) {
	resetFlags()
	dir := t.TempDir()

	path := filepath.Join(dir, "bookmark_list.html")
	require.NoError(t, os.WriteFile(path, []byte("handwritten"), 0o644))

	out := runCLI(t, "mktemplate", "bookmark", "--dir", dir, "--list")
	assert.Contains(t, out, "skip "+path)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "handwritten", string(b))
}
