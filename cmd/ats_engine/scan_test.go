package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadResumeFile_Text(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("Jane Smith\r\n\r\n\r\nSKILLS\n"), 0644))

	text, err := loadResumeFile(path)
	require.NoError(t, err)

	assert.Equal(t, "Jane Smith\n\nSKILLS", text)
}

func TestLoadResumeFile_NotFound(t *testing.T) {
	_, err := loadResumeFile("/nonexistent/resume.txt")
	assert.Error(t, err)
}

func TestListResumeFiles_FiltersByExtension(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.txt", "b.pdf", "c.md", "ignore.docx", "notes.json"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.txt"), 0755))

	paths, err := listResumeFiles(dir)
	require.NoError(t, err)

	var names []string
	for _, p := range paths {
		names = append(names, filepath.Base(p))
	}
	assert.ElementsMatch(t, []string{"a.txt", "b.pdf", "c.md"}, names)
}

func TestListResumeFiles_MissingDir(t *testing.T) {
	_, err := listResumeFiles("/nonexistent/dir")
	assert.Error(t, err)
}

func TestJoinOrNone(t *testing.T) {
	assert.Equal(t, "(none)", joinOrNone(nil))
	assert.Equal(t, "excel, jira", joinOrNone([]string{"excel", "jira"}))
}
