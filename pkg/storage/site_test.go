package storage

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/blackcoderx/postdoc/pkg/docerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSite_Write(t *testing.T) {
	src := t.TempDir()
	collectionPath := filepath.Join(src, "api.postman_collection.json")
	require.NoError(t, os.WriteFile(collectionPath, []byte(`{"info": {}}`), 0644))

	out := filepath.Join(t.TempDir(), "nested", "output")
	site := Site{
		Dir:  out,
		Page: []byte("<html></html>"),
		Assets: fstest.MapFS{
			"css/main.css": {Data: []byte("body {}")},
			"js/main.js":   {Data: []byte("// js")},
		},
		Extras: []string{collectionPath},
	}
	require.NoError(t, site.Write())

	page, err := os.ReadFile(filepath.Join(out, PageFile))
	require.NoError(t, err)
	assert.Equal(t, "<html></html>", string(page))

	css, err := os.ReadFile(filepath.Join(out, "css", "main.css"))
	require.NoError(t, err)
	assert.Equal(t, "body {}", string(css))

	assert.FileExists(t, filepath.Join(out, "js", "main.js"))
	assert.FileExists(t, filepath.Join(out, "api.postman_collection.json"))
}

func TestSite_WriteMissingExtra(t *testing.T) {
	out := t.TempDir()
	site := Site{
		Dir:    out,
		Page:   []byte("page"),
		Extras: []string{filepath.Join(out, "does-not-exist.json")},
	}

	err := site.Write()
	require.Error(t, err)
	assert.ErrorIs(t, err, docerr.ErrIO)
	assert.NoFileExists(t, filepath.Join(out, PageFile), "page is written last")
}

func TestDiff(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, PageFile)
	require.NoError(t, os.WriteFile(path, []byte("line 1\nline 2\n"), 0644))

	diff, err := Diff(path, []byte("line 1\nline 2\n"))
	require.NoError(t, err)
	assert.Empty(t, diff)

	diff, err = Diff(path, []byte("line 1\nline two\n"))
	require.NoError(t, err)
	assert.Contains(t, diff, "-line 2")
	assert.Contains(t, diff, "+line two")

	diff, err = Diff(filepath.Join(dir, "missing.html"), []byte("new\n"))
	require.NoError(t, err)
	assert.Contains(t, diff, "+new")
}
