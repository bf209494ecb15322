// Package storage writes a generated documentation site to disk.
package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/aymanbagabas/go-udiff"
	"github.com/blackcoderx/postdoc/pkg/docerr"
)

// PageFile is the name of the generated page inside the output directory.
const PageFile = "index.html"

// Site is a rendered page plus everything copied next to it.
type Site struct {
	// Dir is the output directory; created when missing.
	Dir string
	// Page is the rendered HTML document.
	Page []byte
	// Assets is copied into Dir as-is (css/, js/, ...).
	Assets fs.FS
	// Extras are files copied into Dir under their base names,
	// e.g. the source collection for download links.
	Extras []string
}

// PagePath returns the path the page is written to.
func (s *Site) PagePath() string {
	return filepath.Join(s.Dir, PageFile)
}

// Write copies the assets and extras, then writes the page last.
func (s *Site) Write() error {
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return &docerr.IOError{Op: "mkdir", Path: s.Dir, Cause: err}
	}

	if s.Assets != nil {
		if err := CopyFS(s.Dir, s.Assets); err != nil {
			return err
		}
	}

	for _, src := range s.Extras {
		if err := CopyFile(src, filepath.Join(s.Dir, filepath.Base(src))); err != nil {
			return err
		}
	}

	if err := os.WriteFile(s.PagePath(), s.Page, 0644); err != nil {
		return &docerr.IOError{Op: "write", Path: s.PagePath(), Cause: err}
	}
	return nil
}

// CopyFS copies every file of fsys into dir, keeping the directory layout
// and overwriting existing files.
func CopyFS(dir string, fsys fs.FS) error {
	return fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return &docerr.IOError{Op: "copy", Path: path, Cause: err}
		}

		target := filepath.Join(dir, filepath.FromSlash(path))
		if d.IsDir() {
			if err := os.MkdirAll(target, 0755); err != nil {
				return &docerr.IOError{Op: "mkdir", Path: target, Cause: err}
			}
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return &docerr.IOError{Op: "read", Path: path, Cause: err}
		}
		if err := os.WriteFile(target, data, 0644); err != nil {
			return &docerr.IOError{Op: "copy", Path: target, Cause: err}
		}
		return nil
	})
}

// CopyFile copies the file at src to dst.
func CopyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return &docerr.IOError{Op: "read", Path: src, Cause: err}
	}
	if err := os.WriteFile(dst, data, 0644); err != nil {
		return &docerr.IOError{Op: "copy", Path: dst, Cause: err}
	}
	return nil
}

// Diff returns a unified diff from the page at path to page. A missing file
// diffs against empty content; identical content yields "".
func Diff(path string, page []byte) (string, error) {
	existing, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return "", &docerr.IOError{Op: "read", Path: path, Cause: err}
	}

	original, modified := string(existing), string(page)
	if original == modified {
		return "", nil
	}

	name := filepath.ToSlash(path)
	edits := udiff.Strings(original, modified)
	unified, err := udiff.ToUnified("a/"+name, "b/"+name, original, edits, 3)
	if err != nil {
		return "", fmt.Errorf("failed to generate diff: %w", err)
	}
	return unified, nil
}
