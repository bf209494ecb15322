package ui

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuccess(t *testing.T) {
	var buf bytes.Buffer
	Success(&buf, "Document generated at %s", "out")
	assert.Contains(t, buf.String(), "Document generated at out")
}

func TestError(t *testing.T) {
	var buf bytes.Buffer
	Error(&buf, errors.New("boom"))
	assert.Contains(t, buf.String(), "Error: boom")
}

func TestDiff(t *testing.T) {
	var buf bytes.Buffer
	Diff(&buf, "--- a\n+++ b\n@@ -1 +1 @@\n-old\n+new\n same\n")

	out := buf.String()
	for _, want := range []string{"--- a", "+++ b", "@@ -1 +1 @@", "-old", "+new", " same"} {
		assert.Contains(t, out, want)
	}
	assert.Equal(t, 6, bytes.Count(buf.Bytes(), []byte("\n")))
}
