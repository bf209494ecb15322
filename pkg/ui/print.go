package ui

import (
	"fmt"
	"io"
	"strings"
)

// Success prints a success line.
func Success(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, SuccessStyle.Render(fmt.Sprintf(format, args...)))
}

// Error prints an error line.
func Error(w io.Writer, err error) {
	fmt.Fprintln(w, ErrorStyle.Render(ErrorPrefix+"Error: "+err.Error()))
}

// Warn prints a warning line.
func Warn(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, WarnStyle.Render(WarnPrefix+fmt.Sprintf(format, args...)))
}

// Diff prints a unified diff with added and removed lines colored.
func Diff(w io.Writer, diff string) {
	for _, line := range strings.SplitAfter(diff, "\n") {
		if line == "" {
			continue
		}
		text := strings.TrimSuffix(line, "\n")
		switch {
		case strings.HasPrefix(text, "+++"), strings.HasPrefix(text, "---"):
			text = DimStyle.Render(text)
		case strings.HasPrefix(text, "@@"):
			text = HunkStyle.Render(text)
		case strings.HasPrefix(text, "+"):
			text = AddStyle.Render(text)
		case strings.HasPrefix(text, "-"):
			text = RemoveStyle.Render(text)
		}
		fmt.Fprintln(w, text)
	}
}
