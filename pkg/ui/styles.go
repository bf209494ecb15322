// Package ui holds the terminal presentation of the postdoc CLI.
package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Minimal color palette
var (
	DimColor     = lipgloss.Color("#6c6c6c")
	AccentColor  = lipgloss.Color("#7aa2f7")
	ErrorColor   = lipgloss.Color("#f7768e")
	SuccessColor = lipgloss.Color("#9ece6a")
	AddColor     = lipgloss.Color("#9ece6a")
	RemoveColor  = lipgloss.Color("#f7768e")
)

var (
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	WarnStyle = lipgloss.NewStyle().
			Foreground(AccentColor)

	DimStyle = lipgloss.NewStyle().
			Foreground(DimColor)

	AddStyle = lipgloss.NewStyle().
			Foreground(AddColor)

	RemoveStyle = lipgloss.NewStyle().
			Foreground(RemoveColor)

	HunkStyle = lipgloss.NewStyle().
			Foreground(AccentColor)
)

// Message prefixes
const (
	ErrorPrefix = "✗ "
	WarnPrefix  = "! "
)
