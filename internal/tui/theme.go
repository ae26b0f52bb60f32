package tui

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// NewHuhTheme returns the Charm theme with lion's purple accents.
func NewHuhTheme() *huh.Theme {
	t := huh.ThemeCharm()

	accent := lipgloss.Color("#7D56F4")
	t.Focused.Title = t.Focused.Title.Foreground(accent).Bold(true)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(accent)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(lipgloss.Color("#04B575"))
	t.Focused.FocusedButton = t.Focused.FocusedButton.Background(accent)

	return t
}
