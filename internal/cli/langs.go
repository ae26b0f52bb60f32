package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jakoblorz/lion/internal/models"
	"github.com/jakoblorz/lion/internal/tui"
	"github.com/spf13/cobra"
)

// LangsCommand handles the langs command
type LangsCommand struct {
	app *App
}

// NewLangsCommand creates a new langs command
func NewLangsCommand(app *App) *cobra.Command {
	cmd := &LangsCommand{app: app}

	return &cobra.Command{
		Use:   "langs",
		Short: "List supported languages",
		Args:  cobra.NoArgs,
		RunE:  cmd.Run,
	}
}

// Run executes the langs command
func (c *LangsCommand) Run(cmd *cobra.Command, args []string) error {
	_, _ = fmt.Fprint(cmd.OutOrStdout(), renderLanguages(models.All()))
	return nil
}

func injectionLabel(style models.InjectionStyle) string {
	switch style {
	case models.InjectionImportLine:
		return "import line"
	case models.InjectionIncludeLine:
		return "#include line"
	case models.InjectionManifest:
		return models.ManifestFileName
	case models.InjectionNone:
		return "-"
	}
	return "-"
}

func renderLanguages(langs []models.Language) string {
	rows := [][]string{{"LANGUAGE", "EXT", "KIND", "DEPENDENCIES"}}
	for _, lang := range langs {
		rows = append(rows, []string{
			lang.DisplayName(),
			"." + lang.Extension(),
			lang.Kind().String(),
			injectionLabel(lang.Injection()),
		})
	}

	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], len(cell))
		}
	}

	var b strings.Builder
	for i, row := range rows {
		cells := make([]string, len(row))
		for j, cell := range row {
			style := lipgloss.NewStyle().Width(widths[j] + 2)
			switch {
			case i == 0:
				style = style.Inherit(tui.HeaderStyle)
			case j == 0:
				style = style.Inherit(tui.SelectedStyle)
			}
			cells[j] = style.Render(cell)
		}
		b.WriteString(strings.TrimRight(lipgloss.JoinHorizontal(lipgloss.Top, cells...), " "))
		b.WriteString("\n")
	}

	return b.String()
}
