package project

import (
	"fmt"
	"strings"

	"github.com/jakoblorz/lion/internal/models"
	"github.com/jakoblorz/lion/internal/tui"
)

// RenderSuccess renders a summary after a project was scaffolded.
func RenderSuccess(p *models.Project) string {
	var b strings.Builder

	b.WriteString(tui.SuccessStyle.Render(fmt.Sprintf("✓ Created %s project %s", p.Language.DisplayName(), p.Name)))
	b.WriteString("\n\n")

	paths := make([]string, 0, 6)
	for _, dir := range p.Directories() {
		paths = append(paths, dir+"/")
	}
	paths = append(paths, p.IgnoreFilePath)
	if p.ManifestPath != "" {
		paths = append(paths, p.ManifestPath)
	}
	paths = append(paths, p.InitialFile)

	for _, path := range paths {
		b.WriteString("  " + tui.SubtleStyle.Render(path) + "\n")
	}

	return b.String()
}
