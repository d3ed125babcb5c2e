package output

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Usage returns the usage banner logged when no port is given. Styles are
// resolved against w, the writer the banner ends up on.
func Usage(w io.Writer, colorEnabled bool) string {
	title := "Kill process(es) listening on <port>"
	section := "USAGE:"
	command := "shut <port>"
	if colorEnabled {
		r := lipgloss.NewRenderer(w)
		title = r.NewStyle().Bold(true).Foreground(lipgloss.Color("#5f5fd7")).Render(title)
		section = r.NewStyle().Foreground(lipgloss.Color("#bcbcbc")).Render(section)
		command = r.NewStyle().Foreground(lipgloss.Color("#87d787")).Render(command)
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(title + "\n")
	b.WriteString(section + "\n")
	b.WriteString("    " + command + "\n")
	return b.String()
}
