package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/lcd-runner/internal/lcd"
	"github.com/vovakirdan/lcd-runner/internal/runner"
)

var glyphsCmd = &cobra.Command{
	Use:   "glyphs",
	Short: "Print the custom characters",
	Long: `Print the seven custom characters uploaded to the display's CGRAM, as
5x8 bitmaps with their slot numbers.`,
	Args: cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println(renderGlyphTable())
	},
}

var (
	glyphBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	glyphOn    = lipgloss.NewStyle().Foreground(lipgloss.Color("148"))
	glyphOff   = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	glyphTitle = lipgloss.NewStyle().Bold(true)
)

// renderGlyph draws one 5x8 bitmap, two terminal columns per pixel.
func renderGlyph(g lcd.Glyph) string {
	rows := make([]string, len(g))
	for y, bits := range g {
		var sb strings.Builder
		for x := 4; x >= 0; x-- {
			if bits&(1<<x) != 0 {
				sb.WriteString(glyphOn.Render("██"))
			} else {
				sb.WriteString(glyphOff.Render("··"))
			}
		}
		rows[y] = sb.String()
	}
	return strings.Join(rows, "\n")
}

func renderGlyphTable() string {
	cells := make([]string, 0, len(runner.Glyphs))
	for i, g := range runner.Glyphs {
		title := glyphTitle.Render(fmt.Sprintf("%d %s", i+1, runner.GlyphNames[i]))
		cells = append(cells, glyphBox.Render(lipgloss.JoinVertical(lipgloss.Left, title, renderGlyph(g))))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}
