package tui

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/lcd-runner/internal/core"
)

// PanelTheme holds the styles used to draw the simulated display and the
// status line below it.
type PanelTheme struct {
	// Panel
	Glass lipgloss.Style
	Pixel lipgloss.Style
	Bezel lipgloss.Style

	// Status line
	Label  lipgloss.Style
	Value  lipgloss.Style
	Alert  lipgloss.Style
	LEDOn  lipgloss.Style
	LEDOff lipgloss.Style
}

// DefaultPanelTheme is the yellow-green backlight of the common 1602 module.
func DefaultPanelTheme() PanelTheme {
	return PanelTheme{
		Glass: lipgloss.NewStyle().Background(lipgloss.Color("148")),
		Pixel: lipgloss.NewStyle().Foreground(lipgloss.Color("22")).Background(lipgloss.Color("148")),
		Bezel: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),

		Label:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Value:  lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		Alert:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		LEDOn:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		LEDOff: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	}
}

// BluePanelTheme returns white pixels on a blue backlight.
func BluePanelTheme() PanelTheme {
	theme := DefaultPanelTheme()
	theme.Glass = lipgloss.NewStyle().Background(lipgloss.Color("26"))
	theme.Pixel = lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("26"))
	return theme
}

// MonochromePanelTheme avoids background colors, for terminals that
// render them poorly.
func MonochromePanelTheme() PanelTheme {
	theme := DefaultPanelTheme()
	theme.Glass = lipgloss.NewStyle()
	theme.Pixel = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	theme.LEDOn = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	return theme
}

var panelThemes = map[string]func() PanelTheme{
	"green": DefaultPanelTheme,
	"blue":  BluePanelTheme,
	"mono":  MonochromePanelTheme,
}

// ThemeNames lists the selectable themes.
func ThemeNames() []string {
	names := make([]string, 0, len(panelThemes))
	for name := range panelThemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeByName returns the named theme. The empty name selects the default.
func ThemeByName(name string) (PanelTheme, error) {
	if name == "" {
		return DefaultPanelTheme(), nil
	}
	f, ok := panelThemes[name]
	if !ok {
		return PanelTheme{}, fmt.Errorf("tui: unknown theme %q (want one of %v)", name, ThemeNames())
	}
	return f(), nil
}

// Style returns the style for a canvas color role.
func (t PanelTheme) Style(c core.Color) lipgloss.Style {
	switch c {
	case core.ColorGlass:
		return t.Glass
	case core.ColorPixel:
		return t.Pixel
	case core.ColorBezel:
		return t.Bezel
	case core.ColorLabel:
		return t.Label
	case core.ColorValue:
		return t.Value
	case core.ColorAlert:
		return t.Alert
	case core.ColorLEDOn:
		return t.LEDOn
	case core.ColorLEDOff:
		return t.LEDOff
	default:
		return lipgloss.NewStyle()
	}
}
