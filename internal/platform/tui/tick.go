// Package tui runs the game in the terminal against an emulated HD44780.
// The game drives the emulator through the real display driver; the view
// paints whatever the emulated controller holds.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game tick.
type TickMsg time.Time

// tickCmd schedules the next tick after the delay the game asked for.
func tickCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
