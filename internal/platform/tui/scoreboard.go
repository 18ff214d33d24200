package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/lcd-runner/internal/storage"
)

// Rounds table layout constants
const (
	roundsShown  = 8 // rows loaded into the table
	roundsHeight = roundsShown + 1
)

// RoundsTable shows the best rounds of the session.
type RoundsTable struct {
	table  table.Model
	rounds []storage.Round
	stats  storage.Stats
}

// NewRoundsTable creates an empty rounds table.
func NewRoundsTable() RoundsTable {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Round", Width: 6},
		{Title: "Score", Width: 6},
		{Title: "Distance", Width: 9},
		{Title: "Time", Width: 8},
		{Title: "Ended", Width: 9},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(false),
		table.WithHeight(roundsHeight),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return RoundsTable{table: t}
}

// Refresh reloads the table from the session log.
func (r *RoundsTable) Refresh(store *storage.Session) error {
	if store == nil {
		return nil
	}

	rounds, err := store.TopRounds(roundsShown)
	if err != nil {
		return err
	}
	stats, err := store.Stats()
	if err != nil {
		return err
	}
	r.rounds = rounds
	r.stats = *stats
	r.updateRows()
	return nil
}

// updateRows updates the table with the loaded rounds.
func (r *RoundsTable) updateRows() {
	rows := make([]table.Row, len(r.rounds))
	for i, rd := range r.rounds {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", rd.ID),
			fmt.Sprintf("%d", rd.Score),
			fmt.Sprintf("%d", rd.Distance),
			fmt.Sprintf("%.1fs", rd.Duration.Seconds()),
			rd.EndedAt.Format("15:04:05"),
		}
	}
	r.table.SetRows(rows)
	r.table.GotoTop()
}

// Len returns the number of rounds shown.
func (r RoundsTable) Len() int {
	return len(r.rounds)
}

// View renders the table, or a hint when nothing has been played.
func (r RoundsTable) View() string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	if len(r.rounds) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 4)
		return boxStyle.Render(emptyStyle.Render("No rounds played yet."))
	}

	var b strings.Builder
	b.WriteString(r.table.View())
	b.WriteString("\n")
	summary := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	b.WriteString(summary.Render(fmt.Sprintf(
		"%d rounds · avg %.1f · distance %d · longest %.1fs",
		r.stats.Rounds, r.stats.AvgScore, r.stats.TotalDistance, r.stats.Longest.Seconds(),
	)))
	return boxStyle.Render(b.String())
}
