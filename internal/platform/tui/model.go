package tui

import (
	"fmt"
	"math/rand"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/lcd-runner/internal/core"
	"github.com/vovakirdan/lcd-runner/internal/input"
	"github.com/vovakirdan/lcd-runner/internal/lcd"
	"github.com/vovakirdan/lcd-runner/internal/lcd/emu"
	"github.com/vovakirdan/lcd-runner/internal/platform/session"
	"github.com/vovakirdan/lcd-runner/internal/runner"
)

// Model is the Bubble Tea model for the simulator.
type Model struct {
	ctrl     *emu.Controller
	game     *runner.Game
	debounce *input.Debouncer
	tracker  *session.Tracker

	keys       KeyMap
	help       help.Model
	rounds     RoundsTable
	theme      PanelTheme
	screen     *core.Screen
	status     *core.Screen
	inputFrame core.InputFrame

	last       runner.TickResult
	ended      bool // a round has finished and no new one started
	showRounds bool
	width      int
	height     int
	quitting   bool
}

// NewModel wires a game to an emulated panel through the real driver.
func NewModel(cfg core.RuntimeConfig, tracker *session.Tracker, theme PanelTheme) (Model, error) {
	ctrl := emu.New()
	// The emulator has no busy time, so the driver runs without delays.
	d, err := lcd.New(lcd.FourBit(ctrl.RS(), ctrl.E(), ctrl.D(4), ctrl.D(5), ctrl.D(6), ctrl.D(7)), lcd.Timing{})
	if err != nil {
		return Model{}, fmt.Errorf("tui: %w", err)
	}
	d.Initialize()

	game := runner.New(d, rand.New(rand.NewSource(cfg.SeedOrNow())), runner.Options{
		PlayInterval:    cfg.PlayInterval,
		AttractInterval: cfg.AttractInterval,
	})
	game.Setup()

	w, h := PanelSize(true)
	m := Model{
		ctrl:       ctrl,
		game:       game,
		debounce:   input.NewDebouncer(cfg.Refractory),
		tracker:    tracker,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		rounds:     NewRoundsTable(),
		theme:      theme,
		screen:     core.NewScreen(w, h),
		status:     core.NewScreen(0, 1),
		inputFrame: core.NewInputFrame(),
	}
	return m, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(0)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionJump:
		m.inputFrame.Set(core.ActionJump)
	case core.ActionRounds:
		m.showRounds = !m.showRounds
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// handleTick samples the button and advances the game by one tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	pressed := m.inputFrame.Has(core.ActionJump)
	jump := m.debounce.Poll(pressed, m.game.Playing())
	res := m.game.Tick(jump)

	if res.Started {
		m.ended = false
	}
	if res.Collided {
		m.ended = true
	}
	if m.tracker != nil {
		if _, done := m.tracker.Observe(res); done {
			//nolint:errcheck // Best-effort refresh, game continues regardless
			m.rounds.Refresh(m.tracker.Store())
		}
	}
	m.last = res

	// Clear input for next tick
	m.inputFrame.Clear()

	return m, tickCmd(res.Delay)
}

// pixelMode reports whether the terminal is wide enough for the pixel panel.
func (m Model) pixelMode() bool {
	w, _ := PanelSize(true)
	return m.width == 0 || m.width >= w
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	pixel := m.pixelMode()
	m.screen.Resize(PanelSize(pixel))
	PaintPanel(m.screen, m.ctrl.Snapshot(), pixel)

	parts := []string{RenderScreen(m.screen, m.theme), m.statusLine()}
	if m.showRounds {
		parts = append(parts, m.rounds.View())
	}
	parts = append(parts, m.theme.Label.Render(m.help.View(m.keys)))

	content := lipgloss.JoinVertical(lipgloss.Center, parts...)
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// statusLine shows score, session best, round state and the autoplay LED.
func (m Model) statusLine() string {
	st := Status{
		Score:    m.game.Score(),
		State:    StateAttract,
		Autoplay: m.last.Playing && m.last.Autoplay,
	}
	if m.tracker != nil {
		st.Best = m.tracker.Best()
	}
	switch {
	case m.ended:
		st.State = StateOver
	case m.game.Playing():
		st.State = StateRunning
	}

	PaintStatus(m.status, st)
	return RenderScreen(m.status, m.theme)
}

// Run starts the Bubble Tea program.
func Run(cfg core.RuntimeConfig, tracker *session.Tracker, theme PanelTheme) error {
	model, err := NewModel(cfg, tracker, theme)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
