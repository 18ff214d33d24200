package tui

import (
	"strconv"
	"unicode/utf8"

	"github.com/vovakirdan/lcd-runner/internal/core"
)

// RoundState is what the status line reports about the game.
type RoundState int

const (
	StateAttract RoundState = iota
	StateRunning
	StateOver
)

// Status is the information shown under the panel.
type Status struct {
	Score    int
	Best     int
	State    RoundState
	Autoplay bool // autoplay line is high
}

type segment struct {
	text  string
	color core.Color
}

const statusGap = "   "

func (st Status) segments() []segment {
	state := segment{"PRESS START", core.ColorLabel}
	switch st.State {
	case StateRunning:
		state = segment{"RUNNING", core.ColorValue}
	case StateOver:
		state = segment{"GAME OVER", core.ColorAlert}
	}

	led := segment{"○", core.ColorLEDOff}
	if st.Autoplay {
		led = segment{"●", core.ColorLEDOn}
	}

	return []segment{
		{"score ", core.ColorLabel}, {strconv.Itoa(st.Score), core.ColorValue},
		{statusGap, core.ColorDefault},
		{"best ", core.ColorLabel}, {strconv.Itoa(st.Best), core.ColorValue},
		{statusGap, core.ColorDefault},
		state,
		{statusGap, core.ColorDefault},
		led, {" autoplay", core.ColorLabel},
	}
}

// PaintStatus resizes s to a single row and draws the status line into it.
func PaintStatus(s *core.Screen, st Status) {
	segs := st.segments()
	width := 0
	for _, seg := range segs {
		width += utf8.RuneCountInString(seg.text)
	}

	s.Resize(width, 1)
	s.Clear()
	x := 0
	for _, seg := range segs {
		s.DrawText(x, 0, seg.text, seg.color)
		x += utf8.RuneCountInString(seg.text)
	}
}
