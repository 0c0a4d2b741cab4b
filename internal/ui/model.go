// ABOUTME: Bubbletea model for the deck TUI
// ABOUTME: Defines application state and update logic
package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// seekStep is how far the arrow keys jump, in seconds.
const seekStep = 5.0

// Controller is the slice of the player API the TUI drives.
type Controller interface {
	Play() error
	Pause() error
	Stop()
	Seek(positionSecs float64) error
	SetVolume(volume float64) error
	Duration() float64
	Position() float64
	IsPlaying() bool
	IsPaused() bool
}

// tickMsg drives the position refresh.
type tickMsg time.Time

// Model represents the TUI state
type Model struct {
	ctrl  Controller
	title string
	peaks []float64

	// Playback snapshot, refreshed every tick
	position float64
	duration float64
	playing  bool
	paused   bool

	volume float64
	err    error

	// Dimensions
	width  int
	height int
}

// NewModel creates a new TUI model for one loaded track.
func NewModel(ctrl Controller, title string, peaks []float64) Model {
	return Model{
		ctrl:   ctrl,
		title:  title,
		peaks:  peaks,
		volume: 1.0,
	}
}

// Init starts the refresh ticker
func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tickMsg:
		m.refresh()
		return m, tick()
	}

	return m, nil
}

// refresh snapshots the controller state for the next render.
func (m *Model) refresh() {
	if m.ctrl == nil {
		return
	}
	m.position = m.ctrl.Position()
	m.duration = m.ctrl.Duration()
	m.playing = m.ctrl.IsPlaying()
	m.paused = m.ctrl.IsPaused()
}

// handleKey handles keyboard input
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.ctrl == nil {
		if msg.String() == "q" || msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m, nil
	}

	switch msg.String() {
	case "q", "ctrl+c":
		m.ctrl.Stop()
		return m, tea.Quit

	case " ":
		if m.playing {
			m.err = m.ctrl.Pause()
		} else {
			m.err = m.ctrl.Play()
		}

	case "s":
		m.ctrl.Stop()

	case "left":
		target := m.ctrl.Position() - seekStep
		if target < 0 {
			target = 0
		}
		m.err = m.seekAndResume(target)

	case "right":
		m.err = m.seekAndResume(m.ctrl.Position() + seekStep)

	case "+", "=":
		m.volume = clampVolume(m.volume + 0.05)
		m.err = m.ctrl.SetVolume(m.volume)

	case "-":
		m.volume = clampVolume(m.volume - 0.05)
		m.err = m.ctrl.SetVolume(m.volume)
	}

	m.refresh()
	return m, nil
}

// seekAndResume seeks and restarts playback if it was running; seeking
// always leaves the controller stopped, mirroring load semantics.
func (m *Model) seekAndResume(target float64) error {
	wasPlaying := m.playing
	if err := m.ctrl.Seek(target); err != nil {
		return err
	}
	if err := m.ctrl.SetVolume(m.volume); err != nil {
		return err
	}
	if wasPlaying {
		return m.ctrl.Play()
	}
	return nil
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
