// ABOUTME: Rendering for the deck TUI
// ABOUTME: Draws the waveform strip, transport line and key help
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// barLevels maps a [0,1] amplitude to a block glyph.
var barLevels = []rune(" ▁▂▃▄▅▆▇█")

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	playedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	upcomingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// View renders the TUI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n\n")
	b.WriteString(m.renderWaveform())
	b.WriteString("\n")
	b.WriteString(m.renderTransport())
	b.WriteString("\n\n")
	b.WriteString(statusStyle.Render("space:Play/Pause  ←/→:Seek  +/-:Volume  s:Stop  q:Quit"))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("error: %v", m.err)))
		b.WriteString("\n")
	}

	return b.String()
}

// renderWaveform draws the amplitude envelope across the full width,
// coloring the already-played span differently from the rest.
func (m Model) renderWaveform() string {
	width := m.width
	if width < 8 {
		width = 8
	}

	cursor := 0
	if m.duration > 0 {
		cursor = int(m.position / m.duration * float64(width))
		if cursor > width {
			cursor = width
		}
	}

	var played, upcoming strings.Builder
	for col := 0; col < width; col++ {
		glyph := barLevels[levelIndex(m.peakAt(col, width))]
		if col < cursor {
			played.WriteRune(glyph)
		} else {
			upcoming.WriteRune(glyph)
		}
	}

	return playedStyle.Render(played.String()) + upcomingStyle.Render(upcoming.String())
}

// peakAt samples the envelope for one display column.
func (m Model) peakAt(col, width int) float64 {
	if len(m.peaks) == 0 {
		return 0
	}
	idx := col * len(m.peaks) / width
	if idx > len(m.peaks)-1 {
		idx = len(m.peaks) - 1
	}
	return m.peaks[idx]
}

func levelIndex(peak float64) int {
	if peak < 0 {
		peak = 0
	}
	if peak > 1 {
		peak = 1
	}
	idx := int(peak * float64(len(barLevels)-1))
	return idx
}

// renderTransport draws state, position/duration and the volume bar.
func (m Model) renderTransport() string {
	state := "stopped"
	switch {
	case m.playing:
		state = "playing"
	case m.paused:
		state = "paused"
	}

	return fmt.Sprintf("[%s] %s / %s   vol %3.0f%%",
		state, formatTime(m.position), formatTime(m.duration), m.volume*100)
}

// formatTime renders seconds as m:ss.
func formatTime(secs float64) string {
	if secs < 0 {
		secs = 0
	}
	whole := int(secs)
	return fmt.Sprintf("%d:%02d", whole/60, whole%60)
}
