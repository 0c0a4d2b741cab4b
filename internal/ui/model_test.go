// ABOUTME: Tests for TUI model and state management
// ABOUTME: Tests key handling against a fake controller
package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

// fakeController records calls from the model.
type fakeController struct {
	playing    bool
	paused     bool
	position   float64
	duration   float64
	volume     float64
	stopped    bool
	seekTarget float64
	seeked     bool
}

func (c *fakeController) Play() error {
	c.playing = true
	c.paused = false
	return nil
}

func (c *fakeController) Pause() error {
	c.playing = false
	c.paused = true
	return nil
}

func (c *fakeController) Stop() {
	c.playing = false
	c.paused = false
	c.stopped = true
}

func (c *fakeController) Seek(positionSecs float64) error {
	c.seekTarget = positionSecs
	c.seeked = true
	c.playing = false
	c.position = positionSecs
	return nil
}

func (c *fakeController) SetVolume(volume float64) error {
	c.volume = volume
	return nil
}

func (c *fakeController) Duration() float64 { return c.duration }
func (c *fakeController) Position() float64 { return c.position }
func (c *fakeController) IsPlaying() bool   { return c.playing }
func (c *fakeController) IsPaused() bool    { return c.paused }

func keyMsg(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModel(t *testing.T) {
	model := NewModel(nil, "track.mp3", nil)

	if model.title != "track.mp3" {
		t.Errorf("expected title 'track.mp3', got %q", model.title)
	}
	if model.volume != 1.0 {
		t.Errorf("expected default volume 1.0, got %v", model.volume)
	}
}

func TestSpaceTogglesPlayback(t *testing.T) {
	ctrl := &fakeController{duration: 60}
	model := NewModel(ctrl, "t", nil)

	updated, _ := model.Update(keyMsg(" "))
	model = updated.(Model)
	if !ctrl.playing {
		t.Error("expected controller playing after first space")
	}

	updated, _ = model.Update(keyMsg(" "))
	model = updated.(Model)
	if !ctrl.paused {
		t.Error("expected controller paused after second space")
	}

	_ = model
}

func TestSeekKeysClampAtStart(t *testing.T) {
	ctrl := &fakeController{duration: 60, position: 2}
	model := NewModel(ctrl, "t", nil)

	updated, _ := model.Update(tea.KeyMsg{Type: tea.KeyLeft})
	_ = updated

	if !ctrl.seeked {
		t.Fatal("expected a seek from the left arrow")
	}
	if ctrl.seekTarget != 0 {
		t.Errorf("expected seek clamped to 0, got %v", ctrl.seekTarget)
	}
}

func TestSeekResumesWhenPlaying(t *testing.T) {
	ctrl := &fakeController{duration: 60, position: 10, playing: true}
	model := NewModel(ctrl, "t", nil)
	model.refresh()

	updated, _ := model.Update(tea.KeyMsg{Type: tea.KeyRight})
	_ = updated

	if ctrl.seekTarget != 15 {
		t.Errorf("expected seek to 15, got %v", ctrl.seekTarget)
	}
	if !ctrl.playing {
		t.Error("expected playback resumed after seek while playing")
	}
}

func TestVolumeKeysClamp(t *testing.T) {
	ctrl := &fakeController{duration: 60}
	model := NewModel(ctrl, "t", nil)

	var updated tea.Model = model
	for i := 0; i < 5; i++ {
		updated, _ = updated.(Model).Update(keyMsg("+"))
	}
	if got := updated.(Model).volume; got != 1.0 {
		t.Errorf("expected volume clamped at 1.0, got %v", got)
	}

	for i := 0; i < 30; i++ {
		updated, _ = updated.(Model).Update(keyMsg("-"))
	}
	if got := updated.(Model).volume; got != 0.0 {
		t.Errorf("expected volume clamped at 0.0, got %v", got)
	}
}

func TestStopKey(t *testing.T) {
	ctrl := &fakeController{duration: 60, playing: true}
	model := NewModel(ctrl, "t", nil)

	model.Update(keyMsg("s"))

	if !ctrl.stopped {
		t.Error("expected controller stopped")
	}
}

func TestQuitStopsPlayback(t *testing.T) {
	ctrl := &fakeController{duration: 60, playing: true}
	model := NewModel(ctrl, "t", nil)

	_, cmd := model.Update(keyMsg("q"))

	if !ctrl.stopped {
		t.Error("expected controller stopped on quit")
	}
	if cmd == nil {
		t.Error("expected a quit command")
	}
}

func TestViewRendersWaveform(t *testing.T) {
	ctrl := &fakeController{duration: 60, position: 30}
	peaks := []float64{0, 0.25, 0.5, 0.75, 1.0}
	model := NewModel(ctrl, "track.mp3", peaks)
	model.width = 40
	model.refresh()

	out := model.View()
	if out == "" || out == "Loading..." {
		t.Fatalf("expected rendered view, got %q", out)
	}
}
