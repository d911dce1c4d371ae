// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bureau-foundation/frameclock/lib/clock"
	"github.com/bureau-foundation/frameclock/lib/config"
	"github.com/bureau-foundation/frameclock/lib/scenario"
)

var epoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func newTestModel(t *testing.T) (Model, *clock.FakeClock, *scenario.Scenario) {
	t.Helper()
	source := clock.Fake(epoch)
	cfg := &config.Config{
		FrameRate: 2,
		Timers: []config.TimerConfig{
			{Name: "once", Duration: time.Second, Start: config.StartImmediate},
			{Name: "every", Duration: time.Second, Repeat: true, Start: config.StartImmediate},
			{Name: "a-very-long-timer-name", Duration: 3 * time.Minute, Start: config.StartManual},
		},
	}
	s := scenario.New(cfg, source, nil)
	return NewModel(s), source, s
}

// frame advances the source by one interval and delivers a frame.
func frame(t *testing.T, model Model, source *clock.FakeClock) Model {
	t.Helper()
	source.Advance(500 * time.Millisecond)
	updated, command := model.Update(frameMsg{})
	if command == nil {
		t.Fatal("frame did not schedule the next frame")
	}
	return updated.(Model)
}

func press(t *testing.T, model Model, message tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	updated, command := model.Update(message)
	return updated.(Model), command
}

func runes(text string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)}
}

func TestInitSchedulesFrame(t *testing.T) {
	model, _, _ := newTestModel(t)
	if model.Init() == nil {
		t.Fatal("Init returned no command")
	}
}

func TestFrameStepsScenarioAndIgnites(t *testing.T) {
	model, source, s := newTestModel(t)

	model = frame(t, model, source)
	model = frame(t, model, source)

	if s.Frame() != 2 {
		t.Fatalf("scenario stepped %d frames, want 2", s.Frame())
	}
	now := s.Clock().TotalTime()
	if model.heat.Heat("once", now) != 1.0 || model.heat.Heat("every", now) != 1.0 {
		t.Fatal("fired timers not ignited")
	}
	once, _ := s.Lookup("once")
	if s.Registered(once) {
		t.Fatal("one-shot timer not reaped by the frame")
	}
}

func TestSelectionMovesWithinBounds(t *testing.T) {
	model, _, _ := newTestModel(t)

	model, _ = press(t, model, tea.KeyMsg{Type: tea.KeyUp})
	if model.Selected() != 0 {
		t.Fatalf("selection moved above the first row: %d", model.Selected())
	}
	for range 5 {
		model, _ = press(t, model, runes("j"))
	}
	if model.Selected() != 2 {
		t.Fatalf("selection = %d, want clamp at 2", model.Selected())
	}
	model, _ = press(t, model, runes("k"))
	if model.Selected() != 1 {
		t.Fatalf("selection = %d, want 1", model.Selected())
	}
}

func TestToggleAndRearmKeys(t *testing.T) {
	model, source, s := newTestModel(t)
	every, _ := s.Lookup("every")

	model, _ = press(t, model, tea.KeyMsg{Type: tea.KeyDown})
	model, _ = press(t, model, tea.KeyMsg{Type: tea.KeySpace})
	if every.Timer().Active() {
		t.Fatal("space did not stop the selected timer")
	}

	model, _ = press(t, model, tea.KeyMsg{Type: tea.KeySpace})
	if !every.Timer().Active() {
		t.Fatal("space did not resume the selected timer")
	}

	model = frame(t, model, source)
	model, _ = press(t, model, runes("r"))
	if every.Timer().Progress() != 0 {
		t.Fatalf("r did not reset progress: %v", every.Timer().Progress())
	}
}

func TestQuit(t *testing.T) {
	model, _, _ := newTestModel(t)
	_, command := press(t, model, runes("q"))
	if command == nil {
		t.Fatal("q returned no command")
	}
	if _, ok := command().(tea.QuitMsg); !ok {
		t.Fatal("q did not quit")
	}
}

func TestViewListsTimers(t *testing.T) {
	model, source, _ := newTestModel(t)
	updated, _ := model.Update(tea.WindowSizeMsg{Width: 100, Height: 20})
	model = updated.(Model)
	model = frame(t, model, source)
	model = frame(t, model, source)

	view := model.View()
	for _, want := range []string{"frame 2", "once", "every", "reaped", "a-very-long-tim", "stop/resume"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
	if strings.Contains(view, "a-very-long-timer-name") {
		t.Error("long timer name not truncated")
	}
}

func TestFormatRemaining(t *testing.T) {
	tests := []struct {
		remaining time.Duration
		want      string
	}{
		{1250 * time.Millisecond, "1.25s"},
		{0, "0.00s"},
		{125 * time.Second, "2m05s"},
	}
	for _, test := range tests {
		if got := formatRemaining(test.remaining); got != test.want {
			t.Errorf("formatRemaining(%v) = %q, want %q", test.remaining, got, test.want)
		}
	}
}
