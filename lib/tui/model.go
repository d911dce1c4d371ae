// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/bureau-foundation/frameclock/lib/frametime"
	"github.com/bureau-foundation/frameclock/lib/scenario"
)

// nameWidth is the column width for timer names. Longer names are
// truncated with an ellipsis.
const nameWidth = 16

// defaultBarWidth is used until the first WindowSizeMsg arrives.
const defaultBarWidth = 30

// frameMsg drives one frame of the loop.
type frameMsg struct{}

// Model is the bubbletea model for the timer dashboard.
type Model struct {
	scenario *scenario.Scenario
	theme    Theme
	keys     KeyMap
	heat     *HeatTracker

	selected int
	width    int

	activeBar progress.Model
	idleBar   progress.Model
}

// NewModel creates a dashboard that owns the frame loop of s.
func NewModel(s *scenario.Scenario) Model {
	model := Model{
		scenario: s,
		theme:    DefaultTheme,
		keys:     DefaultKeyMap,
		heat:     NewHeatTracker(),
	}
	model.setBarWidth(defaultBarWidth)
	return model
}

func (model *Model) setBarWidth(width int) {
	model.activeBar = progress.New(
		progress.WithSolidFill(model.theme.BarActive),
		progress.WithoutPercentage(),
		progress.WithWidth(width),
	)
	model.idleBar = progress.New(
		progress.WithSolidFill(model.theme.BarIdle),
		progress.WithoutPercentage(),
		progress.WithWidth(width),
	)
}

// Init implements tea.Model. Schedules the first frame.
func (model Model) Init() tea.Cmd {
	return model.nextFrame()
}

func (model Model) nextFrame() tea.Cmd {
	return tea.Tick(model.scenario.FrameInterval(), func(time.Time) tea.Msg {
		return frameMsg{}
	})
}

// Update implements tea.Model.
func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case frameMsg:
		fired := model.scenario.Step()
		now := model.scenario.Clock().TotalTime()
		for _, name := range fired {
			model.heat.Ignite(name, now)
		}
		return model, model.nextFrame()

	case tea.KeyMsg:
		return model.handleKey(message)

	case tea.WindowSizeMsg:
		model.width = message.Width
		// Marker, name, state, remaining, fires, and spacing take the rest.
		barWidth := message.Width - nameWidth - 40
		model.setBarWidth(max(barWidth, 10))
		return model, nil
	}
	return model, nil
}

func (model Model) handleKey(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	entries := model.scenario.Entries()
	switch {
	case key.Matches(message, model.keys.Quit):
		return model, tea.Quit
	case key.Matches(message, model.keys.Up):
		if model.selected > 0 {
			model.selected--
		}
	case key.Matches(message, model.keys.Down):
		if model.selected < len(entries)-1 {
			model.selected++
		}
	case key.Matches(message, model.keys.Toggle):
		if entry := model.selectedEntry(); entry != nil {
			model.scenario.Toggle(entry)
		}
	case key.Matches(message, model.keys.Rearm):
		if entry := model.selectedEntry(); entry != nil {
			model.scenario.Rearm(entry)
		}
	}
	return model, nil
}

func (model Model) selectedEntry() *scenario.Entry {
	entries := model.scenario.Entries()
	if model.selected < 0 || model.selected >= len(entries) {
		return nil
	}
	return entries[model.selected]
}

// Selected returns the index of the highlighted timer row.
func (model Model) Selected() int { return model.selected }

// View implements tea.Model.
func (model Model) View() string {
	var builder strings.Builder
	frames := model.scenario.Clock()

	header := lipgloss.NewStyle().Bold(true).Foreground(model.theme.HeaderForeground)
	builder.WriteString(header.Render(fmt.Sprintf(
		"frame %d   total %.2fs   delta %.1fms   timers %d",
		model.scenario.Frame(),
		frametime.Seconds(frames.TotalTime()),
		frames.DeltaIn(time.Millisecond),
		model.scenario.Registry().Len(),
	)))
	now := frames.TotalTime()
	if model.heat.HasHot(now) {
		builder.WriteString(lipgloss.NewStyle().Foreground(model.theme.StateStopped).Render("  ●"))
	}
	builder.WriteString("\n\n")

	for index, entry := range model.scenario.Entries() {
		builder.WriteString(model.renderRow(index, entry, now))
		builder.WriteString("\n")
	}

	builder.WriteString("\n")
	builder.WriteString(lipgloss.NewStyle().Foreground(model.theme.HelpText).Render(model.helpLine()))
	return builder.String()
}

func (model Model) renderRow(index int, entry *scenario.Entry, now time.Duration) string {
	timer := entry.Timer()
	registered := model.scenario.Registered(entry)

	state, stateColor := "idle", model.theme.StateIdle
	switch {
	case !registered:
		state, stateColor = "reaped", model.theme.StateReaped
	case timer.Active():
		state, stateColor = "active", model.theme.StateActive
	case timer.HasElapsedOnce() || timer.Progress() > 0:
		state, stateColor = "stopped", model.theme.StateStopped
	}

	bar := model.idleBar
	if registered && timer.Active() {
		bar = model.activeBar
	}

	marker := "  "
	if index == model.selected {
		marker = "> "
	}
	name := ansi.Truncate(entry.Name, nameWidth, "…")

	row := fmt.Sprintf("%s%-*s %s %s %8s  x%d",
		marker,
		nameWidth, name,
		lipgloss.NewStyle().Foreground(stateColor).Width(8).Render(state),
		bar.ViewAs(timer.Fraction()),
		formatRemaining(timer.Remaining()),
		timer.ElapsedCount(),
	)

	style := lipgloss.NewStyle().Foreground(model.theme.NormalText)
	if heat := model.heat.Heat(entry.Name, now); heat > 0.5 {
		style = style.Background(model.theme.FireAccent)
	} else if heat > 0 {
		style = style.Background(model.theme.FireAccentDim)
	}
	if index == model.selected {
		style = style.Foreground(model.theme.SelectedForeground).Bold(true)
	}
	return style.Render(row)
}

func (model Model) helpLine() string {
	bindings := []key.Binding{model.keys.Up, model.keys.Down, model.keys.Toggle, model.keys.Rearm, model.keys.Quit}
	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		help := binding.Help()
		parts = append(parts, help.Key+" "+help.Desc)
	}
	return strings.Join(parts, "  ·  ")
}

// formatRemaining renders a countdown compactly: "1.25s", "2m05s".
func formatRemaining(remaining time.Duration) string {
	if remaining < time.Minute {
		return fmt.Sprintf("%.2fs", frametime.Seconds(remaining))
	}
	remaining = remaining.Round(time.Second)
	return fmt.Sprintf("%dm%02ds", int(remaining/time.Minute), int(remaining%time.Minute/time.Second))
}
