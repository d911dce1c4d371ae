// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette of the timer dashboard. All colors
// use lipgloss ANSI 256-color codes for broad terminal compatibility.
type Theme struct {
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	SelectedBackground lipgloss.Color
	SelectedForeground lipgloss.Color

	// Timer states.
	StateActive  lipgloss.Color
	StateStopped lipgloss.Color
	StateIdle    lipgloss.Color
	StateReaped  lipgloss.Color

	// Countdown bar fills.
	BarActive string
	BarIdle   string

	HeaderForeground lipgloss.Color
	HelpText         lipgloss.Color

	// Background tints for a row that just fired, strongest first.
	FireAccent    lipgloss.Color
	FireAccentDim lipgloss.Color
}

// DefaultTheme is the built-in dark-terminal color scheme.
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	SelectedBackground: lipgloss.Color("236"),
	SelectedForeground: lipgloss.Color("255"),

	StateActive:  lipgloss.Color("114"), // green
	StateStopped: lipgloss.Color("220"), // amber
	StateIdle:    lipgloss.Color("75"),  // blue
	StateReaped:  lipgloss.Color("240"), // dim gray

	BarActive: "114",
	BarIdle:   "240",

	HeaderForeground: lipgloss.Color("255"),
	HelpText:         lipgloss.Color("241"),

	FireAccent:    lipgloss.Color("58"), // dark amber
	FireAccentDim: lipgloss.Color("236"),
}
