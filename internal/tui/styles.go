package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	colorWhite     = lipgloss.Color("#FFFFFF")
	colorLightGray = lipgloss.Color("#CBD5E1")
	colorGray      = lipgloss.Color("#94A3B8")
	colorDarkGray  = lipgloss.Color("#475569")
	colorSlate     = lipgloss.Color("#1E293B")
	colorIndigo    = lipgloss.Color("#6366F1")
	colorPurple    = lipgloss.Color("#9333EA")
	colorGreen     = lipgloss.Color("#22C55E")
	colorRed       = lipgloss.Color("#EF4444")
)

var (
	logoStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite).
			Background(colorPurple).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(colorGray)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorLightGray)

	hintStyle = lipgloss.NewStyle().
			Foreground(colorGray).
			Italic(true)

	languageStyle = lipgloss.NewStyle().
			Foreground(colorGray).
			Padding(0, 1)

	languageSelectedStyle = lipgloss.NewStyle().
				Foreground(colorWhite).
				Background(colorIndigo).
				Bold(true).
				Padding(0, 1)

	buttonStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Background(colorIndigo).
			Bold(true).
			Padding(0, 2)

	buttonDisabledStyle = lipgloss.NewStyle().
				Foreground(colorGray).
				Background(colorDarkGray).
				Padding(0, 2)

	panelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colorSlate).
			Padding(0, 1)

	placeholderStyle = lipgloss.NewStyle().
				Foreground(colorGray).
				Align(lipgloss.Center)

	errorOutputStyle = lipgloss.NewStyle().
				Foreground(colorRed)

	toastSuccessStyle = lipgloss.NewStyle().
				Foreground(colorGreen).
				Bold(true)

	toastErrorStyle = lipgloss.NewStyle().
			Foreground(colorRed).
			Bold(true)

	toastLeavingStyle = lipgloss.NewStyle().
				Foreground(colorDarkGray)
)
