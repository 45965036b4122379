package cmd

import "github.com/charmbracelet/lipgloss"

// adaptive colors look good in light/dark terminals
var (
	accentColor = lipgloss.AdaptiveColor{Light: "#2255CC", Dark: "#6C9CFF"}
	warnColor   = lipgloss.AdaptiveColor{Light: "#AA6600", Dark: "#FFCC00"}
	faultColor  = lipgloss.AdaptiveColor{Light: "#BB0000", Dark: "#FF5555"}
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	labelStyle = lipgloss.NewStyle().Faint(true)
	valueStyle = lipgloss.NewStyle().Bold(true)
	warnStyle  = lipgloss.NewStyle().Bold(true).Foreground(warnColor)
	faultStyle = lipgloss.NewStyle().Bold(true).Foreground(faultColor)
	borderSt   = lipgloss.NewStyle().Foreground(accentColor)
)
