package summary

import "github.com/charmbracelet/lipgloss"

// Theme holds the styles used by the severity summary.
type Theme struct {
	Name   string
	High   lipgloss.Style
	Medium lipgloss.Style
	Low    lipgloss.Style
	Other  lipgloss.Style
	Bold   lipgloss.Style
	Bullet string
}

// DefaultTheme colors severities red, orange and blue.
func DefaultTheme() Theme {
	return Theme{
		Name:   "default",
		High:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")), // red
		Medium: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // orange
		Low:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")),  // blue
		Other:  lipgloss.NewStyle().Foreground(lipgloss.Color("242")), // gray
		Bold:   lipgloss.NewStyle().Bold(true),
		Bullet: "●",
	}
}

// MonoTheme returns a monochrome theme (no colors).
func MonoTheme() Theme {
	return Theme{
		Name:   "mono",
		High:   lipgloss.NewStyle(),
		Medium: lipgloss.NewStyle(),
		Low:    lipgloss.NewStyle(),
		Other:  lipgloss.NewStyle(),
		Bold:   lipgloss.NewStyle(),
		Bullet: "-",
	}
}

// ThemeByName returns a theme by name, defaulting to DefaultTheme.
func ThemeByName(name string) Theme {
	switch name {
	case "mono":
		return MonoTheme()
	default:
		return DefaultTheme()
	}
}

func (t Theme) styleFor(severity string) lipgloss.Style {
	switch severity {
	case "High":
		return t.High
	case "Medium":
		return t.Medium
	case "Low":
		return t.Low
	default:
		return t.Other
	}
}
