// Package ui renders screens as styled terminal text.
package ui

import "github.com/charmbracelet/lipgloss"

var (
	purple = lipgloss.Color("#8b5cf6")
	blue   = lipgloss.Color("#3b82f6")
	red    = lipgloss.Color("#ef4444")
	green  = lipgloss.Color("#22c55e")
	muted  = lipgloss.Color("#9ca3af")
)

var (
	logoLeftStyle  = lipgloss.NewStyle().Bold(true).Foreground(purple)
	logoRightStyle = lipgloss.NewStyle().Bold(true).Foreground(blue)
	navStyle       = lipgloss.NewStyle().Foreground(muted)
	navActiveStyle = lipgloss.NewStyle().Bold(true).Underline(true).Foreground(blue)
	avatarStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffffff")).Background(purple).Padding(0, 1)
	headerStyle    = lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderBottom(true).BorderForeground(muted)

	titleStyle    = lipgloss.NewStyle().Bold(true)
	accentStyle   = lipgloss.NewStyle().Bold(true).Foreground(purple)
	subtitleStyle = lipgloss.NewStyle().Foreground(muted)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(muted).
			Padding(0, 1).
			Width(64)
	nameStyle  = lipgloss.NewStyle().Bold(true)
	likedStyle = lipgloss.NewStyle().Foreground(red)

	errorStyle  = lipgloss.NewStyle().Foreground(red)
	bannerStyle = lipgloss.NewStyle().Bold(true).Foreground(red).Border(lipgloss.NormalBorder()).BorderForeground(red).Padding(0, 1)
	noticeStyle = lipgloss.NewStyle().Foreground(green)
)
