package ui

import "github.com/charmbracelet/lipgloss"

var (
	overdueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	dueSoonStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	doneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Strikethrough(true)
	bannerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
)

// StyleOverdue marks a cell for a task whose due date has passed.
func StyleOverdue(value string) string {
	return render(overdueStyle, value)
}

// StyleDueSoon marks a cell for a task due within 24 hours.
func StyleDueSoon(value string) string {
	return render(dueSoonStyle, value)
}

// StyleDone dims a cell for a completed task.
func StyleDone(value string) string {
	return render(doneStyle, value)
}

// StyleBanner emphasizes the due-soon advisory heading.
func StyleBanner(value string) string {
	return render(bannerStyle, value)
}

func render(style lipgloss.Style, value string) string {
	if !ANSIEnabled() {
		return value
	}
	return style.Render(value)
}
