package tui

import "github.com/charmbracelet/lipgloss"

// Styles bundles the lipgloss styles for the form.
type Styles struct {
	Title           lipgloss.Style
	Subtitle        lipgloss.Style
	Label           lipgloss.Style
	InputBox        lipgloss.Style
	InputBoxFocused lipgloss.Style
	Button          lipgloss.Style
	ButtonFocused   lipgloss.Style
	ErrorBanner     lipgloss.Style
	Help            lipgloss.Style
}

// DefaultStyles returns the default form styling.
func DefaultStyles() Styles {
	inputBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	button := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 3)

	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("62")).
			Padding(0, 1),
		Subtitle:        lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Label:           lipgloss.NewStyle().Bold(true),
		InputBox:        inputBox,
		InputBoxFocused: inputBox.BorderForeground(lipgloss.Color("12")),
		Button:          button,
		ButtonFocused:   button.BorderForeground(lipgloss.Color("12")).Bold(true),
		ErrorBanner: lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Bold(true).
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("9")).
			Padding(0, 1),
		Help: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}
