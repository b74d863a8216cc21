// Package tui implements the interactive head entry form.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tdewit/opbarst/pkg/output"
	"github.com/tdewit/opbarst/pkg/safety"
	"github.com/tdewit/opbarst/pkg/sanitize"
)

// focusArea identifies the form element that receives input.
type focusArea int

const (
	focusActual focusArea = iota
	focusCritical
	focusCalculate
	focusCount
)

// Model is the bubbletea model for the head entry form. Field values hold
// sanitized text only; the last result stays on screen until a later
// evaluation succeeds.
type Model struct {
	actual    textinput.Model
	critical  textinput.Model
	focus     focusArea
	evaluator *safety.Evaluator
	result    *safety.Evaluation
	errText   string
	styles    Styles
	width     int
}

// New creates the form model around an evaluator.
func New(evaluator *safety.Evaluator) Model {
	actual := textinput.New()
	actual.Placeholder = "bijv. 10.50"
	actual.CharLimit = 10
	actual.Width = 24
	actual.Focus()

	critical := textinput.New()
	critical.Placeholder = "bijv. 12.00"
	critical.CharLimit = 10
	critical.Width = 24

	return Model{
		actual:    actual,
		critical:  critical,
		focus:     focusActual,
		evaluator: evaluator,
		styles:    DefaultStyles(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "down":
			m.setFocus((m.focus + 1) % focusCount)
			return m, nil
		case "shift+tab", "up":
			m.setFocus((m.focus + focusCount - 1) % focusCount)
			return m, nil
		case "enter":
			m.evaluate()
			return m, nil
		}
	}

	// Route everything else to the focused field, then re-sanitize it
	var cmd tea.Cmd
	switch m.focus {
	case focusActual:
		m.actual, cmd = m.actual.Update(msg)
		clean(&m.actual)
	case focusCritical:
		m.critical, cmd = m.critical.Update(msg)
		clean(&m.critical)
	}
	return m, cmd
}

// setFocus moves keyboard focus and keeps the inputs in sync.
func (m *Model) setFocus(area focusArea) {
	m.focus = area
	m.actual.Blur()
	m.critical.Blur()
	switch area {
	case focusActual:
		m.actual.Focus()
	case focusCritical:
		m.critical.Focus()
	}
}

// clean reapplies the numeric sanitizer after a keystroke reached a field.
func clean(in *textinput.Model) {
	value := in.Value()
	if cleaned := sanitize.Numeric(value); cleaned != value {
		in.SetValue(cleaned)
		in.CursorEnd()
	}
}

// evaluate runs the safety evaluation on the current field values. A
// validation failure fills the error banner and leaves the last result alone.
func (m *Model) evaluate() {
	eval, err := m.evaluator.EvaluateStrings(m.actual.Value(), m.critical.Value())
	if err != nil {
		m.errText = err.Error()
		return
	}
	m.errText = ""
	m.result = &eval
}

// View implements tea.Model.
func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(m.styles.Title.Render(" Opbarstcontrole "))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Subtitle.Render("Veiligheid tegen hydraulisch opbarsten van de deklaag"))
	sb.WriteString("\n\n")

	sb.WriteString(m.renderField("Actuele stijghoogte (m)", m.actual, m.focus == focusActual))
	sb.WriteString("\n")
	sb.WriteString(m.renderField("Kritieke stijghoogte (m)", m.critical, m.focus == focusCritical))
	sb.WriteString("\n")

	button := m.styles.Button
	if m.focus == focusCalculate {
		button = m.styles.ButtonFocused
	}
	sb.WriteString(button.Render("Bereken"))
	sb.WriteString("\n")

	if m.errText != "" {
		banner := m.styles.ErrorBanner
		if m.width > 0 {
			banner = banner.MaxWidth(m.width)
		}
		sb.WriteString("\n")
		sb.WriteString(banner.Render(m.errText))
		sb.WriteString("\n")
	}

	if m.result != nil {
		sb.WriteString("\n")
		sb.WriteString(output.Report(*m.result))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(m.styles.Help.Render("[Tab] veld  [Enter] bereken  [Esc] afsluiten"))

	return sb.String()
}

// renderField draws a labeled input with a focus-aware border.
func (m Model) renderField(label string, in textinput.Model, focused bool) string {
	box := m.styles.InputBox
	if focused {
		box = m.styles.InputBoxFocused
	}
	return m.styles.Label.Render(label) + "\n" + box.Render(in.View()) + "\n"
}

// Run starts the interactive form in its own terminal screen and blocks
// until the user quits.
func Run(evaluator *safety.Evaluator) error {
	p := tea.NewProgram(New(evaluator), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
