// Package output renders safety evaluations for the terminal.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/tdewit/opbarst/pkg/content"
	"github.com/tdewit/opbarst/pkg/safety"
)

// Format represents the output format type.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Formatter handles output formatting.
type Formatter struct {
	format Format
	writer io.Writer
}

// NewFormatter creates a new formatter.
func NewFormatter(format Format, writer io.Writer) *Formatter {
	return &Formatter{
		format: format,
		writer: writer,
	}
}

// Render outputs the evaluation in the configured format.
func (f *Formatter) Render(eval safety.Evaluation) error {
	switch f.format {
	case FormatJSON:
		return f.renderJSON(eval)
	default:
		return f.renderText(eval)
	}
}

// renderJSON outputs the evaluation and its resolved advice as JSON.
func (f *Formatter) renderJSON(eval safety.Evaluation) error {
	output := struct {
		Evaluation safety.Evaluation `json:"evaluation"`
		Advice     content.Text      `json:"advice"`
	}{
		Evaluation: eval,
		Advice:     content.For(eval.Tier, eval.TargetLevel),
	}

	enc := json.NewEncoder(f.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

// renderText outputs the styled report.
func (f *Formatter) renderText(eval safety.Evaluation) error {
	_, err := fmt.Fprintln(f.writer, Report(eval))
	return err
}

// Report renders the styled report block for an evaluation: the computed
// values as a table, then the tier status with its advice. The interactive
// form embeds the same block in its results section.
func Report(eval safety.Evaluation) string {
	// Define styles
	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("15")).
		Background(lipgloss.Color("62")).
		Padding(0, 1)

	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	// Tier colors
	tierStyles := map[safety.Tier]lipgloss.Style{
		safety.TierSafe:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true), // Green
		safety.TierWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true), // Yellow
		safety.TierDanger:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),  // Red
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("12")).
		MarginBottom(1)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Controle opbarstveiligheid"))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("═", 48))
	b.WriteString("\n\n")

	rows := [][]string{
		{"Actuele stijghoogte", fmt.Sprintf("%.2f m", eval.ActualLevel)},
		{"Kritieke stijghoogte", fmt.Sprintf("%.2f m", eval.CriticalLevel)},
		{"Veiligheidsfactor", fmt.Sprintf("%.2f", eval.Factor)},
		{"Veiligheidsmarge", fmt.Sprintf("%.2f m", eval.Margin)},
		{"Streefpeil", fmt.Sprintf("%.2f m", eval.TargetLevel)},
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers("GROOTHEID", "WAARDE").
		Rows(rows...)

	b.WriteString(t.String())
	b.WriteString("\n\n")

	text := content.For(eval.Tier, eval.TargetLevel)
	b.WriteString(tierStyles[eval.Tier].Render(strings.ToUpper(text.Title)))
	b.WriteString("\n")
	b.WriteString(text.Description)
	b.WriteString("\n")
	b.WriteString(text.Recommendation)

	return b.String()
}
