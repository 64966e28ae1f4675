package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/avelk/marketmath/internal/ui/layout"
	"github.com/avelk/marketmath/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(s.renderItemTable(width))
	b.WriteString("\n")

	if s.notice != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render(s.notice))
		b.WriteString("\n\n")
	}

	q := s.session.Current()
	if q == nil {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("No question available."))
		b.WriteString("\n")
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Bold(true).
			Render(q.Text))
		b.WriteString("\n\n")

		if s.revealed {
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.Accent).
				Render("Answer: " + q.Answer.Text))
			b.WriteString("\n")
		}

		if s.result != nil {
			b.WriteString(s.renderFeedback(width))
		} else {
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Render("Answer: " + s.input.View()))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(s.renderClocks(width))

	return b.String()
}

// renderItemTable renders the always-visible stall table: identifier,
// quantity, total price.
func (s *QuizScreen) renderItemTable(width int) string {
	ds := s.session.Dataset()
	if ds == nil {
		return ""
	}

	var b strings.Builder
	header := fmt.Sprintf("  %-6s %9s %12s", "Item", "Quantity", "Total")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(header))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", lipgloss.Width(header)+2)))
	b.WriteString("\n")

	for _, id := range ds.Order {
		it := ds.Items[id]
		row := fmt.Sprintf("  %-6s %9d %12s", id, it.Quantity, fmt.Sprintf("$%d", it.TotalPrice))
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(row))
		b.WriteString("\n")
	}

	total := fmt.Sprintf("  %-6s %9s %12s", "", "", fmt.Sprintf("$%d", ds.Total))
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(total))
	b.WriteString("\n")

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, b.String())
}

// renderFeedback renders the verdict line after a submission.
func (s *QuizScreen) renderFeedback(width int) string {
	var b strings.Builder

	if s.result.Correct {
		b.WriteString(theme.Correct.Width(width).Align(lipgloss.Center).Render("Correct."))
	} else {
		b.WriteString(theme.Incorrect.Width(width).Align(lipgloss.Center).Render("Wrong"))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Correct answer: " + s.result.ExpectedText))
	}
	b.WriteString("\n")

	return b.String()
}

// renderClocks renders the score and the two elapsed-time displays.
func (s *QuizScreen) renderClocks(width int) string {
	attempts, correct := s.session.Score()

	lastTime := "--:--"
	if s.result != nil && s.result.SincePrevSubmit > 0 {
		lastTime = layout.FormatClock(int(s.result.SincePrevSubmit.Seconds()))
	}

	line := fmt.Sprintf("Score: %d/%d   Last time spent: %s   Total time spent: %s",
		correct, attempts, lastTime, layout.FormatClock(int(s.elapsed.Seconds())))

	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(line)
}
