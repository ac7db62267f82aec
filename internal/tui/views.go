package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"titanic-dash/internal/chart"
	"titanic-dash/internal/domain"
)

// Styles groups the lipgloss styles used by the view.
type Styles struct {
	Header   lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Panel    lipgloss.Style
	Label    lipgloss.Style
	Saved    lipgloss.Style
	Perished lipgloss.Style
	Notice   lipgloss.Style
	Error    lipgloss.Style
	Quote    lipgloss.Style
}

// DefaultStyles returns the navy-and-gold palette.
func DefaultStyles() Styles {
	gold := lipgloss.Color("#" + chart.ColorSaved)
	brass := lipgloss.Color("#" + chart.ColorStroke)
	crimson := lipgloss.Color("#" + chart.ColorPerished)
	ivory := lipgloss.Color("#" + chart.ColorText)

	return Styles{
		Header:   lipgloss.NewStyle().Bold(true).Foreground(gold).MarginBottom(1),
		Title:    lipgloss.NewStyle().Bold(true).Foreground(gold),
		Subtitle: lipgloss.NewStyle().Foreground(ivory),
		Panel:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(brass).Padding(0, 1),
		Label:    lipgloss.NewStyle().Foreground(brass).Width(8),
		Saved:    lipgloss.NewStyle().Bold(true).Foreground(gold),
		Perished: lipgloss.NewStyle().Bold(true).Foreground(crimson),
		Notice:   lipgloss.NewStyle().Foreground(gold).Italic(true),
		Error:    lipgloss.NewStyle().Foreground(crimson),
		Quote:    lipgloss.NewStyle().Italic(true).Foreground(brass).MarginTop(1),
	}
}

// View implements tea.Model.
func (m Model) View() string {
	sections := []string{
		m.styles.Header.Render("R.M.S. Titanic"),
		m.renderControls(),
		m.renderSummary(),
	}
	if m.sel.SoulsUnmapped {
		sections = append(sections, m.styles.Notice.Render(
			fmt.Sprintf("%q has no entry in the souls mapping; no sex filter is applied.", m.sel.Souls)))
	}
	if m.err != nil {
		sections = append(sections, m.styles.Error.Render(m.err.Error()))
	}
	sections = append(sections,
		m.styles.Quote.Render(chart.FooterQuote),
		m.help.View(m.keys),
	)
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderControls() string {
	rows := []string{
		m.styles.Label.Render("Souls") + domain.SoulsOptions[m.soulsIdx],
		m.styles.Label.Render("Deck") + domain.DeckOptions[m.deckIdx],
		m.styles.Label.Render("Ages") + fmt.Sprintf("%d–%d", m.ages.Lo, m.ages.Hi),
	}
	return m.styles.Panel.Render(strings.Join(rows, "\n"))
}

func (m Model) renderSummary() string {
	d := chart.FromSummary(m.summary)
	if d.Empty() {
		return m.styles.Panel.Render(lipgloss.JoinVertical(lipgloss.Left,
			m.styles.Title.Render("No souls match these filters."),
			m.styles.Subtitle.Render(d.Subtitle),
		))
	}

	counts := fmt.Sprintf("%s  %s",
		m.styles.Saved.Render(fmt.Sprintf("%s %s", chart.FormatCount(m.summary.Survived), "saved")),
		m.styles.Perished.Render(fmt.Sprintf("%s %s", chart.FormatCount(m.summary.Perished), "perished at sea")),
	)
	rate := m.summary.SurvivalRate()
	return m.styles.Panel.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Title.Render(d.Title),
		m.styles.Subtitle.Render(d.Subtitle),
		"",
		counts,
		m.progress.ViewAs(rate)+fmt.Sprintf(" %.1f%% saved", rate*100),
	))
}
