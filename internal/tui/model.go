// Package tui is a terminal rendition of the survival dashboard.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"titanic-dash/internal/domain"
	"titanic-dash/internal/service/survival"
)

// Model holds the control state and the latest pipeline result.
type Model struct {
	svc      *survival.Service
	keys     KeyMap
	help     help.Model
	progress progress.Model
	styles   Styles

	soulsIdx int
	deckIdx  int
	ages     domain.AgeRange

	sel     domain.Selection
	summary domain.Summary
	err     error

	width int
}

// New creates a Model showing the unfiltered table.
func New(svc *survival.Service) Model {
	bar := progress.New(progress.WithSolidFill("#ffd700"))
	bar.ShowPercentage = false
	bar.Width = 40

	m := Model{
		svc:      svc,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		progress: bar,
		styles:   DefaultStyles(),
		ages:     domain.FullAgeRange(),
	}
	m.recompute()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.progress.Width = max(10, min(msg.Width-4, 60))
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Souls):
			m.soulsIdx = (m.soulsIdx + 1) % len(domain.SoulsOptions)
		case key.Matches(msg, m.keys.Deck):
			m.deckIdx = (m.deckIdx + 1) % len(domain.DeckOptions)
		case key.Matches(msg, m.keys.LoDown):
			m.ages.Lo = max(domain.MinAge, m.ages.Lo-1)
		case key.Matches(msg, m.keys.LoUp):
			m.ages.Lo = min(m.ages.Hi, m.ages.Lo+1)
		case key.Matches(msg, m.keys.HiDown):
			m.ages.Hi = max(m.ages.Lo, m.ages.Hi-1)
		case key.Matches(msg, m.keys.HiUp):
			m.ages.Hi = min(domain.MaxAge, m.ages.Hi+1)
		case key.Matches(msg, m.keys.Reset):
			m.soulsIdx, m.deckIdx = 0, 0
			m.ages = domain.FullAgeRange()
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		default:
			return m, nil
		}
		m.recompute()
	}
	return m, nil
}

// Selection returns the resolved control state.
func (m Model) Selection() domain.Selection { return m.sel }

// Summary returns the latest pipeline result.
func (m Model) Summary() domain.Summary { return m.summary }

func (m *Model) recompute() {
	lo, hi := m.ages.Lo, m.ages.Hi
	sel, err := domain.SelectionInput{
		Souls:  domain.SoulsOptions[m.soulsIdx],
		Deck:   domain.DeckOptions[m.deckIdx],
		AgeMin: &lo,
		AgeMax: &hi,
	}.Resolve()
	if err != nil {
		m.err = err
		return
	}
	sum, err := m.svc.Summarize(context.Background(), sel.Criteria)
	if err != nil {
		m.err = err
		return
	}
	m.sel, m.summary, m.err = sel, *sum, nil
}
