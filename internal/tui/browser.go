package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rpggio/curriculum/internal/domain/curriculum"
)

// Browser is the admin preview: a journey bar, the selected journey's
// levels, and the lessons of the effective level.
type Browser struct {
	sel    *curriculum.Selection
	width  int
	status string
}

// NewBrowser selects the first journey and its first level.
func NewBrowser(journeys []curriculum.Journey) *Browser {
	return &Browser{sel: curriculum.NewSelection(journeys)}
}

// Selection exposes the current selection.
func (b *Browser) Selection() *curriculum.Selection {
	return b.sel
}

func (b *Browser) Init() tea.Cmd {
	return nil
}

func (b *Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width = msg.Width
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return b, tea.Quit
		case "left", "h":
			b.moveJourney(-1)
		case "right", "l":
			b.moveJourney(1)
		case "up", "k":
			b.moveLevel(-1)
		case "down", "j":
			b.moveLevel(1)
		}
	}
	return b, nil
}

func (b *Browser) moveJourney(delta int) {
	journeys := b.sel.Journeys()
	pos := b.sel.JourneyPosition() + delta
	if pos < 0 || pos >= len(journeys) {
		return
	}
	b.sel.SelectJourney(journeys[pos].ID)
	b.status = ""
}

func (b *Browser) moveLevel(delta int) {
	j, ok := b.sel.Journey()
	if !ok {
		return
	}
	pos := b.sel.LevelPosition() + delta
	if pos < 0 || pos >= len(j.Levels) {
		return
	}
	b.sel.SelectLevel(j.Levels[pos].ID)
}

func (b *Browser) View() string {
	j, ok := b.sel.Journey()
	if !ok {
		return titleStyle.Render("Curriculum") + "\n\n" + helpStyle.Render("No journeys. Run the seed command first.") + "\n"
	}

	var sections []string
	sections = append(sections, titleStyle.Render("Curriculum"), b.renderJourneyBar())
	sections = append(sections, renderJourneyHeader(j))

	level, ok := b.sel.Level()
	if !ok {
		sections = append(sections, helpStyle.Render("This journey has no levels."))
	} else {
		sections = append(sections, b.renderLevels(j, level.ID), renderLessons(level, b.width))
	}

	sections = append(sections, helpStyle.Render("←/→ journey  ↑/↓ level  q quit"))
	return strings.Join(sections, "\n\n") + "\n"
}

func (b *Browser) renderJourneyBar() string {
	current := b.sel.JourneyPosition()
	tabs := make([]string, 0, len(b.sel.Journeys()))
	for i, j := range b.sel.Journeys() {
		style := tabStyle
		if i == current {
			style = activeTabStyle
		}
		tabs = append(tabs, style.Render(j.Title))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func renderJourneyHeader(j curriculum.Journey) string {
	header := lessonTitle.Render(j.Title) + " " + badge(j)
	if j.Description != "" {
		header += "\n" + objectiveStyle.Render(j.Description)
	}
	return header
}

func (b *Browser) renderLevels(j curriculum.Journey, activeID int64) string {
	lines := make([]string, 0, len(j.Levels))
	for _, level := range j.Levels {
		prefix := "  "
		style := levelStyle
		if level.ID == activeID {
			prefix = "> "
			style = activeLevelStyle
		}
		lines = append(lines, style.Render(prefix+level.Title)+" "+badge(level))
	}
	return strings.Join(lines, "\n")
}

func renderLessons(level curriculum.Level, width int) string {
	if len(level.Lessons) == 0 {
		return helpStyle.Render("No lessons in this level.")
	}
	style := cardStyle
	if width > 4 {
		style = style.Width(width - 2)
	}

	cards := make([]string, 0, len(level.Lessons))
	for _, lesson := range level.Lessons {
		lines := []string{fmt.Sprintf("%s %s", lessonTitle.Render(fmt.Sprintf("%d. %s", lesson.Order, lesson.Title)), badge(lesson))}
		if lesson.Objective != "" {
			lines = append(lines, objectiveStyle.Render(lesson.Objective))
		}
		for _, a := range lesson.Activities {
			lines = append(lines, fmt.Sprintf("%s %s %s", typeStyle.Render(string(a.Type)), curriculum.PreviewText(a), badge(a)))
		}
		cards = append(cards, style.Render(strings.Join(lines, "\n")))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

// badge renders the node's own publication flag.
func badge(p curriculum.Publishable) string {
	if curriculum.IsVisibleToLearner(p) {
		return publishedBadge.Render("[" + curriculum.Status(p) + "]")
	}
	return draftBadge.Render("[" + curriculum.Status(p) + "]")
}
