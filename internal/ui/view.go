package ui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lexi/internal/practice"
)

func (m *Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	if tooSmall(m.width, m.height) {
		v.SetContent(renderTooSmall(m.width, m.height))
		return v
	}

	header := m.renderHeader()
	footer := hintStyle.Render(m.footerHints())

	var content string
	switch m.phase {
	case phaseEmpty:
		content = dimStyle.Render("Nothing to practice right now. Press any key to exit.")
	case phaseSessionDone:
		content = m.renderSummary()
	case phaseRoundDone:
		content = m.renderRoundDone()
	default:
		content = m.renderPrompt()
	}

	if m.errMsg != "" {
		content = lipgloss.JoinVertical(lipgloss.Left, content, "", wrongStyle.Render(m.errMsg))
	}

	body := lipgloss.Place(m.width, m.height-lipgloss.Height(header)-lipgloss.Height(footer),
		lipgloss.Center, lipgloss.Center, content)

	v.SetContent(lipgloss.JoinVertical(lipgloss.Left, header, body, footer))
	return v
}

func (m *Model) renderHeader() string {
	title := titleStyle.Render(fmt.Sprintf("Practice · %s", m.opts.Mode))
	current, total := m.session.RoundProgress()
	if current < total {
		current++
	}
	status := dimStyle.Render(fmt.Sprintf("word %d/%d · streak %d", current, total, m.session.Streak()))
	gap := m.width - lipgloss.Width(title) - lipgloss.Width(status)
	if gap < 1 {
		gap = 1
	}
	return title + strings.Repeat(" ", gap) + status
}

func (m *Model) renderPrompt() string {
	if m.opts.Mode == practice.ModeMatch {
		return m.renderMatch()
	}
	if m.current == nil {
		return ""
	}

	term := cardStyle.Render(termStyle.Render(m.current.Term))

	switch m.phase {
	case phaseRevealed:
		return lipgloss.JoinVertical(lipgloss.Center,
			term,
			"",
			meaningStyle.Render(m.current.Meaning),
			"",
			dimStyle.Render("How well did you remember?"),
			hintStyle.Render("0 blackout · 1 wrong · 2 almost · 3 hard · 4 good · 5 perfect"),
		)

	case phaseFeedback:
		verdict := correctStyle.Render("Correct!")
		if !m.lastCorrect {
			verdict = wrongStyle.Render(fmt.Sprintf("Wrong — it means %q", m.current.Meaning))
		}
		return lipgloss.JoinVertical(lipgloss.Center, term, "", verdict)
	}

	switch m.opts.Mode {
	case practice.ModeQuiz:
		if len(m.choices) == 0 {
			return lipgloss.JoinVertical(lipgloss.Center, term, "", dimStyle.Render("..."))
		}
		lines := make([]string, 0, len(m.choices))
		for i, c := range m.choices {
			line := fmt.Sprintf("  %s", c.meaning)
			if i == m.choiceSel {
				line = selectedStyle.Render(fmt.Sprintf("> %s", c.meaning))
			}
			lines = append(lines, line)
		}
		return lipgloss.JoinVertical(lipgloss.Center, term, "", lipgloss.JoinVertical(lipgloss.Left, lines...))

	case practice.ModeWriting:
		return lipgloss.JoinVertical(lipgloss.Center, term, "", m.input.View())
	}

	return lipgloss.JoinVertical(lipgloss.Center, term, "", dimStyle.Render("press enter to reveal"))
}

func (m *Model) renderMatch() string {
	round := m.session.RoundWords()
	pickingMeaning := m.matchTermIdx >= 0

	terms := make([]string, 0, len(round))
	for i, w := range round {
		switch {
		case m.matched[w.ID]:
			terms = append(terms, matchedStyle.Render("  "+w.Term))
		case i == m.matchTermIdx:
			terms = append(terms, selectedStyle.Render("* "+w.Term))
		case !pickingMeaning && i == m.matchCursor:
			terms = append(terms, selectedStyle.Render("> "+w.Term))
		default:
			terms = append(terms, "  "+w.Term)
		}
	}

	meanings := make([]string, 0, len(m.matchMeanings))
	for i, e := range m.matchMeanings {
		switch {
		case m.matched[e.wordID]:
			meanings = append(meanings, matchedStyle.Render("  "+e.meaning))
		case pickingMeaning && i == m.matchCursor:
			meanings = append(meanings, selectedStyle.Render("> "+e.meaning))
		default:
			meanings = append(meanings, "  "+e.meaning)
		}
	}

	left := lipgloss.JoinVertical(lipgloss.Left, terms...)
	right := lipgloss.JoinVertical(lipgloss.Left, meanings...)
	cols := lipgloss.JoinHorizontal(lipgloss.Top, left, "    ", right)

	if m.matchMiss {
		return lipgloss.JoinVertical(lipgloss.Center, cols, "", wrongStyle.Render("Not a match, try again"))
	}
	return cols
}

func (m *Model) renderRoundDone() string {
	snap := m.session.Summary()
	lines := []string{
		titleStyle.Render("Round complete"),
		"",
		meaningStyle.Render(fmt.Sprintf("%d/%d words practiced", snap.Practiced, snap.PoolSize)),
	}
	if !m.roundWrong {
		lines = append(lines, correctStyle.Render("Perfect round!"))
	}
	lines = append(lines, "", dimStyle.Render(fmt.Sprintf("streak %d · best %d", m.session.Streak(), m.session.PeakStreak())))
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

func (m *Model) renderSummary() string {
	s := m.finalSummary
	return lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("Session complete"),
		"",
		meaningStyle.Render(fmt.Sprintf("%d of %d words practiced", s.Practiced, s.PoolSize)),
		dimStyle.Render(fmt.Sprintf("best streak %d", s.PeakStreak)),
		"",
		hintStyle.Render("press any key to exit"),
	)
}

func (m *Model) footerHints() string {
	switch m.phase {
	case phaseRoundDone:
		return "Enter continue · Q finish · Ctrl+C quit"
	case phaseSessionDone, phaseEmpty:
		return "any key to exit"
	case phaseRevealed:
		return "0-5 rate · Ctrl+C quit"
	case phaseFeedback:
		return "any key to continue"
	}

	switch m.opts.Mode {
	case practice.ModeQuiz:
		return "↑↓ select · Enter answer · Esc finish"
	case practice.ModeWriting:
		return "Enter submit · Esc finish"
	case practice.ModeMatch:
		return "↑↓ move · Enter pick · Esc finish"
	}
	return "Enter reveal · Esc finish"
}
