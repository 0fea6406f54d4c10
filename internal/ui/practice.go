// Package ui renders the interactive practice screen.
package ui

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/lexi/internal/practice"
	"github.com/abhisek/lexi/internal/srs"
	"github.com/abhisek/lexi/internal/word"
)

// DistractorSource supplies wrong options for quiz rounds.
// *store.WordRepo satisfies it.
type DistractorSource interface {
	RandomDistractors(ctx context.Context, exclude []string, n int, deckID *string) ([]word.Word, error)
}

// distractorCount is the number of wrong options per quiz question.
const distractorCount = 3

// Options wires the practice screen to its collaborators.
type Options struct {
	Session     *practice.Session
	Pool        []word.Word
	Mode        practice.Mode
	Kind        practice.SelectionKind
	DeckID      *string
	Distractors DistractorSource // required for ModeQuiz
}

type phase int

const (
	phasePrompt phase = iota
	phaseRevealed
	phaseFeedback
	phaseRoundDone
	phaseSessionDone
	phaseEmpty
)

type choice struct {
	meaning string
	correct bool
}

// matchEntry is one meaning in the match mode's right column.
type matchEntry struct {
	wordID  string
	meaning string
}

// Model is the practice screen's Bubble Tea model.
type Model struct {
	opts    Options
	session *practice.Session

	width  int
	height int
	phase  phase

	input textinput.Model

	choices   []choice
	choiceSel int

	matchMeanings []matchEntry
	matched       map[string]bool
	matchCursor   int
	matchTermIdx  int // selected term index, -1 when picking a term
	matchMiss     bool

	current      *word.Word
	lastCorrect  bool
	roundWrong   bool // any incorrect answer in the current round
	errMsg       string
	finalSummary practice.Summary
}

// New creates the practice screen model. The session must already be
// started over opts.Pool.
func New(opts Options) *Model {
	ti := textinput.New()
	ti.Placeholder = "Type the meaning..."

	return &Model{
		opts:         opts,
		session:      opts.Session,
		input:        ti,
		matchTermIdx: -1,
	}
}

// choicesReadyMsg carries quiz options fetched for the current word.
type choicesReadyMsg struct {
	choices []choice
	err     error
}

func (m *Model) Init() tea.Cmd {
	if m.session.Phase() != practice.PhaseInProgress {
		m.phase = phaseEmpty
		return nil
	}
	return m.setupRound()
}

// setupRound prepares per-round state and the first word.
func (m *Model) setupRound() tea.Cmd {
	m.roundWrong = false
	if m.opts.Mode == practice.ModeMatch {
		round := m.session.RoundWords()
		m.matched = make(map[string]bool, len(round))
		m.matchMeanings = make([]matchEntry, len(round))
		for i, w := range round {
			m.matchMeanings[i] = matchEntry{wordID: w.ID, meaning: w.Meaning}
		}
		rand.Shuffle(len(m.matchMeanings), func(i, j int) {
			m.matchMeanings[i], m.matchMeanings[j] = m.matchMeanings[j], m.matchMeanings[i]
		})
		m.matchCursor = 0
		m.matchTermIdx = -1
		m.matchMiss = false
		m.phase = phasePrompt
		return nil
	}
	return m.setupWord()
}

// setupWord prepares the current word's prompt state.
func (m *Model) setupWord() tea.Cmd {
	m.current = m.session.CurrentWord()
	m.errMsg = ""
	m.phase = phasePrompt

	switch m.opts.Mode {
	case practice.ModeWriting:
		m.input.SetValue("")
		return m.input.Focus()
	case practice.ModeQuiz:
		m.choices = nil
		m.choiceSel = 0
		return m.fetchChoices(*m.current)
	}
	return nil
}

// fetchChoices builds the quiz options off the update loop.
func (m *Model) fetchChoices(w word.Word) tea.Cmd {
	return func() tea.Msg {
		distractors, err := m.opts.Distractors.RandomDistractors(
			context.Background(), []string{w.ID}, distractorCount, m.opts.DeckID)
		if err != nil {
			return choicesReadyMsg{err: err}
		}
		return choicesReadyMsg{choices: buildChoices(w, distractors)}
	}
}

// buildChoices mixes the right meaning among distractor meanings.
func buildChoices(w word.Word, distractors []word.Word) []choice {
	choices := []choice{{meaning: w.Meaning, correct: true}}
	for _, d := range distractors {
		choices = append(choices, choice{meaning: d.Meaning})
	}
	rand.Shuffle(len(choices), func(i, j int) {
		choices[i], choices[j] = choices[j], choices[i]
	})
	return choices
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case choicesReadyMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.choices = msg.choices
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.opts.Mode == practice.ModeWriting && m.phase == phasePrompt {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	k := key.String()

	if k == "ctrl+c" {
		m.session.End()
		return m, tea.Quit
	}

	switch m.phase {
	case phaseEmpty:
		return m, tea.Quit

	case phaseSessionDone:
		m.session.End()
		return m, tea.Quit

	case phaseRoundDone:
		switch k {
		case "enter", " ":
			m.session.StartNextRound()
			if m.session.Phase() != practice.PhaseInProgress {
				return m.finishSession()
			}
			return m, m.setupRound()
		case "q", "esc":
			return m.finishSession()
		}
		return m, nil

	case phaseFeedback:
		return m.advance()

	case phaseRevealed:
		if k == "esc" {
			return m.finishSession()
		}
		if q, ok := qualityKey(k); ok {
			if err := m.record(q); err != nil {
				m.errMsg = err.Error()
				return m, nil
			}
			return m.advance()
		}
		return m, nil

	case phasePrompt:
		return m.handlePromptKey(key)
	}
	return m, nil
}

func (m *Model) handlePromptKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := key.String()
	if k == "esc" {
		return m.finishSession()
	}

	switch m.opts.Mode {
	case practice.ModeFlashcards:
		if k == "enter" || k == " " {
			m.phase = phaseRevealed
		}
		return m, nil

	case practice.ModeQuiz:
		switch k {
		case "up", "k":
			if m.choiceSel > 0 {
				m.choiceSel--
			}
		case "down", "j":
			if m.choiceSel < len(m.choices)-1 {
				m.choiceSel++
			}
		case "enter":
			if len(m.choices) == 0 {
				return m, nil
			}
			return m.submit(m.choices[m.choiceSel].correct)
		}
		return m, nil

	case practice.ModeWriting:
		if k == "enter" {
			correct := answersMatch(m.input.Value(), m.current.Meaning)
			return m.submit(correct)
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(key)
		return m, cmd

	case practice.ModeMatch:
		return m.handleMatchKey(k)
	}
	return m, nil
}

func (m *Model) handleMatchKey(k string) (tea.Model, tea.Cmd) {
	round := m.session.RoundWords()

	switch k {
	case "up", "k":
		if m.matchCursor > 0 {
			m.matchCursor--
		}
	case "down", "j":
		limit := len(round)
		if m.matchTermIdx >= 0 {
			limit = len(m.matchMeanings)
		}
		if m.matchCursor < limit-1 {
			m.matchCursor++
		}
	case "enter", " ":
		if m.matchTermIdx < 0 {
			// Picking a term; matched terms are inert.
			if m.matchCursor < len(round) && !m.matched[round[m.matchCursor].ID] {
				m.matchTermIdx = m.matchCursor
				m.matchCursor = 0
				m.matchMiss = false
			}
			return m, nil
		}

		// Picking a meaning for the selected term.
		if m.matchCursor >= len(m.matchMeanings) {
			return m, nil
		}
		entry := m.matchMeanings[m.matchCursor]
		if m.matched[entry.wordID] {
			return m, nil
		}

		termWord := round[m.matchTermIdx]
		hit := entry.wordID == termWord.ID
		q := srs.QualityWrong
		if hit {
			q = srs.QualityPerfect
		}
		if err := m.session.RecordAnswer(context.Background(), termWord.ID, q); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.matchTermIdx = -1
		m.matchCursor = 0

		if hit {
			m.matched[termWord.ID] = true
			m.matchMiss = false
			m.session.NextWord()
			if m.session.Phase() != practice.PhaseInProgress {
				return m.roundDone()
			}
		} else {
			m.matchMiss = true
			m.roundWrong = true
		}
	}
	return m, nil
}

// submit records a binary outcome (quiz and writing modes) and shows
// feedback.
func (m *Model) submit(correct bool) (tea.Model, tea.Cmd) {
	q := srs.QualityWrong
	if correct {
		q = srs.QualityPerfect
	}
	if err := m.record(q); err != nil {
		m.errMsg = err.Error()
		return m, nil
	}
	m.lastCorrect = correct
	m.phase = phaseFeedback
	return m, nil
}

// record forwards one answer to the session. The session's writer may
// fail; the caller keeps the prompt up so the user can retry.
func (m *Model) record(q srs.Quality) error {
	if !q.Passing() {
		m.roundWrong = true
	}
	return m.session.RecordAnswer(context.Background(), m.current.ID, q)
}

// advance moves past the current word, into the next word, the round
// summary, or the session summary.
func (m *Model) advance() (tea.Model, tea.Cmd) {
	m.session.NextWord()
	if m.session.Phase() != practice.PhaseInProgress {
		return m.roundDone()
	}
	return m, m.setupWord()
}

func (m *Model) roundDone() (tea.Model, tea.Cmd) {
	if m.session.PoolExhausted() {
		return m.finishSession()
	}
	m.phase = phaseRoundDone
	return m, nil
}

func (m *Model) finishSession() (tea.Model, tea.Cmd) {
	m.finalSummary = m.session.Summary()
	m.phase = phaseSessionDone
	return m, nil
}

// answersMatch compares a typed answer against the stored meaning,
// ignoring case and surrounding whitespace.
func answersMatch(typed, meaning string) bool {
	return strings.EqualFold(strings.TrimSpace(typed), strings.TrimSpace(meaning))
}

// qualityKey maps the number row to SM-2 quality ratings.
func qualityKey(k string) (srs.Quality, bool) {
	if len(k) == 1 && k[0] >= '0' && k[0] <= '5' {
		return srs.Quality(k[0] - '0'), true
	}
	return 0, false
}

// Run starts the practice program and blocks until it exits.
func Run(opts Options) error {
	p := tea.NewProgram(New(opts))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running practice:", err)
		return err
	}
	return nil
}
