// Package app renders the interactive quiz in the terminal: a home screen
// with the module list, the question screen, the timed matching screen, and
// the death/results screens. All state transitions run through the session
// state machines in internal/quiz and internal/match; this package owns only
// presentation and input adaptation.
package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"quizhub/internal/match"
	"quizhub/internal/quiz"
	"quizhub/internal/sheet"
	"quizhub/internal/spec"
)

// screen identifies the visible view.
type screen int

const (
	screenHome screen = iota
	screenLoading
	screenQuestion
	screenMatchLoading
	screenMatching
	screenDeath
	screenResults
	screenError
)

// side identifies the focused matching column.
type side int

const (
	sideLeft side = iota
	sideRight
)

// Options configures the app model.
type Options struct {
	NoColor      bool
	TickInterval time.Duration
}

// Model is the Bubble Tea model for a quizhub run.
type Model struct {
	modules []spec.Module
	loader  *sheet.Loader

	screen       screen
	cursor       int
	activeModule spec.Module

	session *quiz.Session
	result  quiz.Result

	matching    *match.Session
	matchSide   side
	matchCursor int
	pickedLeft  string

	log          *eventLog
	loadErr      error
	deathMessage string

	width        int
	height       int
	noColor      bool
	tickInterval time.Duration
}

// NewModel constructs the app model for a module registry.
func NewModel(modules []spec.Module, loader *sheet.Loader, opts Options) Model {
	interval := opts.TickInterval
	if interval <= 0 {
		interval = time.Second
	}
	return Model{
		modules:      modules,
		loader:       loader,
		screen:       screenHome,
		log:          &eventLog{},
		noColor:      opts.NoColor,
		tickInterval: interval,
	}
}

// Init performs no work: everything waits for input.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update routes messages to the active screen.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		m.height = typed.Height
		return m, nil
	case questionsLoadedMsg:
		return m.startSession(typed)
	case pairsLoadedMsg:
		return m.startMatching(typed)
	case loadFailedMsg:
		m.loadErr = typed.err
		m.screen = screenError
		return m, nil
	case matchTickMsg:
		return m.handleMatchTick()
	case tea.KeyMsg:
		return m.handleKey(typed)
	}
	return m, nil
}

// handleKey dispatches key input per screen.
func (m Model) handleKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.String() == "ctrl+c" {
		return m, tea.Quit
	}
	switch m.screen {
	case screenHome:
		return m.handleHomeKey(key)
	case screenQuestion:
		return m.handleQuestionKey(key)
	case screenMatching:
		return m.handleMatchingKey(key)
	case screenDeath, screenResults, screenError:
		return m.handleTerminalKey(key)
	}
	return m, nil
}

// handleHomeKey navigates the module list.
func (m Model) handleHomeKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.modules)-1 {
			m.cursor++
		}
	case "enter":
		if len(m.modules) == 0 {
			return m, nil
		}
		m.activeModule = m.modules[m.cursor]
		m.screen = screenLoading
		return m, loadQuestionsCmd(m.loader, m.activeModule)
	}
	return m, nil
}

// handleTerminalKey leaves a dead-end screen. Sessions are discarded here; a
// new one starts from scratch on the next module open.
func (m Model) handleTerminalKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "q":
		return m, tea.Quit
	case "enter", "esc", "h":
		m.session = nil
		m.matching = nil
		m.loadErr = nil
		m.deathMessage = ""
		m.screen = screenHome
	}
	return m, nil
}

// startSession builds a question session from loaded data.
func (m Model) startSession(msg questionsLoadedMsg) (tea.Model, tea.Cmd) {
	session, err := quiz.NewSession(quiz.Config{
		Title:         m.activeModule.Name,
		Questions:     msg.questions,
		TriggerPoints: m.activeModule.MatchingTriggerPoints,
		PairSourceIDs: m.activeModule.MatchingSheetIDs,
		Sink:          m.log.quizSink(),
	})
	if err != nil {
		m.loadErr = err
		m.screen = screenError
		return m, nil
	}
	m.session = session
	m.screen = screenQuestion
	return m, nil
}

// startMatching builds the interlude session and starts the countdown.
func (m Model) startMatching(msg pairsLoadedMsg) (tea.Model, tea.Cmd) {
	matching, err := match.NewSession(match.Config{
		LeftTitle:  msg.set.LeftTitle,
		RightTitle: msg.set.RightTitle,
		Pairs:      msg.set.Pairs,
		Rand:       m.loader.Rand,
		Sink:       m.log.matchSink(),
	})
	if err != nil {
		m.loadErr = err
		m.screen = screenError
		return m, nil
	}
	m.matching = matching
	m.matchSide = sideLeft
	m.matchCursor = 0
	m.pickedLeft = ""
	m.screen = screenMatching
	return m, tickCmd(m.tickInterval)
}

// handleMatchTick advances the countdown. The tick chain stops the moment the
// matching session leaves its active phase, and a tick arriving after
// termination is ignored by the session itself.
func (m Model) handleMatchTick() (tea.Model, tea.Cmd) {
	if m.matching == nil || m.screen != screenMatching {
		return m, nil
	}
	m.matching.Tick()
	if m.matching.Phase() == match.PhaseActive {
		return m, tickCmd(m.tickInterval)
	}
	return m.resolveMatching()
}

// handleMatchingKey adapts keyboard input to attemptMatch: pick a left value,
// then pick the right value to pair it with.
func (m Model) handleMatchingKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.matching == nil {
		return m, nil
	}
	items := m.focusedItems()
	switch key.String() {
	case "up", "k":
		if m.matchCursor > 0 {
			m.matchCursor--
		}
	case "down", "j":
		if m.matchCursor < len(items)-1 {
			m.matchCursor++
		}
	case "left", "right", "tab":
		m.matchSide = 1 - m.matchSide
		m.matchCursor = 0
	case "esc":
		m.pickedLeft = ""
		m.matchSide = sideLeft
	case "enter":
		return m.confirmMatchSelection()
	}
	return m, nil
}

// confirmMatchSelection applies the two-step pick to the session.
func (m Model) confirmMatchSelection() (tea.Model, tea.Cmd) {
	items := m.focusedItems()
	if m.matchCursor >= len(items) {
		return m, nil
	}
	value := items[m.matchCursor]
	if m.matching.Matched(value) {
		return m, nil
	}
	if m.matchSide == sideLeft {
		m.pickedLeft = value
		m.matchSide = sideRight
		m.matchCursor = 0
		return m, nil
	}
	if m.pickedLeft == "" {
		return m, nil
	}
	if err := m.matching.AttemptMatch(m.pickedLeft, value); err != nil {
		return m, nil
	}
	m.pickedLeft = ""
	m.matchSide = sideLeft
	m.matchCursor = 0
	if m.matching.Phase() == match.PhaseActive {
		return m, nil
	}
	return m.resolveMatching()
}

// resolveMatching reports the interlude outcome back to the quiz session and
// returns control to the question flow or a dead-end screen.
func (m Model) resolveMatching() (tea.Model, tea.Cmd) {
	outcome, done := m.matching.Outcome()
	if !done {
		return m, nil
	}
	reason := m.matching.FailReason()
	m.matching = nil
	if err := m.session.ResolveMatching(outcome); err != nil {
		return m, nil
	}
	if m.session.Phase() == quiz.PhaseFailed {
		m.deathMessage = deathMessageForMatch(reason)
		m.screen = screenDeath
		return m, nil
	}
	m.screen = screenQuestion
	return m, nil
}

// focusedItems returns the column under the cursor.
func (m Model) focusedItems() []string {
	if m.matching == nil {
		return nil
	}
	if m.matchSide == sideLeft {
		return m.matching.LeftItems()
	}
	return m.matching.RightItems()
}

// handleQuestionKey adapts keyboard input to the question session.
func (m Model) handleQuestionKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	session := m.session
	index := session.CurrentIndex()
	question, _ := session.Question(index)
	record, _ := session.Answer(index)

	switch key.String() {
	case "q", "h":
		m.session = nil
		m.screen = screenHome
		return m, nil
	case "up", "k":
		return m.moveSelection(question, record, -1), nil
	case "down", "j":
		return m.moveSelection(question, record, 1), nil
	case "1", "2", "3", "4":
		n := int(key.String()[0] - '1')
		if n < len(question.Options) {
			_ = session.Select(index, question.Options[n])
		}
		return m, nil
	case "left", "p":
		_ = session.Advance(quiz.Prev)
		return m, nil
	case "right", "n":
		if record.Submitted {
			_ = session.Advance(quiz.Next)
		}
		return m, nil
	case "enter":
		return m.confirmQuestion(index, record)
	}
	return m, nil
}

// moveSelection steps the tentative selection through the option list.
func (m Model) moveSelection(question quiz.Question, record quiz.AnswerRecord, delta int) Model {
	if record.Submitted {
		return m
	}
	current := -1
	for i, option := range question.Options {
		if option == record.Selected {
			current = i
			break
		}
	}
	next := current + delta
	if current == -1 {
		next = 0
	}
	if next < 0 || next >= len(question.Options) {
		return m
	}
	_ = m.session.Select(m.session.CurrentIndex(), question.Options[next])
	return m
}

// confirmQuestion submits, finishes, or advances, depending on question state.
func (m Model) confirmQuestion(index int, record quiz.AnswerRecord) (tea.Model, tea.Cmd) {
	session := m.session
	if !record.Submitted {
		if err := session.Submit(index); err != nil {
			return m, nil
		}
		switch session.Phase() {
		case quiz.PhaseFailed:
			m.deathMessage = deathMessageForStreak()
			m.screen = screenDeath
			return m, nil
		case quiz.PhaseMatching:
			source, _ := session.PendingPairSource()
			m.screen = screenMatchLoading
			return m, loadPairsCmd(m.loader, source)
		}
		return m, nil
	}
	if index == session.Total()-1 {
		result, err := session.Finish()
		if err != nil {
			return m, nil
		}
		m.result = result
		m.screen = screenResults
		return m, nil
	}
	_ = session.Advance(quiz.Next)
	return m, nil
}
