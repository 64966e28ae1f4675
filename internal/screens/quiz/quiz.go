package quiz

import (
	"fmt"
	"log/slog"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/avelk/marketmath/internal/screen"
	sess "github.com/avelk/marketmath/internal/session"
	"github.com/avelk/marketmath/internal/ui/components"
	"github.com/avelk/marketmath/internal/ui/layout"
)

// QuizScreen implements screen.Screen for the active quiz.
type QuizScreen struct {
	session *sess.Session
	input   components.TextInput

	// notice is a blocking message shown when the template source failed
	// to load. The screen stays usable but cannot generate questions.
	notice string

	// result holds the feedback for the answered question, nil while a
	// question is pending.
	result *sess.Result

	// revealed shows the expected answer without scoring.
	revealed bool

	elapsed time.Duration
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.ScoreProvider = (*QuizScreen)(nil)

// New creates a QuizScreen over an initialized session. notice, when
// non-empty, is the template load failure to surface.
func New(session *sess.Session, notice string) *QuizScreen {
	return &QuizScreen{
		session: session,
		notice:  notice,
		input:   components.NewTextInput("Type your answer...", 24),
	}
}

func (s *QuizScreen) Init() tea.Cmd {
	return tea.Batch(tickCmd(), s.input.Init())
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

// Score renders the running counters for the header.
func (s *QuizScreen) Score() string {
	attempts, correct := s.session.Score()
	return fmt.Sprintf("Score %d/%d", correct, attempts)
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.session.Phase() == sess.PhaseQuestionAnswered {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next question"},
			{Key: "Ctrl+R", Description: "Randomize"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Ctrl+N", Description: "New question"},
		{Key: "Ctrl+R", Description: "Randomize"},
		{Key: "Ctrl+A", Description: "Show answer"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		s.elapsed = s.session.TotalElapsed(time.Time(msg))
		return s, tickCmd()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.session.Phase() == sess.PhaseQuestionPending {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "ctrl+r":
		s.randomize()
		return s, nil

	case "ctrl+n":
		s.nextQuestion()
		return s, nil

	case "ctrl+a":
		if s.session.Phase() == sess.PhaseQuestionPending {
			s.revealed = true
		}
		return s, nil

	case "enter":
		if s.session.Phase() == sess.PhaseQuestionAnswered {
			s.nextQuestion()
			return s, nil
		}
		s.submit()
		return s, nil
	}

	// Everything else feeds the answer box while a question is pending.
	if s.session.Phase() == sess.PhaseQuestionPending {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	return s, nil
}

// submit scores the current input. Re-submission of an answered question
// is rejected by the session latch, so mashing enter cannot inflate the
// counters.
func (s *QuizScreen) submit() {
	result, ok := s.session.Submit(s.input.Value(), time.Now())
	if !ok {
		return
	}
	s.result = &result
}

// nextQuestion discards the current question and generates a new one.
// With an empty template set this is a documented no-op.
func (s *QuizScreen) nextQuestion() {
	s.result = nil
	s.revealed = false
	s.input.Reset()

	if err := s.session.NextQuestion(); err != nil {
		slog.Warn("cannot generate question", "error", err)
	}
}

// randomize replaces the dataset and question together.
func (s *QuizScreen) randomize() {
	s.result = nil
	s.revealed = false
	s.input.Reset()

	if err := s.session.Randomize(); err != nil {
		slog.Warn("cannot generate question", "error", err)
	}
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
