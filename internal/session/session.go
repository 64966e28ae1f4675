package session

import (
	"time"

	"github.com/avelk/marketmath/internal/market"
	"github.com/avelk/marketmath/internal/quiz"
)

// Phase represents the current state of the question lifecycle.
type Phase int

const (
	// PhaseNoQuestion means no scorable question is active (startup, or
	// generation failed).
	PhaseNoQuestion Phase = iota

	// PhaseQuestionPending means a question is displayed and awaiting an
	// answer.
	PhaseQuestionPending

	// PhaseQuestionAnswered means the active question has been scored;
	// further submissions are ignored until a new question is generated.
	PhaseQuestionAnswered
)

// Result is the outcome of one answer submission.
type Result struct {
	// Correct is the verdict for this submission.
	Correct bool

	// ExpectedText is the display form of the expected answer.
	ExpectedText string

	// Attempts and CorrectCount are the updated running counters.
	Attempts     int
	CorrectCount int

	// SincePrevSubmit is the elapsed time since the previous submission.
	// Zero on the first submission of the session.
	SincePrevSubmit time.Duration
}

// Session owns all mutable quiz state for one run: the current dataset,
// the single active question, and the score counters. All transitions
// happen through Randomize, NextQuestion, and Submit; there is no ambient
// mutation.
type Session struct {
	synth     *market.Synthesizer
	gen       *quiz.Generator
	tolerance float64

	dataset *market.Dataset
	current *quiz.Question
	phase   Phase

	attempts     int
	correctCount int

	pageStart  time.Time
	lastSubmit time.Time
}

// New creates a Session. No dataset or question exists until Randomize is
// called.
func New(synth *market.Synthesizer, gen *quiz.Generator, tolerance float64, now time.Time) *Session {
	return &Session{
		synth:     synth,
		gen:       gen,
		tolerance: tolerance,
		pageStart: now,
	}
}

// Dataset returns the current dataset, nil before the first Randomize.
func (s *Session) Dataset() *market.Dataset {
	return s.dataset
}

// Current returns the active question, nil when phase is PhaseNoQuestion.
func (s *Session) Current() *quiz.Question {
	return s.current
}

// Phase returns the current question lifecycle phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Score returns the running attempt and correct counters.
func (s *Session) Score() (attempts, correct int) {
	return s.attempts, s.correctCount
}

// TotalElapsed returns the wall-clock time since the session started.
func (s *Session) TotalElapsed(now time.Time) time.Duration {
	return now.Sub(s.pageStart)
}

// Randomize replaces the dataset entirely and generates a fresh question
// against it. The previous dataset and question are discarded.
func (s *Session) Randomize() error {
	s.dataset = s.synth.Synthesize()
	return s.NextQuestion()
}

// NextQuestion discards the current question unconditionally and
// generates a new one, resetting the submitted latch. On failure the
// session drops to PhaseNoQuestion and the error is returned for the
// caller to surface.
func (s *Session) NextQuestion() error {
	s.current = nil
	s.phase = PhaseNoQuestion

	q, err := s.gen.Generate(s.dataset)
	if err != nil {
		return err
	}

	s.current = q
	s.phase = PhaseQuestionPending
	return nil
}

// Submit scores the user's answer against the active question. It returns
// false when there is nothing to score: no active question, or the active
// question was already submitted (the re-submission latch). Counters only
// ever increase.
func (s *Session) Submit(input string, now time.Time) (Result, bool) {
	if s.phase != PhaseQuestionPending || s.current == nil {
		return Result{}, false
	}

	correct := quiz.Match(input, s.current.Answer, s.tolerance)

	s.attempts++
	if correct {
		s.correctCount++
	}
	s.phase = PhaseQuestionAnswered

	var sincePrev time.Duration
	if !s.lastSubmit.IsZero() {
		sincePrev = now.Sub(s.lastSubmit)
	}
	s.lastSubmit = now

	return Result{
		Correct:         correct,
		ExpectedText:    s.current.Answer.Text,
		Attempts:        s.attempts,
		CorrectCount:    s.correctCount,
		SincePrevSubmit: sincePrev,
	}, true
}
