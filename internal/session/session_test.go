package session

import (
	"math/rand"
	"testing"
	"time"

	"github.com/avelk/marketmath/internal/market"
	"github.com/avelk/marketmath/internal/quiz"
)

func testSession(t *testing.T, seed int64) *Session {
	t.Helper()

	templates, err := quiz.DefaultTemplates()
	if err != nil {
		t.Fatalf("load default templates: %v", err)
	}

	rng := rand.New(rand.NewSource(seed))
	synth := market.NewSynthesizer(market.DefaultConfig(), rng)
	gen := quiz.NewGenerator(templates, rng)

	return New(synth, gen, quiz.DefaultTolerance, time.Unix(1000, 0))
}

func emptySession(t *testing.T) *Session {
	t.Helper()

	rng := rand.New(rand.NewSource(1))
	synth := market.NewSynthesizer(market.DefaultConfig(), rng)
	gen := quiz.NewGenerator(nil, rng)

	return New(synth, gen, quiz.DefaultTolerance, time.Unix(1000, 0))
}

func TestSession_InitialState(t *testing.T) {
	s := testSession(t, 1)

	if s.Phase() != PhaseNoQuestion {
		t.Errorf("phase = %v, want PhaseNoQuestion", s.Phase())
	}
	if s.Dataset() != nil || s.Current() != nil {
		t.Error("expected no dataset or question before Randomize")
	}
	if attempts, correct := s.Score(); attempts != 0 || correct != 0 {
		t.Errorf("score = %d/%d, want 0/0", correct, attempts)
	}
}

func TestSession_RandomizeCreatesQuestion(t *testing.T) {
	s := testSession(t, 2)

	if err := s.Randomize(); err != nil {
		t.Fatal(err)
	}

	if s.Dataset() == nil {
		t.Fatal("expected a dataset")
	}
	if s.Current() == nil {
		t.Fatal("expected a question")
	}
	if s.Phase() != PhaseQuestionPending {
		t.Errorf("phase = %v, want PhaseQuestionPending", s.Phase())
	}
}

func TestSession_RandomizeReplacesDataset(t *testing.T) {
	s := testSession(t, 3)

	if err := s.Randomize(); err != nil {
		t.Fatal(err)
	}
	first := s.Dataset().ID

	if err := s.Randomize(); err != nil {
		t.Fatal(err)
	}
	if s.Dataset().ID == first {
		t.Error("expected Randomize to replace the dataset")
	}
}

func TestSession_SubmitCorrect(t *testing.T) {
	s := testSession(t, 4)
	if err := s.Randomize(); err != nil {
		t.Fatal(err)
	}

	res, ok := s.Submit(s.Current().Answer.Text, time.Unix(1010, 0))
	if !ok {
		t.Fatal("expected submission to be accepted")
	}
	if !res.Correct {
		t.Errorf("submitting the expected answer text %q judged wrong", s.Current().Answer.Text)
	}
	if res.Attempts != 1 || res.CorrectCount != 1 {
		t.Errorf("counters = %d/%d, want 1/1", res.CorrectCount, res.Attempts)
	}
	if s.Phase() != PhaseQuestionAnswered {
		t.Errorf("phase = %v, want PhaseQuestionAnswered", s.Phase())
	}
}

func TestSession_ResubmissionLatch(t *testing.T) {
	s := testSession(t, 5)
	if err := s.Randomize(); err != nil {
		t.Fatal(err)
	}

	if _, ok := s.Submit("zzz", time.Unix(1010, 0)); !ok {
		t.Fatal("first submission rejected")
	}
	if _, ok := s.Submit("zzz", time.Unix(1011, 0)); ok {
		t.Error("second submission of the same question must be ignored")
	}

	if attempts, _ := s.Score(); attempts != 1 {
		t.Errorf("attempts = %d after double submit, want 1", attempts)
	}
}

func TestSession_NextQuestionResetsLatch(t *testing.T) {
	s := testSession(t, 6)
	if err := s.Randomize(); err != nil {
		t.Fatal(err)
	}

	if _, ok := s.Submit("zzz", time.Unix(1010, 0)); !ok {
		t.Fatal("first submission rejected")
	}

	if err := s.NextQuestion(); err != nil {
		t.Fatal(err)
	}
	if s.Phase() != PhaseQuestionPending {
		t.Errorf("phase = %v after NextQuestion, want PhaseQuestionPending", s.Phase())
	}

	if _, ok := s.Submit("zzz", time.Unix(1020, 0)); !ok {
		t.Error("submission after NextQuestion must be accepted")
	}
	if attempts, _ := s.Score(); attempts != 2 {
		t.Errorf("attempts = %d, want 2", attempts)
	}
}

func TestSession_CountersNeverDecrease(t *testing.T) {
	s := testSession(t, 7)

	prevAttempts, prevCorrect := 0, 0
	for i := 0; i < 50; i++ {
		if err := s.Randomize(); err != nil {
			t.Fatal(err)
		}

		input := "zzz"
		if i%2 == 0 {
			input = s.Current().Answer.Text
		}
		if _, ok := s.Submit(input, time.Unix(int64(1000+i), 0)); !ok {
			t.Fatal("submission rejected")
		}

		attempts, correct := s.Score()
		if attempts < prevAttempts || correct < prevCorrect {
			t.Fatalf("counters decreased: %d/%d -> %d/%d", prevCorrect, prevAttempts, correct, attempts)
		}
		prevAttempts, prevCorrect = attempts, correct
	}
}

func TestSession_SincePrevSubmit(t *testing.T) {
	s := testSession(t, 8)
	if err := s.Randomize(); err != nil {
		t.Fatal(err)
	}

	res, _ := s.Submit("zzz", time.Unix(1100, 0))
	if res.SincePrevSubmit != 0 {
		t.Errorf("first submission SincePrevSubmit = %v, want 0", res.SincePrevSubmit)
	}

	if err := s.NextQuestion(); err != nil {
		t.Fatal(err)
	}
	res, _ = s.Submit("zzz", time.Unix(1145, 0))
	if res.SincePrevSubmit != 45*time.Second {
		t.Errorf("SincePrevSubmit = %v, want 45s", res.SincePrevSubmit)
	}
}

func TestSession_TotalElapsed(t *testing.T) {
	s := testSession(t, 9)

	got := s.TotalElapsed(time.Unix(1090, 0))
	if got != 90*time.Second {
		t.Errorf("TotalElapsed = %v, want 90s", got)
	}
}

func TestSession_EmptyTemplates_NoOp(t *testing.T) {
	s := emptySession(t)

	if err := s.Randomize(); err == nil {
		t.Error("expected Randomize to report the empty template set")
	}
	if s.Dataset() == nil {
		t.Error("dataset should still be synthesized without templates")
	}
	if s.Phase() != PhaseNoQuestion {
		t.Errorf("phase = %v, want PhaseNoQuestion", s.Phase())
	}
	if _, ok := s.Submit("zzz", time.Unix(1010, 0)); ok {
		t.Error("submission without a question must be rejected")
	}
}
