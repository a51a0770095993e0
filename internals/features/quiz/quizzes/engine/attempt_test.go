package engine

import (
	"testing"

	"github.com/google/uuid"
)

func threeQuestions() []Question {
	return []Question{
		{ID: uuid.New(), Text: "Q1", Options: []string{"a", "b", "c", "d"}, Correct: "A"},
		{ID: uuid.New(), Text: "Q2", Options: []string{"a", "b", "c", "d"}, Correct: "B"},
		{ID: uuid.New(), Text: "Q3", Options: []string{"a", "b", "c", "d"}, Correct: "C"},
	}
}

func TestSubmitRejectedWhileIncomplete(t *testing.T) {
	qs := threeQuestions()
	a := NewAttempt(qs)

	if err := a.Validate(); err == nil {
		t.Fatal("empty attempt must not validate")
	}

	if err := a.SelectAnswer(qs[0].ID, "A"); err != nil {
		t.Fatal(err)
	}
	if err := a.SelectAnswer(qs[1].ID, "B"); err != nil {
		t.Fatal(err)
	}
	if a.Complete() {
		t.Fatal("2 of 3 answered must not be complete")
	}
	if err := a.Validate(); err == nil {
		t.Fatal("incomplete attempt must be rejected before any submission")
	}

	if err := a.SelectAnswer(qs[2].ID, "C"); err != nil {
		t.Fatal(err)
	}
	if !a.Complete() {
		t.Fatal("all answered should be complete")
	}
	if err := a.Validate(); err != nil {
		t.Fatalf("complete attempt should validate: %v", err)
	}
}

func TestSelectAnswerOverwritesWithoutHistory(t *testing.T) {
	qs := threeQuestions()
	a := NewAttempt(qs)

	if err := a.SelectAnswer(qs[0].ID, "A"); err != nil {
		t.Fatal(err)
	}
	if err := a.SelectAnswer(qs[0].ID, "D"); err != nil {
		t.Fatal(err)
	}
	if a.AnsweredCount() != 1 {
		t.Fatalf("overwrite must keep a single recorded answer, got %d", a.AnsweredCount())
	}
	_ = a.SelectAnswer(qs[1].ID, "B")
	_ = a.SelectAnswer(qs[2].ID, "C")

	res, err := a.Grade(80)
	if err != nil {
		t.Fatal(err)
	}
	// Q1 dijawab D (salah) setelah ditimpa dari A (benar)
	if res.CorrectAnswers != 2 {
		t.Fatalf("expected 2 correct after overwrite, got %d", res.CorrectAnswers)
	}
}

func TestLettersWithoutOptionTextAreNotOffered(t *testing.T) {
	q := Question{ID: uuid.New(), Text: "Q", Options: []string{"ya", "tidak", "", ""}, Correct: "A"}
	a := NewAttempt([]Question{q})

	offered := q.OfferedLetters()
	if len(offered) != 2 || offered[0] != "A" || offered[1] != "B" {
		t.Fatalf("expected offered letters [A B], got %v", offered)
	}
	if err := a.SelectAnswer(q.ID, "C"); err == nil {
		t.Fatal("letter without option text must be rejected")
	}
	if err := a.SelectAnswer(q.ID, "b"); err != nil {
		t.Fatalf("lowercase letter should be accepted: %v", err)
	}
}

func TestGradeUsesProvidedThreshold(t *testing.T) {
	qs := threeQuestions()
	a := NewAttempt(qs)
	_ = a.SelectAnswer(qs[0].ID, "A")
	_ = a.SelectAnswer(qs[1].ID, "B")
	_ = a.SelectAnswer(qs[2].ID, "D") // salah

	res, err := a.Grade(80)
	if err != nil {
		t.Fatal(err)
	}
	if res.ScorePercent != 66.7 {
		t.Fatalf("expected 66.7, got %v", res.ScorePercent)
	}
	if res.Passed {
		t.Fatal("66.7 must fail an 80 threshold")
	}

	// threshold dari konteks, bukan angka mati: 60 harus lulus
	res2, _ := a.Grade(60)
	if !res2.Passed {
		t.Fatal("66.7 must pass a 60 threshold")
	}
	if res2.CorrectAnswers != 2 || res2.TotalQuestions != 3 {
		t.Fatalf("unexpected counts: %+v", res2)
	}
}

func TestRetakeClearsAnswersKeepsQuestions(t *testing.T) {
	qs := threeQuestions()
	a := NewAttempt(qs)
	_ = a.SelectAnswer(qs[0].ID, "A")
	_ = a.SelectAnswer(qs[1].ID, "B")
	_ = a.SelectAnswer(qs[2].ID, "C")

	if _, err := a.Grade(80); err != nil {
		t.Fatal(err)
	}

	a.Retake()
	if a.AnsweredCount() != 0 {
		t.Fatal("retake must clear answers")
	}
	if len(a.Questions()) != 3 {
		t.Fatal("retake must keep the question set")
	}
}

func TestGradeEmptyQuizRejected(t *testing.T) {
	a := NewAttempt(nil)
	if _, err := a.Grade(80); err == nil {
		t.Fatal("quiz without questions must not grade")
	}
}
