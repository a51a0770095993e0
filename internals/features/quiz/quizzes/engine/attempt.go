// file: internals/features/quiz/quizzes/engine/attempt.go
//
// Attempt memodelkan satu sesi pengerjaan kuis: ready → (pilih jawaban) →
// submit → result; retake mengosongkan jawaban tanpa fetch ulang soal.
package engine

import (
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
)

// Huruf opsi yang dikenal. Opsi tanpa teks tidak ditawarkan.
var optionLetters = []string{"A", "B", "C", "D"}

type Question struct {
	ID      uuid.UUID
	Text    string
	Options []string // index 0..3 = huruf A..D
	Correct string   // huruf jawaban benar
}

// OfferedLetters: hanya huruf dengan teks opsi non-kosong yang boleh dipilih.
func (q Question) OfferedLetters() []string {
	var offered []string
	for i, opt := range q.Options {
		if i >= len(optionLetters) {
			break
		}
		if strings.TrimSpace(opt) != "" {
			offered = append(offered, optionLetters[i])
		}
	}
	return offered
}

type Result struct {
	Passed         bool    `json:"passed"`
	ScorePercent   float64 `json:"score_percent"`
	CorrectAnswers int     `json:"correct_answers"`
	TotalQuestions int     `json:"total_questions"`
}

type Attempt struct {
	questions []Question
	answers   map[uuid.UUID]string
}

func NewAttempt(questions []Question) *Attempt {
	return &Attempt{
		questions: questions,
		answers:   make(map[uuid.UUID]string, len(questions)),
	}
}

func (a *Attempt) Questions() []Question { return a.questions }

// SelectAnswer mencatat satu pilihan untuk satu soal. Memilih ulang soal yang
// sudah dijawab menimpa pilihan lama (tidak ada riwayat).
func (a *Attempt) SelectAnswer(questionID uuid.UUID, letter string) error {
	letter = strings.ToUpper(strings.TrimSpace(letter))

	var q *Question
	for i := range a.questions {
		if a.questions[i].ID == questionID {
			q = &a.questions[i]
			break
		}
	}
	if q == nil {
		return fmt.Errorf("soal tidak ditemukan")
	}

	valid := false
	for _, offered := range q.OfferedLetters() {
		if offered == letter {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("pilihan %q tidak tersedia untuk soal ini", letter)
	}

	a.answers[questionID] = letter
	return nil
}

func (a *Attempt) AnsweredCount() int { return len(a.answers) }

// Complete ⇔ setiap soal punya tepat satu jawaban tercatat.
func (a *Attempt) Complete() bool {
	return len(a.answers) == len(a.questions)
}

// Validate: prasyarat submit. Pesan siap tampil ke user; tidak ada network
// call yang boleh terjadi kalau ini gagal.
func (a *Attempt) Validate() error {
	if len(a.questions) == 0 {
		return fmt.Errorf("kuis tidak punya soal")
	}
	if !a.Complete() {
		return fmt.Errorf("masih ada %d soal yang belum dijawab", len(a.questions)-len(a.answers))
	}
	return nil
}

// Grade menilai seluruh jawaban sekali jalan. minScore datang dari konteks
// (server-supplied); 80 hanyalah default tampilan, bukan aturan di sini.
func (a *Attempt) Grade(minScore float64) (Result, error) {
	if err := a.Validate(); err != nil {
		return Result{}, err
	}

	correct := 0
	for _, q := range a.questions {
		if a.answers[q.ID] == strings.ToUpper(q.Correct) {
			correct++
		}
	}

	total := len(a.questions)
	score := float64(correct) / float64(total) * 100
	// satu desimal, konsisten dengan tampilan skor di mana pun
	score = math.Round(score*10) / 10

	return Result{
		Passed:         score >= minScore,
		ScorePercent:   score,
		CorrectAnswers: correct,
		TotalQuestions: total,
	}, nil
}

// Retake mengosongkan jawaban dan kembali ke ready; set soal dipakai ulang
// (tidak di-fetch ulang). Attempt baru menggantikan penuh result lama.
func (a *Attempt) Retake() {
	a.answers = make(map[uuid.UUID]string, len(a.questions))
}
