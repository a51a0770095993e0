// file: internals/features/quiz/progress/service/aggregator.go
//
// Aggregator mereduksi hasil kuis per sesi menjadi satu dokumen progress per
// event: total persen + flag kelayakan sertifikat. Perhitungan di sini
// otoritatif; client hanya membandingkan total_percent dengan
// min_score_required.
package service

import (
	"context"
	"errors"
	"math"

	"github.com/google/uuid"
	"gorm.io/gorm"

	progressModel "kursusku_backend/internals/features/quiz/progress/model"
)

// Default ambang kelulusan kalau event tidak punya setting.
const DefaultMinScoreRequired = 80.0

type ProgressEntry struct {
	SessionID uuid.UUID `json:"session_id"`
	Completed bool      `json:"completed"`
	Score     float64   `json:"score"`
	Passed    bool      `json:"passed"`
}

type EventProgress struct {
	EventID          uuid.UUID       `json:"event_id"`
	HasQuizzes       bool            `json:"has_quizzes"`
	TotalPercent     float64         `json:"total_percent"`
	MinScoreRequired float64         `json:"min_score_required"`
	Entries          []ProgressEntry `json:"entries"`
}

// EntryFor: lookup linear by session_id; list ≤ jumlah sesi, cukup.
// nil ⇒ sesi tidak punya kuis / belum pernah dikerjakan — bukan "gagal".
func (p *EventProgress) EntryFor(sessionID uuid.UUID) *ProgressEntry {
	for i := range p.Entries {
		if p.Entries[i].SessionID == sessionID {
			return &p.Entries[i]
		}
	}
	return nil
}

// CertificateEligible: satu-satunya aturan kelayakan sertifikat.
func (p *EventProgress) CertificateEligible() bool {
	return p.HasQuizzes && p.TotalPercent >= p.MinScoreRequired
}

// BuildProgress: reduksi murni, dipisah dari query supaya bisa dites.
// totalPercent = rata-rata skor attempt terakhir atas SEMUA kuis event
// (kuis yang belum dikerjakan dihitung 0).
func BuildProgress(eventID uuid.UUID, quizCount int, entries []ProgressEntry, minScore float64) EventProgress {
	p := EventProgress{
		EventID:          eventID,
		HasQuizzes:       quizCount > 0,
		MinScoreRequired: minScore,
		Entries:          entries,
	}
	if quizCount == 0 {
		return p
	}

	var sum float64
	for _, e := range entries {
		if e.Completed {
			sum += e.Score
		}
	}
	p.TotalPercent = math.Round(sum/float64(quizCount)*10) / 10
	return p
}

// ============================
// Aggregator (DB-backed)
// ============================

type Aggregator struct {
	DB *gorm.DB
}

func NewAggregator(db *gorm.DB) *Aggregator {
	return &Aggregator{DB: db}
}

// baris gabungan kuis ↔ hasil user (LEFT JOIN, hasil bisa NULL)
type quizResultRow struct {
	SessionID    uuid.UUID `gorm:"column:session_id"`
	ResultScore  *float64  `gorm:"column:result_score"`
	ResultPassed *bool     `gorm:"column:result_passed"`
}

// Aggregate mengambil satu dokumen progress untuk (user, event).
func (a *Aggregator) Aggregate(ctx context.Context, userID, eventID uuid.UUID) (EventProgress, error) {
	var rows []quizResultRow
	err := a.DB.WithContext(ctx).
		Table("session_quizzes AS q").
		Select(`
			q.session_quiz_session_id AS session_id,
			r.user_quiz_result_score AS result_score,
			r.user_quiz_result_passed AS result_passed`).
		Joins("JOIN event_sessions AS s ON s.event_session_id = q.session_quiz_session_id").
		Joins("LEFT JOIN user_quiz_results AS r ON r.user_quiz_result_quiz_id = q.session_quiz_id AND r.user_quiz_result_user_id = ?", userID).
		Where("s.event_session_event_id = ?", eventID).
		Scan(&rows).Error
	if err != nil {
		return EventProgress{}, err
	}

	entries := make([]ProgressEntry, 0, len(rows))
	for _, r := range rows {
		entry := ProgressEntry{SessionID: r.SessionID}
		if r.ResultScore != nil {
			entry.Completed = true
			entry.Score = *r.ResultScore
			if r.ResultPassed != nil {
				entry.Passed = *r.ResultPassed
			}
		}
		entries = append(entries, entry)
	}

	minScore, err := a.MinScoreRequired(ctx, eventID)
	if err != nil {
		return EventProgress{}, err
	}

	return BuildProgress(eventID, len(rows), entries, minScore), nil
}

// MinScoreRequired: nilai dari server otoritatif; 80 hanya fallback
// saat event tidak punya setting.
func (a *Aggregator) MinScoreRequired(ctx context.Context, eventID uuid.UUID) (float64, error) {
	var setting progressModel.EventQuizSettingModel
	err := a.DB.WithContext(ctx).
		Where("event_quiz_setting_event_id = ?", eventID).
		First(&setting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return DefaultMinScoreRequired, nil
		}
		return 0, err
	}
	return setting.EventQuizSettingMinScoreRequired, nil
}
