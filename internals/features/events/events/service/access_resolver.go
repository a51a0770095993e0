// file: internals/features/events/events/service/access_resolver.go
//
// AccessResolver menggabungkan tiga state yang di-fetch terpisah (status beli
// per sesi, progress kuis per event, status affiliate) menjadi satu keputusan
// akses yang koheren untuk halaman detail event.
package service

import (
	"context"
	"log"
	"sync"

	"github.com/google/uuid"

	"kursusku_backend/internals/features/events/events/model"
)

// ============================
// Status kuis per sesi
// ============================

type QuizStatus string

const (
	QuizStatusNone     QuizStatus = "no_quiz"
	QuizStatusNotTaken QuizStatus = "not_taken"
	QuizStatusPassed   QuizStatus = "passed"
	QuizStatusFailed   QuizStatus = "failed"
)

// QuizEntry adalah potongan progress kuis yang dibutuhkan resolver.
// Entry yang tidak ada = sesi tidak punya kuis / belum pernah dikerjakan.
type QuizEntry struct {
	SessionID uuid.UUID
	HasQuiz   bool
	Completed bool
	Score     float64
	Passed    bool
}

// ============================
// Sumber data (di-inject supaya bisa dites tanpa DB)
// ============================

// PurchaseLookup: satu pengecekan beli per sesi, boleh gagal per-item.
type PurchaseLookup interface {
	HasPurchased(ctx context.Context, userID, sessionID uuid.UUID) (bool, error)
}

// ProgressLookup: satu dokumen progress per event.
type ProgressLookup interface {
	QuizEntries(ctx context.Context, userID, eventID uuid.UUID) ([]QuizEntry, error)
}

// ============================
// Hasil per sesi
// ============================

type SessionActions struct {
	CanClaimFree     bool `json:"can_claim_free"`
	CanBuy           bool `json:"can_buy"`
	CanAddCart       bool `json:"can_add_cart"`
	CanOpenMaterials bool `json:"can_open_materials"`
	CanTakeQuiz      bool `json:"can_take_quiz"`
}

type SessionAccess struct {
	Session     model.EventSessionModel
	IsPurchased bool
	// Resolved=false berarti cek beli gagal: status "belum diketahui",
	// tidak boleh dinaikkan diam-diam menjadi purchased.
	Resolved   bool
	QuizStatus QuizStatus
	QuizScore  *float64
	Actions    SessionActions
}

// AccessResult membawa event id yang diminta supaya caller bisa membuang
// response basi (halaman sudah pindah ke event lain).
type AccessResult struct {
	EventID  uuid.UUID
	Sessions []SessionAccess
}

// IsStaleFor: true jika hasil ini bukan untuk event yang sedang ditampilkan.
func (r *AccessResult) IsStaleFor(requestedEventID uuid.UUID) bool {
	return r.EventID != requestedEventID
}

// ============================
// Resolver
// ============================

type AccessResolver struct {
	Purchases PurchaseLookup
	Progress  ProgressLookup
}

// ResolveSessions mengecek status beli tiap sesi secara paralel (fan-out) lalu
// menggabungkannya dengan progress kuis. Kegagalan satu sesi tidak memblokir
// atau merusak sesi lain; sesi yang gagal dicek tetap di status sebelumnya
// (default false). Urutan output selalu mengikuti urutan input.
func (r *AccessResolver) ResolveSessions(ctx context.Context, userID uuid.UUID, event model.EventModel, sessions []model.EventSessionModel, prev map[uuid.UUID]bool) AccessResult {
	result := AccessResult{
		EventID:  event.EventID,
		Sessions: make([]SessionAccess, len(sessions)),
	}

	// 1) Fan-out cek beli per sesi — independen, tanpa jaminan urutan selesai
	var wg sync.WaitGroup
	for i := range sessions {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			sess := sessions[idx]

			purchased := prev[sess.EventSessionID] // state sebelumnya, default false
			resolved := false

			if r.Purchases != nil {
				ok, err := r.Purchases.HasPurchased(ctx, userID, sess.EventSessionID)
				if err != nil {
					// gagal ≠ "belum beli": pertahankan state lama, tandai unresolved
					log.Printf("[ERROR] cek pembelian sesi %s gagal: %v", sess.EventSessionID, err)
				} else {
					resolved = true
					// monoton: hanya naik false→true, tidak pernah turun
					purchased = purchased || ok
				}
			}

			result.Sessions[idx] = SessionAccess{
				Session:     sess,
				IsPurchased: purchased,
				Resolved:    resolved,
			}
		}(i)
	}
	wg.Wait()

	// 2) Progress kuis: satu fetch per event; kegagalan di sini tidak
	//    membatalkan hasil cek beli — status kuis jatuh ke "no_quiz"
	var entries []QuizEntry
	if r.Progress != nil {
		var err error
		entries, err = r.Progress.QuizEntries(ctx, userID, event.EventID)
		if err != nil {
			log.Printf("[ERROR] ambil progress kuis event %s gagal: %v", event.EventID, err)
			entries = nil
		}
	}

	// 3) Gabungkan + turunkan aksi UI
	for i := range result.Sessions {
		sa := &result.Sessions[i]
		entry := entryForSession(entries, sa.Session.EventSessionID)
		sa.QuizStatus, sa.QuizScore = deriveQuizStatus(entry)
		sa.Actions = DeriveSessionActions(event, sa.Session, sa.IsPurchased, sa.QuizStatus)
	}

	return result
}

// entryForSession: lookup linear by session_id (ukuran list ≤ jumlah sesi)
func entryForSession(entries []QuizEntry, sessionID uuid.UUID) *QuizEntry {
	for i := range entries {
		if entries[i].SessionID == sessionID {
			return &entries[i]
		}
	}
	return nil
}

func deriveQuizStatus(entry *QuizEntry) (QuizStatus, *float64) {
	if entry == nil || !entry.HasQuiz {
		return QuizStatusNone, nil
	}
	if !entry.Completed {
		return QuizStatusNotTaken, nil
	}
	score := entry.Score
	if entry.Passed {
		return QuizStatusPassed, &score
	}
	return QuizStatusFailed, &score
}

// DeriveSessionActions menurunkan aksi yang boleh ditampilkan untuk satu sesi.
// Aturan:
//   - event SCHEDULED ⇒ semua aksi mati, berapa pun harganya
//   - terkunci + gratis ⇒ klaim gratis
//   - terkunci + berbayar ⇒ beli & tambah keranjang
//   - terbuka ⇒ buka materi selalu; kerjakan kuis hanya jika sesi punya kuis
func DeriveSessionActions(event model.EventModel, sess model.EventSessionModel, isPurchased bool, quizStatus QuizStatus) SessionActions {
	if event.IsScheduled() {
		return SessionActions{}
	}

	if !isPurchased {
		if sess.IsFree() {
			return SessionActions{CanClaimFree: true}
		}
		return SessionActions{CanBuy: true, CanAddCart: true}
	}

	return SessionActions{
		CanOpenMaterials: true,
		CanTakeQuiz:      quizStatus != QuizStatusNone,
	}
}
