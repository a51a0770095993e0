package service

import (
	"testing"

	"github.com/google/uuid"
)

func TestBuildProgressAveragesOverAllQuizzes(t *testing.T) {
	eventID := uuid.New()
	s1, s2, s3 := uuid.New(), uuid.New(), uuid.New()
	entries := []ProgressEntry{
		{SessionID: s1, Completed: true, Score: 90, Passed: true},
		{SessionID: s2, Completed: true, Score: 80, Passed: true},
		{SessionID: s3}, // belum dikerjakan, dihitung 0
	}

	p := BuildProgress(eventID, 3, entries, 80)
	if !p.HasQuizzes {
		t.Fatal("expected has_quizzes")
	}
	if p.TotalPercent != 56.7 {
		t.Fatalf("expected 56.7, got %v", p.TotalPercent)
	}
	if p.CertificateEligible() {
		t.Fatal("56.7 must not be eligible against 80")
	}
}

func TestEligibilityComparesAgainstServerThreshold(t *testing.T) {
	eventID := uuid.New()
	s1 := uuid.New()
	entries := []ProgressEntry{{SessionID: s1, Completed: true, Score: 85, Passed: true}}

	eligible := BuildProgress(eventID, 1, entries, 80)
	if eligible.TotalPercent != 85 || !eligible.CertificateEligible() {
		t.Fatalf("85 vs 80 should be eligible: %+v", eligible)
	}

	notYet := BuildProgress(eventID, 1, []ProgressEntry{{SessionID: s1, Completed: true, Score: 79}}, 80)
	if notYet.CertificateEligible() {
		t.Fatal("79 vs 80 must not be eligible")
	}

	// ambang dari server dipakai apa adanya, bukan angka 80 mati
	custom := BuildProgress(eventID, 1, []ProgressEntry{{SessionID: s1, Completed: true, Score: 79}}, 70)
	if !custom.CertificateEligible() {
		t.Fatal("79 vs 70 should be eligible")
	}
}

func TestEventWithoutQuizzesIsNeverEligible(t *testing.T) {
	p := BuildProgress(uuid.New(), 0, nil, 80)
	if p.HasQuizzes || p.TotalPercent != 0 {
		t.Fatalf("unexpected progress: %+v", p)
	}
	if p.CertificateEligible() {
		t.Fatal("event without quizzes must not be certificate-eligible")
	}
}

func TestEntryForReturnsNilWhenAbsent(t *testing.T) {
	s1 := uuid.New()
	p := BuildProgress(uuid.New(), 1, []ProgressEntry{{SessionID: s1, Completed: true, Score: 50}}, 80)

	if p.EntryFor(s1) == nil {
		t.Fatal("expected entry for known session")
	}
	// entry tidak ada = sesi tanpa kuis, bukan kuis gagal
	if p.EntryFor(uuid.New()) != nil {
		t.Fatal("unknown session must yield nil entry")
	}
}
