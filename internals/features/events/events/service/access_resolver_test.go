package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"

	"kursusku_backend/internals/features/events/events/model"
)

type fakePurchases struct {
	mu      sync.Mutex
	paid    map[uuid.UUID]bool
	failing map[uuid.UUID]bool
	calls   int
}

func (f *fakePurchases) HasPurchased(_ context.Context, _, sessionID uuid.UUID) (bool, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.failing[sessionID] {
		return false, errors.New("timeout")
	}
	return f.paid[sessionID], nil
}

type fakeProgress struct {
	entries []QuizEntry
	err     error
}

func (f *fakeProgress) QuizEntries(_ context.Context, _, _ uuid.UUID) ([]QuizEntry, error) {
	return f.entries, f.err
}

func price(v int64) *int64 { return &v }

func makeSessions(n int) []model.EventSessionModel {
	out := make([]model.EventSessionModel, n)
	for i := range out {
		out[i] = model.EventSessionModel{
			EventSessionID:    uuid.New(),
			EventSessionTitle: "Sesi",
			EventSessionPrice: price(50000),
			EventSessionOrder: i + 1,
		}
	}
	return out
}

func publishedEvent() model.EventModel {
	return model.EventModel{EventID: uuid.New(), EventPublishStatus: model.EventPublishStatusPublished}
}

func TestResolvePreservesSessionOrder(t *testing.T) {
	event := publishedEvent()
	sessions := makeSessions(8)
	paid := map[uuid.UUID]bool{sessions[2].EventSessionID: true, sessions[5].EventSessionID: true}

	r := &AccessResolver{Purchases: &fakePurchases{paid: paid}, Progress: &fakeProgress{}}
	res := r.ResolveSessions(context.Background(), uuid.New(), event, sessions, nil)

	if len(res.Sessions) != len(sessions) {
		t.Fatalf("expected %d sessions, got %d", len(sessions), len(res.Sessions))
	}
	for i, sa := range res.Sessions {
		if sa.Session.EventSessionID != sessions[i].EventSessionID {
			t.Fatalf("order broken at index %d", i)
		}
		want := paid[sessions[i].EventSessionID]
		if sa.IsPurchased != want {
			t.Fatalf("session %d: expected purchased=%v, got %v", i, want, sa.IsPurchased)
		}
	}
}

func TestFailedCheckDoesNotCorruptSiblings(t *testing.T) {
	event := publishedEvent()
	sessions := makeSessions(4)
	paid := map[uuid.UUID]bool{sessions[0].EventSessionID: true}
	failing := map[uuid.UUID]bool{sessions[1].EventSessionID: true}

	r := &AccessResolver{Purchases: &fakePurchases{paid: paid, failing: failing}, Progress: &fakeProgress{}}
	res := r.ResolveSessions(context.Background(), uuid.New(), event, sessions, nil)

	if !res.Sessions[0].IsPurchased || !res.Sessions[0].Resolved {
		t.Fatal("session 0 should be purchased and resolved")
	}
	// sesi yang gagal dicek: tetap di default false, unresolved, bukan error state
	if res.Sessions[1].IsPurchased || res.Sessions[1].Resolved {
		t.Fatalf("failed session should stay at prior state: %+v", res.Sessions[1])
	}
	if res.Sessions[2].IsPurchased || !res.Sessions[2].Resolved {
		t.Fatal("session 2 should resolve to not purchased")
	}
}

func TestFailedCheckRetainsPriorPurchasedState(t *testing.T) {
	event := publishedEvent()
	sessions := makeSessions(2)
	failing := map[uuid.UUID]bool{sessions[0].EventSessionID: true}
	prev := map[uuid.UUID]bool{sessions[0].EventSessionID: true}

	r := &AccessResolver{Purchases: &fakePurchases{failing: failing}, Progress: &fakeProgress{}}
	res := r.ResolveSessions(context.Background(), uuid.New(), event, sessions, prev)

	// isPurchased hanya boleh naik false→true, tidak pernah true→false
	if !res.Sessions[0].IsPurchased {
		t.Fatal("prior purchased=true must survive a failed re-check")
	}
}

func TestResolveIsIdempotent(t *testing.T) {
	event := publishedEvent()
	sessions := makeSessions(5)
	paid := map[uuid.UUID]bool{sessions[1].EventSessionID: true, sessions[4].EventSessionID: true}

	r := &AccessResolver{Purchases: &fakePurchases{paid: paid}, Progress: &fakeProgress{}}
	first := r.ResolveSessions(context.Background(), uuid.New(), event, sessions, nil)
	second := r.ResolveSessions(context.Background(), uuid.New(), event, sessions, nil)

	for i := range first.Sessions {
		if first.Sessions[i].IsPurchased != second.Sessions[i].IsPurchased {
			t.Fatalf("idempotence violated at session %d", i)
		}
	}
}

func TestProgressFailureLeavesPurchaseIntact(t *testing.T) {
	event := publishedEvent()
	sessions := makeSessions(2)
	paid := map[uuid.UUID]bool{sessions[0].EventSessionID: true}

	r := &AccessResolver{
		Purchases: &fakePurchases{paid: paid},
		Progress:  &fakeProgress{err: errors.New("unavailable")},
	}
	res := r.ResolveSessions(context.Background(), uuid.New(), event, sessions, nil)

	if !res.Sessions[0].IsPurchased {
		t.Fatal("purchase state must survive a progress fetch failure")
	}
	if res.Sessions[0].QuizStatus != QuizStatusNone {
		t.Fatalf("expected quiz status to fall back to no_quiz, got %s", res.Sessions[0].QuizStatus)
	}
}

func TestQuizStatusDerivation(t *testing.T) {
	event := publishedEvent()
	sessions := makeSessions(4)
	paid := map[uuid.UUID]bool{}
	for _, s := range sessions {
		paid[s.EventSessionID] = true
	}
	entries := []QuizEntry{
		{SessionID: sessions[0].EventSessionID, HasQuiz: true, Completed: true, Score: 90, Passed: true},
		{SessionID: sessions[1].EventSessionID, HasQuiz: true, Completed: true, Score: 40},
		{SessionID: sessions[2].EventSessionID, HasQuiz: true},
		// sessions[3]: tidak ada entry ⇒ no_quiz, bukan "gagal"
	}

	r := &AccessResolver{Purchases: &fakePurchases{paid: paid}, Progress: &fakeProgress{entries: entries}}
	res := r.ResolveSessions(context.Background(), uuid.New(), event, sessions, nil)

	expect := []QuizStatus{QuizStatusPassed, QuizStatusFailed, QuizStatusNotTaken, QuizStatusNone}
	for i, want := range expect {
		if res.Sessions[i].QuizStatus != want {
			t.Fatalf("session %d: expected %s, got %s", i, want, res.Sessions[i].QuizStatus)
		}
	}
	if res.Sessions[0].QuizScore == nil || *res.Sessions[0].QuizScore != 90 {
		t.Fatal("passed session should carry its score")
	}
	if res.Sessions[3].Actions.CanTakeQuiz {
		t.Fatal("session without quiz must not offer the quiz action")
	}
	if !res.Sessions[0].Actions.CanOpenMaterials {
		t.Fatal("purchased session must offer open-materials")
	}
}

func TestDeriveSessionActions(t *testing.T) {
	published := publishedEvent()
	scheduled := model.EventModel{EventID: uuid.New(), EventPublishStatus: model.EventPublishStatusScheduled}
	free := model.EventSessionModel{EventSessionID: uuid.New()}
	cheap := model.EventSessionModel{EventSessionID: uuid.New(), EventSessionPrice: price(0)}
	payed := model.EventSessionModel{EventSessionID: uuid.New(), EventSessionPrice: price(50000)}

	cases := []struct {
		name      string
		event     model.EventModel
		session   model.EventSessionModel
		purchased bool
		quiz      QuizStatus
		want      SessionActions
	}{
		{"locked free session offers claim", published, free, false, QuizStatusNone, SessionActions{CanClaimFree: true}},
		{"zero price behaves as free", published, cheap, false, QuizStatusNone, SessionActions{CanClaimFree: true}},
		{"locked paid session offers buy and cart", published, payed, false, QuizStatusNone, SessionActions{CanBuy: true, CanAddCart: true}},
		{"scheduled event disables everything", scheduled, payed, false, QuizStatusNone, SessionActions{}},
		{"scheduled event disables even free claim", scheduled, free, false, QuizStatusNone, SessionActions{}},
		{"unlocked session opens materials", published, payed, true, QuizStatusNone, SessionActions{CanOpenMaterials: true}},
		{"unlocked session with quiz offers quiz", published, payed, true, QuizStatusNotTaken, SessionActions{CanOpenMaterials: true, CanTakeQuiz: true}},
	}

	for _, tc := range cases {
		got := DeriveSessionActions(tc.event, tc.session, tc.purchased, tc.quiz)
		if got != tc.want {
			t.Fatalf("%s: expected %+v, got %+v", tc.name, tc.want, got)
		}
	}
}

func TestStalenessCheck(t *testing.T) {
	event := publishedEvent()
	r := &AccessResolver{Purchases: &fakePurchases{}, Progress: &fakeProgress{}}
	res := r.ResolveSessions(context.Background(), uuid.New(), event, makeSessions(1), nil)

	if res.IsStaleFor(event.EventID) {
		t.Fatal("result for the requested event must not be stale")
	}
	if !res.IsStaleFor(uuid.New()) {
		t.Fatal("result for another event must be reported stale")
	}
}
