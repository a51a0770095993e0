package dto

import "testing"

func TestNotYetEligibleStatusBranches(t *testing.T) {
	withQuizzes := NotYetEligibleStatus(true, 56.7, 80)
	if withQuizzes.HasCertificate {
		t.Fatal("branch must report no certificate")
	}
	if withQuizzes.TotalScore == nil || withQuizzes.MinRequired == nil {
		t.Fatalf("event with quizzes must carry score + threshold: %+v", withQuizzes)
	}
	if *withQuizzes.TotalScore != 56.7 || *withQuizzes.MinRequired != 80 {
		t.Fatalf("unexpected score pair: %v / %v", *withQuizzes.TotalScore, *withQuizzes.MinRequired)
	}

	// event tanpa kuis: pesan generik, pasangan skor tidak ikut
	noQuizzes := NotYetEligibleStatus(false, 0, 80)
	if noQuizzes.HasCertificate {
		t.Fatal("branch must report no certificate")
	}
	if noQuizzes.TotalScore != nil || noQuizzes.MinRequired != nil {
		t.Fatalf("event without quizzes must omit the score pair: %+v", noQuizzes)
	}
	if noQuizzes.Message == "" || noQuizzes.Message == withQuizzes.Message {
		t.Fatal("the two no-certificate branches must be distinguishable")
	}
}
