package service

import (
	"testing"
	"time"
)

func strPtr(s string) *string { return &s }

func completeProfile() ProfileFields {
	bd := time.Date(1995, 4, 12, 0, 0, 0, 0, time.UTC)
	return ProfileFields{
		Name:      "Siti Rahma",
		Phone:     strPtr("081234567890"),
		Address:   strPtr("Jl. Melati No. 3"),
		Gender:    strPtr("female"),
		Birthdate: &bd,
	}
}

func TestCompleteProfileHasNoMissingFields(t *testing.T) {
	p := completeProfile()
	if missing := MissingProfileFields(p); len(missing) != 0 {
		t.Fatalf("expected no missing fields, got %v", missing)
	}
	if !IsProfileComplete(p) {
		t.Fatal("expected profile to be complete")
	}
}

func TestMissingFieldsAreListedWithLabels(t *testing.T) {
	p := completeProfile()
	p.Phone = nil
	p.Address = strPtr("   ") // whitespace dianggap kosong
	p.Birthdate = nil

	missing := MissingProfileFields(p)
	if len(missing) != 3 {
		t.Fatalf("expected 3 missing fields, got %d: %v", len(missing), missing)
	}

	got := map[string]string{}
	for _, m := range missing {
		got[m.Field] = m.Label
	}
	for field, label := range map[string]string{
		"phone":     "No. Telepon",
		"address":   "Alamat",
		"birthdate": "Tanggal Lahir",
	} {
		if got[field] != label {
			t.Fatalf("field %q: expected label %q, got %q", field, label, got[field])
		}
	}
	if IsProfileComplete(p) {
		t.Fatal("expected profile to be incomplete")
	}
}

func TestEmptyNameBlocksCompleteness(t *testing.T) {
	p := completeProfile()
	p.Name = ""
	missing := MissingProfileFields(p)
	if len(missing) != 1 || missing[0].Field != "name" {
		t.Fatalf("expected only name missing, got %v", missing)
	}
}
