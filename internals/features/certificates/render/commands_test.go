package render

import (
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestDisplayTitleTruncatesLongTitles(t *testing.T) {
	long := strings.Repeat("a", 45)
	got := DisplayTitle(long)
	if got != strings.Repeat("a", 40)+"…" {
		t.Fatalf("expected 40 chars + ellipsis, got %q", got)
	}

	short := strings.Repeat("b", 40)
	if DisplayTitle(short) != short {
		t.Fatalf("title of exactly 40 chars must not be modified")
	}
}

func TestDisplayCodeFallback(t *testing.T) {
	if DisplayCode("") != "CERT-XXXXXX" {
		t.Fatalf("empty code must fall back to literal placeholder")
	}
	if DisplayCode("CERT-A1B2C3") != "CERT-A1B2C3" {
		t.Fatalf("real code must pass through unchanged")
	}
}

func TestCommandsAreDeterministic(t *testing.T) {
	issued := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	rec := Record{
		UserName:         "Budi Santoso",
		EventTitle:       "Belajar Go dari Nol",
		OrganizationName: "Kursusku Academy",
		ScorePercent:     87.5,
		CertificateCode:  "CERT-A1B2C3",
		IssuedAt:         &issued,
	}

	first := Commands(rec)
	second := Commands(rec)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("same record must yield identical command sequences")
	}
}

func TestCommandsLayout(t *testing.T) {
	rec := Record{UserName: "Budi", ScorePercent: 90}
	cmds := Commands(rec)

	var borders []Command
	rotations := map[int]bool{}
	for _, cmd := range cmds {
		switch cmd.Kind {
		case CmdBorder:
			borders = append(borders, cmd)
		case CmdOrnament:
			rotations[cmd.RotationDeg] = true
		}
	}

	if len(borders) != 3 {
		t.Fatalf("expected 3 concentric borders, got %d", len(borders))
	}
	wantBorders := []struct{ inset, thickness int }{{20, 8}, {35, 3}, {45, 2}}
	for i, want := range wantBorders {
		if borders[i].Inset != want.inset || borders[i].Thickness != want.thickness {
			t.Fatalf("border %d: got inset=%d thickness=%d, want %+v", i, borders[i].Inset, borders[i].Thickness, want)
		}
	}

	for _, deg := range []int{0, 90, 180, 270} {
		if !rotations[deg] {
			t.Fatalf("missing corner ornament at %d°", deg)
		}
	}
}

func TestCommandsTextFallbacks(t *testing.T) {
	cmds := Commands(Record{})

	texts := map[string]bool{}
	for _, cmd := range cmds {
		if cmd.Kind == CmdText {
			texts[cmd.Text] = true
		}
	}

	for _, want := range []string{"Peserta", "Kursus Online", "Kursusku", "CERT-XXXXXX"} {
		if !texts[want] {
			t.Fatalf("expected fallback text %q in command stream", want)
		}
	}
}

func TestDrawProducesPNG(t *testing.T) {
	data, err := Draw(Record{UserName: "Budi", ScorePercent: 85})
	if err != nil {
		t.Fatalf("draw failed: %v", err)
	}
	// PNG magic bytes
	if len(data) < 8 || string(data[1:4]) != "PNG" {
		t.Fatalf("output is not a PNG (%d bytes)", len(data))
	}
}
