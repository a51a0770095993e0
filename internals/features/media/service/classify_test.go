package service

import (
	"net/url"
	"testing"
)

func TestClassifyByExtension(t *testing.T) {
	cases := []struct {
		raw  string
		want FileKind
	}{
		{"materi/modul-1.pdf", KindPDF},
		{"https://cdn.example.com/files/doc.PDF?x=1", KindPDF}, // query dibuang, case dilipat
		{"foto.JPG", KindImage},
		{"diagram.webp", KindImage},
		{"ikon.svg", KindImage},
		{"slide.pptx", KindOffice},
		{"laporan.docx", KindOffice},
		{"rekap.xls", KindOffice},
		{"catatan.md", KindText},
		{"data.csv", KindText},
		{"config.xml", KindText},
		{"arsip.zip", KindUnknown},
		{"tanpa-ekstensi", KindUnknown},
		{"berakhir-titik.", KindUnknown},
		{"", KindUnknown},
		{"folder.v2/file", KindUnknown}, // titik di folder bukan ekstensi
	}

	for _, tc := range cases {
		if got := Classify(tc.raw); got != tc.want {
			t.Fatalf("Classify(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestViewerPlanPerKind(t *testing.T) {
	signed := "/api/u/media/stream/modul-1.pdf?exp=1&sig=abc"

	pdf := ViewerPlan(KindPDF, signed)
	if pdf.Mode != ViewerModeEmbed || !pdf.DownloadOverlay || pdf.SignedURL != signed {
		t.Fatalf("unexpected pdf plan: %+v", pdf)
	}

	img := ViewerPlan(KindImage, signed)
	if img.Mode != ViewerModeImage || !img.WatermarkBadge || !img.DisableDrag {
		t.Fatalf("unexpected image plan: %+v", img)
	}

	office := ViewerPlan(KindOffice, signed)
	if office.Mode != ViewerModeInfoCard {
		t.Fatalf("office must not render inline: %+v", office)
	}
	if office.SignedURL != "" || office.OpenInNewURL != signed {
		t.Fatalf("office escape hatch must be the only URL: %+v", office)
	}

	text := ViewerPlan(KindText, signed)
	if text.Mode != ViewerModeFrame || !text.SameOriginFrame {
		t.Fatalf("unexpected text plan: %+v", text)
	}

	unknown := ViewerPlan(KindUnknown, signed)
	if unknown.Mode != ViewerModePlaceholder {
		t.Fatalf("unknown must get placeholder: %+v", unknown)
	}
	// tidak pernah ada fallback link untuk jenis tak dikenal
	if unknown.SignedURL != "" || unknown.OpenInNewURL != "" {
		t.Fatalf("unknown plan must not carry any URL: %+v", unknown)
	}

	for _, plan := range []ViewerPlanSpec{pdf, img, office, text, unknown} {
		if !plan.SuppressContextMenu || !plan.BlockSavePrintKeys || !plan.DisableSelection {
			t.Fatalf("baseline protections missing: %+v", plan)
		}
		if plan.LoadTimeoutMS <= 0 {
			t.Fatalf("every plan needs a load timeout: %+v", plan)
		}
	}
}

func TestGuardReleaseIsIdempotent(t *testing.T) {
	g := NewGuard()

	rel1 := g.Install("viewer-1")
	rel2 := g.Install("viewer-2")
	if g.InstalledCount() != 2 {
		t.Fatalf("expected 2 installed, got %d", g.InstalledCount())
	}

	rel1()
	rel1() // lepas kedua kali harus no-op
	if g.InstalledCount() != 1 {
		t.Fatalf("double release leaked: %d", g.InstalledCount())
	}

	rel2()
	if g.InstalledCount() != 0 {
		t.Fatalf("expected zero installed after full release, got %d", g.InstalledCount())
	}
}

func TestSignerRoundTrip(t *testing.T) {
	s := NewSigner("rahasia-test")

	if got := Filename("bucket/kursus/video/intro.mp4"); got != "intro.mp4" {
		t.Fatalf("Filename = %q", got)
	}
	if got := Filename("intro.mp4?x=1"); got != "intro.mp4" {
		t.Fatalf("query must not leak into filename: %q", got)
	}

	url := s.SignedURL("/api/u/media/stream", "intro.mp4")
	exp, sig := parseSignedURL(t, url)

	if err := s.Verify("intro.mp4", exp, sig); err != nil {
		t.Fatalf("fresh signature must verify: %v", err)
	}
	if err := s.Verify("lain.mp4", exp, sig); err == nil {
		t.Fatal("signature bound to another filename must fail")
	}
	if err := s.Verify("intro.mp4", "0", sig); err == nil {
		t.Fatal("expired url must fail")
	}

	other := NewSigner("rahasia-lain")
	if err := other.Verify("intro.mp4", exp, sig); err == nil {
		t.Fatal("signature from another secret must fail")
	}
}

func parseSignedURL(t *testing.T, raw string) (exp, sig string) {
	t.Helper()
	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("invalid signed url %q: %v", raw, err)
	}
	exp = u.Query().Get("exp")
	sig = u.Query().Get("sig")
	if exp == "" || sig == "" {
		t.Fatalf("incomplete signed url %q", raw)
	}
	return exp, sig
}
