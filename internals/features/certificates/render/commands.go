// file: internals/features/certificates/render/commands.go
//
// Layout sertifikat dinyatakan sebagai urutan draw-command deterministik,
// terpisah dari eksekusi gambarnya supaya bisa dites tanpa canvas. Input yang
// sama selalu menghasilkan urutan command yang sama.
package render

import (
	"fmt"
	"strconv"
	"time"
)

// Ukuran kanvas tetap (landscape A4-ish).
const (
	CanvasWidth  = 1200
	CanvasHeight = 850
)

type CommandKind string

const (
	CmdBorder    CommandKind = "border"    // bingkai persegi dengan inset + tebal
	CmdTrapezoid CommandKind = "trapezoid" // ornamen header
	CmdRule      CommandKind = "rule"      // garis aksen horizontal
	CmdText      CommandKind = "text"
	CmdOrnament  CommandKind = "ornament" // motif sudut, dirotasi per penempatan
)

type TextStyle string

const (
	StyleRegular  TextStyle = "regular"
	StyleEmphasis TextStyle = "emphasis"
	StyleHeading  TextStyle = "heading"
	StyleMono     TextStyle = "mono"
)

// Command adalah satu instruksi gambar. Field yang tidak relevan untuk Kind
// tertentu dibiarkan zero.
type Command struct {
	Kind CommandKind

	// CmdBorder
	Inset     int
	Thickness int

	// CmdTrapezoid / CmdRule
	X, Y          int
	Width, Height int

	// CmdText: X = pusat horizontal, Y = baseline
	Text  string
	Style TextStyle

	// CmdOrnament: rotasi derajat searah jarum jam di sekitar anchor-nya
	RotationDeg int
}

// Record adalah data satu sertifikat; semua field teks punya fallback literal.
type Record struct {
	UserName         string
	EventTitle       string
	OrganizationName string
	ScorePercent     float64
	CertificateCode  string
	IssuedAt         *time.Time
}

const (
	maxTitleLen   = 40
	fallbackName  = "Peserta"
	fallbackTitle = "Kursus Online"
	fallbackOrg   = "Kursusku"
	fallbackCode  = "CERT-XXXXXX"
)

var monthNames = []string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// DisplayTitle memotong judul panjang: >40 karakter ⇒ 40 pertama + elipsis.
func DisplayTitle(title string) string {
	if title == "" {
		return fallbackTitle
	}
	runes := []rune(title)
	if len(runes) <= maxTitleLen {
		return title
	}
	return string(runes[:maxTitleLen]) + "…"
}

// DisplayScore: satu desimal, konsisten dengan tampilan skor di tempat lain.
func DisplayScore(score float64) string {
	return "Nilai: " + strconv.FormatFloat(score, 'f', 1, 64) + "%"
}

// DisplayDate: tanggal lokal; fallback = hari ini.
func DisplayDate(issuedAt *time.Time) string {
	t := time.Now()
	if issuedAt != nil {
		t = *issuedAt
	}
	return fmt.Sprintf("%d %s %d", t.Day(), monthNames[int(t.Month())-1], t.Year())
}

// DisplayCode: kode monospace di kaki sertifikat.
func DisplayCode(code string) string {
	if code == "" {
		return fallbackCode
	}
	return code
}

// Commands membangun urutan gambar lengkap untuk satu record.
func Commands(rec Record) []Command {
	name := rec.UserName
	if name == "" {
		name = fallbackName
	}
	org := rec.OrganizationName
	if org == "" {
		org = fallbackOrg
	}

	centerX := CanvasWidth / 2

	cmds := []Command{
		// tiga bingkai konsentris
		{Kind: CmdBorder, Inset: 20, Thickness: 8},
		{Kind: CmdBorder, Inset: 35, Thickness: 3},
		{Kind: CmdBorder, Inset: 45, Thickness: 2},

		// ornamen header trapesium di tengah atas
		{Kind: CmdTrapezoid, X: centerX - 180, Y: 45, Width: 360, Height: 60},

		// blok judul
		{Kind: CmdText, X: centerX, Y: 160, Text: "CERTIFICATE", Style: StyleHeading},
		{Kind: CmdText, X: centerX, Y: 200, Text: "OF COMPLETION", Style: StyleRegular},

		// garis aksen di bawah judul
		{Kind: CmdRule, X: centerX - 120, Y: 225, Width: 240, Height: 3},

		// blok teks tengah, urutan tetap
		{Kind: CmdText, X: centerX, Y: 300, Text: "Dengan ini diberikan kepada", Style: StyleRegular},
		{Kind: CmdText, X: centerX, Y: 360, Text: name, Style: StyleEmphasis},
		{Kind: CmdRule, X: centerX - 220, Y: 380, Width: 440, Height: 2},
		{Kind: CmdText, X: centerX, Y: 430, Text: "atas keberhasilannya menyelesaikan", Style: StyleRegular},
		{Kind: CmdText, X: centerX, Y: 480, Text: DisplayTitle(rec.EventTitle), Style: StyleEmphasis},
		{Kind: CmdText, X: centerX, Y: 530, Text: DisplayScore(rec.ScorePercent), Style: StyleRegular},
		{Kind: CmdText, X: centerX, Y: 610, Text: "Diselenggarakan oleh", Style: StyleRegular},
		{Kind: CmdText, X: centerX, Y: 645, Text: org, Style: StyleEmphasis},
		{Kind: CmdText, X: centerX, Y: 710, Text: DisplayDate(rec.IssuedAt), Style: StyleRegular},
		{Kind: CmdText, X: centerX, Y: 770, Text: DisplayCode(rec.CertificateCode), Style: StyleMono},
	}

	// empat ornamen sudut: motif sama dirotasi mengikuti sudutnya
	corners := []struct {
		x, y, deg int
	}{
		{60, 60, 0},
		{CanvasWidth - 60, 60, 90},
		{CanvasWidth - 60, CanvasHeight - 60, 180},
		{60, CanvasHeight - 60, 270},
	}
	for _, c := range corners {
		cmds = append(cmds, Command{Kind: CmdOrnament, X: c.x, Y: c.y, RotationDeg: c.deg})
	}

	return cmds
}
