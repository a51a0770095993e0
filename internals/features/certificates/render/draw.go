// file: internals/features/certificates/render/draw.go
//
// Eksekutor draw-command: mengubah []Command menjadi PNG. Semua teks digambar
// dengan face bitmap bawaan x/image (tanpa aset font eksternal) dan ornamen
// sudut dirotasi lewat imaging.
package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/inconsolata"
	"golang.org/x/image/math/fixed"
)

var (
	colorInk    = color.NRGBA{R: 30, G: 41, B: 59, A: 255}   // teks & bingkai utama
	colorAccent = color.NRGBA{R: 180, G: 142, B: 58, A: 255} // emas: aksen & ornamen
	colorPaper  = color.NRGBA{R: 253, G: 252, B: 248, A: 255}
)

func faceFor(style TextStyle) font.Face {
	switch style {
	case StyleHeading, StyleEmphasis:
		return inconsolata.Bold8x16
	case StyleMono:
		return inconsolata.Regular8x16
	default:
		return basicfont.Face7x13
	}
}

// Draw mengeksekusi seluruh command di atas kanvas baru dan mengembalikan
// hasilnya sebagai PNG.
func Draw(rec Record) ([]byte, error) {
	canvas := imaging.New(CanvasWidth, CanvasHeight, colorPaper)

	for _, cmd := range Commands(rec) {
		switch cmd.Kind {
		case CmdBorder:
			drawBorder(canvas, cmd.Inset, cmd.Thickness)
		case CmdTrapezoid:
			drawTrapezoid(canvas, cmd.X, cmd.Y, cmd.Width, cmd.Height)
		case CmdRule:
			fillRect(canvas, cmd.X, cmd.Y, cmd.Width, cmd.Height, colorAccent)
		case CmdText:
			drawCenteredText(canvas, cmd.X, cmd.Y, cmd.Text, cmd.Style)
		case CmdOrnament:
			drawOrnament(canvas, cmd.X, cmd.Y, cmd.RotationDeg)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func fillRect(img *image.NRGBA, x, y, w, h int, c color.NRGBA) {
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			if image.Pt(xx, yy).In(img.Bounds()) {
				img.SetNRGBA(xx, yy, c)
			}
		}
	}
}

// drawBorder: bingkai persegi penuh dengan inset dan tebal garis tertentu.
func drawBorder(img *image.NRGBA, inset, thickness int) {
	w := CanvasWidth - 2*inset
	h := CanvasHeight - 2*inset
	fillRect(img, inset, inset, w, thickness, colorInk)             // atas
	fillRect(img, inset, inset+h-thickness, w, thickness, colorInk) // bawah
	fillRect(img, inset, inset, thickness, h, colorInk)             // kiri
	fillRect(img, inset+w-thickness, inset, thickness, h, colorInk) // kanan
}

// drawTrapezoid: header memudar ke dalam, sisi miring simetris.
func drawTrapezoid(img *image.NRGBA, x, y, w, h int) {
	for row := 0; row < h; row++ {
		// tiap baris menyempit dari kedua sisi
		shrink := row * w / (4 * h)
		fillRect(img, x+shrink, y+row, w-2*shrink, 1, colorAccent)
	}
}

func drawCenteredText(img *image.NRGBA, centerX, baselineY int, text string, style TextStyle) {
	face := faceFor(style)
	width := font.MeasureString(face, text).Ceil()

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(colorInk),
		Face: face,
		Dot:  fixed.P(centerX-width/2, baselineY),
	}
	d.DrawString(text)
}

// ornamentMotif: motif sudut digambar sekali pada orientasi 0°, lalu dirotasi
// per penempatan supaya keempat sudut identik.
func ornamentMotif() *image.NRGBA {
	const size = 56
	m := imaging.New(size, size, color.NRGBA{})
	// dua lengan siku membentuk sudut kiri-atas
	fillRect(m, 0, 0, size, 6, colorAccent)
	fillRect(m, 0, 0, 6, size, colorAccent)
	fillRect(m, 10, 10, size/2, 3, colorAccent)
	fillRect(m, 10, 10, 3, size/2, colorAccent)
	return m
}

func drawOrnament(img *image.NRGBA, anchorX, anchorY, rotationDeg int) {
	motif := ornamentMotif()
	switch rotationDeg {
	case 90:
		motif = imaging.Rotate270(motif) // searah jarum jam 90°
	case 180:
		motif = imaging.Rotate180(motif)
	case 270:
		motif = imaging.Rotate90(motif)
	}

	// anchor = titik sudut yang ditempati motif
	b := motif.Bounds()
	offX, offY := 0, 0
	switch rotationDeg {
	case 90:
		offX = -b.Dx()
	case 180:
		offX, offY = -b.Dx(), -b.Dy()
	case 270:
		offY = -b.Dy()
	}

	draw := imaging.Paste(img, motif, image.Pt(anchorX+offX, anchorY+offY))
	copy(img.Pix, draw.Pix)
}
