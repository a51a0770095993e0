// file: internals/features/media/service/watermark.go
//
// Preview gambar terproteksi: badge "protected" dikomposit di pojok kanan
// bawah lalu di-encode webp. Watermark bersifat kosmetik.
package service

import (
	"bytes"
	"image"
	"image/color"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/inconsolata"
	"golang.org/x/image/math/fixed"
)

const watermarkText = "PROTECTED"

// badge: pil gelap semi-transparan dengan teks monospace.
func badge() *image.NRGBA {
	face := inconsolata.Bold8x16
	textW := font.MeasureString(face, watermarkText).Ceil()

	padX, padY := 12, 8
	w := textW + 2*padX
	h := 16 + 2*padY

	img := imaging.New(w, h, color.NRGBA{R: 15, G: 23, B: 42, A: 190})
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.NRGBA{R: 255, G: 255, B: 255, A: 230}),
		Face: face,
		Dot:  fixed.P(padX, padY+13),
	}
	d.DrawString(watermarkText)
	return img
}

// ProtectedPreview menempelkan badge di pojok kanan bawah gambar sumber dan
// mengembalikan hasil encode webp.
func ProtectedPreview(src image.Image) ([]byte, error) {
	base := imaging.Clone(src)
	b := badge()

	margin := 16
	pos := image.Pt(
		base.Bounds().Dx()-b.Bounds().Dx()-margin,
		base.Bounds().Dy()-b.Bounds().Dy()-margin,
	)
	out := imaging.Overlay(base, b, pos, 1.0)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, out, &webp.Options{Lossless: false, Quality: 80}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
