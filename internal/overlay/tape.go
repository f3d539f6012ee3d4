package overlay

import (
	"fmt"
	"image"
	"image/color"
	"math/rand"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/photonextdoor75-art/filter/internal/blend"
)

// TrackingNoise fills the bottom 15% of the frame with semi-transparent
// binary noise and scatters a few full-width glitch bars, mimicking a tape
// losing tracking.
func TrackingNoise(dst *image.NRGBA, rng *rand.Rand) {
	b := dst.Bounds()
	w, h := b.Dx(), b.Dy()

	bandH := h * 15 / 100
	if bandH < 1 {
		bandH = 1
	}

	layer := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := h - bandH; y < h; y++ {
		for x := 0; x < w; x++ {
			if rng.Float64() >= 0.7 {
				continue
			}
			v := uint8(0)
			if rng.Intn(2) == 1 {
				v = 255
			}
			i := layer.PixOffset(x, y)
			layer.Pix[i+0], layer.Pix[i+1], layer.Pix[i+2] = v, v, v
			layer.Pix[i+3] = 90
		}
	}

	// thin horizontal glitch bars anywhere in the frame
	for n := 0; n < 5; n++ {
		y := rng.Intn(h)
		thickness := 1 + rng.Intn(2)
		for t := 0; t < thickness && y+t < h; t++ {
			for x := 0; x < w; x++ {
				i := layer.PixOffset(x, y+t)
				layer.Pix[i+0], layer.Pix[i+1], layer.Pix[i+2] = 205, 205, 205
				layer.Pix[i+3] = 128
			}
		}
	}

	blend.Composite(dst, layer, blend.Op{Mode: blend.SourceOver, Opacity: 1})
}

var stampColor = color.NRGBA{R: 255, G: 160, B: 40, A: 255}

// DateStamp burns a camcorder style timestamp near the bottom-left corner,
// monospaced orange with a one-pixel drop shadow. The date is randomized in
// the 1998-2005 range.
func DateStamp(dst *image.NRGBA, rng *rand.Rand) {
	b := dst.Bounds()
	w, h := b.Dx(), b.Dy()

	text := fmt.Sprintf("%02d %02d %d  %02d:%02d",
		1+rng.Intn(12), 1+rng.Intn(28), 1998+rng.Intn(8),
		rng.Intn(24), rng.Intn(60))

	face := basicfont.Face7x13
	textW := font.MeasureString(face, text).Ceil()
	textH := face.Height

	// render at native size, with room for the shadow offset
	stamp := image.NewNRGBA(image.Rect(0, 0, textW+1, textH+1))
	drawText := func(c color.NRGBA, dx, dy int) {
		d := font.Drawer{
			Dst:  stamp,
			Src:  image.NewUniform(c),
			Face: face,
			Dot:  fixed.P(dx, face.Ascent+dy),
		}
		d.DrawString(text)
	}
	drawText(color.NRGBA{A: 255}, 1, 1)
	drawText(stampColor, 0, 0)

	// scale up with the frame so the stamp stays legible
	scale := h / 240
	if scale < 1 {
		scale = 1
	}
	scaled := stamp
	if scale > 1 {
		scaled = image.NewNRGBA(image.Rect(0, 0, stamp.Bounds().Dx()*scale, stamp.Bounds().Dy()*scale))
		xdraw.NearestNeighbor.Scale(scaled, scaled.Bounds(), stamp, stamp.Bounds(), xdraw.Src, nil)
	}

	x := w / 20
	y := h - h/12 - scaled.Bounds().Dy()
	if y < 0 {
		y = 0
	}
	blend.Composite(dst, scaled, blend.Op{Mode: blend.SourceOver, Opacity: 0.9, X: x, Y: y})
}
