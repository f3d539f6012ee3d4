// Package overlay draws the procedural passes that operate on the rendered
// surface: vignettes, scratches, tape artifacts, the date stamp, grain and
// stains, and the instant film softness pass. Everything composites through
// explicit blend ops; randomized passes consume an injected random source.
package overlay

import (
	"image"
	"math"

	"github.com/photonextdoor75-art/filter/internal/blend"
)

// Vignette darkens toward the edges with a multiplicative radial gradient.
// The center stays untouched out to w/5; full intensity is reached at
// max(w,h)/1.5 from center.
func Vignette(dst *image.NRGBA, intensity float64) {
	b := dst.Bounds()
	w, h := b.Dx(), b.Dy()
	cx, cy := float64(w)/2, float64(h)/2

	radius := math.Max(float64(w), float64(h)) / 1.5
	inner := float64(w) / 5
	if radius <= inner {
		radius = inner + 1
	}

	mask := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			d := math.Hypot(float64(x)-cx, float64(y)-cy)
			t := (d - inner) / (radius - inner)
			if t < 0 {
				t = 0
			}
			if t > 1 {
				t = 1
			}
			// multiply blend with gray level g scales the channel by g/255
			g := uint8(math.Round(255 * (1 - t*intensity)))
			i := mask.PixOffset(x, y)
			mask.Pix[i+0], mask.Pix[i+1], mask.Pix[i+2], mask.Pix[i+3] = g, g, g, 255
		}
	}

	blend.Composite(dst, mask, blend.Op{Mode: blend.Multiply, Opacity: 1})
}
