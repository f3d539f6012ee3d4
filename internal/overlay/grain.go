package overlay

import (
	"image"
	"math"
	"math/rand"

	"github.com/photonextdoor75-art/filter/internal/blend"
)

// Grain jitters roughly half the pixels by a symmetric random amount scaled
// by intensity, then, above intensity 0.1, multiplies in a few large soft
// brownish stains at random positions.
func Grain(dst *image.NRGBA, intensity float64, rng *rand.Rand) {
	if intensity <= 0 {
		return
	}
	b := dst.Bounds()
	w, h := b.Dx(), b.Dy()
	amp := 30 * intensity

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if rng.Float64() >= 0.5 {
				continue
			}
			d := (rng.Float64() - 0.5) * 2 * amp
			i := dst.PixOffset(x, y)
			for c := 0; c < 3; c++ {
				v := float64(dst.Pix[i+c]) + d
				if v < 0 {
					v = 0
				}
				if v > 255 {
					v = 255
				}
				dst.Pix[i+c] = uint8(v)
			}
		}
	}

	if intensity <= 0.1 {
		return
	}
	stains := 1 + rng.Intn(4)
	for n := 0; n < stains; n++ {
		stain(dst, rng)
	}
}

// stain multiplies in one radial brownish gradient with a soft falloff.
func stain(dst *image.NRGBA, rng *rand.Rand) {
	b := dst.Bounds()
	w, h := b.Dx(), b.Dy()
	side := float64(min(w, h))

	cx := rng.Float64() * float64(w)
	cy := rng.Float64() * float64(h)
	radius := side * (0.25 + rng.Float64()*0.35)

	layer := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			d := math.Hypot(float64(x)-cx, float64(y)-cy)
			if d >= radius {
				continue
			}
			t := 1 - d/radius
			i := layer.PixOffset(x, y)
			layer.Pix[i+0], layer.Pix[i+1], layer.Pix[i+2] = 112, 84, 55
			layer.Pix[i+3] = uint8(t * t * 0.18 * 255)
		}
	}
	blend.Composite(dst, layer, blend.Op{Mode: blend.Multiply, Opacity: 1})
}
