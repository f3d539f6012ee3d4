package overlay

import (
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/blur"
	"github.com/disintegration/imaging"

	"github.com/photonextdoor75-art/filter/internal/blend"
	"github.com/photonextdoor75-art/filter/internal/kernel"
	"github.com/photonextdoor75-art/filter/internal/stock"
)

var expiredTint = color.NRGBA{R: 255, G: 228, B: 225, A: 255}

// Softness destroys digital sharpness for the instant film stocks: a light
// resolution-scaled blur over the whole surface, then a heavier-blurred,
// saturated copy soft-lit back over it at half opacity to fake chemical
// bloom. Expired film additionally screens in a pale pink tint.
func Softness(src *image.NRGBA, expired bool) *image.NRGBA {
	b := src.Bounds()
	side := min(b.Dx(), b.Dy())

	baseRadius := float64(side) * 0.0025
	if baseRadius < 0.8 {
		baseRadius = 0.8
	}
	bloomRadius := float64(side) * 0.01
	if bloomRadius < 2 {
		bloomRadius = 2
	}

	base := imaging.Clone(blur.Gaussian(src, baseRadius))
	bloom := kernel.Grade(blur.Gaussian(base, bloomRadius), stock.Grade{
		RGain: 1, GGain: 1, BGain: 1,
		Saturation: 1.35,
	})

	blend.Composite(base, bloom, blend.Op{Mode: blend.SoftLight, Opacity: 0.5})

	if expired {
		layer := image.NewNRGBA(base.Bounds())
		for i := 0; i < len(layer.Pix); i += 4 {
			layer.Pix[i+0] = expiredTint.R
			layer.Pix[i+1] = expiredTint.G
			layer.Pix[i+2] = expiredTint.B
			layer.Pix[i+3] = 255
		}
		blend.Composite(base, layer, blend.Op{Mode: blend.Screen, Opacity: 0.12})
	}
	return base
}
