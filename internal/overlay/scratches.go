package overlay

import (
	"image"
	"math"
	"math/rand"

	"github.com/fogleman/gg"
	"github.com/photonextdoor75-art/filter/internal/blend"
	"github.com/photonextdoor75-art/filter/internal/stock"
)

// Scratches strokes short near-vertical dust/hair marks across the surface,
// composited with a lightening blend. One scratch per 50k pixels; extreme
// mode doubles the stroke opacity.
func Scratches(dst *image.NRGBA, mode stock.ScratchMode, rng *rand.Rand) {
	if mode == stock.ScratchNone {
		return
	}
	b := dst.Bounds()
	w, h := b.Dx(), b.Dy()

	count := w * h / 50000
	if count < 1 {
		count = 1
	}

	alpha := 0.25
	if mode == stock.ScratchExtreme {
		alpha = 0.5
	}

	dc := gg.NewContext(w, h)
	dc.SetRGBA(0.92, 0.92, 0.9, alpha)
	dc.SetLineWidth(1)
	for i := 0; i < count; i++ {
		x := rng.Float64() * float64(w)
		y := rng.Float64() * float64(h)
		length := 10 + rng.Float64()*40
		angle := (rng.Float64() - 0.5) * 0.3 // radians off vertical
		dc.DrawLine(x, y, x+math.Sin(angle)*length, y+math.Cos(angle)*length)
		dc.Stroke()
	}

	blend.Composite(dst, dc.Image(), blend.Op{Mode: blend.Screen, Opacity: 1})
}
