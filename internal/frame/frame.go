// Package frame composes a processed photo into an instant film border: an
// aged paper surface, an inset drop shadow, the photo itself, and a cut-paper
// ridge along the inset edges.
package frame

import (
	"fmt"
	"image"
	"image/color"
	"math/rand"

	"github.com/anthonynsimon/bild/blur"
	"github.com/fogleman/gg"
	xdraw "golang.org/x/image/draw"

	"github.com/photonextdoor75-art/filter/internal/blend"
	"github.com/photonextdoor75-art/filter/internal/overlay"
	"github.com/photonextdoor75-art/filter/internal/stock"
)

// maxPixels bounds output surface allocation. Beyond this the composer fails
// loudly instead of attempting the allocation.
const maxPixels = 1 << 27 // ~134M pixels, ~512MB NRGBA

// Geometry is the derived frame layout for a given photo size.
type Geometry struct {
	Border int // top/left/right border width
	Bottom int // tall bottom border
	W, H   int // output surface size
}

// GeometryFor derives the instant film layout from the photo dimensions.
func GeometryFor(w, h int) Geometry {
	side := min(w, h)
	border := side * 8 / 100
	bottom := side * 35 / 100
	return Geometry{
		Border: border,
		Bottom: bottom,
		W:      w + 2*border,
		H:      h + border + bottom,
	}
}

type paperStyle struct {
	fill  color.NRGBA
	grain float64
}

var papers = map[stock.Paper]paperStyle{
	stock.PaperClean: {fill: color.NRGBA{R: 248, G: 245, B: 238, A: 255}, grain: 0.06},
	stock.PaperCool:  {fill: color.NRGBA{R: 227, G: 230, B: 228, A: 255}, grain: 0.12},
	stock.PaperAged:  {fill: color.NRGBA{R: 235, G: 222, B: 198, A: 255}, grain: 0.2},
}

// Compose returns a new, larger surface with photo embedded in the aged
// border. The photo is not mutated. Allocation failure (absurd or oversized
// geometry) is an error; there is no silent unframed fallback.
func Compose(photo *image.NRGBA, paper stock.Paper, rng *rand.Rand) (*image.NRGBA, error) {
	style, ok := papers[paper]
	if !ok {
		return nil, fmt.Errorf("no paper style for %d", paper)
	}

	pb := photo.Bounds()
	pw, ph := pb.Dx(), pb.Dy()
	geom := GeometryFor(pw, ph)

	surface, err := newSurface(geom.W, geom.H)
	if err != nil {
		return nil, fmt.Errorf("allocate %dx%d frame surface: %w", geom.W, geom.H, err)
	}

	for i := 0; i < len(surface.Pix); i += 4 {
		surface.Pix[i+0] = style.fill.R
		surface.Pix[i+1] = style.fill.G
		surface.Pix[i+2] = style.fill.B
		surface.Pix[i+3] = 255
	}
	overlay.Grain(surface, style.grain, rng)

	drawShadow(surface, geom, pw, ph)
	xdraw.Copy(surface, image.Pt(geom.Border, geom.Border), photo, pb, xdraw.Src, nil)
	drawRidge(surface, geom, pw, ph)

	return surface, nil
}

func newSurface(w, h int) (*image.NRGBA, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("invalid dimensions %dx%d", w, h)
	}
	if w*h > maxPixels {
		return nil, fmt.Errorf("surface %dx%d exceeds pixel budget", w, h)
	}
	return image.NewNRGBA(image.Rect(0, 0, w, h)), nil
}

// drawShadow fakes an inset shadow: a dark rectangle slightly down-right of
// the photo position, blurred, composited under where the photo will sit.
func drawShadow(surface *image.NRGBA, geom Geometry, pw, ph int) {
	off := geom.Border / 4
	if off < 2 {
		off = 2
	}

	dc := gg.NewContext(geom.W, geom.H)
	dc.SetRGBA(0.08, 0.07, 0.06, 1)
	dc.DrawRectangle(float64(geom.Border+off), float64(geom.Border+off), float64(pw), float64(ph))
	dc.Fill()

	soft := blur.Gaussian(dc.Image(), float64(geom.Border)/3+1)
	blend.Composite(surface, soft, blend.Op{Mode: blend.SourceOver, Opacity: 0.45})
}

// drawRidge strokes a light highlight along the top/left inset edge and a
// dark one along bottom/right to fake the cut in the paper.
func drawRidge(surface *image.NRGBA, geom Geometry, pw, ph int) {
	x0 := float64(geom.Border)
	y0 := float64(geom.Border)
	x1 := x0 + float64(pw)
	y1 := y0 + float64(ph)

	dc := gg.NewContext(geom.W, geom.H)
	dc.SetLineWidth(1)

	dc.SetRGBA(1, 1, 1, 0.55)
	dc.DrawLine(x0-1, y0-1, x1, y0-1)
	dc.DrawLine(x0-1, y0-1, x0-1, y1)
	dc.Stroke()

	dc.SetRGBA(0.1, 0.09, 0.08, 0.4)
	dc.DrawLine(x0-1, y1, x1, y1)
	dc.DrawLine(x1, y0-1, x1, y1)
	dc.Stroke()

	blend.Composite(surface, dc.Image(), blend.Op{Mode: blend.SourceOver, Opacity: 1})
}
