// Package blend composites one surface onto another with explicit per-pixel
// blend formulas. Every composite is a self-contained Op: mode, opacity, and
// placement travel with the call, so no drawing state survives between steps.
//
// Separable blend formulas follow W3C Compositing and Blending Level 1.
package blend

import (
	"image"
	"image/color"
	"math"
)

// Mode selects the per-channel blend formula.
type Mode uint8

const (
	// SourceOver paints the source over the destination.
	SourceOver Mode = iota
	// Multiply darkens: B(s,d) = s*d.
	Multiply
	// Screen lightens: B(s,d) = 1-(1-s)*(1-d).
	Screen
	// Lighten keeps the lighter channel: B(s,d) = max(s,d).
	Lighten
	// SoftLight darkens or lightens depending on the source.
	SoftLight
)

// Op is one explicit compositing request. X and Y place the source's origin
// on the destination.
type Op struct {
	Mode    Mode
	Opacity float64 // extra multiplier on source alpha, clamped to [0,1]
	X, Y    int
}

func blendChannel(mode Mode, s, d float64) float64 {
	switch mode {
	case Multiply:
		return s * d
	case Screen:
		return 1 - (1-s)*(1-d)
	case Lighten:
		return math.Max(s, d)
	case SoftLight:
		if s <= 0.5 {
			return d - (1-2*s)*d*(1-d)
		}
		var dd float64
		if d <= 0.25 {
			dd = ((16*d-12)*d + 4) * d
		} else {
			dd = math.Sqrt(d)
		}
		return d + (2*s-1)*(dd-d)
	default: // SourceOver
		return s
	}
}

// Composite blends src onto dst in place. The overlap of src (shifted by
// op.X, op.Y) with dst's bounds is processed; anything outside is dropped.
// Destination alpha is left untouched, the engine composites opaque surfaces.
func Composite(dst *image.NRGBA, src image.Image, op Op) {
	opacity := op.Opacity
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}

	db := dst.Bounds()
	sb := src.Bounds()

	startX := max(db.Min.X, op.X)
	startY := max(db.Min.Y, op.Y)
	endX := min(db.Max.X, op.X+sb.Dx())
	endY := min(db.Max.Y, op.Y+sb.Dy())
	if startX >= endX || startY >= endY {
		return
	}

	for y := startY; y < endY; y++ {
		for x := startX; x < endX; x++ {
			sc := color.NRGBAModel.Convert(src.At(
				sb.Min.X+x-op.X, sb.Min.Y+y-op.Y)).(color.NRGBA)
			sa := float64(sc.A) / 255.0 * opacity
			if sa == 0 {
				continue
			}

			i := dst.PixOffset(x, y)
			sr := float64(sc.R) / 255.0
			sg := float64(sc.G) / 255.0
			sbv := float64(sc.B) / 255.0
			dr := float64(dst.Pix[i+0]) / 255.0
			dg := float64(dst.Pix[i+1]) / 255.0
			dbv := float64(dst.Pix[i+2]) / 255.0

			dst.Pix[i+0] = to8(dr*(1-sa) + blendChannel(op.Mode, sr, dr)*sa)
			dst.Pix[i+1] = to8(dg*(1-sa) + blendChannel(op.Mode, sg, dg)*sa)
			dst.Pix[i+2] = to8(dbv*(1-sa) + blendChannel(op.Mode, sbv, dbv)*sa)
		}
	}
}

func to8(v float64) uint8 {
	v = v * 255.0
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
