// Package effects holds the multi-pass transforms: every effect reads from an
// immutable snapshot of the source and writes a fresh destination, so spatial
// sampling never observes its own output and the result is independent of
// scan order.
package effects

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
)

func clamp(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func luma(r, g, b uint8) float64 {
	return 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)
}

// Misalign simulates channel misregistration: red sampled from the right,
// blue from the left, green in place. The shift grows with image width.
func Misalign(img image.Image) *image.NRGBA {
	src := imaging.Clone(img)
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	offset := w * 6 / 1000
	if offset < 2 {
		offset = 2
	}

	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			rx := min(x+offset, w-1)
			bx := max(x-offset, 0)
			i := out.PixOffset(x, y)
			out.Pix[i+0] = src.Pix[src.PixOffset(rx, y)+0]
			out.Pix[i+1] = src.Pix[src.PixOffset(x, y)+1]
			out.Pix[i+2] = src.Pix[src.PixOffset(bx, y)+2]
			out.Pix[i+3] = src.Pix[src.PixOffset(x, y)+3]
		}
	}
	return out
}

// VHS smears chroma horizontally (red and blue sampled at different offsets),
// then lifts brightness, raises contrast, and pulls colors partway toward
// luma to mimic tape playback.
func VHS(img image.Image) *image.NRGBA {
	src := imaging.Clone(img)
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	shiftR := w / 100
	shiftB := -w / 200

	const (
		lift       = 12.0
		contrast   = 1.15
		saturation = 0.7
	)

	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			rx := min(max(x+shiftR, 0), w-1)
			bx := min(max(x+shiftB, 0), w-1)

			r := float64(src.Pix[src.PixOffset(rx, y)+0])
			g := float64(src.Pix[src.PixOffset(x, y)+1])
			b := float64(src.Pix[src.PixOffset(bx, y)+2])

			r = (r+lift-128)*contrast + 128
			g = (g+lift-128)*contrast + 128
			b = (b+lift-128)*contrast + 128

			gray := 0.299*r + 0.587*g + 0.114*b
			r = gray + (r-gray)*saturation
			g = gray + (g-gray)*saturation
			b = gray + (b-gray)*saturation

			i := out.PixOffset(x, y)
			out.Pix[i+0] = clamp(r)
			out.Pix[i+1] = clamp(g)
			out.Pix[i+2] = clamp(b)
			out.Pix[i+3] = src.Pix[src.PixOffset(x, y)+3]
		}
	}
	return out
}

// DVCam applies the camcorder cast (red pulled down, blue pushed up) and
// darkens odd scan lines to fake interlacing.
func DVCam(img image.Image) *image.NRGBA {
	src := imaging.Clone(img)
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	for y := 0; y < h; y++ {
		rowMul := 1.0
		if y%2 == 1 {
			rowMul = 0.75
		}
		for x := 0; x < w; x++ {
			i := src.PixOffset(x, y)
			r := float64(src.Pix[i+0]) * 0.95
			g := float64(src.Pix[i+1])
			b := float64(src.Pix[i+2])*1.08 + 4
			src.Pix[i+0] = clamp(r * rowMul)
			src.Pix[i+1] = clamp(g * rowMul)
			src.Pix[i+2] = clamp(b * rowMul)
		}
	}
	return src
}

// HalftoneDot is the tile size of the ordered halftone pattern.
const HalftoneDot = 4

var (
	halftoneInk   = [3]uint8{25, 20, 20}
	halftonePaper = [3]uint8{235, 220, 190}
)

// Halftone posterizes, boosts contrast, and renders a luminance-keyed dot
// pattern on a fixed 4x4 tile grid. Dark pixels grow ink dots, bright pixels
// blend toward warm paper.
func Halftone(img image.Image) *image.NRGBA {
	src := imaging.Clone(img)
	w, h := src.Bounds().Dx(), src.Bounds().Dy()

	const (
		step     = 64
		contrast = 1.3
		paperMix = 0.3
	)

	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			si := src.PixOffset(x, y)
			var ch [3]float64
			for c := 0; c < 3; c++ {
				v := float64(src.Pix[si+c]/step) * step
				ch[c] = (v-128)*contrast + 128
			}

			lum := (0.299*ch[0] + 0.587*ch[1] + 0.114*ch[2]) / 255.0
			if lum < 0 {
				lum = 0
			}
			if lum > 1 {
				lum = 1
			}

			dx := float64(x%HalftoneDot) - float64(HalftoneDot)/2 + 0.5
			dy := float64(y%HalftoneDot) - float64(HalftoneDot)/2 + 0.5
			dist := math.Hypot(dx, dy)

			i := out.PixOffset(x, y)
			if dist < (1-lum)*(HalftoneDot/1.2) {
				out.Pix[i+0] = halftoneInk[0]
				out.Pix[i+1] = halftoneInk[1]
				out.Pix[i+2] = halftoneInk[2]
			} else {
				for c := 0; c < 3; c++ {
					out.Pix[i+c] = clamp(ch[c] + (float64(halftonePaper[c])-ch[c])*paperMix)
				}
			}
			out.Pix[i+3] = src.Pix[si+3]
		}
	}
	return out
}

// edgeDelta is the luma difference against a neighbor that flags an ink edge.
const edgeDelta = 30

var edgeInk = [3]uint8{20, 18, 24}

// EdgeInk outlines luma edges in near-black ink and punches up the rest with
// a saturation and contrast boost. The last row and column have no right or
// bottom neighbor and are never flagged.
func EdgeInk(img image.Image) *image.NRGBA {
	src := imaging.Clone(img)
	w, h := src.Bounds().Dx(), src.Bounds().Dy()

	const (
		saturation = 1.3
		contrast   = 1.15
	)

	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			si := src.PixOffset(x, y)
			here := luma(src.Pix[si+0], src.Pix[si+1], src.Pix[si+2])

			// neighbor lookups are skipped on the last row and column,
			// so those pixels are never flagged
			edge := false
			if x < w-1 && y < h-1 {
				ri := src.PixOffset(x+1, y)
				if math.Abs(here-luma(src.Pix[ri+0], src.Pix[ri+1], src.Pix[ri+2])) > edgeDelta {
					edge = true
				}
				if !edge {
					bi := src.PixOffset(x, y+1)
					if math.Abs(here-luma(src.Pix[bi+0], src.Pix[bi+1], src.Pix[bi+2])) > edgeDelta {
						edge = true
					}
				}
			}

			i := out.PixOffset(x, y)
			if edge {
				out.Pix[i+0] = edgeInk[0]
				out.Pix[i+1] = edgeInk[1]
				out.Pix[i+2] = edgeInk[2]
			} else {
				r := float64(src.Pix[si+0])
				g := float64(src.Pix[si+1])
				b := float64(src.Pix[si+2])
				gray := 0.299*r + 0.587*g + 0.114*b
				r = gray + (r-gray)*saturation
				g = gray + (g-gray)*saturation
				b = gray + (b-gray)*saturation
				out.Pix[i+0] = clamp((r-128)*contrast + 128)
				out.Pix[i+1] = clamp((g-128)*contrast + 128)
				out.Pix[i+2] = clamp((b-128)*contrast + 128)
			}
			out.Pix[i+3] = src.Pix[si+3]
		}
	}
	return out
}
