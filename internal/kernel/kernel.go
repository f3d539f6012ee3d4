// Package kernel holds the single-pass per-pixel color transforms. Grade
// kernels are pure functions of the input pixel. Duotone and threshold
// kernels consume the injected random source in scan order, so a fixed seed
// reproduces the output exactly.
package kernel

import (
	"image"
	"image/color"
	"math/rand"

	"github.com/disintegration/imaging"
	"github.com/photonextdoor75-art/filter/internal/stock"
)

// Luma returns the weighted grayscale value of an 8-bit RGB triple.
func Luma(r, g, b uint8) float64 {
	return 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)
}

func clamp(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func clampTo(v float64, limit uint8) uint8 {
	if v < 0 {
		return 0
	}
	if v > float64(limit) {
		return limit
	}
	return uint8(v)
}

func lerp(a, b uint8, t float64) uint8 {
	return clamp(float64(a) + (float64(b)-float64(a))*t)
}

func noise(rng *rand.Rand, amp float64) float64 {
	if amp <= 0 || rng == nil {
		return 0
	}
	return rng.Float64()*amp - amp/2
}

// Duotone maps noisy, contrast-stretched luma either to flat grayscale or
// onto the ink/paper color pair. rng may be nil when p.NoiseAmp is zero.
func Duotone(img image.Image, p stock.Duotone, rng *rand.Rand) *image.NRGBA {
	src := imaging.Clone(img)
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := src.PixOffset(x, y)
			yv := Luma(src.Pix[i+0], src.Pix[i+1], src.Pix[i+2])
			yv += noise(rng, p.NoiseAmp)
			yv = (yv-128)*p.Contrast + 128

			if p.Flat {
				g := clampTo(yv, p.WhiteCap)
				src.Pix[i+0], src.Pix[i+1], src.Pix[i+2] = g, g, g
				continue
			}
			t := float64(clamp(yv)) / 255.0
			src.Pix[i+0] = lerp(p.Ink.R, p.Paper.R, t)
			src.Pix[i+1] = lerp(p.Ink.G, p.Paper.G, t)
			src.Pix[i+2] = lerp(p.Ink.B, p.Paper.B, t)
		}
	}
	return src
}

// Threshold binarizes noisy luma into the ink/paper levels, with an optional
// rare bright "paper jam" pixel.
func Threshold(img image.Image, p stock.Threshold, rng *rand.Rand) *image.NRGBA {
	src := imaging.Clone(img)
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := src.PixOffset(x, y)
			if p.JamChance > 0 && rng != nil && rng.Float64() < p.JamChance {
				src.Pix[i+0], src.Pix[i+1], src.Pix[i+2] = 255, 250, 240
				continue
			}
			yv := Luma(src.Pix[i+0], src.Pix[i+1], src.Pix[i+2])
			yv += noise(rng, p.NoiseAmp)
			out := p.Ink
			if yv > p.Level {
				out = p.Paper
			}
			src.Pix[i+0], src.Pix[i+1], src.Pix[i+2] = out.R, out.G, out.B
		}
	}
	return src
}

// Grade applies the per-channel color cast: gain/offset, highlight/shadow
// split around 128, luma-relative saturation, and an optional hard highlight
// clip. Pure per pixel, so imaging may process rows in parallel.
func Grade(img image.Image, p stock.Grade) *image.NRGBA {
	return imaging.AdjustFunc(img, func(c color.NRGBA) color.NRGBA {
		r := float64(c.R)*p.RGain + p.ROffset
		g := float64(c.G)*p.GGain + p.GOffset
		b := float64(c.B)*p.BGain + p.BOffset

		r = split(r, p.HighlightMul, p.ShadowMul)
		g = split(g, p.HighlightMul, p.ShadowMul)
		b = split(b, p.HighlightMul, p.ShadowMul)

		if p.Saturation != 0 && p.Saturation != 1 {
			gray := 0.299*r + 0.587*g + 0.114*b
			r = gray + (r-gray)*p.Saturation
			g = gray + (g-gray)*p.Saturation
			b = gray + (b-gray)*p.Saturation
		}

		if p.ClipHighlights {
			if r > 235 {
				r = 255
			}
			if g > 235 {
				g = 255
			}
			if b > 235 {
				b = 255
			}
		}

		return color.NRGBA{R: clamp(r), G: clamp(g), B: clamp(b), A: c.A}
	})
}

// split treats a zero multiplier as identity so profiles only name the side
// they adjust.
func split(v, highlightMul, shadowMul float64) float64 {
	if highlightMul == 0 {
		highlightMul = 1
	}
	if shadowMul == 0 {
		shadowMul = 1
	}
	const mid = 128
	if v > mid {
		return mid + (v-mid)*highlightMul
	}
	return mid - (mid-v)*shadowMul
}
