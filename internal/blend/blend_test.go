package blend

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

func solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+0], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	return img
}

func TestMultiplyDarkens(t *testing.T) {
	dst := solid(2, 2, color.NRGBA{R: 200, G: 200, B: 200, A: 255})
	src := solid(2, 2, color.NRGBA{R: 128, G: 128, B: 128, A: 255})

	Composite(dst, src, Op{Mode: Multiply, Opacity: 1})

	// 200/255 * 128/255 * 255 ≈ 100
	got := dst.NRGBAAt(0, 0)
	require.InDelta(t, 100, int(got.R), 1)
	require.Equal(t, uint8(255), got.A)
}

func TestScreenLightens(t *testing.T) {
	dst := solid(1, 1, color.NRGBA{R: 100, G: 100, B: 100, A: 255})
	src := solid(1, 1, color.NRGBA{R: 100, G: 100, B: 100, A: 255})

	Composite(dst, src, Op{Mode: Screen, Opacity: 1})

	// 1-(1-100/255)^2 ≈ 0.631 → 161
	require.InDelta(t, 161, int(dst.NRGBAAt(0, 0).R), 1)
}

func TestSoftLightMidGraySourceIsIdentity(t *testing.T) {
	dst := solid(1, 1, color.NRGBA{R: 73, G: 190, B: 12, A: 255})
	src := solid(1, 1, color.NRGBA{R: 128, G: 128, B: 128, A: 255})

	Composite(dst, src, Op{Mode: SoftLight, Opacity: 1})

	got := dst.NRGBAAt(0, 0)
	require.InDelta(t, 73, int(got.R), 1)
	require.InDelta(t, 190, int(got.G), 1)
	require.InDelta(t, 12, int(got.B), 1)
}

func TestLightenKeepsLighterChannel(t *testing.T) {
	dst := solid(1, 1, color.NRGBA{R: 10, G: 240, B: 100, A: 255})
	src := solid(1, 1, color.NRGBA{R: 200, G: 20, B: 100, A: 255})

	Composite(dst, src, Op{Mode: Lighten, Opacity: 1})

	got := dst.NRGBAAt(0, 0)
	require.Equal(t, uint8(200), got.R)
	require.Equal(t, uint8(240), got.G)
	require.Equal(t, uint8(100), got.B)
}

func TestZeroOpacityIsNoop(t *testing.T) {
	dst := solid(2, 2, color.NRGBA{R: 50, G: 60, B: 70, A: 255})
	src := solid(2, 2, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	before := append([]uint8(nil), dst.Pix...)

	Composite(dst, src, Op{Mode: SourceOver, Opacity: 0})

	require.Equal(t, before, dst.Pix)
}

func TestTransparentSourcePixelsSkipped(t *testing.T) {
	dst := solid(1, 1, color.NRGBA{R: 50, G: 60, B: 70, A: 255})
	src := solid(1, 1, color.NRGBA{R: 255, G: 255, B: 255, A: 0})

	Composite(dst, src, Op{Mode: SourceOver, Opacity: 1})

	require.Equal(t, color.NRGBA{R: 50, G: 60, B: 70, A: 255}, dst.NRGBAAt(0, 0))
}

func TestCompositeClipsToDestination(t *testing.T) {
	dst := solid(4, 4, color.NRGBA{A: 255})
	src := solid(4, 4, color.NRGBA{R: 255, G: 255, B: 255, A: 255})

	// hangs off the bottom-right corner; must not panic, must fill the overlap
	Composite(dst, src, Op{Mode: SourceOver, Opacity: 1, X: 2, Y: 2})

	require.Equal(t, uint8(255), dst.NRGBAAt(3, 3).R)
	require.Equal(t, uint8(0), dst.NRGBAAt(1, 1).R)
}

func TestSourceOverHalfOpacityAverages(t *testing.T) {
	dst := solid(1, 1, color.NRGBA{A: 255})
	src := solid(1, 1, color.NRGBA{R: 200, G: 200, B: 200, A: 255})

	Composite(dst, src, Op{Mode: SourceOver, Opacity: 0.5})

	require.InDelta(t, 100, int(dst.NRGBAAt(0, 0).R), 1)
}
