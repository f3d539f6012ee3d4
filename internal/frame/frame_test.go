package frame

import (
	"image"
	"image/color"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/photonextdoor75-art/filter/internal/stock"
)

func photo(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+0], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = 120, 90, 60, 255
	}
	return img
}

func TestGeometryFor(t *testing.T) {
	g := GeometryFor(100, 100)
	require.Equal(t, 8, g.Border)
	require.Equal(t, 35, g.Bottom)
	require.Equal(t, 116, g.W)
	require.Equal(t, 143, g.H)
}

func TestGeometryForLandscape(t *testing.T) {
	// border and bottom derive from the short side
	g := GeometryFor(200, 100)
	require.Equal(t, 8, g.Border)
	require.Equal(t, 35, g.Bottom)
	require.Equal(t, 216, g.W)
	require.Equal(t, 143, g.H)
}

func TestComposeDimensionsAndPhotoPlacement(t *testing.T) {
	p := photo(100, 100)
	out, err := Compose(p, stock.PaperClean, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	require.Equal(t, 116, out.Bounds().Dx())
	require.Equal(t, 143, out.Bounds().Dy())

	// the photo lands untouched at (border, border)
	require.Equal(t, color.NRGBA{R: 120, G: 90, B: 60, A: 255}, out.NRGBAAt(8+50, 8+50))
}

func TestComposeDoesNotMutatePhoto(t *testing.T) {
	p := photo(60, 60)
	before := append([]uint8(nil), p.Pix...)
	_, err := Compose(p, stock.PaperAged, rand.New(rand.NewSource(2)))
	require.NoError(t, err)
	require.Equal(t, before, p.Pix)
}

func TestComposePaperPalettes(t *testing.T) {
	for _, paper := range []stock.Paper{stock.PaperClean, stock.PaperCool, stock.PaperAged} {
		out, err := Compose(photo(60, 60), paper, rand.New(rand.NewSource(3)))
		require.NoError(t, err)
		// bottom border stays papery: bright, never photo-colored
		c := out.NRGBAAt(30, out.Bounds().Dy()-5)
		require.Greater(t, c.R, uint8(120), "paper %d", paper)
	}
}

func TestComposeRejectsUnknownPaper(t *testing.T) {
	_, err := Compose(photo(10, 10), stock.PaperNone, rand.New(rand.NewSource(1)))
	require.Error(t, err)
}

func TestNewSurfaceRejectsAbsurdGeometry(t *testing.T) {
	_, err := newSurface(0, 10)
	require.Error(t, err)

	_, err = newSurface(1<<16, 1<<16)
	require.Error(t, err)
}
