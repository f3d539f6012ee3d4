package engine

import (
	"image"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/photonextdoor75-art/filter/internal/frame"
	"github.com/photonextdoor75-art/filter/internal/stock"
)

func randomImage(seed int64, w, h int) *image.NRGBA {
	rng := rand.New(rand.NewSource(seed))
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+0] = uint8(rng.Intn(256))
		img.Pix[i+1] = uint8(rng.Intn(256))
		img.Pix[i+2] = uint8(rng.Intn(256))
		img.Pix[i+3] = 255
	}
	return img
}

func TestUnknownStock(t *testing.T) {
	_, err := New(1).Run(randomImage(1, 4, 4), "super-8")
	require.Error(t, err)

	var unknown *UnknownStockError
	require.ErrorAs(t, err, &unknown)
	require.Equal(t, stock.ID("super-8"), unknown.ID)
}

func TestEmptyImageFailsBeforeProcessing(t *testing.T) {
	_, err := New(1).Run(image.NewNRGBA(image.Rect(0, 0, 0, 0)), stock.Blueprint)

	var render *RenderError
	require.ErrorAs(t, err, &render)
}

// Non-framed stocks preserve the input dimensions exactly; instant film
// stocks produce the derived frame size.
func TestDimensionInvariants(t *testing.T) {
	const w, h = 50, 34
	in := randomImage(2, w, h)

	for _, id := range stock.All() {
		out, err := New(7).Run(in, id)
		require.NoError(t, err, "stock %q", id)

		prof, _ := stock.Lookup(id)
		if prof.Framed() {
			geom := frame.GeometryFor(w, h)
			require.Equal(t, geom.W, out.Bounds().Dx(), "stock %q", id)
			require.Equal(t, geom.H, out.Bounds().Dy(), "stock %q", id)
		} else {
			require.Equal(t, w, out.Bounds().Dx(), "stock %q", id)
			require.Equal(t, h, out.Bounds().Dy(), "stock %q", id)
		}
	}
}

func TestFramedOutputSizeMatchesSpacing(t *testing.T) {
	in := randomImage(3, 100, 100)
	out, err := New(5).Run(in, stock.Polaroid1)
	require.NoError(t, err)
	require.Equal(t, 116, out.Bounds().Dx())
	require.Equal(t, 143, out.Bounds().Dy())
}

// A fixed seed must make every randomized stock byte-identical across runs.
func TestDeterminismUnderFixedSeed(t *testing.T) {
	in := randomImage(4, 64, 48)

	for _, id := range stock.All() {
		a, err := New(99).Run(in, id)
		require.NoError(t, err, "stock %q", id)
		b, err := New(99).Run(in, id)
		require.NoError(t, err, "stock %q", id)
		require.Equal(t, a.Pix, b.Pix, "stock %q not reproducible", id)
	}
}

func TestSeedActuallyMatters(t *testing.T) {
	in := randomImage(5, 64, 48)

	a, err := New(1).Run(in, stock.AgedGazette)
	require.NoError(t, err)
	b, err := New(2).Run(in, stock.AgedGazette)
	require.NoError(t, err)
	require.NotEqual(t, a.Pix, b.Pix)
}

func TestInputNotMutated(t *testing.T) {
	in := randomImage(6, 32, 32)
	before := append([]uint8(nil), in.Pix...)

	_, err := New(8).Run(in, stock.VHSWorn)
	require.NoError(t, err)
	require.Equal(t, before, in.Pix)
}

func BenchmarkRun(b *testing.B) {
	in := randomImage(1, 640, 480)
	for b.Loop() {
		if _, err := New(1).Run(in, stock.Polaroid3); err != nil {
			b.Fatal(err)
		}
	}
}
