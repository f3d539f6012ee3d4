package stock

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAllStocksHaveProfiles(t *testing.T) {
	ids := All()
	require.Len(t, ids, 17)

	seen := map[ID]bool{}
	for _, id := range ids {
		require.False(t, seen[id], "duplicate id %q", id)
		seen[id] = true

		p, ok := Lookup(id)
		require.True(t, ok, "missing profile for %q", id)
		require.Equal(t, id, p.ID)
		require.NotEmpty(t, p.Name)
	}
}

func TestLookupUnknown(t *testing.T) {
	_, ok := Lookup("sepia-dream")
	require.False(t, ok)
}

func TestFramedStocks(t *testing.T) {
	framed := map[ID]bool{Polaroid1: true, Polaroid2: true, Polaroid3: true}
	for _, id := range All() {
		p, _ := Lookup(id)
		require.Equal(t, framed[id], p.Framed(), "stock %q", id)
		// only framed stocks run the softness pass
		require.Equal(t, framed[id], p.Softness, "stock %q", id)
	}
}

func TestVignetteSkipSet(t *testing.T) {
	for _, id := range []ID{Pop80s, BadPhotocopy, DVCam, Comics60s} {
		p, _ := Lookup(id)
		require.Zero(t, p.Vignette, "stock %q should skip the vignette", id)
	}
	for _, id := range []ID{AgedGazette, Mimeograph} {
		p, _ := Lookup(id)
		require.Equal(t, 0.6, p.Vignette, "stock %q", id)
	}
	for _, id := range []ID{Polaroid1, Polaroid2, Polaroid3} {
		p, _ := Lookup(id)
		require.Equal(t, 0.5, p.Vignette, "stock %q", id)
	}
}

func TestAllReturnsCopy(t *testing.T) {
	a := All()
	a[0] = "mutated"
	require.NotEqual(t, ID("mutated"), All()[0])
}
