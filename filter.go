// Package filter turns decoded photographs into simulated analog
// reproductions: newsprint halftones, expired instant film, worn VHS tape,
// thermal receipts, and friends. The byte-level entry point decodes the
// input, runs the stock's pipeline, and returns a JPEG.
package filter

import (
	"bytes"
	"image"
	"image/jpeg"

	_ "image/gif"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/photonextdoor75-art/filter/internal/engine"
	"github.com/photonextdoor75-art/filter/internal/stock"
)

// ID names a film stock. See Stocks for the full set.
type ID = stock.ID

// Error types surfaced by Apply.
type (
	DecodeError       = engine.DecodeError
	RenderError       = engine.RenderError
	UnknownStockError = engine.UnknownStockError
)

// EncodeQuality is the fixed JPEG quality of the output. Lossy output masks
// the intentional noise and banding most stocks introduce.
const EncodeQuality = 90

type options struct {
	seed int64
}

// Option adjusts one Apply call.
type Option func(*options)

// WithSeed fixes the random source so randomized stocks produce
// byte-identical output across runs. Zero (the default) seeds from time.
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}

// Apply decodes data, applies the named stock, and returns the encoded JPEG.
// It returns *DecodeError for unreadable input, *UnknownStockError for an ID
// outside the preset set, and *RenderError when a compositing step fails.
func Apply(data []byte, id ID, opts ...Option) ([]byte, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &DecodeError{Err: err}
	}

	out, err := engine.New(o.seed).Run(img, id)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, out, &jpeg.Options{Quality: EncodeQuality}); err != nil {
		return nil, &RenderError{Stage: "encode", Err: err}
	}
	return buf.Bytes(), nil
}

// ApplyImage runs the stock on an already-decoded image, skipping the codec
// boundary. Useful when the caller owns decode/encode.
func ApplyImage(img image.Image, id ID, opts ...Option) (*image.NRGBA, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return engine.New(o.seed).Run(img, id)
}

// Stocks returns every stock ID in presentation order.
func Stocks() []ID {
	return stock.All()
}

// Name returns the display name for id, or the raw ID if unknown.
func Name(id ID) string {
	if p, ok := stock.Lookup(id); ok {
		return p.Name
	}
	return string(id)
}
