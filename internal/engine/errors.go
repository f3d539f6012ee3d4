package engine

import (
	"fmt"

	"github.com/photonextdoor75-art/filter/internal/stock"
)

// UnknownStockError reports a stock ID outside the closed preset set. Nothing
// is processed before this check.
type UnknownStockError struct {
	ID stock.ID
}

func (e *UnknownStockError) Error() string {
	return fmt.Sprintf("unknown stock %q", e.ID)
}

// DecodeError reports input bytes that could not be decoded into an image.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode input image: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// RenderError reports a compositing step that could not complete. The engine
// never degrades to a partial image; the whole run fails.
type RenderError struct {
	Stage string
	Msg   string
	Err   error
}

func (e *RenderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("render stage %s: %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("render stage %s: %s", e.Stage, e.Msg)
}

func (e *RenderError) Unwrap() error { return e.Err }
