package interfaces

import "context"

// RenderLote is one rectangle ready to be drawn: overlay geometry joined
// with the lot's current sale status.
type RenderLote struct {
	X      int
	Y      int
	Width  int
	Height int
	// Cor is a #RRGGBB fill color.
	Cor      string
	Label    string
	Situacao string
}

// ILivemapRenderer composites status rectangles over the base site-plan
// image and returns the encoded PNG.

type ILivemapRenderer interface {
	Compose(ctx context.Context, baseImageURL string, lotes []RenderLote) ([]byte, error)
}
