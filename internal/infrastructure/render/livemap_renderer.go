package render

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/jpeg"
	"image/png"
	"net/http"
	"strings"
	"time"

	"loteamentos_api/internal/usecase/interfaces"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	fetchTimeout = 30 * time.Second

	// Overlay styling: translucent fill so the site plan stays visible,
	// opaque border, label sized to the rectangle.
	fillAlpha   = 140
	borderWidth = 2
	minFontSize = 9.0
	maxFontSize = 18.0
)

// LivemapRenderer composites status-colored rectangles over the base
// site-plan image and produces the published PNG.
type LivemapRenderer struct {
	httpClient *http.Client
	fonte      *truetype.Font
}

var _ interfaces.ILivemapRenderer = (*LivemapRenderer)(nil)

func NewLivemapRenderer() (*LivemapRenderer, error) {
	fonte, err := freetype.ParseFont(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse da fonte embutida: %w", err)
	}
	return &LivemapRenderer{
		httpClient: &http.Client{Timeout: fetchTimeout},
		fonte:      fonte,
	}, nil
}

func (r *LivemapRenderer) Compose(ctx context.Context, baseImageURL string, lotes []interfaces.RenderLote) ([]byte, error) {
	base, err := r.fetchBase(ctx, baseImageURL)
	if err != nil {
		return nil, err
	}

	canvas := image.NewRGBA(base.Bounds())
	draw.Draw(canvas, canvas.Bounds(), base, base.Bounds().Min, draw.Src)

	for _, lote := range lotes {
		if lote.Width <= 0 || lote.Height <= 0 {
			continue
		}
		cor, err := ParseHexColor(lote.Cor)
		if err != nil {
			continue
		}
		rect := image.Rect(lote.X, lote.Y, lote.X+lote.Width, lote.Y+lote.Height)
		preencher(canvas, rect, cor)
		contornar(canvas, rect, cor)
		if lote.Label != "" {
			r.rotular(canvas, rect, lote.Label)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas); err != nil {
		return nil, fmt.Errorf("encode do livemap: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *LivemapRenderer) fetchBase(ctx context.Context, url string) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download do mapa base %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download do mapa base %s: status %d", url, resp.StatusCode)
	}

	img, _, err := image.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("decode do mapa base %s: %w", url, err)
	}
	return img, nil
}

// preencher blends a translucent layer of cor over the rectangle.
func preencher(canvas *image.RGBA, rect image.Rectangle, cor color.NRGBA) {
	fill := color.NRGBA{R: cor.R, G: cor.G, B: cor.B, A: fillAlpha}
	draw.Draw(canvas, rect, image.NewUniform(fill), image.Point{}, draw.Over)
}

// contornar draws the opaque border inside the rectangle bounds.
func contornar(canvas *image.RGBA, rect image.Rectangle, cor color.NRGBA) {
	solido := color.NRGBA{R: cor.R, G: cor.G, B: cor.B, A: 255}
	uni := image.NewUniform(solido)

	topo := image.Rect(rect.Min.X, rect.Min.Y, rect.Max.X, rect.Min.Y+borderWidth)
	base := image.Rect(rect.Min.X, rect.Max.Y-borderWidth, rect.Max.X, rect.Max.Y)
	esq := image.Rect(rect.Min.X, rect.Min.Y, rect.Min.X+borderWidth, rect.Max.Y)
	dir := image.Rect(rect.Max.X-borderWidth, rect.Min.Y, rect.Max.X, rect.Max.Y)
	for _, lado := range []image.Rectangle{topo, base, esq, dir} {
		draw.Draw(canvas, lado, uni, image.Point{}, draw.Over)
	}
}

func (r *LivemapRenderer) rotular(canvas *image.RGBA, rect image.Rectangle, label string) {
	size := float64(rect.Dy()) / 3
	if size < minFontSize {
		size = minFontSize
	}
	if size > maxFontSize {
		size = maxFontSize
	}

	fc := freetype.NewContext()
	fc.SetDPI(72)
	fc.SetFont(r.fonte)
	fc.SetFontSize(size)
	fc.SetClip(rect)
	fc.SetDst(canvas)
	fc.SetSrc(image.NewUniform(color.NRGBA{R: 33, G: 33, B: 33, A: 255}))

	face := truetype.NewFace(r.fonte, &truetype.Options{Size: size, DPI: 72})
	largura := font.MeasureString(face, label).Ceil()

	x := rect.Min.X + (rect.Dx()-largura)/2
	if x < rect.Min.X {
		x = rect.Min.X
	}
	y := rect.Min.Y + rect.Dy()/2 + int(size)/2

	// Best effort; a label that does not fit is clipped, never an error.
	_, _ = fc.DrawString(label, freetype.Pt(x, y))
}

// ParseHexColor parses #RRGGBB (case-insensitive, leading # optional).
func ParseHexColor(s string) (color.NRGBA, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return color.NRGBA{}, fmt.Errorf("cor inválida %q", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.NRGBA{}, fmt.Errorf("cor inválida %q", s)
	}
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}
