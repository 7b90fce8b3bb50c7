package assets

import (
	"context"
	"fmt"
	"image"
	"io"
	"net/http"
	"time"

	"github.com/ctoscano/te-studio-poc/internal/logger"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"go.uber.org/zap"
)

const fetchTimeout = 10 * time.Second

// RasterizeSVG decodes an SVG stream and renders it into a square RGBA
// image of the given size.
func RasterizeSVG(r io.Reader, size int) (*image.RGBA, error) {
	if size < 1 {
		return nil, fmt.Errorf("invalid raster size %d", size)
	}
	icon, err := oksvg.ReadIconStream(r)
	if err != nil {
		return nil, fmt.Errorf("parsing svg: %w", err)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(size, size, scanner), 1.0)
	return img, nil
}

// SunFetcher resolves the sun silhouette artwork off the render thread.
// StartFetch runs the download and rasterization in the background; the
// render loop calls Poll each frame until the image arrives.
type SunFetcher struct {
	result chan *image.RGBA
}

func NewSunFetcher() *SunFetcher {
	return &SunFetcher{result: make(chan *image.RGBA, 1)}
}

// StartFetch downloads the SVG at url and rasterizes it at the given
// size. Failures are logged and leave the backdrop procedural.
func (f *SunFetcher) StartFetch(ctx context.Context, url string, size int) {
	if url == "" {
		return
	}
	go func() {
		img, err := fetchAndRasterize(ctx, url, size)
		if err != nil {
			logger.Log.Warn("Sun silhouette unavailable",
				zap.String("url", url), zap.Error(err))
			return
		}
		f.result <- img
	}()
}

// Poll returns the fetched image once, or nil while it is still pending.
func (f *SunFetcher) Poll() *image.RGBA {
	select {
	case img := <-f.result:
		return img
	default:
		return nil
	}
}

func fetchAndRasterize(ctx context.Context, url string, size int) (*image.RGBA, error) {
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return RasterizeSVG(resp.Body, size)
}
