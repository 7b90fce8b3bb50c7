package assets

import (
	"strings"
	"testing"
)

const testSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100">
  <circle cx="50" cy="50" r="40" fill="#ff8040"/>
</svg>`

func TestRasterizeSVG(t *testing.T) {
	img, err := RasterizeSVG(strings.NewReader(testSVG), 64)
	if err != nil {
		t.Fatalf("rasterize failed: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 64 || b.Dy() != 64 {
		t.Fatalf("unexpected bounds %v", b)
	}
	// center of the circle must be opaque, corner transparent
	if _, _, _, a := img.At(32, 32).RGBA(); a == 0 {
		t.Error("center pixel should be filled")
	}
	if _, _, _, a := img.At(1, 1).RGBA(); a != 0 {
		t.Error("corner pixel should be transparent")
	}
}

func TestRasterizeSVGRejectsGarbage(t *testing.T) {
	if _, err := RasterizeSVG(strings.NewReader("not svg at all"), 64); err == nil {
		t.Error("expected a parse error")
	}
	if _, err := RasterizeSVG(strings.NewReader(testSVG), 0); err == nil {
		t.Error("expected a size error")
	}
}

func TestSunFetcherPollEmpty(t *testing.T) {
	f := NewSunFetcher()
	if img := f.Poll(); img != nil {
		t.Error("poll before fetch should return nil")
	}
}
