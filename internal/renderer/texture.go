package renderer

import (
	"image"
	"image/draw"
	"os"

	"github.com/ctoscano/te-studio-poc/internal/logger"
	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	_ "image/jpeg"
	_ "image/png"
)

// TextureCache loads and caches the handful of texture assets the studio
// uses (terrain height and metalness maps).
type TextureCache struct {
	byPath map[string]uint32
}

func NewTextureCache() *TextureCache {
	return &TextureCache{byPath: make(map[string]uint32)}
}

// Load returns the texture for path, decoding and uploading it on first
// use. Must be called on the render thread with a current GL context.
func (tc *TextureCache) Load(path string) (uint32, error) {
	if id, ok := tc.byPath[path]; ok {
		return id, nil
	}

	imgFile, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer imgFile.Close()

	img, _, err := image.Decode(imgFile)
	if err != nil {
		return 0, err
	}

	id := UploadImage(img)
	tc.byPath[path] = id
	logger.Log.Info("Texture loaded",
		zap.String("path", path),
		zap.Uint32("textureID", id))
	return id, nil
}

// UploadImage creates a GL texture from an in-memory image. Used both for
// decoded assets and for procedurally generated fallbacks.
func UploadImage(img image.Image) uint32 {
	rgba, ok := img.(*image.RGBA)
	if !ok {
		b := img.Bounds()
		rgba = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	}

	var textureID uint32
	gl.GenTextures(1, &textureID)
	gl.BindTexture(gl.TEXTURE_2D, textureID)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA,
		int32(rgba.Rect.Size().X), int32(rgba.Rect.Size().Y),
		0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba.Pix))

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	return textureID
}

// Cleanup frees every cached texture.
func (tc *TextureCache) Cleanup() {
	for _, id := range tc.byPath {
		gl.DeleteTextures(1, &id)
	}
	tc.byPath = make(map[string]uint32)
}
