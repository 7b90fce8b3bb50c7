package renderer

import (
	"image"
	"image/color"
	"math/rand"

	perlin "github.com/aquilax/go-perlin"
	"github.com/ctoscano/te-studio-poc/internal/logger"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// gridTint is the fixed neon tint of the terrain grid overlay. The grid
// color is deliberately not user-configurable.
var gridTint = mgl32.Vec3{1.0, 0.15, 0.6}

// planeDepth matches the terrain scroll period: two planes of this depth
// tile seamlessly while their offsets stay one period apart.
const (
	planeWidth = 4.0
	planeDepth = 2.0
)

// TerrainConfig is the slice of RenderConfig the terrain needs.
type TerrainConfig struct {
	Segments       int32
	DisplaceAmount float32
	GridCycles     float32
	HeightMapPath  string
	MetalMapPath   string
}

// TerrainLoop owns the two looping terrain meshes and their grid-overlay
// material. Both meshes share one plane buffer; only the model transform
// differs per slot.
type TerrainLoop struct {
	shader     Shader
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
	heightTex  uint32
	metalTex   uint32
	cfg        TerrainConfig
	slotZ      [2]float32
}

// NewTerrainLoop compiles the grid program, uploads the shared plane mesh
// and resolves the two texture maps. Must run on the render thread.
func NewTerrainLoop(cfg TerrainConfig, textures *TextureCache) *TerrainLoop {
	t := &TerrainLoop{cfg: cfg}
	t.shader = InitTerrainShader()
	t.shader.Compile()

	verts, indices := buildPlaneMesh(planeWidth, planeDepth, cfg.Segments)
	t.indexCount = int32(len(indices))

	gl.GenVertexArrays(1, &t.vao)
	gl.BindVertexArray(t.vao)

	gl.GenBuffers(1, &t.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, t.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.STATIC_DRAW)

	gl.GenBuffers(1, &t.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, t.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

	stride := int32(5 * 4)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, gl.PtrOffset(3*4))
	gl.EnableVertexAttribArray(1)
	gl.BindVertexArray(0)

	t.heightTex = resolveMap(textures, cfg.HeightMapPath)
	t.metalTex = resolveMap(textures, cfg.MetalMapPath)
	return t
}

// resolveMap loads a grayscale map, falling back to a procedural Perlin
// field when the asset is missing so the terrain still reads as terrain.
func resolveMap(textures *TextureCache, path string) uint32 {
	id, err := textures.Load(path)
	if err == nil {
		return id
	}
	logger.Log.Warn("Terrain map missing, using procedural fallback",
		zap.String("path", path), zap.Error(err))
	return UploadImage(perlinField(256, 256))
}

// perlinField renders a fixed-seed Perlin noise field as a grayscale image.
func perlinField(w, h int) image.Image {
	p := perlin.NewPerlin(2, 2, 3, rand.New(rand.NewSource(1)).Int63())
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			n := p.Noise2D(float64(x)/64.0, float64(y)/64.0) // roughly [-1, 1]
			v := uint8(mgl32.Clamp(float32(n*0.5+0.5), 0, 1) * 255)
			img.SetGray(x, y, color.Gray{Y: v})
		}
	}
	return img
}

// buildPlaneMesh returns an interleaved (position, uv) buffer and indices
// for a subdivided rectangle in the XZ plane, centered on the origin.
func buildPlaneMesh(width, depth float32, segments int32) ([]float32, []int32) {
	if segments < 1 {
		segments = 1
	}
	cols := segments + 1

	verts := make([]float32, 0, cols*cols*5)
	for row := int32(0); row <= segments; row++ {
		for col := int32(0); col <= segments; col++ {
			u := float32(col) / float32(segments)
			v := float32(row) / float32(segments)
			verts = append(verts,
				(u-0.5)*width, 0, (v-0.5)*depth,
				u, v)
		}
	}

	indices := make([]int32, 0, segments*segments*6)
	for row := int32(0); row < segments; row++ {
		for col := int32(0); col < segments; col++ {
			topLeft := row*cols + col
			topRight := topLeft + 1
			bottomLeft := (row+1)*cols + col
			bottomRight := bottomLeft + 1
			indices = append(indices,
				topLeft, bottomLeft, topRight,
				topRight, bottomLeft, bottomRight)
		}
	}
	return verts, indices
}

// SetOffsets positions the two slots along the scroll axis.
func (t *TerrainLoop) SetOffsets(z0, z1 float64) {
	t.slotZ[0] = float32(z0)
	t.slotZ[1] = float32(z1)
}

func (t *TerrainLoop) Draw(viewProjection mgl32.Mat4, rig *SpotRig) {
	t.shader.Use()
	if rig != nil {
		rig.Apply(&t.shader)
	}
	t.shader.SetMat4("viewProjection", viewProjection)
	t.shader.SetFloat("displaceAmount", t.cfg.DisplaceAmount)
	t.shader.SetFloat("gridCycles", t.cfg.GridCycles)
	t.shader.SetVec3("gridTint", gridTint)
	t.shader.SetInt("heightMap", 0)
	t.shader.SetInt("metalnessMap", 1)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, t.heightTex)
	gl.ActiveTexture(gl.TEXTURE1)
	gl.BindTexture(gl.TEXTURE_2D, t.metalTex)

	gl.BindVertexArray(t.vao)
	for _, z := range t.slotZ {
		model := mgl32.Translate3D(0, 0, z)
		t.shader.SetMat4("model", model)
		gl.DrawElements(gl.TRIANGLES, t.indexCount, gl.UNSIGNED_INT, nil)
	}
	gl.BindVertexArray(0)
	gl.ActiveTexture(gl.TEXTURE0)
}

func (t *TerrainLoop) Cleanup() {
	gl.DeleteVertexArrays(1, &t.vao)
	gl.DeleteBuffers(1, &t.vbo)
	gl.DeleteBuffers(1, &t.ebo)
}
