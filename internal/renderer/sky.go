package renderer

import (
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

var haloTint = mgl32.Vec3{1.0, 0.45, 0.25}

// Sky draws the backdrop of the landscape view: a procedural sun halo on
// a camera-facing quad, optionally layered with a silhouette sprite once
// its artwork finishes loading.
type Sky struct {
	haloShader   Shader
	spriteShader Shader
	vao          uint32
	vbo          uint32
	silhouette   uint32
	hasSprite    bool
}

// NewSky uploads the shared backdrop quad. Must run on the render thread.
func NewSky() *Sky {
	s := &Sky{}
	s.haloShader = InitHaloShader()
	s.haloShader.Compile()
	s.spriteShader = InitSpriteShader()
	s.spriteShader.Compile()

	// unit quad in the XY plane, centered on the origin
	quad := []float32{
		-0.5, -0.5, 0, 0, 1,
		0.5, -0.5, 0, 1, 1,
		-0.5, 0.5, 0, 0, 0,
		0.5, -0.5, 0, 1, 1,
		0.5, 0.5, 0, 1, 0,
		-0.5, 0.5, 0, 0, 0,
	}
	gl.GenVertexArrays(1, &s.vao)
	gl.BindVertexArray(s.vao)
	gl.GenBuffers(1, &s.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quad)*4, gl.Ptr(quad), gl.STATIC_DRAW)
	stride := int32(5 * 4)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, gl.PtrOffset(3*4))
	gl.EnableVertexAttribArray(1)
	gl.BindVertexArray(0)
	return s
}

// SetSilhouette installs the fetched silhouette artwork. Until it is
// called the sky renders the procedural halo alone.
func (s *Sky) SetSilhouette(img image.Image) {
	if s.hasSprite {
		gl.DeleteTextures(1, &s.silhouette)
	}
	s.silhouette = UploadImage(img)
	s.hasSprite = true
}

func (s *Sky) Draw(viewProjection mgl32.Mat4) {
	model := mgl32.Translate3D(0, 0.55, -6).Mul4(mgl32.Scale3D(4, 4, 1))

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.DepthMask(false)
	gl.BindVertexArray(s.vao)

	s.haloShader.Use()
	s.haloShader.SetMat4("model", model)
	s.haloShader.SetMat4("viewProjection", viewProjection)
	s.haloShader.SetVec3("haloColor", haloTint)
	s.haloShader.SetFloat("haloOpacity", 0.85)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)

	if s.hasSprite {
		s.spriteShader.Use()
		s.spriteShader.SetMat4("model", model)
		s.spriteShader.SetMat4("viewProjection", viewProjection)
		s.spriteShader.SetInt("sprite", 0)
		s.spriteShader.SetFloat("spriteOpacity", 0.9)
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, s.silhouette)
		gl.DrawArrays(gl.TRIANGLES, 0, 6)
	}

	gl.BindVertexArray(0)
	gl.DepthMask(true)
	gl.Disable(gl.BLEND)
}

func (s *Sky) Cleanup() {
	gl.DeleteVertexArrays(1, &s.vao)
	gl.DeleteBuffers(1, &s.vbo)
	if s.hasSprite {
		gl.DeleteTextures(1, &s.silhouette)
	}
}
