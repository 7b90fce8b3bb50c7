package engine

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/inkyblackness/imgui-go/v4"
)

// imguiRenderer uploads imgui draw lists through the same 4.1 core
// context the scene renders with.
type imguiRenderer struct {
	io          imgui.IO
	fontTexture uint32

	shaderHandle uint32
	vertHandle   uint32
	fragHandle   uint32

	attribLocationTex      int32
	attribLocationProjMtx  int32
	attribLocationPosition int32
	attribLocationUV       int32
	attribLocationColor    int32

	vboHandle      uint32
	elementsHandle uint32
}

func newImguiRenderer(io imgui.IO) (*imguiRenderer, error) {
	r := &imguiRenderer{io: io}
	if err := r.createDeviceObjects(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *imguiRenderer) Dispose() {
	r.invalidateDeviceObjects()
}

// Render translates the imgui draw data into scissored, textured
// triangle batches on the default framebuffer.
func (r *imguiRenderer) Render(displaySize, framebufferSize [2]float32, drawData imgui.DrawData) {
	displayWidth, displayHeight := displaySize[0], displaySize[1]
	fbWidth, fbHeight := framebufferSize[0], framebufferSize[1]
	if fbWidth <= 0 || fbHeight <= 0 {
		return
	}
	drawData.ScaleClipRects(imgui.Vec2{
		X: fbWidth / displayWidth,
		Y: fbHeight / displayHeight,
	})

	gl.Enable(gl.BLEND)
	gl.BlendEquation(gl.FUNC_ADD)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.SCISSOR_TEST)
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)

	gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
	orthoProjection := [4][4]float32{
		{2.0 / displayWidth, 0.0, 0.0, 0.0},
		{0.0, 2.0 / -displayHeight, 0.0, 0.0},
		{0.0, 0.0, -1.0, 0.0},
		{-1.0, 1.0, 0.0, 1.0},
	}
	gl.UseProgram(r.shaderHandle)
	gl.Uniform1i(r.attribLocationTex, 0)
	gl.UniformMatrix4fv(r.attribLocationProjMtx, 1, false, &orthoProjection[0][0])
	gl.BindSampler(0, 0)

	// A VAO per frame keeps the UI from trampling the scene's bindings.
	var vaoHandle uint32
	gl.GenVertexArrays(1, &vaoHandle)
	gl.BindVertexArray(vaoHandle)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vboHandle)
	gl.EnableVertexAttribArray(uint32(r.attribLocationPosition))
	gl.EnableVertexAttribArray(uint32(r.attribLocationUV))
	gl.EnableVertexAttribArray(uint32(r.attribLocationColor))
	vertexSize, vertexOffsetPos, vertexOffsetUv, vertexOffsetCol := imgui.VertexBufferLayout()
	gl.VertexAttribPointer(uint32(r.attribLocationPosition), 2, gl.FLOAT, false,
		int32(vertexSize), gl.PtrOffset(vertexOffsetPos))
	gl.VertexAttribPointer(uint32(r.attribLocationUV), 2, gl.FLOAT, false,
		int32(vertexSize), gl.PtrOffset(vertexOffsetUv))
	gl.VertexAttribPointer(uint32(r.attribLocationColor), 4, gl.UNSIGNED_BYTE, true,
		int32(vertexSize), gl.PtrOffset(vertexOffsetCol))
	indexSize := imgui.IndexBufferLayout()
	drawType := gl.UNSIGNED_SHORT
	if indexSize == 4 {
		drawType = gl.UNSIGNED_INT
	}

	for _, list := range drawData.CommandLists() {
		var indexBufferOffset uintptr

		vertexBuffer, vertexBufferSize := list.VertexBuffer()
		gl.BindBuffer(gl.ARRAY_BUFFER, r.vboHandle)
		gl.BufferData(gl.ARRAY_BUFFER, vertexBufferSize, vertexBuffer, gl.STREAM_DRAW)

		indexBuffer, indexBufferSize := list.IndexBuffer()
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.elementsHandle)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, indexBufferSize, indexBuffer, gl.STREAM_DRAW)

		for _, cmd := range list.Commands() {
			if cmd.HasUserCallback() {
				cmd.CallUserCallback(list)
			} else {
				gl.BindTexture(gl.TEXTURE_2D, uint32(cmd.TextureID()))
				clipRect := cmd.ClipRect()
				gl.Scissor(int32(clipRect.X), int32(fbHeight)-int32(clipRect.W),
					int32(clipRect.Z-clipRect.X), int32(clipRect.W-clipRect.Y))
				gl.DrawElements(gl.TRIANGLES, int32(cmd.ElementCount()),
					uint32(drawType), unsafe.Pointer(indexBufferOffset))
			}
			indexBufferOffset += uintptr(cmd.ElementCount() * indexSize)
		}
	}
	gl.DeleteVertexArrays(1, &vaoHandle)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.Disable(gl.SCISSOR_TEST)
	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
}

func (r *imguiRenderer) createDeviceObjects() error {
	vertexShader := `#version 410 core

uniform mat4 ProjMtx;

in vec2 Position;
in vec2 UV;
in vec4 Color;

out vec2 Frag_UV;
out vec4 Frag_Color;

void main() {
    Frag_UV = UV;
    Frag_Color = Color;
    gl_Position = ProjMtx * vec4(Position.xy, 0, 1);
}
` + "\x00"
	fragmentShader := `#version 410 core

uniform sampler2D Texture;

in vec2 Frag_UV;
in vec4 Frag_Color;

out vec4 Out_Color;

void main() {
    Out_Color = vec4(Frag_Color.rgb, Frag_Color.a * texture(Texture, Frag_UV.st).r);
}
` + "\x00"

	r.shaderHandle = gl.CreateProgram()
	r.vertHandle = gl.CreateShader(gl.VERTEX_SHADER)
	r.fragHandle = gl.CreateShader(gl.FRAGMENT_SHADER)

	compile := func(handle uint32, source string) error {
		csource, free := gl.Strs(source)
		defer free()
		gl.ShaderSource(handle, 1, csource, nil)
		gl.CompileShader(handle)
		var status int32
		gl.GetShaderiv(handle, gl.COMPILE_STATUS, &status)
		if status == gl.FALSE {
			return fmt.Errorf("ui shader failed to compile")
		}
		return nil
	}
	if err := compile(r.vertHandle, vertexShader); err != nil {
		return err
	}
	if err := compile(r.fragHandle, fragmentShader); err != nil {
		return err
	}

	gl.AttachShader(r.shaderHandle, r.vertHandle)
	gl.AttachShader(r.shaderHandle, r.fragHandle)
	gl.LinkProgram(r.shaderHandle)
	var status int32
	gl.GetProgramiv(r.shaderHandle, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		return fmt.Errorf("ui shader failed to link")
	}

	r.attribLocationTex = gl.GetUniformLocation(r.shaderHandle, gl.Str("Texture\x00"))
	r.attribLocationProjMtx = gl.GetUniformLocation(r.shaderHandle, gl.Str("ProjMtx\x00"))
	r.attribLocationPosition = gl.GetAttribLocation(r.shaderHandle, gl.Str("Position\x00"))
	r.attribLocationUV = gl.GetAttribLocation(r.shaderHandle, gl.Str("UV\x00"))
	r.attribLocationColor = gl.GetAttribLocation(r.shaderHandle, gl.Str("Color\x00"))

	gl.GenBuffers(1, &r.vboHandle)
	gl.GenBuffers(1, &r.elementsHandle)

	r.createFontsTexture()
	return nil
}

func (r *imguiRenderer) createFontsTexture() {
	image := r.io.Fonts().TextureDataAlpha8()

	gl.GenTextures(1, &r.fontTexture)
	gl.BindTexture(gl.TEXTURE_2D, r.fontTexture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RED, int32(image.Width), int32(image.Height),
		0, gl.RED, gl.UNSIGNED_BYTE, image.Pixels)

	r.io.Fonts().SetTextureID(imgui.TextureID(r.fontTexture))
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

func (r *imguiRenderer) invalidateDeviceObjects() {
	if r.vboHandle != 0 {
		gl.DeleteBuffers(1, &r.vboHandle)
	}
	r.vboHandle = 0
	if r.elementsHandle != 0 {
		gl.DeleteBuffers(1, &r.elementsHandle)
	}
	r.elementsHandle = 0

	if (r.shaderHandle != 0) && (r.vertHandle != 0) {
		gl.DetachShader(r.shaderHandle, r.vertHandle)
	}
	if r.vertHandle != 0 {
		gl.DeleteShader(r.vertHandle)
	}
	r.vertHandle = 0

	if (r.shaderHandle != 0) && (r.fragHandle != 0) {
		gl.DetachShader(r.shaderHandle, r.fragHandle)
	}
	if r.fragHandle != 0 {
		gl.DeleteShader(r.fragHandle)
	}
	r.fragHandle = 0

	if r.shaderHandle != 0 {
		gl.DeleteProgram(r.shaderHandle)
	}
	r.shaderHandle = 0

	if r.fontTexture != 0 {
		gl.DeleteTextures(1, &r.fontTexture)
		r.io.Fonts().SetTextureID(0)
		r.fontTexture = 0
	}
}
