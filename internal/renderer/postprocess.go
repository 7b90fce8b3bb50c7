package renderer

import (
	"github.com/ctoscano/te-studio-poc/internal/logger"
	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"
)

// PassNames is the fixed pass order of the chain. Order is significant:
// the channel shift runs on the raw scene so bloom blurs the shifted
// image, and gamma runs before bloom so bright extraction sees corrected
// luminance exactly once.
func PassNames() []string {
	return []string{"render", "rgbshift", "gamma", "bloom"}
}

// chainSize tracks the chain's buffer dimensions. update reports whether
// the buffers actually need reallocating, which keeps Resize idempotent.
type chainSize struct {
	width  int32
	height int32
}

func (s *chainSize) update(width, height int32) bool {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	if s.width == width && s.height == height {
		return false
	}
	s.width = width
	s.height = height
	return true
}

// ChainConfig is the slice of RenderConfig the chain consumes.
type ChainConfig struct {
	RGBShiftAmount float32
	Gamma          float32
	BloomIntensity float32
	BloomThreshold float32
	BloomRadius    float32
}

// Chain is the fixed full-screen pass sequence applied after the scene
// render: channel shift, gamma (pass-through at 1.0), then bloom.
type Chain struct {
	cfg  ChainConfig
	size chainSize

	sceneFBO uint32
	sceneTex uint32
	depthRBO uint32

	pingFBO [2]uint32
	pingTex [2]uint32

	bloomFBO [2]uint32
	bloomTex [2]uint32
	bloomW   int32
	bloomH   int32

	rgbShiftShader  Shader
	gammaShader     Shader
	brightShader    Shader
	blurShader      Shader
	compositeShader Shader

	quadVAO uint32
}

// fullscreen triangle via gl_VertexID, no VBO needed
var passVertexSource = `#version 410 core

out vec2 fragUV;

void main() {
    const vec2 pos[3] = vec2[3](
        vec2(-1.0, -1.0),
        vec2( 3.0, -1.0),
        vec2(-1.0,  3.0)
    );
    gl_Position = vec4(pos[gl_VertexID], 0.0, 1.0);
    fragUV = pos[gl_VertexID] * 0.5 + 0.5;
}
` + "\x00"

var rgbShiftFragmentSource = `#version 410 core

in vec2 fragUV;

uniform sampler2D src;
uniform float amount;

out vec4 FragColor;

void main() {
    float r = texture(src, fragUV + vec2(amount, 0.0)).r;
    float g = texture(src, fragUV).g;
    float b = texture(src, fragUV - vec2(amount, 0.0)).b;
    FragColor = vec4(r, g, b, 1.0);
}
` + "\x00"

var gammaFragmentSource = `#version 410 core

in vec2 fragUV;

uniform sampler2D src;
uniform float gamma;

out vec4 FragColor;

void main() {
    vec3 color = texture(src, fragUV).rgb;
    FragColor = vec4(pow(color, vec3(1.0 / gamma)), 1.0);
}
` + "\x00"

var brightFragmentSource = `#version 410 core

in vec2 fragUV;

uniform sampler2D src;
uniform float threshold;

out vec4 FragColor;

void main() {
    vec3 color = texture(src, fragUV).rgb;
    float luma = dot(color, vec3(0.2126, 0.7152, 0.0722));
    FragColor = vec4(color * step(threshold, luma), 1.0);
}
` + "\x00"

var blurFragmentSource = `#version 410 core

in vec2 fragUV;

uniform sampler2D src;
uniform vec2 texelDir;

out vec4 FragColor;

void main() {
    const float w[5] = float[](0.0625, 0.25, 0.375, 0.25, 0.0625);
    vec3 result = vec3(0.0);
    for (int i = -2; i <= 2; i++) {
        result += texture(src, fragUV + float(i) * texelDir).rgb * w[i + 2];
    }
    FragColor = vec4(result, 1.0);
}
` + "\x00"

var compositeFragmentSource = `#version 410 core

in vec2 fragUV;

uniform sampler2D src;
uniform sampler2D bloomTex;
uniform float intensity;

out vec4 FragColor;

void main() {
    vec3 color = texture(src, fragUV).rgb;
    vec3 bloom = texture(bloomTex, fragUV).rgb;
    FragColor = vec4(color + bloom * intensity, 1.0);
}
` + "\x00"

// NewChain compiles the pass programs and allocates buffers at the given
// size. Must run on the render thread.
func NewChain(cfg ChainConfig, width, height int32) *Chain {
	c := &Chain{cfg: cfg}
	if c.cfg.Gamma <= 0 {
		c.cfg.Gamma = 1.0
	}

	c.rgbShiftShader = Shader{vertexSource: passVertexSource, fragmentSource: rgbShiftFragmentSource}
	c.gammaShader = Shader{vertexSource: passVertexSource, fragmentSource: gammaFragmentSource}
	c.brightShader = Shader{vertexSource: passVertexSource, fragmentSource: brightFragmentSource}
	c.blurShader = Shader{vertexSource: passVertexSource, fragmentSource: blurFragmentSource}
	c.compositeShader = Shader{vertexSource: passVertexSource, fragmentSource: compositeFragmentSource}
	c.rgbShiftShader.Compile()
	c.gammaShader.Compile()
	c.brightShader.Compile()
	c.blurShader.Compile()
	c.compositeShader.Compile()

	gl.GenVertexArrays(1, &c.quadVAO)

	c.size.update(width, height)
	c.alloc()
	logger.Log.Info("Post-process chain ready",
		zap.Int32("width", c.size.width), zap.Int32("height", c.size.height))
	return c
}

func (c *Chain) alloc() {
	w, h := c.size.width, c.size.height

	allocColorTex := func() uint32 {
		var tex uint32
		gl.GenTextures(1, &tex)
		gl.BindTexture(gl.TEXTURE_2D, tex)
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA16F, w, h, 0, gl.RGBA, gl.HALF_FLOAT, nil)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
		gl.BindTexture(gl.TEXTURE_2D, 0)
		return tex
	}

	// Scene target with depth
	c.sceneTex = allocColorTex()
	gl.GenRenderbuffers(1, &c.depthRBO)
	gl.BindRenderbuffer(gl.RENDERBUFFER, c.depthRBO)
	gl.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH_COMPONENT24, w, h)
	gl.BindRenderbuffer(gl.RENDERBUFFER, 0)

	gl.GenFramebuffers(1, &c.sceneFBO)
	gl.BindFramebuffer(gl.FRAMEBUFFER, c.sceneFBO)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, c.sceneTex, 0)
	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.RENDERBUFFER, c.depthRBO)
	if s := gl.CheckFramebufferStatus(gl.FRAMEBUFFER); s != gl.FRAMEBUFFER_COMPLETE {
		logger.Log.Error("Scene FBO incomplete", zap.Uint32("status", uint32(s)))
	}

	// Full-resolution ping-pong targets for the intermediate passes
	for i := 0; i < 2; i++ {
		c.pingTex[i] = allocColorTex()
		gl.GenFramebuffers(1, &c.pingFBO[i])
		gl.BindFramebuffer(gl.FRAMEBUFFER, c.pingFBO[i])
		gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, c.pingTex[i], 0)
	}

	// Half-resolution bloom ping-pong targets
	c.bloomW = max32(w/2, 1)
	c.bloomH = max32(h/2, 1)
	for i := 0; i < 2; i++ {
		var tex uint32
		gl.GenTextures(1, &tex)
		gl.BindTexture(gl.TEXTURE_2D, tex)
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA16F, c.bloomW, c.bloomH, 0, gl.RGBA, gl.HALF_FLOAT, nil)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
		gl.BindTexture(gl.TEXTURE_2D, 0)
		c.bloomTex[i] = tex

		gl.GenFramebuffers(1, &c.bloomFBO[i])
		gl.BindFramebuffer(gl.FRAMEBUFFER, c.bloomFBO[i])
		gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, c.bloomTex[i], 0)
	}
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
}

func (c *Chain) free() {
	gl.DeleteFramebuffers(1, &c.sceneFBO)
	gl.DeleteTextures(1, &c.sceneTex)
	gl.DeleteRenderbuffers(1, &c.depthRBO)
	for i := 0; i < 2; i++ {
		gl.DeleteFramebuffers(1, &c.pingFBO[i])
		gl.DeleteTextures(1, &c.pingTex[i])
		gl.DeleteFramebuffers(1, &c.bloomFBO[i])
		gl.DeleteTextures(1, &c.bloomTex[i])
	}
}

// Resize reallocates every buffer at the new pixel size. Calling it with
// the current size is a no-op, so resize events can be forwarded as-is.
func (c *Chain) Resize(width, height int32) {
	if !c.size.update(width, height) {
		return
	}
	c.free()
	c.alloc()
}

// Size returns the chain's current buffer dimensions.
func (c *Chain) Size() (int32, int32) {
	return c.size.width, c.size.height
}

// Begin binds the scene framebuffer; the scene render that follows is the
// chain's first pass.
func (c *Chain) Begin() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, c.sceneFBO)
	gl.Viewport(0, 0, c.size.width, c.size.height)
	gl.ClearColor(0.0, 0.0, 0.0, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Run executes the remaining passes and resolves to the default
// framebuffer at the given target size, which may exceed the chain's
// buffer size when the pixel ratio is capped. The channel-shift amount
// is refreshed every run.
func (c *Chain) Run(targetWidth, targetHeight int32) {
	gl.Disable(gl.DEPTH_TEST)
	gl.BindVertexArray(c.quadVAO)

	// rgbshift: scene -> ping0
	gl.BindFramebuffer(gl.FRAMEBUFFER, c.pingFBO[0])
	gl.Viewport(0, 0, c.size.width, c.size.height)
	c.rgbShiftShader.Use()
	c.rgbShiftShader.SetInt("src", 0)
	c.rgbShiftShader.SetFloat("amount", c.cfg.RGBShiftAmount)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, c.sceneTex)
	gl.DrawArrays(gl.TRIANGLES, 0, 3)

	// gamma: ping0 -> ping1 (pass-through while gamma == 1.0)
	gl.BindFramebuffer(gl.FRAMEBUFFER, c.pingFBO[1])
	c.gammaShader.Use()
	c.gammaShader.SetInt("src", 0)
	c.gammaShader.SetFloat("gamma", c.cfg.Gamma)
	gl.BindTexture(gl.TEXTURE_2D, c.pingTex[0])
	gl.DrawArrays(gl.TRIANGLES, 0, 3)

	// bloom bright pass: ping1 -> bloom0 at half resolution
	gl.BindFramebuffer(gl.FRAMEBUFFER, c.bloomFBO[0])
	gl.Viewport(0, 0, c.bloomW, c.bloomH)
	c.brightShader.Use()
	c.brightShader.SetInt("src", 0)
	c.brightShader.SetFloat("threshold", c.cfg.BloomThreshold)
	gl.BindTexture(gl.TEXTURE_2D, c.pingTex[1])
	gl.DrawArrays(gl.TRIANGLES, 0, 3)

	// separable blur, H then V per pair; result ends back in bloom0.
	// The radius is expressed in texels of the current viewport, so the
	// blur footprint follows the aspect ratio.
	c.blurShader.Use()
	c.blurShader.SetInt("src", 0)
	src, dst := 0, 1
	for i := 0; i < 4; i++ {
		gl.BindFramebuffer(gl.FRAMEBUFFER, c.bloomFBO[dst])
		if i%2 == 0 {
			c.blurShader.SetVec2("texelDir", c.cfg.BloomRadius/float32(c.bloomW), 0)
		} else {
			c.blurShader.SetVec2("texelDir", 0, c.cfg.BloomRadius/float32(c.bloomH))
		}
		gl.BindTexture(gl.TEXTURE_2D, c.bloomTex[src])
		gl.DrawArrays(gl.TRIANGLES, 0, 3)
		src, dst = dst, src
	}

	// composite: ping1 + bloom -> screen
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.Viewport(0, 0, targetWidth, targetHeight)
	c.compositeShader.Use()
	c.compositeShader.SetInt("src", 0)
	c.compositeShader.SetInt("bloomTex", 1)
	c.compositeShader.SetFloat("intensity", c.cfg.BloomIntensity)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, c.pingTex[1])
	gl.ActiveTexture(gl.TEXTURE1)
	gl.BindTexture(gl.TEXTURE_2D, c.bloomTex[0])
	gl.DrawArrays(gl.TRIANGLES, 0, 3)
	gl.ActiveTexture(gl.TEXTURE0)

	gl.BindVertexArray(0)
	gl.Enable(gl.DEPTH_TEST)
}

func (c *Chain) Cleanup() {
	c.free()
	gl.DeleteVertexArrays(1, &c.quadVAO)
}

func max32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}
