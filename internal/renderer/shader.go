package renderer

import (
	"strings"

	"github.com/ctoscano/te-studio-poc/internal/logger"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// =============================================================
//
//	Shaders
//
// =============================================================

// Shader wraps one GLSL program plus a location cache, so per-frame
// uniform writes don't pay for gl.GetUniformLocation every time.
type Shader struct {
	vertexSource   string
	fragmentSource string
	program        uint32
	isCompiled     bool
	locations      map[string]int32
}

func (shader *Shader) Compile() {
	vs := genShader(shader.vertexSource, gl.VERTEX_SHADER)
	fs := genShader(shader.fragmentSource, gl.FRAGMENT_SHADER)
	shader.program = genShaderProgram(vs, fs)
	shader.locations = make(map[string]int32)
	shader.isCompiled = true
}

func (shader *Shader) Use() {
	gl.UseProgram(shader.program)
}

func (shader *Shader) IsValid() bool {
	return shader.vertexSource != "" && shader.fragmentSource != ""
}

// location returns the cached uniform location, fetching it once.
func (shader *Shader) location(name string) int32 {
	if loc, ok := shader.locations[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(shader.program, gl.Str(name+"\x00"))
	shader.locations[name] = loc
	return loc
}

func (shader *Shader) SetFloat(name string, value float32) {
	if loc := shader.location(name); loc != -1 {
		gl.Uniform1f(loc, value)
	}
}

func (shader *Shader) SetInt(name string, value int32) {
	if loc := shader.location(name); loc != -1 {
		gl.Uniform1i(loc, value)
	}
}

func (shader *Shader) SetVec2(name string, x, y float32) {
	if loc := shader.location(name); loc != -1 {
		gl.Uniform2f(loc, x, y)
	}
}

func (shader *Shader) SetVec3(name string, value mgl32.Vec3) {
	if loc := shader.location(name); loc != -1 {
		gl.Uniform3f(loc, value.X(), value.Y(), value.Z())
	}
}

func (shader *Shader) SetMat4(name string, value mgl32.Mat4) {
	if loc := shader.location(name); loc != -1 {
		gl.UniformMatrix4fv(loc, 1, false, &value[0])
	}
}

func genShader(source string, shaderType uint32) uint32 {
	shader := gl.CreateShader(shaderType)
	cSources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, cSources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))

		logger.Log.Error("Failed to compile shader",
			zap.Uint32("type", shaderType), zap.String("log", log))
	}
	return shader
}

func genShaderProgram(vertexShader, fragmentShader uint32) uint32 {
	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))

		logger.Log.Error("Failed to link program", zap.String("log", log))
	}
	gl.DetachShader(program, vertexShader)
	gl.DeleteShader(vertexShader)
	gl.DetachShader(program, fragmentShader)
	gl.DeleteShader(fragmentShader)
	return program
}
