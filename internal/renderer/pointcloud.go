package renderer

import (
	"github.com/ctoscano/te-studio-poc/internal/layout"
	"github.com/ctoscano/te-studio-poc/internal/logger"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

type pointBatch struct {
	vao   uint32
	vbo   uint32
	count int32
	size  float32
	color mgl32.Vec3
}

// PointCloud renders the sampled fixture layout as two point batches, one
// per role, so each batch draws with a single color and radius. Colors are
// resolved from the selection when SetColors is called; an unparseable
// string keeps the batch's previous color.
type PointCloud struct {
	shader  Shader
	primary pointBatch
	edge    pointBatch
}

// NewPointCloud uploads the sampled points. Must run on the render thread.
func NewPointCloud(points []layout.Point, primarySize, edgeSize float32) *PointCloud {
	pc := &PointCloud{}
	pc.shader = InitPointShader()
	pc.shader.Compile()

	var primaryPos, edgePos []float32
	for _, p := range points {
		if p.Role == layout.RoleEdge {
			edgePos = append(edgePos, p.Position.X(), p.Position.Y(), p.Position.Z())
		} else {
			primaryPos = append(primaryPos, p.Position.X(), p.Position.Y(), p.Position.Z())
		}
	}

	pc.primary = uploadBatch(primaryPos, primarySize)
	pc.edge = uploadBatch(edgePos, edgeSize)
	logger.Log.Info("Point cloud built",
		zap.Int32("primaryPoints", pc.primary.count),
		zap.Int32("edgePoints", pc.edge.count))
	return pc
}

func uploadBatch(positions []float32, size float32) pointBatch {
	b := pointBatch{
		count: int32(len(positions) / 3),
		size:  size,
		color: mgl32.Vec3{1, 1, 1},
	}
	if b.count == 0 {
		return b
	}
	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)
	gl.GenBuffers(1, &b.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(positions)*4, gl.Ptr(positions), gl.STATIC_DRAW)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)
	gl.BindVertexArray(0)
	return b
}

// SetColors resolves the two selection color strings. A string that fails
// to parse leaves that batch's previous color in place.
func (pc *PointCloud) SetColors(primary, edge string) {
	if rgb, ok := ParseHexColor(primary); ok {
		pc.primary.color = rgb
	}
	if rgb, ok := ParseHexColor(edge); ok {
		pc.edge.color = rgb
	}
}

func (pc *PointCloud) Draw(viewProjection mgl32.Mat4) {
	pc.shader.Use()
	pc.shader.SetMat4("viewProjection", viewProjection)

	gl.Enable(gl.PROGRAM_POINT_SIZE)
	for _, b := range []pointBatch{pc.primary, pc.edge} {
		if b.count == 0 {
			continue
		}
		pc.shader.SetFloat("pointSize", b.size)
		pc.shader.SetVec3("pointColor", b.color)
		gl.BindVertexArray(b.vao)
		gl.DrawArrays(gl.POINTS, 0, b.count)
	}
	gl.BindVertexArray(0)
	gl.Disable(gl.PROGRAM_POINT_SIZE)
}

func (pc *PointCloud) Cleanup() {
	for _, b := range []pointBatch{pc.primary, pc.edge} {
		if b.count == 0 {
			continue
		}
		gl.DeleteVertexArrays(1, &b.vao)
		gl.DeleteBuffers(1, &b.vbo)
	}
}
