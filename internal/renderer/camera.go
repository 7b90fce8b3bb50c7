// camera.go
package renderer

import (
	"math"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

type Camera struct {
	Position   mgl32.Vec3
	Front      mgl32.Vec3
	Up         mgl32.Vec3
	Right      mgl32.Vec3
	Projection mgl32.Mat4
	Pitch      float32
	Yaw        float32

	WorldUp     mgl32.Vec3
	Speed       float32
	Sensitivity float32
	Fov         float32
	Near        float32
	Far         float32
	AspectRatio float32
	InvertMouse bool
}

// NewLandscapeCamera sits low above the terrain, looking down the scroll
// axis so the looping planes fill the frame.
func NewLandscapeCamera(width, height int32) *Camera {
	camera := Camera{
		Position:    mgl32.Vec3{0, 0.12, 1.1},
		Front:       mgl32.Vec3{0, 0, -1},
		Up:          mgl32.Vec3{0, 1, 0},
		WorldUp:     mgl32.Vec3{0, 1, 0},
		Pitch:       0.0,
		Yaw:         -90.0,
		Speed:       1.2,
		Sensitivity: 0.1,
		Fov:         75.0,
		Near:        0.01,
		Far:         20.0,
		AspectRatio: float32(width) / float32(height),
		InvertMouse: false,
	}
	camera.updateCameraVectors()
	camera.UpdateProjection()
	return &camera
}

// NewDesignCamera backs off far enough to frame the full fixture layout.
func NewDesignCamera(width, height int32) *Camera {
	camera := NewLandscapeCamera(width, height)
	camera.Position = mgl32.Vec3{0, 1.2, 7}
	camera.Speed = 4.0
	camera.Fov = 55.0
	camera.Far = 100.0
	camera.updateCameraVectors()
	camera.UpdateProjection()
	return camera
}

func (c *Camera) UpdateProjection() {
	c.Projection = mgl32.Perspective(mgl32.DegToRad(c.Fov), c.AspectRatio, c.Near, c.Far)
}

func (c *Camera) SetAspectRatio(aspectRatio float32) {
	c.AspectRatio = aspectRatio
	c.UpdateProjection()
}

func (c *Camera) GetViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front), c.Up)
}

func (c *Camera) GetViewProjection() mgl32.Mat4 {
	return c.Projection.Mul4(c.GetViewMatrix())
}

func (c *Camera) ProcessKeyboard(window *glfw.Window, deltaTime float32) {
	c.Right = c.Front.Cross(c.WorldUp).Normalize()
	baseVelocity := c.Speed * deltaTime

	if window.GetKey(glfw.KeyLeftShift) == glfw.Press || window.GetKey(glfw.KeyRightShift) == glfw.Press {
		baseVelocity *= 2.5
	}

	if window.GetKey(glfw.KeyW) == glfw.Press {
		c.Position = c.Position.Add(c.Front.Mul(baseVelocity))
	}
	if window.GetKey(glfw.KeyS) == glfw.Press {
		c.Position = c.Position.Sub(c.Front.Mul(baseVelocity))
	}
	if window.GetKey(glfw.KeyA) == glfw.Press {
		c.Position = c.Position.Sub(c.Right.Mul(baseVelocity))
	}
	if window.GetKey(glfw.KeyD) == glfw.Press {
		c.Position = c.Position.Add(c.Right.Mul(baseVelocity))
	}
}

func (c *Camera) ProcessMouseMovement(xoffset, yoffset float32, constrainPitch bool) {
	xoffset *= c.Sensitivity
	yoffset *= c.Sensitivity

	c.Yaw += xoffset

	if c.InvertMouse {
		c.Pitch -= yoffset
	} else {
		c.Pitch += yoffset
	}
	if constrainPitch {
		c.Pitch = mgl32.Clamp(c.Pitch, -89.0, 89.0)
	}
	c.updateCameraVectors()
}

func (c *Camera) LookAt(target mgl32.Vec3) {
	direction := target.Sub(c.Position).Normalize()
	c.Yaw = mgl32.RadToDeg(float32(math.Atan2(float64(direction.Z()), float64(direction.X()))))
	c.Pitch = mgl32.RadToDeg(float32(math.Asin(float64(direction.Y()))))
	c.updateCameraVectors()
}

func (c *Camera) updateCameraVectors() {
	yawRad := mgl32.DegToRad(c.Yaw)
	pitchRad := mgl32.DegToRad(c.Pitch)

	front := mgl32.Vec3{
		float32(math.Cos(float64(yawRad)) * math.Cos(float64(pitchRad))),
		float32(math.Sin(float64(pitchRad))),
		float32(math.Sin(float64(yawRad)) * math.Cos(float64(pitchRad))),
	}

	c.Front = front.Normalize()
	c.Right = c.WorldUp.Cross(c.Front).Normalize()
	c.Up = c.Front.Cross(c.Right).Normalize()
}
