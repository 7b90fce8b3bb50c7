package renderer

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNewLandscapeCamera(t *testing.T) {
	cam := NewLandscapeCamera(800, 600)

	if cam == nil {
		t.Fatal("NewLandscapeCamera returned nil")
	}
	if cam.Speed <= 0 {
		t.Error("Camera speed should be positive")
	}
	if cam.AspectRatio != 800.0/600.0 {
		t.Errorf("Aspect ratio should be width/height, got %f", cam.AspectRatio)
	}
}

func TestCameraGetViewProjection(t *testing.T) {
	cam := NewLandscapeCamera(800, 600)

	vp := cam.GetViewProjection()

	zero := mgl32.Mat4{}
	if vp == zero {
		t.Error("ViewProjection should not be zero matrix")
	}
}

func TestCameraSetAspectRatioUpdatesProjection(t *testing.T) {
	cam := NewLandscapeCamera(800, 600)
	before := cam.Projection

	cam.SetAspectRatio(1600.0 / 900.0)

	if cam.Projection == before {
		t.Error("Changing the aspect ratio should rebuild the projection")
	}
}

func TestCameraUpdateVectors(t *testing.T) {
	cam := NewLandscapeCamera(800, 600)
	cam.Yaw = -90
	cam.Pitch = 0

	cam.updateCameraVectors()

	frontLen := cam.Front.Len()
	if math.Abs(float64(frontLen)-1.0) > 0.01 {
		t.Errorf("Front vector should be normalized, length=%f", frontLen)
	}
}

func TestCameraLookAt(t *testing.T) {
	cam := NewDesignCamera(800, 600)
	target := mgl32.Vec3{0, 0, 0}

	cam.LookAt(target)

	toTarget := target.Sub(cam.Position).Normalize()
	if toTarget.Dot(cam.Front) < 0.99 {
		t.Errorf("Front should point at the target, dot=%f", toTarget.Dot(cam.Front))
	}
}
