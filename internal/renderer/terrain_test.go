package renderer

import "testing"

func TestBuildPlaneMeshCounts(t *testing.T) {
	segments := int32(24)
	verts, indices := buildPlaneMesh(4, 2, segments)

	wantVerts := int((segments + 1) * (segments + 1) * 5)
	if len(verts) != wantVerts {
		t.Errorf("vertex buffer length: got %d, want %d", len(verts), wantVerts)
	}
	wantIndices := int(segments * segments * 6)
	if len(indices) != wantIndices {
		t.Errorf("index count: got %d, want %d", len(indices), wantIndices)
	}
}

func TestBuildPlaneMeshBoundsAndUVs(t *testing.T) {
	verts, indices := buildPlaneMesh(4, 2, 2)

	for i := 0; i < len(verts); i += 5 {
		x, y, z := verts[i], verts[i+1], verts[i+2]
		u, v := verts[i+3], verts[i+4]
		if x < -2 || x > 2 || z < -1 || z > 1 {
			t.Errorf("vertex %d out of plane bounds: (%f, %f)", i/5, x, z)
		}
		if y != 0 {
			t.Errorf("vertex %d should lie in the XZ plane, y=%f", i/5, y)
		}
		if u < 0 || u > 1 || v < 0 || v > 1 {
			t.Errorf("vertex %d has UV outside [0,1]: (%f, %f)", i/5, u, v)
		}
	}

	vertCount := int32(len(verts) / 5)
	for _, idx := range indices {
		if idx < 0 || idx >= vertCount {
			t.Fatalf("index %d out of range [0, %d)", idx, vertCount)
		}
	}
}

func TestBuildPlaneMeshMinimumSegments(t *testing.T) {
	verts, indices := buildPlaneMesh(1, 1, 0)

	if len(verts) != 4*5 {
		t.Errorf("segments<1 should clamp to a single quad, got %d floats", len(verts))
	}
	if len(indices) != 6 {
		t.Errorf("single quad should have 6 indices, got %d", len(indices))
	}
}
