package globe

import (
	"image"
	"testing"

	"github.com/gogpu/globe/geo"
	"github.com/gogpu/globe/texture"
)

// TestSurfaceImageCompare tests the priority-then-path total order.
func TestSurfaceImageCompare(t *testing.T) {
	low := NewSurfaceImage("z.png", 1, geo.FullSphere)
	high := NewSurfaceImage("a.png", 2, geo.FullSphere)
	same := NewSurfaceImage("z.png", 1, geo.FullSphere)
	tie := NewSurfaceImage("a.png", 1, geo.FullSphere)

	if low.Compare(high) >= 0 {
		t.Error("lower priority should order first")
	}
	if high.Compare(low) <= 0 {
		t.Error("Compare should be antisymmetric")
	}
	if low.Compare(same) != 0 {
		t.Error("equal priority and path should compare equal")
	}
	if tie.Compare(low) >= 0 {
		t.Error("equal priority should tie-break by path")
	}
}

// TestSurfaceImageReady tests the pending/ready distinction.
func TestSurfaceImageReady(t *testing.T) {
	pending := NewSurfaceImage("p.png", 0, geo.FullSphere)
	if pending.Ready() {
		t.Error("image without texture should be pending")
	}
	if pending.Texture() != nil {
		t.Error("pending image should have nil texture")
	}

	tex := texture.NewImageTexture(image.NewRGBA(image.Rect(0, 0, 2, 2)))
	ready := NewSurfaceImageWithTexture("r.png", 0, geo.FullSphere, tex)
	if !ready.Ready() {
		t.Error("image created with texture should be ready")
	}
	if ready.Texture() != tex {
		t.Error("Texture should return the resolved texture")
	}
}
