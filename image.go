package globe

import (
	"strings"

	"github.com/gogpu/globe/geo"
	"github.com/gogpu/globe/render"
)

// SurfaceImage is an overlay image registered for compositing onto
// surface tiles.
//
// An image is identified by its resource path, which is expected to be
// unique per logical image. Images created without a texture are
// pending: they sit in the renderer's load queue until promoted, one
// per frame, during Render. The texture field is written only by the
// core during promotion, before the image becomes visible in the
// registry, so readers of registered images never observe a mutation.
type SurfaceImage struct {
	path     string
	priority int
	sector   geo.Sector
	texture  render.Texture
}

// NewSurfaceImage creates a pending surface image covering the given
// sector. Its texture is resolved from path during promotion.
func NewSurfaceImage(path string, priority int, sector geo.Sector) *SurfaceImage {
	return &SurfaceImage{path: path, priority: priority, sector: sector}
}

// NewSurfaceImageWithTexture creates a ready surface image with an
// already-resolved texture. It bypasses the load queue entirely.
func NewSurfaceImageWithTexture(path string, priority int, sector geo.Sector, tex render.Texture) *SurfaceImage {
	return &SurfaceImage{path: path, priority: priority, sector: sector, texture: tex}
}

// Path returns the image's resource path, its identity for removal.
func (i *SurfaceImage) Path() string { return i.path }

// Priority returns the draw priority. Lower priorities draw first, so
// higher-priority imagery composites on top.
func (i *SurfaceImage) Priority() int { return i.priority }

// Sector returns the geographic region the image covers.
func (i *SurfaceImage) Sector() geo.Sector { return i.sector }

// Texture returns the resolved texture, or nil while pending.
func (i *SurfaceImage) Texture() render.Texture { return i.texture }

// Ready reports whether the image carries a resolved texture.
func (i *SurfaceImage) Ready() bool { return i.texture != nil }

// Compare orders images by priority, tie-broken by path, yielding the
// total draw order the registry maintains. It returns a negative value
// when i draws before o, zero when they are equal, positive otherwise.
func (i *SurfaceImage) Compare(o *SurfaceImage) int {
	if i.priority != o.priority {
		if i.priority < o.priority {
			return -1
		}
		return 1
	}
	return strings.Compare(i.path, o.path)
}
