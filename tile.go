package globe

import (
	"context"

	"github.com/gogpu/globe/geo"
)

// Tile is one node of the geographic quadtree. The renderer owns the
// root tiles and drives their lifecycle; subdivision, meshing, and
// culling are the tile implementation's concern.
//
// Initialize, Update, and Render are called from the render thread.
// Update returns an error only to abandon the current frame; the
// renderer logs it and carries on, except for context cancellation,
// which it propagates.
type Tile interface {
	// Initialize prepares the tile for its first frame.
	Initialize(fc *FrameContext)

	// Update refreshes the tile's state for this frame.
	Update(ctx context.Context, fc *FrameContext) error

	// Render draws the tile, consulting the owning renderer for the
	// surface images intersecting its sector.
	Render(fc *FrameContext)

	// Dispose releases the tile's resources, including any children.
	Dispose()
}

// TileFactory constructs the tile covering sector at the given
// subdivision level. The owner reference lets tiles reach back into the
// renderer for imagery queries and configuration; tiles must not retain
// it past Dispose.
type TileFactory func(sector geo.Sector, level int, owner *SurfaceRenderer) Tile
