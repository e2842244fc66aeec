package globe

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/gogpu/globe/geo"
	"github.com/gogpu/globe/render"
	"github.com/gogpu/globe/texture"
)

// SurfaceRenderer owns the root tile partition, the surface-image
// registry and load queue, and the off-screen render target. It drives
// the per-frame Update/Render cycle.
//
// Update and Render must be called from a single logical render
// thread. AddSurfaceImage and RemoveSurfaceImage may be called from any
// goroutine.
type SurfaceRenderer struct {
	opts   rendererOptions
	loader TextureLoader

	registry imageRegistry
	queue    textureLoadQueue
	target   *render.TargetManager

	device      render.TextureDevice
	uploadQueue render.UploadQueue

	tiles   []Tile
	tilesMu sync.Mutex // guards whole-array iteration for disposal only

	initialized bool
	disposed    bool
}

// NewSurfaceRenderer creates a renderer whose root tiles are built by
// factory. The factory is called once per root tile, in row-major
// partition order. A nil factory panics: the renderer cannot cover the
// sphere without tiles.
func NewSurfaceRenderer(factory TileFactory, opts ...Option) *SurfaceRenderer {
	if factory == nil {
		panic("globe: NewSurfaceRenderer called with nil TileFactory")
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	r := &SurfaceRenderer{
		opts:   o,
		target: render.NewTargetManager(),
	}

	r.device, r.uploadQueue = o.device, o.queue
	if r.device == nil && o.provider != nil {
		dev, q, err := render.HALFromProvider(o.provider)
		if err != nil {
			Logger().Warn("device provider has no HAL access; staying CPU-backed", "err", err)
		} else {
			r.device, r.uploadQueue = dev, q
		}
	}

	r.loader = o.loader
	if r.loader == nil {
		r.loader = texture.NewFileLoader(r.device, r.uploadQueue)
	}

	r.tiles = buildRootTiles(r, o.rows, factory)
	return r
}

// Initialize prepares every root tile for rendering. It runs lazily on
// the first Update and is an idempotent no-op afterwards.
func (r *SurfaceRenderer) Initialize(fc *FrameContext) {
	if r.disposed || r.initialized {
		return
	}
	for _, t := range r.tiles {
		t.Initialize(fc)
	}
	r.initialized = true
	Logger().Info("surface renderer initialized", "rootTiles", len(r.tiles))
}

// Update refreshes every root tile for this frame, initializing the
// renderer first if needed.
//
// Cancellation of ctx aborts the pass cleanly and is returned to the
// frame loop. Any other tile failure abandons the rest of the frame:
// it is logged and Update returns nil, leaving the renderer valid for
// the next frame. No partial rollback is attempted.
func (r *SurfaceRenderer) Update(ctx context.Context, fc *FrameContext) error {
	if r.disposed {
		return nil
	}
	r.Initialize(fc)

	for _, t := range r.tiles {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := t.Update(ctx, fc); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			Logger().Warn("tile update failed, frame abandoned", "err", err)
			return nil
		}
	}
	return nil
}

// Render draws every root tile, promoting at most one pending surface
// image first.
//
// Render before the first Update is a no-op: nothing is drawn and no
// promotion runs. With a device bound, the off-screen target is
// allocated lazily on the first call and rebuilt after device resets.
func (r *SurfaceRenderer) Render(fc *FrameContext) {
	if r.disposed || !r.initialized {
		return
	}

	r.ensureTarget()
	if err := r.target.Poll(); err != nil {
		Logger().Warn("render target rebuild failed", "err", err)
	}

	r.promoteOne(fc)

	if fc != nil {
		fc.TilesUpdated = 0
	}
	for _, t := range r.tiles {
		t.Render(fc)
	}
}

// Dispose releases the render target, unsubscribes from device resets,
// and disposes every root tile. Dispose is idempotent; Update and
// Render degrade to no-ops afterwards.
func (r *SurfaceRenderer) Dispose() {
	r.tilesMu.Lock()
	defer r.tilesMu.Unlock()

	if r.disposed {
		return
	}
	r.disposed = true
	r.initialized = false

	r.target.Release()
	for _, t := range r.tiles {
		t.Dispose()
	}
	Logger().Info("surface renderer disposed")
}

// AddSurfaceImage registers an overlay image for compositing. Ready
// images (texture already resolved) enter the sorted registry
// immediately; pending ones are appended to the load queue and become
// visible only after promotion.
func (r *SurfaceRenderer) AddSurfaceImage(img *SurfaceImage) {
	if img == nil {
		return
	}
	if img.Ready() {
		r.registry.add(img)
		Logger().Debug("surface image registered", "path", img.Path())
		return
	}
	r.queue.push(img)
	Logger().Debug("surface image queued for texture load", "path", img.Path())
}

// RemoveSurfaceImage removes the first registered image whose path
// equals path. Removal is best-effort: a missing path is a no-op that
// still leaves the registry sorted and touches the change timestamp.
// Cancellation of ctx is the only error returned.
//
// Images still waiting in the load queue are not removable; a queued
// image is promoted on a later frame even if it was removed first.
func (r *SurfaceRenderer) RemoveSurfaceImage(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !r.registry.remove(path) {
		Logger().Debug("removal of unregistered surface image", "path", path)
	}
	return nil
}

// ensureTarget lazily binds the render target once a device is
// available. Bind failures are logged; the next Render retries.
func (r *SurfaceRenderer) ensureTarget() {
	if r.device == nil || r.target.Bound() {
		return
	}
	if err := r.target.Bind(r.device, r.opts.notifier); err != nil {
		Logger().Warn("render target bind failed", "err", err)
	}
}

// promoteOne moves at most one image from the load queue into the
// registry, resolving its texture synchronously. Rate-limiting to one
// per frame bounds the stall texture decode can add to a frame; it
// guarantees forward progress, not completion time.
//
// A failed load is logged and the image dropped, honoring the
// leave-the-queue-exactly-once contract.
func (r *SurfaceRenderer) promoteOne(fc *FrameContext) {
	img, ok := r.queue.pop()
	if !ok {
		return
	}

	tex, err := r.loader.LoadTexture(img.Path())
	if err != nil {
		Logger().Warn("surface image texture load failed", "path", img.Path(), "err", err)
		return
	}

	img.texture = tex
	r.registry.add(img)
	if fc != nil {
		fc.TexturesLoaded++
	}
	Logger().Debug("surface image promoted", "path", img.Path())
}

// Images returns a snapshot of the registered images in draw order.
func (r *SurfaceRenderer) Images() []*SurfaceImage {
	return r.registry.snapshot()
}

// ImagesIntersecting returns, in draw order, the registered images
// whose sector overlaps the given one. Tiles call this while rendering
// to find the imagery composited onto their region.
func (r *SurfaceRenderer) ImagesIntersecting(sector geo.Sector) []*SurfaceImage {
	return r.registry.intersecting(sector)
}

// PendingTextureCount returns the number of images awaiting promotion.
func (r *SurfaceRenderer) PendingTextureCount() int {
	return r.queue.size()
}

// LastChanged returns the time of the most recent registry mutation.
// Dependents cache composited output keyed on this value.
func (r *SurfaceRenderer) LastChanged() time.Time {
	return r.registry.last()
}

// RootTiles returns the root tile partition in row-major order. The
// returned slice is a copy; the partition itself is immutable after
// construction.
func (r *SurfaceRenderer) RootTiles() []Tile {
	out := make([]Tile, len(r.tiles))
	copy(out, r.tiles)
	return out
}

// Target returns the off-screen render target manager.
func (r *SurfaceRenderer) Target() *render.TargetManager {
	return r.target
}

// SamplesPerTile returns the configured vertex-grid density.
func (r *SurfaceRenderer) SamplesPerTile() int {
	return r.opts.samplesPerTile
}

// DistanceAboveSeaLevel returns the configured eye height in meters.
func (r *SurfaceRenderer) DistanceAboveSeaLevel() float64 {
	return r.opts.distanceAboveSeaLevel
}

// World returns the owning world object, if one was configured.
func (r *SurfaceRenderer) World() any {
	return r.opts.world
}
