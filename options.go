package globe

import "github.com/gogpu/globe/render"

// TextureLoader resolves a surface image's resource path into a
// texture. texture.FileLoader is the standard implementation; the
// renderer calls it synchronously, at most once per frame.
type TextureLoader interface {
	LoadTexture(path string) (render.Texture, error)
}

// Option configures a SurfaceRenderer during creation.
//
// Example:
//
//	// Headless, CPU-backed textures:
//	r := globe.NewSurfaceRenderer(factory)
//
//	// Sharing the host's GPU device:
//	r := globe.NewSurfaceRenderer(factory,
//	    globe.WithDevice(device, queue),
//	    globe.WithResetNotifier(resets),
//	)
type Option func(*rendererOptions)

// rendererOptions holds optional configuration for renderer creation.
type rendererOptions struct {
	rows                  int
	samplesPerTile        int
	distanceAboveSeaLevel float64
	loader                TextureLoader
	device                render.TextureDevice
	queue                 render.UploadQueue
	provider              render.DeviceHandle
	notifier              render.ResetNotifier
	world                 any
}

// DefaultSamplesPerTile is the default vertex-grid density per tile
// edge, consumed by tile implementations through SamplesPerTile.
const DefaultSamplesPerTile = 32

// defaultOptions returns the default renderer options.
func defaultOptions() rendererOptions {
	return rendererOptions{
		rows:           DefaultRootRows,
		samplesPerTile: DefaultSamplesPerTile,
	}
}

// WithRootRows overrides the number of latitude rows in the root
// partition. Values below one fall back to the default. Intended for
// tests and non-planetary datasets; the column count is always twice
// the row count.
func WithRootRows(rows int) Option {
	return func(o *rendererOptions) {
		if rows > 0 {
			o.rows = rows
		}
	}
}

// WithSamplesPerTile sets the vertex-grid density tiles should use.
func WithSamplesPerTile(samples int) Option {
	return func(o *rendererOptions) {
		if samples > 0 {
			o.samplesPerTile = samples
		}
	}
}

// WithDistanceAboveSeaLevel sets the eye height configuration exposed
// to tiles for level-of-detail decisions, in meters.
func WithDistanceAboveSeaLevel(meters float64) Option {
	return func(o *rendererOptions) {
		o.distanceAboveSeaLevel = meters
	}
}

// WithLoader sets a custom texture loader. Use this for dependency
// injection of caching layers or alternative imagery sources.
func WithLoader(l TextureLoader) Option {
	return func(o *rendererOptions) {
		o.loader = l
	}
}

// WithDevice hands the renderer the host's HAL device and upload queue.
// Without a device the renderer stays CPU-backed: no off-screen target
// is allocated and loaded textures have no GPU views.
func WithDevice(device render.TextureDevice, queue render.UploadQueue) Option {
	return func(o *rendererOptions) {
		o.device = device
		o.queue = queue
	}
}

// WithDeviceProvider hands the renderer a gpucontext device provider.
// The HAL device and queue are extracted from it; providers without HAL
// access leave the renderer CPU-backed. WithDevice takes precedence.
func WithDeviceProvider(provider render.DeviceHandle) Option {
	return func(o *rendererOptions) {
		o.provider = provider
	}
}

// WithResetNotifier subscribes the render target to the host's
// device-reset signal. Without one the target is never rebuilt.
func WithResetNotifier(n render.ResetNotifier) Option {
	return func(o *rendererOptions) {
		o.notifier = n
	}
}

// WithWorld records the owning world object, reachable from tiles via
// the World accessor. Opaque to the renderer.
func WithWorld(world any) Option {
	return func(o *rendererOptions) {
		o.world = world
	}
}
