// Package globe renders a planetary surface as a hierarchy of
// geographic tiles composited with overlay imagery.
//
// # Overview
//
// globe owns the fixed partition of the sphere into 50 root tiles
// (5 rows by 10 columns of 36°×36° sectors), the registry of surface
// images available for compositing, the queue of imagery awaiting
// texture upload, and the off-screen render target tiles composite
// into. Tile subdivision, mesh generation, and camera math live in the
// host application; globe drives their lifecycle through the Tile
// interface.
//
// # Quick Start
//
//	r := globe.NewSurfaceRenderer(newTerrainTile,
//	    globe.WithDevice(device, resetSignal),
//	)
//
//	// Register imagery; images without a texture are loaded in the
//	// background, one per frame.
//	r.AddSurfaceImage(globe.NewSurfaceImage("base.png", 0, geo.FullSphere))
//
//	// Per frame:
//	if err := r.Update(ctx, fc); err != nil {
//	    return err // frame loop cancelled
//	}
//	r.Render(fc)
//
// # Threading
//
// A single logical render thread drives Update and Render. Producer
// goroutines may call AddSurfaceImage and RemoveSurfaceImage at any
// time; the registry and load queue carry their own locks. The root
// tile array is immutable after construction and is only locked for
// disposal.
//
// # GPU Integration
//
// globe receives its GPU device from the host and never creates one.
// Hosts hand over the HAL device and queue (or a gpucontext provider)
// together with a render.ResetNotifier; the off-screen surface is
// rebuilt whenever the device signals a reset.
package globe
