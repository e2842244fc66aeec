// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"math/bits"
	"sync"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// SurfaceSize is the fixed edge length, in pixels, of the square
// off-screen surface that surface images are composited into before
// being applied to tiles.
const SurfaceSize = 1024

// Render target formats. The color target carries a full mip chain so
// composited imagery filters correctly at any tile scale.
const (
	targetColorFormat = gputypes.TextureFormatRGBA8Unorm
	targetDepthFormat = gputypes.TextureFormatDepth24PlusStencil8
)

// TargetManager owns the off-screen render-to-texture surface.
//
// The manager starts unbound. The renderer binds it lazily on the first
// frame a device is available: Bind subscribes to the host's reset
// notifier and then builds the surface once, synchronously. Each later
// reset signal (observed via Poll at the top of a frame) discards the
// old surface and builds a fresh one. Rendering never runs concurrently
// with reset handling, so no dual-liveness window is needed.
type TargetManager struct {
	mu sync.Mutex

	device TextureDevice
	resets <-chan struct{}
	cancel func()

	colorTex  hal.Texture
	colorView hal.TextureView
	depthTex  hal.Texture
	depthView hal.TextureView

	bound bool
}

// NewTargetManager returns an unbound target manager.
func NewTargetManager() *TargetManager {
	return &TargetManager{}
}

// Bound reports whether a device is bound and the surface allocated.
func (m *TargetManager) Bound() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.bound
}

// Bind attaches the manager to a device, subscribes to reset
// notifications, and builds the surface. Binding an already-bound
// manager is a no-op. notifier may be nil for hosts whose devices never
// reset.
func (m *TargetManager) Bind(device TextureDevice, notifier ResetNotifier) error {
	if device == nil {
		return ErrNilDevice
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.bound {
		return nil
	}

	m.device = device
	if notifier != nil {
		m.resets, m.cancel = notifier.Subscribe()
	}

	if err := m.rebuildLocked(); err != nil {
		m.releaseLocked()
		return err
	}
	m.bound = true
	return nil
}

// Poll checks for a pending reset signal and rebuilds the surface if
// one arrived. Poll never blocks. Calling Poll on an unbound manager is
// a no-op.
func (m *TargetManager) Poll() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.bound || m.resets == nil {
		return nil
	}

	select {
	case <-m.resets:
		return m.rebuildLocked()
	default:
		return nil
	}
}

// ColorView returns the color attachment view, or nil while unbound.
func (m *TargetManager) ColorView() hal.TextureView {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.colorView
}

// DepthView returns the depth/stencil attachment view, or nil while
// unbound.
func (m *TargetManager) DepthView() hal.TextureView {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.depthView
}

// Release cancels the reset subscription and destroys the surface.
// Release is idempotent; the manager returns to the unbound state and
// may be bound again.
func (m *TargetManager) Release() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.releaseLocked()
	m.bound = false
}

// rebuildLocked destroys any existing surface and allocates a new one.
// Caller holds m.mu.
func (m *TargetManager) rebuildLocked() error {
	m.destroyTexturesLocked()

	size := hal.Extent3D{Width: SurfaceSize, Height: SurfaceSize, DepthOrArrayLayers: 1}

	colorTex, err := m.device.CreateTexture(&hal.TextureDescriptor{
		Label:         "globe_surface_color",
		Size:          size,
		MipLevelCount: mipLevelCount(SurfaceSize),
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        targetColorFormat,
		Usage: gputypes.TextureUsageRenderAttachment |
			gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("render: create surface color texture: %w", err)
	}
	m.colorTex = colorTex

	colorView, err := m.device.CreateTextureView(colorTex, &hal.TextureViewDescriptor{
		Label:         "globe_surface_color_view",
		Format:        targetColorFormat,
		Dimension:     gputypes.TextureViewDimension2D,
		Aspect:        gputypes.TextureAspectAll,
		MipLevelCount: mipLevelCount(SurfaceSize),
	})
	if err != nil {
		m.destroyTexturesLocked()
		return fmt.Errorf("render: create surface color view: %w", err)
	}
	m.colorView = colorView

	depthTex, err := m.device.CreateTexture(&hal.TextureDescriptor{
		Label:         "globe_surface_depth",
		Size:          size,
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        targetDepthFormat,
		Usage:         gputypes.TextureUsageRenderAttachment,
	})
	if err != nil {
		m.destroyTexturesLocked()
		return fmt.Errorf("render: create surface depth texture: %w", err)
	}
	m.depthTex = depthTex

	depthView, err := m.device.CreateTextureView(depthTex, &hal.TextureViewDescriptor{
		Label:         "globe_surface_depth_view",
		MipLevelCount: 1,
	})
	if err != nil {
		m.destroyTexturesLocked()
		return fmt.Errorf("render: create surface depth view: %w", err)
	}
	m.depthView = depthView

	return nil
}

// releaseLocked cancels the subscription and destroys textures.
// Caller holds m.mu.
func (m *TargetManager) releaseLocked() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
		m.resets = nil
	}
	m.destroyTexturesLocked()
	m.device = nil
}

// destroyTexturesLocked releases all surface resources. Caller holds m.mu.
func (m *TargetManager) destroyTexturesLocked() {
	if m.device == nil {
		return
	}
	if m.depthView != nil {
		m.device.DestroyTextureView(m.depthView)
		m.depthView = nil
	}
	if m.depthTex != nil {
		m.device.DestroyTexture(m.depthTex)
		m.depthTex = nil
	}
	if m.colorView != nil {
		m.device.DestroyTextureView(m.colorView)
		m.colorView = nil
	}
	if m.colorTex != nil {
		m.device.DestroyTexture(m.colorTex)
		m.colorTex = nil
	}
}

// mipLevelCount returns the number of levels in a full mip chain for a
// square texture of the given edge length.
func mipLevelCount(size uint32) uint32 {
	if size == 0 {
		return 1
	}
	return uint32(bits.Len32(size))
}
