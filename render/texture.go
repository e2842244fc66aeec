// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// Texture errors.
var (
	// ErrNoLevels is returned when a texture is created without pixel data.
	ErrNoLevels = errors.New("render: texture needs at least one mip level")

	// ErrLevelSizeMismatch is returned when a mip level's pixel data does
	// not match its declared dimensions.
	ErrLevelSizeMismatch = errors.New("render: mip level size mismatch")
)

// Texture is a loaded surface texture ready for compositing.
//
// GPU-backed textures expose a HAL view; CPU-backed textures (used when
// no device is bound, e.g. in tests or headless tools) return nil from
// View and are composited in software.
type Texture interface {
	// Width returns the texture width in pixels.
	Width() int

	// Height returns the texture height in pixels.
	Height() int

	// Format returns the texture pixel format.
	Format() gputypes.TextureFormat

	// View returns the default GPU texture view, or nil for CPU-backed
	// textures.
	View() hal.TextureView

	// Destroy releases the texture's resources. Destroy is idempotent.
	Destroy()
}

// Level is one mip level of RGBA pixel data, 4 bytes per pixel.
type Level struct {
	Width  int
	Height int
	Pixels []byte
}

// deviceTexture is a GPU texture created from pixel data via a HAL
// device and queue.
type deviceTexture struct {
	device TextureDevice
	tex    hal.Texture
	view   hal.TextureView

	width  int
	height int
	format gputypes.TextureFormat

	released atomic.Bool
}

// UploadTexture creates a 2D texture on the device and writes the given
// mip levels through the queue. Level 0 defines the texture dimensions;
// each further level must halve (the usual mip chain).
//
// Pixels are tightly packed RGBA, 4 bytes per pixel.
func UploadTexture(device TextureDevice, queue UploadQueue, label string, levels []Level) (Texture, error) {
	if device == nil {
		return nil, ErrNilDevice
	}
	if len(levels) == 0 {
		return nil, ErrNoLevels
	}
	for i, lv := range levels {
		if len(lv.Pixels) != lv.Width*lv.Height*4 {
			return nil, fmt.Errorf("%w: level %d has %d bytes, want %d",
				ErrLevelSizeMismatch, i, len(lv.Pixels), lv.Width*lv.Height*4)
		}
	}

	base := levels[0]
	//nolint:gosec // G115: texture dimensions are small positive ints
	tex, err := device.CreateTexture(&hal.TextureDescriptor{
		Label: label,
		Size: hal.Extent3D{
			Width:              uint32(base.Width),
			Height:             uint32(base.Height),
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: uint32(len(levels)),
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        gputypes.TextureFormatRGBA8Unorm,
		Usage:         gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("render: create texture %q: %w", label, err)
	}

	view, err := device.CreateTextureView(tex, &hal.TextureViewDescriptor{
		Label:         label + " view",
		Format:        gputypes.TextureFormatRGBA8Unorm,
		Dimension:     gputypes.TextureViewDimension2D,
		Aspect:        gputypes.TextureAspectAll,
		MipLevelCount: uint32(len(levels)),
	})
	if err != nil {
		device.DestroyTexture(tex)
		return nil, fmt.Errorf("render: create texture view %q: %w", label, err)
	}

	if queue != nil {
		for i, lv := range levels {
			//nolint:gosec // G115: see above
			err := queue.WriteTexture(
				&hal.ImageCopyTexture{
					Texture:  tex,
					MipLevel: uint32(i),
					Origin:   hal.Origin3D{X: 0, Y: 0, Z: 0},
					Aspect:   gputypes.TextureAspectAll,
				},
				lv.Pixels,
				&hal.ImageDataLayout{
					Offset:       0,
					BytesPerRow:  uint32(lv.Width * 4),
					RowsPerImage: uint32(lv.Height),
				},
				&hal.Extent3D{
					Width:              uint32(lv.Width),
					Height:             uint32(lv.Height),
					DepthOrArrayLayers: 1,
				},
			)
			if err != nil {
				device.DestroyTextureView(view)
				device.DestroyTexture(tex)
				return nil, fmt.Errorf("render: upload mip level %d of %q: %w", i, label, err)
			}
		}
	}

	return &deviceTexture{
		device: device,
		tex:    tex,
		view:   view,
		width:  base.Width,
		height: base.Height,
		format: gputypes.TextureFormatRGBA8Unorm,
	}, nil
}

func (t *deviceTexture) Width() int  { return t.width }
func (t *deviceTexture) Height() int { return t.height }

func (t *deviceTexture) Format() gputypes.TextureFormat { return t.format }

func (t *deviceTexture) View() hal.TextureView {
	if t.released.Load() {
		return nil
	}
	return t.view
}

func (t *deviceTexture) Destroy() {
	if t.released.Swap(true) {
		return
	}
	t.device.DestroyTextureView(t.view)
	t.device.DestroyTexture(t.tex)
}

var _ Texture = (*deviceTexture)(nil)
