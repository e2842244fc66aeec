// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package texture

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/globe/render"
)

// Decode errors.
var (
	// ErrUnsupportedFormat is returned when the image format is not supported.
	ErrUnsupportedFormat = errors.New("texture: unsupported image format")
)

// decodeRGBA loads the image at path and converts it to RGBA.
// PNG and JPEG are decoded by extension; anything else goes through
// content sniffing via image.Decode.
func decodeRGBA(path string) (*image.RGBA, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("texture: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var img image.Image
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		img, err = png.Decode(f)
	case ".jpg", ".jpeg":
		img, err = jpeg.Decode(f)
	default:
		img, _, err = image.Decode(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("texture: decode %s: %w", path, err)
	}

	return toRGBA(img), nil
}

// toRGBA converts an image to RGBA without copying when it already is one.
func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(rgba, rgba.Bounds(), img, b.Min, xdraw.Src)
	return rgba
}

// resample scales src to a size×size square. The source is returned
// unchanged if it already has the target dimensions.
func resample(src *image.RGBA, size int) *image.RGBA {
	b := src.Bounds()
	if b.Dx() == size && b.Dy() == size {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
	return dst
}

// imageTexture is a CPU-backed texture used when no GPU device is
// bound. Compositing falls back to software for these.
type imageTexture struct {
	img *image.RGBA
}

// NewImageTexture wraps an RGBA image as a CPU-backed texture.
// The image is used directly without copying.
func NewImageTexture(img *image.RGBA) render.Texture {
	return &imageTexture{img: img}
}

func (t *imageTexture) Width() int  { return t.img.Bounds().Dx() }
func (t *imageTexture) Height() int { return t.img.Bounds().Dy() }

func (t *imageTexture) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// View returns nil; CPU-backed textures have no GPU view.
func (t *imageTexture) View() hal.TextureView { return nil }

// Destroy is a no-op; the pixels belong to the Go heap.
func (t *imageTexture) Destroy() {}

// Image returns the underlying RGBA image, shared with the texture.
func (t *imageTexture) Image() *image.RGBA { return t.img }

var _ render.Texture = (*imageTexture)(nil)
