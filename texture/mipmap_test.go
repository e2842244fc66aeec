// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package texture

import (
	"image"
	"testing"
)

func solidRGBA(w, h int, v byte) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = v
	}
	return img
}

// TestBuildLevels tests the shape of the mip chain.
func TestBuildLevels(t *testing.T) {
	levels := buildLevels(solidRGBA(8, 8, 0xFF))

	if len(levels) != 4 {
		t.Fatalf("levels = %d, want 4 (8,4,2,1)", len(levels))
	}
	wantSizes := []int{8, 4, 2, 1}
	for i, lv := range levels {
		if lv.Width != wantSizes[i] || lv.Height != wantSizes[i] {
			t.Errorf("level %d = %dx%d, want %dx%d", i, lv.Width, lv.Height, wantSizes[i], wantSizes[i])
		}
		if len(lv.Pixels) != lv.Width*lv.Height*4 {
			t.Errorf("level %d has %d bytes, want %d", i, len(lv.Pixels), lv.Width*lv.Height*4)
		}
	}
}

// TestDownsampleAverages tests the 2x2 box filter.
func TestDownsampleAverages(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	// Red channel values 0, 40, 80, 120 average to 60.
	src.Pix[0] = 0
	src.Pix[4] = 40
	src.Pix[src.Stride] = 80
	src.Pix[src.Stride+4] = 120

	dst := downsample(src)
	if dst.Bounds().Dx() != 1 || dst.Bounds().Dy() != 1 {
		t.Fatalf("downsampled size = %v, want 1x1", dst.Bounds())
	}
	if dst.Pix[0] != 60 {
		t.Errorf("averaged red = %d, want 60", dst.Pix[0])
	}
}

// TestDownsampleOddDimensions tests that odd sizes never reach zero.
func TestDownsampleOddDimensions(t *testing.T) {
	levels := buildLevels(solidRGBA(5, 3, 0x80))

	last := levels[len(levels)-1]
	if last.Width != 1 || last.Height != 1 {
		t.Errorf("final level = %dx%d, want 1x1", last.Width, last.Height)
	}
	for i, lv := range levels {
		if lv.Width < 1 || lv.Height < 1 {
			t.Errorf("level %d has degenerate size %dx%d", i, lv.Width, lv.Height)
		}
	}
}

// TestLevelFromImageDropsStridePadding tests subimage handling.
func TestLevelFromImageDropsStridePadding(t *testing.T) {
	base := solidRGBA(8, 8, 0x11)
	sub, ok := base.SubImage(image.Rect(2, 2, 6, 6)).(*image.RGBA)
	if !ok {
		t.Fatal("SubImage should return *image.RGBA")
	}

	lv := levelFromImage(sub)
	if lv.Width != 4 || lv.Height != 4 {
		t.Fatalf("level = %dx%d, want 4x4", lv.Width, lv.Height)
	}
	if len(lv.Pixels) != 4*4*4 {
		t.Errorf("pixels = %d bytes, want %d", len(lv.Pixels), 4*4*4)
	}
	for i, p := range lv.Pixels {
		if p != 0x11 {
			t.Fatalf("pixel byte %d = %#x, want 0x11", i, p)
		}
	}
}
