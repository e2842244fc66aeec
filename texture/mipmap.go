// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package texture

import (
	"image"

	"github.com/gogpu/globe/render"
)

// buildLevels produces the full mip chain for src, level 0 first.
// Each level is a box-filtered (2x2 average) half-size reduction of the
// previous one; the chain ends at 1x1. Pixels are tightly packed RGBA.
func buildLevels(src *image.RGBA) []render.Level {
	levels := []render.Level{levelFromImage(src)}

	cur := src
	for cur.Bounds().Dx() > 1 || cur.Bounds().Dy() > 1 {
		cur = downsample(cur)
		levels = append(levels, levelFromImage(cur))
	}
	return levels
}

// levelFromImage copies the image into a tightly packed level,
// dropping any row padding the decoder may have introduced.
func levelFromImage(img *image.RGBA) render.Level {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	pixels := make([]byte, w*h*4)
	for y := 0; y < h; y++ {
		srcRow := img.Pix[y*img.Stride : y*img.Stride+w*4]
		copy(pixels[y*w*4:], srcRow)
	}
	return render.Level{Width: w, Height: h, Pixels: pixels}
}

// downsample creates a half-size version of src using a 2x2 box filter.
// Odd dimensions round down but never below one pixel.
func downsample(src *image.RGBA) *image.RGBA {
	sb := src.Bounds()
	w := max(sb.Dx()/2, 1)
	h := max(sb.Dy()/2, 1)

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			sx, sy := x*2, y*2
			for c := 0; c < 4; c++ {
				sum := int(src.Pix[sy*src.Stride+sx*4+c])
				n := 1
				if sx+1 < sb.Dx() {
					sum += int(src.Pix[sy*src.Stride+(sx+1)*4+c])
					n++
				}
				if sy+1 < sb.Dy() {
					sum += int(src.Pix[(sy+1)*src.Stride+sx*4+c])
					n++
				}
				if sx+1 < sb.Dx() && sy+1 < sb.Dy() {
					sum += int(src.Pix[(sy+1)*src.Stride+(sx+1)*4+c])
					n++
				}
				dst.Pix[y*dst.Stride+x*4+c] = byte(sum / n)
			}
		}
	}
	return dst
}
