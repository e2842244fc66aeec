// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package texture

import (
	"golang.org/x/sync/singleflight"

	"github.com/gogpu/globe/internal/lru"
	"github.com/gogpu/globe/render"
)

// TileTextureSize is the edge length, in pixels, surface imagery is
// resampled to before upload.
const TileTextureSize = 512

// DefaultCacheCapacity is the number of loaded textures the file loader
// retains.
const DefaultCacheCapacity = 128

// Loader resolves a resource path into a texture. Implementations may
// block; the renderer promotes at most one texture per frame to bound
// the stall.
type Loader interface {
	LoadTexture(path string) (render.Texture, error)
}

// FileLoader loads imagery from the local filesystem.
//
// With a device bound, decoded imagery is resampled, mipmapped, and
// uploaded to the GPU. Without one, LoadTexture returns CPU-backed
// textures. FileLoader is safe for concurrent use; concurrent loads of
// the same path share one decode.
type FileLoader struct {
	device render.TextureDevice
	queue  render.UploadQueue
	size   int

	group singleflight.Group
	cache *lru.Cache[string, render.Texture]
}

// NewFileLoader returns a loader that uploads through the given device
// and queue. Both may be nil for CPU-backed loading.
//
// Evicted textures are only dropped from the cache, never destroyed;
// ownership stays with whoever holds them.
func NewFileLoader(device render.TextureDevice, queue render.UploadQueue) *FileLoader {
	return &FileLoader{
		device: device,
		queue:  queue,
		size:   TileTextureSize,
		cache:  lru.New[string, render.Texture](DefaultCacheCapacity, nil),
	}
}

// LoadTexture implements Loader.
func (l *FileLoader) LoadTexture(path string) (render.Texture, error) {
	if tex, ok := l.cache.Get(path); ok {
		return tex, nil
	}

	v, err, _ := l.group.Do(path, func() (any, error) {
		// Re-check under the flight: a concurrent load may have
		// populated the cache while this call was queued behind it.
		if tex, ok := l.cache.Get(path); ok {
			return tex, nil
		}

		tex, err := l.load(path)
		if err != nil {
			return nil, err
		}
		l.cache.Add(path, tex)
		return tex, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(render.Texture), nil
}

// load decodes, resamples, and (with a device) uploads one image.
func (l *FileLoader) load(path string) (render.Texture, error) {
	img, err := decodeRGBA(path)
	if err != nil {
		return nil, err
	}
	img = resample(img, l.size)

	if l.device == nil {
		return NewImageTexture(img), nil
	}
	return render.UploadTexture(l.device, l.queue, path, buildLevels(img))
}

var _ Loader = (*FileLoader)(nil)
