package globe

import (
	"sort"
	"sync"
	"time"

	"github.com/gogpu/globe/geo"
)

// imageRegistry is the sorted collection of ready surface images.
//
// The slice is re-sorted after every insertion or removal; order is
// never assumed stable across mutations. The lastChanged timestamp is
// written inside the same critical section as the mutation, so a reader
// that polls it observes a value consistent with some completed
// mutation.
type imageRegistry struct {
	mu          sync.Mutex
	images      []*SurfaceImage
	lastChanged time.Time
}

// add inserts a ready image and restores sort order.
func (r *imageRegistry) add(img *SurfaceImage) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.images = append(r.images, img)
	r.sortLocked()
	r.lastChanged = time.Now()
}

// remove deletes the first image whose path equals path and reports
// whether a removal occurred. The registry is re-sorted and the
// timestamp updated regardless, keeping the operation idempotent for
// dependents polling lastChanged.
func (r *imageRegistry) remove(path string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := false
	for n, img := range r.images {
		if img.Path() == path {
			r.images = append(r.images[:n], r.images[n+1:]...)
			removed = true
			break
		}
	}
	r.sortLocked()
	r.lastChanged = time.Now()
	return removed
}

// snapshot returns a copy of the registry contents in draw order.
func (r *imageRegistry) snapshot() []*SurfaceImage {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*SurfaceImage, len(r.images))
	copy(out, r.images)
	return out
}

// intersecting returns, in draw order, the images whose sector overlaps
// the given one.
func (r *imageRegistry) intersecting(sector geo.Sector) []*SurfaceImage {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*SurfaceImage
	for _, img := range r.images {
		if img.Sector().Intersects(sector) {
			out = append(out, img)
		}
	}
	return out
}

// size returns the number of registered images.
func (r *imageRegistry) size() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.images)
}

// last returns the time of the most recently completed mutation.
func (r *imageRegistry) last() time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastChanged
}

// sortLocked restores draw order. Caller holds r.mu.
func (r *imageRegistry) sortLocked() {
	sort.Slice(r.images, func(a, b int) bool {
		return r.images[a].Compare(r.images[b]) < 0
	})
}
