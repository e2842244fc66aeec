package globe

import "sync"

// textureLoadQueue is the FIFO of surface images awaiting texture
// resolution. Images enter when added without a texture and leave
// exactly once, when the render step promotes (or, on load failure,
// drops) them.
//
// The queue has its own lock, independent of the registry's. Callers
// must never hold one while blocking on the other.
type textureLoadQueue struct {
	mu      sync.Mutex
	pending []*SurfaceImage
}

// push appends an image to the tail.
func (q *textureLoadQueue) push(img *SurfaceImage) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.pending = append(q.pending, img)
}

// pop removes and returns the head image. The second return value is
// false when the queue is empty.
func (q *textureLoadQueue) pop() (*SurfaceImage, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.pending) == 0 {
		return nil, false
	}
	img := q.pending[0]
	q.pending[0] = nil // release the reference
	q.pending = q.pending[1:]
	return img, true
}

// size returns the number of pending images.
func (q *textureLoadQueue) size() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}
