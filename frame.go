package globe

import "time"

// FrameContext carries per-frame state through Update and Render.
//
// The renderer resets TilesUpdated at the start of every Render pass
// and increments TexturesLoaded once per promoted surface image; tiles
// increment TilesUpdated themselves as they refresh. The context is
// owned by the frame loop and is not safe for concurrent mutation.
type FrameContext struct {
	// FrameNumber counts rendered frames, starting at zero.
	FrameNumber uint64

	// Time is the timestamp the frame began.
	Time time.Time

	// TexturesLoaded counts surface-image textures resolved this frame.
	// At most one is loaded per frame.
	TexturesLoaded int

	// TilesUpdated counts tiles that refreshed their geometry or
	// imagery this frame.
	TilesUpdated int
}
