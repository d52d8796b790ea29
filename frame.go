package rectray

// Frame is a root coordinate space: it creates a 2D rectangular area
// around a node's origin that all of its descendants are ultimately
// measured against.
type Frame struct {
	// Dimension of the frame.
	Dimension Vec2
	// At shifts the frame's bounding rect relative to the node
	// origin. Descendants anchor around the origin either way; At
	// biases which side has room for nudge and anchor-swap policies.
	At Vec2
	// Z is the base depth inherited by every descendant.
	Z float64
	// Pickable marks the frame's subtree for external hit-testing
	// backends. The walker carries it as data only.
	Pickable bool
}

// NewFrame returns a frame of the given size centered on the origin.
func NewFrame(dimension Vec2) *Frame {
	return &Frame{Dimension: dimension}
}

// NewFrameAt returns a frame whose bounding rect is centered on the
// given anchor of itself.
func NewFrameAt(anchor Anchor, dimension Vec2) *Frame {
	return &Frame{Dimension: dimension, At: anchor.Mul(dimension)}
}

// Rect returns the frame's bounding rect.
func (f *Frame) Rect() Rect {
	return RectAround(f.At, f.Dimension)
}
