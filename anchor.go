package rectray

import "math"

// Anchor identifies a reference position within a rectangle as a
// normalized fraction in [-0.5, 0.5] per axis. {0, 0} is the center,
// {-0.5, -0.5} the top-left corner, {0.5, 0.5} the bottom-right.
//
// The zero value is AnchorCenter.
type Anchor struct {
	X, Y float64
}

// AnchorInherit is a sentinel meaning "fall back to the paired field".
// Transform2D.ParentAnchor and Transform2D.Center use it to inherit
// Transform2D.Anchor.
var AnchorInherit = Anchor{math.NaN(), math.NaN()}

// The nine canonical anchors.
var (
	AnchorTopLeft      = Anchor{-0.5, -0.5}
	AnchorTopCenter    = Anchor{0.0, -0.5}
	AnchorTopRight     = Anchor{0.5, -0.5}
	AnchorCenterLeft   = Anchor{-0.5, 0.0}
	AnchorCenter       = Anchor{0.0, 0.0}
	AnchorCenterRight  = Anchor{0.5, 0.0}
	AnchorBottomLeft   = Anchor{-0.5, 0.5}
	AnchorBottomCenter = Anchor{0.0, 0.5}
	AnchorBottomRight  = Anchor{0.5, 0.5}
)

// IsInherit reports whether the anchor is the inherit sentinel.
func (a Anchor) IsInherit() bool {
	return math.IsNaN(a.X) || math.IsNaN(a.Y)
}

// Or returns a unless it is the inherit sentinel, in which case it
// returns fallback.
func (a Anchor) Or(fallback Anchor) Anchor {
	if a.IsInherit() {
		return fallback
	}
	return a
}

// Vec returns the anchor as a plain vector.
func (a Anchor) Vec() Vec2 {
	return Vec2{a.X, a.Y}
}

// Unit returns the anchor remapped to [0, 1] per axis.
func (a Anchor) Unit() Vec2 {
	return Vec2{a.X + 0.5, a.Y + 0.5}
}

// Neg returns the point-mirrored anchor.
func (a Anchor) Neg() Anchor {
	return Anchor{-a.X, -a.Y}
}

// Mul returns the anchor's position offset from the center of a
// rectangle of the given size.
func (a Anchor) Mul(size Vec2) Vec2 {
	return Vec2{a.X * size.X, a.Y * size.Y}
}

// anchorDeadZone is the threshold separating the three per-axis
// buckets (negative, centered, positive) used by Name and by layout
// cross-axis lanes.
const anchorDeadZone = 0.16

// Trinary is a three-way bucket of an anchor component.
type Trinary int8

const (
	TrinaryNeg Trinary = iota - 1
	TrinaryMid
	TrinaryPos
)

// bucket classifies a single anchor component with the ±0.16 dead zone.
func bucket(v float64) Trinary {
	switch {
	case v < -anchorDeadZone:
		return TrinaryNeg
	case v > anchorDeadZone:
		return TrinaryPos
	default:
		return TrinaryMid
	}
}

// Name returns the closest canonical anchor's name, or "Inherit" for
// the sentinel. Components within ±0.16 of zero count as centered.
func (a Anchor) Name() string {
	if a.IsInherit() {
		return "Inherit"
	}
	switch x, y := bucket(a.X), bucket(a.Y); {
	case x == TrinaryNeg && y == TrinaryNeg:
		return "TopLeft"
	case x == TrinaryNeg && y == TrinaryPos:
		return "BottomLeft"
	case x == TrinaryNeg:
		return "CenterLeft"
	case x == TrinaryPos && y == TrinaryNeg:
		return "TopRight"
	case x == TrinaryPos && y == TrinaryPos:
		return "BottomRight"
	case x == TrinaryPos:
		return "CenterRight"
	case y == TrinaryNeg:
		return "TopCenter"
	case y == TrinaryPos:
		return "BottomCenter"
	default:
		return "Center"
	}
}
