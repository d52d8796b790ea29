package rectray

import "math"

// Vec2 is a 2D vector used for positions, offsets, sizes, and margins
// throughout the API. The coordinate system has +X pointing right and
// +Y pointing down, matching the usual screen convention.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Mul returns the component-wise product of v and o.
func (v Vec2) Mul(o Vec2) Vec2 {
	return Vec2{v.X * o.X, v.Y * o.Y}
}

// Div returns the component-wise quotient v / o.
func (v Vec2) Div(o Vec2) Vec2 {
	return Vec2{v.X / o.X, v.Y / o.Y}
}

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Neg returns -v.
func (v Vec2) Neg() Vec2 {
	return Vec2{-v.X, -v.Y}
}

// Max returns the component-wise maximum of v and o.
func (v Vec2) Max(o Vec2) Vec2 {
	return Vec2{math.Max(v.X, o.X), math.Max(v.Y, o.Y)}
}

// Min returns the component-wise minimum of v and o.
func (v Vec2) Min(o Vec2) Vec2 {
	return Vec2{math.Min(v.X, o.X), math.Min(v.Y, o.Y)}
}

// Clamp returns v clamped component-wise to [lo, hi].
func (v Vec2) Clamp(lo, hi Vec2) Vec2 {
	return v.Max(lo).Min(hi)
}

// Rotate returns v rotated by angle radians around the origin.
func (v Vec2) Rotate(angle float64) Vec2 {
	if angle == 0 {
		return v
	}
	sin, cos := math.Sincos(angle)
	return Vec2{v.X*cos - v.Y*sin, v.X*sin + v.Y*cos}
}

// IsNaN reports whether either component is NaN.
func (v Vec2) IsNaN() bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y)
}

// Rect is an axis-aligned rectangle stored as its min and max corners.
type Rect struct {
	Min, Max Vec2
}

// RectAround returns the rect of the given size centered on center.
func RectAround(center, size Vec2) Rect {
	half := size.Scale(0.5)
	return Rect{Min: center.Sub(half), Max: center.Add(half)}
}

// Size returns the rect's width and height.
func (r Rect) Size() Vec2 {
	return r.Max.Sub(r.Min)
}

// Center returns the rect's center point.
func (r Rect) Center() Vec2 {
	return r.Min.Add(r.Max).Scale(0.5)
}

// Contains reports whether p lies inside the rect. Points on the edge
// are considered inside.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X &&
		p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// ContainsRect reports whether o lies entirely inside r.
func (r Rect) ContainsRect(o Rect) bool {
	return r.Contains(o.Min) && r.Contains(o.Max)
}

// Intersects reports whether r and o overlap. Adjacent rects sharing
// only an edge are considered intersecting.
func (r Rect) Intersects(o Rect) bool {
	return r.Min.X <= o.Max.X && r.Max.X >= o.Min.X &&
		r.Min.Y <= o.Max.Y && r.Max.Y >= o.Min.Y
}

// LayoutControl causes special behavior when a node sits inside a
// Container.
type LayoutControl uint8

const (
	// ControlNone is the default: the item is placed by the layout.
	ControlNone LayoutControl = iota
	// ControlIgnoreLayout positions the item by its own anchor instead
	// of the container's layout.
	ControlIgnoreLayout
	// ControlLinebreak places the item, then breaks the line after it.
	ControlLinebreak
	// ControlLinebreakMarker breaks the line without taking up space
	// along the line. Its dimension determines the line height. The
	// item is discarded and its subtree is not updated this tick.
	ControlLinebreakMarker
	// ControlWhiteSpace acts as trimmable spacing: it contributes its
	// extent between placed items but is dropped at row edges. The
	// item is discarded and its subtree is not updated this tick.
	ControlWhiteSpace
)

// IsLinebreak reports whether the control ends the current line.
func (c LayoutControl) IsLinebreak() bool {
	return c == ControlLinebreak || c == ControlLinebreakMarker
}

// String returns the control's name.
func (c LayoutControl) String() string {
	switch c {
	case ControlNone:
		return "None"
	case ControlIgnoreLayout:
		return "IgnoreLayout"
	case ControlLinebreak:
		return "Linebreak"
	case ControlLinebreakMarker:
		return "LinebreakMarker"
	case ControlWhiteSpace:
		return "WhiteSpace"
	default:
		return "Unknown"
	}
}
