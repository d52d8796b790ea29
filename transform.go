package rectray

import "math"

// Transform2D is the declarative descriptor positioning a node against
// its parent.
//
// With a zero Offset, the point Anchor on this node and the point
// ParentAnchor on the parent overlap.
type Transform2D struct {
	// Anchor matched on the child side.
	Anchor Anchor
	// ParentAnchor matched on the parent side. AnchorInherit (the
	// default of Transform2DIdentity) falls back to Anchor.
	ParentAnchor Anchor
	// Center is the pivot of Rotation and Scale and the position the
	// final Placement reports. AnchorInherit falls back to Anchor.
	Center Anchor
	// Offset in pixels from the parent's anchor.
	Offset Vec2
	// Z depth added to the parent's accumulated depth.
	Z float64
	// Rotation around Center, in radians.
	Rotation float64
	// Scale around Center. Visual only: it never feeds layout math.
	Scale Vec2
}

// Transform2DIdentity is the canonical default descriptor. Z is a
// small positive value so descendants resolve above their parents.
var Transform2DIdentity = Transform2D{
	Anchor:       AnchorCenter,
	ParentAnchor: AnchorInherit,
	Center:       AnchorCenter,
	Z:            0.01,
	Scale:        Vec2{1, 1},
}

// center resolves the pivot anchor.
func (t Transform2D) center() Anchor {
	return t.Center.Or(t.Anchor)
}

// parentAnchor resolves the parent-side anchor.
func (t Transform2D) parentAnchor() Anchor {
	return t.ParentAnchor.Or(t.Anchor)
}

// Placement is the final per-node output geometry, written directly or
// smoothed toward every tick. Position is expressed in the parent's
// space with the node's center anchor as pivot; Node.Rect carries the
// frame-space geometry.
type Placement struct {
	Position Vec2
	Z        float64
	Rotation float64
	Scale    Vec2
}

// InterpolateKind selects how a node's Placement approaches its
// computed target.
type InterpolateKind uint8

const (
	// InterpolateNone writes the target directly.
	InterpolateNone InterpolateKind = iota
	// InterpolateExpDecay eases the previous placement toward the
	// target with a framerate-independent exponential decay.
	InterpolateExpDecay
)

// Interpolate is the smoothing knob applied to a node's final geometry
// write. Rotation decays as a signed scalar angle rather than through
// quaternion interpolation, avoiding the 2D sign ambiguity.
type Interpolate struct {
	Kind InterpolateKind
	// Decay is the approach rate; higher snaps faster. Typical values
	// sit between 1 and 25.
	Decay float64
}

// decay moves a toward b with the given rate over dt seconds.
func decay(a, b, rate, dt float64) float64 {
	return b + (a-b)*math.Exp(-rate*dt)
}

// decayToward eases every component of p toward target.
func (p Placement) decayToward(target Placement, rate, dt float64) Placement {
	return Placement{
		Position: Vec2{
			X: decay(p.Position.X, target.Position.X, rate, dt),
			Y: decay(p.Position.Y, target.Position.Y, rate, dt),
		},
		Z:        decay(p.Z, target.Z, rate, dt),
		Rotation: decay(p.Rotation, target.Rotation, rate, dt),
		Scale: Vec2{
			X: decay(p.Scale.X, target.Scale.X, rate, dt),
			Y: decay(p.Scale.Y, target.Scale.Y, rate, dt),
		},
	}
}
