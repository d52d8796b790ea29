package rectray

// RotatedRect is the fully resolved rectangle of a node in some
// coordinate space: center, size, rotation, z depth, and visual scale.
// It is recomputed every tick and never treated as authoritative state.
//
// Scale is independent from Dimension: it affects the rendered extent
// only, never the layout math.
type RotatedRect struct {
	// Center of the rect.
	Center Vec2
	// Dimension is the size of the rect.
	Dimension Vec2
	// Rotation of the rect, in radians.
	Rotation float64
	// Z depth, accumulated down the hierarchy.
	Z float64
	// Scale of the rect.
	Scale Vec2
	// Frame is the frame node this rect is measured against.
	Frame *Node
}

// ParentInfo is the transient per-step context handed from a parent to
// its children during one traversal. It is created and discarded within
// a single walk.
type ParentInfo struct {
	// Dimension of the parent rect.
	Dimension Vec2
	// Center of the parent, adjusted for its center anchor.
	Center Vec2
	// Anchor forced by a layout; AnchorInherit when the child's own
	// descriptor decides.
	Anchor Anchor
	// Affine composed from the owning frame's origin to the parent's
	// coordinate space.
	Affine Affine
	// Z accumulated from the frame down to the parent.
	Z float64
	// Frame is the owning frame node.
	Frame *Node
	// FrameRect is the owning frame's bounding rect.
	FrameRect Rect
}

// WithAnchor returns a copy of the info with a forced anchor.
func (p ParentInfo) WithAnchor(a Anchor) ParentInfo {
	p.Anchor = a
	return p
}

// Rect returns the unrotated bounds, center ± dimension/2.
func (r RotatedRect) Rect() Rect {
	return RectAround(r.Center, r.Dimension)
}

// AnchorPoint returns the position of an anchor on the rect.
func (r RotatedRect) AnchorPoint(a Anchor) Vec2 {
	return r.Center.Add(a.Mul(r.Dimension).Rotate(r.Rotation))
}

// LocalSpace converts a point into the rect's local space, centered on
// the rect's center.
func (r RotatedRect) LocalSpace(p Vec2) Vec2 {
	return p.Sub(r.Center).Rotate(-r.Rotation)
}

// AABB returns the axis-aligned box spanned by the rect's top-left
// anchor and its point-mirror through the center. This is exact only
// at zero rotation; rotated rects get an approximate box.
func (r RotatedRect) AABB() Rect {
	p := r.AnchorPoint(AnchorTopLeft)
	q := r.Center.Scale(2).Sub(p)
	return Rect{Min: p.Min(q), Max: p.Max(q)}
}

// IsInside reports whether the rect lies inside bounds, judged by its
// top-left anchor and that anchor's point-mirror through the center.
func (r RotatedRect) IsInside(bounds Rect) bool {
	p := r.AnchorPoint(AnchorTopLeft)
	q := r.Center.Scale(2).Sub(p)
	return bounds.Contains(p) && bounds.Contains(q)
}

// nudgeDelta returns the minimal per-axis translation that brings the
// rect's AABB fully inside bounds, or zero on an axis where the AABB
// does not fit or is already inside.
func (r RotatedRect) nudgeDelta(bounds Rect) Vec2 {
	aabb := r.AABB()
	size := aabb.Size()
	avail := bounds.Size()
	var d Vec2
	if size.X <= avail.X {
		if aabb.Min.X < bounds.Min.X {
			d.X = bounds.Min.X - aabb.Min.X
		} else if aabb.Max.X > bounds.Max.X {
			d.X = bounds.Max.X - aabb.Max.X
		}
	}
	if size.Y <= avail.Y {
		if aabb.Min.Y < bounds.Min.Y {
			d.Y = bounds.Min.Y - aabb.Min.Y
		} else if aabb.Max.Y > bounds.Max.Y {
			d.Y = bounds.Max.Y - aabb.Max.Y
		}
	}
	return d
}

// NudgeInside translates the rect by the minimal per-axis amount that
// brings its AABB fully inside bounds. An axis on which the AABB is
// larger than bounds is left untouched.
func (r *RotatedRect) NudgeInside(bounds Rect) {
	r.Center = r.Center.Add(r.nudgeDelta(bounds))
}

// Construct resolves the rect of a child in its parent's space: the
// child's anchor edge is aligned with the parent's anchor edge, the
// explicit pixel offset is applied, and rotation/scale are re-centered
// on the (possibly different) center anchor.
func Construct(parent ParentInfo, t Transform2D, dimension Vec2) RotatedRect {
	return construct2(parent, t, t.Anchor, t.ParentAnchor.Or(t.Anchor), dimension)
}

// construct2 is the generalized form taking explicit anchor overrides,
// used for anchor-swap trials. A layout-forced parent anchor still wins
// over the override.
func construct2(parent ParentInfo, t Transform2D, anchor, parentAnchor Anchor, dimension Vec2) RotatedRect {
	pa := parent.Anchor.Or(parentAnchor)
	root := pa.Mul(parent.Dimension)
	centerAnchor := t.Center.Or(anchor)
	center := root.
		Add(t.Offset).
		Add(centerAnchor.Vec().Sub(anchor.Vec()).Mul(dimension))
	return RotatedRect{
		Center:    center,
		Dimension: dimension,
		Rotation:  t.Rotation,
		Z:         parent.Z + t.Z,
		Scale:     t.Scale,
		Frame:     parent.Frame,
	}
}

// UnderAffine returns the rect mapped by the given affine: the center
// is transformed, rotations add, and scales multiply. Dimension is
// left untouched because affine scale is visual only.
func (r RotatedRect) UnderAffine(a Affine) RotatedRect {
	r.Center = a.Apply(r.Center)
	r.Rotation += a.Rotation
	r.Scale = r.Scale.Mul(a.Scale)
	return r
}

// AffineAt returns the affine that maps this rect's local space into
// the space the rect itself lives in, with the local origin placed at
// the given center anchor.
func (r RotatedRect) AffineAt(center Anchor) Affine {
	return Affine{
		Translation: r.AnchorPoint(center.Neg()),
		Rotation:    r.Rotation,
		Scale:       r.Scale,
	}
}

// PlacementAt returns the final transform output for a node whose
// rotation and scale pivot on the given center anchor.
func (r RotatedRect) PlacementAt(center Anchor) Placement {
	return Placement{
		Position: r.AnchorPoint(center.Neg()),
		Z:        r.Z,
		Rotation: r.Rotation,
		Scale:    r.Scale,
	}
}
