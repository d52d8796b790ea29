package rectray

// Affine is a 2D similarity-style transform: a translation, a rotation,
// and a per-axis scale. Containers introduce intermediate coordinate
// origins that are not anchored at the root frame, so the walker chains
// one Affine per nesting level to map local rects into frame space.
//
// Unlike a full 2x3 matrix this closed form keeps the rotation as a
// signed scalar, which the pipeline needs for frame-space rects and for
// exponential-decay smoothing.
type Affine struct {
	Translation Vec2
	Rotation    float64
	Scale       Vec2
}

// AffineIdentity is the identity transform.
var AffineIdentity = Affine{Scale: Vec2{1, 1}}

// Mul composes a with o so that applying the result equals applying o
// first, then a: the other's translation is scaled and rotated by a,
// rotations add, scales multiply.
func (a Affine) Mul(o Affine) Affine {
	return Affine{
		Translation: a.Translation.Add(o.Translation.Mul(a.Scale).Rotate(a.Rotation)),
		Rotation:    a.Rotation + o.Rotation,
		Scale:       a.Scale.Mul(o.Scale),
	}
}

// Apply transforms the point p.
func (a Affine) Apply(p Vec2) Vec2 {
	return a.Translation.Add(p.Mul(a.Scale).Rotate(a.Rotation))
}
