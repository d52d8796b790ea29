package rectray

// OutOfFrameKind selects the correction strategy for a leaf whose
// computed rect falls outside its frame's bounds.
type OutOfFrameKind uint8

const (
	// OutOfFrameNone uses the constructed rect unmodified.
	OutOfFrameNone OutOfFrameKind = iota
	// OutOfFrameNudge translates the rect by the minimal per-axis
	// amount that brings it inside the frame, when it fits at all.
	// Exact only when the affine chain between node and frame carries
	// zero net rotation.
	OutOfFrameNudge
	// OutOfFrameAnchorSwap tries alternate anchor pairs in order and
	// keeps the first whose frame-space rect lies inside the frame.
	OutOfFrameAnchorSwap
)

// maxAnchorChoices caps the candidate list of an anchor swap.
const maxAnchorChoices = 4

// AnchorChoice is one (anchor, parent anchor) candidate pair for an
// anchor swap.
type AnchorChoice struct {
	Anchor       Anchor
	ParentAnchor Anchor
}

// OutOfFrame is the per-leaf correction policy, evaluated once per
// tick against the freshly computed rect with no memory across ticks.
// A swap is a discrete jump; smoothing, if configured, applies only to
// the final geometry write.
type OutOfFrame struct {
	Kind OutOfFrameKind
	// Choices are tried in order after the node's own pair; entries
	// past the fourth are ignored.
	Choices []AnchorChoice
}

// Nudge returns the nudge policy.
func Nudge() OutOfFrame {
	return OutOfFrame{Kind: OutOfFrameNudge}
}

// AnchorSwap returns the anchor-swap policy with up to four candidate
// pairs.
func AnchorSwap(choices ...AnchorChoice) OutOfFrame {
	return OutOfFrame{Kind: OutOfFrameAnchorSwap, Choices: choices}
}

// AnchorDirection names the side of the parent a swapped node should
// sit on, in the manner of a tooltip flipping around its target.
type AnchorDirection uint8

const (
	DirectionAbove AnchorDirection = iota
	DirectionBelow
	DirectionLeft
	DirectionRight
)

// Choice returns the (anchor, parent anchor) pair placing the node on
// the named side: the node's facing edge is matched to the parent's
// edge on that side.
func (d AnchorDirection) Choice() AnchorChoice {
	switch d {
	case DirectionAbove:
		return AnchorChoice{Anchor: AnchorBottomCenter, ParentAnchor: AnchorTopCenter}
	case DirectionBelow:
		return AnchorChoice{Anchor: AnchorTopCenter, ParentAnchor: AnchorBottomCenter}
	case DirectionLeft:
		return AnchorChoice{Anchor: AnchorCenterRight, ParentAnchor: AnchorCenterLeft}
	default:
		return AnchorChoice{Anchor: AnchorCenterLeft, ParentAnchor: AnchorCenterRight}
	}
}

// AnchorSwapAround returns an anchor-swap policy trying the given
// sides in order.
func AnchorSwapAround(dirs ...AnchorDirection) OutOfFrame {
	choices := make([]AnchorChoice, 0, len(dirs))
	for _, d := range dirs {
		choices = append(choices, d.Choice())
	}
	return AnchorSwap(choices...)
}

// resolve constructs the corrected rect for a leaf under this policy.
func (o OutOfFrame) resolve(parent ParentInfo, t Transform2D, dimension Vec2) RotatedRect {
	switch o.Kind {
	case OutOfFrameNudge:
		rect := Construct(parent, t, dimension)
		frameSpace := rect.UnderAffine(parent.Affine)
		// Overflow is measured in frame space but corrected on the
		// local center: a documented approximation, exact at zero net
		// rotation.
		rect.Center = rect.Center.Add(frameSpace.nudgeDelta(parent.FrameRect))
		return rect
	case OutOfFrameAnchorSwap:
		def := Construct(parent, t, dimension)
		if def.UnderAffine(parent.Affine).IsInside(parent.FrameRect) {
			return def
		}
		choices := o.Choices
		if len(choices) > maxAnchorChoices {
			choices = choices[:maxAnchorChoices]
		}
		for _, c := range choices {
			cand := construct2(parent, t, c.Anchor, c.ParentAnchor, dimension)
			if cand.UnderAffine(parent.Affine).IsInside(parent.FrameRect) {
				return cand
			}
		}
		return def
	default:
		return Construct(parent, t, dimension)
	}
}
