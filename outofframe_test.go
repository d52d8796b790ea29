package rectray

import "testing"

// tooltipParent models a small target near the top edge of a 100x100
// frame: the parent space origin sits 40 units above the frame center.
func tooltipParent() ParentInfo {
	return ParentInfo{
		Dimension: Vec2{10, 10},
		Anchor:    AnchorInherit,
		Affine:    Affine{Translation: Vec2{0, -40}, Scale: Vec2{1, 1}},
		FrameRect: RectAround(Vec2{0, 0}, Vec2{100, 100}),
	}
}

func TestResolveNonePassesThrough(t *testing.T) {
	var o OutOfFrame
	tr := Transform2DIdentity
	tr.Offset = Vec2{0, -60}
	r := o.resolve(parentInfo100(), tr, Vec2{20, 10})
	assertVec(t, "Center", r.Center, Vec2{0, -60})
}

// --- Nudge ---

func TestNudgePullsBackInside(t *testing.T) {
	tr := Transform2DIdentity
	tr.Offset = Vec2{0, -60}
	r := Nudge().resolve(parentInfo100(), tr, Vec2{20, 10})
	// Flush with the top edge: half the height below it.
	assertVec(t, "Center", r.Center, Vec2{0, -45})
}

func TestNudgeNoOpWhenInside(t *testing.T) {
	tr := Transform2DIdentity
	tr.Offset = Vec2{10, 10}
	r := Nudge().resolve(parentInfo100(), tr, Vec2{20, 10})
	assertVec(t, "Center", r.Center, Vec2{10, 10})
}

func TestNudgeMeasuresInFrameSpace(t *testing.T) {
	// The parent space is shifted; overflow happens in frame space
	// even though the local rect looks centered.
	tr := Transform2DIdentity
	tr.Offset = Vec2{0, -8}
	r := Nudge().resolve(tooltipParent(), tr, Vec2{20, 10})
	// Frame-space center would be (0, -48), top at -53; nudged to -45.
	assertVec(t, "Center", r.Center, Vec2{0, -5})
}

// --- Anchor swap ---

func tooltipTransform(c AnchorChoice) Transform2D {
	tr := Transform2DIdentity
	tr.Anchor = c.Anchor
	tr.ParentAnchor = c.ParentAnchor
	return tr
}

func TestAnchorSwapKeepsFittingDefault(t *testing.T) {
	tr := tooltipTransform(DirectionBelow.Choice())
	o := AnchorSwapAround(DirectionAbove)
	r := o.resolve(tooltipParent(), tr, Vec2{20, 10})
	// Below fits, so the alternative above is never taken.
	assertVec(t, "Center", r.Center, Vec2{0, 10})
}

func TestAnchorSwapFlipsToFit(t *testing.T) {
	// "Above" overflows the top edge; the policy flips below.
	tr := tooltipTransform(DirectionAbove.Choice())
	o := AnchorSwapAround(DirectionBelow)
	r := o.resolve(tooltipParent(), tr, Vec2{20, 10})
	assertVec(t, "Center", r.Center, Vec2{0, 10})
}

func TestAnchorSwapTriesChoicesInOrder(t *testing.T) {
	tr := tooltipTransform(DirectionAbove.Choice())
	// Left fits too, but it is listed first.
	o := AnchorSwapAround(DirectionLeft, DirectionBelow)
	r := o.resolve(tooltipParent(), tr, Vec2{20, 10})
	assertVec(t, "Center", r.Center, Vec2{-15, 0})
}

func TestAnchorSwapFallsBackToDefault(t *testing.T) {
	// Nothing fits in a tiny frame; the unmodified default wins.
	parent := tooltipParent()
	parent.FrameRect = RectAround(Vec2{0, 0}, Vec2{4, 4})
	tr := tooltipTransform(DirectionAbove.Choice())
	o := AnchorSwapAround(DirectionBelow, DirectionLeft, DirectionRight)
	r := o.resolve(parent, tr, Vec2{20, 10})
	assertVec(t, "Center", r.Center, Vec2{0, -10})
}

func TestAnchorSwapIgnoresChoicesPastFour(t *testing.T) {
	tr := tooltipTransform(DirectionAbove.Choice())
	bogus := AnchorChoice{Anchor: AnchorBottomCenter, ParentAnchor: AnchorTopCenter}
	// Only the fifth choice fits; it sits past the cap and is ignored.
	o := AnchorSwap(bogus, bogus, bogus, bogus, DirectionBelow.Choice())
	r := o.resolve(tooltipParent(), tr, Vec2{20, 10})
	assertVec(t, "Center", r.Center, Vec2{0, -10})
}

func TestAnchorSwapUniqueFitAnyOrder(t *testing.T) {
	// In a narrow frame only the below slot fits; it must win no
	// matter where it sits in the candidate list.
	parent := tooltipParent()
	parent.FrameRect = RectAround(Vec2{0, 0}, Vec2{30, 100})
	tr := tooltipTransform(DirectionAbove.Choice())
	orders := [][]AnchorDirection{
		{DirectionBelow, DirectionLeft, DirectionRight},
		{DirectionLeft, DirectionBelow, DirectionRight},
		{DirectionLeft, DirectionRight, DirectionBelow},
	}
	for i, dirs := range orders {
		r := AnchorSwapAround(dirs...).resolve(parent, tr, Vec2{20, 10})
		if r.Center != (Vec2{0, 10}) {
			t.Errorf("order %d: Center = %v, want the below slot (0, 10)", i, r.Center)
		}
	}
}

func TestAnchorDirectionChoices(t *testing.T) {
	above := DirectionAbove.Choice()
	if above.Anchor != AnchorBottomCenter || above.ParentAnchor != AnchorTopCenter {
		t.Errorf("Above = %+v", above)
	}
	right := DirectionRight.Choice()
	if right.Anchor != AnchorCenterLeft || right.ParentAnchor != AnchorCenterRight {
		t.Errorf("Right = %+v", right)
	}
}
