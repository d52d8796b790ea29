package rectray

import (
	"fmt"
	"math"
)

// Direction is the flow of a layout's axis.
type Direction uint8

const (
	// DirRight flows along +X, left to right.
	DirRight Direction = iota
	// DirLeft flows along -X, right to left.
	DirLeft
	// DirDown flows along +Y, top to bottom.
	DirDown
	// DirUp flows along -Y, bottom to top.
	DirUp
)

// horizontal reports whether the direction runs along the X axis.
func (d Direction) horizontal() bool {
	return d == DirRight || d == DirLeft
}

// reversed reports whether the direction runs against its axis.
func (d Direction) reversed() bool {
	return d == DirLeft || d == DirUp
}

// along extracts the primary-axis component of v for this direction's
// axis (unsigned; reversal is applied when mapping back to points).
func (d Direction) along(v Vec2) float64 {
	if d.horizontal() {
		return v.X
	}
	return v.Y
}

// across extracts the cross-axis component of v.
func (d Direction) across(v Vec2) float64 {
	if d.horizontal() {
		return v.Y
	}
	return v.X
}

// point assembles a vector from a primary-axis and a cross-axis value.
func (d Direction) point(along, across float64) Vec2 {
	if d.horizontal() {
		return Vec2{along, across}
	}
	return Vec2{across, along}
}

// crossBucket classifies an anchor's cross-axis component into the
// three alignment lanes.
func (d Direction) crossBucket(a Anchor) Trinary {
	if d.horizontal() {
		return bucket(a.Y)
	}
	return bucket(a.X)
}

// String returns the direction's name.
func (d Direction) String() string {
	switch d {
	case DirRight:
		return "Right"
	case DirLeft:
		return "Left"
	case DirDown:
		return "Down"
	default:
		return "Up"
	}
}

// LayoutKind tags the closed set of arrangement algorithms.
type LayoutKind uint8

const (
	// LayoutBounds is the default no-op layout: children keep their
	// own anchors and the container sizes to their maximum dimension.
	LayoutBounds LayoutKind = iota
	// LayoutStack places an ordered run along one axis, sized by
	// content.
	LayoutStack
	// LayoutSpan is a stack whose primary extent is pinned to the
	// parent's dimension.
	LayoutSpan
	// LayoutParagraph fills the primary axis greedily and wraps along
	// the secondary axis, like word-wrapped text.
	LayoutParagraph
	// LayoutCustom dispatches to a user-supplied Placer.
	LayoutCustom
)

// LayoutItem is the transient placement request for one child passed
// into a layout invocation.
type LayoutItem struct {
	// Node is the child this item stands for.
	Node *Node
	// Anchor the child wants on the parent side.
	Anchor Anchor
	// Dimension is the child's suggested size.
	Dimension Vec2
	// Control flags special handling.
	Control LayoutControl
}

// ItemAnchor pairs a placed child with its resolved normalized anchor.
type ItemAnchor struct {
	Node   *Node
	Anchor Anchor
}

// LayoutOutput is the result of one layout invocation. Anchors are
// normalized to [-0.5, 0.5] per axis against Dimension, so the walker
// treats every layout variant uniformly. Discarded items (linebreak
// markers, whitespace) carry no entry in ItemAnchors.
type LayoutOutput struct {
	ItemAnchors []ItemAnchor
	// Dimension is the resolved container size before padding.
	Dimension Vec2
	// MaxCount is the windowing total: items for bounds/stack/span
	// layouts, rows for paragraphs.
	MaxCount int
}

// LayoutInfo is the dimension info of a layout parent.
type LayoutInfo struct {
	Dimension Vec2
	Margin    Vec2
}

// Placer is the open escape hatch for arrangement algorithms beyond
// the built-in set.
type Placer interface {
	// Place arranges the ordered items and returns normalized anchors
	// plus the resolved container dimension. It must be a pure,
	// deterministic function of its inputs; rng is resolved against
	// the item total before slicing.
	Place(info LayoutInfo, items []LayoutItem, rng *LayoutRange) LayoutOutput
}

// Layout is the closed tagged variant selecting an arrangement
// algorithm. Construct values with BoundsLayout, HStack, VStack,
// Stack, HSpan, VSpan, Span, Paragraph, or NewParagraph.
type Layout struct {
	Kind LayoutKind

	// Primary is the main flow direction of stack, span, and
	// paragraph layouts.
	Primary Direction
	// Secondary is the line-advance direction of paragraph layouts
	// (and of stacks broken by explicit linebreaks).
	Secondary Direction
	// Stretch redistributes leftover primary-axis space between items
	// for span and paragraph layouts.
	Stretch bool

	// Fixed pins the bounds layout to the parent's dimension per axis.
	Fixed [2]bool
	// Min and Max clamp the bounds layout's resolved dimension.
	Min, Max Vec2

	// Custom is consulted only for LayoutCustom.
	Custom Placer
}

// BoundsLayout returns the default padding-only passthrough layout.
func BoundsLayout() Layout {
	return Layout{
		Kind: LayoutBounds,
		Max:  Vec2{math.MaxFloat64, math.MaxFloat64},
	}
}

// Stack returns a content-sized run along dir.
func Stack(dir Direction) Layout {
	return Layout{Kind: LayoutStack, Primary: dir, Secondary: defaultSecondary(dir)}
}

// HStack returns a left-to-right stack.
func HStack() Layout { return Stack(DirRight) }

// VStack returns a top-to-bottom stack.
func VStack() Layout { return Stack(DirDown) }

// Span returns a run along dir whose extent is pinned to the parent.
func Span(dir Direction, stretch bool) Layout {
	return Layout{Kind: LayoutSpan, Primary: dir, Secondary: defaultSecondary(dir), Stretch: stretch}
}

// HSpan returns a left-to-right span without stretching.
func HSpan() Layout { return Span(DirRight, false) }

// VSpan returns a top-to-bottom span without stretching.
func VSpan() Layout { return Span(DirDown, false) }

// Paragraph returns the default left-to-right, top-to-bottom wrapping
// layout.
func Paragraph() Layout {
	return Layout{Kind: LayoutParagraph, Primary: DirRight, Secondary: DirDown}
}

// NewParagraph returns a wrapping layout with explicit directions.
// Only orthogonal pairings with a horizontal primary are valid.
func NewParagraph(primary, secondary Direction, stretch bool) (Layout, error) {
	if !primary.horizontal() || secondary.horizontal() {
		return Layout{}, fmt.Errorf("rectray: invalid paragraph direction pair (%v, %v)", primary, secondary)
	}
	return Layout{Kind: LayoutParagraph, Primary: primary, Secondary: secondary, Stretch: stretch}, nil
}

// CustomLayout wraps a Placer into a Layout.
func CustomLayout(p Placer) Layout {
	return Layout{Kind: LayoutCustom, Custom: p}
}

// defaultSecondary picks the orthogonal, non-reversed line-advance
// direction.
func defaultSecondary(primary Direction) Direction {
	if primary.horizontal() {
		return DirDown
	}
	return DirRight
}

// place runs the layout. rng is resolved in place; the caller stores
// the returned MaxCount back into its container.
func (l Layout) place(info LayoutInfo, items []LayoutItem, rng *LayoutRange) LayoutOutput {
	switch l.Kind {
	case LayoutStack:
		return l.placeFlow(info, items, rng, flowStack)
	case LayoutSpan:
		return l.placeFlow(info, items, rng, flowSpan)
	case LayoutParagraph:
		return l.placeFlow(info, items, rng, flowParagraph)
	case LayoutCustom:
		if l.Custom != nil {
			return l.Custom.Place(info, items, rng)
		}
		fallthrough
	default:
		return l.placeBounds(info, items, rng)
	}
}

// placeBounds keeps every item's own anchor and resolves the container
// dimension to the items' maximum, clamped to [Min, Max] per axis, or
// pinned to the parent on axes marked fixed.
func (l Layout) placeBounds(info LayoutInfo, items []LayoutItem, rng *LayoutRange) LayoutOutput {
	rng.Resolve(len(items))
	lo, hi := rng.ToRange(len(items))

	var maxDim Vec2
	anchors := make([]ItemAnchor, 0, hi-lo)
	for _, it := range items[lo:hi] {
		maxDim = maxDim.Max(it.Dimension)
		anchors = append(anchors, ItemAnchor{Node: it.Node, Anchor: it.Anchor})
	}

	// A zero-value Layout clamps against nothing.
	hiBound := l.Max
	if hiBound == (Vec2{}) {
		hiBound = Vec2{math.MaxFloat64, math.MaxFloat64}
	}
	dim := maxDim.Clamp(l.Min, hiBound)
	if l.Fixed[0] {
		dim.X = info.Dimension.X
	}
	if l.Fixed[1] {
		dim.Y = info.Dimension.Y
	}
	return LayoutOutput{ItemAnchors: anchors, Dimension: dim, MaxCount: len(items)}
}
