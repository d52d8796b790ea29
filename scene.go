package rectray

// workItem is one queued traversal step.
type workItem struct {
	node   *Node
	parent ParentInfo
}

// Scene owns a node tree and the per-tick scratch queues of the
// hierarchy walker. It holds no other graph data: nodes are the stable
// handles, and sibling order comes from the tree (or the ChildrenOf
// hook).
//
// A Scene is single-threaded: one Update runs to completion as a pure
// pass over the current tree.
type Scene struct {
	root *Node

	// ChildrenOf optionally supplies sibling order from an external
	// store. When nil, Node.Children is used. Callers must supply
	// children in true visual order; the walker never sorts.
	ChildrenOf func(*Node) []*Node

	// Scratch queues, double-buffered per level and reused across
	// ticks.
	queueA []workItem
	queueB []workItem

	debug bool
	stats walkStats
}

// NewScene creates a scene with a pre-created root node. The root
// itself is not laid out; frames anywhere below it seed the walk.
func NewScene() *Scene {
	return &Scene{root: NewNode("root")}
}

// Root returns the scene's root node.
func (s *Scene) Root() *Node {
	return s.root
}

// SetDebugMode enables or disables debug mode. When enabled,
// disposed-node access panics, tree depth and child count warnings are
// printed, and per-tick walker stats are logged to stderr.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Scene debug flag so that
// node operations (which lack a Scene pointer) can check it cheaply.
// Only valid with a single Scene; multiple Scenes with differing debug
// modes will reflect whichever called SetDebugMode last.
var globalDebug bool

// Update runs one layout tick: a breadth-first, level-synchronous walk
// seeded from every frame below the root. dt is the update time step
// in seconds, consumed by exponential-decay smoothing.
//
// The traversal assumes a finite tree; Update always runs to
// completion.
func (s *Scene) Update(dt float64) {
	if s.debug {
		s.stats = walkStats{}
		defer s.debugLog()
	}

	s.queueA = s.queueA[:0]
	s.queueB = s.queueB[:0]
	s.seedFrames(s.root)

	// Drain the current level into the next using double buffering:
	// a node's rect and affine are always resolved before any of its
	// children are processed.
	for len(s.queueA) > 0 {
		s.queueA, s.queueB = s.queueB[:0], s.queueA
		for i := range s.queueB {
			s.propagate(s.queueB[i].node, s.queueB[i].parent, dt)
		}
		if s.debug && len(s.queueB) > s.stats.peakQueue {
			s.stats.peakQueue = len(s.queueB)
		}
	}
}

// childrenOf resolves the sibling order collaborator.
func (s *Scene) childrenOf(n *Node) []*Node {
	if s.ChildrenOf != nil {
		return s.ChildrenOf(n)
	}
	return n.children
}

// seedFrames scans the tree for frame nodes and enqueues each frame's
// direct children with a fresh ParentInfo rooted in that frame. An
// inactive node ends the scan: frames below it never seed, so the
// whole subtree sits the tick out just like under propagate.
func (s *Scene) seedFrames(n *Node) {
	if !n.Active {
		return
	}
	if f := n.Frame; f != nil {
		info := ParentInfo{
			Dimension: f.Dimension,
			Center:    f.At,
			Anchor:    AnchorInherit,
			Affine:    AffineIdentity,
			Z:         f.Z,
			Frame:     n,
			FrameRect: f.Rect(),
		}
		for _, child := range s.childrenOf(n) {
			s.queueA = append(s.queueA, workItem{node: child, parent: info})
		}
	}
	for _, child := range s.childrenOf(n) {
		s.seedFrames(child)
	}
}

// propagate resolves one node against its parent info and enqueues its
// children for the next level.
func (s *Scene) propagate(n *Node, parent ParentInfo, dt float64) {
	// An inactive node is opted out, not failed; since it is never
	// re-enqueued its whole subtree sits this tick out. Frame nodes
	// are walked in their own space only.
	if !n.Active || n.Frame != nil {
		return
	}
	if s.debug {
		s.stats.nodes++
	}

	if n.Container != nil {
		s.propagateContainer(n, parent, dt)
		return
	}

	rect := n.OutOfFrame.resolve(parent, n.Transform, n.Dimension)

	if children := s.childrenOf(n); len(children) > 0 {
		center := n.Transform.center()
		info := ParentInfo{
			Dimension: n.Dimension,
			Center:    rect.Center,
			Anchor:    AnchorInherit,
			Affine:    parent.Affine.Mul(rect.AffineAt(center)),
			Z:         rect.Z,
			Frame:     parent.Frame,
			FrameRect: parent.FrameRect,
		}
		for _, child := range children {
			s.queueA = append(s.queueA, workItem{node: child, parent: info})
		}
	}

	s.writeOutputs(n, rect, parent, dt)
}

// propagateContainer lays out a container node's children and enqueues
// them with their resolved anchors.
func (s *Scene) propagateContainer(n *Node, parent ParentInfo, dt float64) {
	c := n.Container

	// Partition the direct children: ignore-layout children position
	// themselves by their own anchor, the rest become ordered layout
	// items in child-enumeration order.
	var ignored []*Node
	var items []LayoutItem
	for _, child := range s.childrenOf(n) {
		if !child.Active || child.Frame != nil {
			continue
		}
		if child.Control == ControlIgnoreLayout {
			ignored = append(ignored, child)
			continue
		}
		items = append(items, LayoutItem{
			Node:      child,
			Anchor:    child.Transform.parentAnchor(),
			Dimension: child.Dimension,
			Control:   child.Control,
		})
	}

	out := c.Place(LayoutInfo{Dimension: n.Dimension, Margin: c.Margin}, items)
	c.Maximum = out.MaxCount

	// Grow by the padding, then rescale the normalized anchors so the
	// same fractions land on the unpadded content box.
	size := out.Dimension.Add(c.Padding.Scale(2))
	fac := out.Dimension.Div(size)
	if !fac.IsNaN() {
		for i := range out.ItemAnchors {
			a := &out.ItemAnchors[i].Anchor
			a.X *= fac.X
			a.Y *= fac.Y
		}
	}

	rect := Construct(parent, n.Transform, size)
	center := n.Transform.center()
	info := ParentInfo{
		Dimension: size,
		Center:    rect.Center,
		Anchor:    AnchorInherit,
		Affine:    parent.Affine.Mul(rect.AffineAt(center)),
		Z:         rect.Z,
		Frame:     parent.Frame,
		FrameRect: parent.FrameRect,
	}
	for _, ia := range out.ItemAnchors {
		s.queueA = append(s.queueA, workItem{node: ia.Node, parent: info.WithAnchor(ia.Anchor)})
	}
	for _, child := range ignored {
		s.queueA = append(s.queueA, workItem{node: child, parent: info})
	}

	s.writeOutputs(n, rect, parent, dt)
}

// writeOutputs stores the node's frame-space rect and its final
// placement, smoothed when configured.
func (s *Scene) writeOutputs(n *Node, rect RotatedRect, parent ParentInfo, dt float64) {
	n.Rect = rect.UnderAffine(parent.Affine)
	target := rect.PlacementAt(n.Transform.center())
	if n.Interpolate.Kind == InterpolateExpDecay && !n.interpolateChanged {
		n.Placement = n.Placement.decayToward(target, n.Interpolate.Decay, dt)
	} else {
		// A newly changed smoothing setting snaps instead of decaying
		// from a stale placement.
		n.Placement = target
	}
	n.interpolateChanged = false
}
