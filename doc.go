// Package rectray is a minimal anchor-based 2D layout engine for
// real-time tick loops.
//
// Rectray computes final positions, rotations, and scales for nodes
// arranged in a parent-child hierarchy. Placement is declarative:
// every node carries a [Transform2D] descriptor matching one of its
// anchors to an anchor on its parent, and containers arrange their
// children through stack, span, or paragraph layouts. One call to
// [Scene.Update] per tick resolves a deterministic geometry for the
// whole tree.
//
// # Quick start
//
//	scene := rectray.NewScene()
//
//	frame := rectray.NewFrameNode("ui", rectray.Vec2{X: 640, Y: 480})
//	scene.Root().AddChild(frame)
//
//	bar := rectray.NewContainerNode("bar", rectray.HStack())
//	bar.Container.Margin = rectray.Vec2{X: 4, Y: 4}
//	frame.AddChild(bar)
//
//	for i := 0; i < 3; i++ {
//		item := rectray.NewNode("item")
//		item.Dimension = rectray.Vec2{X: 32, Y: 32}
//		bar.AddChild(item)
//	}
//
//	scene.Update(1.0 / 60)
//	// bar.Placement and each item's Rect now hold the resolved geometry.
//
// # Frames and coordinates
//
// A [Frame] opens a rectangular coordinate space around a node's
// origin; every descendant is measured against it. The convention is
// +X right, +Y down, anchors in [-0.5, 0.5] per axis with {0, 0} at
// the center.
//
// # Inputs and outputs
//
// Rectray owns no rendering, input, or storage. Each tick it consumes
// per-node Dimension, Transform2D, and the optional [Container],
// [OutOfFrame], and [Interpolate] settings, and produces a frame-space
// [RotatedRect] plus a final [Placement] per node. Dimensions come
// from the host (measure sprite images with [SyncImageDimension]);
// what the host draws with the outputs is its own business; the
// runnable demos under examples/ render them with [Ebitengine].
//
// # Containers
//
// A [Container] arranges its direct children with one of the closed
// set of layouts ([BoundsLayout], [HStack], [VStack], [Span],
// [Paragraph], ...), optionally windowed to a visible subset by a
// [LayoutRange]. Nodes flagged [ControlIgnoreLayout] opt out and
// position themselves; [ControlLinebreak], [ControlLinebreakMarker],
// and [ControlWhiteSpace] control line flow.
//
// Leaves overflowing their frame can self-correct with an [OutOfFrame]
// policy: a minimal nudge back inside, or tooltip-style anchor
// swapping via [AnchorSwapAround].
//
// [Ebitengine]: https://ebitengine.org
package rectray
