package rectray

import "github.com/hajimehoshi/ebiten/v2"

// SyncMode controls how SyncImageDimension transfers size between an
// image and a node's Dimension.
type SyncMode uint8

const (
	// SyncNone transfers nothing.
	SyncNone SyncMode = iota
	// SyncToDimension sets the node's Dimension from the image size.
	SyncToDimension
	// SyncFromAspect shrinks the node's Dimension to fit its current
	// value while keeping the image's aspect ratio.
	SyncFromAspect
	// SyncFromAspectX keeps Dimension.X and derives Y from the
	// image's aspect ratio.
	SyncFromAspectX
	// SyncFromAspectY keeps Dimension.Y and derives X from the
	// image's aspect ratio.
	SyncFromAspectY
)

// SyncImageDimension synchronizes a node's suggested Dimension with an
// ebiten image, so sprites measured by the renderer can take their
// natural size in the layout. Call it whenever the image changes; the
// walker itself never measures images.
func SyncImageDimension(n *Node, img *ebiten.Image, mode SyncMode) {
	if img == nil || mode == SyncNone {
		return
	}
	b := img.Bounds()
	size := Vec2{float64(b.Dx()), float64(b.Dy())}
	if size.X <= 0 || size.Y <= 0 {
		size = Vec2{1, 1}
	}
	switch mode {
	case SyncToDimension:
		n.Dimension = size
	case SyncFromAspect:
		fit := n.Dimension
		if fit.X*size.Y <= fit.Y*size.X {
			n.Dimension = Vec2{fit.X, fit.X * size.Y / size.X}
		} else {
			n.Dimension = Vec2{fit.Y * size.X / size.Y, fit.Y}
		}
	case SyncFromAspectX:
		n.Dimension = Vec2{n.Dimension.X, n.Dimension.X * size.Y / size.X}
	case SyncFromAspectY:
		n.Dimension = Vec2{n.Dimension.Y * size.X / size.Y, n.Dimension.Y}
	}
}
