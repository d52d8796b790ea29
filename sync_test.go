package rectray

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestSyncToDimension(t *testing.T) {
	n := NewNode("sprite")
	img := ebiten.NewImage(64, 32)
	SyncImageDimension(n, img, SyncToDimension)
	assertVec(t, "Dimension", n.Dimension, Vec2{64, 32})
}

func TestSyncFromAspectFitsWide(t *testing.T) {
	n := NewNode("sprite")
	n.Dimension = Vec2{100, 100}
	img := ebiten.NewImage(64, 32)
	SyncImageDimension(n, img, SyncFromAspect)
	assertVec(t, "Dimension", n.Dimension, Vec2{100, 50})
}

func TestSyncFromAspectFitsTall(t *testing.T) {
	n := NewNode("sprite")
	n.Dimension = Vec2{100, 100}
	img := ebiten.NewImage(32, 64)
	SyncImageDimension(n, img, SyncFromAspect)
	assertVec(t, "Dimension", n.Dimension, Vec2{50, 100})
}

func TestSyncFromAspectAxes(t *testing.T) {
	n := NewNode("sprite")
	n.Dimension = Vec2{10, 99}
	img := ebiten.NewImage(64, 32)
	SyncImageDimension(n, img, SyncFromAspectX)
	assertVec(t, "X-locked", n.Dimension, Vec2{10, 5})

	n.Dimension = Vec2{99, 10}
	SyncImageDimension(n, img, SyncFromAspectY)
	assertVec(t, "Y-locked", n.Dimension, Vec2{20, 10})
}

func TestSyncNilAndNone(t *testing.T) {
	n := NewNode("sprite")
	n.Dimension = Vec2{7, 7}
	SyncImageDimension(n, nil, SyncToDimension)
	img := ebiten.NewImage(64, 32)
	SyncImageDimension(n, img, SyncNone)
	assertVec(t, "Dimension", n.Dimension, Vec2{7, 7})
}
