package roomkit

import "github.com/hajimehoshi/ebiten/v2"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// ColorFromHex converts a 0xRRGGBB value into an opaque Color.
func ColorFromHex(rgb uint32) Color {
	return Color{
		R: float64((rgb>>16)&0xFF) / 255,
		G: float64((rgb>>8)&0xFF) / 255,
		B: float64(rgb&0xFF) / 255,
		A: 1,
	}
}

// Vec2 is a 2D vector used for positions and offsets.
type Vec2 struct {
	X, Y float64
}

// Vec3 is a room coordinate. Z is height above the floor and is projected
// onto the screen by subtracting it from Y.
type Vec3 struct {
	X, Y, Z float64
}

// Screen projects a room coordinate onto screen space.
func (v Vec3) Screen() Vec2 {
	return Vec2{X: v.X, Y: v.Y - v.Z}
}

// BlendMode selects a compositing operation. Each maps to a specific ebiten.Blend value.
type BlendMode uint8

const (
	BlendNormal BlendMode = iota // source-over (standard alpha blending)
	BlendAdd                     // additive / lighter
)

// EbitenBlend returns the ebiten.Blend value corresponding to this BlendMode.
func (b BlendMode) EbitenBlend() ebiten.Blend {
	if b == BlendAdd {
		return ebiten.BlendLighter
	}
	return ebiten.BlendSourceOver
}

// NodeType distinguishes rendering behavior for a Node.
type NodeType uint8

const (
	NodeTypeContainer NodeType = iota // group node with no visual output
	NodeTypeSprite                    // renders a TextureRegion of an atlas page
)

// DepthFigure is the depth of the layer rooms draw their figures in. Children
// of a figure are ordered by their own Depth inside it.
const DepthFigure = 2000
