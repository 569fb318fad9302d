package pet

import "strconv"

// Blend is the compositing mode of a sprite.
type Blend uint8

const (
	BlendNormal Blend = iota
	BlendAdditive
)

// ShadowLayer is the layer index reserved for the drop shadow.
const ShadowLayer = -1

const (
	// DefaultShadowAlpha is the opacity of the shadow sprite.
	DefaultShadowAlpha = 0.1
	// DefaultTint leaves body sprites uncolored.
	DefaultTint uint32 = 0xFFFFFF
)

// Sprite is one drawable layer of a composited pet. X and Y place the sprite's
// top-left corner relative to the pet's origin.
type Sprite struct {
	Layer     int // ShadowLayer for the shadow
	AssetName string
	FrameName string // atlas frame
	X, Y      float64
	Z         float64
	Depth     float64
	Alpha     float64
	Tint      uint32 // 0xRRGGBB
	Blend     Blend
}

// LayerChar returns the letter that names a layer in asset names: 0 → "a",
// 1 → "b", and "sd" for the shadow layer.
func LayerChar(layer int) string {
	if layer == ShadowLayer {
		return "sd"
	}
	return string(rune('a' + layer))
}

// AssetName builds "<type>_<size>_<layerChar>_<direction>_<frame>".
func AssetName(typ string, size, layer int, direction Direction, frame int) string {
	return typ + "_" + strconv.Itoa(size) + "_" + LayerChar(layer) + "_" +
		strconv.Itoa(int(direction)) + "_" + strconv.Itoa(frame)
}

// ShadowAssetName builds "<type>_<size>_sd".
func ShadowAssetName(typ string, size int) string {
	return typ + "_" + strconv.Itoa(size) + "_" + LayerChar(ShadowLayer)
}

// FrameName is the atlas frame holding an asset's pixels.
func FrameName(typ, assetName string) string {
	return typ + "_" + assetName + ".png"
}

// Compositor builds depth-sorted sprite lists from a resolved manifest.
// It holds no per-pet state, so one Compositor serves any number of pets of
// the same type and size.
type Compositor struct {
	Manifest    *Manifest
	Textures    TextureQuery
	Tint        uint32
	ShadowAlpha float64
}

// NewCompositor creates a compositor with default tint and shadow opacity.
func NewCompositor(m *Manifest, tex TextureQuery) *Compositor {
	return &Compositor{Manifest: m, Textures: tex, Tint: DefaultTint, ShadowAlpha: DefaultShadowAlpha}
}

// Compose returns the visible layers for animation, direction and frameCount,
// shadow included, sorted back to front. Layers whose asset or atlas frame is
// missing are left out.
func (c *Compositor) Compose(animation int, direction Direction, frameCount int) []Sprite {
	m := c.Manifest
	vis := m.Visualization
	sprites := make([]Sprite, 0, vis.LayerCount+1)

	for layer := 0; layer < vis.LayerCount; layer++ {
		frame := vis.FrameID(animation, layer, frameCount)
		s, ok := c.sprite(AssetName(m.Type, m.Size, layer, direction, frame))
		if !ok {
			continue
		}
		spec := vis.Layer(layer)
		s.Layer = layer
		s.Z = spec.Z
		s.Alpha = float64(spec.Alpha) / 255
		s.Tint = c.Tint
		if spec.Ink == "ADD" {
			s.Blend = BlendAdditive
		}
		s.Depth = layerDepth(s)
		sprites = append(sprites, s)
	}

	if s, ok := c.sprite(ShadowAssetName(m.Type, m.Size)); ok {
		s.Layer = ShadowLayer
		s.Alpha = c.ShadowAlpha
		s.Tint = DefaultTint
		s.Blend = BlendAdditive
		s.Depth = ShadowDepth
		sprites = append(sprites, s)
	}

	sortByDepth(sprites)
	return sprites
}

// sprite resolves an asset name to a placed sprite, or reports false when the
// asset or its atlas frame is missing.
func (c *Compositor) sprite(assetName string) (Sprite, bool) {
	asset, ok := c.Manifest.Assets.Lookup(assetName)
	if !ok {
		return Sprite{}, false
	}
	frame := FrameName(c.Manifest.Type, assetName)
	if c.Textures == nil || !c.Textures.HasFrame(frame) {
		return Sprite{}, false
	}
	return Sprite{
		AssetName: assetName,
		FrameName: frame,
		X:         -asset.X,
		Y:         -asset.Y,
		Alpha:     1,
	}, true
}
