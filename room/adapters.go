package room

import (
	"slices"
	"time"

	"github.com/phanxgames/roomkit"
	"github.com/phanxgames/roomkit/pet"
)

// sceneHost runs pet tick callbacks on scene timers.
type sceneHost struct {
	scene *roomkit.Scene
}

func (h sceneHost) Schedule(callback func(), interval time.Duration, repeat bool) pet.Cancel {
	return h.scene.Schedule(callback, interval, repeat)
}

func (h sceneHost) TPS() int {
	return h.scene.TPS()
}

// cacheTextures hands out atlases from the scene cache.
type cacheTextures struct {
	cache *roomkit.Cache
}

func (t cacheTextures) Texture(typ string) (pet.TextureQuery, bool) {
	a, ok := t.cache.Atlas(typ)
	if !ok {
		return nil, false
	}
	return a, true
}

// nodeContainer turns composited sprites into sprite nodes under one pet node.
type nodeContainer struct {
	node  *roomkit.Node
	cache *roomkit.Cache
	typ   string
}

func (c *nodeContainer) AddSprite(s pet.Sprite) {
	atlas, ok := c.cache.Atlas(c.typ)
	if !ok {
		return
	}
	region, ok := atlas.Region(s.FrameName)
	if !ok {
		return
	}
	n := roomkit.NewSprite(s.AssetName, region)
	n.SetPosition(s.X, s.Y)
	n.Depth = s.Depth
	n.Alpha = s.Alpha
	n.Color = roomkit.ColorFromHex(s.Tint)
	if s.Blend == pet.BlendAdditive {
		n.BlendMode = roomkit.BlendAdd
	}
	c.node.AddChild(n)
}

func (c *nodeContainer) RemoveAll() {
	old := slices.Clone(c.node.Children())
	c.node.RemoveChildren()
	for _, n := range old {
		n.Dispose()
	}
}

func (c *nodeContainer) SetFlip(flip bool) {
	c.node.SetFlipX(flip)
}
