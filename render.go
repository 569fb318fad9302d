package roomkit

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// RenderCommand is a single draw instruction emitted during scene traversal.
type RenderCommand struct {
	Transform     [6]float64
	TextureRegion TextureRegion
	Color         Color
	BlendMode     BlendMode
}

// traverse walks the node tree depth-first, updating transforms and emitting
// render commands for visible sprites. Siblings are visited in Depth order so
// the command list is already back-to-front.
func (s *Scene) traverse(n *Node, parentTransform [6]float64, parentAlpha float64, parentRecomputed bool) {
	if !n.Visible {
		return
	}

	recompute := n.transformDirty || parentRecomputed
	if recompute {
		local := computeLocalTransform(n)
		n.worldTransform = multiplyAffine(parentTransform, local)
		n.worldAlpha = parentAlpha * n.Alpha
		n.transformDirty = false
	}

	if n.Type == NodeTypeSprite && n.TextureRegion.Width > 0 && n.TextureRegion.Height > 0 {
		c := n.Color
		c.A *= n.worldAlpha
		s.commands = append(s.commands, RenderCommand{
			Transform:     n.worldTransform,
			TextureRegion: n.TextureRegion,
			Color:         c,
			BlendMode:     n.BlendMode,
		})
	}

	if len(n.children) == 0 {
		return
	}
	if !n.childrenSorted {
		rebuildSortedChildren(n)
	}
	for _, child := range n.sortedChildren {
		s.traverse(child, n.worldTransform, n.worldAlpha, recompute)
	}
}

// rebuildSortedChildren rebuilds the Depth-sorted traversal order for a node.
// Uses insertion sort: zero allocations, stable, and optimal for the typical
// case of few children that are nearly sorted (O(n) when already sorted).
func rebuildSortedChildren(n *Node) {
	nc := len(n.children)
	if cap(n.sortedChildren) < nc {
		n.sortedChildren = make([]*Node, nc)
	}
	n.sortedChildren = n.sortedChildren[:nc]
	copy(n.sortedChildren, n.children)
	for i := 1; i < nc; i++ {
		key := n.sortedChildren[i]
		j := i - 1
		for j >= 0 && n.sortedChildren[j].Depth > key.Depth {
			n.sortedChildren[j+1] = n.sortedChildren[j]
			j--
		}
		n.sortedChildren[j+1] = key
	}
	n.childrenSorted = true
}

// submit draws every command onto target in list order.
func (s *Scene) submit(target *ebiten.Image) {
	var op ebiten.DrawImageOptions
	for i := range s.commands {
		cmd := &s.commands[i]
		page := s.page(cmd.TextureRegion.Page)
		if page == nil {
			continue
		}
		r := cmd.TextureRegion
		src := page.SubImage(image.Rect(
			int(r.X), int(r.Y),
			int(r.X)+int(r.Width), int(r.Y)+int(r.Height),
		)).(*ebiten.Image)

		op.GeoM.Reset()
		op.GeoM.Translate(float64(r.OffsetX), float64(r.OffsetY))
		m := cmd.Transform
		var world ebiten.GeoM
		world.SetElement(0, 0, m[0])
		world.SetElement(1, 0, m[1])
		world.SetElement(0, 1, m[2])
		world.SetElement(1, 1, m[3])
		world.SetElement(0, 2, m[4])
		world.SetElement(1, 2, m[5])
		op.GeoM.Concat(world)

		op.ColorScale.Reset()
		op.ColorScale.Scale(
			float32(cmd.Color.R*cmd.Color.A),
			float32(cmd.Color.G*cmd.Color.A),
			float32(cmd.Color.B*cmd.Color.A),
			float32(cmd.Color.A),
		)
		op.Blend = cmd.BlendMode.EbitenBlend()
		target.DrawImage(src, &op)
	}
}
