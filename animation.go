package roomkit

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 2 float64 fields on a Node simultaneously.
// Groups created with Scene.TweenPosition are advanced by Scene.Update; groups
// built with the package-level constructors are advanced by calling Update.
// If the target node is disposed, the group stops immediately.
type TweenGroup struct {
	tweens [2]*gween.Tween
	count  int
	fields [2]*float64
	target *Node
	Done   bool

	// OnDone, when set, runs once after the last field reaches its target.
	OnDone func()
}

// Update advances all tweens by dt seconds, writes values to the target fields,
// and marks the node dirty. If the target node has been disposed, Done is set
// to true and no writes occur.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	if g.target != nil && g.target.IsDisposed() {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone

	if g.target != nil {
		g.target.MarkDirty()
	}
	if g.Done && g.OnDone != nil {
		g.OnDone()
	}
}

// Stop ends the group without writing further values.
func (g *TweenGroup) Stop() {
	g.Done = true
}

// TweenPosition creates a TweenGroup that animates node.X and node.Y to the
// given target coordinates over the specified duration using the easing function.
func TweenPosition(node *Node, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2, target: node}
	g.tweens[0] = gween.New(float32(node.X), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(node.Y), float32(toY), duration, fn)
	g.fields[0] = &node.X
	g.fields[1] = &node.Y
	return g
}

// TweenAlpha creates a TweenGroup that animates node.Alpha to the target value
// over the specified duration using the easing function.
func TweenAlpha(node *Node, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1, target: node}
	g.tweens[0] = gween.New(float32(node.Alpha), float32(to), duration, fn)
	g.fields[0] = &node.Alpha
	return g
}

// AddTween registers g so that Scene.Update advances it with the scene's
// fixed tick delta. Finished groups are dropped automatically.
func (s *Scene) AddTween(g *TweenGroup) *TweenGroup {
	s.tweens = append(s.tweens, g)
	return g
}

func (s *Scene) runTweens(dt float32) {
	// Groups added from OnDone callbacks start on the next Update.
	count := len(s.tweens)
	for i := 0; i < count; i++ {
		s.tweens[i].Update(dt)
	}
	live := s.tweens[:0]
	for _, g := range s.tweens {
		if !g.Done {
			live = append(live, g)
		}
	}
	clear(s.tweens[len(live):])
	s.tweens = live
}
