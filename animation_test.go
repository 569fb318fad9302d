package roomkit

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenPositionReachesTarget(t *testing.T) {
	node := NewContainer("pos")
	node.X = 10
	node.Y = 20

	g := TweenPosition(node, 100, 200, 1.0, ease.Linear)

	// Exact halves avoid float32 accumulation drift.
	g.Update(0.5)
	g.Update(0.5)

	if !g.Done {
		t.Fatal("expected Done after full duration")
	}
	if math.Abs(node.X-100) > 0.5 || math.Abs(node.Y-200) > 0.5 {
		t.Errorf("node at (%f, %f), want ~(100, 200)", node.X, node.Y)
	}
}

func TestTweenAlphaInterpolates(t *testing.T) {
	node := NewContainer("alpha")
	g := TweenAlpha(node, 0, 1.0, ease.Linear)

	g.Update(0.5)
	if math.Abs(node.Alpha-0.5) > 0.01 {
		t.Errorf("Alpha at half = %f, want ~0.5", node.Alpha)
	}
	g.Update(0.5)
	if !g.Done || math.Abs(node.Alpha) > 0.01 {
		t.Errorf("Alpha = %f Done = %v, want ~0 and done", node.Alpha, g.Done)
	}
}

func TestTweenGroupMarksDirty(t *testing.T) {
	node := NewContainer("dirty")
	node.transformDirty = false
	g := TweenPosition(node, 5, 5, 1.0, ease.Linear)
	g.Update(0.1)
	if !node.transformDirty {
		t.Error("tween should mark the node dirty")
	}
}

func TestTweenGroupDisposedNode(t *testing.T) {
	node := NewContainer("gone")
	node.X = 7
	g := TweenPosition(node, 100, 100, 1.0, ease.Linear)
	node.Dispose()

	g.Update(0.5)
	if !g.Done {
		t.Error("tween on a disposed node should finish")
	}
	if node.X != 7 {
		t.Errorf("X = %f, want untouched 7", node.X)
	}
}

func TestTweenGroupStop(t *testing.T) {
	node := NewContainer("stop")
	g := TweenPosition(node, 100, 0, 1.0, ease.Linear)
	g.Update(0.25)
	x := node.X
	g.Stop()
	g.Update(0.5)
	if node.X != x {
		t.Errorf("X moved after Stop: %f → %f", x, node.X)
	}
}

func TestTweenGroupOnDoneRunsOnce(t *testing.T) {
	node := NewContainer("done")
	calls := 0
	g := TweenAlpha(node, 0, 0.5, ease.Linear)
	g.OnDone = func() { calls++ }

	g.Update(0.25)
	if calls != 0 {
		t.Fatal("OnDone ran early")
	}
	g.Update(0.25)
	g.Update(0.25)
	if calls != 1 {
		t.Errorf("OnDone calls = %d, want 1", calls)
	}
}

func TestSceneAddTween_AdvancesAndDrops(t *testing.T) {
	s := NewScene(WithTPS(4))
	node := NewContainer("walker")
	s.Root().AddChild(node)

	s.AddTween(TweenPosition(node, 40, 0, 1.0, ease.Linear))
	s.Update()
	if math.Abs(node.X-10) > 0.01 {
		t.Errorf("X after one tick = %f, want ~10", node.X)
	}
	for range 3 {
		s.Update()
	}
	if math.Abs(node.X-40) > 0.01 {
		t.Errorf("X = %f, want ~40", node.X)
	}
	if len(s.tweens) != 0 {
		t.Errorf("finished tweens kept: %d", len(s.tweens))
	}
}

func TestSceneAddTween_FromOnDoneStartsNextUpdate(t *testing.T) {
	s := NewScene(WithTPS(2))
	node := NewContainer("chain")
	first := TweenPosition(node, 10, 0, 0.5, ease.Linear)
	first.OnDone = func() {
		s.AddTween(TweenPosition(node, 10, 10, 0.5, ease.Linear))
	}
	s.AddTween(first)

	s.Update()
	if node.X != 10 || node.Y != 0 {
		t.Fatalf("after first = (%f, %f), want (10, 0)", node.X, node.Y)
	}
	s.Update()
	if node.Y != 10 {
		t.Errorf("Y = %f, want 10", node.Y)
	}
}
