package roomkit

import "fmt"

// nodeIDCounter is a plain counter; the scene is driven from one goroutine.
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is the fundamental scene graph element. A single flat struct is used for
// both containers and sprites to avoid interface dispatch on the hot path.
type Node struct {
	// Identity
	ID   uint32
	Name string
	Type NodeType

	// Hierarchy
	Parent   *Node
	children []*Node

	// Transform (local)
	X, Y   float64
	ScaleX float64
	ScaleY float64

	// Computed during traversal
	worldTransform [6]float64
	worldAlpha     float64
	transformDirty bool

	// Visibility
	Alpha   float64
	Visible bool

	// Ordering among siblings. Ties keep insertion order.
	Depth float64

	// Sprite fields (NodeTypeSprite)
	TextureRegion TextureRegion
	BlendMode     BlendMode
	Color         Color

	// Internal
	disposed       bool
	childrenSorted bool
	sortedChildren []*Node // reused buffer for Depth-sorted traversal order
}

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.ScaleX = 1
	n.ScaleY = 1
	n.Alpha = 1
	n.Color = ColorWhite
	n.Visible = true
	n.transformDirty = true
	n.childrenSorted = true
}

// NewContainer creates a container node with no visual representation.
func NewContainer(name string) *Node {
	n := &Node{Name: name, Type: NodeTypeContainer}
	nodeDefaults(n)
	return n
}

// NewSprite creates a sprite node that renders a texture region.
func NewSprite(name string, region TextureRegion) *Node {
	n := &Node{Name: name, Type: NodeTypeSprite, TextureRegion: region}
	nodeDefaults(n)
	return n
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("roomkit: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, n) {
		panic("roomkit: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	n.childrenSorted = false
	markSubtreeDirty(child)
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("roomkit: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
	n.childrenSorted = false
	markSubtreeDirty(child)
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// RemoveChildren detaches all children from this node.
// Children are NOT disposed.
func (n *Node) RemoveChildren() {
	for _, child := range n.children {
		child.Parent = nil
		markSubtreeDirty(child)
	}
	clear(n.children)
	n.children = n.children[:0]
	n.childrenSorted = true
	n.sortedChildren = n.sortedChildren[:0]
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// SetDepth sets the node's Depth and marks the parent's children as unsorted.
func (n *Node) SetDepth(d float64) {
	if n.Depth == d {
		return
	}
	n.Depth = d
	if n.Parent != nil {
		n.Parent.childrenSorted = false
	}
}

// SetPosition sets the node's local X and Y and marks it dirty.
func (n *Node) SetPosition(x, y float64) {
	n.X = x
	n.Y = y
	n.transformDirty = true
}

// SetFlipX mirrors the node horizontally around its origin.
func (n *Node) SetFlipX(flip bool) {
	if flip {
		n.ScaleX = -1
	} else {
		n.ScaleX = 1
	}
	n.transformDirty = true
}

// MarkDirty flags the node's transform for recomputation on the next traversal.
func (n *Node) MarkDirty() {
	n.transformDirty = true
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.sortedChildren = nil
}

// IsDisposed reports whether Dispose has been called on this node.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

func (n *Node) String() string {
	return fmt.Sprintf("Node(%d %q)", n.ID, n.Name)
}

// --- helpers ---

func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}

// isAncestor reports whether candidate is n or one of n's ancestors.
func isAncestor(candidate, n *Node) bool {
	for p := n; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

func markSubtreeDirty(n *Node) {
	n.transformDirty = true
	for _, c := range n.children {
		markSubtreeDirty(c)
	}
}
