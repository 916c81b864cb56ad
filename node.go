package scenegraph

import "sync/atomic"

// nodeIDCounter is shared by every goroutine that builds nodes, so it is atomic.
var nodeIDCounter atomic.Uint32

func nextNodeID() uint32 {
	return nodeIDCounter.Add(1)
}

// Node is the scene graph element. Nodes are plain structs; the only optional
// behavior is the Drawable capability, checked once per render pass.
//
// A Node attached to a Scene must only be mutated from the scene's loop
// goroutine (inside Behavior hooks), or before the loop starts.
type Node struct {
	// Identity
	ID   uint32
	Name string

	// ZOrder sets paint order only: lower values are painted first.
	ZOrder int

	// Drawable is nil for nodes that produce no pixels.
	Drawable Drawable

	// Metadata
	UserData any

	// Hierarchy
	Parent   *Node
	children []*Node
	scene    *Scene
}

// NewNode creates a non-drawable node.
func NewNode(name string) *Node {
	return &Node{ID: nextNodeID(), Name: name}
}

// NewDrawable creates a node rendered by d.
func NewDrawable(name string, d Drawable) *Node {
	n := NewNode(name)
	n.Drawable = d
	return n
}

// Scene returns the owning scene, or nil when the node is detached.
func (n *Node) Scene() *Scene {
	return n.scene
}

// Attached reports whether the node currently belongs to a scene.
func (n *Node) Attached() bool {
	return n.scene != nil
}

// SetZOrder sets the node's paint order. Takes effect on the next render.
func (n *Node) SetZOrder(z int) {
	n.ZOrder = z
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first, and
// from the parent's scene when that parent is attached.
// When n is attached, child is also queued for addition to n's scene.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("scenegraph: cannot add nil child")
	}
	if isAncestor(child, n) {
		panic("scenegraph: adding child would create a cycle")
	}
	if old := child.Parent; old != nil {
		old.removeChildByPtr(child)
		if old.scene != nil {
			old.scene.RemoveChild(child)
		}
	}
	child.Parent = n
	n.children = append(n.children, child)
	if n.scene != nil {
		n.scene.AddChild(child)
	}
	if globalDebug.Load() {
		debugCheckChildCount(n.Name, len(n.children))
	}
}

// RemoveChild detaches child from this node. When n is attached, child is
// also queued for removal from n's scene.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("scenegraph: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
	if n.scene != nil {
		n.scene.RemoveChild(child)
	}
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	n.children = removeNode(n.children, child)
}

// removeNode deletes the first occurrence of target from list in place and
// returns the shortened slice. Absent targets leave list untouched.
func removeNode(list []*Node, target *Node) []*Node {
	for i, c := range list {
		if c == target {
			copy(list[i:], list[i+1:])
			list[len(list)-1] = nil
			return list[:len(list)-1]
		}
	}
	return list
}
