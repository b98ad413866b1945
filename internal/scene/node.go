package scene

import (
	"slices"
	"strings"

	"feature-compiler/internal/common"
	"feature-compiler/internal/feature"
)

// Node is one element of the scene hierarchy.
type Node struct {
	Name       string
	Active     bool
	EditorOnly bool
	Transform  Transform

	Renderer   *Renderer
	PhysBone   *PhysBone
	Contact    *Contact
	Constraint *ParentConstraint

	// Features are the descriptors authored on this node.
	Features []feature.Descriptor

	parent   *Node
	children []*Node
}

// NewNode returns an active, detached node with an identity transform.
func NewNode(name string) *Node {
	return &Node{Name: name, Active: true, Transform: IdentityTransform()}
}

func (n *Node) String() string {
	return n.Path()
}

// Parent returns the parent node or nil for a root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the child list. Callers must not modify it.
func (n *Node) Children() []*Node {
	return n.children
}

// ChildByName returns the first child with the given name, or nil.
func (n *Node) ChildByName(name string) *Node {
	for _, c := range n.children {
		if c.Name == name {
			return c
		}
	}

	return nil
}

// NewChild creates and appends a child node.
func (n *Node) NewChild(name string) *Node {
	kid := NewNode(name)
	n.AddChild(kid)

	return kid
}

// AddChild appends kid, detaching it from any previous parent first.
// The local transform of kid is kept as is.
func (n *Node) AddChild(kid *Node) {
	kid.detach()
	kid.parent = n
	n.children = append(n.children, kid)
}

// SetParent moves the node under p keeping its local transform.
func (n *Node) SetParent(p *Node) {
	p.AddChild(n)
}

// SetParentKeepWorld moves the node under p keeping its world transform.
func (n *Node) SetParentKeepWorld(p *Node) {
	world := n.WorldTransform()
	p.AddChild(n)
	n.Transform = p.WorldTransform().Relative(world)
}

func (n *Node) detach() {
	if n.parent == nil {
		return
	}

	p := n.parent
	if i := slices.Index(p.children, n); i >= 0 {
		p.children = slices.Delete(p.children, i, i+1)
	}

	n.parent = nil
}

// Root returns the top-most ancestor.
func (n *Node) Root() *Node {
	r := n
	for r.parent != nil {
		r = r.parent
	}

	return r
}

// IsDescendantOf reports whether n is a or lies below a.
func (n *Node) IsDescendantOf(a *Node) bool {
	for cur := n; cur != nil; cur = cur.parent {
		if cur == a {
			return true
		}
	}

	return false
}

// Path returns the path from the root, excluding the root's own name.
func (n *Node) Path() string {
	return n.PathFrom(n.Root())
}

// PathFrom returns the path from ancestor to n, excluding the ancestor's name.
// It returns "" for the ancestor itself. If ancestor is not above n the path
// runs from n's root.
func (n *Node) PathFrom(ancestor *Node) string {
	var names []string

	for cur := n; cur != nil && cur != ancestor; cur = cur.parent {
		if cur.parent == nil {
			break
		}

		names = append(names, cur.Name)
	}

	slices.Reverse(names)

	return strings.Join(names, common.PathSeparator)
}

// FindPath returns the node at the relative path below n, or nil.
// Names are matched exactly; the first match wins at every level.
func (n *Node) FindPath(path string) *Node {
	cur := n

	for _, part := range strings.Split(strings.Trim(strings.TrimSpace(path), "/"), "/") {
		if part == "" {
			continue
		}

		cur = cur.ChildByName(part)
		if cur == nil {
			return nil
		}
	}

	return cur
}

// WalkDown visits n and its descendants depth-first in child order.
// Returning false from fun skips the children of that node.
func (n *Node) WalkDown(fun func(*Node) bool) {
	if !fun(n) {
		return
	}

	for _, c := range slices.Clone(n.children) {
		c.WalkDown(fun)
	}
}

// Descendants returns n and every node below it in WalkDown order.
func (n *Node) Descendants() []*Node {
	var out []*Node

	n.WalkDown(func(k *Node) bool {
		out = append(out, k)
		return true
	})

	return out
}

// WorldTransform composes the local transforms from the root down to n.
// The root's own transform is included.
func (n *Node) WorldTransform() Transform {
	if n.parent == nil {
		return n.Transform
	}

	return n.parent.WorldTransform().Compose(n.Transform)
}

// LossyScale returns the accumulated scale.
func (n *Node) LossyScale() Vector3 {
	return n.WorldTransform().Scale
}

// PhysBoneRoot returns the node the physbone on n affects.
func (n *Node) PhysBoneRoot() *Node {
	if n.PhysBone == nil {
		return nil
	}

	if n.PhysBone.Root != nil {
		return n.PhysBone.Root
	}

	return n
}

// Destroy removes n and its subtree from the tree. References held by the
// remaining nodes to any destroyed node are cleared.
func (n *Node) Destroy() {
	root := n.Root()
	doomed := map[*Node]bool{}

	for _, d := range n.Descendants() {
		doomed[d] = true
	}

	n.detach()

	if root == n {
		return
	}

	root.WalkDown(func(k *Node) bool {
		k.scrub(doomed)
		return true
	})
}

func (n *Node) scrub(doomed map[*Node]bool) {
	if r := n.Renderer; r != nil {
		if doomed[r.RootBone] {
			r.RootBone = nil
		}

		for i, b := range r.Bones {
			if doomed[b] {
				r.Bones[i] = nil
			}
		}
	}

	if pb := n.PhysBone; pb != nil {
		if doomed[pb.Root] {
			pb.Root = nil
		}

		pb.Ignore = slices.DeleteFunc(pb.Ignore, func(x *Node) bool { return doomed[x] })
	}

	if c := n.Constraint; c != nil && doomed[c.Source] {
		c.Source = nil
	}
}
