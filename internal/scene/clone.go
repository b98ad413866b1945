package scene

import (
	"fmt"
	"maps"
	"slices"
)

// Clone returns a deep copy of the scene. Component references are remapped to
// the copied nodes so the two trees share nothing.
func (s *Scene) Clone() (*Scene, error) {
	artifacts, err := s.Artifacts.Clone()
	if err != nil {
		return nil, fmt.Errorf("cloning scene %q: %w", s.Root.Name, err)
	}

	copies := map[*Node]*Node{}
	root := cloneTree(s.Root, copies)

	for orig, cp := range copies {
		cp.Renderer = cloneRenderer(orig.Renderer, copies)
		cp.PhysBone = clonePhysBone(orig.PhysBone, copies)

		if c := orig.Constraint; c != nil {
			cp.Constraint = &ParentConstraint{Source: remap(c.Source, copies), Active: c.Active}
		}

		if c := orig.Contact; c != nil {
			contact := *c
			contact.Tags = slices.Clone(c.Tags)
			cp.Contact = &contact
		}
	}

	return &Scene{
		Version:   s.Version,
		Root:      root,
		Humanoid:  maps.Clone(s.Humanoid),
		Artifacts: artifacts,
	}, nil
}

func cloneTree(n *Node, copies map[*Node]*Node) *Node {
	cp := &Node{
		Name:       n.Name,
		Active:     n.Active,
		EditorOnly: n.EditorOnly,
		Transform:  n.Transform,
		Features:   slices.Clone(n.Features),
	}
	copies[n] = cp

	for _, c := range n.children {
		cp.AddChild(cloneTree(c, copies))
	}

	return cp
}

func remap(n *Node, copies map[*Node]*Node) *Node {
	if n == nil {
		return nil
	}

	if cp, ok := copies[n]; ok {
		return cp
	}

	// References outside the tree cannot be carried over.
	return nil
}

func cloneRenderer(r *Renderer, copies map[*Node]*Node) *Renderer {
	if r == nil {
		return nil
	}

	out := &Renderer{
		Skinned:     r.Skinned,
		RootBone:    remap(r.RootBone, copies),
		BlendShapes: slices.Clone(r.BlendShapes),
		Vertices:    slices.Clone(r.Vertices),
		Owner:       r.Owner,
	}

	for _, b := range r.Bones {
		out.Bones = append(out.Bones, remap(b, copies))
	}

	for _, m := range r.Materials {
		out.Materials = append(out.Materials, m.Clone())
	}

	return out
}

func clonePhysBone(pb *PhysBone, copies map[*Node]*Node) *PhysBone {
	if pb == nil {
		return nil
	}

	out := &PhysBone{Enabled: pb.Enabled, Root: remap(pb.Root, copies)}
	for _, ig := range pb.Ignore {
		if cp := remap(ig, copies); cp != nil {
			out.Ignore = append(out.Ignore, cp)
		}
	}

	return out
}
