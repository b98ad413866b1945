package scene

import (
	"feature-compiler/internal/anim"
)

// Scene is a loaded avatar: the node tree, the humanoid bone map and the
// artifacts the runtime reads.
type Scene struct {
	Version string
	Root    *Node
	// Humanoid maps canonical bone names such as "Hips" to root-relative paths.
	Humanoid  map[string]string
	Artifacts anim.Triple
}

// New returns an empty scene with a root node of the given name.
func New(rootName string) *Scene {
	return &Scene{Version: CurrentVersion, Root: NewNode(rootName), Humanoid: map[string]string{}}
}

// HumanoidBone resolves a canonical bone name through the humanoid map.
func (s *Scene) HumanoidBone(name string) *Node {
	path, ok := s.Humanoid[name]
	if !ok {
		return nil
	}

	return s.Root.FindPath(path)
}

// Nodes returns every node of the tree, root first.
func (s *Scene) Nodes() []*Node {
	return s.Root.Descendants()
}

// HasFeatures reports whether any node carries a descriptor.
func (s *Scene) HasFeatures() bool {
	found := false

	s.Root.WalkDown(func(n *Node) bool {
		if len(n.Features) > 0 {
			found = true
		}

		return !found
	})

	return found
}
