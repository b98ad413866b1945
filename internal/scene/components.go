package scene

import "slices"

// BlendShape is a named blend weight on a renderer.
type BlendShape struct {
	Name   string  `yaml:"name"`
	Weight float32 `yaml:"weight"`
}

// Material is a material slot's asset with its float properties.
type Material struct {
	Name   string             `yaml:"name"`
	Floats map[string]float32 `yaml:"floats,omitempty"`
}

// Clone returns a copy of the material.
func (m *Material) Clone() *Material {
	if m == nil {
		return nil
	}

	c := &Material{Name: m.Name}
	if m.Floats != nil {
		c.Floats = make(map[string]float32, len(m.Floats))
		for k, v := range m.Floats {
			c.Floats[k] = v
		}
	}

	return c
}

// Renderer draws a mesh. A skinned renderer is deformed by its bones.
type Renderer struct {
	Skinned     bool
	Bones       []*Node
	RootBone    *Node
	BlendShapes []BlendShape
	Materials   []*Material
	// Vertices are mesh-local positions used for size detection.
	Vertices []Vector3
	// Owner is the claim placed by a feature that needs the renderer exclusively.
	Owner string
}

// BlendShapeIndex returns the index of the named blend shape or -1.
func (r *Renderer) BlendShapeIndex(name string) int {
	return slices.IndexFunc(r.BlendShapes, func(b BlendShape) bool { return b.Name == name })
}

// SetBlendShape sets the weight of an existing blend shape.
func (r *Renderer) SetBlendShape(name string, weight float32) bool {
	i := r.BlendShapeIndex(name)
	if i < 0 {
		return false
	}

	r.BlendShapes[i].Weight = weight

	return true
}

// RemapBones replaces every bone reference found in mapping, including the root bone.
// It returns the number of references changed.
func (r *Renderer) RemapBones(mapping map[*Node]*Node) int {
	changed := 0

	if nb, ok := mapping[r.RootBone]; ok && r.RootBone != nil {
		r.RootBone = nb
		changed++
	}

	for i, b := range r.Bones {
		if b == nil {
			continue
		}

		if nb, ok := mapping[b]; ok {
			r.Bones[i] = nb
			changed++
		}
	}

	return changed
}

// PhysBone is a secondary-motion component that sways the hierarchy under Root.
type PhysBone struct {
	Enabled bool
	// Root is the top of the affected hierarchy; nil means the owning node.
	Root *Node
	// Ignore lists nodes excluded from the sway together with their children.
	Ignore []*Node
}

// ContactKind selects the role of a proximity contact.
type ContactKind string

const (
	ContactSender   ContactKind = "sender"
	ContactReceiver ContactKind = "receiver"
)

// Contact is a proximity sender or receiver shaped as a capsule.
type Contact struct {
	Kind      ContactKind `yaml:"kind"`
	Radius    float32     `yaml:"radius"`
	Height    float32     `yaml:"height,omitempty"`
	Tags      []string    `yaml:"tags,omitempty"`
	Parameter string      `yaml:"parameter,omitempty"`
}

// ParentConstraint binds a node's transform to a source node.
type ParentConstraint struct {
	Source *Node
	Active bool
}
