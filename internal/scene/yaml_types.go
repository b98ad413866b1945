package scene

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"feature-compiler/internal/anim"
	"feature-compiler/internal/feature"
)

// sceneDoc is the on-disk form of a Scene.
type sceneDoc struct {
	Version   string            `yaml:"version"`
	Humanoid  map[string]string `yaml:"humanoid,omitempty"`
	Root      *nodeDoc          `yaml:"root"`
	Artifacts anim.Triple       `yaml:"artifacts,omitempty"`
}

// nodeDoc is the on-disk form of a Node. Node references are root-relative paths.
type nodeDoc struct {
	Name       string               `yaml:"name"`
	Active     *bool                `yaml:"active,omitempty"`
	EditorOnly bool                 `yaml:"editor_only,omitempty"`
	Position   *Vector3             `yaml:"position,omitempty"`
	Rotation   *Quaternion          `yaml:"rotation,omitempty"`
	Scale      *Vector3             `yaml:"scale,omitempty"`
	Renderer   *rendererDoc         `yaml:"renderer,omitempty"`
	PhysBone   *physBoneDoc         `yaml:"physbone,omitempty"`
	Contact    *Contact             `yaml:"contact,omitempty"`
	Constraint *constraintDoc       `yaml:"constraint,omitempty"`
	Features   []feature.Descriptor `yaml:"features,omitempty"`
	Children   []*nodeDoc           `yaml:"children,omitempty"`
}

type rendererDoc struct {
	Skinned     bool         `yaml:"skinned,omitempty"`
	Bones       []string     `yaml:"bones,omitempty"`
	RootBone    string       `yaml:"root_bone,omitempty"`
	BlendShapes []BlendShape `yaml:"blend_shapes,omitempty"`
	Materials   []*Material  `yaml:"materials,omitempty"`
	Vertices    []Vector3    `yaml:"vertices,omitempty"`
}

type physBoneDoc struct {
	Enabled *bool    `yaml:"enabled,omitempty"`
	Root    string   `yaml:"root,omitempty"`
	Ignore  []string `yaml:"ignore,omitempty"`
}

type constraintDoc struct {
	Source string `yaml:"source"`
	Active *bool  `yaml:"active,omitempty"`
}

// --- Vector3 / Quaternion YAML methods ---

// MarshalYAML writes the vector as a flow sequence [x, y, z].
func (v Vector3) MarshalYAML() (any, error) {
	return flowFloats(v.X, v.Y, v.Z), nil
}

// UnmarshalYAML reads a vector from [x, y, z].
func (v *Vector3) UnmarshalYAML(node *yaml.Node) error {
	var xs []float32
	if err := node.Decode(&xs); err != nil {
		return err
	}

	if len(xs) != 3 {
		return fmt.Errorf("line %d: vector needs 3 components, got %d", node.Line, len(xs))
	}

	*v = Vector3{xs[0], xs[1], xs[2]}

	return nil
}

// MarshalYAML writes the rotation as a flow sequence [x, y, z, w].
func (q Quaternion) MarshalYAML() (any, error) {
	return flowFloats(q.X, q.Y, q.Z, q.W), nil
}

// UnmarshalYAML reads a rotation from [x, y, z, w].
func (q *Quaternion) UnmarshalYAML(node *yaml.Node) error {
	var xs []float32
	if err := node.Decode(&xs); err != nil {
		return err
	}

	if len(xs) != 4 {
		return fmt.Errorf("line %d: rotation needs 4 components, got %d", node.Line, len(xs))
	}

	*q = Quaternion{xs[0], xs[1], xs[2], xs[3]}

	return nil
}

func flowFloats(vals ...float32) *yaml.Node {
	seq := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}

	for _, v := range vals {
		var n yaml.Node
		// Encoding a float never fails.
		_ = n.Encode(v)
		seq.Content = append(seq.Content, &n)
	}

	return seq
}

// --- conversion ---

// refResolver defers path lookups until the whole tree exists.
type refResolver struct {
	root *Node
	errs []error
}

func (r *refResolver) node(path, owner string) *Node {
	if path == "" {
		return nil
	}

	n := r.root.FindPath(path)
	if n == nil {
		r.errs = append(r.errs, fmt.Errorf("node %q references missing node %q", owner, path))
	}

	return n
}

func buildNode(doc *nodeDoc) *Node {
	n := NewNode(doc.Name)
	n.EditorOnly = doc.EditorOnly
	n.Features = doc.Features

	if doc.Active != nil {
		n.Active = *doc.Active
	}

	if doc.Position != nil {
		n.Transform.Position = *doc.Position
	}

	if doc.Rotation != nil {
		n.Transform.Rotation = *doc.Rotation
	}

	if doc.Scale != nil {
		n.Transform.Scale = *doc.Scale
	}

	n.Contact = doc.Contact

	for _, c := range doc.Children {
		n.AddChild(buildNode(c))
	}

	return n
}

// resolveRefs fills the component references of the tree built from doc.
func resolveRefs(n *Node, doc *nodeDoc, r *refResolver) {
	owner := n.Path()

	if rd := doc.Renderer; rd != nil {
		n.Renderer = &Renderer{
			Skinned:     rd.Skinned,
			RootBone:    r.node(rd.RootBone, owner),
			BlendShapes: rd.BlendShapes,
			Materials:   rd.Materials,
			Vertices:    rd.Vertices,
		}

		for _, b := range rd.Bones {
			n.Renderer.Bones = append(n.Renderer.Bones, r.node(b, owner))
		}
	}

	if pd := doc.PhysBone; pd != nil {
		n.PhysBone = &PhysBone{Enabled: true, Root: r.node(pd.Root, owner)}
		if pd.Enabled != nil {
			n.PhysBone.Enabled = *pd.Enabled
		}

		for _, ig := range pd.Ignore {
			if k := r.node(ig, owner); k != nil {
				n.PhysBone.Ignore = append(n.PhysBone.Ignore, k)
			}
		}
	}

	if cd := doc.Constraint; cd != nil {
		n.Constraint = &ParentConstraint{Source: r.node(cd.Source, owner), Active: true}
		if cd.Active != nil {
			n.Constraint.Active = *cd.Active
		}
	}

	for i, c := range n.children {
		resolveRefs(c, doc.Children[i], r)
	}
}

func nodeToDoc(n *Node) *nodeDoc {
	doc := &nodeDoc{
		Name:       n.Name,
		EditorOnly: n.EditorOnly,
		Features:   n.Features,
		Contact:    n.Contact,
	}

	if !n.Active {
		doc.Active = new(bool)
	}

	if t := n.Transform; t.Position != (Vector3{}) {
		doc.Position = &t.Position
	}

	if t := n.Transform; t.Rotation != Identity {
		doc.Rotation = &t.Rotation
	}

	if t := n.Transform; t.Scale != One {
		doc.Scale = &t.Scale
	}

	if r := n.Renderer; r != nil {
		doc.Renderer = &rendererDoc{
			Skinned:     r.Skinned,
			RootBone:    pathOf(r.RootBone),
			BlendShapes: r.BlendShapes,
			Materials:   r.Materials,
			Vertices:    r.Vertices,
		}

		for _, b := range r.Bones {
			doc.Renderer.Bones = append(doc.Renderer.Bones, pathOf(b))
		}
	}

	if pb := n.PhysBone; pb != nil {
		enabled := pb.Enabled
		doc.PhysBone = &physBoneDoc{Enabled: &enabled, Root: pathOf(pb.Root)}

		for _, ig := range pb.Ignore {
			doc.PhysBone.Ignore = append(doc.PhysBone.Ignore, pathOf(ig))
		}
	}

	if c := n.Constraint; c != nil {
		active := c.Active
		doc.Constraint = &constraintDoc{Source: pathOf(c.Source), Active: &active}
	}

	for _, c := range n.children {
		doc.Children = append(doc.Children, nodeToDoc(c))
	}

	return doc
}

func pathOf(n *Node) string {
	if n == nil {
		return ""
	}

	return n.Path()
}
