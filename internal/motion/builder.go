package motion

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"

	"feature-compiler/internal/anim"
	"feature-compiler/internal/feature"
	"feature-compiler/internal/scene"
)

// ErrNodeMissing is wrapped by errors about state actions whose node cannot be found.
var ErrNodeMissing = errors.New("node not found")

// Builder writes curves against nodes of one scene.
type Builder struct {
	root *scene.Node
}

// NewBuilder returns a builder for the tree under root.
func NewBuilder(root *scene.Node) *Builder {
	return &Builder{root: root}
}

// Root returns the scene root the builder resolves paths against.
func (b *Builder) Root() *scene.Node {
	return b.root
}

// Path returns the binding path of n.
func (b *Builder) Path(n *scene.Node) string {
	return n.PathFrom(b.root)
}

// Enable sets the active flag of n.
func (b *Builder) Enable(c *anim.Clip, n *scene.Node, on bool) {
	v := float32(0)
	if on {
		v = 1
	}

	c.SetCurve(anim.Binding{Path: b.Path(n), Type: TypeGameObject, Property: PropActive}, anim.OneFrame(v))
}

// BlendShape sets a blend shape weight on the renderer of n.
func (b *Builder) BlendShape(c *anim.Clip, n *scene.Node, name string, value float32) {
	c.SetCurve(anim.Binding{Path: b.Path(n), Type: TypeSkinned, Property: PropBlendPrefix + name}, anim.OneFrame(value))
}

// Scale sets the local scale of n.
func (b *Builder) Scale(c *anim.Clip, n *scene.Node, s scene.Vector3) {
	path := b.Path(n)
	axes := []struct {
		name string
		v    float32
	}{{"x", s.X}, {"y", s.Y}, {"z", s.Z}}

	for _, axis := range axes {
		c.SetCurve(anim.Binding{Path: path, Type: TypeTransform, Property: PropScalePrefix + axis.name},
			anim.OneFrame(axis.v))
	}
}

// Material swaps the material in slot of the renderer of n.
func (b *Builder) Material(c *anim.Clip, n *scene.Node, slot int, material string) {
	c.SetObjectCurve(anim.Binding{Path: b.Path(n), Type: TypeRenderer, Property: materialSlotProp(slot)},
		anim.OneObjectFrame(material))
}

// Flipbook selects a frame of a flipbook material on the renderer of n. The
// value sits mid-frame so shader rounding lands on the requested frame.
func (b *Builder) Flipbook(c *anim.Clip, n *scene.Node, frame float32) {
	c.SetCurve(anim.Binding{Path: b.Path(n), Type: TypeSkinned, Property: PropMaterialPrefix + PropFlipbookFrame},
		anim.OneFrame(math32.Floor(frame)+0.5))
}

// PhysBone enables or disables the physbone on n.
func (b *Builder) PhysBone(c *anim.Clip, n *scene.Node, on bool) {
	v := float32(0)
	if on {
		v = 1
	}

	c.SetCurve(anim.Binding{Path: b.Path(n), Type: TypePhysBone, Property: PropEnabled}, anim.OneFrame(v))
}

// Rebase returns a copy of clip whose paths, authored relative to from, are
// relative to the scene root.
func (b *Builder) Rebase(clip *anim.Clip, from *scene.Node) *anim.Clip {
	out := clip.Clone()

	prefix := b.Path(from)
	if prefix == "" {
		return out
	}

	out.RebindPaths(func(p string) (string, bool) {
		if p == "" {
			return prefix, true
		}

		return prefix + "/" + p, true
	})

	return out
}

// LoadState fills clip with the effects of state, resolving node references
// relative to owner. Actions that cannot be resolved are skipped and reported;
// the rest are still written.
func (b *Builder) LoadState(clip *anim.Clip, owner *scene.Node, state feature.State) []error {
	var problems []error

	for i, a := range state.Actions {
		if err := b.loadAction(clip, owner, a); err != nil {
			problems = append(problems, fmt.Errorf("action %d (%s): %w", i, a.Type, err))
		}
	}

	return problems
}

func (b *Builder) loadAction(clip *anim.Clip, owner *scene.Node, a feature.Action) error {
	if a.Type == feature.ActionBlendShape && a.Obj == "" {
		return b.blendShapeEverywhere(clip, a.BlendShape, a.Value)
	}

	if a.Type == feature.ActionAnimationClip {
		if a.Clip == nil {
			return errors.New("no clip")
		}

		clip.CopyFrom(b.Rebase(a.Clip, owner))

		return nil
	}

	n := owner.FindPath(a.Obj)
	if n == nil {
		return fmt.Errorf("%w: %q under %q", ErrNodeMissing, a.Obj, b.Path(owner))
	}

	switch a.Type {
	case feature.ActionObjectToggle:
		b.Enable(clip, n, !n.Active)
	case feature.ActionBlendShape:
		if n.Renderer == nil || n.Renderer.BlendShapeIndex(a.BlendShape) < 0 {
			return fmt.Errorf("%q has no blend shape %q", b.Path(n), a.BlendShape)
		}

		b.BlendShape(clip, n, a.BlendShape, a.Value)
	case feature.ActionScale:
		b.Scale(clip, n, n.Transform.Scale.Scale(a.Scale))
	case feature.ActionMaterial:
		if n.Renderer == nil || a.MaterialIndex < 0 || a.MaterialIndex >= len(n.Renderer.Materials) {
			return fmt.Errorf("%q has no material slot %d", b.Path(n), a.MaterialIndex)
		}

		b.Material(clip, n, a.MaterialIndex, a.Material)
	case feature.ActionFlipbook:
		if n.Renderer == nil {
			return fmt.Errorf("%q has no renderer", b.Path(n))
		}

		b.Flipbook(clip, n, a.Frame)
	case feature.ActionPhysBoneEnable:
		if n.PhysBone == nil {
			return fmt.Errorf("%q has no physbone", b.Path(n))
		}

		b.PhysBone(clip, n, !n.PhysBone.Enabled)
	default:
		return fmt.Errorf("unknown action type %q", a.Type)
	}

	return nil
}

// blendShapeEverywhere sets name on every skinned renderer that has it.
func (b *Builder) blendShapeEverywhere(clip *anim.Clip, name string, value float32) error {
	found := false

	b.root.WalkDown(func(n *scene.Node) bool {
		if r := n.Renderer; r != nil && r.Skinned && r.BlendShapeIndex(name) >= 0 {
			b.BlendShape(clip, n, name, value)
			found = true
		}

		return true
	})

	if !found {
		return fmt.Errorf("no renderer has blend shape %q", name)
	}

	return nil
}
