package scene

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodePaths(t *testing.T) {
	root := NewNode("Avatar")
	arm := root.NewChild("Armature")
	hips := arm.NewChild("Hips")

	assert.Equal(t, "", root.Path())
	assert.Equal(t, "Armature/Hips", hips.Path())
	assert.Equal(t, "Hips", hips.PathFrom(arm))
	assert.Same(t, hips, root.FindPath("/Armature/Hips/"))
	assert.Nil(t, root.FindPath("Armature/Spine"))
	assert.True(t, hips.IsDescendantOf(root))
	assert.True(t, hips.IsDescendantOf(hips))
	assert.False(t, arm.IsDescendantOf(hips))
}

func TestSetParentKeepWorld(t *testing.T) {
	root := NewNode("Avatar")
	a := root.NewChild("A")
	a.Transform.Position = Vector3{1, 0, 0}
	a.Transform.Scale = Vector3{2, 2, 2}

	b := root.NewChild("B")
	b.Transform.Position = Vector3{3, 0, 0}
	b.Transform.Rotation = AxisAngle(Vector3{0, 1, 0}, 1.2)

	before := b.WorldTransform()
	b.SetParentKeepWorld(a)
	after := b.WorldTransform()

	assert.Same(t, a, b.Parent())
	assert.True(t, before.Position.ApproxEqual(after.Position, 1e-4), spew.Sdump(before, after))
	assert.True(t, before.Rotation.ApproxEqual(after.Rotation, 1e-4))
	assert.True(t, before.Scale.ApproxEqual(after.Scale, 1e-4))
}

func TestDestroyScrubsReferences(t *testing.T) {
	root := NewNode("Avatar")
	hips := root.NewChild("Hips")
	prop := root.NewChild("Prop")
	bone := prop.NewChild("Bone")

	body := root.NewChild("Body")
	body.Renderer = &Renderer{Bones: []*Node{hips, bone}, RootBone: bone}
	hips.PhysBone = &PhysBone{Ignore: []*Node{bone, hips}}
	hips.Constraint = &ParentConstraint{Source: bone}

	prop.Destroy()

	assert.Nil(t, root.ChildByName("Prop"))
	assert.Nil(t, body.Renderer.RootBone)
	assert.Equal(t, []*Node{hips, nil}, body.Renderer.Bones)
	require.Len(t, hips.PhysBone.Ignore, 1)
	assert.Nil(t, hips.Constraint.Source)
}

func TestSceneClone(t *testing.T) {
	s, err := Parse([]byte(sampleScene))
	require.NoError(t, err)

	cp, err := s.Clone()
	require.NoError(t, err)

	cpHips := cp.Root.FindPath("Armature/Hips")
	require.NotNil(t, cpHips)
	assert.NotSame(t, s.Root.FindPath("Armature/Hips"), cpHips)
	assert.Same(t, cpHips, cp.Root.FindPath("Body").Renderer.RootBone)

	cp.Root.FindPath("Body").Renderer.SetBlendShape("Smile", 1)
	cp.Humanoid["Chest"] = "x"

	assert.Equal(t, float32(0), s.Root.FindPath("Body").Renderer.BlendShapes[0].Weight)
	assert.NotContains(t, s.Humanoid, "Chest")
}
