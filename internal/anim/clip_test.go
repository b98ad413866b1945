package anim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClipSetCurve(t *testing.T) {
	c := NewClip("c")
	b := Binding{Path: "Hat", Type: "GameObject", Property: "m_IsActive"}

	c.SetCurve(b, OneFrame(1))
	c.SetCurve(b, OneFrame(0))

	require.Len(t, c.Floats, 1)
	keys, ok := c.Curve(b)
	require.True(t, ok)
	assert.Equal(t, float32(0), keys[0].Value)

	c.SetCurve(b, nil)
	assert.True(t, c.IsEmpty())
}

func TestClipRebindPaths(t *testing.T) {
	c := NewClip("c")
	c.SetCurve(Binding{Path: "Prop/Hat", Type: "GameObject", Property: "m_IsActive"}, OneFrame(1))
	c.SetObjectCurve(Binding{Path: "Other", Type: "Renderer", Property: "m_Materials.Array.data[0]"}, OneObjectFrame("Red"))

	moved := c.RebindPaths(func(p string) (string, bool) {
		if p == "Prop/Hat" {
			return "Armature/Head/Hat", true
		}

		return "", false
	})

	assert.Equal(t, 1, moved)
	assert.Equal(t, "Armature/Head/Hat", c.Floats[0].Path)
	assert.Equal(t, "Other", c.Objects[0].Path)
}

func TestClipClone(t *testing.T) {
	c := NewClip("c")
	b := Binding{Path: "A", Type: "Transform", Property: "m_LocalScale.x"}
	c.SetCurve(b, OneFrame(2))

	cp := c.Clone()
	cp.SetCurve(b, OneFrame(3))

	keys, _ := c.Curve(b)
	assert.Equal(t, float32(2), keys[0].Value)
}
