package rewrite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feature-compiler/internal/anim"
)

func TestRewrite(t *testing.T) {
	m := NewMapping()
	require.NoError(t, m.Add("Prefix", "Armature/Hips/Prefix"))
	require.NoError(t, m.Add("Prefix/Inner", "Armature/Chest/vrcf_3_Inner"))

	tests := []struct {
		path string
		want string
		ok   bool
	}{
		{"Prefix", "Armature/Hips/Prefix", true},
		{"Prefix/x", "Armature/Hips/Prefix/x", true},
		{"Prefix/Inner/y", "Armature/Chest/vrcf_3_Inner/y", true},
		{"Prefix2/x", "", false},
		{"Pre", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, ok := m.Rewrite(tt.path)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAddConflicts(t *testing.T) {
	m := NewMapping()
	require.NoError(t, m.Add("A", "B"))
	require.NoError(t, m.Add("A", "B"))
	assert.Error(t, m.Add("A", "C"))
	assert.Error(t, m.Add("", "C"))
	assert.Equal(t, 1, m.Len())
}

func TestRewriteClipKeepsCurveData(t *testing.T) {
	m := NewMapping()
	require.NoError(t, m.Add("P", "Q"))

	c := anim.NewClip("c")
	c.SetCurve(anim.Binding{Path: "P", Type: "GameObject", Property: "m_IsActive"}, []anim.Keyframe{{Time: 0, Value: 1}, {Time: 1, Value: 0}})
	c.SetObjectCurve(anim.Binding{Path: "P/x", Type: "Renderer", Property: "m_Materials.Array.data[0]"}, anim.OneObjectFrame("Red"))
	c.SetCurve(anim.Binding{Path: "Prefix2/x", Type: "GameObject", Property: "m_IsActive"}, anim.OneFrame(1))

	layer := &anim.Layer{States: []*anim.State{{Name: "a", Motion: c}, {Name: "b", Motion: c}}}
	assert.Equal(t, 2, m.RewriteLayers([]*anim.Layer{layer}))

	keys, ok := c.Curve(anim.Binding{Path: "Q", Type: "GameObject", Property: "m_IsActive"})
	require.True(t, ok)
	assert.Len(t, keys, 2)
	assert.Equal(t, "Q/x", c.Objects[0].Path)
	assert.Equal(t, "Prefix2/x", c.Floats[1].Path)
}

func TestRewriteClipReplacesCurveAtTarget(t *testing.T) {
	m := NewMapping()
	require.NoError(t, m.Add("Shirt/Armature/Hips", "Armature/Hips"))

	scale := func(path string) anim.Binding {
		return anim.Binding{Path: path, Type: "Transform", Property: "m_LocalScale.x"}
	}

	tests := []struct {
		name  string
		order []string
	}{
		{"moved after existing", []string{"Armature/Hips", "Shirt/Armature/Hips"}},
		{"moved before existing", []string{"Shirt/Armature/Hips", "Armature/Hips"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := anim.NewClip("c")
			c.SetCurve(scale(tt.order[0]), anim.OneFrame(float32(len(tt.order[0]))))
			c.SetCurve(scale(tt.order[1]), anim.OneFrame(float32(len(tt.order[1]))))
			c.SetObjectCurve(anim.Binding{Path: "Armature/Hips", Type: "Renderer", Property: "m_Materials.Array.data[0]"}, anim.OneObjectFrame("Old"))
			c.SetObjectCurve(anim.Binding{Path: "Shirt/Armature/Hips", Type: "Renderer", Property: "m_Materials.Array.data[0]"}, anim.OneObjectFrame("New"))

			assert.Equal(t, 2, m.RewriteClip(c))
			require.Len(t, c.Floats, 1)
			require.Len(t, c.Objects, 1)

			keys, ok := c.Curve(scale("Armature/Hips"))
			require.True(t, ok)
			assert.Equal(t, float32(len("Shirt/Armature/Hips")), keys[0].Value)
			assert.Equal(t, "New", c.Objects[0].Keys[0].Value)
		})
	}
}
