package feature

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDescriptorUnmarshal(t *testing.T) {
	src := `
- type: armature_link
  prop_bone: Armature/Hips
  bone_on_avatar: Hips
  mode: bone_merge
- type: toggle
  name: Hat
  saved: true
  state:
    actions:
      - {type: object_toggle, obj: Hat}
      - {type: blend_shape, blend_shape: Smile, value: 100}
- type: force_explicit_values
`

	var ds []Descriptor
	require.NoError(t, yaml.Unmarshal([]byte(src), &ds))
	require.Len(t, ds, 3)

	link, ok := ds[0].Model.(ArmatureLink)
	require.True(t, ok)
	assert.Equal(t, LinkBoneMerge, link.EffectiveMode())
	assert.Equal(t, "Hips", link.BoneOnAvatar)

	toggle, ok := ds[1].Model.(Toggle)
	require.True(t, ok)
	assert.True(t, toggle.Saved)
	require.Len(t, toggle.State.Actions, 2)
	assert.Equal(t, ActionBlendShape, toggle.State.Actions[1].Type)

	assert.Equal(t, KindForceExplicitValues, ds[2].Kind())
}

func TestDescriptorUnmarshalErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"missing type", "name: x\n", "missing its type"},
		{"unknown type", "type: teleport\n", "unknown feature type"},
		{"not a mapping", "- a\n", "must be a mapping"},
		{"bad field", "type: scale_set\nscale: big\n", "decoding scale_set"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Descriptor
			err := yaml.Unmarshal([]byte(tt.src), &d)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestDescriptorMarshalPutsTypeFirst(t *testing.T) {
	d := New(ScaleSet{Obj: "Hat", Scale: 2})

	out, err := yaml.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, "type: scale_set\nobj: Hat\nscale: 2\n", string(out))

	var back Descriptor
	require.NoError(t, yaml.Unmarshal(out, &back))
	assert.Equal(t, d, back)

	_, err = yaml.Marshal(Descriptor{})
	assert.Error(t, err)
}

func TestKinds(t *testing.T) {
	for _, k := range Kinds() {
		assert.True(t, k.IsValid(), k)
		assert.NotNil(t, newModel(k), k)
	}

	assert.False(t, Kind("nope").IsValid())
	assert.Equal(t, Kind(""), Descriptor{}.Kind())
}
