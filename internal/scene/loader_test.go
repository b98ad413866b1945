package scene

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feature-compiler/internal/feature"
)

func TestParseScene(t *testing.T) {
	s, err := Parse([]byte(sampleScene))
	require.NoError(t, err)

	assert.Equal(t, "Avatar", s.Root.Name)
	assert.Equal(t, "1.2.0", s.Version)

	hips := s.HumanoidBone("Hips")
	require.NotNil(t, hips)
	assert.Equal(t, "Armature/Hips", hips.Path())
	assert.Equal(t, Vector3{0, 1, 0}, hips.Transform.Position)
	assert.Equal(t, One, hips.Transform.Scale)

	body := s.Root.FindPath("Body")
	require.NotNil(t, body.Renderer)
	assert.Same(t, hips, body.Renderer.RootBone)
	assert.Len(t, body.Renderer.Bones, 2)

	tail := s.Root.FindPath("Tail")
	assert.False(t, tail.Active)
	require.NotNil(t, tail.PhysBone)
	assert.True(t, tail.PhysBone.Enabled)
	assert.Same(t, tail, tail.PhysBone.Root)
	assert.Same(t, tail.FindPath("Tip"), tail.PhysBone.Ignore[0])

	require.Len(t, tail.Features, 1)
	assert.Equal(t, feature.KindToggle, tail.Features[0].Kind())
	assert.True(t, s.HasFeatures())
}

func TestParseSceneErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"future version", "version: \"2.0.0\"\nroot: {name: A}\n", "not supported"},
		{"bad version", "version: banana\nroot: {name: A}\n", "invalid scene version"},
		{"no root", "version: \"1.0.0\"\n", "no root"},
		{"dangling ref", "root:\n  name: A\n  children:\n    - name: B\n      constraint: {source: C}\n", "missing node"},
		{"bad humanoid", "humanoid: {Hips: X}\nroot: {name: A}\n", "humanoid bone Hips"},
		{"short vector", "root: {name: A, position: [1, 2]}\n", "3 components"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	s, err := Parse([]byte(sampleScene))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, WriteFile(s, path))

	back, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, len(s.Nodes()), len(back.Nodes()))
	assert.Same(t, back.Root.FindPath("Armature/Hips"), back.Root.FindPath("Body").Renderer.RootBone)
	assert.False(t, back.Root.FindPath("Tail").Active)
	assert.Equal(t, s.Humanoid, back.Humanoid)

	_, err = os.Stat(path)
	require.NoError(t, err)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
