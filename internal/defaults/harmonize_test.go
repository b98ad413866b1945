package defaults

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feature-compiler/internal/anim"
	"feature-compiler/internal/diagnostic"
	"feature-compiler/internal/motion"
	"feature-compiler/internal/scene"
)

type fixture struct {
	root  *scene.Node
	ctrl  *anim.Controller
	cm    *anim.ControllerManager
	h     *Harmonizer
	diags *diagnostic.Diagnostics
}

// newFixture builds a controller with one pre-existing layer holding on
// defaults-convention states and off explicit ones, plus one generated layer.
func newFixture(on, off int, force bool) *fixture {
	root := scene.NewNode("Avatar")
	hat := root.NewChild("Hat")
	hat.Active = false
	body := root.NewChild("Body")
	body.Renderer = &scene.Renderer{
		Skinned:     true,
		BlendShapes: []scene.BlendShape{{Name: "Smile", Weight: 30}},
		Materials:   []*scene.Material{{Name: "Skin"}},
	}

	mb := motion.NewBuilder(root)

	userClip := anim.NewClip("user")
	mb.BlendShape(userClip, body, "Smile", 100)
	mb.Material(userClip, body, 0, "Red")

	user := &anim.Layer{Name: "User"}
	for i := range on {
		user.States = append(user.States, &anim.State{Name: fmt.Sprintf("on%d", i), WriteDefaults: true, Motion: userClip})
	}

	for i := range off {
		user.States = append(user.States, &anim.State{Name: fmt.Sprintf("off%d", i)})
	}

	ctrl := &anim.Controller{Layers: []*anim.Layer{user}}
	cm := anim.NewControllerManager(ctrl, anim.NewParamManager(&anim.ParamTable{}))

	gen := cm.NewLayer(1, "Hat")
	gen.NewState("Off")
	onClip := cm.NewClip("hat on")
	mb.Enable(onClip, hat, true)
	gen.NewState("On").WithAnimation(onClip)

	diags := &diagnostic.Diagnostics{}

	return &fixture{
		root:  root,
		ctrl:  ctrl,
		cm:    cm,
		diags: diags,
		h: &Harmonizer{
			Controller: cm,
			Motions:    mb,
			Clip:       cm.NewClip("Defaults"),
			Force:      force,
			Diags:      diags,
		},
	}
}

func allStatesUse(t *testing.T, ctrl *anim.Controller, on bool) {
	t.Helper()

	ctrl.ForEachState(func(l *anim.Layer, s *anim.State) {
		assert.Equal(t, on, s.WriteDefaults, "%s.%s", l.Name, s.Name)
	})
}

func TestHarmonizeMajorityExplicit(t *testing.T) {
	f := newFixture(4, 6, false)

	rep := f.h.Run()

	assert.Equal(t, ConventionExplicit, rep.Convention)
	assert.Equal(t, 4, rep.DefaultsOn)
	assert.Equal(t, 6, rep.DefaultsOff)
	assert.Equal(t, []string{"User.on0", "User.on1", "User.on2", "User.on3"}, rep.Minority)

	require.True(t, f.diags.HasWarning(CodeMixedConventions))
	assert.Contains(t, f.diags.Warnings[0].Message, "User.on3")

	allStatesUse(t, f.ctrl, false)

	f.ctrl.ForEachState(func(_ *anim.Layer, s *anim.State) {
		assert.NotNil(t, s.Motion, s.Name)
	})
}

// Ties between the conventions resolve to the defaults convention.
func TestHarmonizeTieFavoursDefaults(t *testing.T) {
	f := newFixture(3, 3, false)

	rep := f.h.Run()

	assert.Equal(t, ConventionDefaults, rep.Convention)
	assert.Equal(t, []string{"User.off0", "User.off1", "User.off2"}, rep.Minority)
	allStatesUse(t, f.ctrl, true)
	assert.Nil(t, f.ctrl.Layer("User").State("off0").Motion)
}

func TestHarmonizeNoExistingStates(t *testing.T) {
	f := newFixture(0, 0, false)

	rep := f.h.Run()

	assert.Equal(t, ConventionExplicit, rep.Convention)
	assert.Empty(t, f.diags.Warnings)
	allStatesUse(t, f.ctrl, false)
}

func TestHarmonizeUnanimousDefaults(t *testing.T) {
	f := newFixture(2, 0, false)

	rep := f.h.Run()

	assert.Equal(t, ConventionDefaults, rep.Convention)
	assert.Empty(t, rep.Minority)
	assert.False(t, f.diags.HasWarning(CodeMixedConventions))
	allStatesUse(t, f.ctrl, true)
}

func TestHarmonizeForced(t *testing.T) {
	f := newFixture(5, 1, true)

	rep := f.h.Run()

	assert.True(t, rep.Forced)
	assert.Equal(t, ConventionExplicit, rep.Convention)
	allStatesUse(t, f.ctrl, false)

	off := f.ctrl.Layer("User").State("off0")
	assert.True(t, f.cm.IsNoop(off.Motion))
}

func TestHarmonizeCapturesRestingValues(t *testing.T) {
	f := newFixture(1, 1, false)

	rep := f.h.Run()

	require.Same(t, rep.Layer, f.ctrl.Layers[0])
	assert.Equal(t, "[VF0] Defaults", rep.Layer.Name)
	require.Len(t, rep.Layer.States, 1)
	clip := rep.Layer.States[0].Motion
	require.Same(t, f.h.Clip, clip)

	active, ok := clip.Curve(anim.Binding{Path: "Hat", Type: motion.TypeGameObject, Property: motion.PropActive})
	require.True(t, ok)
	assert.Equal(t, float32(0), active[0].Value)

	smile, ok := clip.Curve(anim.Binding{Path: "Body", Type: motion.TypeSkinned, Property: "blendShape.Smile"})
	require.True(t, ok)
	assert.Equal(t, float32(30), smile[0].Value)

	mat, ok := clip.ObjectCurve(anim.Binding{Path: "Body", Type: motion.TypeRenderer, Property: "m_Materials.Array.data[0]"})
	require.True(t, ok)
	assert.Equal(t, "Skin", mat[0].Value)

	assert.Equal(t, 3, rep.Captured)
}

func TestHarmonizeWarnsOnMissingResting(t *testing.T) {
	f := newFixture(0, 1, false)
	ghost := anim.NewClip("ghost")
	ghost.SetCurve(anim.Binding{Path: "Gone", Type: motion.TypeGameObject, Property: motion.PropActive}, anim.OneFrame(1))
	f.ctrl.Layer("User").States[0].Motion = ghost

	f.h.Run()

	assert.True(t, f.diags.HasWarning(CodeNoRestingValue))
}

func TestConventionString(t *testing.T) {
	assert.Equal(t, "explicit", ConventionExplicit.String())
	assert.Equal(t, "defaults", ConventionDefaults.String())
	assert.Equal(t, "unknown", Convention(7).String())
}
