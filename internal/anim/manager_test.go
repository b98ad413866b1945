package anim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newManagers() (*ControllerManager, *ParamManager, *Controller, *ParamTable) {
	ctrl := &Controller{Name: "fx"}
	table := &ParamTable{}
	pm := NewParamManager(table)

	return NewControllerManager(ctrl, pm), pm, ctrl, table
}

func TestControllerManagerLayers(t *testing.T) {
	cm, _, ctrl, _ := newManagers()
	ctrl.Layers = append(ctrl.Layers, &Layer{Name: "Base"})

	cm.NewLayer(3, "Toggle")
	cm.NewLayer(3, "Toggle")
	cm.NewLayerFirst(1, "Defaults")

	names := []string{}
	for _, l := range ctrl.Layers {
		names = append(names, l.Name)
	}

	assert.Equal(t, []string{"[VF1] Defaults", "Base", "[VF3] Toggle", "[VF3] Toggle 2"}, names)
	assert.Len(t, cm.ManagedLayers(), 3)
	require.Len(t, cm.UnmanagedLayers(), 1)
	assert.Equal(t, "Base", cm.UnmanagedLayers()[0].Name)
}

func TestLayerBuilderStates(t *testing.T) {
	cm, _, _, _ := newManagers()
	lb := cm.NewLayer(2, "Hat")

	off := lb.NewState("Off")
	on := lb.NewState("On").WithAnimation(cm.NewClip("hat on"))
	param, err := cm.NewBool(2, "Hat", ParamOptions{Synced: true})
	require.NoError(t, err)

	off.TransitionsTo(on).When(param.IsTrue())
	on.TransitionsTo(off).When(param.IsFalse()).WithExitTime(0.5)

	layer := lb.Layer()
	assert.Equal(t, "Off", layer.DefaultState)
	assert.False(t, off.State().WriteDefaults)
	require.Len(t, off.State().Transitions, 1)
	assert.Equal(t, Condition{Mode: CondIf, Parameter: "VF2_Hat"}, off.State().Transitions[0].Conditions[0])
	assert.True(t, on.State().Transitions[0].HasExitTime)
}

func TestControllerManagerParams(t *testing.T) {
	cm, pm, ctrl, table := newManagers()
	ctrl.Parameters = append(ctrl.Parameters, ControllerParam{Name: "VF4_Size", Type: ParamFloat})

	_, err := cm.NewBool(4, "Hat", ParamOptions{Synced: true, Saved: true})
	require.NoError(t, err)
	_, err = cm.NewBool(4, "Hat", ParamOptions{})
	require.NoError(t, err)

	assert.Len(t, ctrl.Parameters, 2)
	assert.Len(t, table.Parameters, 1)
	assert.Equal(t, 1, pm.SyncedBits())

	_, err = cm.NewBool(4, "Size", ParamOptions{})
	assert.Error(t, err)

	p, err := cm.NewBool(0, "Shared", ParamOptions{Raw: true})
	require.NoError(t, err)
	assert.Equal(t, "Shared", p.Name)
}

func TestControllerManagerNoop(t *testing.T) {
	cm, _, _, _ := newManagers()

	noop := cm.NoopClip()
	assert.Same(t, noop, cm.NoopClip())
	assert.True(t, cm.IsNoop(noop))
	assert.False(t, cm.IsNoop(cm.NewClip(NoopClipName)))
	assert.Equal(t, NoopPath, noop.Floats[0].Path)
}

func TestParamManagerDeclare(t *testing.T) {
	pm := NewParamManager(&ParamTable{})

	require.NoError(t, pm.DeclareAll([]SyncedParam{
		{Name: "A", Type: ParamBool},
		{Name: "A", Type: ParamBool, Synced: true},
	}))

	p, ok := pm.Lookup("A")
	require.True(t, ok)
	assert.True(t, p.Synced)
	assert.Len(t, pm.Table().Parameters, 1)

	assert.Error(t, pm.Declare(SyncedParam{Name: "A", Type: ParamFloat}))
}
