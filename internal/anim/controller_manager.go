package anim

import (
	"fmt"
	"slices"

	"feature-compiler/internal/common"
)

const (
	// NoopClipName names the canonical placeholder clip.
	NoopClipName = "noop"
	// NoopPath is the binding path of the noop clip; no node ever has it.
	NoopPath = "__noop"
)

// LayerName returns the generated name of a layer owned by feature n.
func LayerName(owner int, name string) string {
	return fmt.Sprintf("[VF%d] %s", owner, name)
}

// ParamName returns the generated name of a parameter owned by feature n.
func ParamName(owner int, name string) string {
	return fmt.Sprintf("VF%d_%s", owner, name)
}

// ControllerManager extends a controller and remembers which layers it created.
type ControllerManager struct {
	ctrl    *Controller
	params  *ParamManager
	managed map[*Layer]bool
	clips   map[string]bool
	noop    *Clip
}

// NewControllerManager wraps ctrl, which it will modify in place. Parameters
// declared through the manager are also declared in params.
func NewControllerManager(ctrl *Controller, params *ParamManager) *ControllerManager {
	return &ControllerManager{
		ctrl:    ctrl,
		params:  params,
		managed: map[*Layer]bool{},
		clips:   map[string]bool{},
	}
}

// Controller returns the managed controller.
func (m *ControllerManager) Controller() *Controller {
	return m.ctrl
}

// NewLayer appends a layer owned by feature owner.
func (m *ControllerManager) NewLayer(owner int, name string) *LayerBuilder {
	return m.addLayer(owner, name, false)
}

// NewLayerFirst inserts a layer owned by feature owner below every other layer.
func (m *ControllerManager) NewLayerFirst(owner int, name string) *LayerBuilder {
	return m.addLayer(owner, name, true)
}

func (m *ControllerManager) addLayer(owner int, name string, first bool) *LayerBuilder {
	full := common.UniqueName(LayerName(owner, name), func(s string) bool { return m.ctrl.Layer(s) != nil })
	layer := &Layer{Name: full, Weight: 1}

	if first {
		m.ctrl.Layers = slices.Insert(m.ctrl.Layers, 0, layer)
	} else {
		m.ctrl.Layers = append(m.ctrl.Layers, layer)
	}

	m.managed[layer] = true

	return &LayerBuilder{layer: layer, mgr: m}
}

// IsManaged reports whether the layer was created through this manager.
func (m *ControllerManager) IsManaged(l *Layer) bool {
	return m.managed[l]
}

// ManagedLayers returns the generated layers in controller order.
func (m *ControllerManager) ManagedLayers() []*Layer {
	return slices.DeleteFunc(slices.Clone(m.ctrl.Layers), func(l *Layer) bool { return !m.managed[l] })
}

// UnmanagedLayers returns the pre-existing layers in controller order.
func (m *ControllerManager) UnmanagedLayers() []*Layer {
	return slices.DeleteFunc(slices.Clone(m.ctrl.Layers), func(l *Layer) bool { return m.managed[l] })
}

// NewClip returns a new clip with a name unique among clips made by this manager.
func (m *ControllerManager) NewClip(name string) *Clip {
	full := common.UniqueName(name, func(s string) bool { return m.clips[s] })
	m.clips[full] = true

	return NewClip(full)
}

// NoopClip returns the single placeholder clip. It animates a path that never
// exists, so playing it affects nothing.
func (m *ControllerManager) NoopClip() *Clip {
	if m.noop == nil {
		m.noop = NewClip(NoopClipName)
		m.noop.SetCurve(Binding{Path: NoopPath, Type: "GameObject", Property: "m_IsActive"}, OneFrame(0))
	}

	return m.noop
}

// IsNoop reports whether c is the placeholder clip.
func (m *ControllerManager) IsNoop(c *Clip) bool {
	return c != nil && c == m.noop
}

// ParamOptions configures a declared parameter.
type ParamOptions struct {
	Default float32
	Saved   bool
	Synced  bool
	// Raw keeps the name as given instead of prefixing it with the owner.
	Raw bool
}

// Param is a handle on a declared parameter.
type Param struct {
	Name string
	Type ParamType
}

// IsTrue is the condition "bool parameter is set".
func (p Param) IsTrue() Condition { return Condition{Mode: CondIf, Parameter: p.Name} }

// IsFalse is the condition "bool parameter is clear".
func (p Param) IsFalse() Condition { return Condition{Mode: CondIfNot, Parameter: p.Name} }

// NewBool declares a bool parameter owned by feature owner.
func (m *ControllerManager) NewBool(owner int, name string, opts ParamOptions) (Param, error) {
	return m.declare(owner, name, ParamBool, opts)
}

func (m *ControllerManager) declare(owner int, name string, typ ParamType, opts ParamOptions) (Param, error) {
	full := name
	if !opts.Raw {
		full = ParamName(owner, name)
	}

	if existing, ok := m.ctrl.Param(full); ok {
		if existing.Type != typ {
			return Param{}, fmt.Errorf("controller parameter %q declared as %s, already exists as %s",
				full, typ, existing.Type)
		}
	} else {
		m.ctrl.Parameters = append(m.ctrl.Parameters, ControllerParam{Name: full, Type: typ, Default: opts.Default})
	}

	err := m.params.Declare(SyncedParam{
		Name:    full,
		Type:    typ,
		Default: opts.Default,
		Saved:   opts.Saved,
		Synced:  opts.Synced,
	})
	if err != nil {
		return Param{}, err
	}

	return Param{Name: full, Type: typ}, nil
}

// LayerBuilder adds states to a generated layer.
type LayerBuilder struct {
	layer *Layer
	mgr   *ControllerManager
}

// Layer returns the layer being built.
func (b *LayerBuilder) Layer() *Layer {
	return b.layer
}

// NewState appends a state with a name unique in the layer. The first state
// becomes the default state. Generated states use the explicit convention.
func (b *LayerBuilder) NewState(name string) *StateBuilder {
	full := common.UniqueName(name, func(s string) bool { return b.layer.State(s) != nil })
	st := &State{Name: full}
	b.layer.States = append(b.layer.States, st)

	if b.layer.DefaultState == "" {
		b.layer.DefaultState = full
	}

	return &StateBuilder{state: st}
}

// StateBuilder configures one state.
type StateBuilder struct {
	state *State
}

// State returns the state being built.
func (s *StateBuilder) State() *State {
	return s.state
}

// WithAnimation sets the clip played by the state.
func (s *StateBuilder) WithAnimation(c *Clip) *StateBuilder {
	s.state.Motion = c
	return s
}

// TransitionsTo adds a transition to other.
func (s *StateBuilder) TransitionsTo(other *StateBuilder) *TransitionBuilder {
	tr := &Transition{To: other.state.Name}
	s.state.Transitions = append(s.state.Transitions, tr)

	return &TransitionBuilder{tr: tr}
}

// TransitionBuilder configures one transition.
type TransitionBuilder struct {
	tr *Transition
}

// When adds conditions that must all hold.
func (t *TransitionBuilder) When(conds ...Condition) *TransitionBuilder {
	t.tr.Conditions = append(t.tr.Conditions, conds...)
	return t
}

// WithExitTime requires the state's clip to have played up to exit.
func (t *TransitionBuilder) WithExitTime(exit float32) *TransitionBuilder {
	t.tr.HasExitTime = true
	t.tr.ExitTime = exit

	return t
}
