package anim

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"feature-compiler/internal/common"
)

// ParamType is the value type of a parameter.
type ParamType int

const (
	ParamBool ParamType = iota
	ParamInt
	ParamFloat
)

// String returns the YAML name of the type.
func (t ParamType) String() string {
	switch t {
	case ParamBool:
		return "bool"
	case ParamInt:
		return "int"
	case ParamFloat:
		return "float"
	default:
		return common.UnknownStr
	}
}

// Bits is the synced cost of one parameter of this type.
func (t ParamType) Bits() int {
	if t == ParamBool {
		return 1
	}

	return 8
}

// ParseParamType parses a YAML type name.
func ParseParamType(s string) (ParamType, error) {
	switch s {
	case "bool":
		return ParamBool, nil
	case "int":
		return ParamInt, nil
	case "float":
		return ParamFloat, nil
	default:
		return 0, fmt.Errorf("unknown parameter type %q", s)
	}
}

// MarshalYAML writes the type by name.
func (t ParamType) MarshalYAML() (any, error) {
	return t.String(), nil
}

// UnmarshalYAML reads the type by name.
func (t *ParamType) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	parsed, err := ParseParamType(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}

	*t = parsed

	return nil
}

// ControllerParam is a parameter declared on the controller.
type ControllerParam struct {
	Name    string    `yaml:"name"`
	Type    ParamType `yaml:"type"`
	Default float32   `yaml:"default,omitempty"`
}

// Controller is a layered state machine.
type Controller struct {
	Name       string            `yaml:"name"`
	Parameters []ControllerParam `yaml:"parameters,omitempty"`
	// Layers are evaluated in order; later layers win.
	Layers []*Layer `yaml:"layers,omitempty"`
}

// Param returns the declared parameter with the given name.
func (c *Controller) Param(name string) (ControllerParam, bool) {
	for _, p := range c.Parameters {
		if p.Name == name {
			return p, true
		}
	}

	return ControllerParam{}, false
}

// Layer returns the layer with the given name, or nil.
func (c *Controller) Layer(name string) *Layer {
	for _, l := range c.Layers {
		if l.Name == name {
			return l
		}
	}

	return nil
}

// ForEachState calls fun for every state of every layer in order.
func (c *Controller) ForEachState(fun func(*Layer, *State)) {
	for _, l := range c.Layers {
		l.ForEachState(func(s *State) { fun(l, s) })
	}
}

// Layer is one state machine of the controller.
type Layer struct {
	Name         string   `yaml:"name"`
	Weight       float32  `yaml:"weight"`
	DefaultState string   `yaml:"default_state,omitempty"`
	States       []*State `yaml:"states,omitempty"`
}

// State returns the state with the given name, or nil.
func (l *Layer) State(name string) *State {
	for _, s := range l.States {
		if s.Name == name {
			return s
		}
	}

	return nil
}

// ForEachState calls fun for every state in order.
func (l *Layer) ForEachState(fun func(*State)) {
	for _, s := range l.States {
		fun(s)
	}
}

// ForEachClip calls fun once for every distinct clip played by the layer.
func (l *Layer) ForEachClip(fun func(*Clip)) {
	seen := map[*Clip]bool{}

	for _, s := range l.States {
		if s.Motion == nil || seen[s.Motion] {
			continue
		}

		seen[s.Motion] = true
		fun(s.Motion)
	}
}

// State is one node of a layer's state machine.
type State struct {
	Name   string `yaml:"name"`
	Motion *Clip  `yaml:"motion,omitempty"`
	// WriteDefaults selects the defaults convention: properties the state does not
	// animate fall back to their resting value. When false the state uses the
	// explicit convention and only writes what its clip animates.
	WriteDefaults bool          `yaml:"write_defaults"`
	Transitions   []*Transition `yaml:"transitions,omitempty"`
}

// ConditionMode is the comparison a condition performs.
type ConditionMode string

const (
	CondIf      ConditionMode = "if"
	CondIfNot   ConditionMode = "if_not"
	CondGreater ConditionMode = "greater"
	CondLess    ConditionMode = "less"
	CondEquals  ConditionMode = "equals"
)

// Condition gates a transition on a parameter.
type Condition struct {
	Mode      ConditionMode `yaml:"mode"`
	Parameter string        `yaml:"parameter"`
	Threshold float32       `yaml:"threshold,omitempty"`
}

// Transition moves a layer from one state to To once every condition holds.
type Transition struct {
	To          string      `yaml:"to"`
	Conditions  []Condition `yaml:"conditions,omitempty"`
	HasExitTime bool        `yaml:"has_exit_time,omitempty"`
	ExitTime    float32     `yaml:"exit_time,omitempty"`
}
