package anim

import (
	"fmt"

	"github.com/jinzhu/copier"

	"feature-compiler/internal/diagnostic"
)

// Triple is the controller, menu and parameter table attached to a scene.
// Any of them may be nil when the scene has none.
type Triple struct {
	Controller *Controller `yaml:"controller,omitempty"`
	Menu       *Menu       `yaml:"menu,omitempty"`
	Params     *ParamTable `yaml:"params,omitempty"`
	// Generated marks artifacts committed by a build.
	Generated bool `yaml:"generated,omitempty"`
}

// Clone returns a deep copy isolated from t.
func (t Triple) Clone() (Triple, error) {
	var out Triple

	if err := copier.CopyWithOption(&out, &t, copier.Option{DeepCopy: true}); err != nil {
		return Triple{}, fmt.Errorf("copying artifacts: %w", err)
	}

	return out, nil
}

// Validate checks that every parameter referenced by the menu or the controller
// exists in the parameter table with a matching type.
func (t Triple) Validate() *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}

	if t.Params == nil {
		if (t.Controller != nil && len(t.Controller.Parameters) > 0) || (t.Menu != nil && t.Menu.NumControls() > 0) {
			res.AddError("params_missing", "artifacts reference parameters but have no parameter table", "", "")
		}

		return res
	}

	if c := t.Controller; c != nil {
		for _, p := range c.Parameters {
			entry, ok := t.Params.Param(p.Name)
			if !ok {
				res.AddError("param_undeclared",
					fmt.Sprintf("controller parameter %q is not in the parameter table", p.Name), "", "")

				continue
			}

			if entry.Type != p.Type {
				res.AddError("param_type_mismatch",
					fmt.Sprintf("controller parameter %q is %s but the table says %s", p.Name, p.Type, entry.Type), "", "")
			}
		}

		c.ForEachState(func(l *Layer, s *State) {
			for _, tr := range s.Transitions {
				for _, cond := range tr.Conditions {
					if _, ok := c.Param(cond.Parameter); !ok {
						res.AddError("condition_param_undeclared",
							fmt.Sprintf("transition %s.%s -> %s uses undeclared parameter %q",
								l.Name, s.Name, tr.To, cond.Parameter), "", "")
					}
				}

				if l.State(tr.To) == nil {
					res.AddError("transition_target_missing",
						fmt.Sprintf("transition %s.%s -> %s targets a missing state", l.Name, s.Name, tr.To), "", "")
				}
			}
		})
	}

	if t.Menu != nil {
		t.Menu.Walk(func(ctl *Control) {
			if ctl.Type == ControlSubMenu || ctl.Parameter == "" {
				return
			}

			entry, ok := t.Params.Param(ctl.Parameter)
			if !ok {
				res.AddError("menu_param_undeclared",
					fmt.Sprintf("menu control %q uses undeclared parameter %q", ctl.Name, ctl.Parameter), "", "")

				return
			}

			if !controlAccepts(ctl.Type, entry.Type) {
				res.AddError("menu_param_type",
					fmt.Sprintf("menu control %q (%s) cannot drive %s parameter %q",
						ctl.Name, ctl.Type, entry.Type, ctl.Parameter), "", "")
			}
		})
	}

	return res
}

func controlAccepts(ct ControlType, pt ParamType) bool {
	switch ct {
	case ControlRadial:
		return pt == ParamFloat
	case ControlToggle, ControlButton:
		return pt == ParamBool || pt == ParamInt
	default:
		return true
	}
}
