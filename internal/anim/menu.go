package anim

// ControlType is the kind of a menu control.
type ControlType string

const (
	ControlToggle  ControlType = "toggle"
	ControlButton  ControlType = "button"
	ControlRadial  ControlType = "radial"
	ControlSubMenu ControlType = "submenu"
)

// Menu is one page of controls.
type Menu struct {
	Controls []*Control `yaml:"controls,omitempty"`
}

// Control is a menu entry. Submenus carry SubMenu; the others drive Parameter.
type Control struct {
	Name      string      `yaml:"name"`
	Type      ControlType `yaml:"type"`
	Parameter string      `yaml:"parameter,omitempty"`
	Value     float32     `yaml:"value,omitempty"`
	Icon      string      `yaml:"icon,omitempty"`
	SubMenu   *Menu       `yaml:"submenu,omitempty"`
}

// Control returns the first control with the given name, or nil.
func (m *Menu) Control(name string) *Control {
	for _, c := range m.Controls {
		if c.Name == name {
			return c
		}
	}

	return nil
}

// Walk calls fun for every control in the tree, depth-first.
func (m *Menu) Walk(fun func(*Control)) {
	for _, c := range m.Controls {
		fun(c)

		if c.SubMenu != nil {
			c.SubMenu.Walk(fun)
		}
	}
}

// NumControls returns the number of controls in the whole tree.
func (m *Menu) NumControls() int {
	n := 0
	m.Walk(func(*Control) { n++ })

	return n
}
