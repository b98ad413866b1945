package anim

// NextPageName names the overflow submenu created by SplitMenus.
const NextPageName = "Next"

// JoinMenus undoes SplitMenus: overflow pages are folded back into their parent
// so the tree can be edited without page limits.
func JoinMenus(m *Menu) {
	if m == nil {
		return
	}

	for {
		n := len(m.Controls)
		if n == 0 {
			break
		}

		last := m.Controls[n-1]
		if last.Type != ControlSubMenu || last.Name != NextPageName || last.SubMenu == nil {
			break
		}

		m.Controls = append(m.Controls[:n-1], last.SubMenu.Controls...)
	}

	for _, c := range m.Controls {
		if c.Type == ControlSubMenu {
			JoinMenus(c.SubMenu)
		}
	}
}

// SplitMenus moves controls beyond limit-1 on any page into a chained "Next"
// submenu so no page holds more than limit controls.
func SplitMenus(m *Menu, limit int) {
	if m == nil || limit < 2 {
		return
	}

	for _, c := range m.Controls {
		if c.Type == ControlSubMenu {
			SplitMenus(c.SubMenu, limit)
		}
	}

	if len(m.Controls) <= limit {
		return
	}

	rest := &Menu{Controls: append([]*Control(nil), m.Controls[limit-1:]...)}
	m.Controls = append(m.Controls[:limit-1:limit-1], &Control{Name: NextPageName, Type: ControlSubMenu, SubMenu: rest})

	SplitMenus(rest, limit)
}
