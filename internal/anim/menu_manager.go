package anim

import (
	"fmt"
	"strings"
)

// MenuManager adds controls to a menu tree.
type MenuManager struct {
	root *Menu
}

// NewMenuManager wraps root, which it will modify in place.
func NewMenuManager(root *Menu) *MenuManager {
	return &MenuManager{root: root}
}

// Menu returns the managed root page.
func (m *MenuManager) Menu() *Menu {
	return m.root
}

// NewToggle adds a toggle at path, a slash separated list of submenu names
// ending with the control name.
func (m *MenuManager) NewToggle(path string, param Param, icon string) (*Control, error) {
	return m.add(path, &Control{Type: ControlToggle, Parameter: param.Name, Value: 1, Icon: icon})
}

func (m *MenuManager) add(path string, ctl *Control) (*Control, error) {
	parts := splitMenuPath(path)
	if len(parts) == 0 {
		return nil, fmt.Errorf("empty menu path")
	}

	page := m.root
	for _, name := range parts[:len(parts)-1] {
		var err error
		if page, err = subMenu(page, name); err != nil {
			return nil, fmt.Errorf("menu path %q: %w", path, err)
		}
	}

	ctl.Name = parts[len(parts)-1]
	page.Controls = append(page.Controls, ctl)

	return ctl, nil
}

// MergeMenu merges copies of other's controls into the page at prefix. Submenus
// with matching names are merged recursively; other controls are appended.
// other is left untouched.
func (m *MenuManager) MergeMenu(prefix string, other *Menu) error {
	if other == nil {
		return nil
	}

	page := m.root
	for _, name := range splitMenuPath(prefix) {
		var err error
		if page, err = subMenu(page, name); err != nil {
			return fmt.Errorf("menu path %q: %w", prefix, err)
		}
	}

	mergeInto(page, other)

	return nil
}

func mergeInto(dst, src *Menu) {
	for _, c := range src.Controls {
		if c.Type == ControlSubMenu {
			if existing := dst.Control(c.Name); existing != nil && existing.Type == ControlSubMenu {
				if existing.SubMenu == nil {
					existing.SubMenu = &Menu{}
				}

				if c.SubMenu != nil {
					mergeInto(existing.SubMenu, c.SubMenu)
				}

				continue
			}
		}

		cp := *c
		if c.SubMenu != nil {
			cp.SubMenu = &Menu{}
			mergeInto(cp.SubMenu, c.SubMenu)
		}

		dst.Controls = append(dst.Controls, &cp)
	}
}

func subMenu(page *Menu, name string) (*Menu, error) {
	if existing := page.Control(name); existing != nil {
		if existing.Type != ControlSubMenu {
			return nil, fmt.Errorf("%q is a %s, not a submenu", name, existing.Type)
		}

		if existing.SubMenu == nil {
			existing.SubMenu = &Menu{}
		}

		return existing.SubMenu, nil
	}

	sub := &Menu{}
	page.Controls = append(page.Controls, &Control{Name: name, Type: ControlSubMenu, SubMenu: sub})

	return sub, nil
}

func splitMenuPath(path string) []string {
	var out []string

	for _, p := range strings.Split(path, "/") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}

	return out
}
