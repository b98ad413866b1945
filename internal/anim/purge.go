package anim

import (
	"regexp"
	"slices"
)

var (
	generatedLayer = regexp.MustCompile(`^\[VF\d+\] `)
	generatedParam = regexp.MustCompile(`^VF\d+_`)
)

// IsGeneratedLayer reports whether name follows the generated layer scheme.
func IsGeneratedLayer(name string) bool {
	return generatedLayer.MatchString(name)
}

// IsGeneratedParam reports whether name follows the generated parameter scheme.
func IsGeneratedParam(name string) bool {
	return generatedParam.MatchString(name)
}

// PurgeGenerated removes layers, parameters and menu controls left behind by an
// earlier build and returns how many entries were removed.
func PurgeGenerated(t Triple) int {
	removed := 0

	if c := t.Controller; c != nil {
		before := len(c.Layers) + len(c.Parameters)
		c.Layers = slices.DeleteFunc(c.Layers, func(l *Layer) bool { return IsGeneratedLayer(l.Name) })
		c.Parameters = slices.DeleteFunc(c.Parameters, func(p ControllerParam) bool { return IsGeneratedParam(p.Name) })
		removed += before - len(c.Layers) - len(c.Parameters)
	}

	if p := t.Params; p != nil {
		before := len(p.Parameters)
		p.Parameters = slices.DeleteFunc(p.Parameters, func(sp SyncedParam) bool { return IsGeneratedParam(sp.Name) })
		removed += before - len(p.Parameters)
	}

	if t.Menu != nil {
		removed += purgeMenu(t.Menu)
	}

	return removed
}

func purgeMenu(m *Menu) int {
	removed := 0
	emptied := map[*Control]bool{}

	for _, c := range m.Controls {
		if c.Type == ControlSubMenu && c.SubMenu != nil && len(c.SubMenu.Controls) > 0 {
			removed += purgeMenu(c.SubMenu)
			emptied[c] = len(c.SubMenu.Controls) == 0
		}
	}

	before := len(m.Controls)
	m.Controls = slices.DeleteFunc(m.Controls, func(c *Control) bool {
		if c.Type == ControlSubMenu {
			return emptied[c]
		}

		return IsGeneratedParam(c.Parameter)
	})

	return removed + before - len(m.Controls)
}
