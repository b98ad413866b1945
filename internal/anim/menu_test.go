package anim

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMenuManagerPaths(t *testing.T) {
	mm := NewMenuManager(&Menu{})
	p := Param{Name: "VF1_Hat", Type: ParamBool}

	_, err := mm.NewToggle("Clothes/Hats/Top Hat", p, "")
	require.NoError(t, err)
	_, err = mm.NewToggle("Clothes/Reset", p, "")
	require.NoError(t, err)

	clothes := mm.Menu().Control("Clothes")
	require.NotNil(t, clothes)
	assert.Equal(t, ControlSubMenu, clothes.Type)
	assert.Len(t, clothes.SubMenu.Controls, 2)
	assert.NotNil(t, clothes.SubMenu.Control("Hats").SubMenu.Control("Top Hat"))

	_, err = mm.NewToggle("Clothes/Reset/Inner", p, "")
	assert.Error(t, err)

	_, err = mm.NewToggle("", p, "")
	assert.Error(t, err)
}

func TestMenuManagerMerge(t *testing.T) {
	mm := NewMenuManager(&Menu{Controls: []*Control{
		{Name: "Props", Type: ControlSubMenu, SubMenu: &Menu{Controls: []*Control{{Name: "A", Type: ControlToggle}}}},
	}})

	other := &Menu{Controls: []*Control{
		{Name: "Props", Type: ControlSubMenu, SubMenu: &Menu{Controls: []*Control{{Name: "B", Type: ControlToggle}}}},
		{Name: "C", Type: ControlButton},
	}}

	require.NoError(t, mm.MergeMenu("", other))

	assert.Len(t, mm.Menu().Controls, 2)
	assert.Len(t, mm.Menu().Control("Props").SubMenu.Controls, 2)

	mm.Menu().Control("C").Name = "Renamed"
	assert.NotNil(t, other.Control("C"))
	assert.Len(t, other.Control("Props").SubMenu.Controls, 1)
}

func TestSplitAndJoinMenus(t *testing.T) {
	m := &Menu{}
	for i := range 20 {
		m.Controls = append(m.Controls, &Control{Name: fmt.Sprintf("c%d", i), Type: ControlToggle})
	}

	SplitMenus(m, 8)

	page := m
	pages := 0
	for page != nil {
		pages++
		assert.LessOrEqual(t, len(page.Controls), 8)

		next := page.Control(NextPageName)
		if next == nil {
			break
		}
		page = next.SubMenu
	}

	assert.Equal(t, 3, pages)
	assert.Equal(t, 22, m.NumControls())

	JoinMenus(m)
	require.Len(t, m.Controls, 20)
	assert.Equal(t, "c19", m.Controls[19].Name)
}

func TestPurgeGenerated(t *testing.T) {
	tr := Triple{
		Controller: &Controller{
			Parameters: []ControllerParam{{Name: "VF3_Hat"}, {Name: "Gesture"}},
			Layers:     []*Layer{{Name: "[VF3] Hat"}, {Name: "Base"}},
		},
		Params: &ParamTable{Parameters: []SyncedParam{{Name: "VF3_Hat"}, {Name: "Gesture"}}},
		Menu: &Menu{Controls: []*Control{
			{Name: "Gen", Type: ControlSubMenu, SubMenu: &Menu{Controls: []*Control{{Name: "Hat", Parameter: "VF3_Hat"}}}},
			{Name: "Empty", Type: ControlSubMenu, SubMenu: &Menu{}},
			{Name: "Wave", Type: ControlButton, Parameter: "Gesture"},
		}},
	}

	removed := PurgeGenerated(tr)

	assert.Equal(t, 5, removed)
	assert.Len(t, tr.Controller.Layers, 1)
	assert.Len(t, tr.Controller.Parameters, 1)
	assert.Len(t, tr.Params.Parameters, 1)
	assert.Len(t, tr.Menu.Controls, 2)
	assert.NotNil(t, tr.Menu.Control("Empty"))
}

func TestIsGeneratedNames(t *testing.T) {
	assert.True(t, IsGeneratedLayer(LayerName(12, "x")))
	assert.False(t, IsGeneratedLayer("[VF] x"))
	assert.True(t, IsGeneratedParam(ParamName(0, "True")))
	assert.False(t, IsGeneratedParam("VFX_y"))
}
