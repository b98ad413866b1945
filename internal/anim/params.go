package anim

// SyncedParam is one entry of the parameter table.
type SyncedParam struct {
	Name    string    `yaml:"name"`
	Type    ParamType `yaml:"type"`
	Default float32   `yaml:"default,omitempty"`
	Saved   bool      `yaml:"saved,omitempty"`
	Synced  bool      `yaml:"synced"`
}

// ParamTable lists the parameters known to the menu and the controller.
type ParamTable struct {
	Parameters []SyncedParam `yaml:"parameters,omitempty"`
}

// Param returns the entry with the given name.
func (t *ParamTable) Param(name string) (SyncedParam, bool) {
	for _, p := range t.Parameters {
		if p.Name == name {
			return p, true
		}
	}

	return SyncedParam{}, false
}

// SyncedBits sums the synced cost of every synced entry.
func (t *ParamTable) SyncedBits() int {
	bits := 0

	for _, p := range t.Parameters {
		if p.Synced {
			bits += p.Type.Bits()
		}
	}

	return bits
}
