package anim

import "fmt"

// ParamManager declares entries in a parameter table.
type ParamManager struct {
	table *ParamTable
}

// NewParamManager wraps table, which it will modify in place.
func NewParamManager(table *ParamTable) *ParamManager {
	return &ParamManager{table: table}
}

// Table returns the managed table.
func (m *ParamManager) Table() *ParamTable {
	return m.table
}

// Declare adds p to the table. Declaring an existing name with the same type is
// a no-op apart from upgrading the synced and saved flags; a different type is an error.
func (m *ParamManager) Declare(p SyncedParam) error {
	for i := range m.table.Parameters {
		existing := &m.table.Parameters[i]
		if existing.Name != p.Name {
			continue
		}

		if existing.Type != p.Type {
			return fmt.Errorf("parameter %q declared as %s, already exists as %s", p.Name, p.Type, existing.Type)
		}

		existing.Synced = existing.Synced || p.Synced
		existing.Saved = existing.Saved || p.Saved

		return nil
	}

	m.table.Parameters = append(m.table.Parameters, p)

	return nil
}

// DeclareAll declares every row in order and stops at the first conflict.
func (m *ParamManager) DeclareAll(rows []SyncedParam) error {
	for _, row := range rows {
		if err := m.Declare(row); err != nil {
			return err
		}
	}

	return nil
}

// Lookup returns the entry with the given name.
func (m *ParamManager) Lookup(name string) (SyncedParam, bool) {
	return m.table.Param(name)
}

// SyncedBits sums the synced cost of the table.
func (m *ParamManager) SyncedBits() int {
	return m.table.SyncedBits()
}
