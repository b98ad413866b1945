package rewrite

import (
	"fmt"
	"strings"

	"feature-compiler/internal/anim"
	"feature-compiler/internal/common"
)

// Entry is one old prefix and its replacement.
type Entry struct {
	Old string
	New string
}

// Mapping is an ordered set of prefix replacements.
type Mapping struct {
	entries []Entry
	index   map[string]int
}

// NewMapping returns an empty mapping.
func NewMapping() *Mapping {
	return &Mapping{index: map[string]int{}}
}

// Add records that old now lives at to. Mapping the same prefix twice to
// different places is an error; an identical repeat is ignored.
func (m *Mapping) Add(old, to string) error {
	if old == "" {
		return fmt.Errorf("cannot remap the scene root to %q", to)
	}

	if i, ok := m.index[old]; ok {
		if m.entries[i].New == to {
			return nil
		}

		return fmt.Errorf("path %q already maps to %q, cannot map it to %q", old, m.entries[i].New, to)
	}

	m.index[old] = len(m.entries)
	m.entries = append(m.entries, Entry{Old: old, New: to})

	return nil
}

// Len returns the number of entries.
func (m *Mapping) Len() int {
	return len(m.entries)
}

// Entries returns the entries in the order they were added.
func (m *Mapping) Entries() []Entry {
	return append([]Entry(nil), m.entries...)
}

// Rewrite returns the relocated path and true when path matches an entry.
func (m *Mapping) Rewrite(path string) (string, bool) {
	best := -1

	for i, e := range m.entries {
		if path != e.Old && !strings.HasPrefix(path, e.Old+common.PathSeparator) {
			continue
		}

		if best < 0 || len(e.Old) > len(m.entries[best].Old) {
			best = i
		}
	}

	if best < 0 {
		return "", false
	}

	e := m.entries[best]

	return e.New + path[len(e.Old):], true
}

// RewriteClip relocates every matching binding of c and returns the count.
func (m *Mapping) RewriteClip(c *anim.Clip) int {
	if len(m.entries) == 0 || c == nil {
		return 0
	}

	return c.RebindPaths(m.Rewrite)
}

// RewriteLayers relocates the clips of every layer, each distinct clip once.
func (m *Mapping) RewriteLayers(layers []*anim.Layer) int {
	seen := map[*anim.Clip]bool{}
	moved := 0

	for _, l := range layers {
		l.ForEachClip(func(c *anim.Clip) {
			if seen[c] {
				return
			}

			seen[c] = true
			moved += m.RewriteClip(c)
		})
	}

	return moved
}
