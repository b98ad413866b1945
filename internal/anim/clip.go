package anim

import (
	"fmt"
	"slices"
)

// Binding addresses one animated property: the node path below the scene root,
// the component type and the property name on it.
type Binding struct {
	Path     string `yaml:"path"`
	Type     string `yaml:"type"`
	Property string `yaml:"property"`
}

func (b Binding) String() string {
	return fmt.Sprintf("%s:%s.%s", b.Path, b.Type, b.Property)
}

// Keyframe is a scalar key.
type Keyframe struct {
	Time  float32 `yaml:"t"`
	Value float32 `yaml:"v"`
}

// ObjectKeyframe is an object-reference key; Value names the referenced asset.
type ObjectKeyframe struct {
	Time  float32 `yaml:"t"`
	Value string  `yaml:"v"`
}

// FloatCurve is a scalar curve bound to a property.
type FloatCurve struct {
	Binding `yaml:",inline"`
	Keys    []Keyframe `yaml:"keys"`
}

// ObjectCurve is an object-reference curve bound to a property.
type ObjectCurve struct {
	Binding `yaml:",inline"`
	Keys    []ObjectKeyframe `yaml:"keys"`
}

// Clip is a set of curves. Curves keep the order they were first set in.
type Clip struct {
	Name    string        `yaml:"name"`
	Floats  []FloatCurve  `yaml:"floats,omitempty"`
	Objects []ObjectCurve `yaml:"objects,omitempty"`
}

// NewClip returns an empty clip.
func NewClip(name string) *Clip {
	return &Clip{Name: name}
}

// OneFrame returns a constant curve holding v.
func OneFrame(v float32) []Keyframe {
	return []Keyframe{{Time: 0, Value: v}}
}

// OneObjectFrame returns a constant object curve holding v.
func OneObjectFrame(v string) []ObjectKeyframe {
	return []ObjectKeyframe{{Time: 0, Value: v}}
}

// SetCurve replaces the curve at b, appending it if new. Nil keys remove the curve.
func (c *Clip) SetCurve(b Binding, keys []Keyframe) {
	i := slices.IndexFunc(c.Floats, func(f FloatCurve) bool { return f.Binding == b })

	switch {
	case keys == nil && i >= 0:
		c.Floats = slices.Delete(c.Floats, i, i+1)
	case keys == nil:
	case i >= 0:
		c.Floats[i].Keys = slices.Clone(keys)
	default:
		c.Floats = append(c.Floats, FloatCurve{Binding: b, Keys: slices.Clone(keys)})
	}
}

// Curve returns the scalar curve at b.
func (c *Clip) Curve(b Binding) ([]Keyframe, bool) {
	for _, f := range c.Floats {
		if f.Binding == b {
			return f.Keys, true
		}
	}

	return nil, false
}

// SetObjectCurve replaces the object curve at b, appending it if new. Nil keys remove the curve.
func (c *Clip) SetObjectCurve(b Binding, keys []ObjectKeyframe) {
	i := slices.IndexFunc(c.Objects, func(o ObjectCurve) bool { return o.Binding == b })

	switch {
	case keys == nil && i >= 0:
		c.Objects = slices.Delete(c.Objects, i, i+1)
	case keys == nil:
	case i >= 0:
		c.Objects[i].Keys = slices.Clone(keys)
	default:
		c.Objects = append(c.Objects, ObjectCurve{Binding: b, Keys: slices.Clone(keys)})
	}
}

// ObjectCurve returns the object curve at b.
func (c *Clip) ObjectCurve(b Binding) ([]ObjectKeyframe, bool) {
	for _, o := range c.Objects {
		if o.Binding == b {
			return o.Keys, true
		}
	}

	return nil, false
}

// FloatBindings lists the scalar bindings in order.
func (c *Clip) FloatBindings() []Binding {
	out := make([]Binding, len(c.Floats))
	for i, f := range c.Floats {
		out[i] = f.Binding
	}

	return out
}

// ObjectBindings lists the object bindings in order.
func (c *Clip) ObjectBindings() []Binding {
	out := make([]Binding, len(c.Objects))
	for i, o := range c.Objects {
		out[i] = o.Binding
	}

	return out
}

// IsEmpty reports whether the clip has no curves.
func (c *Clip) IsEmpty() bool {
	return len(c.Floats) == 0 && len(c.Objects) == 0
}

// CopyFrom sets every curve of other onto c, replacing curves at the same binding.
func (c *Clip) CopyFrom(other *Clip) {
	for _, f := range other.Floats {
		c.SetCurve(f.Binding, f.Keys)
	}

	for _, o := range other.Objects {
		c.SetObjectCurve(o.Binding, o.Keys)
	}
}

// Clone returns a deep copy of the clip.
func (c *Clip) Clone() *Clip {
	out := NewClip(c.Name)
	out.CopyFrom(c)

	return out
}

// RebindPaths moves curves to new paths. rebind returns the new path and true
// for the bindings to move; the curve data is left untouched. A moved curve
// replaces any curve already at its new binding, keeping the earlier position.
// It returns the number of curves moved.
func (c *Clip) RebindPaths(rebind func(path string) (string, bool)) int {
	var floats, objects int

	c.Floats, floats = rebindCurves(c.Floats, func(f *FloatCurve) *Binding { return &f.Binding }, rebind)
	c.Objects, objects = rebindCurves(c.Objects, func(o *ObjectCurve) *Binding { return &o.Binding }, rebind)

	return floats + objects
}

func rebindCurves[C any](curves []C, binding func(*C) *Binding, rebind func(string) (string, bool)) ([]C, int) {
	out := make([]C, 0, len(curves))
	at := map[Binding]int{}
	movedTo := map[Binding]bool{}
	moved := 0

	for _, cur := range curves {
		b := binding(&cur)

		p, ok := rebind(b.Path)
		if ok {
			b.Path = p
			moved++
		}

		if j, dup := at[*b]; dup {
			if ok || !movedTo[*b] {
				out[j] = cur
			}

			movedTo[*b] = movedTo[*b] || ok

			continue
		}

		at[*b] = len(out)
		movedTo[*b] = ok
		out = append(out, cur)
	}

	return out, moved
}
