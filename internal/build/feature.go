package build

import (
	"fmt"

	"feature-compiler/internal/feature"
	"feature-compiler/internal/scene"
)

// Feature is one occurrence of a descriptor during a build.
type Feature struct {
	// ID is unique within the build and increases in collection order.
	ID         int
	Node       *scene.Node
	Descriptor feature.Descriptor

	session *Session
}

// Label identifies the feature in diagnostics, e.g. "toggle#3".
func (f *Feature) Label() string {
	return fmt.Sprintf("%s#%d", f.Descriptor.Kind(), f.ID)
}

// NodePath returns the root-relative path of the feature's node.
func (f *Feature) NodePath() string {
	return f.Node.Path()
}

// AddFeature adds a descriptor to the same node. Its actions join the running
// queue and run before the build completes.
func (f *Feature) AddFeature(d feature.Descriptor) {
	f.session.addFeature(d, f.Node)
}

// Warn records a recoverable problem with this feature.
func (f *Feature) Warn(code, message string) {
	f.session.Diags.AddWarning(code, message, f.Label(), f.NodePath())
	f.session.Logger.Warn(message, "code", code, "feature", f.Label(), "node", f.NodePath())
}

// Processor interprets one feature.
type Processor interface {
	// Actions returns the work the feature contributes to the build.
	Actions() []Action
}

// Factory creates the processor for a feature. An error marks the descriptor
// as unusable; the build warns and skips it.
type Factory func(f *Feature) (Processor, error)

// Registry maps every descriptor kind to its factory.
type Registry map[feature.Kind]Factory

// Missing returns the known kinds without a factory.
func (r Registry) Missing() []feature.Kind {
	var out []feature.Kind

	for _, k := range feature.Kinds() {
		if r[k] == nil {
			out = append(out, k)
		}
	}

	return out
}
