package features

import (
	"fmt"

	"feature-compiler/internal/build"
	"feature-compiler/internal/feature"
)

// Warning codes raised by processors.
const (
	CodeNodeMissing     = "node_missing"
	CodeTargetMissing   = "link_target_missing"
	CodeStateAction     = "state_action_skipped"
	CodeNothingToDo     = "nothing_to_do"
	CodeRendererMissing = "renderer_missing"
	CodeParamMissing    = "param_missing"
)

// Registry returns the processors of every known descriptor kind.
func Registry() build.Registry {
	return build.Registry{
		feature.KindArmatureLink:        newArmatureLink,
		feature.KindToggle:              newToggle,
		feature.KindBlendShapeSet:       newBlendShapeSet,
		feature.KindMaterialSwap:        newMaterialSwap,
		feature.KindScaleSet:            newScaleSet,
		feature.KindFrameSelect:         newFrameSelect,
		feature.KindPhysBoneReset:       newPhysBoneReset,
		feature.KindForceExplicitValues: newForceExplicitValues,
		feature.KindHapticPlug:          newHapticPlug,
		feature.KindHapticSocket:        newHapticSocket,
	}
}

// model extracts the typed model of a feature.
func model[T feature.Model](f *build.Feature) (T, error) {
	m, ok := f.Descriptor.Model.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("%s: unexpected model %T", f.Label(), f.Descriptor.Model)
	}

	return m, nil
}

// actions adapts a list of actions to build.Processor.
type actions []build.Action

func (a actions) Actions() []build.Action { return a }
