package feature

import (
	"errors"
	"fmt"
)

// Validate checks the shape of a descriptor without looking at the scene.
// A failing descriptor is skipped by the build with a warning.
func Validate(d Descriptor) error {
	switch m := d.Model.(type) {
	case nil:
		return errors.New("empty feature")
	case ArmatureLink:
		if m.PropBone == "" {
			return errors.New("prop_bone is required")
		}

		if m.BoneOnAvatar == "" && m.BonePathOnAvatar == "" {
			return errors.New("one of bone_on_avatar or bone_path_on_avatar is required")
		}

		if mode := m.EffectiveMode(); mode != LinkBoneMerge && mode != LinkRigidAttach {
			return fmt.Errorf("unknown link mode %q", mode)
		}
	case Toggle:
		if m.Name == "" {
			return errors.New("toggle name is required")
		}

		return validateState(m.State)
	case BlendShapeSet:
		if len(m.BlendShapes) == 0 {
			return errors.New("blend_shapes is empty")
		}
	case MaterialSwap:
		if m.Renderer == "" || m.Material == "" {
			return errors.New("renderer and material are required")
		}

		if m.Slot < 0 {
			return fmt.Errorf("negative material slot %d", m.Slot)
		}
	case ScaleSet:
		if m.Obj == "" {
			return errors.New("obj is required")
		}

		if m.Scale <= 0 {
			return fmt.Errorf("scale must be positive, got %g", m.Scale)
		}
	case FrameSelect:
		if m.Renderer == "" {
			return errors.New("renderer is required")
		}
	case PhysBoneReset:
		if m.Param == "" {
			return errors.New("param is required")
		}
	case HapticPlug:
		if !m.AutoLength && m.Length <= 0 {
			return errors.New("length must be positive unless auto_length is set")
		}

		if !m.AutoRadius && m.Radius <= 0 {
			return errors.New("radius must be positive unless auto_radius is set")
		}
	case HapticSocket:
		if m.Mode != "" && m.Mode != SocketHole && m.Mode != SocketRing {
			return fmt.Errorf("unknown socket mode %q", m.Mode)
		}
	case ForceExplicitValues:
	}

	return nil
}

func validateState(s State) error {
	for i, a := range s.Actions {
		switch a.Type {
		case ActionObjectToggle, ActionScale, ActionFlipbook, ActionPhysBoneEnable:
			if a.Obj == "" {
				return fmt.Errorf("action %d (%s): obj is required", i, a.Type)
			}
		case ActionMaterial:
			if a.Obj == "" || a.Material == "" {
				return fmt.Errorf("action %d (%s): obj and material are required", i, a.Type)
			}
		case ActionBlendShape:
			if a.BlendShape == "" {
				return fmt.Errorf("action %d (%s): blend_shape is required", i, a.Type)
			}
		case ActionAnimationClip:
			if a.Clip == nil {
				return fmt.Errorf("action %d (%s): clip is required", i, a.Type)
			}
		default:
			return fmt.Errorf("action %d: unknown type %q", i, a.Type)
		}
	}

	return nil
}
