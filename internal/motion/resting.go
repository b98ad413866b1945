package motion

import (
	"strings"

	"feature-compiler/internal/anim"
	"feature-compiler/internal/scene"
)

// Resting returns the value a scalar binding has when nothing animates it.
// It reports false when the binding does not resolve to a property of the scene.
func (b *Builder) Resting(bind anim.Binding) (float32, bool) {
	n := b.root.FindPath(bind.Path)
	if n == nil {
		return 0, false
	}

	switch bind.Type {
	case TypeGameObject:
		if bind.Property == PropActive {
			return boolValue(n.Active), true
		}
	case TypeTransform:
		if axis, ok := strings.CutPrefix(bind.Property, PropScalePrefix); ok {
			return vectorAxis(n.Transform.Scale, axis)
		}
	case TypePhysBone:
		if bind.Property == PropEnabled && n.PhysBone != nil {
			return boolValue(n.PhysBone.Enabled), true
		}
	case TypeSkinned, TypeRenderer:
		return restingRenderer(n.Renderer, bind.Property)
	}

	return 0, false
}

// RestingObject returns the asset an object binding references when nothing
// animates it.
func (b *Builder) RestingObject(bind anim.Binding) (string, bool) {
	n := b.root.FindPath(bind.Path)
	if n == nil || n.Renderer == nil || bind.Type != TypeRenderer {
		return "", false
	}

	slot, ok := parseMaterialSlot(bind.Property)
	if !ok || slot >= len(n.Renderer.Materials) || n.Renderer.Materials[slot] == nil {
		return "", false
	}

	return n.Renderer.Materials[slot].Name, true
}

func restingRenderer(r *scene.Renderer, prop string) (float32, bool) {
	if r == nil {
		return 0, false
	}

	if name, ok := strings.CutPrefix(prop, PropBlendPrefix); ok {
		if i := r.BlendShapeIndex(name); i >= 0 {
			return r.BlendShapes[i].Weight, true
		}

		return 0, false
	}

	if name, ok := strings.CutPrefix(prop, PropMaterialPrefix); ok {
		for _, m := range r.Materials {
			if m == nil {
				continue
			}

			if v, found := m.Floats[name]; found {
				return v, true
			}
		}

		// Unset shader properties read as zero.
		return 0, len(r.Materials) > 0
	}

	return 0, false
}

func vectorAxis(v scene.Vector3, axis string) (float32, bool) {
	switch axis {
	case "x":
		return v.X, true
	case "y":
		return v.Y, true
	case "z":
		return v.Z, true
	default:
		return 0, false
	}
}

func boolValue(b bool) float32 {
	if b {
		return 1
	}

	return 0
}
