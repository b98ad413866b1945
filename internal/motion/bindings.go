package motion

import (
	"fmt"
	"strconv"
	"strings"
)

// Component type names used in bindings.
const (
	TypeGameObject = "GameObject"
	TypeTransform  = "Transform"
	TypeSkinned    = "SkinnedMeshRenderer"
	TypeRenderer   = "Renderer"
	TypePhysBone   = "PhysBone"
)

// Property names used in bindings.
const (
	PropActive         = "m_IsActive"
	PropEnabled        = "m_Enabled"
	PropScalePrefix    = "m_LocalScale."
	PropBlendPrefix    = "blendShape."
	PropMaterialPrefix = "material."
	PropFlipbookFrame  = "_FlipbookCurrentFrame"
)

// materialSlotProp returns the object property of material slot i.
func materialSlotProp(i int) string {
	return fmt.Sprintf("m_Materials.Array.data[%d]", i)
}

// parseMaterialSlot extracts i from "m_Materials.Array.data[i]".
func parseMaterialSlot(prop string) (int, bool) {
	rest, ok := strings.CutPrefix(prop, "m_Materials.Array.data[")
	if !ok {
		return 0, false
	}

	rest, ok = strings.CutSuffix(rest, "]")
	if !ok {
		return 0, false
	}

	i, err := strconv.Atoi(rest)
	if err != nil || i < 0 {
		return 0, false
	}

	return i, true
}
