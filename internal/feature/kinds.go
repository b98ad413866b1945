package feature

import "feature-compiler/internal/anim"

// Kind is the discriminant selecting which processor interprets a descriptor.
type Kind string

const (
	KindArmatureLink        Kind = "armature_link"
	KindToggle              Kind = "toggle"
	KindBlendShapeSet       Kind = "blend_shape_set"
	KindMaterialSwap        Kind = "material_swap"
	KindScaleSet            Kind = "scale_set"
	KindFrameSelect         Kind = "frame_select"
	KindPhysBoneReset       Kind = "physbone_reset"
	KindForceExplicitValues Kind = "force_explicit_values"
	KindHapticPlug          Kind = "haptic_plug"
	KindHapticSocket        Kind = "haptic_socket"
)

// Kinds lists every known kind in declaration order.
func Kinds() []Kind {
	return []Kind{
		KindArmatureLink, KindToggle, KindBlendShapeSet, KindMaterialSwap, KindScaleSet,
		KindFrameSelect, KindPhysBoneReset, KindForceExplicitValues, KindHapticPlug, KindHapticSocket,
	}
}

// IsValid returns true if the kind is a recognized value.
func (k Kind) IsValid() bool {
	for _, known := range Kinds() {
		if k == known {
			return true
		}
	}

	return false
}

// newModel returns a pointer to the zero model for kind, or nil.
func newModel(kind Kind) any {
	switch kind {
	case KindArmatureLink:
		return &ArmatureLink{}
	case KindToggle:
		return &Toggle{}
	case KindBlendShapeSet:
		return &BlendShapeSet{}
	case KindMaterialSwap:
		return &MaterialSwap{}
	case KindScaleSet:
		return &ScaleSet{}
	case KindFrameSelect:
		return &FrameSelect{}
	case KindPhysBoneReset:
		return &PhysBoneReset{}
	case KindForceExplicitValues:
		return &ForceExplicitValues{}
	case KindHapticPlug:
		return &HapticPlug{}
	case KindHapticSocket:
		return &HapticSocket{}
	default:
		return nil
	}
}

// LinkMode selects how an armature link joins the two hierarchies.
type LinkMode string

const (
	// LinkBoneMerge rewrites skinned meshes onto the target bones and deletes the donor bones.
	LinkBoneMerge LinkMode = "bone_merge"
	// LinkRigidAttach moves every paired donor bone under its target bone.
	LinkRigidAttach LinkMode = "rigid_attach"
)

// ArmatureLink links a donor sub-hierarchy to the scene's main skeleton.
type ArmatureLink struct {
	// PropBone is the donor root, relative to the feature node.
	PropBone string `yaml:"prop_bone"`
	// BoneOnAvatar is a semantic (humanoid) bone name used when BonePathOnAvatar is empty.
	BoneOnAvatar string `yaml:"bone_on_avatar,omitempty"`
	// BonePathOnAvatar is the target root, relative to the scene root.
	BonePathOnAvatar string `yaml:"bone_path_on_avatar,omitempty"`
	// Mode defaults to LinkRigidAttach.
	Mode LinkMode `yaml:"mode,omitempty"`
	// KeepBoneOffsets keeps the authored offset of relocated bones.
	KeepBoneOffsets bool `yaml:"keep_bone_offsets,omitempty"`
}

// Kind implements Model.
func (ArmatureLink) Kind() Kind { return KindArmatureLink }

// EffectiveMode returns Mode with the default applied.
func (a ArmatureLink) EffectiveMode() LinkMode {
	if a.Mode == "" {
		return LinkRigidAttach
	}

	return a.Mode
}

// Toggle exposes a menu switch that turns a state on and off.
type Toggle struct {
	// Name is the menu path, "/" separated.
	Name      string `yaml:"name"`
	State     State  `yaml:"state"`
	Saved     bool   `yaml:"saved,omitempty"`
	DefaultOn bool   `yaml:"default_on,omitempty"`
	LocalOnly bool   `yaml:"local_only,omitempty"`
	Icon      string `yaml:"icon,omitempty"`
	// ResetPhysbones lists physbone nodes reset whenever the toggle changes.
	ResetPhysbones []string `yaml:"reset_physbones,omitempty"`
}

// Kind implements Model.
func (Toggle) Kind() Kind { return KindToggle }

// BlendShapeValue is a named blend weight.
type BlendShapeValue struct {
	Name  string  `yaml:"name"`
	Value float32 `yaml:"value"`
}

// BlendShapeSet bakes blend weights into every renderer that has them,
// or only into Renderer when set.
type BlendShapeSet struct {
	Renderer    string            `yaml:"renderer,omitempty"`
	BlendShapes []BlendShapeValue `yaml:"blend_shapes"`
}

// Kind implements Model.
func (BlendShapeSet) Kind() Kind { return KindBlendShapeSet }

// MaterialSwap replaces one material slot of a renderer.
type MaterialSwap struct {
	Renderer string `yaml:"renderer"`
	Slot     int    `yaml:"slot,omitempty"`
	Material string `yaml:"material"`
}

// Kind implements Model.
func (MaterialSwap) Kind() Kind { return KindMaterialSwap }

// ScaleSet multiplies the local scale of a node.
type ScaleSet struct {
	Obj   string  `yaml:"obj"`
	Scale float32 `yaml:"scale"`
}

// Kind implements Model.
func (ScaleSet) Kind() Kind { return KindScaleSet }

// FrameSelect picks the resting frame of a flipbook material.
type FrameSelect struct {
	Renderer string  `yaml:"renderer"`
	Frame    float32 `yaml:"frame"`
}

// Kind implements Model.
func (FrameSelect) Kind() Kind { return KindFrameSelect }

// PhysBoneReset briefly disables physbones whenever Param changes.
type PhysBoneReset struct {
	Name      string   `yaml:"name"`
	Param     string   `yaml:"param"`
	Physbones []string `yaml:"physbones"`
}

// Kind implements Model.
func (PhysBoneReset) Kind() Kind { return KindPhysBoneReset }

// ForceExplicitValues forces every state onto the explicit-values convention.
type ForceExplicitValues struct{}

// Kind implements Model.
func (ForceExplicitValues) Kind() Kind { return KindForceExplicitValues }

// HapticPlug creates proximity contacts and shader bindings sized from a mesh.
type HapticPlug struct {
	Name string `yaml:"name"`
	// Renderers are relative paths; empty means search the feature node and its children.
	Renderers     []string `yaml:"renderers,omitempty"`
	AutoLength    bool     `yaml:"auto_length,omitempty"`
	Length        float32  `yaml:"length,omitempty"`
	AutoRadius    bool     `yaml:"auto_radius,omitempty"`
	Radius        float32  `yaml:"radius,omitempty"`
	UnitsInMeters bool     `yaml:"units_in_meters,omitempty"`
	// ConfigureShader writes the capsule size into the renderer's materials and
	// claims the renderer for this plug.
	ConfigureShader bool `yaml:"configure_shader,omitempty"`
}

// Kind implements Model.
func (HapticPlug) Kind() Kind { return KindHapticPlug }

// SocketMode is the shape a socket presents.
type SocketMode string

const (
	SocketHole SocketMode = "hole"
	SocketRing SocketMode = "ring"
)

// HapticSocket creates receiver contacts and a menu switch enabling them.
type HapticSocket struct {
	Name      string     `yaml:"name"`
	Mode      SocketMode `yaml:"mode,omitempty"`
	DefaultOn bool       `yaml:"default_on,omitempty"`
}

// Kind implements Model.
func (HapticSocket) Kind() Kind { return KindHapticSocket }

// ActionKind discriminates the entries of a State.
type ActionKind string

const (
	ActionObjectToggle   ActionKind = "object_toggle"
	ActionBlendShape     ActionKind = "blend_shape"
	ActionScale          ActionKind = "scale"
	ActionMaterial       ActionKind = "material"
	ActionFlipbook       ActionKind = "flipbook"
	ActionPhysBoneEnable ActionKind = "physbone_enable"
	ActionAnimationClip  ActionKind = "animation_clip"
)

// State is what a toggle does while on.
type State struct {
	Actions []Action `yaml:"actions,omitempty"`
}

// IsEmpty reports whether the state has no actions.
func (s State) IsEmpty() bool {
	return len(s.Actions) == 0
}

// Action is one effect of a State. Only the fields relevant to Type are read.
type Action struct {
	Type ActionKind `yaml:"type"`
	// Obj is the affected node (object_toggle, scale, material, flipbook, physbone_enable).
	Obj string `yaml:"obj,omitempty"`
	// BlendShape and Value apply to blend_shape.
	BlendShape string  `yaml:"blend_shape,omitempty"`
	Value      float32 `yaml:"value,omitempty"`
	// Scale multiplies the resting scale.
	Scale float32 `yaml:"scale,omitempty"`
	// MaterialIndex and Material apply to material.
	MaterialIndex int    `yaml:"material_index,omitempty"`
	Material      string `yaml:"material,omitempty"`
	// Frame applies to flipbook.
	Frame float32 `yaml:"frame,omitempty"`
	// Clip is an authored clip whose paths are relative to the feature node.
	Clip *anim.Clip `yaml:"clip,omitempty"`
}
